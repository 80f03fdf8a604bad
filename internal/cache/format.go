package cache

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
)

// Format identifies the raster format the disk store persists images in.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
)

// ParseFormat maps a format identifier to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("image format: unsupported value %q", value)
	}
}

// Ext returns the filename extension including the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// encode writes img to w. quality is in (0,1] and applies to jpeg only.
func (f Format) encode(w io.Writer, img image.Image, quality float64) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		q := int(quality*100 + 0.5)
		if q < 1 {
			q = 1
		} else if q > 100 {
			q = 100
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("image format: unsupported value %q", string(f))
	}
}

const frameFilePrefix = "frame_"

// FrameFileName returns the file name the disk store uses for a frame
// number, embedding the number and the format's extension.
func FrameFileName(number int64, format Format) string {
	return frameFilePrefix + strconv.FormatInt(number, 10) + format.Ext()
}

// ParseFrameFileName extracts the frame number and format from a disk
// store file name. Returns false for names the store did not produce.
func ParseFrameFileName(name string) (int64, Format, bool) {
	rest, ok := strings.CutPrefix(name, frameFilePrefix)
	if !ok {
		return 0, "", false
	}
	dot := strings.LastIndexByte(rest, '.')
	if dot < 0 {
		return 0, "", false
	}
	format, err := ParseFormat(rest[dot+1:])
	if err != nil {
		return 0, "", false
	}
	number, err := strconv.ParseInt(rest[:dot], 10, 64)
	if err != nil || number < 0 {
		return 0, "", false
	}
	return number, format, true
}

// decodeImageFile reads and decodes a stored frame image into RGBA.
func decodeImageFile(path string) (*image.RGBA, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame image: %w", err)
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode frame image %s: %w", path, err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}
