package frame

import (
	"image"
	"image/color"
	"image/draw"
)

// ChannelLayout identifies the speaker arrangement of a frame's audio clip.
type ChannelLayout int

const (
	LayoutNone ChannelLayout = iota
	LayoutMono
	LayoutStereo
	LayoutSurround51
)

func (l ChannelLayout) String() string {
	switch l {
	case LayoutMono:
		return "mono"
	case LayoutStereo:
		return "stereo"
	case LayoutSurround51:
		return "5.1"
	default:
		return "none"
	}
}

// Channels returns the channel count implied by the layout.
func (l ChannelLayout) Channels() int {
	switch l {
	case LayoutMono:
		return 1
	case LayoutStereo:
		return 2
	case LayoutSurround51:
		return 6
	default:
		return 0
	}
}

// Frame is one unit of decoded audiovisual data: an RGBA pixel buffer plus
// a float32 audio clip, identified by a frame number that is unique within
// a cache. Frames handed out by a cache are shared, not copied; holders
// must treat the image and audio buffers as read-only.
type Frame struct {
	// Number is the frame's identity and the cache sort/eviction key.
	Number int64

	img        *image.RGBA
	audio      [][]float32
	sampleRate int
	layout     ChannelLayout
}

// New returns an empty frame with the given number and no image or audio.
func New(number int64) *Frame {
	return &Frame{Number: number}
}

// NewSized returns a frame with a zeroed width x height pixel buffer.
func NewSized(number int64, width, height int) *Frame {
	f := New(number)
	f.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return f
}

// AddColor allocates a width x height pixel buffer filled with the given
// color, replacing any existing image.
func (f *Frame) AddColor(width, height int, c color.Color) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	f.img = img
}

// Image returns the frame's pixel buffer, or nil if none was allocated.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// SetImage replaces the frame's pixel buffer.
func (f *Frame) SetImage(img *image.RGBA) {
	f.img = img
}

// Width returns the image width in pixels, or 0 without an image.
func (f *Frame) Width() int {
	if f.img == nil {
		return 0
	}
	return f.img.Bounds().Dx()
}

// Height returns the image height in pixels, or 0 without an image.
func (f *Frame) Height() int {
	if f.img == nil {
		return 0
	}
	return f.img.Bounds().Dy()
}

// ResizeAudio allocates the audio clip: channels slices of sampleCount
// silent samples each, replacing any existing clip.
func (f *Frame) ResizeAudio(channels, sampleCount, sampleRate int, layout ChannelLayout) {
	if channels < 0 {
		channels = 0
	}
	if sampleCount < 0 {
		sampleCount = 0
	}
	clip := make([][]float32, channels)
	for i := range clip {
		clip[i] = make([]float32, sampleCount)
	}
	f.audio = clip
	f.sampleRate = sampleRate
	f.layout = layout
}

// AddAudioSilence zeroes every channel out to sampleCount samples,
// growing the channels if needed.
func (f *Frame) AddAudioSilence(sampleCount int) {
	for i, ch := range f.audio {
		if len(ch) < sampleCount {
			ch = make([]float32, sampleCount)
		} else {
			for j := range ch {
				ch[j] = 0
			}
		}
		f.audio[i] = ch
	}
}

// SetAudio replaces the audio clip wholesale. The slices are retained,
// not copied.
func (f *Frame) SetAudio(samples [][]float32, sampleRate int, layout ChannelLayout) {
	f.audio = samples
	f.sampleRate = sampleRate
	f.layout = layout
}

// Audio returns the per-channel sample slices. Read-only for holders.
func (f *Frame) Audio() [][]float32 {
	return f.audio
}

// AudioChannel returns one channel's samples, or nil if out of range.
func (f *Frame) AudioChannel(channel int) []float32 {
	if channel < 0 || channel >= len(f.audio) {
		return nil
	}
	return f.audio[channel]
}

// AudioChannels returns the number of audio channels.
func (f *Frame) AudioChannels() int {
	return len(f.audio)
}

// AudioSamples returns the per-channel sample count.
func (f *Frame) AudioSamples() int {
	if len(f.audio) == 0 {
		return 0
	}
	return len(f.audio[0])
}

// SampleRate returns the audio sample rate in Hz.
func (f *Frame) SampleRate() int {
	return f.sampleRate
}

// Layout returns the audio channel layout.
func (f *Frame) Layout() ChannelLayout {
	return f.layout
}

// Bytes measures the frame's resident size: raw pixel bytes plus four
// bytes per audio sample per channel. This is the measure cache byte
// budgets are enforced against.
func (f *Frame) Bytes() int64 {
	var total int64
	if f.img != nil {
		total += int64(len(f.img.Pix))
	}
	for _, ch := range f.audio {
		total += int64(len(ch)) * 4
	}
	return total
}
