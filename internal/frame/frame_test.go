package frame

import (
	"image/color"
	"testing"
)

func TestBytesCountsPixelsAndAudio(t *testing.T) {
	f := New(1)
	if f.Bytes() != 0 {
		t.Fatalf("empty frame should measure 0 bytes, got %d", f.Bytes())
	}

	f.AddColor(320, 240, color.Black)
	want := int64(320 * 240 * 4)
	if f.Bytes() != want {
		t.Fatalf("image-only frame: got %d bytes, want %d", f.Bytes(), want)
	}

	f.ResizeAudio(2, 500, 44100, LayoutStereo)
	want += 2 * 500 * 4
	if f.Bytes() != want {
		t.Fatalf("image+audio frame: got %d bytes, want %d", f.Bytes(), want)
	}
}

func TestAddColorFills(t *testing.T) {
	f := New(7)
	f.AddColor(4, 4, color.RGBA{R: 255, A: 255})

	if f.Width() != 4 || f.Height() != 4 {
		t.Fatalf("unexpected dimensions %dx%d", f.Width(), f.Height())
	}
	r, g, b, a := f.Image().At(2, 2).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel not filled red: r=%d g=%d b=%d a=%d", r, g, b, a)
	}
}

func TestResizeAudioShape(t *testing.T) {
	f := New(1)
	f.ResizeAudio(2, 500, 44100, LayoutStereo)

	if f.AudioChannels() != 2 {
		t.Errorf("channels: got %d, want 2", f.AudioChannels())
	}
	if f.AudioSamples() != 500 {
		t.Errorf("samples: got %d, want 500", f.AudioSamples())
	}
	if f.SampleRate() != 44100 {
		t.Errorf("sample rate: got %d, want 44100", f.SampleRate())
	}
	if f.Layout() != LayoutStereo {
		t.Errorf("layout: got %v, want stereo", f.Layout())
	}
	if f.AudioChannel(2) != nil {
		t.Error("out-of-range channel should be nil")
	}
}

func TestAddAudioSilenceZeroes(t *testing.T) {
	f := New(1)
	f.ResizeAudio(1, 4, 48000, LayoutMono)
	f.Audio()[0][2] = 0.5

	f.AddAudioSilence(4)
	if got := f.Audio()[0][2]; got != 0 {
		t.Errorf("sample not silenced: got %f", got)
	}
}

func TestChannelLayoutStrings(t *testing.T) {
	cases := map[ChannelLayout]string{
		LayoutNone:       "none",
		LayoutMono:       "mono",
		LayoutStereo:     "stereo",
		LayoutSurround51: "5.1",
	}
	for layout, want := range cases {
		if layout.String() != want {
			t.Errorf("%d.String() = %q, want %q", layout, layout.String(), want)
		}
	}
	if LayoutSurround51.Channels() != 6 {
		t.Errorf("5.1 channels: got %d, want 6", LayoutSurround51.Channels())
	}
}
