package cache

import "testing"

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"png":  FormatPNG,
		"PNG":  FormatPNG,
		"jpeg": FormatJPEG,
		"jpg":  FormatJPEG,
		"bmp":  FormatBMP,
	}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", input, got, want)
		}
	}

	if _, err := ParseFormat("tiff"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFrameFileNameRoundTrip(t *testing.T) {
	cases := []struct {
		number int64
		format Format
		want   string
	}{
		{0, FormatPNG, "frame_0.png"},
		{42, FormatJPEG, "frame_42.jpg"},
		{1000000, FormatBMP, "frame_1000000.bmp"},
	}
	for _, tc := range cases {
		name := FrameFileName(tc.number, tc.format)
		if name != tc.want {
			t.Errorf("FrameFileName(%d, %q) = %q, want %q", tc.number, tc.format, name, tc.want)
		}
		number, format, ok := ParseFrameFileName(name)
		if !ok || number != tc.number || format != tc.format {
			t.Errorf("ParseFrameFileName(%q) = (%d, %q, %v)", name, number, format, ok)
		}
	}
}

func TestParseFrameFileNameRejectsStrays(t *testing.T) {
	for _, name := range []string{
		".lock",
		"frame_.png",
		"frame_12",
		"frame_-3.png",
		"frame_12.tiff",
		"notes.txt",
		"frame_abc.png",
	} {
		if _, _, ok := ParseFrameFileName(name); ok {
			t.Errorf("ParseFrameFileName(%q) should reject", name)
		}
	}
}
