package processor

import (
	"strings"
	"testing"
)

func TestKindFor(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", KindPhoto},
		{"image/png", KindPhoto},
		{"image/webp", KindPhoto},
		{"image/gif", KindPhoto},
		{"image/tiff", KindPhoto},
		{"image/heic", KindPhoto},
		{"video/mp4", KindVideo},
		{"video/quicktime", KindVideo},
		{"video/x-msvideo", KindVideo},
		{"video/webm", KindVideo},
		{"video/x-matroska", KindVideo},
		{"application/pdf", KindUnrecognized},
		{"text/plain", KindUnrecognized},
		{"", KindUnrecognized},
	}
	for _, c := range cases {
		if got := KindFor(c.contentType); got != c.want {
			t.Errorf("KindFor(%q) = %q, want %q", c.contentType, got, c.want)
		}
	}
}

func TestValidate_UnrecognizedType(t *testing.T) {
	out := Validate(100, "application/pdf")
	if out.Valid {
		t.Fatal("expected invalid outcome")
	}
	if !strings.Contains(out.Reason, "application/pdf") {
		t.Errorf("reason should name the rejected type, got %q", out.Reason)
	}
}

func TestValidate_PhotoWithinCeiling(t *testing.T) {
	out := Validate(MaxPhotoSizeBytes, "image/jpeg")
	if !out.Valid {
		t.Fatalf("expected valid outcome, got reason %q", out.Reason)
	}
}

func TestValidate_PhotoTooLarge(t *testing.T) {
	out := Validate(MaxPhotoSizeBytes+1, "image/jpeg")
	if out.Valid {
		t.Fatal("expected invalid outcome")
	}
	if !strings.Contains(out.Reason, "too large") {
		t.Errorf("unexpected reason %q", out.Reason)
	}
}

func TestValidate_VideoUsesLargerCeiling(t *testing.T) {
	// a size that would be rejected for a photo is fine for a video
	size := int64(MaxPhotoSizeBytes + 1)
	out := Validate(size, "video/mp4")
	if !out.Valid {
		t.Fatalf("expected valid outcome, got reason %q", out.Reason)
	}
}

func TestValidate_VideoTooLarge(t *testing.T) {
	out := Validate(MaxVideoSizeBytes+1, "video/webm")
	if out.Valid {
		t.Fatal("expected invalid outcome")
	}
}
