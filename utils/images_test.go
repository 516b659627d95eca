package utils

import (
	"encoding/base64"
	"testing"
)

func TestStripDataURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:image/jpeg;base64,abc123", "abc123"},
		{"data:image/png;base64,xyz", "xyz"},
		{"abc123", "abc123"}, // already bare
	}
	for _, tc := range tests {
		if got := StripDataURI(tc.in); got != tc.want {
			t.Errorf("StripDataURI(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeImage(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff}
	encoded := base64.StdEncoding.EncodeToString(raw)

	data, ct, err := DecodeImage("data:image/png;base64," + encoded)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if string(data) != string(raw) {
		t.Errorf("decoded bytes mismatch")
	}

	// Bare base64 defaults to jpeg.
	_, ct, err = DecodeImage(encoded)
	if err != nil {
		t.Fatalf("DecodeImage bare: %v", err)
	}
	if ct != "image/jpeg" {
		t.Errorf("bare content type = %q, want image/jpeg", ct)
	}

	if _, _, err := DecodeImage("data:image/png;base64"); err == nil {
		t.Error("expected error for malformed data URI")
	}
	if _, _, err := DecodeImage("not-base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}
