package utils

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// StripDataURI removes a leading data-URI prefix, leaving bare base64.
func StripDataURI(s string) string {
	return dataURIPrefix.ReplaceAllString(s, "")
}

// DecodeImage decodes a base64 image, with or without a data-URI prefix,
// returning the raw bytes and the content type (image/jpeg when the input
// carries no prefix).
func DecodeImage(s string) ([]byte, string, error) {
	contentType := "image/jpeg"
	if strings.HasPrefix(s, "data:") {
		parts := strings.SplitN(s, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("invalid base64 image")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		contentType = strings.SplitN(meta, ";", 2)[0]
		s = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return data, contentType, nil
}
