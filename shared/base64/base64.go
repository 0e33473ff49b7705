package base64

import "strings"

const marker = ";base64,"

// GetContentType pulls the media type out of a data URI, or returns an empty
// string when the input is not one.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// GetPayload returns the encoded payload that follows the data URI header.
func GetPayload(file string) string {
	end := strings.Index(file, marker)
	if end == -1 {
		return ""
	}

	return file[end+len(marker):]
}
