// Package middlewarex contains the HTTP middleware chain of the lead API.
package middlewarex

import (
	"strings"

	"lead_qualifier/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var binaryContentTypes = []string{
	"image/",
	"audio/",
	"video/",
	"multipart/",
	"application/octet-stream",
	"application/zip",
}

// binary reports whether a body of contentType is unreadable in a log line.
func binary(contentType string) bool {
	for _, prefix := range binaryContentTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}

	return false
}

func truncate(dump []byte, maxLen int) []byte {
	if len(dump) > maxLen {
		return dump[:maxLen]
	}

	return dump
}
