package minio

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// inlineTypes open in the browser instead of downloading.
var inlineTypes = []string{"image/", "application/pdf", "text/plain"}

// ObjectName builds a unique object name under prefix that keeps the file extension.
func ObjectName(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.NewString(), ext)
}

// ContentTypeFor guesses a MIME type from the file name.
func ContentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, s)
}

func sanitizeMetadata(metadata map[string]string) map[string]string {
	out := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		out[k] = asciiOnly(v)
	}
	return out
}

// contentDisposition is the header a presigned link serves fileName with.
func contentDisposition(contentType, fileName string) string {
	disp := "attachment"
	for _, t := range inlineTypes {
		if strings.HasPrefix(contentType, t) {
			disp = "inline"
			break
		}
	}
	return mime.FormatMediaType(disp, map[string]string{"filename": fileName})
}
