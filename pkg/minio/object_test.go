package minio

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"isp-dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("/org-1/tickets/", "Router Photo.JPG")
	assert.True(t, strings.HasPrefix(name, "org-1/tickets/"), name)
	assert.True(t, strings.HasSuffix(name, ".jpg"), name)
	assert.NoError(t, validateObjectName(name))
	assert.NotEqual(t, ObjectName("a", "x.png"), ObjectName("a", "x.png"))
}

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		contentType string
		fileName    string
		want        string
	}{
		{"image/png", "tower.png", "inline; filename=tower.png"},
		{"application/pdf", "invoice.pdf", "inline; filename=invoice.pdf"},
		{"application/zip", "logs.zip", "attachment; filename=logs.zip"},
		{"text/plain", "site notes.txt", `inline; filename="site notes.txt"`},
	}
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, contentDisposition(tt.contentType, tt.fileName))
		})
	}
}

func TestUploadRequestValidate(t *testing.T) {
	ok := UploadRequest{
		BucketName:  "attachments",
		ObjectName:  "org-1/tickets/a.png",
		Reader:      strings.NewReader("x"),
		Size:        1,
		ContentType: "image/png",
	}
	require.NoError(t, ok.validate())

	tests := map[string]func(r *UploadRequest){
		"too big":      func(r *UploadRequest) { r.Size = maxUploadSize + 1 },
		"no reader":    func(r *UploadRequest) { r.Reader = nil },
		"no type":      func(r *UploadRequest) { r.ContentType = "" },
		"parent dir":   func(r *UploadRequest) { r.ObjectName = "org-1/../org-2/a.png" },
		"leading root": func(r *UploadRequest) { r.ObjectName = "/a.png" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := ok
			mutate(&r)
			var se *StorageError
			require.ErrorAs(t, r.validate(), &se)
			assert.Equal(t, ErrCodeInvalidInput, se.Code)
		})
	}
}

func TestPresignedURLRequestValidate(t *testing.T) {
	r := PresignedURLRequest{BucketName: "b", ObjectName: "o/a.png", Expiry: time.Hour}
	assert.NoError(t, r.validate())

	r.Expiry = 8 * 24 * time.Hour
	assert.Error(t, r.validate())
}

func TestSanitizeMetadata(t *testing.T) {
	got := sanitizeMetadata(map[string]string{" Uploaded-By ": "u-1\n", "": "drop"})
	assert.Equal(t, map[string]string{"uploaded-by": "u-1"}, got)
}

func TestIsNotFound(t *testing.T) {
	notFound := &StorageError{Code: ErrCodeObjectNotFound, Message: "gone"}
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("delete: %w", notFound)))
	assert.False(t, IsNotFound(NewConnectionError(errors.New("refused"))))
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(config.MinIOConfig{Endpoint: "localhost", Bucket: "b"})
	assert.Error(t, err)

	cfg := config.MinIOConfig{Endpoint: "minio.internal", AccessKey: "a", SecretKey: "s", Bucket: "b"}
	require.NoError(t, validateConfig(&cfg))
	assert.Equal(t, "minio.internal:9000", cfg.Endpoint)
}
