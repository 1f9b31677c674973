package minio

import (
	"io"
	"strings"
	"time"
)

const (
	metaOriginalName = "original-name"

	maxUploadSize = 25 << 20
	// S3 caps presigned URLs at seven days.
	maxExpiry = 7 * 24 * time.Hour
)

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

func (r *UploadRequest) validate() error {
	if r.BucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if err := validateObjectName(r.ObjectName); err != nil {
		return err
	}
	switch {
	case r.Reader == nil:
		return NewInvalidInputError("reader is required")
	case r.Size <= 0:
		return NewInvalidInputError("size must be positive")
	case r.Size > maxUploadSize:
		return NewInvalidInputError("file size cannot exceed 25MB")
	case r.ContentType == "":
		return NewInvalidInputError("content type is required")
	}
	return nil
}

// PresignedURLRequest asks for a time-limited GET link. When FileName is set
// the link makes the browser use it as the download name.
type PresignedURLRequest struct {
	BucketName  string
	ObjectName  string
	FileName    string
	ContentType string
	Expiry      time.Duration
}

func (r *PresignedURLRequest) validate() error {
	if r.BucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if err := validateObjectName(r.ObjectName); err != nil {
		return err
	}
	if r.Expiry <= 0 || r.Expiry > maxExpiry {
		return NewInvalidInputError("expiry must be between 0 and 7 days")
	}
	return nil
}

type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Method    string    `json:"method"`
}

func validateObjectName(objectName string) error {
	switch {
	case objectName == "":
		return NewInvalidInputError("object name is required")
	case strings.Contains(objectName, "\\"):
		return NewInvalidInputError("object name cannot contain backslashes")
	case strings.Contains(objectName, ".."):
		return NewInvalidInputError("object name cannot contain '..'")
	case strings.HasPrefix(objectName, "/") || strings.HasSuffix(objectName, "/"):
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	return nil
}
