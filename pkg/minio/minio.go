package minio

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return storageError(err, "bucket_exists")
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
		return storageError(err, "make_bucket")
	}
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return storageError(err, "health_check")
	}
	if !exists {
		return &StorageError{Code: ErrCodeBucketNotFound, Message: "Bucket not found: " + m.bucket, Operation: "health_check"}
	}
	return nil
}

func (m *implMinIO) Bucket() string {
	return m.bucket
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	meta := sanitizeMetadata(req.Metadata)
	if req.OriginalName != "" {
		meta[metaOriginalName] = asciiOnly(req.OriginalName)
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: meta,
	})
	if err != nil {
		return nil, storageError(err, "put_object")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
	}, nil
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var params url.Values
	if req.FileName != "" {
		params = url.Values{}
		params.Set("response-content-disposition", contentDisposition(req.ContentType, req.FileName))
	}

	u, err := m.client.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, params)
	if err != nil {
		return nil, storageError(err, "presign_get")
	}

	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    http.MethodGet,
	}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := validateObjectName(objectName); err != nil {
		return err
	}
	if err := m.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return storageError(err, "remove_object")
	}
	return nil
}

func storageError(err error, operation string) *StorageError {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return &StorageError{Code: ErrCodeBucketNotFound, Message: "Bucket not found: " + resp.BucketName, Operation: operation, Cause: err}
	case "NoSuchKey":
		return &StorageError{Code: ErrCodeObjectNotFound, Message: "Object not found: " + resp.Key, Operation: operation, Cause: err}
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "Access denied", Operation: operation, Cause: err}
	case "":
		e := NewConnectionError(err)
		e.Operation = operation
		return e
	default:
		return &StorageError{Code: ErrCodeConnection, Message: "Storage request failed: " + resp.Code, Operation: operation, Cause: err}
	}
}
