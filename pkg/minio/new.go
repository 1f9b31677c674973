package minio

import (
	"context"
	"net"
	"net/http"
	"time"

	"isp-dashboard/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO stores ticket attachments in a single bucket.
type MinIO interface {
	// EnsureBucket creates the configured bucket when it is missing.
	EnsureBucket(ctx context.Context) error
	HealthCheck(ctx context.Context) error

	Bucket() string
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

type implMinIO struct {
	client *minio.Client
	bucket string
	region string
}

// New builds a client for cfg. It does not touch the network.
func New(cfg config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  true,
		},
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{client: client, bucket: cfg.Bucket, region: cfg.Region}, nil
}

func validateConfig(cfg *config.MinIOConfig) error {
	switch {
	case cfg.Endpoint == "":
		return NewInvalidInputError("endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return NewInvalidInputError("access and secret keys are required")
	case cfg.Bucket == "":
		return NewInvalidInputError("bucket is required")
	}
	if _, _, err := net.SplitHostPort(cfg.Endpoint); err != nil {
		cfg.Endpoint = net.JoinHostPort(cfg.Endpoint, "9000")
	}
	return nil
}
