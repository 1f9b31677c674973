package ticket

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/minio"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	Dispatch(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
	Detail(ctx context.Context, sc model.Scope, ip DetailInput) (model.Ticket, error)
	EditForm(ctx context.Context, sc model.Scope, ip DetailInput) (form.View[Input], error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Ticket, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Ticket, error)
	Delete(ctx context.Context, sc model.Scope, ip DetailInput) error
	UploadAttachment(ctx context.Context, sc model.Scope, ip UploadInput) (model.Attachment, error)
}

// Storage is the object store attachments are kept in.
type Storage interface {
	Bucket() string
	UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}
