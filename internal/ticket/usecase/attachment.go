package usecase

import (
	"context"
	"path"
	"strings"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/ticket"
	"isp-dashboard/pkg/minio"
)

const maxAttachmentSize = 10 << 20

var allowedAttachmentTypes = []string{"image/", "application/pdf", "text/plain"}

func (uc *usecase) UploadAttachment(ctx context.Context, sc model.Scope, ip ticket.UploadInput) (model.Attachment, error) {
	if uc.storage == nil {
		return model.Attachment{}, ticket.ErrStorageUnavailable
	}
	if ip.File == nil || ip.Size <= 0 {
		return model.Attachment{}, ticket.ErrAttachmentEmpty
	}
	if ip.Size > maxAttachmentSize {
		return model.Attachment{}, ticket.ErrAttachmentTooLarge
	}

	fileName := path.Base(strings.ReplaceAll(ip.FileName, "\\", "/"))
	contentType := ip.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = minio.ContentTypeFor(fileName)
	}
	if !allowedType(contentType) {
		return model.Attachment{}, ticket.ErrAttachmentType
	}

	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.storage.Bucket(),
		ObjectName:   minio.ObjectName(attachmentPrefix(ip.OrganizationID), fileName),
		OriginalName: fileName,
		Reader:       ip.File,
		Size:         ip.Size,
		ContentType:  contentType,
		Metadata: map[string]string{
			"organization-id": ip.OrganizationID,
			"uploaded-by":     sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.UploadAttachment.UploadFile: %v", err)
		return model.Attachment{}, err
	}

	att := model.Attachment{
		ObjectName:  info.ObjectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        info.Size,
	}
	att.URL = uc.presign(ctx, att)
	return att, nil
}

// withDownloadURLs fills each attachment with a short-lived link. A failed link is left empty.
func (uc *usecase) withDownloadURLs(ctx context.Context, t model.Ticket) model.Ticket {
	if uc.storage == nil || len(t.Attachments) == 0 {
		return t
	}
	atts := make([]model.Attachment, len(t.Attachments))
	for i, att := range t.Attachments {
		att.URL = uc.presign(ctx, att)
		atts[i] = att
	}
	t.Attachments = atts
	return t
}

func (uc *usecase) presign(ctx context.Context, att model.Attachment) string {
	if uc.storage == nil {
		return ""
	}
	res, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName:  uc.storage.Bucket(),
		ObjectName:  att.ObjectName,
		FileName:    att.FileName,
		ContentType: att.ContentType,
		Expiry:      uc.urlExpiry,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.ticket.usecase.presign.%s: %v", att.ObjectName, err)
		return ""
	}
	return res.URL
}

// removeAttachments deletes stored files a ticket no longer references.
func (uc *usecase) removeAttachments(ctx context.Context, atts []model.Attachment) {
	if uc.storage == nil {
		return
	}
	for _, att := range atts {
		if err := uc.storage.DeleteFile(ctx, uc.storage.Bucket(), att.ObjectName); err != nil && !minio.IsNotFound(err) {
			uc.l.Warnf(ctx, "internal.ticket.usecase.removeAttachments.%s: %v", att.ObjectName, err)
		}
	}
}

func attachmentPrefix(orgID string) string {
	return orgID + "/tickets"
}

func ownedAttachments(orgID string, atts []model.Attachment) bool {
	prefix := attachmentPrefix(orgID) + "/"
	for _, att := range atts {
		if !strings.HasPrefix(att.ObjectName, prefix) {
			return false
		}
	}
	return true
}

func droppedAttachments(before, after []model.Attachment) []model.Attachment {
	kept := make(map[string]struct{}, len(after))
	for _, att := range after {
		kept[att.ObjectName] = struct{}{}
	}
	var dropped []model.Attachment
	for _, att := range before {
		if _, ok := kept[att.ObjectName]; !ok {
			dropped = append(dropped, att)
		}
	}
	return dropped
}

func allowedType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, prefix := range allowedAttachmentTypes {
		if strings.HasPrefix(ct, prefix) {
			return true
		}
	}
	return false
}
