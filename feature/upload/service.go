package upload

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"upload-gateway/core/metrics"
	"upload-gateway/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service uploads multipart attachments to the storage backend.
type Service struct {
	session  *storage.Session
	logger   *zap.Logger
	observer metrics.Observer
}

// NewService creates a new upload service.
func NewService(session *storage.Session, logger *zap.Logger, observer metrics.Observer) *Service {
	if observer == nil {
		observer = metrics.Nop()
	}
	return &Service{
		session:  session,
		logger:   logger,
		observer: observer,
	}
}

// Process uploads every attachment in the form, strictly sequentially: the
// next attachment starts only after the previous outcome is known. A failed
// attachment is recorded and the batch continues; nothing short of the
// request context ending stops the walk early.
func (s *Service) Process(ctx context.Context, form *Form) *BatchReport {
	report := &BatchReport{Uploaded: make(map[string][]UploadResult, len(form.Fields))}

	for _, field := range form.Fields {
		report.Uploaded[field.Name] = []UploadResult{}

		for _, file := range field.Files {
			if file.Filename == "" {
				s.logger.Warn("Skipping attachment with empty filename", zap.String("field", field.Name))
				report.Errors = append(report.Errors, UploadError{
					FieldName: field.Name,
					Message:   fmt.Sprintf("Empty filename in %s", field.Name),
				})
				continue
			}

			result, uploadErr := s.uploadOne(ctx, field.Name, file)
			if uploadErr != nil {
				report.Errors = append(report.Errors, *uploadErr)
				continue
			}
			report.Uploaded[field.Name] = append(report.Uploaded[field.Name], result)
		}
	}

	return report
}

// uploadOne stores a single attachment under {field}/{filename}. Field and
// file names are used verbatim as the storage key; keys are not sanitized.
func (s *Service) uploadOne(ctx context.Context, fieldName string, file Attachment) (UploadResult, *UploadError) {
	key := fieldName + "/" + file.Filename

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	start := time.Now()
	_, err := s.session.Upload(ctx, key, bytes.NewReader(file.Data), int64(len(file.Data)), contentType)
	s.observer.RecordUpload(time.Since(start), uint64(len(file.Data)), err)
	if err != nil {
		message := describeUploadError(file.Filename, err)
		s.logger.Error("Upload failed",
			zap.String("field", fieldName),
			zap.String("filename", file.Filename),
			zap.String("key", key),
			zap.Error(err))
		return UploadResult{}, &UploadError{
			FieldName: fieldName,
			Filename:  file.Filename,
			Message:   message,
		}
	}

	url := s.session.ObjectURL(key)
	s.logger.Info("Successfully uploaded file",
		zap.String("filename", file.Filename),
		zap.String("url", url))

	return UploadResult{
		FieldName:  fieldName,
		Filename:   file.Filename,
		StorageKey: key,
		URL:        url,
	}, nil
}

// describeUploadError renders a backend failure into the human-readable
// message carried in the response. Backend rejections embed the storage
// error code and message; anything else surfaces as an unexpected error.
func describeUploadError(filename string, err error) string {
	resp := minio.ToErrorResponse(err)
	if resp.Code != "" {
		return fmt.Sprintf("Failed to upload %s: %s - %s", filename, resp.Code, resp.Message)
	}
	return fmt.Sprintf("Unexpected error uploading %s: %v", filename, err)
}
