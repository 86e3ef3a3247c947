package upload

import (
	"context"
	"errors"
	"testing"
	"time"

	"upload-gateway/core/storage"
	"upload-gateway/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedUpload struct {
	size uint64
	err  error
}

type recordingObserver struct {
	uploads []recordedUpload
}

func (o *recordingObserver) RecordUpload(_ time.Duration, size uint64, err error) {
	o.uploads = append(o.uploads, recordedUpload{size: size, err: err})
}

func (o *recordingObserver) RecordProbe(time.Duration, error) {}

func newTestService(observer *recordingObserver) (*Service, *mocks.Client) {
	mockClient := new(mocks.Client)
	sess := storage.NewSession(mockClient, "test-bucket", "us-east-1")
	var svc *Service
	if observer != nil {
		svc = NewService(sess, zap.NewNop(), observer)
	} else {
		svc = NewService(sess, zap.NewNop(), nil)
	}
	return svc, mockClient
}

func singleFileForm(field, filename, contentType, content string) *Form {
	return &Form{Fields: []FileField{{
		Name:  field,
		Files: []Attachment{{Filename: filename, ContentType: contentType, Data: []byte(content)}},
	}}}
}

func TestService_Process_KeyAndURL(t *testing.T) {
	svc, mockClient := newTestService(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "photos/a.png", mock.Anything, int64(3),
		minio.PutObjectOptions{ContentType: "image/png"}).
		Return(minio.UploadInfo{Key: "photos/a.png"}, nil)

	report := svc.Process(context.Background(), singleFileForm("photos", "a.png", "image/png", "png"))

	assert.Equal(t, StatusAllSucceeded, report.Status())
	require.Len(t, report.Uploaded["photos"], 1)
	result := report.Uploaded["photos"][0]
	assert.Equal(t, "photos/a.png", result.StorageKey)
	assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/photos/a.png", result.URL)
	mockClient.AssertExpectations(t)
}

func TestService_Process_KeyIsVerbatim(t *testing.T) {
	// Field and file names are not sanitized before forming the key.
	svc, mockClient := newTestService(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "my photos/weird name?.png", mock.Anything,
		mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	report := svc.Process(context.Background(), singleFileForm("my photos", "weird name?.png", "image/png", "x"))

	require.Len(t, report.Uploaded["my photos"], 1)
	assert.Equal(t, "my photos/weird name?.png", report.Uploaded["my photos"][0].StorageKey)
}

func TestService_Process_BackendError(t *testing.T) {
	svc, mockClient := newTestService(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "photos/a.png", mock.Anything, mock.Anything,
		mock.Anything).
		Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchBucket", Message: "The specified bucket does not exist", StatusCode: 404})

	report := svc.Process(context.Background(), singleFileForm("photos", "a.png", "image/png", "png"))

	assert.Equal(t, StatusPartialSuccess, report.Status())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Failed to upload a.png: NoSuchBucket - The specified bucket does not exist", report.Errors[0].Message)
	assert.Empty(t, report.Uploaded["photos"])
}

func TestService_Process_UnexpectedError(t *testing.T) {
	svc, mockClient := newTestService(nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "photos/a.png", mock.Anything, mock.Anything,
		mock.Anything).
		Return(minio.UploadInfo{}, errors.New("dial tcp: connection refused"))

	report := svc.Process(context.Background(), singleFileForm("photos", "a.png", "image/png", "png"))

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Unexpected error uploading a.png: dial tcp: connection refused", report.Errors[0].Message)
}

func TestService_Process_EmptyFilenameSkipsBackend(t *testing.T) {
	observer := &recordingObserver{}
	svc, mockClient := newTestService(observer)

	report := svc.Process(context.Background(), singleFileForm("photos", "", "", ""))

	assert.Equal(t, StatusPartialSuccess, report.Status())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Empty filename in photos", report.Errors[0].Message)
	assert.Empty(t, report.Errors[0].Filename)
	mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, observer.uploads)
}

func TestService_Process_RecordsMetrics(t *testing.T) {
	observer := &recordingObserver{}
	svc, mockClient := newTestService(observer)

	mockClient.On("PutObject", mock.Anything, "test-bucket", "imgs/ok.png", mock.Anything, mock.Anything,
		mock.Anything).Return(minio.UploadInfo{}, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "imgs/bad.png", mock.Anything, mock.Anything,
		mock.Anything).Return(minio.UploadInfo{}, errors.New("boom"))

	form := &Form{Fields: []FileField{{
		Name: "imgs",
		Files: []Attachment{
			{Filename: "ok.png", ContentType: "image/png", Data: []byte("okay")},
			{Filename: "bad.png", ContentType: "image/png", Data: []byte("bad")},
		},
	}}}
	svc.Process(context.Background(), form)

	require.Len(t, observer.uploads, 2)
	assert.Equal(t, uint64(4), observer.uploads[0].size)
	assert.NoError(t, observer.uploads[0].err)
	assert.Error(t, observer.uploads[1].err)
}

func TestDescribeUploadError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "BackendRejection",
			err:  minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied.", StatusCode: 403},
			want: "Failed to upload a.png: AccessDenied - Access Denied.",
		},
		{
			name: "NetworkFailure",
			err:  errors.New("connection reset by peer"),
			want: "Unexpected error uploading a.png: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeUploadError("a.png", tt.err))
		})
	}
}

func TestBatchReport_Status(t *testing.T) {
	empty := &BatchReport{Uploaded: map[string][]UploadResult{}}
	assert.Equal(t, StatusNoInput, empty.Status())

	clean := &BatchReport{Uploaded: map[string][]UploadResult{"a": {{Filename: "x"}}}}
	assert.Equal(t, StatusAllSucceeded, clean.Status())

	partial := &BatchReport{
		Uploaded: map[string][]UploadResult{"a": {}},
		Errors:   []UploadError{{Message: "boom"}},
	}
	assert.Equal(t, StatusPartialSuccess, partial.Status())
}
