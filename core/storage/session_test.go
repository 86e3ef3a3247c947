package storage

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"upload-gateway/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSession(t *testing.T) {
	ctx := context.Background()
	logg := zap.NewNop()
	cfg := Config{Bucket: "test-bucket", Region: "us-east-1"}

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).
			Return([]minio.BucketInfo{{Name: "other"}, {Name: "test-bucket"}}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		sess, err := openSession(ctx, client, cfg, logg)
		require.NoError(t, err)
		assert.Equal(t, "test-bucket", sess.Bucket())
		assert.Equal(t, "us-east-1", sess.Region())
		client.AssertExpectations(t)
	})

	t.Run("BucketAbsentFromListingStillProbes", func(t *testing.T) {
		// The listing is diagnostic: a bucket missing from the account
		// listing can still be reachable (cross-account grants).
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{{Name: "other"}}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		sess, err := openSession(ctx, client, cfg, logg)
		require.NoError(t, err)
		assert.NotNil(t, sess)
	})

	t.Run("ListingFailureIsFatal", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return(nil, errors.New("listing refused"))

		sess, err := openSession(ctx, client, cfg, logg)
		assert.Nil(t, sess)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list buckets")
	})

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

		_, err := openSession(ctx, client, cfg, logg)
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("BucketNotFoundError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, minio.ErrorResponse{Code: "NoSuchBucket", Message: "The specified bucket does not exist", StatusCode: http.StatusNotFound})

		_, err := openSession(ctx, client, cfg, logg)
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("AccessDenied", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied.", StatusCode: http.StatusForbidden})

		_, err := openSession(ctx, client, cfg, logg)
		assert.ErrorIs(t, err, ErrBucketForbidden)
	})

	t.Run("BadRequestWithRegionMismatch", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, minio.ErrorResponse{Code: "BadRequest", Message: "Bad Request", StatusCode: http.StatusBadRequest})
		client.On("GetBucketLocation", mock.Anything, "test-bucket").Return("eu-west-1", nil)

		_, err := openSession(ctx, client, cfg, logg)
		require.ErrorIs(t, err, ErrRegionMismatch)
		assert.Contains(t, err.Error(), "eu-west-1")
		assert.Contains(t, err.Error(), "us-east-1")
	})

	t.Run("BadRequestSameRegion", func(t *testing.T) {
		// Location resolves to the configured region: still fatal, but not
		// diagnosed as a mismatch.
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, minio.ErrorResponse{Code: "BadRequest", Message: "Bad Request", StatusCode: http.StatusBadRequest})
		client.On("GetBucketLocation", mock.Anything, "test-bucket").Return("us-east-1", nil)

		_, err := openSession(ctx, client, cfg, logg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRegionMismatch)
		assert.Contains(t, err.Error(), "BadRequest")
	})

	t.Run("BadRequestLocationUnresolvable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, minio.ErrorResponse{Code: "BadRequest", Message: "Bad Request", StatusCode: http.StatusBadRequest})
		client.On("GetBucketLocation", mock.Anything, "test-bucket").
			Return("", minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied.", StatusCode: http.StatusForbidden})

		_, err := openSession(ctx, client, cfg, logg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BadRequest")
	})

	t.Run("NetworkError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, errors.New("dial tcp: connection refused"))

		_, err := openSession(ctx, client, cfg, logg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestSessionProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("Reachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		sess := NewSession(client, "test-bucket", "us-east-1")
		assert.NoError(t, sess.Probe(ctx))
	})

	t.Run("Vanished", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

		sess := NewSession(client, "test-bucket", "us-east-1")
		assert.ErrorIs(t, sess.Probe(ctx), ErrBucketNotFound)
	})

	t.Run("BackendError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "test-bucket").
			Return(false, minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied.", StatusCode: http.StatusForbidden})

		sess := NewSession(client, "test-bucket", "us-east-1")
		err := sess.Probe(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Access Denied")
	})
}

func TestSessionUpload(t *testing.T) {
	client := new(mocks.Client)
	payload := []byte("fake png bytes")
	client.On("PutObject", mock.Anything, "media", "photos/a.png", mock.Anything, int64(len(payload)),
		minio.PutObjectOptions{ContentType: "image/png"}).
		Return(minio.UploadInfo{Bucket: "media", Key: "photos/a.png", Size: int64(len(payload))}, nil)

	sess := NewSession(client, "media", "eu-central-1")
	info, err := sess.Upload(context.Background(), "photos/a.png", bytes.NewReader(payload), int64(len(payload)), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "photos/a.png", info.Key)
	client.AssertExpectations(t)
}

func TestSessionObjectURL(t *testing.T) {
	sess := NewSession(new(mocks.Client), "media", "eu-central-1")
	assert.Equal(t, "https://media.s3.eu-central-1.amazonaws.com/photos/a.png", sess.ObjectURL("photos/a.png"))

	// Region falls back to the default when unconfigured.
	sess = NewSession(new(mocks.Client), "media", "")
	assert.Equal(t, "https://media.s3.us-east-1.amazonaws.com/photos/a.png", sess.ObjectURL("photos/a.png"))
}
