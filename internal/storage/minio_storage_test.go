package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
)

type mockMinio struct {
	presignedGetObjectFn func(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error)
	bucketExistsFn       func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn         func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	removeObjectFn       func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	putObjectFn          func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

func (m *mockMinio) PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
	return m.presignedGetObjectFn(ctx, bucket, key, expiry, params)
}
func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}

func TestInitBucket_CreatesMissingBucket(t *testing.T) {
	madeBucket := ""
	client := &mockMinio{
		bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
			return false, nil
		},
		makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
			madeBucket = bucketName
			return nil
		},
	}
	s := &MinioStorage{client: client}

	if err := s.InitBucket("park-media"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if madeBucket != "park-media" {
		t.Errorf("expected bucket to be created, got %q", madeBucket)
	}
}

func TestInitBucket_ExistingBucket(t *testing.T) {
	client := &mockMinio{
		bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
			return true, nil
		},
		makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
			t.Fatal("MakeBucket should not be called for an existing bucket")
			return nil
		},
	}
	s := &MinioStorage{client: client}

	if err := s.InitBucket("park-media"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestGeneratePresignedDownloadURL(t *testing.T) {
	var gotBucket, gotKey string
	var gotExpiry time.Duration
	client := &mockMinio{
		presignedGetObjectFn: func(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
			gotBucket, gotKey, gotExpiry = bucket, key, expiry
			return url.Parse("https://minio.local/presigned/" + key)
		},
	}
	s := &MinioStorage{client: client}

	got, err := s.GeneratePresignedDownloadURL(context.Background(), "park-media", "user-42/abc.jpg", time.Hour)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotBucket != "park-media" || gotKey != "user-42/abc.jpg" || gotExpiry != time.Hour {
		t.Errorf("unexpected args: %q %q %v", gotBucket, gotKey, gotExpiry)
	}
	if got != "https://minio.local/presigned/user-42/abc.jpg" {
		t.Errorf("unexpected URL %q", got)
	}
}

func TestRemoveFile_MapsNotFound(t *testing.T) {
	client := &mockMinio{
		removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
			return minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}
		},
	}
	s := &MinioStorage{client: client}

	err := s.RemoveFile(context.Background(), "park-media", "missing.jpg")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestSaveFile_ForwardsContentType(t *testing.T) {
	var gotOpts minio.PutObjectOptions
	var gotData []byte
	client := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotOpts = opts
			var err error
			gotData, err = io.ReadAll(reader)
			return minio.UploadInfo{}, err
		},
	}
	s := &MinioStorage{client: client}

	data := []byte("payload")
	err := s.SaveFile(context.Background(), "park-media", "abc.jpg", bytes.NewReader(data), int64(len(data)), map[string]string{
		"Content-Type": "image/jpeg",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotOpts.ContentType != "image/jpeg" {
		t.Errorf("content type not forwarded, got %q", gotOpts.ContentType)
	}
	if !bytes.Equal(gotData, data) {
		t.Error("payload not forwarded")
	}
}

func TestSaveFile_MapsUnauthorized(t *testing.T) {
	client := &mockMinio{
		putObjectFn: func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			return minio.UploadInfo{}, minio.ErrorResponse{Code: "AccessDenied"}
		},
	}
	s := &MinioStorage{client: client}

	err := s.SaveFile(context.Background(), "park-media", "abc.jpg", bytes.NewReader(nil), 0, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRemoveFile_MapsInternal(t *testing.T) {
	client := &mockMinio{
		removeObjectFn: func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
			return errors.New("connection reset")
		},
	}
	s := &MinioStorage{client: client}

	err := s.RemoveFile(context.Background(), "park-media", "abc.jpg")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
