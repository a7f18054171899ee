package mock

import (
	"context"
	"io"
	"time"

	"github.com/parkatlas/park-media-go/internal/port"
)

// SavedFile records one SaveFile call.
type SavedFile struct {
	Bucket  string
	FileKey string
	Data    []byte
	Opts    map[string]string
}

// Storage implements the storage interface for tests.
type Storage struct {
	PresignedURLOut string

	Saved   []SavedFile
	Removed []string

	InitErr      error
	PresignedErr error
	RemoveErr    error
	SaveErr      error
	// SaveErrAt is the 1-based SaveFile call that returns SaveErr; zero
	// makes every call fail.
	SaveErrAt int

	InitCalled   bool
	SaveCalled   bool
	RemoveCalled bool
	SaveCount    int
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(bucket string) error {
	m.InitCalled = true
	return m.InitErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	if m.PresignedErr != nil {
		return "", m.PresignedErr
	}
	return m.PresignedURLOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.Removed = append(m.Removed, bucket+"/"+fileKey)
	return m.RemoveErr
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SaveCount++
	if m.SaveErr != nil && (m.SaveErrAt == 0 || m.SaveErrAt == m.SaveCount) {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.Saved = append(m.Saved, SavedFile{Bucket: bucket, FileKey: fileKey, Data: data, Opts: opts})
	return nil
}
