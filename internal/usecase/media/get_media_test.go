package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/parkatlas/park-media-go/internal/mock"
	"github.com/parkatlas/park-media-go/internal/model"
	msuuid "github.com/parkatlas/park-media-go/internal/uuid"
)

func TestGetMedia_RepoError(t *testing.T) {
	repo := &mock.MediaRepository{GetErr: errors.New("db fail")}
	svc := NewMediaGetter(repo, &mock.Storage{}, "media", "thumbs")

	_, err := svc.GetMedia(context.Background(), msuuid.NewUUID())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetMedia_Processing(t *testing.T) {
	repo := &mock.MediaRepository{AssetOut: &model.MediaAsset{Status: model.MediaStatusProcessing}}
	strg := &mock.Storage{PresignedErr: errors.New("should not be called")}
	svc := NewMediaGetter(repo, strg, "media", "thumbs")

	out, err := svc.GetMedia(context.Background(), msuuid.NewUUID())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out.Status != model.MediaStatusProcessing {
		t.Errorf("expected status processing, got %q", out.Status)
	}
	if out.URL != "" || out.ThumbnailURL != "" {
		t.Error("a processing asset has no download links")
	}
}

func TestGetMedia_Failed(t *testing.T) {
	msg := "transcode failed: encoder exited with code 1"
	repo := &mock.MediaRepository{AssetOut: &model.MediaAsset{
		Status:       model.MediaStatusFailed,
		ErrorMessage: &msg,
	}}
	svc := NewMediaGetter(repo, &mock.Storage{}, "media", "thumbs")

	out, err := svc.GetMedia(context.Background(), msuuid.NewUUID())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out.Status != model.MediaStatusFailed {
		t.Errorf("expected status failed, got %q", out.Status)
	}
	if out.ErrorMessage != msg {
		t.Errorf("expected the captured message verbatim, got %q", out.ErrorMessage)
	}
	if out.URL != "" {
		t.Error("a failed asset has no download link")
	}
}

func TestGetMedia_Ready(t *testing.T) {
	mime := "image/jpeg"
	size := int64(123456)
	thumbPath := "user-42/abc_thumb.jpg"
	repo := &mock.MediaRepository{AssetOut: &model.MediaAsset{
		Status:        model.MediaStatusReady,
		MediaType:     model.MediaTypePhoto,
		MimeType:      &mime,
		SizeBytes:     &size,
		Width:         2048,
		Height:        1536,
		StoragePath:   "user-42/abc.jpg",
		ThumbnailPath: &thumbPath,
	}}
	strg := &mock.Storage{PresignedURLOut: "https://minio.local/presigned"}
	svc := NewMediaGetter(repo, strg, "media", "thumbs")

	before := time.Now()
	out, err := svc.GetMedia(context.Background(), msuuid.NewUUID())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out.URL == "" || out.ThumbnailURL == "" {
		t.Error("a ready asset carries both download links")
	}
	if out.MimeType != mime || out.SizeBytes != size {
		t.Errorf("metadata mismatch: %q / %d", out.MimeType, out.SizeBytes)
	}
	if out.Width != 2048 || out.Height != 1536 {
		t.Errorf("expected 2048x1536, got %dx%d", out.Width, out.Height)
	}
	if out.ValidUntil.Before(before.Add(DownloadURLTTL - time.Minute)) {
		t.Error("ValidUntil should reflect the presigned link TTL")
	}
}

func TestGetMedia_ReadyWithoutThumbnail(t *testing.T) {
	repo := &mock.MediaRepository{AssetOut: &model.MediaAsset{
		Status:      model.MediaStatusReady,
		MediaType:   model.MediaTypeVideo,
		StoragePath: "user-42/abc.mp4",
	}}
	strg := &mock.Storage{PresignedURLOut: "https://minio.local/presigned"}
	svc := NewMediaGetter(repo, strg, "media", "thumbs")

	out, err := svc.GetMedia(context.Background(), msuuid.NewUUID())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out.ThumbnailURL != "" {
		t.Error("no thumbnail path means no thumbnail link")
	}
}

func TestGetMedia_PresignError(t *testing.T) {
	repo := &mock.MediaRepository{AssetOut: &model.MediaAsset{
		Status:      model.MediaStatusReady,
		StoragePath: "user-42/abc.jpg",
	}}
	strg := &mock.Storage{PresignedErr: errors.New("minio down")}
	svc := NewMediaGetter(repo, strg, "media", "thumbs")

	if _, err := svc.GetMedia(context.Background(), msuuid.NewUUID()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
