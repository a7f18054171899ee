package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	guuid "github.com/google/uuid"

	"github.com/parkatlas/park-media-go/internal/model"
	msuuid "github.com/parkatlas/park-media-go/internal/uuid"
)

var testID = msuuid.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

func newMockRepo(t *testing.T) (*MediaRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	return NewMediaRepository(sqlDB), mock, func() { _ = sqlDB.Close() }
}

func TestMediaRepository_Create_Success(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	asset := &model.MediaAsset{
		ID:               testID,
		OwnerID:          "user-42",
		ParkCode:         "YELL",
		Status:           model.MediaStatusProcessing,
		OriginalFilename: "geyser.jpg",
	}

	mock.ExpectExec("INSERT INTO media_assets").
		WithArgs(
			asset.ID,
			asset.OwnerID,
			asset.ParkCode,
			asset.MediaType,
			asset.Status,
			asset.OriginalFilename,
			asset.MimeType,
			asset.SizeBytes,
			asset.Width,
			asset.Height,
			asset.DurationSecs,
			asset.StoragePath,
			asset.ThumbnailPath,
			asset.ErrorMessage,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), asset); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_Create_ExecError(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectExec("INSERT INTO media_assets").
		WillReturnError(errors.New("db.Exec failed"))

	err := repo.Create(context.Background(), &model.MediaAsset{ID: testID})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "db.Exec failed" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestMediaRepository_Update_Success(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mime := "image/jpeg"
	size := int64(12345)
	thumb := "user-42/abc_thumb.jpg"
	asset := &model.MediaAsset{
		ID:            testID,
		MediaType:     model.MediaTypePhoto,
		Status:        model.MediaStatusReady,
		MimeType:      &mime,
		SizeBytes:     &size,
		Width:         2048,
		Height:        1536,
		StoragePath:   "user-42/abc.jpg",
		ThumbnailPath: &thumb,
	}

	mock.ExpectExec("UPDATE media_assets").
		WithArgs(
			asset.MediaType,
			asset.Status,
			asset.MimeType,
			asset.SizeBytes,
			asset.Width,
			asset.Height,
			asset.DurationSecs,
			asset.StoragePath,
			asset.ThumbnailPath,
			asset.ErrorMessage,
			asset.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), asset); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestMediaRepository_GetByID_Success(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "park_code", "media_type", "status", "original_filename",
		"mime_type", "size_bytes", "width", "height", "duration_secs",
		"storage_path", "thumbnail_path", "error_message", "created_at", "updated_at",
	}).AddRow(
		testID, "user-42", "YELL", model.MediaTypePhoto, model.MediaStatusReady, "geyser.jpg",
		"image/jpeg", int64(12345), 2048, 1536, 0.0,
		"user-42/abc.jpg", nil, nil, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM media_assets").
		WithArgs(testID).
		WillReturnRows(rows)

	asset, err := repo.GetByID(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if asset.ID != testID || asset.ParkCode != "YELL" || asset.Status != model.MediaStatusReady {
		t.Errorf("unexpected asset: %+v", asset)
	}
	if asset.Width != 2048 || asset.Height != 1536 {
		t.Errorf("expected 2048x1536, got %dx%d", asset.Width, asset.Height)
	}
}

func TestMediaRepository_GetByID_QueryError(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	mock.ExpectQuery("SELECT (.+) FROM media_assets").
		WillReturnError(errors.New("query failed"))

	if _, err := repo.GetByID(context.Background(), testID); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestMediaRepository_ListProcessingBefore(t *testing.T) {
	repo, mock, closeFn := newMockRepo(t)
	defer closeFn()

	otherID := msuuid.UUID(guuid.MustParse("11111111-2222-3333-4444-555555555555"))
	cutoff := time.Now().Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(model.MediaStatusProcessing, cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testID).AddRow(otherID))

	ids, err := repo.ListProcessingBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("ListProcessingBefore() returned unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != testID || ids[1] != otherID {
		t.Errorf("unexpected ids: %v", ids)
	}
}
