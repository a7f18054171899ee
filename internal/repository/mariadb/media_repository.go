package mariadb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/parkatlas/park-media-go/internal/model"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/uuid"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, asset *model.MediaAsset) error {
	log.Printf("creating database record for media #%s, at status %q...", asset.ID, asset.Status)

	const query = `
      INSERT INTO media_assets
        (id, owner_id, park_code, media_type, status, original_filename, mime_type, size_bytes, width, height, duration_secs, storage_path, thumbnail_path, error_message)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.OwnerID, asset.ParkCode,
		asset.MediaType, asset.Status, asset.OriginalFilename,
		asset.MimeType, asset.SizeBytes,
		asset.Width, asset.Height, asset.DurationSecs,
		asset.StoragePath, asset.ThumbnailPath, asset.ErrorMessage,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) Update(ctx context.Context, asset *model.MediaAsset) error {
	log.Printf("updating database record for media #%s, with status %q...", asset.ID, asset.Status)

	const query = `
      UPDATE media_assets
      SET
        media_type     = ?,
        status         = ?,
        mime_type      = ?,
        size_bytes     = ?,
        width          = ?,
        height         = ?,
        duration_secs  = ?,
        storage_path   = ?,
        thumbnail_path = ?,
        error_message  = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
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
		asset.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, ID uuid.UUID) (*model.MediaAsset, error) {
	log.Printf("fetching media #%s from the database...", ID)

	const query = `
      SELECT id, owner_id, park_code, media_type, status, original_filename, mime_type, size_bytes, width, height, duration_secs, storage_path, thumbnail_path, error_message, created_at, updated_at
      FROM media_assets
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var asset model.MediaAsset
	if err := row.Scan(
		&asset.ID, &asset.OwnerID, &asset.ParkCode,
		&asset.MediaType, &asset.Status, &asset.OriginalFilename,
		&asset.MimeType, &asset.SizeBytes,
		&asset.Width, &asset.Height, &asset.DurationSecs,
		&asset.StoragePath, &asset.ThumbnailPath, &asset.ErrorMessage,
		&asset.CreatedAt, &asset.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &asset, nil
}

// ListProcessingBefore returns the IDs of assets stranded in 'processing'
// since before the cutoff, oldest first.
func (r *MediaRepository) ListProcessingBefore(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	const query = `
      SELECT id
      FROM media_assets
      WHERE status = ? AND created_at < ?
      ORDER BY created_at ASC
    `
	rows, err := r.db.QueryContext(ctx, query, model.MediaStatusProcessing, before)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
