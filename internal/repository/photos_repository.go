package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/pkg/entity"
)

type PhotosRepository struct {
	conn PgConnection
}

func NewPhotosRepo(conn PgConnection) *PhotosRepository {
	return &PhotosRepository{
		conn: conn,
	}
}

func (pr *PhotosRepository) Create(ctx context.Context, photo *entity.Photo) error {
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO widget_content (owner_id, type, title, storage_key) VALUES ($1, 'photo', $2, $3) RETURNING id, created_at;`,
		photo.OwnerID,
		photo.Title,
		photo.StorageKey,
	)
	if err := row.Scan(&photo.ID, &photo.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating photo db error: " + err.Error())
	}
	return nil
}

func (pr *PhotosRepository) Latest(ctx context.Context, ownerID uuid.UUID) (*entity.Photo, error) {
	photo := entity.Photo{OwnerID: ownerID}
	row := pr.conn.QueryRow(ctx, `SELECT id, title, storage_key, created_at FROM widget_content
		WHERE owner_id = $1 AND type = 'photo' ORDER BY created_at DESC LIMIT 1;`, ownerID)
	if err := row.Scan(&photo.ID, &photo.Title, &photo.StorageKey, &photo.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPhotoNotFound
		}
		return nil, errors.New("getting latest photo error: " + err.Error())
	}
	return &photo, nil
}
