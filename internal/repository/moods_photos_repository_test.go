package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

func TestCreateMood(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMoodsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO moods (owner_id, mood, energy, hydration, note) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`)
	t.Run("success", func(t *testing.T) {
		mood := &entity.Mood{OwnerID: ownerID, Mood: entity.MoodTired, Energy: 1, Hydration: 3, Note: "long night"}
		id := uuid.New()
		ts := time.Now()
		mock.ExpectQuery(query).
			WithArgs(ownerID, "tired", 1, 3, "long night").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, ts))
		require.NoError(t, repo.Create(ctx, mood))
		assert.Equal(t, id, mood.ID)
		assert.Equal(t, ts, mood.Timestamp)
	})
	t.Run("FK violation", func(t *testing.T) {
		mood := &entity.Mood{OwnerID: ownerID, Mood: entity.MoodOK}
		mock.ExpectQuery(query).
			WithArgs(ownerID, "ok", 0, 0, "").
			WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Create(ctx, mood), errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMoodsByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMoodsRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`FROM moods WHERE owner_id = $1 ORDER BY created_at DESC, id ASC;`)
	columns := []string{"id", "owner_id", "mood", "energy", "hydration", "note", "created_at"}
	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(query).WithArgs(ownerID).WillReturnRows(
			pgxmock.NewRows(columns).
				AddRow(uuid.New(), ownerID, "happy", 4, 4, "", now).
				AddRow(uuid.New(), ownerID, "sad", 1, 2, "rain", now.Add(-time.Hour)),
		)
		moods, err := repo.ListByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, moods, 2)
		assert.Equal(t, entity.MoodHappy, moods[0].Mood)
		assert.Equal(t, entity.MoodSad, moods[1].Mood)
		assert.Equal(t, "rain", moods[1].Note)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(ownerID).WillReturnError(errors.New("db error"))
		_, err := repo.ListByOwner(ctx, ownerID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhotos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPhotosRepo(mock)
	ctx := context.Background()
	insert := regexp.QuoteMeta(`INSERT INTO widget_content (owner_id, type, title, storage_key) VALUES ($1, 'photo', $2, $3) RETURNING id, created_at;`)
	latest := regexp.QuoteMeta(`SELECT id, title, storage_key, created_at FROM widget_content`)
	t.Run("create", func(t *testing.T) {
		photo := &entity.Photo{OwnerID: ownerID, Title: "beach", StorageKey: "users/a/photos/b"}
		id := uuid.New()
		created := time.Now()
		mock.ExpectQuery(insert).
			WithArgs(ownerID, "beach", "users/a/photos/b").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
		require.NoError(t, repo.Create(ctx, photo))
		assert.Equal(t, id, photo.ID)
	})
	t.Run("latest", func(t *testing.T) {
		id := uuid.New()
		created := time.Now()
		mock.ExpectQuery(latest).WithArgs(ownerID).WillReturnRows(
			pgxmock.NewRows([]string{"id", "title", "storage_key", "created_at"}).
				AddRow(id, "beach", "users/a/photos/b", created),
		)
		photo, err := repo.Latest(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, entity.Photo{ID: id, OwnerID: ownerID, Title: "beach", StorageKey: "users/a/photos/b", CreatedAt: created}, *photo)
	})
	t.Run("no photos", func(t *testing.T) {
		mock.ExpectQuery(latest).WithArgs(ownerID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Latest(ctx, ownerID)
		assert.ErrorIs(t, err, errorvalues.ErrPhotoNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
