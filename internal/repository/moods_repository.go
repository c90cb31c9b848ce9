package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/pkg/entity"
)

type MoodsRepository struct {
	conn PgConnection
}

func NewMoodsRepo(conn PgConnection) *MoodsRepository {
	return &MoodsRepository{
		conn: conn,
	}
}

func (mr *MoodsRepository) Create(ctx context.Context, mood *entity.Mood) error {
	row := mr.conn.QueryRow(ctx,
		`INSERT INTO moods (owner_id, mood, energy, hydration, note) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		mood.OwnerID,
		string(mood.Mood),
		mood.Energy,
		mood.Hydration,
		mood.Note,
	)
	if err := row.Scan(&mood.ID, &mood.Timestamp); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating mood db error: " + err.Error())
	}
	return nil
}

func (mr *MoodsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Mood, error) {
	moods := make([]*entity.Mood, 0)
	rows, err := mr.conn.Query(ctx, `SELECT id, owner_id, mood, energy, hydration, note, created_at
		FROM moods WHERE owner_id = $1 ORDER BY created_at DESC, id ASC;`, ownerID)
	if err != nil {
		return nil, errors.New("getting moods by owner error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			m     entity.Mood
			value string
		)
		err = rows.Scan(&m.ID, &m.OwnerID, &value, &m.Energy, &m.Hydration, &m.Note, &m.Timestamp)
		if err != nil {
			return nil, errors.New("unmarshalling mood error: " + err.Error())
		}
		m.Mood = entity.MoodValue(value)
		moods = append(moods, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return moods, nil
}
