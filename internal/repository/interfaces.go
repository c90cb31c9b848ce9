package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/babiecloud/pkg/entity"
)

type AccountsRepositoryI interface {
	// Creates new account. Fills ID and CreatedAt on success
	Create(ctx context.Context, account *entity.Account) error
	// Looks up account by email. Used for login and password reset
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Looks up account by id. Used by auth middleware
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	// Lists accounts whose linked_to equals coordinatorID, oldest first
	ListLinked(ctx context.Context, coordinatorID uuid.UUID) ([]*entity.Account, error)
	// Sets or clears (nil) the coordinating account
	SetLinkedTo(ctx context.Context, id uuid.UUID, linkedTo *uuid.UUID) error
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type TasksRepositoryI interface {
	// Creates task. Fills ID and CreatedAt on success
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists every task of owner ordered by due date
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)
	// Updates title, description and due date
	Update(ctx context.Context, task *entity.Task) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MoodsRepositoryI interface {
	// Appends mood entry. Fills ID and Timestamp on success
	Create(ctx context.Context, mood *entity.Mood) error
	// Lists every mood entry of owner, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Mood, error)
}

type PhotosRepositoryI interface {
	Create(ctx context.Context, photo *entity.Photo) error
	Latest(ctx context.Context, ownerID uuid.UUID) (*entity.Photo, error)
}

type WidgetOrderRepositoryI interface {
	Get(ctx context.Context, uid uuid.UUID) ([]entity.WidgetID, error)
	Set(ctx context.Context, uid uuid.UUID, order []entity.WidgetID) error
}

type ResetTokensRepositoryI interface {
	Save(ctx context.Context, token string, uid uuid.UUID, ttl time.Duration) error
	// Returns owner of token and deletes it, so a token works once
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
