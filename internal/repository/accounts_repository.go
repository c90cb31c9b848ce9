package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/pkg/entity"
)

const accountColumns = `id, COALESCE(name, ''), email, password_hash, role, linked_to, notifications_enabled, last_active_at, created_at`

type AccountsRepository struct {
	conn PgConnection
}

func NewAccountsRepo(conn PgConnection) *AccountsRepository {
	return &AccountsRepository{
		conn: conn,
	}
}

func (ar *AccountsRepository) Create(ctx context.Context, account *entity.Account) error {
	if account == nil {
		return errors.New("account is nil")
	}
	row := ar.conn.QueryRow(ctx,
		`INSERT INTO accounts (name, email, password_hash, role, linked_to, notifications_enabled) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		account.Name,
		account.Email,
		account.PasswordHash,
		string(account.Role),
		account.LinkedTo,
		account.NotificationsEnabled,
	)
	if err := row.Scan(&account.ID, &account.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			// FK violation on linked_to
			case "23503":
				return errorvalues.ErrSupportNotFound
			}
		}
		return errors.New("creating account db error: " + err.Error())
	}
	return nil
}

func (ar *AccountsRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	row := ar.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1;`, email)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching account by email error: " + err.Error())
	}
	return account, nil
}

func (ar *AccountsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	row := ar.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1;`, id)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching account by id error: " + err.Error())
	}
	return account, nil
}

func (ar *AccountsRepository) ListLinked(ctx context.Context, coordinatorID uuid.UUID) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0)
	rows, err := ar.conn.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE linked_to = $1 ORDER BY created_at, id;`, coordinatorID)
	if err != nil {
		return nil, errors.New("listing linked accounts error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, errors.New("unmarshalling account error: " + err.Error())
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return accounts, nil
}

func (ar *AccountsRepository) SetLinkedTo(ctx context.Context, id uuid.UUID, linkedTo *uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE accounts SET linked_to = $1 WHERE id = $2;`, linkedTo, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrSupportNotFound
		}
		return errors.New("updating account link error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ar *AccountsRepository) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE accounts SET last_active_at = $1 WHERE id = $2;`, at, id)
	if err != nil {
		return errors.New("updating last activity error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ar *AccountsRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE accounts SET password_hash = $1 WHERE id = $2;`, passwordHash, id)
	if err != nil {
		return errors.New("updating password error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		account entity.Account
		role    string
	)
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&role,
		&account.LinkedTo,
		&account.NotificationsEnabled,
		&account.LastActiveAt,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.Role = entity.Role(role)
	return &account, nil
}
