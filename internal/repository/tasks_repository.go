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

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO tasks (owner_id, title, description, due_date) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		task.OwnerID,
		task.Title,
		task.Description,
		task.DueDate,
	)
	if err := row.Scan(&task.ID, &task.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating task db error: " + err.Error())
	}
	return nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT owner_id, title, description, due_date, is_completed, created_at FROM tasks WHERE id = $1;`, id)
	if err := row.Scan(&task.OwnerID, &task.Title, &task.Description, &task.DueDate, &task.IsCompleted, &task.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	rows, err := tr.conn.Query(ctx, `SELECT id, owner_id, title, description, due_date, is_completed, created_at
		FROM tasks WHERE owner_id = $1 ORDER BY due_date ASC, created_at ASC;`, ownerID)
	if err != nil {
		return nil, errors.New("getting tasks by owner error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.Task{}
		err = rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.DueDate, &t.IsCompleted, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, due_date = $3 WHERE id = $4;`,
		task.Title, task.Description, task.DueDate, task.ID,
	)
	if err != nil {
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET is_completed = $1 WHERE id = $2;`, completed, id)
	if err != nil {
		return errors.New("error updating task completion: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
