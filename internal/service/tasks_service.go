package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

type TasksService struct {
	repo repository.TasksRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	return &TasksService{
		repo: tasksRepo,
	}
}

func (ts *TasksService) ListTasks(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	tasks, err := ts.repo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) CreateTask(ctx context.Context, uid uuid.UUID, req CreateTaskRequest) (*entity.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	due, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, err)
	}
	task := &entity.Task{
		OwnerID:     uid,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
	}
	if err = ts.repo.Create(ctx, task); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, uid, taskID uuid.UUID, req UpdateTaskRequest) (*entity.Task, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task, err := ts.owned(ctx, uid, taskID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		due, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrValidation, err)
		}
		task.DueDate = due
	}
	if err = ts.repo.Update(ctx, task); err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) SetTaskCompleted(ctx context.Context, uid, taskID uuid.UUID, completed bool) error {
	if _, err := ts.owned(ctx, uid, taskID); err != nil {
		return err
	}
	err := ts.repo.SetCompleted(ctx, taskID, completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, uid, taskID uuid.UUID) error {
	if _, err := ts.owned(ctx, uid, taskID); err != nil {
		return err
	}
	err := ts.repo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) owned(ctx context.Context, uid, taskID uuid.UUID) (*entity.Task, error) {
	task, err := ts.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if task.OwnerID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return task, nil
}
