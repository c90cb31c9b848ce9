package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/limbo/babiecloud/internal/service"
	"github.com/limbo/babiecloud/pkg/entity"
	"github.com/limbo/babiecloud/pkg/httputil"
)

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDay(),
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
	}
}

type GetTasksResponse struct {
	UserID string         `json:"uid"`
	Tasks  []TaskResponse `json:"tasks"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

type TaskCompletionRequest struct {
	Completed *bool `json:"completed"`
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get tasks", err)
		return
	}
	resp := GetTasksResponse{UserID: uid.String(), Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, newTaskResponse(t))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("tasks provided")
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, uid, service.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, newTaskResponse(task))
	logger.Info("task created", slog.String("task_id", task.ID.String()))
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update task error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update task error: invalid task id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	var req UpdateTaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, uid, taskID, service.UpdateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(w, logger, "update task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newTaskResponse(task))
	logger.Info("task updated", slog.String("task_id", taskID.String()))
}

func (s *Server) SetTaskCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("task completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task completion error: invalid task id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	var req TaskCompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Completed == nil {
		logger.Error("task completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.tasksService.SetTaskCompleted(ctx, uid, taskID, *req.Completed); err != nil {
		writeServiceError(w, logger, "task completion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task completion changed", slog.String("task_id", taskID.String()), slog.Bool("completed", *req.Completed))
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("task deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task deletion error: invalid task id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.tasksService.DeleteTask(ctx, uid, taskID); err != nil {
		writeServiceError(w, logger, "task deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted", slog.String("task_id", taskID.String()))
}
