package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/babiecloud/internal/api"
	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/service"
	"github.com/limbo/babiecloud/pkg/entity"
)

var taskID = uuid.New()

func testTask() *entity.Task {
	return &entity.Task{
		ID:        taskID,
		OwnerID:   userID,
		Title:     "Drink water",
		DueDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}
}

func TestGetTasks(t *testing.T) {
	ts := newTestServer(t)
	t.Run("listed", func(t *testing.T) {
		ts.tasks.EXPECT().ListTasks(gomock.Any(), userID).Return([]*entity.Task{testTask()}, nil)
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil), userID, entity.RolePartner)
		ts.serv.GetTasks(rr, r)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.GetTasksResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "2025-06-01", resp.Tasks[0].DueDate)
		assert.Equal(t, taskID.String(), resp.Tasks[0].ID)
	})
	t.Run("empty list is an array", func(t *testing.T) {
		ts.tasks.EXPECT().ListTasks(gomock.Any(), userID).Return(nil, nil)
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil), userID, entity.RolePartner)
		ts.serv.GetTasks(rr, r)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"tasks":[]`)
	})
	t.Run("service error", func(t *testing.T) {
		ts.tasks.EXPECT().ListTasks(gomock.Any(), userID).Return(nil, errors.New("db error"))
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil), userID, entity.RolePartner)
		ts.serv.GetTasks(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCreateTask(t *testing.T) {
	ts := newTestServer(t)
	req := api.CreateTaskRequest{Title: "Drink water", DueDate: "2025-06-01"}
	body := mustJSON(t, req)
	want := service.CreateTaskRequest{Title: req.Title, DueDate: req.DueDate}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ts.tasks.EXPECT().CreateTask(gomock.Any(), userID, want).Return(testTask(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid date",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.tasks.EXPECT().CreateTask(gomock.Any(), userID, want).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("DueDate: datetime")))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ts.tasks.EXPECT().CreateTask(gomock.Any(), userID, want).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", tc.Body), userID, entity.RolePartner)
			ts.serv.CreateTask(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.serv.CreateTask(rr, httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateTask(t *testing.T) {
	ts := newTestServer(t)
	title := "Drink more water"
	body := mustJSON(t, map[string]any{"title": title})
	want := service.UpdateTaskRequest{Title: &title}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		ID           string
		MockPrepFunc func()
	}{
		{
			Desc:         "updated",
			ExpectedCode: http.StatusOK,
			ID:           taskID.String(),
			MockPrepFunc: func() {
				task := testTask()
				task.Title = title
				ts.tasks.EXPECT().UpdateTask(gomock.Any(), userID, taskID, want).Return(task, nil)
			},
		},
		{
			Desc:         "foreign task",
			ExpectedCode: http.StatusForbidden,
			ID:           taskID.String(),
			MockPrepFunc: func() {
				ts.tasks.EXPECT().UpdateTask(gomock.Any(), userID, taskID, want).Return(nil, errorvalues.ErrWrongOwner)
			},
		},
		{
			Desc:         "missing task",
			ExpectedCode: http.StatusNotFound,
			ID:           taskID.String(),
			MockPrepFunc: func() {
				ts.tasks.EXPECT().UpdateTask(gomock.Any(), userID, taskID, want).Return(nil, errorvalues.ErrTaskNotFound)
			},
		},
		{
			Desc:         "invalid id",
			ExpectedCode: http.StatusBadRequest,
			ID:           "42",
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := asUser(httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+tc.ID, bytes.NewReader(body)), userID, entity.RolePartner)
			r.SetPathValue("id", tc.ID)
			ts.serv.UpdateTask(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestSetTaskCompletion(t *testing.T) {
	ts := newTestServer(t)
	send := func(body []byte) int {
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodPut, "/api/v1/tasks/"+taskID.String()+"/completion", bytes.NewReader(body)), userID, entity.RolePartner)
		r.SetPathValue("id", taskID.String())
		ts.serv.SetTaskCompletion(rr, r)
		return rr.Code
	}
	t.Run("completed", func(t *testing.T) {
		ts.tasks.EXPECT().SetTaskCompleted(gomock.Any(), userID, taskID, true).Return(nil)
		assert.Equal(t, http.StatusNoContent, send([]byte(`{"completed":true}`)))
	})
	t.Run("reopened", func(t *testing.T) {
		ts.tasks.EXPECT().SetTaskCompleted(gomock.Any(), userID, taskID, false).Return(nil)
		assert.Equal(t, http.StatusNoContent, send([]byte(`{"completed":false}`)))
	})
	t.Run("missing flag", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, send([]byte(`{}`)))
	})
	t.Run("foreign task", func(t *testing.T) {
		ts.tasks.EXPECT().SetTaskCompleted(gomock.Any(), userID, taskID, true).Return(errorvalues.ErrWrongOwner)
		assert.Equal(t, http.StatusForbidden, send([]byte(`{"completed":true}`)))
	})
}

func TestDeleteTask(t *testing.T) {
	ts := newTestServer(t)
	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "deleted", ExpectedCode: http.StatusNoContent},
		{Desc: "missing", ExpectedCode: http.StatusNotFound, Err: errorvalues.ErrTaskNotFound},
		{Desc: "service error", ExpectedCode: http.StatusInternalServerError, Err: errors.New("db error")},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ts.tasks.EXPECT().DeleteTask(gomock.Any(), userID, taskID).Return(tc.Err)
			rr := httptest.NewRecorder()
			r := asUser(httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/"+taskID.String(), nil), userID, entity.RolePartner)
			r.SetPathValue("id", taskID.String())
			ts.serv.DeleteTask(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}
