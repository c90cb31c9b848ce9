package api_test

import (
	"bytes"
	"errors"
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

func TestAddMood(t *testing.T) {
	ts := newTestServer(t)
	req := api.AddMoodRequest{Mood: entity.MoodTired, Energy: 1, Hydration: 3, Note: "long day"}
	body := mustJSON(t, req)
	want := service.AddMoodRequest{Mood: req.Mood, Energy: 1, Hydration: 3, Note: "long day"}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "added",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ts.moods.EXPECT().AddMood(gomock.Any(), userID, want).Return(&entity.Mood{
					ID:        uuid.New(),
					OwnerID:   userID,
					Mood:      entity.MoodTired,
					Timestamp: time.Now(),
				}, nil)
			},
		},
		{
			Desc:         "support accounts have no moods",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				ts.moods.EXPECT().AddMood(gomock.Any(), userID, want).Return(nil, errorvalues.ErrRoleNotAllowed)
			},
		},
		{
			Desc:         "unknown mood",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.moods.EXPECT().AddMood(gomock.Any(), userID, want).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Mood: oneof")))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/moods", bytes.NewReader(body)), userID, entity.RolePartner)
			ts.serv.AddMood(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestGetMoods(t *testing.T) {
	ts := newTestServer(t)
	ts.moods.EXPECT().ListMoods(gomock.Any(), userID).Return(nil, nil)
	rr := httptest.NewRecorder()
	r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil), userID, entity.RolePartner)
	ts.serv.GetMoods(rr, r)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"moods":[]`)
}

func TestWidgetOrder(t *testing.T) {
	ts := newTestServer(t)
	order := []entity.WidgetID{entity.WidgetTasks, entity.WidgetPhoto}

	t.Run("get", func(t *testing.T) {
		ts.widgets.EXPECT().GetOrder(gomock.Any(), userID).Return(order, nil)
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/widgets/order", nil), userID, entity.RolePartner)
		ts.serv.GetWidgetOrder(rr, r)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.WidgetOrderBody
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, order, resp.Order)
	})

	body := mustJSON(t, api.WidgetOrderBody{Order: order})
	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "saved", ExpectedCode: http.StatusNoContent},
		{Desc: "unknown widget", ExpectedCode: http.StatusBadRequest, Err: errors.Join(errorvalues.ErrValidation, errors.New("Order[0]: widget_id"))},
		{Desc: "redis down", ExpectedCode: http.StatusInternalServerError, Err: errors.New("redis error")},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ts.widgets.EXPECT().SetOrder(gomock.Any(), userID, order).Return(tc.Err)
			rr := httptest.NewRecorder()
			r := asUser(httptest.NewRequest(http.MethodPut, "/api/v1/widgets/order", bytes.NewReader(body)), userID, entity.RolePartner)
			ts.serv.SetWidgetOrder(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestPhotoWidget(t *testing.T) {
	ts := newTestServer(t)
	photo := &entity.Photo{ID: uuid.New(), OwnerID: userID, Title: "beach", URL: "https://s3.local/get/key"}

	t.Run("latest", func(t *testing.T) {
		ts.widgets.EXPECT().LatestPhoto(gomock.Any(), userID).Return(photo, nil)
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/widgets/photo", nil), userID, entity.RolePartner)
		ts.serv.GetLatestPhoto(rr, r)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), photo.URL)
	})
	t.Run("no photo yet", func(t *testing.T) {
		ts.widgets.EXPECT().LatestPhoto(gomock.Any(), userID).Return(nil, errorvalues.ErrPhotoNotFound)
		rr := httptest.NewRecorder()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/widgets/photo", nil), userID, entity.RolePartner)
		ts.serv.GetLatestPhoto(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("upload", func(t *testing.T) {
		ts.widgets.EXPECT().CreatePhotoUpload(gomock.Any(), userID, "beach").Return(&service.PhotoUpload{
			Photo:     photo,
			UploadURL: "https://s3.local/put/key",
		}, nil)
		rr := httptest.NewRecorder()
		body := mustJSON(t, api.PhotoUploadRequest{Title: "beach"})
		r := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/widgets/photo", bytes.NewReader(body)), userID, entity.RolePartner)
		ts.serv.CreatePhotoUpload(rr, r)
		require.Equal(t, http.StatusCreated, rr.Code)
		var resp api.PhotoUploadResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "https://s3.local/put/key", resp.UploadURL)
		assert.Equal(t, photo.ID, resp.Photo.ID)
	})
}
