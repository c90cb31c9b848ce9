package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/limbo/babiecloud/internal/service"
	"github.com/limbo/babiecloud/pkg/entity"
	"github.com/limbo/babiecloud/pkg/httputil"
)

type AddMoodRequest struct {
	Mood      entity.MoodValue `json:"mood"`
	Energy    int              `json:"energy"`
	Hydration int              `json:"hydration"`
	Note      string           `json:"note"`
}

type GetMoodsResponse struct {
	UserID string         `json:"uid"`
	Moods  []*entity.Mood `json:"moods"`
}

func (s *Server) GetMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get moods error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	moods, err := s.moodsService.ListMoods(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get moods", err)
		return
	}
	if moods == nil {
		moods = []*entity.Mood{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMoodsResponse{UserID: uid.String(), Moods: moods})
	logger.Info("moods provided")
}

func (s *Server) AddMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add mood error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddMoodRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add mood error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	mood, err := s.moodsService.AddMood(ctx, uid, service.AddMoodRequest{
		Mood:      req.Mood,
		Energy:    req.Energy,
		Hydration: req.Hydration,
		Note:      req.Note,
	})
	if err != nil {
		writeServiceError(w, logger, "add mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, mood)
	logger.Info("mood added", slog.String("mood_id", mood.ID.String()))
}
