package api

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/limbo/babiecloud/pkg/entity"
	"github.com/limbo/babiecloud/pkg/httputil"
)

type WidgetOrderBody struct {
	Order []entity.WidgetID `json:"order"`
}

type PhotoUploadRequest struct {
	Title string `json:"title"`
}

type PhotoUploadResponse struct {
	Photo     *entity.Photo `json:"photo"`
	UploadURL string        `json:"upload_url"`
}

func (s *Server) GetWidgetOrder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get widget order error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	order, err := s.widgetsService.GetOrder(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get widget order", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WidgetOrderBody{Order: order})
}

func (s *Server) SetWidgetOrder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set widget order error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WidgetOrderBody
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set widget order error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.widgetsService.SetOrder(ctx, uid, req.Order); err != nil {
		writeServiceError(w, logger, "set widget order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("widget order saved")
}

func (s *Server) GetLatestPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get photo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	photo, err := s.widgetsService.LatestPhoto(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get photo", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, photo)
}

func (s *Server) CreatePhotoUpload(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("photo upload error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PhotoUploadRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("photo upload error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	upload, err := s.widgetsService.CreatePhotoUpload(ctx, uid, req.Title)
	if err != nil {
		writeServiceError(w, logger, "photo upload", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, PhotoUploadResponse{
		Photo:     upload.Photo,
		UploadURL: upload.UploadURL,
	})
	logger.Info("photo upload created")
}
