package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/babiecloud/pkg/entity"
	"github.com/limbo/babiecloud/pkg/httputil"
)

const statsEvent = "stats"

type PartnerIDsResponse struct {
	IDs []string `json:"ids"`
}

func (s *Server) GetPartners(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get partners error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.partnersService.Snapshot(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get partners", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("partner stats provided", slog.Int("partners", len(stats.Partners)))
}

func (s *Server) GetPartnerIDs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get partner ids error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ids, err := s.partnersService.LinkedPartnerIDs(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get partner ids", err)
		return
	}
	resp := PartnerIDsResponse{IDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.IDs = append(resp.IDs, id.String())
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) GetPartner(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get partner error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	partnerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get partner error: invalid partner id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid partner id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	summary, err := s.partnersService.PartnerDetails(ctx, uid, partnerID)
	if err != nil {
		writeServiceError(w, logger, "get partner", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

// StreamPartners sends a stats event per aggregator update until the client
// goes away or the stream reports an error. A slow client only receives
// the latest snapshot.
func (s *Server) StreamPartners(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("partner stream error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	updates := make(chan entity.PartnerStats, 1)
	dispose, err := s.partnersService.Subscribe(uid, func(stats entity.PartnerStats) {
		for {
			select {
			case updates <- stats:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	if err != nil {
		writeServiceError(w, logger, "partner stream", err)
		return
	}
	defer dispose()

	sse, err := httputil.NewSSEWriter(w)
	if err != nil {
		logger.Error("partner stream error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "streaming unsupported", nil)
		return
	}
	logger.Info("partner stream opened")
	defer logger.Info("partner stream closed")

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case stats := <-updates:
			if err := sse.Event(statsEvent, stats); err != nil {
				logger.Warn("partner stream write error", slog.String("error", err.Error()))
				return
			}
			// the subscription is over after an error snapshot
			if stats.Error != "" {
				return
			}
		case <-heartbeat.C:
			if err := sse.Comment("ping"); err != nil {
				return
			}
		}
	}
}
