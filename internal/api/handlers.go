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

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	LinkedTo string      `json:"linked_to,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UserID string      `json:"uid"`
	Role   entity.Role `json:"role"`
	Token  string      `json:"token"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type LinkRequest struct {
	SupportID string `json:"support_id"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var linkedTo *uuid.UUID
	if req.LinkedTo != "" {
		id, err := uuid.Parse(req.LinkedTo)
		if err != nil {
			logger.Error("registering error: invalid linked_to")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid support account id", nil)
			return
		}
		linkedTo = &id
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	account, err := s.accountService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		LinkedTo: linkedTo,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		logger.Error("registering error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AuthResponse{
		UserID: account.ID.String(),
		Role:   account.Role,
		Token:  token,
	})
	logger.Info("successful registration", slog.String("uid", account.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	account, err := s.accountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AuthResponse{
		UserID: account.ID.String(),
		Role:   account.Role,
		Token:  token,
	})
	logger.Info("successful login", slog.String("uid", account.ID.String()))
}

// RequestPasswordReset answers 202 whether or not the email is registered.
func (s *Server) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req PasswordResetRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Email == "" {
		logger.Error("password reset error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.accountService.RequestPasswordReset(ctx, req.Email); err != nil {
		writeServiceError(w, logger, "password reset", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
	logger.Info("password reset requested")
}

func (s *Server) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req PasswordResetConfirmRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("password reset confirm error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.accountService.ResetPassword(ctx, req.Token, req.Password); err != nil {
		writeServiceError(w, logger, "password reset confirm", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("password changed")
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	account, err := s.accountService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get account", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, account)
}

func (s *Server) Link(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("link error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LinkRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("link error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	supportID, err := uuid.Parse(req.SupportID)
	if err != nil {
		logger.Error("link error: invalid support id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid support account id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.accountService.Link(ctx, uid, supportID); err != nil {
		writeServiceError(w, logger, "link", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account linked", slog.String("support", supportID.String()))
}

func (s *Server) Unlink(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unlink error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.accountService.Unlink(ctx, uid); err != nil {
		writeServiceError(w, logger, "unlink", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account unlinked")
}
