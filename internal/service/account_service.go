package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
	"github.com/limbo/babiecloud/pkg/mailer"
)

const resetTokenBytes = 32

type PasswordResetConfig struct {
	TokenTTL time.Duration
	// Page of the client which accepts ?token=
	URL string
}

type AccountService struct {
	accounts  repository.AccountsRepositoryI
	tokens    repository.ResetTokensRepositoryI
	publisher EmailPublisher
	reset     PasswordResetConfig
	logger    *slog.Logger
}

func NewAccountService(
	accounts repository.AccountsRepositoryI,
	tokens repository.ResetTokensRepositoryI,
	publisher EmailPublisher,
	reset PasswordResetConfig,
	logger *slog.Logger,
) *AccountService {
	if accounts == nil || tokens == nil || publisher == nil {
		log.Fatal("on account service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		accounts:  accounts,
		tokens:    tokens,
		publisher: publisher,
		reset:     reset,
		logger:    logger,
	}
}

func (as *AccountService) Register(ctx context.Context, req *RegisterRequest) (*entity.Account, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if req.LinkedTo != nil {
		if req.Role != entity.RolePartner {
			return nil, errorvalues.ErrRoleNotAllowed
		}
		if err := as.checkSupport(ctx, *req.LinkedTo); err != nil {
			return nil, err
		}
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	account := &entity.Account{
		Name:                 strings.TrimSpace(req.Name),
		Email:                req.Email,
		PasswordHash:         passwordHash,
		Role:                 req.Role,
		LinkedTo:             req.LinkedTo,
		NotificationsEnabled: true,
	}
	err = as.accounts.Create(ctx, account)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists), errors.Is(err, errorvalues.ErrSupportNotFound):
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return account, nil
}

func (as *AccountService) Login(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := as.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	now := time.Now().UTC()
	if err = as.accounts.TouchLastActive(ctx, account.ID, now); err != nil {
		as.logger.Warn("recording last activity failed",
			slog.String("uid", account.ID.String()),
			slog.String("error", err.Error()))
	} else {
		account.LastActiveAt = &now
	}
	return account, nil
}

func (as *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := as.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return account, nil
}

func (as *AccountService) Link(ctx context.Context, partnerID, supportID uuid.UUID) error {
	partner, err := as.GetByID(ctx, partnerID)
	if err != nil {
		return err
	}
	if partner.Role != entity.RolePartner {
		return errorvalues.ErrRoleNotAllowed
	}
	if err = as.checkSupport(ctx, supportID); err != nil {
		return err
	}
	return as.setLink(ctx, partnerID, &supportID)
}

func (as *AccountService) Unlink(ctx context.Context, partnerID uuid.UUID) error {
	return as.setLink(ctx, partnerID, nil)
}

func (as *AccountService) setLink(ctx context.Context, partnerID uuid.UUID, supportID *uuid.UUID) error {
	err := as.accounts.SetLinkedTo(ctx, partnerID, supportID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrSupportNotFound):
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

func (as *AccountService) checkSupport(ctx context.Context, supportID uuid.UUID) error {
	support, err := as.accounts.FindByID(ctx, supportID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errorvalues.ErrSupportNotFound
		}
		return errors.New("repository searching error: " + err.Error())
	}
	if support.Role != entity.RoleSupport {
		return errorvalues.ErrSupportNotFound
	}
	return nil
}

func (as *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := as.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil
		}
		return errors.New("repository searching error: " + err.Error())
	}
	token, err := newResetToken()
	if err != nil {
		return errors.New("generating reset token error: " + err.Error())
	}
	link, err := resetLink(as.reset.URL, token)
	if err != nil {
		return err
	}
	if err = as.tokens.Save(ctx, token, account.ID, as.reset.TokenTTL); err != nil {
		return errors.New("saving reset token error: " + err.Error())
	}
	job := mailer.EmailJob{
		To:       account.Email,
		Template: mailer.TemplateResetPassword,
		Data: map[string]any{
			"Name":      account.Name,
			"Link":      link,
			"ExpiresIn": as.reset.TokenTTL.String(),
		},
	}
	if err = as.publisher.PublishJSON(ctx, job); err != nil {
		return errors.New("publishing reset email error: " + err.Error())
	}
	return nil
}

func (as *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validateStruct(resetPasswordInput{Token: token, Password: newPassword}); err != nil {
		return err
	}
	uid, err := as.tokens.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, errorvalues.ErrResetTokenNotFound) {
			return err
		}
		return errors.New("consuming reset token error: " + err.Error())
	}
	passwordHash, err := Hash(newPassword)
	if err != nil {
		return errors.New("hashing password error: " + err.Error())
	}
	if err = as.accounts.UpdatePassword(ctx, uid, passwordHash); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}

type resetPasswordInput struct {
	Token    string `validate:"required,hexadecimal,len=64"`
	Password string `validate:"required,min=8,max=72"`
}

func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func resetLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.New("parsing reset url error: " + err.Error())
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
