package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

type MoodsService struct {
	moods    repository.MoodsRepositoryI
	accounts repository.AccountsRepositoryI
}

func NewMoodsService(moodsRepo repository.MoodsRepositoryI, accountsRepo repository.AccountsRepositoryI) *MoodsService {
	if moodsRepo == nil || accountsRepo == nil {
		log.Fatal("on moods service provided nil dependencies")
	}
	return &MoodsService{
		moods:    moodsRepo,
		accounts: accountsRepo,
	}
}

// AddMood records a mood entry. Only partner accounts keep a mood log.
func (ms *MoodsService) AddMood(ctx context.Context, uid uuid.UUID, req AddMoodRequest) (*entity.Mood, error) {
	req.Note = strings.TrimSpace(req.Note)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	account, err := ms.accounts.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("accounts repository error: " + err.Error())
	}
	if account.Role != entity.RolePartner {
		return nil, errorvalues.ErrRoleNotAllowed
	}
	mood := &entity.Mood{
		OwnerID:   uid,
		Mood:      req.Mood,
		Energy:    req.Energy,
		Hydration: req.Hydration,
		Note:      req.Note,
	}
	if err = ms.moods.Create(ctx, mood); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("moods repository error: " + err.Error())
	}
	return mood, nil
}

func (ms *MoodsService) ListMoods(ctx context.Context, uid uuid.UUID) ([]*entity.Mood, error) {
	moods, err := ms.moods.ListByOwner(ctx, uid)
	if err != nil {
		return nil, errors.New("moods repository error: " + err.Error())
	}
	return moods, nil
}
