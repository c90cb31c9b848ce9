package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name     string      `validate:"required,min=1,max=100,display_name"`
	Email    string      `validate:"required,email,max=254"`
	Password string      `validate:"required,min=8,max=72"`
	Role     entity.Role `validate:"required,oneof=partner support"`
	LinkedTo *uuid.UUID
}

type CreateTaskRequest struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
	DueDate     string `validate:"required,datetime=2006-01-02"`
}

// Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `validate:"omitempty,min=1,max=200"`
	Description *string `validate:"omitempty,max=2000"`
	DueDate     *string `validate:"omitempty,datetime=2006-01-02"`
}

type AddMoodRequest struct {
	Mood      entity.MoodValue `validate:"required,oneof=happy ok sad tired stressed"`
	Energy    int              `validate:"min=0,max=4"`
	Hydration int              `validate:"min=0,max=4"`
	Note      string           `validate:"max=1000"`
}

type PhotoUpload struct {
	Photo     *entity.Photo
	UploadURL string
}

type AccountServiceI interface {
	// Validates input, creates account. Returns account's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.Account, error)
	// Compares credentials and records activity. Returns account's data
	Login(ctx context.Context, email, password string) (*entity.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	// Links a partner account to a support account
	Link(ctx context.Context, partnerID, supportID uuid.UUID) error
	Unlink(ctx context.Context, partnerID uuid.UUID) error
	// Sends reset email when the account exists. Unknown emails are not reported
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type TasksServiceI interface {
	ListTasks(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	CreateTask(ctx context.Context, uid uuid.UUID, req CreateTaskRequest) (*entity.Task, error)
	UpdateTask(ctx context.Context, uid, taskID uuid.UUID, req UpdateTaskRequest) (*entity.Task, error)
	SetTaskCompleted(ctx context.Context, uid, taskID uuid.UUID, completed bool) error
	DeleteTask(ctx context.Context, uid, taskID uuid.UUID) error
}

type MoodsServiceI interface {
	AddMood(ctx context.Context, uid uuid.UUID, req AddMoodRequest) (*entity.Mood, error)
	ListMoods(ctx context.Context, uid uuid.UUID) ([]*entity.Mood, error)
}

type PartnersServiceI interface {
	// Delivers live stats for every account linked to coordinatorID until
	// the returned function is called
	Subscribe(coordinatorID uuid.UUID, onUpdate func(entity.PartnerStats)) (func(), error)
	Snapshot(ctx context.Context, coordinatorID uuid.UUID) (entity.PartnerStats, error)
	LinkedPartnerIDs(ctx context.Context, coordinatorID uuid.UUID) ([]uuid.UUID, error)
	PartnerDetails(ctx context.Context, coordinatorID, partnerID uuid.UUID) (*entity.PartnerSummary, error)
}

type WidgetsServiceI interface {
	GetOrder(ctx context.Context, uid uuid.UUID) ([]entity.WidgetID, error)
	SetOrder(ctx context.Context, uid uuid.UUID, order []entity.WidgetID) error
	CreatePhotoUpload(ctx context.Context, uid uuid.UUID, title string) (*PhotoUpload, error)
	LatestPhoto(ctx context.Context, uid uuid.UUID) (*entity.Photo, error)
}

// Live query over accounts linked to a coordinator.
type LinkedAccountsWatcher interface {
	Watch(ctx context.Context, coordinatorID uuid.UUID) (<-chan repository.LinkedAccountsEvent, error)
}

type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type ObjectStorage interface {
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}
