package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/pkg/cleanup"
	"github.com/limbo/babiecloud/pkg/entity"
)

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to redis and registers its closing as a cleanup job.
func NewRedisClient(ctx context.Context, cfg RedisCfg) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return rdb, nil
}

type WidgetOrderRepository struct {
	rdb redis.Cmdable
}

func NewWidgetOrderRepo(rdb redis.Cmdable) *WidgetOrderRepository {
	return &WidgetOrderRepository{rdb: rdb}
}

func widgetOrderKey(uid uuid.UUID) string {
	return "widgetOrder:" + uid.String()
}

func (wr *WidgetOrderRepository) Get(ctx context.Context, uid uuid.UUID) ([]entity.WidgetID, error) {
	raw, err := wr.rdb.Get(ctx, widgetOrderKey(uid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.WidgetID{}, nil
	}
	if err != nil {
		return nil, errors.New("getting widget order error: " + err.Error())
	}
	order := make([]entity.WidgetID, 0)
	// A corrupted value is treated like a missing one.
	if err := sonic.Unmarshal(raw, &order); err != nil {
		return []entity.WidgetID{}, nil
	}
	return order, nil
}

func (wr *WidgetOrderRepository) Set(ctx context.Context, uid uuid.UUID, order []entity.WidgetID) error {
	raw, err := sonic.Marshal(order)
	if err != nil {
		return errors.New("marshalling widget order error: " + err.Error())
	}
	if err := wr.rdb.Set(ctx, widgetOrderKey(uid), raw, 0).Err(); err != nil {
		return errors.New("saving widget order error: " + err.Error())
	}
	return nil
}

type ResetTokensRepository struct {
	rdb redis.Cmdable
}

func NewResetTokensRepo(rdb redis.Cmdable) *ResetTokensRepository {
	return &ResetTokensRepository{rdb: rdb}
}

func resetTokenKey(token string) string {
	return "passwordReset:" + token
}

func (rr *ResetTokensRepository) Save(ctx context.Context, token string, uid uuid.UUID, ttl time.Duration) error {
	if err := rr.rdb.Set(ctx, resetTokenKey(token), uid.String(), ttl).Err(); err != nil {
		return errors.New("saving reset token error: " + err.Error())
	}
	return nil
}

func (rr *ResetTokensRepository) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := rr.rdb.GetDel(ctx, resetTokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, errorvalues.ErrResetTokenNotFound
	}
	if err != nil {
		return uuid.Nil, errors.New("consuming reset token error: " + err.Error())
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errorvalues.ErrResetTokenNotFound
	}
	return uid, nil
}
