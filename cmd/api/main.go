// @title BabieCloud API
// @description API for the BabieCloud companion app
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/babiecloud/internal/api"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/internal/service"
	"github.com/limbo/babiecloud/pkg/cleanup"
	"github.com/limbo/babiecloud/pkg/config"
	jwtservice "github.com/limbo/babiecloud/pkg/jwt_service"
	"github.com/limbo/babiecloud/pkg/mailer"
	"github.com/limbo/babiecloud/pkg/objectstore"
)

const hubReadyTimeout = 10 * time.Second

func init() {
	service.InitValidator()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
	if err := repository.Migrate(ctx, &dbCfg); err != nil {
		slog.Error("migrations failed", slog.String("error", err.Error()))
		return
	}
	pool, err := repository.NewPool(ctx, &dbCfg, cfg.PostgresMaxConns)
	if err != nil {
		slog.Error("postgres is unavailable", slog.String("error", err.Error()))
		return
	}
	rdb, err := repository.NewRedisClient(ctx, repository.RedisCfg{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		slog.Error("redis is unavailable", slog.String("error", err.Error()))
		return
	}
	publisher, err := mailer.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
	if err != nil {
		slog.Error("rabbitmq is unavailable", slog.String("error", err.Error()))
		return
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing rabbitmq publisher",
		F: func() error {
			publisher.Close()
			return nil
		},
	})
	storage, err := objectstore.NewS3Store(ctx, objectstore.S3Config{
		BaseEndpoint: cfg.S3BaseEndpoint,
		Region:       cfg.S3Region,
		Bucket:       cfg.S3Bucket,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		URLTTL:       cfg.S3URLTTL,
	})
	if err != nil {
		slog.Error("object storage config error", slog.String("error", err.Error()))
		return
	}

	accountsRepo := repository.NewAccountsRepo(pool)
	tasksRepo := repository.NewTasksRepo(pool)
	moodsRepo := repository.NewMoodsRepo(pool)

	hub := repository.NewNotificationHub(
		repository.PoolListenerDialer(pool),
		slog.Default(),
		repository.ChannelAccountLinks,
		repository.ChannelPartnerRecords,
	)
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("notification hub stopped", slog.String("error", err.Error()))
		}
	}()
	if err := hub.WaitReady(ctx, hubReadyTimeout); err != nil {
		slog.Warn("notification hub is not connected yet, live partner stats will fail until it is",
			slog.String("error", err.Error()))
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping notification hub",
		F: func() error {
			stop()
			<-hubDone
			return nil
		},
	})

	feed := repository.NewLinkedAccountsFeed(accountsRepo, hub, cfg.PartnerFreshness == config.FreshnessRecords)
	aggregator := service.NewPartnerAggregator(accountsRepo, tasksRepo, moodsRepo, feed, service.AggregatorConfig{
		FanOutLimit:     cfg.PartnerFanOutLimit,
		FetchTimeout:    cfg.PartnerFetchTimeout,
		RefreshInterval: cfg.PartnerRefreshInterval,
	}, slog.Default())

	serv := api.New(&api.ServicesList{
		AccountService: service.NewAccountService(
			accountsRepo,
			repository.NewResetTokensRepo(rdb),
			publisher,
			service.PasswordResetConfig{
				TokenTTL: cfg.ResetTokenTTL,
				URL:      cfg.ResetPasswordURL,
			},
			slog.Default(),
		),
		TasksService:    service.NewTasksService(tasksRepo),
		MoodsService:    service.NewMoodsService(moodsRepo, accountsRepo),
		PartnersService: aggregator,
		WidgetsService:  service.NewWidgetsService(repository.NewWidgetOrderRepo(rdb), repository.NewPhotosRepo(pool), storage),
		JwtService:      jwtservice.New(cfg.JWTSecret, cfg.TokenTTL),
	})
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
