package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/babiecloud/pkg/cleanup"
	"github.com/limbo/babiecloud/pkg/config"
	"github.com/limbo/babiecloud/pkg/mailer"
)

const prefetch = 16

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	if !cfg.MailSendEnabled {
		slog.Info("MAIL_SEND_ENABLED=false, email worker disabled")
		return
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("mailgun is not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer cleanup.CleanUp()

	conn, ch, err := mailer.DialQueue(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
	if err != nil {
		slog.Error("rabbitmq is unavailable", slog.String("error", err.Error()))
		return
	}
	cleanup.Register(&cleanup.Job{Name: "closing amqp connection", F: conn.Close})
	cleanup.Register(&cleanup.Job{Name: "closing amqp channel", F: ch.Close})

	if err := ch.Qos(prefetch, 0, false); err != nil {
		slog.Error("qos error", slog.String("error", err.Error()))
		return
	}
	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		slog.Error("consume error", slog.String("error", err.Error()))
		return
	}

	worker := mailer.NewWorker(
		mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender),
		slog.Default().With(slog.String("component", "email_worker")),
	)
	slog.Info("email worker listening", slog.String("queue", cfg.RabbitMQEmailQueue))
	worker.Consume(ctx, deliveries)
	slog.Info("email worker stopped")
}
