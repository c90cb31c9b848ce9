package mailer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const handleTimeout = 15 * time.Second

// Consume handles deliveries until ctx is done or the channel is closed.
// Malformed jobs are dropped, failed sends go back to the queue.
func (w *Worker) Consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			w.deliver(ctx, d)
		}
	}
}

func (w *Worker) deliver(ctx context.Context, d amqp.Delivery) {
	sendCtx, cancel := context.WithTimeout(ctx, handleTimeout)
	err := w.Handle(sendCtx, d.Body)
	cancel()
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, ErrMalformedJob):
		w.logger.Warn("dropping email job", slog.String("error", err.Error()))
		_ = d.Nack(false, false)
	default:
		w.logger.Error("email job failed, requeueing", slog.String("error", err.Error()))
		_ = d.Nack(false, true)
	}
}
