package mailer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"
)

// ErrMalformedJob marks messages which will never be deliverable.
var ErrMalformedJob = errors.New("malformed email job")

type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

type Worker struct {
	sender Sender
	logger *slog.Logger
}

func NewWorker(sender Sender, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{sender: sender, logger: logger}
}

// Handle renders and sends one queued job. Errors wrapping ErrMalformedJob
// must not be retried, any other error may succeed on redelivery.
func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var job EmailJob
	if err := sonic.Unmarshal(body, &job); err != nil {
		return errors.Join(ErrMalformedJob, err)
	}
	job.To = strings.TrimSpace(job.To)
	if job.To == "" {
		return errors.Join(ErrMalformedJob, errors.New("empty recipient"))
	}
	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = Render(job.Template, job.Data)
		if err != nil {
			return errors.Join(ErrMalformedJob, err)
		}
	}
	if subject == "" || (text == "" && html == "") {
		return errors.Join(ErrMalformedJob, errors.New("empty message"))
	}
	if err := w.sender.Send(ctx, job.To, subject, text, html); err != nil {
		return errors.New("sending email error: " + err.Error())
	}
	w.logger.Info("email sent", slog.String("template", job.Template))
	return nil
}
