package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
)

// Channels published by the triggers in migrations/00003_notify_triggers.sql.
const (
	// Payload is the linked_to id of the changed account, old and new.
	ChannelAccountLinks = "account_links"
	// Payload is the owner_id of the changed task or mood.
	ChannelPartnerRecords = "partner_records"
)

type Notification struct {
	Channel string
	Payload string
}

// Listener is a dedicated connection which has already issued LISTEN.
type Listener interface {
	WaitForNotification(ctx context.Context) (*Notification, error)
	Close(ctx context.Context) error
}

type ListenerDialer func(ctx context.Context, channels []string) (Listener, error)

// PoolListenerDialer takes a connection out of the pool for listening.
// The connection is hijacked on close because its LISTEN state must not
// leak back into the pool.
func PoolListenerDialer(pool *pgxpool.Pool) ListenerDialer {
	return func(ctx context.Context, channels []string) (Listener, error) {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, errors.New("acquiring listener connection error: " + err.Error())
		}
		for _, ch := range channels {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				conn.Release()
				return nil, errors.New("listen error: " + err.Error())
			}
		}
		return &pgListener{conn: conn}, nil
	}
}

type pgListener struct {
	conn *pgxpool.Conn
}

func (l *pgListener) WaitForNotification(ctx context.Context) (*Notification, error) {
	n, err := l.conn.Conn().WaitForNotification(ctx)
	if err != nil {
		return nil, err
	}
	return &Notification{Channel: n.Channel, Payload: n.Payload}, nil
}

func (l *pgListener) Close(ctx context.Context) error {
	return l.conn.Hijack().Close(ctx)
}

// Subscription receives coalesced signals for notifications its predicate
// accepts. At most one signal is pending at a time.
type Subscription struct {
	match  func(Notification) bool
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
	err    error
}

func (s *Subscription) Signal() <-chan struct{} {
	return s.signal
}

// Done is closed when the hub lost its connection or stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Err is valid once Done is closed.
func (s *Subscription) Err() error {
	return s.err
}

func (s *Subscription) notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *Subscription) fail(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

// NotificationHub multiplexes one listening connection to any number of
// subscribers.
type NotificationHub struct {
	dial       ListenerDialer
	channels   []string
	logger     *slog.Logger
	newBackoff func() backoff.BackOff

	mu        sync.Mutex
	connected bool
	ready     chan struct{}
	subs      map[*Subscription]struct{}
}

func NewNotificationHub(dial ListenerDialer, logger *slog.Logger, channels ...string) *NotificationHub {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationHub{
		dial:     dial,
		channels: channels,
		logger:   logger.With(slog.String("component", "notification_hub")),
		newBackoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 30 * time.Second
			b.MaxElapsedTime = 0
			return b
		},
		ready: make(chan struct{}),
		subs:  make(map[*Subscription]struct{}),
	}
}

// Ready is closed after the first successful connection.
func (h *NotificationHub) Ready() <-chan struct{} {
	return h.ready
}

// WaitReady blocks until the first connection is up. It gives up with
// ErrFeedUnavailable after timeout, the hub keeps reconnecting anyway.
func (h *NotificationHub) WaitReady(ctx context.Context, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-h.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return errorvalues.ErrFeedUnavailable
	}
}

// Run keeps a listening connection open until ctx is cancelled,
// reconnecting with exponential backoff. Subscribers alive when a
// connection drops are failed; they have to subscribe again.
func (h *NotificationHub) Run(ctx context.Context) error {
	b := h.newBackoff()
	for {
		err := h.listen(ctx, b.Reset)
		if ctx.Err() != nil {
			h.failAll(ctx.Err())
			return ctx.Err()
		}
		h.failAll(err)
		wait := b.NextBackOff()
		h.logger.Error("listener connection lost", slog.String("error", err.Error()), slog.Duration("retry_in", wait))
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (h *NotificationHub) listen(ctx context.Context, onConnected func()) error {
	l, err := h.dial(ctx, h.channels)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.Close(closeCtx); err != nil {
			h.logger.Warn("closing listener error", slog.String("error", err.Error()))
		}
	}()
	h.setConnected(true)
	defer h.setConnected(false)
	onConnected()
	h.logger.Info("listening", slog.Any("channels", h.channels))
	for {
		n, err := l.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		h.dispatch(*n)
	}
}

func (h *NotificationHub) setConnected(connected bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connected = connected
	if connected {
		select {
		case <-h.ready:
		default:
			close(h.ready)
		}
	}
}

func (h *NotificationHub) Subscribe(match func(Notification) bool) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.connected {
		return nil, errorvalues.ErrFeedUnavailable
	}
	sub := &Subscription{
		match:  match,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	h.subs[sub] = struct{}{}
	return sub, nil
}

func (h *NotificationHub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, sub)
}

func (h *NotificationHub) dispatch(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if sub.match(n) {
			sub.notify()
		}
	}
}

func (h *NotificationHub) failAll(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		sub.fail(err)
		delete(h.subs, sub)
	}
}
