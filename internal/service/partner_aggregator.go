package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

const (
	connectionErrorMessage = "failed to connect to the database"
	loadErrorMessage       = "failed to load partner statistics"
)

type AggregatorConfig struct {
	// Max partners read concurrently within one round
	FanOutLimit int
	// Bounds the task and mood reads of one partner, 0 disables
	FetchTimeout time.Duration
	// Re-runs the latest round periodically, 0 disables
	RefreshInterval time.Duration
}

// PartnerAggregator joins every linked account with its tasks and moods
// into partner summaries.
type PartnerAggregator struct {
	accounts repository.AccountsRepositoryI
	tasks    repository.TasksRepositoryI
	moods    repository.MoodsRepositoryI
	watcher  LinkedAccountsWatcher
	cfg      AggregatorConfig
	logger   *slog.Logger
}

func NewPartnerAggregator(
	accounts repository.AccountsRepositoryI,
	tasks repository.TasksRepositoryI,
	moods repository.MoodsRepositoryI,
	watcher LinkedAccountsWatcher,
	cfg AggregatorConfig,
	logger *slog.Logger,
) *PartnerAggregator {
	if accounts == nil || tasks == nil || moods == nil || watcher == nil {
		log.Fatal("on partner aggregator provided nil dependencies")
	}
	if cfg.FanOutLimit < 1 {
		cfg.FanOutLimit = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PartnerAggregator{
		accounts: accounts,
		tasks:    tasks,
		moods:    moods,
		watcher:  watcher,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "partner_aggregator")),
	}
}

// Subscribe emits a loading snapshot before returning, then one snapshot
// per change of the linked accounts. Calling the returned function stops
// all further calls of onUpdate: it waits for a call in progress, so it
// must not be called from within onUpdate.
func (pa *PartnerAggregator) Subscribe(coordinatorID uuid.UUID, onUpdate func(entity.PartnerStats)) (func(), error) {
	if coordinatorID == uuid.Nil {
		return nil, errorvalues.ErrInvalidCoordinator
	}
	ctx, cancel := context.WithCancel(context.Background())
	sub := &partnerSubscription{
		agg:      pa,
		onUpdate: onUpdate,
		logger:   pa.logger.With(slog.String("coordinator", coordinatorID.String())),
		cancel:   cancel,
	}
	onUpdate(entity.PartnerStats{Loading: true, Partners: []entity.PartnerSummary{}})
	events, err := pa.watcher.Watch(ctx, coordinatorID)
	if err != nil {
		sub.logger.Error("subscribing to linked accounts failed", slog.String("error", err.Error()))
		sub.fail()
		cancel()
		return sub.dispose, nil
	}
	go sub.run(ctx, events)
	return sub.dispose, nil
}

// Snapshot runs a single round without subscribing.
func (pa *PartnerAggregator) Snapshot(ctx context.Context, coordinatorID uuid.UUID) (entity.PartnerStats, error) {
	if coordinatorID == uuid.Nil {
		return entity.PartnerStats{Partners: []entity.PartnerSummary{}}, errorvalues.ErrInvalidCoordinator
	}
	accounts, err := pa.accounts.ListLinked(ctx, coordinatorID)
	if err != nil {
		return entity.PartnerStats{
			Partners: []entity.PartnerSummary{},
			Error:    loadErrorMessage,
		}, errors.New("listing linked accounts error: " + err.Error())
	}
	logger := pa.logger.With(slog.String("coordinator", coordinatorID.String()))
	return entity.PartnerStats{Partners: pa.collect(ctx, accounts, logger)}, nil
}

func (pa *PartnerAggregator) LinkedPartnerIDs(ctx context.Context, coordinatorID uuid.UUID) ([]uuid.UUID, error) {
	accounts, err := pa.accounts.ListLinked(ctx, coordinatorID)
	if err != nil {
		return nil, errors.New("listing linked accounts error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

// PartnerDetails summarizes one partner. The partner has to be linked to
// coordinatorID.
func (pa *PartnerAggregator) PartnerDetails(ctx context.Context, coordinatorID, partnerID uuid.UUID) (*entity.PartnerSummary, error) {
	account, err := pa.accounts.FindByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if account.LinkedTo == nil || *account.LinkedTo != coordinatorID {
		return nil, errorvalues.ErrWrongOwner
	}
	summary, err := pa.summarize(ctx, account)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// collect fans out over accounts and keeps their order. Accounts whose
// reads fail are left out.
func (pa *PartnerAggregator) collect(ctx context.Context, accounts []*entity.Account, logger *slog.Logger) []entity.PartnerSummary {
	results := make([]*entity.PartnerSummary, len(accounts))
	g := new(errgroup.Group)
	g.SetLimit(pa.cfg.FanOutLimit)
	for i, account := range accounts {
		g.Go(func() error {
			summary, err := pa.summarize(ctx, account)
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("skipping partner", slog.String("partner", account.ID.String()), slog.String("error", err.Error()))
				}
				return nil
			}
			results[i] = &summary
			return nil
		})
	}
	_ = g.Wait()
	partners := make([]entity.PartnerSummary, 0, len(accounts))
	for _, r := range results {
		if r != nil {
			partners = append(partners, *r)
		}
	}
	return partners
}

func (pa *PartnerAggregator) summarize(ctx context.Context, account *entity.Account) (entity.PartnerSummary, error) {
	if pa.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pa.cfg.FetchTimeout)
		defer cancel()
	}
	var (
		tasks []*entity.Task
		moods []*entity.Mood
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := pa.tasks.ListByOwner(gctx, account.ID)
		if err != nil {
			return errors.New("fetching tasks error: " + err.Error())
		}
		tasks = list
		return nil
	})
	g.Go(func() error {
		list, err := pa.moods.ListByOwner(gctx, account.ID)
		if err != nil {
			return errors.New("fetching moods error: " + err.Error())
		}
		moods = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return entity.PartnerSummary{}, err
	}
	return BuildPartnerSummary(account, tasks, moods), nil
}

type partnerSubscription struct {
	agg      *PartnerAggregator
	onUpdate func(entity.PartnerStats)
	logger   *slog.Logger
	cancel   context.CancelFunc

	mu          sync.Mutex
	disposed    bool
	generation  uint64
	roundCancel context.CancelFunc

	// serialises calls of onUpdate
	emitMu sync.Mutex
}

func (s *partnerSubscription) run(ctx context.Context, events <-chan repository.LinkedAccountsEvent) {
	var (
		tick   <-chan time.Time
		latest []*entity.Account
		seen   bool
	)
	if s.agg.cfg.RefreshInterval > 0 {
		ticker := time.NewTicker(s.agg.cfg.RefreshInterval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Err != nil {
				s.logger.Error("linked accounts subscription failed", slog.String("error", ev.Err.Error()))
				s.fail()
				return
			}
			latest, seen = ev.Accounts, true
			s.startRound(ctx, latest)
		case <-tick:
			if seen {
				s.startRound(ctx, latest)
			}
		}
	}
}

// startRound supersedes the round in flight, if any.
func (s *partnerSubscription) startRound(ctx context.Context, accounts []*entity.Account) {
	roundCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cancel()
		return
	}
	if s.roundCancel != nil {
		s.roundCancel()
	}
	s.generation++
	gen := s.generation
	s.roundCancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		partners := s.agg.collect(roundCtx, accounts, s.logger)
		s.emit(gen, entity.PartnerStats{Partners: partners})
	}()
}

// fail emits the terminal error snapshot and discards rounds in flight.
func (s *partnerSubscription) fail() {
	s.mu.Lock()
	if s.roundCancel != nil {
		s.roundCancel()
		s.roundCancel = nil
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()
	s.emit(gen, entity.PartnerStats{
		Partners: []entity.PartnerSummary{},
		Error:    connectionErrorMessage,
	})
}

// emit delivers stats only when gen is still the latest round and the
// subscription is alive.
func (s *partnerSubscription) emit(gen uint64, stats entity.PartnerStats) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.mu.Lock()
	current := !s.disposed && gen == s.generation
	s.mu.Unlock()
	if !current {
		return
	}
	s.onUpdate(stats)
}

func (s *partnerSubscription) dispose() {
	s.mu.Lock()
	s.disposed = true
	if s.roundCancel != nil {
		s.roundCancel()
		s.roundCancel = nil
	}
	s.mu.Unlock()
	s.cancel()
	// waits for a delivery already past the disposed check
	s.emitMu.Lock()
	s.emitMu.Unlock()
}
