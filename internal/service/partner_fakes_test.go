package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/babiecloud/internal/error_values"
	"github.com/limbo/babiecloud/internal/repository"
	"github.com/limbo/babiecloud/pkg/entity"
)

// partnerStore backs the accounts, tasks and moods fakes used by the
// aggregator tests.
type partnerStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
	linked   map[uuid.UUID][]*entity.Account
	tasks    map[uuid.UUID][]*entity.Task
	moods    map[uuid.UUID][]*entity.Mood
	taskErrs map[uuid.UUID]error
	listErr  error
	gates    map[uuid.UUID]chan struct{}
	started  chan uuid.UUID
}

func newPartnerStore() *partnerStore {
	return &partnerStore{
		accounts: make(map[uuid.UUID]*entity.Account),
		linked:   make(map[uuid.UUID][]*entity.Account),
		tasks:    make(map[uuid.UUID][]*entity.Task),
		moods:    make(map[uuid.UUID][]*entity.Mood),
		taskErrs: make(map[uuid.UUID]error),
		gates:    make(map[uuid.UUID]chan struct{}),
		started:  make(chan uuid.UUID, 64),
	}
}

func (ps *partnerStore) addPartner(coordinator uuid.UUID, name string) *entity.Account {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	link := coordinator
	a := &entity.Account{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@babie.cloud",
		Role:     entity.RolePartner,
		LinkedTo: &link,
	}
	ps.accounts[a.ID] = a
	ps.linked[coordinator] = append(ps.linked[coordinator], a)
	return a
}

func (ps *partnerStore) setTasks(owner uuid.UUID, completed ...bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	tasks := make([]*entity.Task, 0, len(completed))
	for _, c := range completed {
		tasks = append(tasks, &entity.Task{ID: uuid.New(), OwnerID: owner, Title: "task", IsCompleted: c})
	}
	ps.tasks[owner] = tasks
}

func (ps *partnerStore) setMoods(owner uuid.UUID, moods ...*entity.Mood) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.moods[owner] = moods
}

func (ps *partnerStore) failTasks(owner uuid.UUID, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.taskErrs[owner] = err
}

// block makes task reads of owner wait until the returned function is called.
func (ps *partnerStore) block(owner uuid.UUID) func() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	gate := make(chan struct{})
	ps.gates[owner] = gate
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

type fakeAccountsRepo struct {
	store *partnerStore
}

func (f *fakeAccountsRepo) Create(ctx context.Context, account *entity.Account) error {
	return nil
}

func (f *fakeAccountsRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return nil, errorvalues.ErrUserNotFound
}

func (f *fakeAccountsRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	a, ok := f.store.accounts[id]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return a, nil
}

func (f *fakeAccountsRepo) ListLinked(ctx context.Context, coordinatorID uuid.UUID) ([]*entity.Account, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if f.store.listErr != nil {
		return nil, f.store.listErr
	}
	return append([]*entity.Account(nil), f.store.linked[coordinatorID]...), nil
}

func (f *fakeAccountsRepo) SetLinkedTo(ctx context.Context, id uuid.UUID, linkedTo *uuid.UUID) error {
	return nil
}

func (f *fakeAccountsRepo) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func (f *fakeAccountsRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return nil
}

type fakeTasksRepo struct {
	store *partnerStore
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *entity.Task) error {
	return nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	return nil, errorvalues.ErrTaskNotFound
}

func (f *fakeTasksRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	select {
	case f.store.started <- ownerID:
	default:
	}
	f.store.mu.Lock()
	gate := f.store.gates[ownerID]
	f.store.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if err := f.store.taskErrs[ownerID]; err != nil {
		return nil, err
	}
	return append([]*entity.Task(nil), f.store.tasks[ownerID]...), nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *entity.Task) error {
	return nil
}

func (f *fakeTasksRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeMoodsRepo struct {
	store *partnerStore
}

func (f *fakeMoodsRepo) Create(ctx context.Context, mood *entity.Mood) error {
	return nil
}

func (f *fakeMoodsRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Mood, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return append([]*entity.Mood(nil), f.store.moods[ownerID]...), nil
}

// fakeWatcher hands the test direct control over the live query.
type fakeWatcher struct {
	events chan repository.LinkedAccountsEvent
	err    error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{events: make(chan repository.LinkedAccountsEvent)}
}

func (w *fakeWatcher) Watch(ctx context.Context, coordinatorID uuid.UUID) (<-chan repository.LinkedAccountsEvent, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.events, nil
}

func (w *fakeWatcher) push(t *testing.T, ev repository.LinkedAccountsEvent) {
	t.Helper()
	select {
	case w.events <- ev:
	case <-time.After(2 * time.Second):
		t.Fatal("aggregator did not take the event")
	}
}

type statsRecorder struct {
	ch chan entity.PartnerStats
}

func newStatsRecorder() *statsRecorder {
	return &statsRecorder{ch: make(chan entity.PartnerStats, 32)}
}

func (r *statsRecorder) onUpdate(stats entity.PartnerStats) {
	r.ch <- stats
}

func (r *statsRecorder) next(t *testing.T) entity.PartnerStats {
	t.Helper()
	select {
	case s := <-r.ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
		return entity.PartnerStats{}
	}
}

func (r *statsRecorder) none(t *testing.T, wait time.Duration) {
	t.Helper()
	select {
	case s := <-r.ch:
		t.Fatalf("unexpected update: %+v", s)
	case <-time.After(wait):
	}
}

func waitStarted(t *testing.T, store *partnerStore, owner uuid.UUID) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case id := <-store.started:
			if id == owner {
				return
			}
		case <-deadline:
			t.Fatal("fan-out read never started")
		}
	}
}
