package repository

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/limbo/babiecloud/pkg/entity"
)

// LinkedAccountsEvent carries either the current linked accounts or the
// error which ended the watch.
type LinkedAccountsEvent struct {
	Accounts []*entity.Account
	Err      error
}

type AccountLister interface {
	ListLinked(ctx context.Context, coordinatorID uuid.UUID) ([]*entity.Account, error)
}

type NotificationSource interface {
	Subscribe(match func(Notification) bool) (*Subscription, error)
	Unsubscribe(sub *Subscription)
}

// LinkedAccountsFeed is a live query over accounts linked to a coordinator.
type LinkedAccountsFeed struct {
	accounts     AccountLister
	source       NotificationSource
	watchRecords bool
}

// With watchRecords set, task and mood changes of a linked account
// re-run the query as well, not only changes of the accounts themselves.
func NewLinkedAccountsFeed(accounts AccountLister, source NotificationSource, watchRecords bool) *LinkedAccountsFeed {
	return &LinkedAccountsFeed{
		accounts:     accounts,
		source:       source,
		watchRecords: watchRecords,
	}
}

// Watch delivers the linked accounts once and then again after every
// relevant change. The channel is closed when ctx is done or after an
// event with Err set.
func (f *LinkedAccountsFeed) Watch(ctx context.Context, coordinatorID uuid.UUID) (<-chan LinkedAccountsEvent, error) {
	if coordinatorID == uuid.Nil {
		return nil, errors.New("watching linked accounts: empty coordinator id")
	}
	coordinator := coordinatorID.String()
	var members atomic.Pointer[map[string]struct{}]
	members.Store(&map[string]struct{}{})

	// Subscribing before the first query leaves no gap for missed changes.
	sub, err := f.source.Subscribe(func(n Notification) bool {
		switch n.Channel {
		case ChannelAccountLinks:
			return n.Payload == coordinator
		case ChannelPartnerRecords:
			if !f.watchRecords {
				return false
			}
			_, ok := (*members.Load())[n.Payload]
			return ok
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	events := make(chan LinkedAccountsEvent)
	send := func(ev LinkedAccountsEvent) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}
	go func() {
		defer close(events)
		defer f.source.Unsubscribe(sub)
		for {
			accounts, err := f.accounts.ListLinked(ctx, coordinatorID)
			if err != nil {
				if ctx.Err() == nil {
					send(LinkedAccountsEvent{Err: err})
				}
				return
			}
			set := make(map[string]struct{}, len(accounts))
			for _, a := range accounts {
				set[a.ID.String()] = struct{}{}
			}
			members.Store(&set)
			if !send(LinkedAccountsEvent{Accounts: accounts}) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-sub.Done():
				send(LinkedAccountsEvent{Err: sub.Err()})
				return
			case <-sub.Signal():
			}
		}
	}()
	return events, nil
}
