// Package store keeps ordered lists of entities as JSON documents under
// well-known keys, in the spirit of browser local storage.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const (
	KeyProducts     = "pos-products"
	KeyCustomers    = "pos-customers"
	KeyTransactions = "pos-transactions"
)

var (
	ErrNotFound   = errors.New("store: key not found")
	ErrInvalidKey = errors.New("store: invalid key")
)

type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store is a typed view over one backend key. Load never fails: unreadable
// or missing data falls back to the default dataset. The last Save wins.
type Store[T any] struct {
	backend  Backend
	key      string
	defaults func() []T
	log      *slog.Logger
	changes  *Notifier[[]T]
	remote   *Notifier[[]T]

	mu   sync.Mutex
	seen []byte
}

func New[T any](backend Backend, key string, defaults func() []T, log *slog.Logger) *Store[T] {
	if defaults == nil {
		defaults = func() []T { return []T{} }
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store[T]{
		backend:  backend,
		key:      key,
		defaults: defaults,
		log:      log.With(slog.String("store_key", key)),
		changes:  NewNotifier[[]T](),
		remote:   NewNotifier[[]T](),
	}
}

func (s *Store[T]) Key() string { return s.key }

func (s *Store[T]) Load(ctx context.Context) []T {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("store empty, using defaults")
		} else {
			s.log.Warn("store read failed, using defaults", slog.Any("err", err))
		}
		return s.fallback()
	}

	items, err := s.decode(raw)
	if err != nil {
		s.log.Warn("store decode failed, using defaults", slog.Any("err", err))
		return s.fallback()
	}

	s.remember(raw)
	return items
}

func (s *Store[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, s.key, raw); err != nil {
		return err
	}

	s.remember(raw)
	s.changes.Publish(items)
	return nil
}

// Subscribe is notified after every successful Save and whenever Watch sees
// the stored value change underneath.
func (s *Store[T]) Subscribe(fn func(items []T)) (unsubscribe func()) {
	return s.changes.Subscribe(fn)
}

// SubscribeRemote is notified only when Watch sees another writer's value.
func (s *Store[T]) SubscribeRemote(fn func(items []T)) (unsubscribe func()) {
	return s.remote.Subscribe(fn)
}

// Watch polls the backend every period until ctx is done and publishes the
// decoded list when another writer replaced it. It reloads only this key.
func (s *Store[T]) Watch(ctx context.Context, period time.Duration) error {
	if period <= 0 {
		period = 2 * time.Second
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Store[T]) poll(ctx context.Context) {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) && ctx.Err() == nil {
			s.log.Debug("store poll failed", slog.Any("err", err))
		}
		return
	}

	s.mu.Lock()
	changed := !bytes.Equal(raw, s.seen)
	s.mu.Unlock()
	if !changed {
		return
	}

	items, err := s.decode(raw)
	if err != nil {
		s.log.Warn("store changed but cannot be decoded", slog.Any("err", err))
		return
	}
	s.remember(raw)
	s.log.Info("store changed by another writer", slog.Int("items", len(items)))
	s.changes.Publish(items)
	s.remote.Publish(items)
}

func (s *Store[T]) decode(raw []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Store[T]) fallback() []T {
	items := s.defaults()
	if items == nil {
		return []T{}
	}
	return items
}

func (s *Store[T]) remember(raw []byte) {
	s.mu.Lock()
	s.seen = append(s.seen[:0], raw...)
	s.mu.Unlock()
}
