package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-pos/internal/cart/domain"
)

// Service is the register's cart. There is one cart per process; the mutex
// only serialises concurrent HTTP requests against it.
type Service struct {
	mu      sync.Mutex
	ledger  *domain.Ledger
	catalog CatalogReader
	notify  Notifier
	guard   PaymentGuard
	log     *slog.Logger
}

func NewService(products CatalogReader, notify Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		ledger:  domain.NewLedger(),
		catalog: products,
		notify:  notify,
		log:     log,
	}
}

// LockDuringPayment makes every cart change fail with domain.ErrCartLocked
// while g reports a payment in flight. Set it once at wiring time.
func (s *Service) LockDuringPayment(g PaymentGuard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guard = g
}

func (s *Service) AddItem(ctx context.Context, productID string) (domain.Cart, error) {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(); err != nil {
		return s.ledger.Snapshot(), err
	}
	if err := s.ledger.AddItem(p); err != nil {
		s.reject("add item", p, s.qty(p.ID)+1, err)
		return s.ledger.Snapshot(), err
	}
	return s.ledger.Snapshot(), nil
}

func (s *Service) SetQuantity(ctx context.Context, productID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return s.RemoveItem(ctx, productID)
	}

	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(); err != nil {
		return s.ledger.Snapshot(), err
	}
	if err := s.ledger.SetQuantity(p, qty); err != nil {
		s.reject("set quantity", p, qty, err)
		return s.ledger.Snapshot(), err
	}
	return s.ledger.Snapshot(), nil
}

func (s *Service) RemoveItem(ctx context.Context, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(); err != nil {
		return s.ledger.Snapshot(), err
	}
	s.ledger.RemoveItem(productID)
	return s.ledger.Snapshot(), nil
}

func (s *Service) Clear(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(); err != nil {
		return s.ledger.Snapshot(), err
	}
	s.ledger.Clear()
	return s.ledger.Snapshot(), nil
}

// Settle empties the cart once its sale is recorded. Checkout calls it while
// the payment guard is still up, so it skips the guard.
func (s *Service) Settle(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Clear()
}

// checkUnlocked runs under s.mu. Checkout raises the guard before it reads
// the cart, so a change either lands in that read or is refused.
func (s *Service) checkUnlocked() error {
	if s.guard != nil && s.guard.IsLoading() {
		return domain.ErrCartLocked
	}
	return nil
}

func (s *Service) Snapshot(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Snapshot()
}

func (s *Service) qty(productID string) int {
	line, _ := s.ledger.Line(productID)
	return line.Qty
}

func (s *Service) reject(op string, p catalog.Product, wanted int, err error) {
	var msg string
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		msg = fmt.Sprintf("%s is out of stock", p.Name)
	case errors.Is(err, domain.ErrInsufficientStock):
		msg = fmt.Sprintf("only %d of %s in stock", p.Stock, p.Name)
	default:
		msg = err.Error()
	}

	s.log.Info("cart change rejected",
		slog.String("op", op),
		slog.String("product_id", p.ID),
		slog.Int("stock", p.Stock),
		slog.Int("wanted", wanted),
		slog.String("reason", err.Error()))

	if s.notify != nil {
		s.notify.Warn(msg)
	}
}
