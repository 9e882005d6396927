package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("transaction not found")
)

type Service struct {
	repo TransactionRepo
	now  func() time.Time
}

func NewService(repo TransactionRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record stores a completed sale. Amount and item count are derived from
// the lines; callers cannot supply them.
func (s *Service) Record(ctx context.Context, d domain.Draft) (domain.Transaction, error) {
	if len(d.Products) == 0 {
		return domain.Transaction{}, fmt.Errorf("%w: a transaction needs at least one product", ErrInvalidInput)
	}
	if _, err := domain.ParsePaymentMethod(string(d.PaymentMethod)); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	products := make([]domain.Product, 0, len(d.Products))
	amount := decimal.Zero
	items := 0

	for i, p := range d.Products {
		if p.Quantity <= 0 {
			return domain.Transaction{}, fmt.Errorf("%w: product %d: quantity must be positive, got %d", ErrInvalidInput, i, p.Quantity)
		}
		if p.Price.IsNegative() {
			return domain.Transaction{}, fmt.Errorf("%w: product %d: price cannot be negative, got %s", ErrInvalidInput, i, p.Price)
		}
		products = append(products, p)
		amount = amount.Add(p.LineTotal())
		items += p.Quantity
	}

	date := d.Date
	if date.IsZero() {
		date = s.now()
	}
	method := d.PaymentMethod
	if method == "" {
		method = domain.PaymentCash
	}

	t := domain.Transaction{
		ID:            uuid.NewString(),
		CustomerID:    strings.TrimSpace(d.CustomerID),
		Amount:        amount,
		Items:         items,
		Date:          date.UTC(),
		PaymentMethod: method,
		Status:        domain.StatusCompleted,
		Products:      products,
	}

	return s.repo.Create(ctx, t)
}

// List returns matching transactions, newest first.
func (s *Service) List(ctx context.Context, f domain.Filter) ([]domain.Transaction, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Transaction{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Refund(ctx context.Context, id string) (domain.Transaction, error) {
	return s.repo.SetStatus(ctx, id, domain.StatusRefunded)
}

func (s *Service) Cancel(ctx context.Context, id string) (domain.Transaction, error) {
	return s.repo.SetStatus(ctx, id, domain.StatusCanceled)
}
