package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

// memRepo keeps transactions in insertion order.
type memRepo struct {
	txs []domain.Transaction
}

func (m *memRepo) List(context.Context) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(m.txs))
	copy(out, m.txs)
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id string) (domain.Transaction, error) {
	for _, t := range m.txs {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Transaction{}, ErrNotFound
}

func (m *memRepo) Create(_ context.Context, t domain.Transaction) (domain.Transaction, error) {
	m.txs = append(m.txs, t)
	return t, nil
}

func (m *memRepo) SetStatus(_ context.Context, id string, to domain.Status) (domain.Transaction, error) {
	for i := range m.txs {
		if m.txs[i].ID == id {
			if !m.txs[i].CanTransition(to) {
				return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrInvalidTransition, to)
			}
			m.txs[i].Status = to
			return m.txs[i], nil
		}
	}
	return domain.Transaction{}, ErrNotFound
}

func line(id string, price string, qty int) domain.Product {
	return domain.Product{ID: id, Name: id, Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		svc := NewService(&memRepo{})
		cases := map[string]domain.Draft{
			"no products":     {},
			"zero quantity":   {Products: []domain.Product{line("a", "10", 0)}},
			"negative price":  {Products: []domain.Product{line("a", "-1", 1)}},
			"unknown payment": {PaymentMethod: "crypto", Products: []domain.Product{line("a", "1", 1)}},
		}
		for name, d := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := svc.Record(ctx, d)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("derives totals", func(t *testing.T) {
		svc := NewService(&memRepo{})
		fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return fixed }

		tx, err := svc.Record(ctx, domain.Draft{
			CustomerID: " c1 ",
			Products:   []domain.Product{line("a", "12.50", 2), line("b", "5", 3)},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "c1", tx.CustomerID)
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(40)), tx.Amount.String())
		assert.Equal(t, 5, tx.Items)
		assert.Equal(t, domain.PaymentCash, tx.PaymentMethod)
		assert.Equal(t, domain.StatusCompleted, tx.Status)
		assert.Equal(t, fixed, tx.Date)
	})
}

func TestListNewestFirstAndFiltered(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}
	svc := NewService(repo)

	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	for i, cust := range []string{"c1", "c2", "c1"} {
		_, err := svc.Record(ctx, domain.Draft{
			CustomerID: cust,
			Date:       base.AddDate(0, 0, i),
			Products:   []domain.Product{line("a", "1", 1)},
		})
		require.NoError(t, err)
	}
	_, err := svc.Refund(ctx, repo.txs[0].ID)
	require.NoError(t, err)

	all, err := svc.List(ctx, domain.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, base.AddDate(0, 0, 2), all[0].Date)
	assert.Equal(t, base, all[2].Date)

	mine, err := svc.List(ctx, domain.Filter{CustomerID: "c1", Status: domain.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, base.AddDate(0, 0, 2), mine[0].Date)

	window, err := svc.List(ctx, domain.Filter{From: base.AddDate(0, 0, 1), To: base.AddDate(0, 0, 2)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "c2", window[0].CustomerID)
}

func TestRefundAndCancelLeaveCompletedOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memRepo{})

	tx, err := svc.Record(ctx, domain.Draft{Products: []domain.Product{line("a", "1", 1)}})
	require.NoError(t, err)

	got, err := svc.Cancel(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, got.Status)

	_, err = svc.Refund(ctx, tx.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
