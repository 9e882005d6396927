package storerepo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/app"
	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

func TestTransactionRepo(t *testing.T) {
	ctx := context.Background()
	s := store.New[domain.Transaction](store.NewMemory(), store.KeyTransactions, nil, nil)
	repo := NewTransactionRepo(s)

	tx := domain.Transaction{ID: "t1", Amount: decimal.NewFromInt(50), Status: domain.StatusCompleted}
	_, err := repo.Create(ctx, tx)
	require.NoError(t, err)

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50)))

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, app.ErrNotFound)

	refunded, err := repo.SetStatus(ctx, "t1", domain.StatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, refunded.Status)

	_, err = repo.SetStatus(ctx, "t1", domain.StatusCanceled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = repo.SetStatus(ctx, "missing", domain.StatusRefunded)
	assert.ErrorIs(t, err, app.ErrNotFound)

	// a fresh repo over the same store sees the persisted status
	again, err := NewTransactionRepo(s).Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, again.Status)
}
