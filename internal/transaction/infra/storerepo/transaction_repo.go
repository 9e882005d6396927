package storerepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/app"
	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

// TransactionRepo appends sales to the list under store.KeyTransactions.
type TransactionRepo struct {
	mu    sync.Mutex
	store *store.Store[domain.Transaction]
}

func NewTransactionRepo(s *store.Store[domain.Transaction]) *TransactionRepo {
	return &TransactionRepo{store: s}
}

func (r *TransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.store.Load(ctx), nil
}

func (r *TransactionRepo) Get(ctx context.Context, id string) (domain.Transaction, error) {
	for _, t := range r.store.Load(ctx) {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Transaction{}, app.ErrNotFound
}

func (r *TransactionRepo) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs := r.store.Load(ctx)
	txs = append(txs, t)
	if err := r.store.Save(ctx, txs); err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionRepo) SetStatus(ctx context.Context, id string, to domain.Status) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txs := r.store.Load(ctx)
	for i := range txs {
		if txs[i].ID != id {
			continue
		}
		if !txs[i].CanTransition(to) {
			return domain.Transaction{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, txs[i].Status, to)
		}
		txs[i].Status = to
		if err := r.store.Save(ctx, txs); err != nil {
			return domain.Transaction{}, err
		}
		return txs[i], nil
	}
	return domain.Transaction{}, app.ErrNotFound
}
