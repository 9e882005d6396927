package app

import (
	"context"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

type TransactionRepo interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	Get(ctx context.Context, id string) (domain.Transaction, error)
	Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	// SetStatus applies a status change if the transaction allows it.
	SetStatus(ctx context.Context, id string, to domain.Status) (domain.Transaction, error)
}
