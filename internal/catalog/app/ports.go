package app

import (
	"context"

	"github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
)

type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
	// AdjustStock adds delta to the stock of id as one read-modify-write.
	AdjustStock(ctx context.Context, id string, delta int) (domain.Product, error)
}
