package app

import (
	"context"

	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
)

// CatalogReader resolves the current product, stock included, at call time.
type CatalogReader interface {
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}

// Notifier surfaces rejections to whoever is operating the register.
type Notifier interface {
	Warn(msg string)
}

// PaymentGuard reports whether a payment is in flight. The cart refuses
// changes until it settles.
type PaymentGuard interface {
	IsLoading() bool
}
