package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

type CartReader interface {
	GetCart(ctx context.Context) ([]domain.Line, error)
	ClearCart(ctx context.Context) error
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}

// StockWriter is only used when stock decrement on sale is enabled.
type StockWriter interface {
	DeductStock(ctx context.Context, productID string, qty int) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, c domain.Charge) (domain.Payment, error)
}

type TransactionRecorder interface {
	Record(ctx context.Context, sale domain.Sale) (txdomain.Transaction, error)
}

type CustomerDirectory interface {
	CheckCustomer(ctx context.Context, id string) error
	AddPoints(ctx context.Context, id string, points int) error
}

type Notifier interface {
	Success(msg string)
	Warn(msg string)
}
