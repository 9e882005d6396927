package adapter

import (
	"context"

	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
	txapp "github.com/dwikikusuma/shoping-pos/internal/transaction/app"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

type TransactionRecorder struct {
	svc *txapp.Service
}

func NewTransactionRecorder(svc *txapp.Service) *TransactionRecorder {
	return &TransactionRecorder{svc: svc}
}

func (r *TransactionRecorder) Record(ctx context.Context, sale domain.Sale) (txdomain.Transaction, error) {
	products := make([]txdomain.Product, 0, len(sale.Lines))
	for _, l := range sale.Lines {
		products = append(products, txdomain.Product{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
		})
	}

	return r.svc.Record(ctx, txdomain.Draft{
		CustomerID:    sale.CustomerID,
		PaymentMethod: sale.PaymentMethod,
		Products:      products,
		Date:          sale.PaidAt,
	})
}
