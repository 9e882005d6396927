package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/shoping-pos/internal/cart/app"
	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context) ([]domain.Line, error) {
	cart := r.svc.Snapshot(ctx)

	lines := make([]domain.Line, 0, len(cart.Lines))
	for _, it := range cart.Lines {
		lines = append(lines, domain.Line{
			ProductID: it.ID,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Qty,
		})
	}
	return lines, nil
}

func (r *CartServiceReader) ClearCart(ctx context.Context) error {
	r.svc.Settle(ctx)
	return nil
}
