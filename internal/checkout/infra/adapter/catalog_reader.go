package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/shoping-pos/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/shoping-pos/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (checkoutapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}, nil
}

func (r *CatalogServiceReader) DeductStock(ctx context.Context, productID string, qty int) error {
	_, err := r.svc.AdjustStock(ctx, productID, -qty)
	return err
}
