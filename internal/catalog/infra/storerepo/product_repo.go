package storerepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dwikikusuma/shoping-pos/internal/catalog/app"
	"github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

// ProductRepo keeps the whole catalog as one ordered list under
// store.KeyProducts. Every mutation rewrites the list.
type ProductRepo struct {
	mu    sync.Mutex
	store *store.Store[domain.Product]
}

func NewProductRepo(s *store.Store[domain.Product]) *ProductRepo {
	return &ProductRepo{store: s}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.store.Load(ctx), nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	products := r.store.Load(ctx)
	i := indexOf(products, id)
	if i < 0 {
		return domain.Product{}, app.ErrNotFound
	}
	return products[i], nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.Load(ctx)
	if indexOf(products, p.ID) >= 0 {
		return domain.Product{}, fmt.Errorf("%w: product %s", app.ErrConflict, p.ID)
	}
	if clash := barcodeOwner(products, p.Barcode, ""); clash != "" {
		return domain.Product{}, fmt.Errorf("%w: barcode %s is used by product %s", app.ErrConflict, p.Barcode, clash)
	}

	products = append(products, p)
	if err := r.store.Save(ctx, products); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.Load(ctx)
	i := indexOf(products, p.ID)
	if i < 0 {
		return domain.Product{}, app.ErrNotFound
	}
	if clash := barcodeOwner(products, p.Barcode, p.ID); clash != "" {
		return domain.Product{}, fmt.Errorf("%w: barcode %s is used by product %s", app.ErrConflict, p.Barcode, clash)
	}

	products[i] = p
	if err := r.store.Save(ctx, products); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.Load(ctx)
	i := indexOf(products, id)
	if i < 0 {
		return app.ErrNotFound
	}

	products = append(products[:i], products[i+1:]...)
	return r.store.Save(ctx, products)
}

func (r *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products := r.store.Load(ctx)
	i := indexOf(products, id)
	if i < 0 {
		return domain.Product{}, app.ErrNotFound
	}

	next := products[i].Stock + delta
	if next < 0 {
		return domain.Product{}, fmt.Errorf("%w: %s has %d, cannot deduct %d",
			app.ErrInsufficientStock, products[i].Name, products[i].Stock, -delta)
	}

	products[i].Stock = next
	products[i].UpdatedAt = time.Now().UTC()
	if err := r.store.Save(ctx, products); err != nil {
		return domain.Product{}, err
	}
	return products[i], nil
}

func indexOf(products []domain.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func barcodeOwner(products []domain.Product, barcode, exceptID string) string {
	if barcode == "" {
		return ""
	}
	for _, p := range products {
		if p.Barcode == barcode && p.ID != exceptID {
			return p.ID
		}
	}
	return ""
}
