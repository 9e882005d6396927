package storerepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dwikikusuma/shoping-pos/internal/customer/app"
	"github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

type CustomerRepo struct {
	mu    sync.Mutex
	store *store.Store[domain.Customer]
}

func NewCustomerRepo(s *store.Store[domain.Customer]) *CustomerRepo {
	return &CustomerRepo{store: s}
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	return r.store.Load(ctx), nil
}

func (r *CustomerRepo) Get(ctx context.Context, id string) (domain.Customer, error) {
	customers := r.store.Load(ctx)
	if i := indexOf(customers, id); i >= 0 {
		return customers[i], nil
	}
	return domain.Customer{}, app.ErrNotFound
}

func (r *CustomerRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.store.Load(ctx)
	if indexOf(customers, c.ID) >= 0 {
		return domain.Customer{}, fmt.Errorf("%w: customer %s", app.ErrConflict, c.ID)
	}
	if owner := emailOwner(customers, c.Email, c.ID); owner != "" {
		return domain.Customer{}, fmt.Errorf("%w: email %s is used by customer %s", app.ErrConflict, c.Email, owner)
	}
	if err := r.store.Save(ctx, append(customers, c)); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.store.Load(ctx)
	i := indexOf(customers, c.ID)
	if i < 0 {
		return domain.Customer{}, app.ErrNotFound
	}
	if owner := emailOwner(customers, c.Email, c.ID); owner != "" {
		return domain.Customer{}, fmt.Errorf("%w: email %s is used by customer %s", app.ErrConflict, c.Email, owner)
	}
	customers[i] = c
	if err := r.store.Save(ctx, customers); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := r.store.Load(ctx)
	i := indexOf(customers, id)
	if i < 0 {
		return app.ErrNotFound
	}
	return r.store.Save(ctx, append(customers[:i], customers[i+1:]...))
}

func indexOf(customers []domain.Customer, id string) int {
	for i, c := range customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func emailOwner(customers []domain.Customer, email, exceptID string) string {
	if email == "" {
		return ""
	}
	for _, c := range customers {
		if c.ID != exceptID && strings.EqualFold(c.Email, email) {
			return c.ID
		}
	}
	return ""
}
