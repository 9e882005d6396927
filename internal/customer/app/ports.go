package app

import (
	"context"

	"github.com/dwikikusuma/shoping-pos/internal/customer/domain"
)

type CustomerRepo interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id string) (domain.Customer, error)
	// Create and Update return ErrConflict when another customer already
	// uses the email, compared case-insensitively.
	Create(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
