package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Service struct {
	repo ProductRepo
	now  func() time.Time
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	in, err := normalize(in)
	if err != nil {
		return domain.Product{}, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	now := s.now().UTC()
	p := fromInput(in)
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.repo.Create(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	in, err := normalize(in)
	if err != nil {
		return domain.Product{}, err
	}
	if in.ID != "" && in.ID != id {
		return domain.Product{}, fmt.Errorf("%w: id cannot be changed", ErrInvalidInput)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	in.ID = id
	p := fromInput(in)
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now().UTC()

	return s.repo.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListProducts returns the catalog narrowed by Filter.
func (s *Service) ListProducts(ctx context.Context, search, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(products, search, category), nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(products), nil
}

// AdjustStock receives (delta > 0) or deducts (delta < 0) stock.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if delta == 0 {
		return s.repo.Get(ctx, id)
	}
	return s.repo.AdjustStock(ctx, id, delta)
}

// LowStock lists products at or below threshold, emptiest first.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range products {
		if p.Stock <= threshold {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Stock != out[j].Stock {
			return out[i].Stock < out[j].Stock
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func normalize(in domain.ProductInput) (domain.ProductInput, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Barcode = strings.TrimSpace(in.Barcode)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Name == "":
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case in.Price.IsNegative():
		return in, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	case in.Stock < 0:
		return in, fmt.Errorf("%w: stock cannot be negative", ErrInvalidInput)
	}
	return in, nil
}

func fromInput(in domain.ProductInput) domain.Product {
	return domain.Product{
		ID:          in.ID,
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Barcode:     in.Barcode,
		Description: in.Description,
	}
}
