package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/shoping-pos/internal/customer/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("customer not found")
	ErrConflict     = errors.New("customer already exists")
)

type Service struct {
	repo CustomerRepo
	now  func() time.Time
}

func NewService(repo CustomerRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List matches the search term against name, email and phone.
func (s *Service) List(ctx context.Context, search string) ([]domain.Customer, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return all, nil
	}

	out := make([]domain.Customer, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Customer{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in domain.CustomerInput) (domain.Customer, error) {
	in = normalize(in)
	if err := validate(in); err != nil {
		return domain.Customer{}, err
	}

	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	now := s.now().UTC()
	return s.repo.Create(ctx, domain.Customer{
		ID:        in.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Update replaces contact details. Points are only changed by AddPoints.
func (s *Service) Update(ctx context.Context, id string, in domain.CustomerInput) (domain.Customer, error) {
	in = normalize(in)
	if err := validate(in); err != nil {
		return domain.Customer{}, err
	}
	cur, err := s.Get(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	cur.Name = in.Name
	cur.Email = in.Email
	cur.Phone = in.Phone
	cur.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, cur)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddPoints(ctx context.Context, id string, points int) (domain.Customer, error) {
	if points < 0 {
		return domain.Customer{}, fmt.Errorf("%w: points cannot be negative, got %d", ErrInvalidInput, points)
	}
	cur, err := s.Get(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if points == 0 {
		return cur, nil
	}
	cur.Points += points
	cur.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, cur)
}

func normalize(in domain.CustomerInput) domain.CustomerInput {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

func validate(in domain.CustomerInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: email %q is not valid", ErrInvalidInput, in.Email)
	}
	return nil
}
