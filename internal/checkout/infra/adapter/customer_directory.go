package adapter

import (
	"context"

	customerapp "github.com/dwikikusuma/shoping-pos/internal/customer/app"
)

type CustomerDirectory struct {
	svc *customerapp.Service
}

func NewCustomerDirectory(svc *customerapp.Service) *CustomerDirectory {
	return &CustomerDirectory{svc: svc}
}

func (d *CustomerDirectory) CheckCustomer(ctx context.Context, id string) error {
	_, err := d.svc.Get(ctx, id)
	return err
}

func (d *CustomerDirectory) AddPoints(ctx context.Context, id string, points int) error {
	_, err := d.svc.AddPoints(ctx, id, points)
	return err
}
