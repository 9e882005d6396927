// Package payment holds the payment gateways the till can charge through.
package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
)

// Simulated approves every charge after Delay, like a card terminal that
// never declines. Cancelling ctx aborts the wait.
type Simulated struct {
	Delay time.Duration
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay}
}

func (s *Simulated) Charge(ctx context.Context, c domain.Charge) (domain.Payment, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return domain.Payment{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return domain.Payment{}, err
	}

	return domain.Payment{
		Reference: "SIM-" + uuid.NewString()[:8],
		Amount:    c.Amount,
		Method:    c.Method,
		At:        time.Now().UTC(),
	}, nil
}
