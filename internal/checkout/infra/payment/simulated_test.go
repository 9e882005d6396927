package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

func TestSimulatedApproves(t *testing.T) {
	p, err := NewSimulated(5*time.Millisecond).Charge(context.Background(), domain.Charge{
		Amount: decimal.NewFromInt(99),
		Method: txdomain.PaymentCard,
	})
	require.NoError(t, err)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(99)))
	assert.Equal(t, txdomain.PaymentCard, p.Method)
	assert.Regexp(t, `^SIM-[0-9a-f]{8}$`, p.Reference)
	assert.False(t, p.At.IsZero())
}

func TestSimulatedHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := NewSimulated(time.Minute).Charge(ctx, domain.Charge{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)

	_, err = NewSimulated(0).Charge(ctx, domain.Charge{})
	assert.ErrorIs(t, err, context.Canceled)
}
