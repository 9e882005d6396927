package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

func TestBaht(t *testing.T) {
	tests := map[string]string{
		"0":         "฿0.00",
		"5.5":       "฿5.50",
		"999":       "฿999.00",
		"1000":      "฿1,000.00",
		"1234567.8": "฿1,234,567.80",
		"-42.1":     "-฿42.10",
	}
	for in, want := range tests {
		assert.Equal(t, want, Baht(decimal.RequireFromString(in)), in)
	}
}

func TestVAT(t *testing.T) {
	assert.True(t, VAT(decimal.NewFromInt(107)).Equal(decimal.NewFromInt(7)))
	assert.True(t, VAT(decimal.NewFromInt(100)).Equal(decimal.RequireFromString("6.54")), VAT(decimal.NewFromInt(100)).String())
	assert.True(t, VAT(decimal.Zero).IsZero())
}

func TestRender(t *testing.T) {
	tx := domain.Transaction{
		ID:            "tx-1",
		Amount:        decimal.NewFromInt(1070),
		Items:         3,
		Date:          time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
		PaymentMethod: domain.PaymentQR,
		Status:        domain.StatusCompleted,
		Products: []domain.Product{
			{ID: "a", Name: "Thai <Tea>", Price: decimal.NewFromInt(35), Quantity: 2},
			{ID: "b", Name: "Cake", Price: decimal.NewFromInt(1000), Quantity: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tx, Options{ShopName: "Corner Shop", CustomerName: "Somchai", Location: time.UTC}))
	out := buf.String()

	assert.Contains(t, out, "Corner Shop")
	assert.Contains(t, out, "04 May 2026 09:30")
	assert.Contains(t, out, "Thai &lt;Tea&gt; x2")
	assert.Contains(t, out, "฿70.00")
	assert.Contains(t, out, "฿1,070.00")
	assert.Contains(t, out, "฿1,000.00")
	assert.Contains(t, out, "Customer: Somchai")
	assert.NotContains(t, out, "<strong>completed</strong>")

	tx.Status = domain.StatusRefunded
	buf.Reset()
	require.NoError(t, Render(&buf, tx, Options{ShopName: "Corner Shop"}))
	assert.Contains(t, buf.String(), "<strong>refunded</strong>")
	assert.NotContains(t, buf.String(), "Customer:")
}
