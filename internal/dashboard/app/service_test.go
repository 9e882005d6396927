package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	customer "github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

type txList []txdomain.Transaction

func (l txList) List(_ context.Context, f txdomain.Filter) ([]txdomain.Transaction, error) {
	var out []txdomain.Transaction
	for _, t := range l {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

type lowStock []catalog.Product

func (l lowStock) LowStock(context.Context, int) ([]catalog.Product, error) { return l, nil }

type customerList int

func (n customerList) List(context.Context, string) ([]customer.Customer, error) {
	return make([]customer.Customer, n), nil
}

type failing struct{}

func (failing) LowStock(context.Context, int) ([]catalog.Product, error) {
	return nil, errors.New("catalog offline")
}

func sale(day int, method txdomain.PaymentMethod, st txdomain.Status, lines ...txdomain.Product) txdomain.Transaction {
	tx := txdomain.Transaction{
		ID:            fmt.Sprintf("tx-%d-%s", day, method),
		Date:          time.Date(2026, 4, day, 12, 0, 0, 0, time.UTC),
		PaymentMethod: method,
		Status:        st,
		Products:      lines,
	}
	for _, l := range lines {
		tx.Amount = tx.Amount.Add(l.LineTotal())
		tx.Items += l.Quantity
	}
	return tx
}

func item(id string, price int64, qty int) txdomain.Product {
	return txdomain.Product{ID: id, Name: "name-" + id, Price: decimal.NewFromInt(price), Quantity: qty}
}

func TestSummary(t *testing.T) {
	txs := txList{
		sale(1, txdomain.PaymentCash, txdomain.StatusCompleted, item("a", 10, 3), item("b", 50, 1)),
		sale(1, txdomain.PaymentCard, txdomain.StatusCompleted, item("c", 20, 3)),
		sale(2, txdomain.PaymentCash, txdomain.StatusRefunded, item("a", 10, 9)),
		sale(3, txdomain.PaymentQR, txdomain.StatusCanceled, item("d", 5, 1)),
		sale(3, txdomain.PaymentQR, txdomain.StatusCompleted, item("e", 1, 1), item("f", 1, 1), item("g", 1, 1), item("h", 1, 1)),
	}
	svc := NewService(txs, lowStock{{ID: "a", Stock: 2}}, customerList(3), 5)
	svc.loc = time.UTC

	sum, err := svc.Summary(context.Background(), Range{})
	require.NoError(t, err)

	assert.True(t, sum.TotalSales.Equal(decimal.NewFromInt(144)), sum.TotalSales.String())
	assert.Equal(t, 3, sum.TransactionCount)
	assert.True(t, sum.AverageOrder.Equal(decimal.NewFromInt(48)))
	assert.Equal(t, 11, sum.ItemsSold)
	assert.True(t, sum.RefundedAmount.Equal(decimal.NewFromInt(90)))
	assert.True(t, sum.ByPaymentMethod[txdomain.PaymentCash].Equal(decimal.NewFromInt(80)))
	assert.True(t, sum.ByPaymentMethod[txdomain.PaymentCard].Equal(decimal.NewFromInt(60)))
	assert.True(t, sum.ByPaymentMethod[txdomain.PaymentQR].Equal(decimal.NewFromInt(4)))

	require.Len(t, sum.TopProducts, 5)
	var top []string
	for _, p := range sum.TopProducts {
		top = append(top, p.ID)
	}
	assert.Equal(t, []string{"a", "c", "b", "e", "f"}, top, "by quantity, ties by name")
	assert.True(t, sum.TopProducts[0].Revenue.Equal(decimal.NewFromInt(30)))

	require.Len(t, sum.DailySales, 2)
	assert.Equal(t, "2026-04-01", sum.DailySales[0].Date)
	assert.True(t, sum.DailySales[0].Amount.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, 2, sum.DailySales[0].Count)
	assert.Equal(t, "2026-04-03", sum.DailySales[1].Date)

	assert.Len(t, sum.LowStock, 1)
	assert.Equal(t, 3, sum.CustomerCount)
}

func TestSummaryRange(t *testing.T) {
	txs := txList{
		sale(1, txdomain.PaymentCash, txdomain.StatusCompleted, item("a", 10, 1)),
		sale(2, txdomain.PaymentCash, txdomain.StatusCompleted, item("a", 10, 2)),
	}
	svc := NewService(txs, lowStock{}, customerList(0), 5)

	sum, err := svc.Summary(context.Background(), Range{
		From: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.TransactionCount)
	assert.Equal(t, 2, sum.ItemsSold)
	assert.NotNil(t, sum.LowStock)
}

func TestSummaryEmptyAndFailing(t *testing.T) {
	sum, err := NewService(txList{}, lowStock{}, customerList(0), 5).Summary(context.Background(), Range{})
	require.NoError(t, err)
	assert.True(t, sum.AverageOrder.IsZero())
	assert.Empty(t, sum.TopProducts)

	_, err = NewService(txList{}, failing{}, customerList(0), 5).Summary(context.Background(), Range{})
	assert.EqualError(t, err, "catalog offline")
}
