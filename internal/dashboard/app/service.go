// Package app aggregates sales figures for the back-office dashboard.
package app

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	customer "github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

const topProducts = 5

type TransactionSource interface {
	List(ctx context.Context, f txdomain.Filter) ([]txdomain.Transaction, error)
}

type StockSource interface {
	LowStock(ctx context.Context, threshold int) ([]catalog.Product, error)
}

type CustomerSource interface {
	List(ctx context.Context, search string) ([]customer.Customer, error)
}

// Range bounds the reported period as [From, To). Zero values are open.
type Range struct {
	From time.Time
	To   time.Time
}

type ProductSales struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DaySales struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type Summary struct {
	TotalSales       decimal.Decimal                            `json:"total_sales"`
	TransactionCount int                                        `json:"transaction_count"`
	AverageOrder     decimal.Decimal                            `json:"average_order"`
	ItemsSold        int                                        `json:"items_sold"`
	RefundedAmount   decimal.Decimal                            `json:"refunded_amount"`
	ByPaymentMethod  map[txdomain.PaymentMethod]decimal.Decimal `json:"by_payment_method"`
	TopProducts      []ProductSales                             `json:"top_products"`
	DailySales       []DaySales                                 `json:"daily_sales"`
	LowStock         []catalog.Product                          `json:"low_stock"`
	CustomerCount    int                                        `json:"customer_count"`
}

type Service struct {
	txs       TransactionSource
	stock     StockSource
	customers CustomerSource
	threshold int
	loc       *time.Location
}

func NewService(txs TransactionSource, stock StockSource, customers CustomerSource, lowStockThreshold int) *Service {
	return &Service{txs: txs, stock: stock, customers: customers, threshold: lowStockThreshold, loc: time.Local}
}

// Summary loads the three sources concurrently. Only completed sales count
// toward revenue; refunds are reported separately.
func (s *Service) Summary(ctx context.Context, r Range) (Summary, error) {
	var (
		txs       []txdomain.Transaction
		low       []catalog.Product
		customers []customer.Customer
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.txs.List(ctx, txdomain.Filter{From: r.From, To: r.To})
		return err
	})
	g.Go(func() error {
		var err error
		low, err = s.stock.LowStock(ctx, s.threshold)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.customers.List(ctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := s.aggregate(txs)
	sum.LowStock = low
	if sum.LowStock == nil {
		sum.LowStock = []catalog.Product{}
	}
	sum.CustomerCount = len(customers)
	return sum, nil
}

func (s *Service) aggregate(txs []txdomain.Transaction) Summary {
	sum := Summary{ByPaymentMethod: map[txdomain.PaymentMethod]decimal.Decimal{}}
	products := map[string]*ProductSales{}
	days := map[string]*DaySales{}

	for _, tx := range txs {
		if tx.Status == txdomain.StatusRefunded {
			sum.RefundedAmount = sum.RefundedAmount.Add(tx.Amount)
		}
		if tx.Status != txdomain.StatusCompleted {
			continue
		}

		sum.TotalSales = sum.TotalSales.Add(tx.Amount)
		sum.TransactionCount++
		sum.ItemsSold += tx.Items
		sum.ByPaymentMethod[tx.PaymentMethod] = sum.ByPaymentMethod[tx.PaymentMethod].Add(tx.Amount)

		day := tx.Date.In(s.loc).Format(time.DateOnly)
		d, ok := days[day]
		if !ok {
			d = &DaySales{Date: day}
			days[day] = d
		}
		d.Amount = d.Amount.Add(tx.Amount)
		d.Count++

		for _, p := range tx.Products {
			ps, ok := products[p.ID]
			if !ok {
				ps = &ProductSales{ID: p.ID, Name: p.Name}
				products[p.ID] = ps
			}
			ps.Quantity += p.Quantity
			ps.Revenue = ps.Revenue.Add(p.LineTotal())
		}
	}

	if sum.TransactionCount > 0 {
		sum.AverageOrder = sum.TotalSales.Div(decimal.NewFromInt(int64(sum.TransactionCount))).Round(2)
	}

	sum.TopProducts = make([]ProductSales, 0, len(products))
	for _, ps := range products {
		sum.TopProducts = append(sum.TopProducts, *ps)
	}
	sort.Slice(sum.TopProducts, func(i, j int) bool {
		a, b := sum.TopProducts[i], sum.TopProducts[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if len(sum.TopProducts) > topProducts {
		sum.TopProducts = sum.TopProducts[:topProducts]
	}

	sum.DailySales = make([]DaySales, 0, len(days))
	for _, d := range days {
		sum.DailySales = append(sum.DailySales, *d)
	}
	sort.Slice(sum.DailySales, func(i, j int) bool { return sum.DailySales[i].Date < sum.DailySales[j].Date })

	return sum
}
