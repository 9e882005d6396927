package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/shoping-pos/internal/checkout/domain"
	customer "github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

type Deps struct {
	Cart         CartReader
	Catalog      CatalogReader
	Payments     PaymentGateway
	Transactions TransactionRecorder
	Notify       Notifier

	// Optional.
	Stock     StockWriter
	Customers CustomerDirectory
	Log       *slog.Logger
}

type Options struct {
	DecrementStock bool
	MaxConcurrent  int
	// PaymentTimeout bounds Processing. The caller's context is not used for
	// the payment, so a dropped client cannot abort a sale in flight.
	PaymentTimeout time.Duration
}

// Coordinator drives the checkout dialog for the single till. At most one
// payment is in flight; Confirm while Processing is rejected.
type Coordinator struct {
	d    Deps
	opts Options
	now  func() time.Time

	mu    sync.Mutex
	state domain.State
	last  *domain.Receipt

	// busy mirrors state == Processing and is read without mu, so the cart
	// can consult it while OpenCheckout holds mu and reads the cart.
	busy atomic.Bool
}

func NewCoordinator(d Deps, opts Options) *Coordinator {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}
	if opts.PaymentTimeout <= 0 {
		opts.PaymentTimeout = 30 * time.Second
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return &Coordinator{d: d, opts: opts, now: time.Now}
}

func (c *Coordinator) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) IsLoading() bool {
	return c.busy.Load()
}

// LastReceipt returns the receipt of the most recent successful checkout.
func (c *Coordinator) LastReceipt() (domain.Receipt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return domain.Receipt{}, false
	}
	return *c.last, true
}

func (c *Coordinator) OpenCheckout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == domain.StateProcessing {
		return domain.ErrCheckoutInProgress
	}
	lines, err := c.d.Cart.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("read cart: %w", err)
	}
	if len(lines) == 0 {
		return domain.ErrEmptyCart
	}
	if c.state != domain.StateConfirming {
		c.transition(domain.StateConfirming)
	}
	return nil
}

func (c *Coordinator) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case domain.StateProcessing:
		return domain.ErrCheckoutInProgress
	case domain.StateConfirming:
		c.transition(domain.StateIdle)
	}
	return nil
}

// Confirm charges the cart total, records the sale and clears the cart. A
// failed charge leaves the cart untouched and the dialog open.
func (c *Coordinator) Confirm(ctx context.Context, req domain.ConfirmRequest) (domain.Receipt, error) {
	method, err := txdomain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	customerID := strings.TrimSpace(req.CustomerID)

	if err := c.begin(); err != nil {
		return domain.Receipt{}, err
	}

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.PaymentTimeout)
	defer cancel()

	receipt, err := c.process(pctx, customerID, method)
	if err != nil {
		next := domain.StateConfirming
		if errors.Is(err, domain.ErrEmptyCart) {
			next = domain.StateIdle
		}
		c.finish(next, nil)
		return domain.Receipt{}, err
	}

	c.finish(domain.StateSucceeded, &receipt)
	c.d.Notify.Success(fmt.Sprintf("Payment of %s THB received", receipt.Transaction.Amount.StringFixed(2)))
	return receipt, nil
}

func (c *Coordinator) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case domain.StateProcessing:
		return domain.ErrCheckoutInProgress
	case domain.StateConfirming:
		c.transition(domain.StateProcessing)
		return nil
	}
	return domain.ErrNotConfirming
}

func (c *Coordinator) finish(next domain.State, r *domain.Receipt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r != nil {
		c.last = r
	}
	c.transition(next)
}

func (c *Coordinator) process(ctx context.Context, customerID string, method txdomain.PaymentMethod) (domain.Receipt, error) {
	if customerID != "" && c.d.Customers != nil {
		if err := c.d.Customers.CheckCustomer(ctx, customerID); err != nil {
			return domain.Receipt{}, fmt.Errorf("%w: customer %s: %v", domain.ErrInvalidRequest, customerID, err)
		}
	}

	lines, err := c.d.Cart.GetCart(ctx)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("read cart: %w", err)
	}
	if len(lines) == 0 {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	sale := domain.Sale{CustomerID: customerID, PaymentMethod: method, Lines: lines}
	payment, err := c.d.Payments.Charge(ctx, domain.Charge{Amount: sale.Total(), Method: method})
	if err != nil {
		c.d.Log.Warn("payment failed", slog.String("method", string(method)), slog.Any("err", err))
		c.d.Notify.Warn("Payment failed, please try again")
		return domain.Receipt{}, fmt.Errorf("charge: %w", err)
	}
	sale.PaidAt = payment.At
	if sale.PaidAt.IsZero() {
		sale.PaidAt = c.now()
	}

	tx, err := c.d.Transactions.Record(ctx, sale)
	if err != nil {
		c.d.Log.Error("payment taken but sale not recorded",
			slog.String("payment_ref", payment.Reference), slog.Any("err", err))
		return domain.Receipt{}, fmt.Errorf("record sale: %w", err)
	}

	if c.opts.DecrementStock && c.d.Stock != nil {
		c.deductStock(ctx, lines)
	}

	points := 0
	if customerID != "" && c.d.Customers != nil {
		points = customer.PointsFor(tx.Amount)
		if err := c.d.Customers.AddPoints(ctx, customerID, points); err != nil {
			c.d.Log.Warn("loyalty points not added", slog.String("customer_id", customerID), slog.Any("err", err))
			points = 0
		}
	}

	if err := c.d.Cart.ClearCart(ctx); err != nil {
		c.d.Log.Warn("cart not cleared after sale", slog.Any("err", err))
	}

	c.d.Log.Info("checkout completed",
		slog.String("transaction_id", tx.ID),
		slog.String("amount", tx.Amount.String()),
		slog.String("method", string(method)),
		slog.Int("items", tx.Items))

	return domain.Receipt{Transaction: tx, Payment: payment, PointsEarned: points}, nil
}

// deductStock never fails the sale; shortfalls are surfaced as warnings.
func (c *Coordinator) deductStock(ctx context.Context, lines []domain.Line) {
	for _, l := range lines {
		if err := c.d.Stock.DeductStock(ctx, l.ProductID, l.Quantity); err != nil {
			c.d.Log.Warn("stock not deducted", slog.String("product_id", l.ProductID), slog.Any("err", err))
			c.d.Notify.Warn(fmt.Sprintf("Stock for %s could not be updated", l.Name))
		}
	}
}

// Quote prices the cart and checks every line against current stock.
func (c *Coordinator) Quote(ctx context.Context) (domain.Quote, error) {
	items, err := c.d.Cart.GetCart(ctx)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(items) == 0 {
		return domain.Quote{}, domain.ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.MaxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			product, err := c.d.Catalog.GetProduct(gctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}
			lines[idx] = domain.QuoteLine{
				Line:      it,
				LineTotal: it.Total(),
				InStock:   product.Stock,
				Short:     product.Stock < it.Quantity,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	q := domain.Quote{Lines: lines}
	for _, l := range lines {
		q.Total = q.Total.Add(l.LineTotal)
		q.ItemCount += l.Quantity
		q.Short = q.Short || l.Short
	}
	return q, nil
}

// transition must be called with mu held.
func (c *Coordinator) transition(next domain.State) {
	if c.state == next {
		return
	}
	c.d.Log.Debug("checkout state", slog.String("from", c.state.String()), slog.String("to", next.String()))
	c.state = next
	c.busy.Store(next == domain.StateProcessing)
}
