package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout is already processing")
	ErrNotConfirming      = errors.New("checkout is not awaiting confirmation")
	ErrInvalidRequest     = errors.New("invalid checkout request")
)

// State is the checkout dialog's position. The zero value is Idle.
type State int

const (
	StateIdle State = iota
	StateConfirming
	StateProcessing
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfirming:
		return "confirming"
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Line is one cart line as checkout sees it, priced at the time it was added.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type QuoteLine struct {
	Line
	LineTotal decimal.Decimal `json:"line_total"`
	InStock   int             `json:"in_stock"`
	Short     bool            `json:"short"`
}

// Quote is the order summary shown before confirming. Short marks lines
// whose current stock no longer covers the quantity.
type Quote struct {
	Lines     []QuoteLine     `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Short     bool            `json:"short"`
}

type ConfirmRequest struct {
	CustomerID    string `json:"customer_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type Charge struct {
	Amount decimal.Decimal
	Method txdomain.PaymentMethod
}

type Payment struct {
	Reference string                 `json:"reference"`
	Amount    decimal.Decimal        `json:"amount"`
	Method    txdomain.PaymentMethod `json:"method"`
	At        time.Time              `json:"at"`
}

// Sale is a paid cart ready to be recorded.
type Sale struct {
	CustomerID    string
	PaymentMethod txdomain.PaymentMethod
	Lines         []Line
	PaidAt        time.Time
}

func (s Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lines {
		total = total.Add(l.Total())
	}
	return total
}

type Receipt struct {
	Transaction  txdomain.Transaction `json:"transaction"`
	Payment      Payment              `json:"payment"`
	PointsEarned int                  `json:"points_earned"`
}
