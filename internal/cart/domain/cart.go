package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
)

var (
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCartLocked        = errors.New("cart is locked while a payment is processing")
)

// CartLine is a product snapshot plus the quantity being bought.
type CartLine struct {
	catalog.Product
	Qty int `json:"qty"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Cart is a read-only view of a Ledger with its derived totals.
type Cart struct {
	Lines     []CartLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	LineCount int             `json:"line_count"`
}

// Ledger holds at most one line per product id, in insertion order. Stock is
// never cached: every check uses the Product handed to the call. A Ledger is
// not safe for concurrent use.
type Ledger struct {
	lines []CartLine
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem puts one more unit of p in the cart.
func (l *Ledger) AddItem(p catalog.Product) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}

	i := l.index(p.ID)
	if i < 0 {
		l.lines = append(l.lines, CartLine{Product: p, Qty: 1})
		return nil
	}
	if l.lines[i].Qty+1 > p.Stock {
		return ErrInsufficientStock
	}
	l.lines[i].Product = p
	l.lines[i].Qty++
	return nil
}

// SetQuantity sets the absolute quantity of p. Anything below 1 removes the
// line.
func (l *Ledger) SetQuantity(p catalog.Product, qty int) error {
	if qty < 1 {
		l.RemoveItem(p.ID)
		return nil
	}
	if qty > p.Stock {
		return ErrInsufficientStock
	}

	i := l.index(p.ID)
	if i < 0 {
		l.lines = append(l.lines, CartLine{Product: p, Qty: qty})
		return nil
	}
	l.lines[i].Product = p
	l.lines[i].Qty = qty
	return nil
}

func (l *Ledger) RemoveItem(productID string) {
	i := l.index(productID)
	if i < 0 {
		return
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
}

func (l *Ledger) Clear() {
	l.lines = nil
}

// Total is Σ price × qty, recomputed from the lines on every call. Prices
// include VAT; nothing is added on top.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

func (l *Ledger) ItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Qty
	}
	return n
}

func (l *Ledger) LineCount() int {
	return len(l.lines)
}

func (l *Ledger) Line(productID string) (CartLine, bool) {
	i := l.index(productID)
	if i < 0 {
		return CartLine{}, false
	}
	return l.lines[i], true
}

func (l *Ledger) Lines() []CartLine {
	out := make([]CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) Snapshot() Cart {
	return Cart{
		Lines:     l.Lines(),
		Total:     l.Total(),
		ItemCount: l.ItemCount(),
		LineCount: l.LineCount(),
	}
}

func (l *Ledger) index(productID string) int {
	for i, line := range l.lines {
		if line.ID == productID {
			return i
		}
	}
	return -1
}
