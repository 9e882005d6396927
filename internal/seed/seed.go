// Package seed holds the demo dataset a fresh till starts with. The stores
// fall back to it whenever their key is missing or unreadable.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
	customer "github.com/dwikikusuma/shoping-pos/internal/customer/domain"
	txdomain "github.com/dwikikusuma/shoping-pos/internal/transaction/domain"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func product(id, name, price string, stock int, category, barcode, desc string) catalog.Product {
	return catalog.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		Category:    category,
		Barcode:     barcode,
		Description: desc,
		CreatedAt:   epoch,
		UpdatedAt:   epoch,
	}
}

// Products returns a fresh copy on every call.
func Products() []catalog.Product {
	return []catalog.Product{
		product("1", "Thai Iced Tea", "45", 50, "Beverages", "8850001000011", "Sweet milk tea over ice"),
		product("2", "Espresso", "55", 40, "Beverages", "8850001000028", "Double shot"),
		product("3", "Bottled Water", "15", 120, "Beverages", "8850001000035", "600 ml"),
		product("4", "Pad Thai", "80", 20, "Food", "8850002000010", "Rice noodles with shrimp"),
		product("5", "Green Curry", "95", 15, "Food", "8850002000027", "Chicken green curry with rice"),
		product("6", "Mango Sticky Rice", "70", 3, "Desserts", "8850003000019", "Seasonal"),
		product("7", "Coconut Ice Cream", "40", 0, "Desserts", "8850003000026", "Served in a coconut shell"),
		product("8", "Tote Bag", "250", 8, "Merchandise", "8850004000018", "Canvas, printed logo"),
	}
}

func Customers() []customer.Customer {
	return []customer.Customer{
		{ID: "c1", Name: "Somchai Jaidee", Email: "somchai@example.com", Phone: "0812345678", Points: 12, CreatedAt: epoch, UpdatedAt: epoch},
		{ID: "c2", Name: "Malee Srisuk", Email: "malee@example.com", Phone: "0898765432", Points: 3, CreatedAt: epoch, UpdatedAt: epoch},
		{ID: "c3", Name: "Niran Thongdee", Phone: "0861112233", CreatedAt: epoch, UpdatedAt: epoch},
	}
}

// Transactions is empty: a new till has no sales history.
func Transactions() []txdomain.Transaction {
	return []txdomain.Transaction{}
}
