package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductsAreUniqueAndFresh(t *testing.T) {
	ids := map[string]bool{}
	barcodes := map[string]bool{}
	for _, p := range Products() {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		assert.False(t, barcodes[p.Barcode], "duplicate barcode %s", p.Barcode)
		ids[p.ID], barcodes[p.Barcode] = true, true
		assert.False(t, p.Price.IsNegative())
	}

	a := Products()
	a[0].Stock = -1
	assert.NotEqual(t, -1, Products()[0].Stock)
}

func TestCustomersHaveDistinctEmails(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Customers() {
		if c.Email == "" {
			continue
		}
		assert.False(t, seen[c.Email])
		seen[c.Email] = true
	}
	assert.NotNil(t, Transactions())
}
