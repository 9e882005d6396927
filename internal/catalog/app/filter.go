package app

import (
	"strings"

	"github.com/dwikikusuma/shoping-pos/internal/catalog/domain"
)

// CategoryAll disables the category predicate.
const CategoryAll = "all"

// Filter keeps the products matching both the search term and the category,
// in input order. A product matches the term when its name or description
// contains it (case-insensitive) or its barcode starts with it. An empty
// term matches everything, as does an empty or "all" category.
func Filter(products []domain.Product, searchTerm, category string) []domain.Product {
	term := strings.TrimSpace(searchTerm)
	lowered := strings.ToLower(term)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" && !matches(p, term, lowered) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p domain.Product, term, lowered string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowered) {
		return true
	}
	if p.Barcode != "" && strings.HasPrefix(p.Barcode, term) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Description), lowered)
}

// Categories lists the distinct non-empty categories in first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
