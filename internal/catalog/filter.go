// internal/catalog/filter.go
package catalog

import (
	"strings"

	"github.com/javajoker/unihub-backend/internal/models"
)

// AllCategories matches every category.
const AllCategories = "all"

// Criteria narrows the public listing. The zero value matches everything.
type Criteria struct {
	CategoryID string
	Location   string
	// MaxPrice is inclusive; nil means no upper bound.
	MaxPrice *float64
}

// Matches reports whether p satisfies every criterion.
func (c Criteria) Matches(p models.Property) bool {
	if c.CategoryID != "" && c.CategoryID != AllCategories && p.CategoryID != c.CategoryID {
		return false
	}
	if c.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(c.Location)) {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	return true
}

// Filter returns the properties matching c in their input order.
func Filter(props []models.Property, c Criteria) []models.Property {
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

