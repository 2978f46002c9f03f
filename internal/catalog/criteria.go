// internal/catalog/criteria.go
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCriteria builds criteria from raw query values. A blank maxPrice means no upper bound.
func ParseCriteria(category, location, maxPrice string) (Criteria, error) {
	c := Criteria{
		CategoryID: strings.TrimSpace(category),
		Location:   strings.TrimSpace(location),
	}
	if maxPrice = strings.TrimSpace(maxPrice); maxPrice != "" {
		m, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil || math.IsNaN(m) || math.IsInf(m, 0) {
			return Criteria{}, fmt.Errorf("max_price %q is not a number", maxPrice)
		}
		c.MaxPrice = &m
	}
	return c, nil
}
