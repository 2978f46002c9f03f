// internal/catalog/filter_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/unihub-backend/internal/models"
)

func price(v float64) *float64 { return &v }

func sample() []models.Property {
	return []models.Property{
		{ID: "1", CategoryID: "X", Location: "Yaba, Lagos", Price: 500},
		{ID: "2", CategoryID: "Y", Location: "Lekki", Price: 200},
		{ID: "3", CategoryID: "X", Location: "Akoka, Yaba", Price: 1500},
	}
}

func ids(props []models.Property) []string {
	out := []string{}
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"zero value matches all", Criteria{}, []string{"1", "2", "3"}},
		{"all keyword", Criteria{CategoryID: AllCategories}, []string{"1", "2", "3"}},
		{"category and location and price", Criteria{CategoryID: "X", Location: "yaba", MaxPrice: price(1000)}, []string{"1"}},
		{"location case insensitive", Criteria{Location: "LEKKI"}, []string{"2"}},
		{"max price inclusive", Criteria{MaxPrice: price(500)}, []string{"1", "2"}},
		{"nothing matches", Criteria{CategoryID: "Z"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sample(), tt.criteria)))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	c := Criteria{CategoryID: "X", Location: "yaba", MaxPrice: price(2000)}

	once := Filter(sample(), c)
	twice := Filter(once, c)

	assert.Equal(t, once, twice)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	props := sample()
	props[0], props[2] = props[2], props[0]

	assert.Equal(t, []string{"3", "1"}, ids(Filter(props, Criteria{CategoryID: "X"})))
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria(" all ", " Yaba ", "")
	require.NoError(t, err)
	assert.Equal(t, AllCategories, c.CategoryID)
	assert.Equal(t, "Yaba", c.Location)
	assert.Nil(t, c.MaxPrice)

	c, err = ParseCriteria("", "", "900000")
	require.NoError(t, err)
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 900000.0, *c.MaxPrice)

	_, err = ParseCriteria("", "", "cheap")
	assert.Error(t, err)

	for _, raw := range []string{"NaN", "Inf", "-Inf", "+infinity"} {
		_, err = ParseCriteria("", "", raw)
		assert.Error(t, err, raw)
	}
}
