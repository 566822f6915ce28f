package ranker

import (
	"fmt"
	"testing"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func product(id string, price *int, sizes ...string) *entity.Product {
	return &entity.Product{Id: id, Price: price, Sizes: sizes, InStock: true}
}

func TestRankSortsByScoreDescending(t *testing.T) {
	products := []*entity.Product{
		product("a", intPtr(100)),
		product("b", intPtr(200)),
		product("c", intPtr(300)),
	}

	ranked := Rank(products, []float64{0.9, 0.3, 0.7}, "")

	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].Product.Id)
	assert.Equal(t, "c", ranked[1].Product.Id)
	assert.Equal(t, "b", ranked[2].Product.Id)
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	products := []*entity.Product{
		product("first", intPtr(100)),
		product("second", intPtr(200)),
		product("third", intPtr(300)),
	}

	ranked := Rank(products, []float64{0.5, 0.5, 0.5}, "")

	// Equal scores preserve catalog-join order (stable sort).
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Product.Id)
	assert.Equal(t, "second", ranked[1].Product.Id)
	assert.Equal(t, "third", ranked[2].Product.Id)
}

func TestRankTruncatesToTopK(t *testing.T) {
	var products []*entity.Product
	var probas []float64
	for i := 0; i < 20; i++ {
		products = append(products, product(fmt.Sprintf("p%d", i), intPtr(100)))
		probas = append(probas, float64(i)/20.0)
	}

	ranked := Rank(products, probas, "")
	assert.Len(t, ranked, TopK)
	// Highest score first after truncation.
	assert.Equal(t, "p19", ranked[0].Product.Id)
}

func TestRankFewerThanTopK(t *testing.T) {
	var products []*entity.Product
	var probas []float64
	for i := 0; i < 5; i++ {
		products = append(products, product(fmt.Sprintf("p%d", i), intPtr(100)))
		probas = append(probas, 0.1)
	}

	assert.Len(t, Rank(products, probas, ""), 5)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil, nil, "M"))
}

func TestReasonsFor(t *testing.T) {
	tests := []struct {
		name string
		p    *entity.Product
		size string
		want []string
	}{
		{
			name: "size and price",
			p:    product("p1", intPtr(999), "M", "L"),
			size: "M",
			want: []string{"in stock in your size", "price ₹999"},
		},
		{
			name: "price only",
			p:    product("p1", intPtr(1299), "S"),
			size: "M",
			want: []string{"price ₹1299"},
		},
		{
			name: "no size requested",
			p:    product("p1", intPtr(500), "M"),
			size: "",
			want: []string{"price ₹500"},
		},
		{
			name: "fallback when nothing applies",
			p:    product("p1", nil),
			size: "",
			want: []string{"good predicted match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonsFor(tt.p, tt.size))
		})
	}
}
