package features

import (
	"testing"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neutralTraits() traits.Traits {
	return traits.Traits{
		SkinTemperature: "neutral",
		SkinDepth:       "medium",
		HairType:        "unknown",
		HairColor:       "unknown",
		Frame:           "regular",
		HeightBucket:    "avg",
		Shoulders:       "average",
	}
}

func intPtr(v int) *int { return &v }

func TestRowFromSchema(t *testing.T) {
	p := &entity.Product{
		Id:    "p1",
		Price: intPtr(999),
		Sizes: []string{"M", "L"},
		Tags:  []string{"Casual", "Navy"},
	}

	row := RowFrom(p, neutralTraits(), "casual", "M")
	cols := row.Columns()

	// Exactly the eleven model columns, nothing else.
	require.Len(t, cols, 11)
	for _, key := range []string{
		ColPrice, ColHasSize, ColStyle, ColSkinTemperature, ColSkinDepth,
		ColFrame, ColHeightBucket, ColShoulders, ColColorTags, ColFitTags, ColAvoidTags,
	} {
		assert.Contains(t, cols, key)
	}

	assert.IsType(t, int(0), cols[ColPrice])
	assert.IsType(t, int(0), cols[ColHasSize])
	assert.IsType(t, "", cols[ColStyle])
	assert.IsType(t, "", cols[ColColorTags])
}

func TestRowFromValues(t *testing.T) {
	p := &entity.Product{
		Id:    "p1",
		Price: intPtr(999),
		Sizes: []string{"M", "L"},
		Tags:  []string{"Casual", "Navy", ""},
	}

	row := RowFrom(p, neutralTraits(), "casual", "M")

	assert.Equal(t, 999, row.Price)
	assert.Equal(t, 1, row.HasSize)
	assert.Equal(t, "casual", row.Style)
	assert.Equal(t, "neutral", row.SkinTemperature)
	assert.Equal(t, "medium", row.SkinDepth)
	assert.Equal(t, "regular", row.Frame)
	assert.Equal(t, "avg", row.HeightBucket)
	assert.Equal(t, "average", row.Shoulders)
	assert.Equal(t, "casual;navy", row.ColorTags)

	// color_tags and fit_tags are intentionally identical; avoid_tags is
	// reserved and empty.
	assert.Equal(t, row.ColorTags, row.FitTags)
	assert.Equal(t, "", row.AvoidTags)
}

func TestRowFromHasSize(t *testing.T) {
	tests := []struct {
		name  string
		sizes []string
		size  string
		want  int
	}{
		{name: "requested size in stock", sizes: []string{"M", "L"}, size: "M", want: 1},
		{name: "requested size not stocked", sizes: []string{"M", "L"}, size: "XL", want: 0},
		{name: "no size requested", sizes: []string{"M", "L"}, size: "", want: 0},
		{name: "no sizes at all", sizes: nil, size: "M", want: 0},
		{name: "empty request and empty sizes", sizes: nil, size: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &entity.Product{Id: "p1", Price: intPtr(100), Sizes: tt.sizes}
			row := RowFrom(p, neutralTraits(), "casual", tt.size)
			assert.Equal(t, tt.want, row.HasSize)
		})
	}
}

func TestRowFromNilPriceDefaultsToZero(t *testing.T) {
	p := &entity.Product{Id: "p1"}
	row := RowFrom(p, neutralTraits(), "casual", "")
	assert.Equal(t, 0, row.Price)
}

func TestJoinTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{name: "lowercases", tags: []string{"Navy", "CASUAL"}, want: "navy;casual"},
		{name: "drops empties", tags: []string{"a", "", "b"}, want: "a;b"},
		{name: "keeps duplicates", tags: []string{"navy", "navy"}, want: "navy;navy"},
		{name: "nil input", tags: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinTags(tt.tags))
		})
	}
}
