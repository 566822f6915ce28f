package mlmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GarvitManralDev/fitlens-backend/pkg/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipeline() *Pipeline {
	return &Pipeline{
		Bias:    -1.0,
		Numeric: []string{"price", "has_size"},
		Categorical: map[string][]string{
			"style": {"casual", "traditional"},
		},
		Bow: map[string][]string{
			"color_tags": {"navy", "olive", "__none__"},
		},
		Weights: map[string]float64{
			"num__price":             0.001,
			"num__has_size":          0.5,
			"cat__style__casual":     0.3,
			"bow__color_tags__navy":  0.7,
			"bow__color_tags__olive": -0.2,
		},
	}
}

func TestPredictProbaRange(t *testing.T) {
	pipe := testPipeline()
	row := features.Row{Price: 999, HasSize: 1, Style: "casual", ColorTags: "navy;olive"}

	p := pipe.PredictProba(row)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)
}

func TestPredictProbaKnownValue(t *testing.T) {
	pipe := &Pipeline{
		Bias:    0,
		Weights: map[string]float64{},
	}
	// No features fire: sigmoid(0) = 0.5 exactly.
	assert.InDelta(t, 0.5, pipe.PredictProba(features.Row{}), 1e-9)
}

func TestPredictProbaUnknownCategoryIgnored(t *testing.T) {
	pipe := testPipeline()

	base := features.Row{Price: 100, Style: "casual"}
	unknown := features.Row{Price: 100, Style: "festive"} // not in vocab

	// Unknown category contributes nothing, so only the style weight differs.
	pBase := pipe.PredictProba(base)
	pUnknown := pipe.PredictProba(unknown)
	assert.Greater(t, pBase, pUnknown)

	noStyle := testPipeline()
	delete(noStyle.Weights, "cat__style__casual")
	assert.InDelta(t, noStyle.PredictProba(base), pUnknown, 1e-9)
}

func TestPredictProbaEmptyTagsUsesNoneToken(t *testing.T) {
	pipe := testPipeline()
	pipe.Weights["bow__color_tags____none__"] = 0.9

	withTags := features.Row{Style: "casual", ColorTags: "navy"}
	noTags := features.Row{Style: "casual", ColorTags: ""}

	// Empty text hits the none token weight instead of contributing nothing.
	assert.Greater(t, pipe.PredictProba(noTags), pipe.PredictProba(features.Row{Style: "casual", ColorTags: "olive"}))
	assert.NotEqual(t, pipe.PredictProba(withTags), pipe.PredictProba(noTags))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "plain tags", in: "navy;olive", want: []string{"navy", "olive"}},
		{name: "empty becomes none", in: "", want: []string{"__none__"}},
		{name: "none passes through", in: "__none__", want: []string{"__none__"}},
		{name: "whitespace trimmed", in: " navy ; olive ", want: []string{"navy", "olive"}},
		{name: "uppercase folded", in: "NAVY", want: []string{"navy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := tokenize(tt.in)
			require.Len(t, set, len(tt.want))
			for _, tok := range tt.want {
				assert.Contains(t, set, tok)
			}
		})
	}
}

func TestLoadPipeline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reco_lr.json")

	artifact := `{
		"bias": -0.5,
		"weights": {"num__price": 0.002},
		"numeric": ["price", "has_size"],
		"categorical": {"style": ["casual", "traditional"]},
		"bow": {"color_tags": ["navy"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o644))

	pipe, err := LoadPipeline(path)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, pipe.Bias, 1e-9)
	assert.InDelta(t, 0.002, pipe.Weights["num__price"], 1e-9)
	assert.Equal(t, []string{"casual", "traditional"}, pipe.Categorical["style"])
}

func TestLoadPipelineCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadPipeline(path)
	assert.Error(t, err)
}
