// Package mlmodel loads and evaluates the persisted ranking pipeline: a
// logistic regression over numeric passthrough, one-hot encoded categorical
// and binary bag-of-words text columns, serialized to a single JSON artifact
// by the training job.
package mlmodel

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/GarvitManralDev/fitlens-backend/pkg/features"
)

// noneToken stands in for an empty text column so "no tags" is a learnable
// signal rather than a silently dropped row.
const noneToken = "__none__"

// Pipeline is the deserialized trained artifact. Weights are keyed by
// transformer-qualified feature names:
//
//	num__price, num__has_size
//	cat__style__casual, cat__frame__slim, ...
//	bow__color_tags__navy, bow__avoid_tags____none__, ...
//
// Categories and tokens absent from the vocabularies contribute nothing,
// matching the trainer's unknown-ignored encoding.
type Pipeline struct {
	Bias        float64             `json:"bias"`
	Weights     map[string]float64  `json:"weights"`
	Numeric     []string            `json:"numeric"`
	Categorical map[string][]string `json:"categorical"`
	Bow         map[string][]string `json:"bow"`
}

// LoadPipeline reads a pipeline artifact from disk.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Pipeline
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("corrupt model artifact %s: %w", path, err)
	}
	if p.Weights == nil {
		return nil, fmt.Errorf("corrupt model artifact %s: no weights", path)
	}
	return &p, nil
}

// PredictProba returns the match probability for one feature row.
func (p *Pipeline) PredictProba(row features.Row) float64 {
	cols := row.Columns()
	z := p.Bias

	for _, col := range p.Numeric {
		z += p.weight("num__"+col) * numericValue(cols[col])
	}

	for col, vocab := range p.Categorical {
		val := stringValue(cols[col])
		for _, cat := range vocab {
			if cat == val {
				z += p.weight("cat__" + col + "__" + cat)
				break
			}
		}
	}

	for col, vocab := range p.Bow {
		tokens := tokenize(stringValue(cols[col]))
		for _, tok := range vocab {
			if _, ok := tokens[tok]; ok {
				z += p.weight("bow__" + col + "__" + tok)
			}
		}
	}

	return sigmoid(z)
}

func (p *Pipeline) weight(name string) float64 {
	return p.Weights[name]
}

// tokenize splits a semicolon-joined tag string into a binary token set,
// substituting the none sentinel for empty input.
func tokenize(s string) map[string]struct{} {
	s = strings.ToLower(strings.TrimSpace(s))
	set := make(map[string]struct{})
	if s == "" || s == noneToken {
		set[noneToken] = struct{}{}
		return set
	}
	for _, tok := range strings.Split(s, ";") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

func numericValue(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
