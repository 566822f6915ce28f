// Package features builds the fixed-schema feature rows consumed by the
// trained ranking model. This file is the single source of truth for the
// model input shape: the column set here must exactly match the columns the
// persisted artifact was fit on.
package features

import (
	"strings"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"
)

// Column names, in the order the training CSV carries them.
const (
	ColPrice           = "price"
	ColHasSize         = "has_size"
	ColStyle           = "style"
	ColSkinTemperature = "skin_temperature"
	ColSkinDepth       = "skin_depth"
	ColFrame           = "frame"
	ColHeightBucket    = "height_bucket"
	ColShoulders       = "shoulders"
	ColColorTags       = "color_tags"
	ColFitTags         = "fit_tags"
	ColAvoidTags       = "avoid_tags"
)

// Row is one model input row. Constructed per (product, traits, style, size)
// tuple, consumed by the scorer, then discarded.
type Row struct {
	Price           int
	HasSize         int
	Style           string
	SkinTemperature string
	SkinDepth       string
	Frame           string
	HeightBucket    string
	Shoulders       string
	ColorTags       string
	FitTags         string
	AvoidTags       string
}

// RowFrom maps one candidate to a feature row. Pure; no error path: malformed
// traits are rejected upstream at request validation.
//
// ColorTags and FitTags intentionally hold the same joined tag string — the
// persisted model was fit on duplicated columns, so "fixing" this would break
// the artifact contract. AvoidTags is reserved and always empty.
func RowFrom(p *entity.Product, t traits.Traits, style string, size string) Row {
	price := 0
	if p.Price != nil {
		price = *p.Price
	}

	hasSize := 0
	if p.HasSize(size) {
		hasSize = 1
	}

	semis := JoinTags(p.Tags)

	return Row{
		Price:           price,
		HasSize:         hasSize,
		Style:           style,
		SkinTemperature: t.SkinTemperature,
		SkinDepth:       t.SkinDepth,
		Frame:           t.Frame,
		HeightBucket:    t.HeightBucket,
		Shoulders:       t.Shoulders,
		ColorTags:       semis,
		FitTags:         semis,
		AvoidTags:       "",
	}
}

// JoinTags lowercases tags, drops empty ones and joins with ";".
func JoinTags(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(t)
		if t == "" {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, ";")
}

// Columns returns the row as a column-name keyed map. The scorer vectorizes
// from this form; tests assert the schema invariant against it.
func (r Row) Columns() map[string]any {
	return map[string]any{
		ColPrice:           r.Price,
		ColHasSize:         r.HasSize,
		ColStyle:           r.Style,
		ColSkinTemperature: r.SkinTemperature,
		ColSkinDepth:       r.SkinDepth,
		ColFrame:           r.Frame,
		ColHeightBucket:    r.HeightBucket,
		ColShoulders:       r.Shoulders,
		ColColorTags:       r.ColorTags,
		ColFitTags:         r.FitTags,
		ColAvoidTags:       r.AvoidTags,
	}
}
