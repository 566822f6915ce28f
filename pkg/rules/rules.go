// Package rules holds the small, explicit styling rule tables. The serving
// path is model-only; these tables label the synthetic training data
// (cmd/traindata) the artifact is bootstrapped from.
package rules

import "github.com/GarvitManralDev/fitlens-backend/pkg/traits"

var (
	WarmColors    = []string{"olive", "mustard", "rust", "warm beige", "cream", "maroon"}
	CoolColors    = []string{"navy", "charcoal", "cool gray", "emerald", "wine", "ice blue"}
	NeutralColors = []string{"taupe", "sand", "stone", "black", "white"}
)

// PaletteFor returns the preferred color palette for a skin undertone.
func PaletteFor(t traits.Traits) []string {
	switch t.SkinTemperature {
	case traits.SkinTemperatureWarm:
		return append(append([]string{}, WarmColors...), "brown", "tan")
	case traits.SkinTemperatureCool:
		return append(append([]string{}, CoolColors...), "black", "white")
	default:
		return append(append([]string{}, NeutralColors...), "navy", "olive")
	}
}

// FitTagsFor returns positive fit/neckline/length tags plus the category tag
// for the chosen style.
func FitTagsFor(t traits.Traits, style string) []string {
	var tags []string

	switch t.Frame {
	case traits.FrameSlim:
		tags = append(tags, "slim", "regular", "structured-shoulder")
	case traits.FrameRegular:
		tags = append(tags, "regular")
	default: // fuller
		tags = append(tags, "relaxed", "straight", "drape", "no-cling")
	}

	switch t.HeightBucket {
	case traits.HeightShort:
		tags = append(tags, "regular-length", "cropped")
	case traits.HeightTall:
		tags = append(tags, "longline", "layer-friendly")
	}

	switch t.Shoulders {
	case traits.ShouldersNarrow:
		tags = append(tags, "mandarin", "crew", "stand-collar")
	case traits.ShouldersBroad:
		tags = append(tags, "v-neck", "henley", "short-mandarin")
	}

	if style == "casual" {
		tags = append(tags, "casual")
	} else {
		tags = append(tags, "traditional")
	}
	return tags
}

// AvoidTagsFor returns tags a body type should steer away from.
func AvoidTagsFor(t traits.Traits) []string {
	var avoid []string
	if t.Frame == traits.FrameFuller {
		avoid = append(avoid, "clingy", "heavy-shine")
	}
	if t.HeightBucket == traits.HeightShort {
		avoid = append(avoid, "extra-long")
	}
	return avoid
}
