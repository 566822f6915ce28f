package traits

// Traits is the fixed set of visually-derived user attributes consumed by the
// feature row builder. Produced once per request and never mutated.
type Traits struct {
	SkinTemperature string `json:"skin_temperature"` // "warm" | "cool" | "neutral"
	SkinDepth       string `json:"skin_depth"`       // "light" | "medium" | "deep"
	HairType        string `json:"hair_type"`        // always "unknown" for now
	HairColor       string `json:"hair_color"`       // always "unknown" for now
	Frame           string `json:"frame"`            // "slim" | "regular" | "fuller"
	HeightBucket    string `json:"height_bucket"`    // "short" | "avg" | "tall"
	Shoulders       string `json:"shoulders"`        // "narrow" | "average" | "broad"
}

const (
	SkinTemperatureWarm    = "warm"
	SkinTemperatureCool    = "cool"
	SkinTemperatureNeutral = "neutral"

	SkinDepthLight  = "light"
	SkinDepthMedium = "medium"
	SkinDepthDeep   = "deep"

	FrameSlim    = "slim"
	FrameRegular = "regular"
	FrameFuller  = "fuller"

	HeightShort = "short"
	HeightAvg   = "avg"
	HeightTall  = "tall"

	ShouldersNarrow  = "narrow"
	ShouldersAverage = "average"
	ShouldersBroad   = "broad"
)
