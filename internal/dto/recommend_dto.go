package dto

// Style choices accepted by the analyze endpoint.
const (
	StyleCasual      = "casual"
	StyleTraditional = "traditional"
)

// RecommendRequest is the parsed multipart form of /analyze-and-recommend.
// Image bytes are handled separately by the controller; Budget is reserved
// and not consumed by the scoring core yet.
type RecommendRequest struct {
	Style  string `validate:"required,oneof=casual traditional"`
	Size   string
	Budget *int
}

type ProductOut struct {
	Id    string   `json:"id"`
	Title string   `json:"title"`
	Store string   `json:"store"`
	Url   string   `json:"url"`
	Image string   `json:"image"`
	Price int      `json:"price"`
	Mrp   *int     `json:"mrp"`
	Sizes []string `json:"sizes"`
	Tags  []string `json:"tags"`
	Why   []string `json:"why"`
}

type RecommendResponse struct {
	Items []ProductOut `json:"items"`
}
