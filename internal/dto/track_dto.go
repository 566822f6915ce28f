package dto

// TrackRequest is the /track payload. Any client-supplied timestamp is
// deliberately absent from the schema; the recorder stamps server time.
type TrackRequest struct {
	Event     string `json:"event" validate:"required,oneof=click like hide"`
	ProductId string `json:"product_id" validate:"required"`
	SessionId string `json:"session_id" validate:"required"`
}

type TrackResponse struct {
	Ok bool `json:"ok"`
}
