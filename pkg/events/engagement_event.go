package events

import "time"

const EngagementRecordedType = "ENGAGEMENT_RECORDED"

// EngagementRecorded is emitted after an engagement row has been persisted.
// Kind keeps the original event name ("hide" included), even though hide and
// like currently share a sink, so downstream training consumers can tell
// them apart.
type EngagementRecorded struct {
	Kind       string
	ProductId  string
	SessionId  string
	Ts         int64
	OccurredAt time.Time
}

func (e EngagementRecorded) EventType() string { return EngagementRecordedType }

func (e EngagementRecorded) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event":      e.Kind,
		"product_id": e.ProductId,
		"session_id": e.SessionId,
		"ts":         e.Ts,
	}
}

func (e EngagementRecorded) Timestamp() time.Time { return e.OccurredAt }
