package entity

import "github.com/google/uuid"

type EngagementKind string

const (
	EngagementClick EngagementKind = "click"
	EngagementLike  EngagementKind = "like"
	EngagementHide  EngagementKind = "hide"
)

// Engagement is one recorded user interaction. Ts is stamped with server time
// at write; client-supplied timestamps are ignored.
type Engagement struct {
	Id        uuid.UUID
	Kind      EngagementKind
	ProductId string
	SessionId string
	Ts        int64
}
