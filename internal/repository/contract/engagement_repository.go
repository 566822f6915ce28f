package contract

import (
	"context"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
)

// EngagementRepository exposes the two append-only sinks. "hide" currently
// rides the like sink (no dedicated table yet), so there is no RecordHide.
type EngagementRepository interface {
	RecordClick(ctx context.Context, e *entity.Engagement) error
	RecordLike(ctx context.Context, e *entity.Engagement) error
}
