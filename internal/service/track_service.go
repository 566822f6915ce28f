package service

import (
	"context"
	"time"

	"github.com/GarvitManralDev/fitlens-backend/internal/dto"
	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/internal/pkg/logger"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/contract"

	"github.com/google/uuid"
)

type ITrackService interface {
	Record(ctx context.Context, req dto.TrackRequest) error
}

type trackService struct {
	engagements contract.EngagementRepository
	publisher   IPublisherService
	log         logger.ILogger
	now         func() time.Time
}

func NewTrackService(
	engagements contract.EngagementRepository,
	publisher IPublisherService,
	log logger.ILogger,
) ITrackService {
	return &trackService{
		engagements: engagements,
		publisher:   publisher,
		log:         log,
		now:         time.Now,
	}
}

// Record appends one engagement row to the sink for its kind, stamped with
// the current server time. Clicks get their own table; "like" and "hide"
// both land in the likes table for now — the bus event keeps the original
// kind so downstream consumers can still distinguish them.
func (s *trackService) Record(ctx context.Context, req dto.TrackRequest) error {
	e := &entity.Engagement{
		Id:        uuid.New(),
		Kind:      entity.EngagementKind(req.Event),
		ProductId: req.ProductId,
		SessionId: req.SessionId,
		Ts:        s.now().Unix(),
	}

	var err error
	if e.Kind == entity.EngagementClick {
		err = s.engagements.RecordClick(ctx, e)
	} else {
		err = s.engagements.RecordLike(ctx, e)
	}
	if err != nil {
		return err
	}

	// The sink write is the source of truth; a failed publish is logged and
	// never surfaced to the client.
	if s.publisher != nil {
		if pubErr := s.publisher.PublishEngagement(ctx, e); pubErr != nil {
			s.log.Warn("track", "engagement event publish failed", map[string]interface{}{
				"error":      pubErr.Error(),
				"product_id": e.ProductId,
			})
		}
	}

	return nil
}
