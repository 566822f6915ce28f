package mapper

import (
	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/internal/model"
)

type EngagementMapper struct{}

func NewEngagementMapper() *EngagementMapper {
	return &EngagementMapper{}
}

func (m *EngagementMapper) ToClick(e *entity.Engagement) *model.Click {
	return &model.Click{
		Id:        e.Id,
		ProductId: e.ProductId,
		SessionId: e.SessionId,
		Ts:        e.Ts,
	}
}

func (m *EngagementMapper) ToLike(e *entity.Engagement) *model.Like {
	return &model.Like{
		Id:        e.Id,
		ProductId: e.ProductId,
		SessionId: e.SessionId,
		Ts:        e.Ts,
	}
}
