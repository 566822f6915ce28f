package implementation

import (
	"context"

	"github.com/GarvitManralDev/fitlens-backend/internal/entity"
	"github.com/GarvitManralDev/fitlens-backend/internal/mapper"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/contract"

	"gorm.io/gorm"
)

type EngagementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EngagementMapper
}

func NewEngagementRepository(db *gorm.DB) contract.EngagementRepository {
	return &EngagementRepositoryImpl{
		db:     db,
		mapper: mapper.NewEngagementMapper(),
	}
}

func (r *EngagementRepositoryImpl) RecordClick(ctx context.Context, e *entity.Engagement) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToClick(e)).Error
}

func (r *EngagementRepositoryImpl) RecordLike(ctx context.Context, e *entity.Engagement) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToLike(e)).Error
}
