package repository

import (
	"context"

	"foundercompass/internal/entity"

	"gorm.io/gorm"
)

// TrackingEventRepository is append-only; events are never read back by the
// API surface, only by offline analysis.
type TrackingEventRepository interface {
	Create(ctx context.Context, event *entity.TrackingEvent) error
}

type trackingEventRepository struct {
	db *gorm.DB
}

func NewTrackingEventRepository(db *gorm.DB) TrackingEventRepository {
	return &trackingEventRepository{db: db}
}

func (r *trackingEventRepository) Create(ctx context.Context, event *entity.TrackingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
