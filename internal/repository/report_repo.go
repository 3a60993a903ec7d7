package repository

import (
	"context"

	"foundercompass/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	reports := make([]entity.Report, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
