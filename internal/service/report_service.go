package service

import (
	"context"

	"foundercompass/internal/entity"
	"foundercompass/internal/repository"

	"github.com/google/uuid"
)

type ReportService struct {
	reports repository.ReportRepository
}

func NewReportService(reports repository.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// ListByUser returns the user's reports, newest first. A user with no reports
// gets an empty slice, not an error.
func (s *ReportService) ListByUser(ctx context.Context, userID string) ([]entity.Report, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	return s.reports.ListByUser(ctx, id)
}
