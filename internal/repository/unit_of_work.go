package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork runs session and report writes in one transaction so a session
// can never end up completed without its report, or vice versa.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(sessions SessionRepository, reports ReportRepository) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(sessions SessionRepository, reports ReportRepository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSessionRepository(tx), NewReportRepository(tx))
	})
}
