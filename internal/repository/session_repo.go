package repository

import (
	"context"
	"errors"
	"time"

	"foundercompass/internal/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Complete replaces the answers and moves the session to "completed",
	// guarded so only a session still in "started" is touched. Returns the
	// number of rows updated; zero means the session was already terminal.
	Complete(ctx context.Context, id uuid.UUID, answers datatypes.JSON, endTime time.Time) (int64, error)
	// MarkStaleDroppedOff moves sessions started before the cutoff and never
	// finished to "dropped_off". Returns how many were swept.
	MarkStaleDroppedOff(ctx context.Context, cutoff time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) Complete(ctx context.Context, id uuid.UUID, answers datatypes.JSON, endTime time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ? AND status = ?", id, entity.SessionStarted).
		Updates(map[string]any{
			"answers":  answers,
			"status":   entity.SessionCompleted,
			"end_time": &endTime,
		})
	return result.RowsAffected, result.Error
}

func (r *sessionRepository) MarkStaleDroppedOff(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("status = ? AND start_time < ?", entity.SessionStarted, cutoff).
		Update("status", entity.SessionDroppedOff)
	return result.RowsAffected, result.Error
}
