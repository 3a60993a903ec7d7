package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SessionStatus string

// Status only ever moves forward out of "started"; "completed" and
// "dropped_off" are both terminal.
const (
	SessionStarted    SessionStatus = "started"
	SessionCompleted  SessionStatus = "completed"
	SessionDroppedOff SessionStatus = "dropped_off"
)

type Session struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Answers datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	Status  SessionStatus  `gorm:"type:varchar(20);not null;default:'started'"`

	StartTime time.Time `gorm:"not null"`
	EndTime   *time.Time
}
