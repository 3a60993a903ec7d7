package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TrackingEventType string

const (
	EventCompletion TrackingEventType = "completion"
	EventDropOff    TrackingEventType = "drop_off"
	EventCTAClick   TrackingEventType = "cta_click"
)

func (t TrackingEventType) Valid() bool {
	switch t {
	case EventCompletion, EventDropOff, EventCTAClick:
		return true
	}
	return false
}

// TrackingEvent is an append-only log row. Either reference may be absent.
type TrackingEvent struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SessionID *uuid.UUID `gorm:"type:uuid;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`

	EventType TrackingEventType `gorm:"type:varchar(20);not null"`
	Details   datatypes.JSON    `gorm:"type:jsonb"`

	Timestamp time.Time `gorm:"not null"`
}
