package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Report is the synthesized output of a completed session. Rows are immutable
// once written; the unique index on SessionID guarantees at most one report
// per session.
type Report struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	MindsetShift            string `gorm:"type:varchar(255);not null"`
	MindsetShiftInsight     string `gorm:"type:text;not null"`
	OperationalFocus        string `gorm:"type:varchar(255);not null"`
	OperationalFocusInsight string `gorm:"type:text;not null"`

	NextMove datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`

	GeneratedAt time.Time `gorm:"not null"`
}
