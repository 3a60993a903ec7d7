package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanySize buckets the size of the founder's organization. Questions in
// the catalog declare which buckets they apply to.
type CompanySize string

const (
	CompanySize15to35  CompanySize = "15-35"
	CompanySize36to60  CompanySize = "36-60"
	CompanySize61to95  CompanySize = "61-95"
	CompanySize96to200 CompanySize = "96-200"
)

func (s CompanySize) Valid() bool {
	switch s {
	case CompanySize15to35, CompanySize36to60, CompanySize61to95, CompanySize96to200:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName     string      `gorm:"type:varchar(255);not null"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string      `gorm:"type:text;not null"`
	CompanySize  CompanySize `gorm:"type:varchar(10);not null"`

	LastLoginAt     *time.Time
	IsActive        bool `gorm:"default:true"`
	ConsentAccepted bool `gorm:"default:false"`

	CreatedAt time.Time

	Sessions []Session
	Reports  []Report
}
