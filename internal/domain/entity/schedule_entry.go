package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Day-of-week values accepted for schedule entries.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// ScheduleEntry represents one weekly availability slot of a doctor.
// The full entry set of a profile is replaced on update, never patched.
type ScheduleEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek string    `gorm:"type:varchar(10);not null" json:"day_of_week"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"` // Format: HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`   // Format: HH:MM
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

func (s *ScheduleEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
