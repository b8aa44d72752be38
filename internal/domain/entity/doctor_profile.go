package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorProfile is the staff profile owned by exactly one User. A profile
// never exists without its user; deletion removes schedules first, then the
// profile, then the user, inside one transaction.
type DoctorProfile struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialty         string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	LicenseNumber     string    `gorm:"column:license_number;type:varchar(50);uniqueIndex;not null" json:"license_number"`
	YearsOfExperience int       `gorm:"not null;default:0" json:"years_of_experience"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules []ScheduleEntry `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

func (p *DoctorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
