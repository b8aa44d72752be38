package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Allergy is a patient medical record. Storage only, no behavior beyond the
// schema; kept so patient data migrated from the previous system has a home.
type Allergy struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	Severity        string     `gorm:"type:varchar(20);not null" json:"severity"`
	Reaction        string     `gorm:"type:varchar(255)" json:"reaction,omitempty"`
	DateOfDiagnosis *time.Time `gorm:"type:date" json:"date_of_diagnosis,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Allergy) TableName() string {
	return "allergies"
}

func (a *Allergy) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
