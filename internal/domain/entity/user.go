package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the centralized identity table. Emails are stored
// lowercased so the unique index enforces case-insensitive uniqueness.
type User struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email                 string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password              string     `gorm:"type:text;not null" json:"-"`
	FullName              string     `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber           string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Gender                string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodType             string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	Role                  Role       `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
