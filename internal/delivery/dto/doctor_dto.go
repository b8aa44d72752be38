package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email                 string            `json:"email" validate:"required,email"`
	Password              string            `json:"password" validate:"required,min=8"`
	FullName              string            `json:"full_name" validate:"required,min=2"`
	PhoneNumber           string            `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Gender                string            `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BloodType             string            `json:"blood_type" validate:"omitempty"`
	Address               string            `json:"address" validate:"omitempty"`
	DateOfBirth           string            `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	EmergencyContactName  string            `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string            `json:"emergency_contact_phone" validate:"omitempty"`
	Specialty             string            `json:"specialty" validate:"required"`
	LicenseNumber         string            `json:"license_number" validate:"required"`
	YearsOfExperience     int               `json:"years_of_experience" validate:"gte=0"`
	Schedules             []ScheduleRequest `json:"schedules" validate:"omitempty,dive"`
}

type UpdateDoctorRequest struct {
	Email                 string            `json:"email" validate:"omitempty,email"`
	Password              string            `json:"password" validate:"omitempty,min=8"`
	FullName              string            `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber           string            `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Gender                string            `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BloodType             string            `json:"blood_type" validate:"omitempty"`
	Address               string            `json:"address" validate:"omitempty"`
	DateOfBirth           string            `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	EmergencyContactName  string            `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string            `json:"emergency_contact_phone" validate:"omitempty"`
	Specialty             string            `json:"specialty" validate:"omitempty"`
	LicenseNumber         string            `json:"license_number" validate:"omitempty"`
	YearsOfExperience     *int              `json:"years_of_experience" validate:"omitempty,gte=0"`
	Schedules             []ScheduleRequest `json:"schedules" validate:"omitempty,dive"`
}

// Response DTOs

type DoctorResponse struct {
	ID                uuid.UUID          `json:"id"`
	User              UserResponse       `json:"user"`
	Specialty         string             `json:"specialty"`
	LicenseNumber     string             `json:"license_number"`
	YearsOfExperience int                `json:"years_of_experience"`
	Schedules         []ScheduleResponse `json:"schedules"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
