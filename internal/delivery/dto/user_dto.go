package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=8"`
	FullName              string `json:"full_name" validate:"required,min=2"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Gender                string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BloodType             string `json:"blood_type" validate:"omitempty"`
	Address               string `json:"address" validate:"omitempty"`
	DateOfBirth           string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty"`
	Role                  string `json:"role" validate:"omitempty,oneof=ADMIN DOCTOR PATIENT"`
}

type UpdateUserRequest struct {
	FullName              string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber           string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Gender                string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	BloodType             string `json:"blood_type" validate:"omitempty"`
	Address               string `json:"address" validate:"omitempty"`
	DateOfBirth           string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	EmergencyContactName  string `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"omitempty"`
	Role                  string `json:"role" validate:"omitempty,oneof=ADMIN DOCTOR PATIENT"`
}

// Response DTOs

type UserResponse struct {
	ID                    uuid.UUID `json:"id"`
	Email                 string    `json:"email"`
	FullName              string    `json:"full_name"`
	PhoneNumber           string    `json:"phone_number,omitempty"`
	Gender                string    `json:"gender,omitempty"`
	BloodType             string    `json:"blood_type,omitempty"`
	Address               string    `json:"address,omitempty"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	Role                  string    `json:"role"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
