package dto

// Request DTOs

type RegisterRequest struct {
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
}

type AuthenticateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user,omitempty"`
}
