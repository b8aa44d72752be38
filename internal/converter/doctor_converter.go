package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// DoctorToResponse composes the full aggregate view: identity snapshot,
// profile fields and the current schedule set.
func DoctorToResponse(profile *entity.DoctorProfile, schedules []entity.ScheduleEntry) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                profile.ID,
		User:              *UserToResponse(&profile.User),
		Specialty:         profile.Specialty,
		LicenseNumber:     profile.LicenseNumber,
		YearsOfExperience: profile.YearsOfExperience,
		Schedules:         SchedulesToResponses(schedules),
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// SchedulesToResponses converts schedule entries; a nil slice becomes an
// empty list so responses always carry a schedules array.
func SchedulesToResponses(entries []entity.ScheduleEntry) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.ScheduleResponse{
			ID:        entry.ID,
			DayOfWeek: entry.DayOfWeek,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			IsActive:  entry.IsActive,
		}
	}
	return responses
}
