package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleEntryRepository interface {
	CreateBatch(db *gorm.DB, entries []entity.ScheduleEntry) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleEntry, error)
	DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
