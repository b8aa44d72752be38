package repository

import (
	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleEntryRepository struct{}

func NewScheduleEntryRepository() domainRepo.ScheduleEntryRepository {
	return &scheduleEntryRepository{}
}

func (r *scheduleEntryRepository) CreateBatch(db *gorm.DB, entries []entity.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return db.Omit("Doctor").Create(&entries).Error
}

func (r *scheduleEntryRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleEntry, error) {
	var entries []entity.ScheduleEntry
	err := db.Where("doctor_id = ?", doctorID).Order("day_of_week ASC, start_time ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleEntryRepository) DeleteByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	result := db.Where("doctor_id = ?", doctorID).Delete(&entity.ScheduleEntry{})
	return result.RowsAffected, result.Error
}
