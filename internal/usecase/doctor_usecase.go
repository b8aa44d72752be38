package usecase

import (
	"context"
	"errors"
	"time"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
	ErrInvalidScheduleTime  = errors.New("schedule start time must be before end time")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorProfileRepository
	scheduleRepo repository.ScheduleEntryRepository
	listCache    service.DoctorListCache
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	scheduleRepo repository.ScheduleEntryRepository,
	listCache service.DoctorListCache,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		scheduleRepo: scheduleRepo,
		listCache:    listCache,
	}
}

// CreateDoctor creates the whole aggregate in one transaction: identity,
// profile, then schedule entries. A failure at any step leaves no rows behind.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := requireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateSchedules(req.Schedules); err != nil {
		return nil, err
	}
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:                 normalizeEmail(req.Email),
		Password:              string(hashedPassword),
		FullName:              req.FullName,
		PhoneNumber:           req.PhoneNumber,
		Gender:                req.Gender,
		BloodType:             req.BloodType,
		Address:               req.Address,
		DateOfBirth:           dob,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Role:                  entity.RoleDoctor,
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:            user.ID,
		Specialty:         req.Specialty,
		LicenseNumber:     req.LicenseNumber,
		YearsOfExperience: req.YearsOfExperience,
	}
	if err := u.doctorRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	entries := buildScheduleEntries(profile.ID, req.Schedules)
	if err := u.scheduleRepo.CreateBatch(tx, entries); err != nil {
		u.log.Warnf("Failed to create schedule entries: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateListCache(ctx)

	profile.User = *user
	return converter.DoctorToResponse(profile, entries), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(db, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find schedule entries: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(profile, schedules), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	if u.listCache != nil {
		if doctors, ok := u.listCache.Get(ctx); ok {
			return &dto.DoctorListResponse{Doctors: doctors, Total: len(doctors)}, nil
		}
	}

	db := u.db.WithContext(ctx)

	profiles, err := u.doctorRepo.FindAll(db)
	if err != nil {
		u.log.Warnf("Failed to find doctor profiles: %+v", err)
		return nil, err
	}

	doctors := make([]dto.DoctorResponse, 0, len(profiles))
	for i := range profiles {
		schedules, err := u.scheduleRepo.FindByDoctorID(db, profiles[i].ID)
		if err != nil {
			u.log.Warnf("Failed to find schedule entries: %+v", err)
			return nil, err
		}
		doctors = append(doctors, *converter.DoctorToResponse(&profiles[i], schedules))
	}

	if u.listCache != nil {
		u.listCache.Set(ctx, doctors)
	}

	return &dto.DoctorListResponse{Doctors: doctors, Total: len(doctors)}, nil
}

// UpdateDoctor mutates identity and profile fields and replaces the schedule
// set wholesale when one is supplied. Everything happens in one transaction so
// old entries never survive next to new ones.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := requireRole(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Schedules != nil {
		if err := validateSchedules(req.Schedules); err != nil {
			return nil, err
		}
	}
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	user := &profile.User
	if req.Email != "" {
		user.Email = normalizeEmail(req.Email)
	}
	if req.Password != "" {
		// Never overwrite the stored hash with a hash of the empty string.
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.BloodType != "" {
		user.BloodType = req.BloodType
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if dob != nil {
		user.DateOfBirth = dob
	}
	if req.EmergencyContactName != "" {
		user.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		user.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update doctor user: %+v", err)
		return nil, err
	}

	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if req.LicenseNumber != "" {
		profile.LicenseNumber = req.LicenseNumber
	}
	if req.YearsOfExperience != nil {
		profile.YearsOfExperience = *req.YearsOfExperience
	}
	if err := u.doctorRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	var entries []entity.ScheduleEntry
	if req.Schedules != nil {
		if _, err := u.scheduleRepo.DeleteByDoctorID(tx, profile.ID); err != nil {
			u.log.Warnf("Failed to delete schedule entries: %+v", err)
			return nil, err
		}
		entries = buildScheduleEntries(profile.ID, req.Schedules)
		if err := u.scheduleRepo.CreateBatch(tx, entries); err != nil {
			u.log.Warnf("Failed to create schedule entries: %+v", err)
			return nil, err
		}
	} else {
		entries, err = u.scheduleRepo.FindByDoctorID(tx, profile.ID)
		if err != nil {
			u.log.Warnf("Failed to find schedule entries: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateListCache(ctx)

	return converter.DoctorToResponse(profile, entries), nil
}

// DeleteDoctor removes the aggregate in dependency order: schedule entries,
// then the profile, then the owning identity, all in one transaction.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error {
	if err := requireRole(ctx, entity.RoleAdmin); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if _, err := u.scheduleRepo.DeleteByDoctorID(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to delete schedule entries: %+v", err)
		return err
	}
	if _, err := u.doctorRepo.Delete(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to delete doctor profile: %+v", err)
		return err
	}
	if _, err := u.userRepo.Delete(tx, profile.UserID); err != nil {
		u.log.Warnf("Failed to delete doctor user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.invalidateListCache(ctx)

	return nil
}

func (u *doctorUsecase) invalidateListCache(ctx context.Context) {
	if u.listCache != nil {
		u.listCache.Invalidate(ctx)
	}
}

// requireRole gates mutating operations on the actor role injected by the
// auth middleware. It fails before any write happens.
func requireRole(ctx context.Context, allowed ...entity.Role) error {
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok || !entity.HasAnyRole(role, allowed...) {
		return ErrForbidden
	}
	return nil
}

func validateSchedules(schedules []dto.ScheduleRequest) error {
	for _, s := range schedules {
		start, err := time.Parse("15:04", s.StartTime)
		if err != nil {
			return ErrInvalidScheduleTime
		}
		end, err := time.Parse("15:04", s.EndTime)
		if err != nil {
			return ErrInvalidScheduleTime
		}
		if !start.Before(end) {
			return ErrInvalidScheduleTime
		}
	}
	return nil
}

func buildScheduleEntries(doctorID uuid.UUID, schedules []dto.ScheduleRequest) []entity.ScheduleEntry {
	entries := make([]entity.ScheduleEntry, len(schedules))
	for i, s := range schedules {
		active := true
		if s.IsActive != nil {
			active = *s.IsActive
		}
		entries[i] = entity.ScheduleEntry{
			DoctorID:  doctorID,
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsActive:  active,
		}
	}
	return entries
}
