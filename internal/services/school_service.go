package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SchoolRide-Platform/transport-service/internal/events"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

type schoolService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewSchoolService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) SchoolService {
	return &schoolService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *schoolService) Create(ctx context.Context, req *models.SchoolCreateRequest) (*models.School, error) {
	s.sanitizeCreate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}
	if errs := validateWorkingDays(req.WorkingDays); errs != nil {
		return nil, errs
	}

	workingDays, err := json.Marshal(req.WorkingDays)
	if err != nil {
		return nil, fmt.Errorf("failed to encode working days: %w", err)
	}

	now := nowISO()
	school := &models.School{
		Code:          req.Code,
		Name:          req.Name,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Phone:         req.Phone,
		Email:         req.Email,
		PrincipalName: req.PrincipalName,
		SchoolType:    req.SchoolType,
		BoardType:     req.BoardType,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		WorkingDays:   workingDays,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if len(req.Holidays) > 0 {
		holidays, err := json.Marshal(req.Holidays)
		if err != nil {
			return nil, fmt.Errorf("failed to encode holidays: %w", err)
		}
		school.Holidays = holidays
	}

	err = s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		exists, err := txRepo.School().ExistsByCode(ctx, school.Code, nil)
		if err != nil {
			return fmt.Errorf("code uniqueness check failed: %w", err)
		}
		if exists {
			return NewConflictError("School code already exists")
		}

		return txRepo.School().Create(ctx, school)
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("School code already exists")
		}
		return nil, err
	}

	s.logger.Info("School created", "id", school.ID, "code", school.Code)
	publishEvent(ctx, s.publisher, s.logger, events.SchoolCreated, school)

	return school, nil
}

func (s *schoolService) GetByID(ctx context.Context, id uint) (*models.School, error) {
	school, err := s.repo.School().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return school, nil
}

func (s *schoolService) GetByCode(ctx context.Context, code string) (*models.School, error) {
	school, err := s.repo.School().GetByCode(ctx, validator.SanitizeUpper(code))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return school, nil
}

func (s *schoolService) List(ctx context.Context, filters repositories.SchoolFilters) ([]*models.School, int64, error) {
	return s.repo.School().List(ctx, filters)
}

func (s *schoolService) Update(ctx context.Context, id uint, req *models.SchoolUpdateRequest) (*models.School, error) {
	s.sanitizeUpdate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}
	if req.WorkingDays != nil {
		if errs := validateWorkingDays(req.WorkingDays); errs != nil {
			return nil, errs
		}
	}

	var school *models.School
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		var err error
		school, err = txRepo.School().GetByID(ctx, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrSchoolNotFound
			}
			return err
		}

		if err := applySchoolUpdate(school, req); err != nil {
			return err
		}
		school.UpdatedAt = nowISO()

		return txRepo.School().Update(ctx, school)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("School updated", "id", id)
	publishEvent(ctx, s.publisher, s.logger, events.SchoolUpdated, school)

	return school, nil
}

func applySchoolUpdate(school *models.School, req *models.SchoolUpdateRequest) error {
	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.Latitude != nil {
		school.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		school.Longitude = *req.Longitude
	}
	if req.Address != nil {
		school.Address = *req.Address
	}
	if req.City != nil {
		school.City = *req.City
	}
	if req.State != nil {
		school.State = *req.State
	}
	if req.Pincode != nil {
		school.Pincode = *req.Pincode
	}
	if req.Phone != nil {
		school.Phone = req.Phone
	}
	if req.Email != nil {
		school.Email = req.Email
	}
	if req.PrincipalName != nil {
		school.PrincipalName = req.PrincipalName
	}
	if req.SchoolType != nil {
		school.SchoolType = *req.SchoolType
	}
	if req.BoardType != nil {
		school.BoardType = req.BoardType
	}
	if req.StartTime != nil {
		school.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		school.EndTime = *req.EndTime
	}
	if req.WorkingDays != nil {
		workingDays, err := json.Marshal(req.WorkingDays)
		if err != nil {
			return fmt.Errorf("failed to encode working days: %w", err)
		}
		school.WorkingDays = workingDays
	}
	if req.Holidays != nil {
		holidays, err := json.Marshal(req.Holidays)
		if err != nil {
			return fmt.Errorf("failed to encode holidays: %w", err)
		}
		school.Holidays = holidays
	}
	if req.IsActive != nil {
		school.IsActive = *req.IsActive
	}
	return nil
}

// Delete removes the school and returns the affected row.
func (s *schoolService) Delete(ctx context.Context, id uint, deleteType string) (*models.School, error) {
	school, err := s.repo.School().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}

	switch deleteType {
	case DeleteTypeSoft:
		school.IsActive = false
		school.UpdatedAt = nowISO()
		if err := s.repo.School().Update(ctx, school); err != nil {
			return nil, err
		}
	case DeleteTypeHard:
		if err := s.repo.School().Delete(ctx, id); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrSchoolNotFound
			}
			return nil, err
		}
	default:
		return nil, validator.ValidationErrors{{
			Field:   "deleteType",
			Message: "Invalid delete type. Use 'soft' or 'hard'",
			Rule:    "oneof",
		}}
	}

	s.logger.Info("School deleted", "id", id, "delete_type", deleteType)
	publishEvent(ctx, s.publisher, s.logger, events.SchoolDeleted, map[string]interface{}{
		"id":         id,
		"code":       school.Code,
		"deleteType": deleteType,
	})

	return school, nil
}

// validateWorkingDays rejects day names outside the seven weekdays
func validateWorkingDays(days []string) validator.ValidationErrors {
	if models.ValidWorkingDays(days) {
		return nil
	}
	return validator.ValidationErrors{{
		Field:   "workingDays",
		Message: "workingDays must be a non-empty list of weekday names (monday through sunday)",
		Rule:    "working_days",
	}}
}

func (s *schoolService) sanitizeCreate(req *models.SchoolCreateRequest) {
	req.Code = validator.SanitizeUpper(req.Code)
	req.Name = validator.Sanitize(req.Name)
	req.Address = validator.Sanitize(req.Address)
	req.City = validator.Sanitize(req.City)
	req.State = validator.Sanitize(req.State)
	req.Pincode = validator.Sanitize(req.Pincode)
	req.Phone = validator.SanitizePtr(req.Phone, validator.Sanitize)
	req.Email = validator.SanitizePtr(req.Email, validator.SanitizeLower)
	req.PrincipalName = validator.SanitizePtr(req.PrincipalName, validator.Sanitize)
	for i, d := range req.WorkingDays {
		req.WorkingDays[i] = validator.SanitizeLower(d)
	}
	for i, h := range req.Holidays {
		req.Holidays[i] = validator.Sanitize(h)
	}
}

func (s *schoolService) sanitizeUpdate(req *models.SchoolUpdateRequest) {
	req.Name = validator.SanitizePtr(req.Name, validator.Sanitize)
	req.Address = validator.SanitizePtr(req.Address, validator.Sanitize)
	req.City = validator.SanitizePtr(req.City, validator.Sanitize)
	req.State = validator.SanitizePtr(req.State, validator.Sanitize)
	req.Pincode = validator.SanitizePtr(req.Pincode, validator.Sanitize)
	req.Phone = validator.SanitizePtr(req.Phone, validator.Sanitize)
	req.Email = validator.SanitizePtr(req.Email, validator.SanitizeLower)
	req.PrincipalName = validator.SanitizePtr(req.PrincipalName, validator.Sanitize)
	for i, d := range req.WorkingDays {
		req.WorkingDays[i] = validator.SanitizeLower(d)
	}
	for i, h := range req.Holidays {
		req.Holidays[i] = validator.Sanitize(h)
	}
}
