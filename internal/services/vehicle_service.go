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

type vehicleService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewVehicleService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) VehicleService {
	return &vehicleService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *vehicleService) Create(ctx context.Context, req *models.VehicleCreateRequest) (*models.Vehicle, error) {
	s.sanitizeCreate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}
	if errs := validateCapacity(req.VehicleType, req.Capacity); errs != nil {
		return nil, errs
	}

	now := nowISO()
	vehicle := &models.Vehicle{
		DriverID:            req.DriverID,
		VehicleType:         req.VehicleType,
		RegistrationNumber:  req.RegistrationNumber,
		Make:                req.Make,
		Model:               req.Model,
		Year:                req.Year,
		Color:               req.Color,
		Capacity:            req.Capacity,
		RCImage:             req.RCImage,
		RCExpiryDate:        req.RCExpiryDate,
		InsuranceImage:      req.InsuranceImage,
		InsuranceExpiryDate: req.InsuranceExpiryDate,
		PUCImage:            req.PUCImage,
		PUCExpiryDate:       req.PUCExpiryDate,
		PermitImage:         req.PermitImage,
		PermitExpiryDate:    req.PermitExpiryDate,
		IsActive:            true,
		VerificationStatus:  models.VerificationPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if len(req.Images) > 0 {
		images, err := json.Marshal(req.Images)
		if err != nil {
			return nil, fmt.Errorf("failed to encode images: %w", err)
		}
		vehicle.Images = images
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if _, err := txRepo.Driver().GetByID(ctx, req.DriverID); err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrDriverNotFound
			}
			return err
		}

		exists, err := txRepo.Vehicle().ExistsByRegistration(ctx, req.RegistrationNumber, nil)
		if err != nil {
			return fmt.Errorf("registration uniqueness check failed: %w", err)
		}
		if exists {
			return NewConflictError("Registration number already exists")
		}

		return txRepo.Vehicle().Create(ctx, vehicle)
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Registration number already exists")
		}
		if repositories.IsForeignKeyError(err) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	s.logger.Info("Vehicle created", "id", vehicle.ID, "registration", vehicle.RegistrationNumber)
	publishEvent(ctx, s.publisher, s.logger, events.VehicleCreated, vehicle)

	return vehicle, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	vehicle, err := s.repo.Vehicle().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context, filters repositories.VehicleFilters) ([]*models.Vehicle, int64, error) {
	return s.repo.Vehicle().List(ctx, filters)
}

func (s *vehicleService) Update(ctx context.Context, id uint, req *models.VehicleUpdateRequest) (*models.Vehicle, error) {
	s.sanitizeUpdate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	var vehicle *models.Vehicle
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		var err error
		vehicle, err = txRepo.Vehicle().GetByID(ctx, id)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrVehicleNotFound
			}
			return err
		}

		// Capacity bounds are rechecked against the effective type and
		// capacity after the merge
		effectiveType := vehicle.VehicleType
		if req.VehicleType != nil {
			effectiveType = *req.VehicleType
		}
		effectiveCapacity := vehicle.Capacity
		if req.Capacity != nil {
			effectiveCapacity = *req.Capacity
		}
		if errs := validateCapacity(effectiveType, effectiveCapacity); errs != nil {
			return errs
		}

		if req.RegistrationNumber != nil && *req.RegistrationNumber != vehicle.RegistrationNumber {
			exists, err := txRepo.Vehicle().ExistsByRegistration(ctx, *req.RegistrationNumber, &vehicle.ID)
			if err != nil {
				return fmt.Errorf("registration uniqueness check failed: %w", err)
			}
			if exists {
				return NewConflictError("Registration number already exists")
			}
			vehicle.RegistrationNumber = *req.RegistrationNumber
		}

		if err := s.applyUpdate(vehicle, req); err != nil {
			return err
		}
		vehicle.UpdatedAt = nowISO()

		updated := *vehicle
		updated.Driver = nil

		return txRepo.Vehicle().Update(ctx, &updated)
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Registration number already exists")
		}
		return nil, err
	}

	s.logger.Info("Vehicle updated", "id", id)
	publishEvent(ctx, s.publisher, s.logger, events.VehicleUpdated, vehicle)

	return vehicle, nil
}

func (s *vehicleService) applyUpdate(vehicle *models.Vehicle, req *models.VehicleUpdateRequest) error {
	if req.VehicleType != nil {
		vehicle.VehicleType = *req.VehicleType
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Capacity != nil {
		vehicle.Capacity = *req.Capacity
	}
	if req.RCImage != nil {
		vehicle.RCImage = req.RCImage
	}
	if req.RCExpiryDate != nil {
		vehicle.RCExpiryDate = req.RCExpiryDate
	}
	if req.InsuranceImage != nil {
		vehicle.InsuranceImage = req.InsuranceImage
	}
	if req.InsuranceExpiryDate != nil {
		vehicle.InsuranceExpiryDate = req.InsuranceExpiryDate
	}
	if req.PUCImage != nil {
		vehicle.PUCImage = req.PUCImage
	}
	if req.PUCExpiryDate != nil {
		vehicle.PUCExpiryDate = req.PUCExpiryDate
	}
	if req.PermitImage != nil {
		vehicle.PermitImage = req.PermitImage
	}
	if req.PermitExpiryDate != nil {
		vehicle.PermitExpiryDate = req.PermitExpiryDate
	}
	if req.Images != nil {
		images, err := json.Marshal(req.Images)
		if err != nil {
			return fmt.Errorf("failed to encode images: %w", err)
		}
		vehicle.Images = images
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}
	if req.VerificationStatus != nil {
		vehicle.VerificationStatus = *req.VerificationStatus
	}
	return nil
}

// Delete removes the vehicle and returns the affected row.
func (s *vehicleService) Delete(ctx context.Context, id uint, deleteType string) (*models.Vehicle, error) {
	vehicle, err := s.repo.Vehicle().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	switch deleteType {
	case DeleteTypeSoft:
		vehicle.IsActive = false
		vehicle.UpdatedAt = nowISO()
		updated := *vehicle
		updated.Driver = nil
		if err := s.repo.Vehicle().Update(ctx, &updated); err != nil {
			return nil, err
		}
	case DeleteTypeHard:
		if err := s.repo.Vehicle().Delete(ctx, id); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrVehicleNotFound
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

	s.logger.Info("Vehicle deleted", "id", id, "delete_type", deleteType)
	publishEvent(ctx, s.publisher, s.logger, events.VehicleDeleted, map[string]interface{}{
		"id":         id,
		"deleteType": deleteType,
	})

	return vehicle, nil
}

// validateCapacity enforces the per-type seating bounds
func validateCapacity(vehicleType models.VehicleType, capacity int) validator.ValidationErrors {
	if !models.ValidVehicleType(vehicleType) {
		return nil // the oneof tag already reported this
	}
	if models.CapacityInRange(vehicleType, capacity) {
		return nil
	}
	r, _ := models.CapacityRangeFor(vehicleType)
	return validator.ValidationErrors{{
		Field:   "capacity",
		Message: fmt.Sprintf("capacity for a %s must be between %d and %d", vehicleType, r.Min, r.Max),
		Rule:    "capacity_range",
	}}
}

func (s *vehicleService) sanitizeCreate(req *models.VehicleCreateRequest) {
	req.RegistrationNumber = validator.SanitizeUpper(req.RegistrationNumber)
	req.Make = validator.Sanitize(req.Make)
	req.Model = validator.Sanitize(req.Model)
	req.Color = validator.Sanitize(req.Color)
	for i, img := range req.Images {
		req.Images[i] = validator.Sanitize(img)
	}
}

func (s *vehicleService) sanitizeUpdate(req *models.VehicleUpdateRequest) {
	req.RegistrationNumber = validator.SanitizePtr(req.RegistrationNumber, validator.SanitizeUpper)
	req.Make = validator.SanitizePtr(req.Make, validator.Sanitize)
	req.Model = validator.SanitizePtr(req.Model, validator.Sanitize)
	req.Color = validator.SanitizePtr(req.Color, validator.Sanitize)
	for i, img := range req.Images {
		req.Images[i] = validator.Sanitize(img)
	}
}
