package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SchoolRide-Platform/transport-service/internal/events"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

type driverService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewDriverService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) DriverService {
	return &driverService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *driverService) Create(ctx context.Context, req *models.DriverCreateRequest) (*models.Driver, error) {
	s.sanitizeCreate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	now := nowISO()
	driver := &models.Driver{
		UserUUID:              req.UserUUID,
		LicenseNumber:         req.LicenseNumber,
		LicenseImage:          req.LicenseImage,
		AadharNumber:          req.AadharNumber,
		AadharImage:           req.AadharImage,
		PanNumber:             req.PanNumber,
		PanImage:              req.PanImage,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		BankAccountNumber:     req.BankAccountNumber,
		BankIFSC:              req.BankIFSC,
		UPIID:                 req.UPIID,
		BackgroundCheckStatus: models.BackgroundCheckPending,
		Status:                models.DriverStatusPending,
		IsActive:              true,
		IsOnline:              false,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		user, err := txRepo.User().GetByUUID(ctx, req.UserUUID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrUserNotFound
			}
			return err
		}

		exists, err := txRepo.Driver().ExistsForUser(ctx, req.UserUUID)
		if err != nil {
			return fmt.Errorf("driver existence check failed: %w", err)
		}
		if exists {
			return NewConflictError("Driver profile already exists for this user")
		}

		exists, err = txRepo.Driver().ExistsByLicense(ctx, req.LicenseNumber, nil)
		if err != nil {
			return fmt.Errorf("license uniqueness check failed: %w", err)
		}
		if exists {
			return NewConflictError("License number already exists")
		}

		exists, err = txRepo.Driver().ExistsByAadhar(ctx, req.AadharNumber, nil)
		if err != nil {
			return fmt.Errorf("aadhar uniqueness check failed: %w", err)
		}
		if exists {
			return NewConflictError("Aadhar number already exists")
		}

		if req.PanNumber != nil {
			exists, err = txRepo.Driver().ExistsByPAN(ctx, *req.PanNumber, nil)
			if err != nil {
				return fmt.Errorf("pan uniqueness check failed: %w", err)
			}
			if exists {
				return NewConflictError("PAN number already exists")
			}
		}

		if err := txRepo.Driver().Create(ctx, driver); err != nil {
			return err
		}

		// A user with a driver profile is a driver
		if user.UserType != models.UserTypeDriver {
			user.UserType = models.UserTypeDriver
			user.UpdatedAt = now
			updated := *user
			updated.Driver = nil
			if err := txRepo.User().Update(ctx, &updated); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Driver document number already exists")
		}
		return nil, err
	}

	s.logger.Info("Driver created", "user_uuid", driver.UserUUID)
	publishEvent(ctx, s.publisher, s.logger, events.DriverCreated, driver)

	return driver, nil
}

func (s *driverService) GetByUserUUID(ctx context.Context, userUUID string) (*models.Driver, error) {
	driver, err := s.repo.Driver().GetByUserUUID(ctx, userUUID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return driver, nil
}

func (s *driverService) List(ctx context.Context, filters repositories.DriverFilters) ([]*models.Driver, int64, error) {
	return s.repo.Driver().List(ctx, filters)
}

func (s *driverService) Update(ctx context.Context, userUUID string, req *models.DriverUpdateRequest) (*models.Driver, error) {
	s.sanitizeUpdate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}
	if errs := validateBankingFields(req); errs != nil {
		return nil, errs
	}

	var driver *models.Driver
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		var err error
		driver, err = txRepo.Driver().GetByUserUUID(ctx, userUUID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrDriverNotFound
			}
			return err
		}

		if req.LicenseNumber != nil && *req.LicenseNumber != driver.LicenseNumber {
			exists, err := txRepo.Driver().ExistsByLicense(ctx, *req.LicenseNumber, &driver.ID)
			if err != nil {
				return fmt.Errorf("license uniqueness check failed: %w", err)
			}
			if exists {
				return NewConflictError("License number already exists")
			}
			driver.LicenseNumber = *req.LicenseNumber
		}
		if req.AadharNumber != nil && *req.AadharNumber != driver.AadharNumber {
			exists, err := txRepo.Driver().ExistsByAadhar(ctx, *req.AadharNumber, &driver.ID)
			if err != nil {
				return fmt.Errorf("aadhar uniqueness check failed: %w", err)
			}
			if exists {
				return NewConflictError("Aadhar number already exists")
			}
			driver.AadharNumber = *req.AadharNumber
		}
		if req.PanNumber != nil {
			if driver.PanNumber == nil || *req.PanNumber != *driver.PanNumber {
				exists, err := txRepo.Driver().ExistsByPAN(ctx, *req.PanNumber, &driver.ID)
				if err != nil {
					return fmt.Errorf("pan uniqueness check failed: %w", err)
				}
				if exists {
					return NewConflictError("PAN number already exists")
				}
			}
			driver.PanNumber = req.PanNumber
		}

		s.applyUpdate(driver, req)
		driver.UpdatedAt = nowISO()

		// Detached copy so preloaded relations are not re-saved
		updated := *driver
		updated.User = nil
		updated.Vehicles = nil

		return txRepo.Driver().Update(ctx, &updated)
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Driver document number already exists")
		}
		return nil, err
	}

	s.logger.Info("Driver updated", "user_uuid", userUUID)
	publishEvent(ctx, s.publisher, s.logger, events.DriverUpdated, driver)

	return driver, nil
}

// applyUpdate copies provided fields onto the record and runs the status
// transition side effects.
func (s *driverService) applyUpdate(driver *models.Driver, req *models.DriverUpdateRequest) {
	now := nowISO()

	if req.LicenseImage != nil {
		driver.LicenseImage = req.LicenseImage
	}
	if req.AadharImage != nil {
		driver.AadharImage = req.AadharImage
	}
	if req.PanImage != nil {
		driver.PanImage = req.PanImage
	}
	if req.EmergencyContactName != nil {
		driver.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		driver.EmergencyContactPhone = *req.EmergencyContactPhone
	}

	if req.BankAccountNumber.Set {
		driver.BankAccountNumber = req.BankAccountNumber.Value
	}
	if req.BankIFSC.Set {
		driver.BankIFSC = req.BankIFSC.Value
	}
	if req.UPIID.Set {
		driver.UPIID = req.UPIID.Value
	}

	if req.BackgroundCheckStatus != nil {
		driver.BackgroundCheckStatus = *req.BackgroundCheckStatus
	}

	if req.Status != nil && *req.Status != driver.Status {
		driver.Status = *req.Status
		switch *req.Status {
		case models.DriverStatusApproved:
			driver.ApprovedAt = &now
			driver.RejectedAt = nil
			driver.RejectionReason = nil
		case models.DriverStatusRejected:
			driver.RejectedAt = &now
			driver.ApprovedAt = nil
		}
	}
	if req.RejectionReason.Set {
		driver.RejectionReason = req.RejectionReason.Value
	}

	if req.Rating != nil {
		driver.Rating = *req.Rating
	}
	if req.TotalRides != nil {
		driver.TotalRides = *req.TotalRides
	}
	if req.TotalEarnings != nil {
		driver.TotalEarnings = *req.TotalEarnings
	}
	if req.IsActive != nil {
		driver.IsActive = *req.IsActive
	}
	if req.IsOnline != nil && *req.IsOnline != driver.IsOnline {
		driver.IsOnline = *req.IsOnline
		driver.LastOnlineAt = &now
	}
}

// Delete removes the driver profile and returns the affected row.
func (s *driverService) Delete(ctx context.Context, userUUID string, deleteType string) (*models.Driver, error) {
	driver, err := s.repo.Driver().GetByUserUUID(ctx, userUUID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	switch deleteType {
	case DeleteTypeSoft:
		driver.IsActive = false
		driver.IsOnline = false
		driver.Status = models.DriverStatusInactive
		driver.UpdatedAt = nowISO()
		updated := *driver
		updated.User = nil
		updated.Vehicles = nil
		if err := s.repo.Driver().Update(ctx, &updated); err != nil {
			return nil, err
		}
	case DeleteTypeHard:
		if err := s.repo.Driver().Delete(ctx, userUUID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrDriverNotFound
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

	s.logger.Info("Driver deleted", "user_uuid", userUUID, "delete_type", deleteType)
	publishEvent(ctx, s.publisher, s.logger, events.DriverDeleted, map[string]interface{}{
		"userUuid":   userUUID,
		"deleteType": deleteType,
	})

	return driver, nil
}

// validateBankingFields format-checks the presence-wrapped fields that
// struct tags cannot reach. An explicit null always passes, it clears.
func validateBankingFields(req *models.DriverUpdateRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if req.BankAccountNumber.Set && req.BankAccountNumber.Value != nil {
		if !validator.IsValidBankAccount(*req.BankAccountNumber.Value) {
			errs = append(errs, validator.ValidationError{
				Field:   "bankAccountNumber",
				Message: "bankAccountNumber must be 9 to 18 digits",
				Rule:    "bank_account",
			})
		}
	}
	if req.BankIFSC.Set && req.BankIFSC.Value != nil {
		if !validator.IsValidIFSC(*req.BankIFSC.Value) {
			errs = append(errs, validator.ValidationError{
				Field:   "bankIfsc",
				Message: "bankIfsc must be a valid IFSC code",
				Rule:    "ifsc",
			})
		}
	}
	if req.UPIID.Set && req.UPIID.Value != nil {
		if !validator.IsValidUPI(*req.UPIID.Value) {
			errs = append(errs, validator.ValidationError{
				Field:   "upiId",
				Message: "upiId must be a valid UPI ID",
				Rule:    "upi",
			})
		}
	}
	if req.RejectionReason.Set && req.RejectionReason.Value != nil {
		if len(*req.RejectionReason.Value) > 500 {
			errs = append(errs, validator.ValidationError{
				Field:   "rejectionReason",
				Message: "rejectionReason must have at most 500 characters",
				Rule:    "max",
			})
		}
	}

	return errs
}

func (s *driverService) sanitizeCreate(req *models.DriverCreateRequest) {
	req.UserUUID = validator.SanitizeLower(req.UserUUID)
	req.LicenseNumber = validator.SanitizeUpper(req.LicenseNumber)
	req.AadharNumber = validator.Sanitize(req.AadharNumber)
	req.PanNumber = validator.SanitizePtr(req.PanNumber, validator.SanitizeUpper)
	req.EmergencyContactName = validator.Sanitize(req.EmergencyContactName)
	req.EmergencyContactPhone = validator.Sanitize(req.EmergencyContactPhone)
	req.BankAccountNumber = validator.SanitizePtr(req.BankAccountNumber, validator.Sanitize)
	req.BankIFSC = validator.SanitizePtr(req.BankIFSC, validator.SanitizeUpper)
	req.UPIID = validator.SanitizePtr(req.UPIID, validator.SanitizeLower)
}

func (s *driverService) sanitizeUpdate(req *models.DriverUpdateRequest) {
	req.LicenseNumber = validator.SanitizePtr(req.LicenseNumber, validator.SanitizeUpper)
	req.AadharNumber = validator.SanitizePtr(req.AadharNumber, validator.Sanitize)
	req.PanNumber = validator.SanitizePtr(req.PanNumber, validator.SanitizeUpper)
	req.EmergencyContactName = validator.SanitizePtr(req.EmergencyContactName, validator.Sanitize)
	req.EmergencyContactPhone = validator.SanitizePtr(req.EmergencyContactPhone, validator.Sanitize)

	if req.BankAccountNumber.Set {
		req.BankAccountNumber.Value = validator.SanitizePtr(req.BankAccountNumber.Value, validator.Sanitize)
	}
	if req.BankIFSC.Set {
		req.BankIFSC.Value = validator.SanitizePtr(req.BankIFSC.Value, validator.SanitizeUpper)
	}
	if req.UPIID.Set {
		req.UPIID.Value = validator.SanitizePtr(req.UPIID.Value, validator.SanitizeLower)
	}
	if req.RejectionReason.Set {
		req.RejectionReason.Value = validator.SanitizePtr(req.RejectionReason.Value, validator.Sanitize)
	}
}
