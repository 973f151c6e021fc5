package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SchoolRide-Platform/transport-service/internal/events"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *userService) Create(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	s.sanitizeCreate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	now := nowISO()
	user := &models.User{
		UUID:         uuid.NewString(),
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: req.ProfileImage,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		UserType:     models.UserTypeCustomer,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.UserType != nil {
		user.UserType = *req.UserType
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		exists, err := txRepo.User().ExistsByEmail(ctx, user.Email, nil)
		if err != nil {
			return fmt.Errorf("email uniqueness check failed: %w", err)
		}
		if exists {
			return NewConflictError("Email already exists")
		}

		exists, err = txRepo.User().ExistsByPhone(ctx, user.PhoneNumber, nil)
		if err != nil {
			return fmt.Errorf("phone uniqueness check failed: %w", err)
		}
		if exists {
			return NewConflictError("Phone number already exists")
		}

		return txRepo.User().Create(ctx, user)
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Email or phone number already exists")
		}
		return nil, err
	}

	s.logger.Info("User created", "uuid", user.UUID, "user_type", user.UserType)
	publishEvent(ctx, s.publisher, s.logger, events.UserCreated, user)

	return user, nil
}

func (s *userService) GetByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	user, err := s.repo.User().GetByUUID(ctx, userUUID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	return s.repo.User().List(ctx, filters)
}

func (s *userService) Update(ctx context.Context, userUUID string, req *models.UserUpdateRequest) (*models.User, error) {
	s.sanitizeUpdate(req)

	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	var user *models.User
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		var err error
		user, err = txRepo.User().GetByUUID(ctx, userUUID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return ErrUserNotFound
			}
			return err
		}

		if req.Email != nil && *req.Email != user.Email {
			exists, err := txRepo.User().ExistsByEmail(ctx, *req.Email, &userUUID)
			if err != nil {
				return fmt.Errorf("email uniqueness check failed: %w", err)
			}
			if exists {
				return NewConflictError("Email already exists")
			}
			user.Email = *req.Email
		}
		if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
			exists, err := txRepo.User().ExistsByPhone(ctx, *req.PhoneNumber, &userUUID)
			if err != nil {
				return fmt.Errorf("phone uniqueness check failed: %w", err)
			}
			if exists {
				return NewConflictError("Phone number already exists")
			}
			user.PhoneNumber = *req.PhoneNumber
		}

		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.ProfileImage != nil {
			user.ProfileImage = req.ProfileImage
		}
		if req.DateOfBirth != nil {
			user.DateOfBirth = req.DateOfBirth
		}
		if req.Gender != nil {
			user.Gender = req.Gender
		}
		if req.UserType != nil {
			user.UserType = *req.UserType
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if req.IsVerified != nil {
			user.IsVerified = *req.IsVerified
		}

		user.UpdatedAt = nowISO()
		// Detached copy so the preloaded driver row is not re-saved
		updated := *user
		updated.Driver = nil

		return txRepo.User().Update(ctx, &updated)
	})
	if err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, NewConflictError("Email or phone number already exists")
		}
		return nil, err
	}

	s.logger.Info("User updated", "uuid", userUUID)
	publishEvent(ctx, s.publisher, s.logger, events.UserUpdated, user)

	return user, nil
}

// Delete removes the user and returns the affected row: the deactivated
// record for soft deletes, the last-seen record for hard ones.
func (s *userService) Delete(ctx context.Context, userUUID string, deleteType string) (*models.User, error) {
	user, err := s.repo.User().GetByUUID(ctx, userUUID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	switch deleteType {
	case DeleteTypeSoft:
		user.IsActive = false
		user.UpdatedAt = nowISO()
		updated := *user
		updated.Driver = nil
		if err := s.repo.User().Update(ctx, &updated); err != nil {
			return nil, err
		}
	case DeleteTypeHard:
		if err := s.repo.User().Delete(ctx, userUUID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, ErrUserNotFound
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

	s.logger.Info("User deleted", "uuid", userUUID, "delete_type", deleteType)
	publishEvent(ctx, s.publisher, s.logger, events.UserDeleted, map[string]interface{}{
		"uuid":       userUUID,
		"deleteType": deleteType,
	})

	return user, nil
}

func (s *userService) sanitizeCreate(req *models.UserCreateRequest) {
	req.Email = validator.SanitizeLower(req.Email)
	req.PhoneNumber = validator.Sanitize(req.PhoneNumber)
	req.FirstName = validator.Sanitize(req.FirstName)
	req.LastName = validator.Sanitize(req.LastName)
	req.ProfileImage = validator.SanitizePtr(req.ProfileImage, validator.Sanitize)
	req.DateOfBirth = validator.SanitizePtr(req.DateOfBirth, validator.Sanitize)
	req.Gender = validator.SanitizePtr(req.Gender, validator.SanitizeLower)
}

func (s *userService) sanitizeUpdate(req *models.UserUpdateRequest) {
	req.Email = validator.SanitizePtr(req.Email, validator.SanitizeLower)
	req.PhoneNumber = validator.SanitizePtr(req.PhoneNumber, validator.Sanitize)
	req.FirstName = validator.SanitizePtr(req.FirstName, validator.Sanitize)
	req.LastName = validator.SanitizePtr(req.LastName, validator.Sanitize)
	req.ProfileImage = validator.SanitizePtr(req.ProfileImage, validator.Sanitize)
	req.DateOfBirth = validator.SanitizePtr(req.DateOfBirth, validator.Sanitize)
	req.Gender = validator.SanitizePtr(req.Gender, validator.SanitizeLower)
}
