package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SchoolRide-Platform/transport-service/internal/events"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

func newUserService(t *testing.T) (UserService, *serviceFixture) {
	t.Helper()
	fx, logger, v := newServiceFixture()
	return NewUserService(fx.repo, logger, v, fx.publisher), fx
}

func TestUserCreateDefaults(t *testing.T) {
	svc, fx := newUserService(t)

	user, err := svc.Create(context.Background(), &models.UserCreateRequest{
		Email:       "  Rahul.Sharma@Example.COM ",
		PhoneNumber: "9876543210",
		FirstName:   "Rahul",
		LastName:    "Sharma",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if user.UUID == "" {
		t.Error("UUID should be assigned")
	}
	if user.Email != "rahul.sharma@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.UserType != models.UserTypeCustomer {
		t.Errorf("UserType = %q, want customer", user.UserType)
	}
	if !user.IsActive {
		t.Error("new users should be active")
	}
	if user.IsVerified {
		t.Error("new users should not be verified")
	}
	if user.CreatedAt == "" || user.CreatedAt != user.UpdatedAt {
		t.Errorf("timestamps wrong: createdAt=%q updatedAt=%q", user.CreatedAt, user.UpdatedAt)
	}

	published := fx.publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.UserCreated {
		t.Errorf("expected one user.created event, got %+v", published)
	}
}

func TestUserCreateOverrides(t *testing.T) {
	svc, _ := newUserService(t)

	userType := models.UserTypeParent
	user, err := svc.Create(context.Background(), &models.UserCreateRequest{
		Email:       "parent@example.com",
		PhoneNumber: "9876543211",
		FirstName:   "Asha",
		LastName:    "Verma",
		UserType:    &userType,
		IsVerified:  boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.UserType != models.UserTypeParent {
		t.Errorf("UserType = %q, want parent", user.UserType)
	}
	if !user.IsVerified {
		t.Error("IsVerified override should apply")
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Create(context.Background(), &models.UserCreateRequest{
		Email:       "not-an-email",
		PhoneNumber: "12345",
		FirstName:   "A",
		LastName:    "B",
	})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) == 0 {
		t.Fatal("expected at least one validation error")
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "taken@example.com", "9876543210")

	_, err := svc.Create(context.Background(), &models.UserCreateRequest{
		Email:       "taken@example.com",
		PhoneNumber: "9123456789",
		FirstName:   "Dup",
		LastName:    "Licate",
	})
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "Email already exists" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUserCreateDuplicatePhone(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "someone@example.com", "9876543210")

	_, err := svc.Create(context.Background(), &models.UserCreateRequest{
		Email:       "other@example.com",
		PhoneNumber: "9876543210",
		FirstName:   "Dup",
		LastName:    "Licate",
	})
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "Phone number already exists" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestUserGetByUUIDNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetByUUID(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUpdate(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "old@example.com", "9876543210")

	user, err := svc.Update(context.Background(), "u-1", &models.UserUpdateRequest{
		Email:     strPtr("new@example.com"),
		FirstName: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if user.Email != "new@example.com" || user.FirstName != "Renamed" {
		t.Errorf("update not applied: %+v", user)
	}
	if user.LastName != "User" {
		t.Error("untouched fields should be preserved")
	}

	stored, _ := svc.GetByUUID(context.Background(), "u-1")
	if stored.Email != "new@example.com" {
		t.Error("update should persist")
	}
}

func TestUserUpdateNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Update(context.Background(), "missing", &models.UserUpdateRequest{
		FirstName: strPtr("X"),
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUpdateEmailConflict(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "first@example.com", "9876543210")
	seedUser(fx.repo, "u-2", "second@example.com", "9123456789")

	_, err := svc.Update(context.Background(), "u-2", &models.UserUpdateRequest{
		Email: strPtr("first@example.com"),
	})
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUserUpdateSameEmailNoConflict(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "same@example.com", "9876543210")

	if _, err := svc.Update(context.Background(), "u-1", &models.UserUpdateRequest{
		Email: strPtr("same@example.com"),
	}); err != nil {
		t.Fatalf("re-submitting the current email should not conflict: %v", err)
	}
}

func TestUserSoftDelete(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "soft@example.com", "9876543210")

	deleted, err := svc.Delete(context.Background(), "u-1", DeleteTypeSoft)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted == nil {
		t.Fatal("Delete should return the deactivated row")
	}
	if deleted.IsActive {
		t.Error("returned row should be deactivated")
	}

	user, err := svc.GetByUUID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("soft-deleted user should still exist: %v", err)
	}
	if user.IsActive {
		t.Error("soft delete should deactivate the user")
	}
}

func TestUserHardDelete(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "hard@example.com", "9876543210")

	deleted, err := svc.Delete(context.Background(), "u-1", DeleteTypeHard)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted == nil || deleted.Email != "hard@example.com" {
		t.Errorf("Delete should return the removed row, got %+v", deleted)
	}
	if _, err := svc.GetByUUID(context.Background(), "u-1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("hard-deleted user should be gone, got %v", err)
	}
}

func TestUserDeleteInvalidType(t *testing.T) {
	svc, fx := newUserService(t)
	seedUser(fx.repo, "u-1", "user@example.com", "9876543210")

	_, err := svc.Delete(context.Background(), "u-1", "purge")
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Field != "deleteType" {
		t.Errorf("field = %q, want deleteType", verrs[0].Field)
	}
}

func TestUserDeleteNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Delete(context.Background(), "missing", DeleteTypeSoft); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
