package services

import (
	"context"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
)

// Delete modes accepted on the delete endpoints. Soft flips the active flag,
// hard removes the row (and its dependents via FK cascade).
const (
	DeleteTypeSoft = "soft"
	DeleteTypeHard = "hard"
)

type UserService interface {
	Create(ctx context.Context, req *models.UserCreateRequest) (*models.User, error)
	GetByUUID(ctx context.Context, uuid string) (*models.User, error)
	List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error)
	Update(ctx context.Context, uuid string, req *models.UserUpdateRequest) (*models.User, error)
	Delete(ctx context.Context, uuid string, deleteType string) (*models.User, error)
}

type DriverService interface {
	Create(ctx context.Context, req *models.DriverCreateRequest) (*models.Driver, error)
	GetByUserUUID(ctx context.Context, userUUID string) (*models.Driver, error)
	List(ctx context.Context, filters repositories.DriverFilters) ([]*models.Driver, int64, error)
	Update(ctx context.Context, userUUID string, req *models.DriverUpdateRequest) (*models.Driver, error)
	Delete(ctx context.Context, userUUID string, deleteType string) (*models.Driver, error)
}

type VehicleService interface {
	Create(ctx context.Context, req *models.VehicleCreateRequest) (*models.Vehicle, error)
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	List(ctx context.Context, filters repositories.VehicleFilters) ([]*models.Vehicle, int64, error)
	Update(ctx context.Context, id uint, req *models.VehicleUpdateRequest) (*models.Vehicle, error)
	Delete(ctx context.Context, id uint, deleteType string) (*models.Vehicle, error)
}

type SchoolService interface {
	Create(ctx context.Context, req *models.SchoolCreateRequest) (*models.School, error)
	GetByID(ctx context.Context, id uint) (*models.School, error)
	GetByCode(ctx context.Context, code string) (*models.School, error)
	List(ctx context.Context, filters repositories.SchoolFilters) ([]*models.School, int64, error)
	Update(ctx context.Context, id uint, req *models.SchoolUpdateRequest) (*models.School, error)
	Delete(ctx context.Context, id uint, deleteType string) (*models.School, error)
}

// ServiceManager wires all services over shared dependencies
type ServiceManager interface {
	User() UserService
	Driver() DriverService
	Vehicle() VehicleService
	School() SchoolService

	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
