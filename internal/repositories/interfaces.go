package repositories

import (
	"context"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
)

// Filter structs mirror the list-endpoint query parameters. Nil pointer
// means "no filter"; Search fans out to an entity-specific column set.
// CreatedAfter/CreatedBefore compare lexically against the stored ISO
// timestamp strings.

type UserFilters struct {
	UserType      *string
	Gender        *string
	IsActive      *bool
	IsVerified    *bool
	CreatedAfter  *string
	CreatedBefore *string
	Search        string

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type DriverFilters struct {
	Status                *string
	BackgroundCheckStatus *string
	IsActive              *bool
	IsOnline              *bool
	RatingFrom            *float64
	TotalRidesFrom        *int
	TotalRidesTo          *int
	TotalEarningsFrom     *float64
	TotalEarningsTo       *float64
	CreatedAfter          *string
	CreatedBefore         *string
	Search                string

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type VehicleFilters struct {
	DriverID           *uint
	VehicleType        *string
	VerificationStatus *string
	IsActive           *bool
	Make               string // partial match
	Model              string // partial match
	Color              string // partial match
	YearFrom           *int
	YearTo             *int
	CapacityFrom       *int
	CapacityTo         *int
	CreatedAfter       *string
	CreatedBefore      *string
	Search             string

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type SchoolFilters struct {
	SchoolType    *string
	BoardType     *string
	IsActive      *bool
	City          string // partial match
	State         string // partial match
	Pincode       *string
	CreatedAfter  *string
	CreatedBefore *string
	Search        string

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUUID(ctx context.Context, uuid string) (*models.User, error)
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, uuid string) error
	ExistsByEmail(ctx context.Context, email string, excludeUUID *string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string, excludeUUID *string) (bool, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByUserUUID(ctx context.Context, userUUID string) (*models.Driver, error)
	GetByID(ctx context.Context, id uint) (*models.Driver, error)
	List(ctx context.Context, filters DriverFilters) ([]*models.Driver, int64, error)
	Update(ctx context.Context, driver *models.Driver) error
	Delete(ctx context.Context, userUUID string) error
	ExistsForUser(ctx context.Context, userUUID string) (bool, error)
	ExistsByLicense(ctx context.Context, license string, excludeID *uint) (bool, error)
	ExistsByAadhar(ctx context.Context, aadhar string, excludeID *uint) (bool, error)
	ExistsByPAN(ctx context.Context, pan string, excludeID *uint) (bool, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	List(ctx context.Context, filters VehicleFilters) ([]*models.Vehicle, int64, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id uint) error
	ExistsByRegistration(ctx context.Context, registration string, excludeID *uint) (bool, error)
}

type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id uint) (*models.School, error)
	GetByCode(ctx context.Context, code string) (*models.School, error)
	List(ctx context.Context, filters SchoolFilters) ([]*models.School, int64, error)
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id uint) error
	ExistsByCode(ctx context.Context, code string, excludeID *uint) (bool, error)
}
