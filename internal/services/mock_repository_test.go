package services

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/SchoolRide-Platform/transport-service/internal/events"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

// mockRepository is an in-memory Repository for service tests. Missing rows
// surface as gorm.ErrRecordNotFound so the services' not-found mapping works
// the same as against the real store.
type mockRepository struct {
	users    map[string]*models.User   // keyed by uuid
	drivers  map[string]*models.Driver // keyed by user uuid
	vehicles map[uint]*models.Vehicle
	schools  map[uint]*models.School

	nextUserID    uint
	nextDriverID  uint
	nextVehicleID uint
	nextSchoolID  uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:    make(map[string]*models.User),
		drivers:  make(map[string]*models.Driver),
		vehicles: make(map[uint]*models.Vehicle),
		schools:  make(map[uint]*models.School),
	}
}

func (m *mockRepository) User() repositories.UserRepository       { return &mockUserRepo{m} }
func (m *mockRepository) Driver() repositories.DriverRepository   { return &mockDriverRepo{m} }
func (m *mockRepository) Vehicle() repositories.VehicleRepository { return &mockVehicleRepo{m} }
func (m *mockRepository) School() repositories.SchoolRepository   { return &mockSchoolRepo{m} }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== users =====

type mockUserRepo struct{ m *mockRepository }

func (r *mockUserRepo) Create(_ context.Context, user *models.User) error {
	r.m.nextUserID++
	user.ID = r.m.nextUserID
	stored := *user
	r.m.users[user.UUID] = &stored
	return nil
}

func (r *mockUserRepo) GetByUUID(_ context.Context, uuid string) (*models.User, error) {
	user, ok := r.m.users[uuid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *user
	return &out, nil
}

func (r *mockUserRepo) List(_ context.Context, _ repositories.UserFilters) ([]*models.User, int64, error) {
	out := make([]*models.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *mockUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.m.users[user.UUID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	r.m.users[user.UUID] = &stored
	return nil
}

func (r *mockUserRepo) Delete(_ context.Context, uuid string) error {
	if _, ok := r.m.users[uuid]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.m.users, uuid)
	delete(r.m.drivers, uuid)
	return nil
}

func (r *mockUserRepo) ExistsByEmail(_ context.Context, email string, excludeUUID *string) (bool, error) {
	for _, u := range r.m.users {
		if excludeUUID != nil && u.UUID == *excludeUUID {
			continue
		}
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockUserRepo) ExistsByPhone(_ context.Context, phone string, excludeUUID *string) (bool, error) {
	for _, u := range r.m.users {
		if excludeUUID != nil && u.UUID == *excludeUUID {
			continue
		}
		if u.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// ===== drivers =====

type mockDriverRepo struct{ m *mockRepository }

func (r *mockDriverRepo) Create(_ context.Context, driver *models.Driver) error {
	r.m.nextDriverID++
	driver.ID = r.m.nextDriverID
	stored := *driver
	r.m.drivers[driver.UserUUID] = &stored
	return nil
}

func (r *mockDriverRepo) GetByUserUUID(_ context.Context, userUUID string) (*models.Driver, error) {
	driver, ok := r.m.drivers[userUUID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *driver
	return &out, nil
}

func (r *mockDriverRepo) GetByID(_ context.Context, id uint) (*models.Driver, error) {
	for _, d := range r.m.drivers {
		if d.ID == id {
			out := *d
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockDriverRepo) List(_ context.Context, _ repositories.DriverFilters) ([]*models.Driver, int64, error) {
	out := make([]*models.Driver, 0, len(r.m.drivers))
	for _, d := range r.m.drivers {
		copied := *d
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *mockDriverRepo) Update(_ context.Context, driver *models.Driver) error {
	if _, ok := r.m.drivers[driver.UserUUID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *driver
	r.m.drivers[driver.UserUUID] = &stored
	return nil
}

func (r *mockDriverRepo) Delete(_ context.Context, userUUID string) error {
	if _, ok := r.m.drivers[userUUID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.m.drivers, userUUID)
	return nil
}

func (r *mockDriverRepo) ExistsForUser(_ context.Context, userUUID string) (bool, error) {
	_, ok := r.m.drivers[userUUID]
	return ok, nil
}

func (r *mockDriverRepo) ExistsByLicense(_ context.Context, license string, excludeID *uint) (bool, error) {
	for _, d := range r.m.drivers {
		if excludeID != nil && d.ID == *excludeID {
			continue
		}
		if d.LicenseNumber == license {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockDriverRepo) ExistsByAadhar(_ context.Context, aadhar string, excludeID *uint) (bool, error) {
	for _, d := range r.m.drivers {
		if excludeID != nil && d.ID == *excludeID {
			continue
		}
		if d.AadharNumber == aadhar {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockDriverRepo) ExistsByPAN(_ context.Context, pan string, excludeID *uint) (bool, error) {
	for _, d := range r.m.drivers {
		if excludeID != nil && d.ID == *excludeID {
			continue
		}
		if d.PanNumber != nil && *d.PanNumber == pan {
			return true, nil
		}
	}
	return false, nil
}

// ===== vehicles =====

type mockVehicleRepo struct{ m *mockRepository }

func (r *mockVehicleRepo) Create(_ context.Context, vehicle *models.Vehicle) error {
	r.m.nextVehicleID++
	vehicle.ID = r.m.nextVehicleID
	stored := *vehicle
	r.m.vehicles[vehicle.ID] = &stored
	return nil
}

func (r *mockVehicleRepo) GetByID(_ context.Context, id uint) (*models.Vehicle, error) {
	vehicle, ok := r.m.vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *vehicle
	return &out, nil
}

func (r *mockVehicleRepo) List(_ context.Context, _ repositories.VehicleFilters) ([]*models.Vehicle, int64, error) {
	out := make([]*models.Vehicle, 0, len(r.m.vehicles))
	for _, v := range r.m.vehicles {
		copied := *v
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *mockVehicleRepo) Update(_ context.Context, vehicle *models.Vehicle) error {
	if _, ok := r.m.vehicles[vehicle.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *vehicle
	r.m.vehicles[vehicle.ID] = &stored
	return nil
}

func (r *mockVehicleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.vehicles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.m.vehicles, id)
	return nil
}

func (r *mockVehicleRepo) ExistsByRegistration(_ context.Context, registration string, excludeID *uint) (bool, error) {
	for _, v := range r.m.vehicles {
		if excludeID != nil && v.ID == *excludeID {
			continue
		}
		if v.RegistrationNumber == registration {
			return true, nil
		}
	}
	return false, nil
}

// ===== schools =====

type mockSchoolRepo struct{ m *mockRepository }

func (r *mockSchoolRepo) Create(_ context.Context, school *models.School) error {
	r.m.nextSchoolID++
	school.ID = r.m.nextSchoolID
	stored := *school
	r.m.schools[school.ID] = &stored
	return nil
}

func (r *mockSchoolRepo) GetByID(_ context.Context, id uint) (*models.School, error) {
	school, ok := r.m.schools[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *school
	return &out, nil
}

func (r *mockSchoolRepo) GetByCode(_ context.Context, code string) (*models.School, error) {
	for _, s := range r.m.schools {
		if s.Code == code {
			out := *s
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockSchoolRepo) List(_ context.Context, _ repositories.SchoolFilters) ([]*models.School, int64, error) {
	out := make([]*models.School, 0, len(r.m.schools))
	for _, s := range r.m.schools {
		copied := *s
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *mockSchoolRepo) Update(_ context.Context, school *models.School) error {
	if _, ok := r.m.schools[school.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *school
	r.m.schools[school.ID] = &stored
	return nil
}

func (r *mockSchoolRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.m.schools[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.m.schools, id)
	return nil
}

func (r *mockSchoolRepo) ExistsByCode(_ context.Context, code string, excludeID *uint) (bool, error) {
	for _, s := range r.m.schools {
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		if s.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// ===== shared fixture =====

type serviceFixture struct {
	repo      *mockRepository
	publisher *events.MockEventPublisher
}

func newServiceFixture() (*serviceFixture, *slog.Logger, *validator.Validator) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &serviceFixture{
		repo:      newMockRepository(),
		publisher: events.NewMockEventPublisher(logger),
	}, logger, validator.New()
}

func strPtr(s string) *string          { return &s }
func boolPtr(b bool) *bool             { return &b }
func floatPtr(f float64) *float64      { return &f }
func seedUser(repo *mockRepository, uuid, email, phone string) *models.User {
	user := &models.User{
		UUID:        uuid,
		Email:       email,
		PhoneNumber: phone,
		FirstName:   "Test",
		LastName:    "User",
		UserType:    models.UserTypeCustomer,
		IsActive:    true,
		CreatedAt:   nowISO(),
		UpdatedAt:   nowISO(),
	}
	repo.User().Create(context.Background(), user)
	return user
}
