package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolRide-Platform/transport-service/internal/cache"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
)

type VehiclePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewVehiclePostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.VehicleRepository {
	return &VehiclePostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new vehicle and invalidates list caches
func (v *VehiclePostgreSQL) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := v.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, v.cacheManager.Vehicle, "list:*")

	return nil
}

// GetByID retrieves a vehicle by ID with caching
func (v *VehiclePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var vehicle models.Vehicle

	err := v.cacheManager.Vehicle.CacheOrExecute(ctx, cacheKey, &vehicle, cache.VehicleCacheConfig.TTL, func() (interface{}, error) {
		var dbVehicle models.Vehicle
		err := v.db.WithContext(ctx).
			Preload("Driver").
			First(&dbVehicle, id).Error
		if err != nil {
			return nil, err
		}
		return &dbVehicle, nil
	})

	if err != nil {
		return nil, err
	}

	return &vehicle, nil
}

// List retrieves vehicles matching the filters plus the total count
func (v *VehiclePostgreSQL) List(ctx context.Context, filters repositories.VehicleFilters) ([]*models.Vehicle, int64, error) {
	query := v.db.WithContext(ctx).Model(&models.Vehicle{})

	if filters.DriverID != nil {
		query = query.Where("driver_id = ?", *filters.DriverID)
	}
	if filters.VehicleType != nil {
		query = query.Where("vehicle_type = ?", *filters.VehicleType)
	}
	if filters.VerificationStatus != nil {
		query = query.Where("verification_status = ?", *filters.VerificationStatus)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.Make != "" {
		query = query.Where("make ILIKE ?", "%"+filters.Make+"%")
	}
	if filters.Model != "" {
		query = query.Where("model ILIKE ?", "%"+filters.Model+"%")
	}
	if filters.Color != "" {
		query = query.Where("color ILIKE ?", "%"+filters.Color+"%")
	}
	if filters.YearFrom != nil {
		query = query.Where("year >= ?", *filters.YearFrom)
	}
	if filters.YearTo != nil {
		query = query.Where("year <= ?", *filters.YearTo)
	}
	if filters.CapacityFrom != nil {
		query = query.Where("capacity >= ?", *filters.CapacityFrom)
	}
	if filters.CapacityTo != nil {
		query = query.Where("capacity <= ?", *filters.CapacityTo)
	}
	query = applyCreatedRange(query, filters.CreatedAfter, filters.CreatedBefore)

	query = applySearch(query, filters.Search, vehicleSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var vehicles []*models.Vehicle
	query = ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, vehicleSortColumns, filters.Limit, filters.Offset)
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, total, nil
}

// Update saves a modified vehicle and invalidates its caches
func (v *VehiclePostgreSQL) Update(ctx context.Context, vehicle *models.Vehicle) error {
	if err := v.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	cache.InvalidateVehicleCache(ctx, v.cacheManager, vehicle.ID)

	return nil
}

// Delete removes a vehicle permanently
func (v *VehiclePostgreSQL) Delete(ctx context.Context, id uint) error {
	result := v.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateVehicleCache(ctx, v.cacheManager, id)

	return nil
}

// ExistsByRegistration checks registration uniqueness, optionally excluding one vehicle
func (v *VehiclePostgreSQL) ExistsByRegistration(ctx context.Context, registration string, excludeID *uint) (bool, error) {
	query := v.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("registration_number = ?", registration)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check registration existence: %w", err)
	}

	return count > 0, nil
}
