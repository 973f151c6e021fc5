package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolRide-Platform/transport-service/internal/cache"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
)

type DriverPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewDriverPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.DriverRepository {
	return &DriverPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new driver profile and invalidates list caches
func (d *DriverPostgreSQL) Create(ctx context.Context, driver *models.Driver) error {
	if err := d.db.WithContext(ctx).Create(driver).Error; err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, d.cacheManager.Driver, "list:*")

	return nil
}

// GetByUserUUID retrieves a driver profile by the owning user's UUID with
// caching. The parent user record is preloaded for response enrichment.
func (d *DriverPostgreSQL) GetByUserUUID(ctx context.Context, userUUID string) (*models.Driver, error) {
	cacheKey := fmt.Sprintf("user:%s", userUUID)
	var driver models.Driver

	err := d.cacheManager.Driver.CacheOrExecute(ctx, cacheKey, &driver, cache.DriverCacheConfig.TTL, func() (interface{}, error) {
		var dbDriver models.Driver
		err := d.db.WithContext(ctx).
			Preload("User").
			Preload("Vehicles").
			Where("user_uuid = ?", userUUID).
			First(&dbDriver).Error
		if err != nil {
			return nil, err
		}
		return &dbDriver, nil
	})

	if err != nil {
		return nil, err
	}

	return &driver, nil
}

// GetByID retrieves a driver profile by primary key, uncached. Used for
// ownership checks, not for the API surface.
func (d *DriverPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := d.db.WithContext(ctx).First(&driver, id).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

// List retrieves driver profiles matching the filters plus the total count
func (d *DriverPostgreSQL) List(ctx context.Context, filters repositories.DriverFilters) ([]*models.Driver, int64, error) {
	query := d.db.WithContext(ctx).Model(&models.Driver{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.BackgroundCheckStatus != nil {
		query = query.Where("background_check_status = ?", *filters.BackgroundCheckStatus)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.IsOnline != nil {
		query = query.Where("is_online = ?", *filters.IsOnline)
	}
	if filters.RatingFrom != nil {
		query = query.Where("rating >= ?", *filters.RatingFrom)
	}
	if filters.TotalRidesFrom != nil {
		query = query.Where("total_rides >= ?", *filters.TotalRidesFrom)
	}
	if filters.TotalRidesTo != nil {
		query = query.Where("total_rides <= ?", *filters.TotalRidesTo)
	}
	if filters.TotalEarningsFrom != nil {
		query = query.Where("total_earnings >= ?", *filters.TotalEarningsFrom)
	}
	if filters.TotalEarningsTo != nil {
		query = query.Where("total_earnings <= ?", *filters.TotalEarningsTo)
	}
	query = applyCreatedRange(query, filters.CreatedAfter, filters.CreatedBefore)

	query = applySearch(query, filters.Search, driverSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	var drivers []*models.Driver
	query = query.Preload("User")
	query = ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, driverSortColumns, filters.Limit, filters.Offset)
	if err := query.Find(&drivers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list drivers: %w", err)
	}

	return drivers, total, nil
}

// Update saves a modified driver profile and invalidates its caches
func (d *DriverPostgreSQL) Update(ctx context.Context, driver *models.Driver) error {
	if err := d.db.WithContext(ctx).Save(driver).Error; err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	cache.InvalidateDriverCache(ctx, d.cacheManager, driver.UserUUID)

	return nil
}

// Delete removes a driver profile permanently. Owned vehicles go with it
// via FK cascade.
func (d *DriverPostgreSQL) Delete(ctx context.Context, userUUID string) error {
	result := d.db.WithContext(ctx).Where("user_uuid = ?", userUUID).Delete(&models.Driver{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete driver: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateDriverCache(ctx, d.cacheManager, userUUID)

	return nil
}

// ExistsForUser checks whether the user already has a driver profile
func (d *DriverPostgreSQL) ExistsForUser(ctx context.Context, userUUID string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&models.Driver{}).
		Where("user_uuid = ?", userUUID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check driver existence: %w", err)
	}

	return count > 0, nil
}

// ExistsByLicense checks license uniqueness, optionally excluding one driver
func (d *DriverPostgreSQL) ExistsByLicense(ctx context.Context, license string, excludeID *uint) (bool, error) {
	return d.exists(ctx, "license_number = ?", license, excludeID)
}

// ExistsByAadhar checks Aadhar uniqueness, optionally excluding one driver
func (d *DriverPostgreSQL) ExistsByAadhar(ctx context.Context, aadhar string, excludeID *uint) (bool, error) {
	return d.exists(ctx, "aadhar_number = ?", aadhar, excludeID)
}

// ExistsByPAN checks PAN uniqueness, optionally excluding one driver
func (d *DriverPostgreSQL) ExistsByPAN(ctx context.Context, pan string, excludeID *uint) (bool, error) {
	return d.exists(ctx, "pan_number = ?", pan, excludeID)
}

func (d *DriverPostgreSQL) exists(ctx context.Context, condition, value string, excludeID *uint) (bool, error) {
	query := d.db.WithContext(ctx).Model(&models.Driver{}).Where(condition, value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check driver uniqueness: %w", err)
	}

	return count > 0, nil
}
