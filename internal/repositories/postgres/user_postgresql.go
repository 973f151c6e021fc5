package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolRide-Platform/transport-service/internal/cache"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
)

type UserPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.UserRepository {
	return &UserPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new user and invalidates list caches
func (u *UserPostgreSQL) Create(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, u.cacheManager.User, "list:*")

	return nil
}

// GetByUUID retrieves a user by UUID with caching
func (u *UserPostgreSQL) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	cacheKey := fmt.Sprintf("uuid:%s", uuid)
	var user models.User

	err := u.cacheManager.User.CacheOrExecute(ctx, cacheKey, &user, cache.UserCacheConfig.TTL, func() (interface{}, error) {
		var dbUser models.User
		err := u.db.WithContext(ctx).
			Preload("Driver").
			Where("uuid = ?", uuid).
			First(&dbUser).Error
		if err != nil {
			return nil, err
		}
		return &dbUser, nil
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves users matching the filters plus the unpaginated total
func (u *UserPostgreSQL) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	query := u.db.WithContext(ctx).Model(&models.User{})

	if filters.UserType != nil {
		query = query.Where("user_type = ?", *filters.UserType)
	}
	if filters.Gender != nil {
		query = query.Where("gender = ?", *filters.Gender)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.IsVerified != nil {
		query = query.Where("is_verified = ?", *filters.IsVerified)
	}
	query = applyCreatedRange(query, filters.CreatedAfter, filters.CreatedBefore)

	query = applySearch(query, filters.Search, userSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []*models.User
	query = ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, userSortColumns, filters.Limit, filters.Offset)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// Update saves a modified user record and invalidates its caches
func (u *UserPostgreSQL) Update(ctx context.Context, user *models.User) error {
	if err := u.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	cache.InvalidateUserCache(ctx, u.cacheManager, user.UUID)

	return nil
}

// Delete removes a user permanently. Dependent driver and vehicle rows
// go with it via FK cascade.
func (u *UserPostgreSQL) Delete(ctx context.Context, uuid string) error {
	result := u.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidateUserCache(ctx, u.cacheManager, uuid)

	return nil
}

// ExistsByEmail checks email uniqueness, optionally excluding one user
func (u *UserPostgreSQL) ExistsByEmail(ctx context.Context, email string, excludeUUID *string) (bool, error) {
	query := u.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if excludeUUID != nil {
		query = query.Where("uuid <> ?", *excludeUUID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}

// ExistsByPhone checks phone uniqueness, optionally excluding one user
func (u *UserPostgreSQL) ExistsByPhone(ctx context.Context, phone string, excludeUUID *string) (bool, error) {
	query := u.db.WithContext(ctx).Model(&models.User{}).Where("phone_number = ?", phone)
	if excludeUUID != nil {
		query = query.Where("uuid <> ?", *excludeUUID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check phone existence: %w", err)
	}

	return count > 0, nil
}
