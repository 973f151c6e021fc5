package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolRide-Platform/transport-service/internal/cache"
	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
)

type SchoolPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewSchoolPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.SchoolRepository {
	return &SchoolPostgreSQL{
		db:           db,
		cacheManager: cacheManager,
	}
}

// Create inserts a new school and invalidates list caches
func (s *SchoolPostgreSQL) Create(ctx context.Context, school *models.School) error {
	if err := s.db.WithContext(ctx).Create(school).Error; err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, s.cacheManager.School, "list:*")

	return nil
}

// GetByID retrieves a school by numeric ID with caching
func (s *SchoolPostgreSQL) GetByID(ctx context.Context, id uint) (*models.School, error) {
	cacheKey := fmt.Sprintf("id:%d", id)
	var school models.School

	err := s.cacheManager.School.CacheOrExecute(ctx, cacheKey, &school, cache.SchoolCacheConfig.TTL, func() (interface{}, error) {
		var dbSchool models.School
		if err := s.db.WithContext(ctx).First(&dbSchool, id).Error; err != nil {
			return nil, err
		}
		return &dbSchool, nil
	})

	if err != nil {
		return nil, err
	}

	return &school, nil
}

// GetByCode retrieves a school by its unique code with caching. Codes are
// stored uppercased, callers normalize before lookup.
func (s *SchoolPostgreSQL) GetByCode(ctx context.Context, code string) (*models.School, error) {
	cacheKey := fmt.Sprintf("code:%s", code)
	var school models.School

	err := s.cacheManager.School.CacheOrExecute(ctx, cacheKey, &school, cache.SchoolCacheConfig.TTL, func() (interface{}, error) {
		var dbSchool models.School
		if err := s.db.WithContext(ctx).Where("code = ?", code).First(&dbSchool).Error; err != nil {
			return nil, err
		}
		return &dbSchool, nil
	})

	if err != nil {
		return nil, err
	}

	return &school, nil
}

// List retrieves schools matching the filters plus the total count
func (s *SchoolPostgreSQL) List(ctx context.Context, filters repositories.SchoolFilters) ([]*models.School, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.School{})

	if filters.SchoolType != nil {
		query = query.Where("school_type = ?", *filters.SchoolType)
	}
	if filters.BoardType != nil {
		query = query.Where("board_type = ?", *filters.BoardType)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", "%"+filters.City+"%")
	}
	if filters.State != "" {
		query = query.Where("state ILIKE ?", "%"+filters.State+"%")
	}
	if filters.Pincode != nil {
		query = query.Where("pincode = ?", *filters.Pincode)
	}
	query = applyCreatedRange(query, filters.CreatedAfter, filters.CreatedBefore)

	query = applySearch(query, filters.Search, schoolSearchColumns)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count schools: %w", err)
	}

	var schools []*models.School
	query = ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, schoolSortColumns, filters.Limit, filters.Offset)
	if err := query.Find(&schools).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list schools: %w", err)
	}

	return schools, total, nil
}

// Update saves a modified school and invalidates its caches
func (s *SchoolPostgreSQL) Update(ctx context.Context, school *models.School) error {
	if err := s.db.WithContext(ctx).Save(school).Error; err != nil {
		return fmt.Errorf("failed to update school: %w", err)
	}
	cache.InvalidateSchoolCache(ctx, s.cacheManager, school.ID, school.Code)

	return nil
}

// Delete removes a school permanently
func (s *SchoolPostgreSQL) Delete(ctx context.Context, id uint) error {
	// Fetch first so the code-keyed cache entry can be dropped too
	var school models.School
	if err := s.db.WithContext(ctx).First(&school, id).Error; err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.School{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete school: %w", result.Error)
	}
	cache.InvalidateSchoolCache(ctx, s.cacheManager, id, school.Code)

	return nil
}

// ExistsByCode checks code uniqueness, optionally excluding one school
func (s *SchoolPostgreSQL) ExistsByCode(ctx context.Context, code string, excludeID *uint) (bool, error) {
	query := s.db.WithContext(ctx).Model(&models.School{}).Where("code = ?", code)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check school code existence: %w", err)
	}

	return count > 0, nil
}
