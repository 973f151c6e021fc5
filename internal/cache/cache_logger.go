package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateUserCache drops the cached user record and any driver entry
// keyed by the same account, since driver lookups embed user data.
func InvalidateUserCache(ctx context.Context, cm *CacheManager, userUUID string) {
	SafeDelete(ctx, cm.User, fmt.Sprintf("uuid:%s", userUUID))
	SafeDelete(ctx, cm.Driver, fmt.Sprintf("user:%s", userUUID))
	SafeInvalidatePattern(ctx, cm.User, "list:*")
}

// InvalidateDriverCache invalidates driver caches for one account
func InvalidateDriverCache(ctx context.Context, cm *CacheManager, userUUID string) {
	SafeDelete(ctx, cm.Driver, fmt.Sprintf("user:%s", userUUID))
	SafeInvalidatePattern(ctx, cm.Driver, "list:*")
}

// InvalidateVehicleCache invalidates vehicle caches for one record
func InvalidateVehicleCache(ctx context.Context, cm *CacheManager, vehicleID uint) {
	SafeDelete(ctx, cm.Vehicle, fmt.Sprintf("id:%d", vehicleID))
	SafeInvalidatePattern(ctx, cm.Vehicle, "list:*")
}

// InvalidateSchoolCache invalidates school caches for one record
func InvalidateSchoolCache(ctx context.Context, cm *CacheManager, schoolID uint, code string) {
	SafeDelete(ctx, cm.School,
		fmt.Sprintf("id:%d", schoolID),
		fmt.Sprintf("code:%s", code))
	SafeInvalidatePattern(ctx, cm.School, "list:*")
}
