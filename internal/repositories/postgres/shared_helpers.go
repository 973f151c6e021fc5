package postgres

import (
	"strings"

	"gorm.io/gorm"
)

// Sortable column whitelists per entity, mapping the query-parameter name to
// the real column. Anything not listed falls back to created_at.
var (
	userSortColumns = map[string]string{
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
		"firstName":   "first_name",
		"lastName":    "last_name",
		"email":       "email",
		"phoneNumber": "phone_number",
		"userType":    "user_type",
	}

	driverSortColumns = map[string]string{
		"createdAt":     "created_at",
		"updatedAt":     "updated_at",
		"status":        "status",
		"rating":        "rating",
		"totalRides":    "total_rides",
		"totalEarnings": "total_earnings",
		"licenseNumber": "license_number",
	}

	vehicleSortColumns = map[string]string{
		"createdAt":          "created_at",
		"updatedAt":          "updated_at",
		"registrationNumber": "registration_number",
		"make":               "make",
		"model":              "model",
		"year":               "year",
		"capacity":           "capacity",
		"vehicleType":        "vehicle_type",
	}

	schoolSortColumns = map[string]string{
		"createdAt":  "created_at",
		"updatedAt":  "updated_at",
		"name":       "name",
		"code":       "code",
		"city":       "city",
		"state":      "state",
		"schoolType": "school_type",
	}
)

// Free-text search fans out as an OR of case-insensitive substring matches
// over a fixed, entity-specific column set.
var (
	userSearchColumns = []string{
		"first_name", "last_name", "email", "phone_number",
	}

	driverSearchColumns = []string{
		"license_number", "aadhar_number", "pan_number",
		"emergency_contact_name", "emergency_contact_phone",
		"bank_account_number", "upi_id",
	}

	vehicleSearchColumns = []string{
		"registration_number", "make", "model", "color",
	}

	schoolSearchColumns = []string{
		"name", "code", "city", "principal_name", "email",
	}
)

// SearchClause builds the OR'ed ILIKE condition over a column set.
func SearchClause(columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col + " ILIKE ?"
	}
	return strings.Join(parts, " OR ")
}

// applySearch adds the search fan-out for term; empty terms are a no-op.
func applySearch(query *gorm.DB, term string, columns []string) *gorm.DB {
	if term == "" {
		return query
	}
	pattern := "%" + term + "%"
	args := make([]interface{}, len(columns))
	for i := range columns {
		args[i] = pattern
	}
	return query.Where(SearchClause(columns), args...)
}

// OrderClause builds a safe ORDER BY fragment from client-supplied sort
// parameters. Unknown columns fall back to created_at; any order other
// than the literal "asc" sorts descending.
func OrderClause(sortBy, sortOrder string, allowed map[string]string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}

	return column + " " + direction
}

// ApplyPaginationAndSort applies sorting and pagination with SQL injection
// protection via the column whitelist.
func ApplyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, allowed map[string]string, limit, offset int) *gorm.DB {
	query = query.Order(OrderClause(sortBy, sortOrder, allowed))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}

// applyCreatedRange filters on the lexically ordered ISO timestamp column.
func applyCreatedRange(query *gorm.DB, after, before *string) *gorm.DB {
	if after != nil {
		query = query.Where("created_at >= ?", *after)
	}
	if before != nil {
		query = query.Where("created_at <= ?", *before)
	}
	return query
}
