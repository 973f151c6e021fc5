package postgres

import (
	"reflect"
	"strings"
	"testing"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		allowed   map[string]string
		want      string
	}{
		{"whitelisted ascending", "firstName", "asc", userSortColumns, "first_name ASC"},
		{"whitelisted descending", "email", "desc", userSortColumns, "email DESC"},
		{"unknown column falls back", "password", "asc", userSortColumns, "created_at ASC"},
		{"injection attempt falls back", "1; DROP TABLE users", "desc", userSortColumns, "created_at DESC"},
		{"empty sortBy falls back", "", "", userSortColumns, "created_at DESC"},
		{"unrecognized order is descending", "rating", "ASC", driverSortColumns, "rating DESC"},
		{"vehicle capacity", "capacity", "asc", vehicleSortColumns, "capacity ASC"},
		{"school code", "code", "desc", schoolSortColumns, "code DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderClause(tt.sortBy, tt.sortOrder, tt.allowed)
			if got != tt.want {
				t.Errorf("OrderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortOrder, got, tt.want)
			}
		})
	}
}

func TestSearchClause(t *testing.T) {
	got := SearchClause([]string{"name", "code"})
	if got != "name ILIKE ? OR code ILIKE ?" {
		t.Errorf("SearchClause = %q", got)
	}
}

func TestSearchColumnSets(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{"users", userSearchColumns, []string{
			"first_name", "last_name", "email", "phone_number",
		}},
		{"drivers", driverSearchColumns, []string{
			"license_number", "aadhar_number", "pan_number",
			"emergency_contact_name", "emergency_contact_phone",
			"bank_account_number", "upi_id",
		}},
		{"vehicles", vehicleSearchColumns, []string{
			"registration_number", "make", "model", "color",
		}},
		{"schools", schoolSearchColumns, []string{
			"name", "code", "city", "principal_name", "email",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.columns, tt.want) {
				t.Errorf("columns = %v, want %v", tt.columns, tt.want)
			}
			clause := SearchClause(tt.columns)
			if strings.Count(clause, "ILIKE ?") != len(tt.want) {
				t.Errorf("clause %q should carry one placeholder per column", clause)
			}
		})
	}
}
