package validator

import (
	"testing"
	"time"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid starting with 9", "9876543210", true},
		{"valid starting with 6", "6123456789", true},
		{"starts with 5", "5876543210", false},
		{"too short", "987654321", false},
		{"too long", "98765432101", false},
		{"contains letters", "98765432a0", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.input); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "driver@example.com", true},
		{"valid with plus", "driver+tag@example.co.in", true},
		{"missing at", "driverexample.com", false},
		{"two ats", "driver@@example.com", false},
		{"missing domain dot", "driver@example", false},
		{"whitespace", "dri ver@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPAN(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ABCDE1234F", true},
		{"abcde1234f", false},
		{"ABCD51234F", false},
		{"ABCDE12345", false},
		{"ABCDE1234FX", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPAN(tt.input); got != tt.want {
			t.Errorf("IsValidPAN(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidAadhar(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123456789012", true},
		{"12345678901", false},
		{"1234567890123", false},
		{"12345678901a", false},
	}

	for _, tt := range tests {
		if got := IsValidAadhar(tt.input); got != tt.want {
			t.Errorf("IsValidAadhar(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"HDFC0001234", true},
		{"SBIN0X12345", true},
		{"hdfc0001234", false},
		{"HDFC1001234", false},
		{"HDF00001234", false},
		{"HDFC000123", false},
	}

	for _, tt := range tests {
		if got := IsValidIFSC(tt.input); got != tt.want {
			t.Errorf("IsValidIFSC(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidUPI(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"driver@okhdfc", true},
		{"a@ok", true},
		{"no-at-sign", false},
		{"two@@ats", false},
		{"@nohandle", false},
	}

	for _, tt := range tests {
		if got := IsValidUPI(tt.input); got != tt.want {
			t.Errorf("IsValidUPI(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidBankAccount(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123456789", true},
		{"123456789012345678", true},
		{"12345678", false},
		{"1234567890123456789", false},
		{"12345678a", false},
	}

	for _, tt := range tests {
		if got := IsValidBankAccount(tt.input); got != tt.want {
			t.Errorf("IsValidBankAccount(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidRegistrationNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"KA01AB1234", true},
		{"DL1C9876", true},
		{"MH12X1", true},
		{"K01AB1234", false},
		{"KA01AB12345", false},
		{"ka01ab1234", false},
	}

	for _, tt := range tests {
		if got := IsValidRegistrationNumber(tt.input); got != tt.want {
			t.Errorf("IsValidRegistrationNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidPincode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"560001", true},
		{"060001", false},
		{"56001", false},
		{"5600011", false},
	}

	for _, tt := range tests {
		if got := IsValidPincode(tt.input); got != tt.want {
			t.Errorf("IsValidPincode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidTimeHHMM(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"08:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"8:30", false},
		{"08:60", false},
		{"0830", false},
	}

	for _, tt := range tests {
		if got := IsValidTimeHHMM(tt.input); got != tt.want {
			t.Errorf("IsValidTimeHHMM(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidDateFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2025-01-15", true},
		{"2025-02-30", false},
		{"15-01-2025", false},
		{"2025/01/15", false},
		{"2025-1-15", false},
	}

	for _, tt := range tests {
		if got := IsValidDateFormat(tt.input); got != tt.want {
			t.Errorf("IsValidDateFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAgeFromBirthDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  string
		want int
	}{
		{"birthday passed this year", "2000-01-01", 25},
		{"birthday not yet this year", "2000-12-31", 24},
		{"birthday today", "2000-06-15", 25},
		{"invalid date", "not-a-date", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeFromBirthDate(tt.dob, now); got != tt.want {
				t.Errorf("AgeFromBirthDate(%q) = %d, want %d", tt.dob, got, tt.want)
			}
		})
	}
}

func TestIsValidBirthDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  string
		want bool
	}{
		{"adult", "1990-03-20", true},
		{"exactly 13", "2012-06-15", true},
		{"under 13", "2015-01-01", false},
		{"over 120", "1900-01-01", false},
		{"malformed", "01-01-2000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBirthDate(tt.dob, now); got != tt.want {
				t.Errorf("IsValidBirthDate(%q) = %v, want %v", tt.dob, got, tt.want)
			}
		})
	}
}

func TestIsValidImageURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://cdn.example.com/photo.jpg", true},
		{"http://cdn.example.com/photo.jpg", true},
		{"ftp://cdn.example.com/photo.jpg", false},
		{"not a url", false},
		{"https://", false},
	}

	for _, tt := range tests {
		if got := IsValidImageURL(tt.input); got != tt.want {
			t.Errorf("IsValidImageURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims edges", "  hello  ", "hello"},
		{"collapses inner runs", "a   b\t\tc", "a b c"},
		{"already clean", "clean", "clean"},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeUpperLower(t *testing.T) {
	if got := SanitizeUpper(" ka01ab1234 "); got != "KA01AB1234" {
		t.Errorf("SanitizeUpper = %q", got)
	}
	if got := SanitizeLower(" User@Example.COM "); got != "user@example.com" {
		t.Errorf("SanitizeLower = %q", got)
	}
}

func TestSanitizePtr(t *testing.T) {
	if got := SanitizePtr(nil, Sanitize); got != nil {
		t.Errorf("SanitizePtr(nil) = %v, want nil", got)
	}

	in := "  padded  "
	got := SanitizePtr(&in, Sanitize)
	if got == nil || *got != "padded" {
		t.Errorf("SanitizePtr(%q) = %v, want padded", in, got)
	}
}
