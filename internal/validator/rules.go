package validator

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Format predicates for the domain's identity documents and field shapes.
// All are pure; inputs are expected to be sanitized first.

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadharRe  = regexp.MustCompile(`^[0-9]{12}$`)
	ifscRe    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	regNoRe   = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,2}[A-Z]{1,2}[0-9]{1,4}$`)
	pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	hhmmRe    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRe    = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	upiRe     = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9][A-Za-z]+$`)
)

// IsValidEmail checks the local@domain.tld shape: single @, a dot after it,
// no whitespace.
func IsValidEmail(s string) bool {
	return strings.Count(s, "@") == 1 && emailRe.MatchString(s)
}

// IsValidPhone checks for exactly 10 digits with the first in [6-9].
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsValidPAN checks 5 uppercase letters + 4 digits + 1 uppercase letter.
func IsValidPAN(s string) bool {
	return panRe.MatchString(s)
}

// IsValidAadhar checks for exactly 12 digits.
func IsValidAadhar(s string) bool {
	return aadharRe.MatchString(s)
}

// IsValidIFSC checks 4 uppercase letters, a literal 0, then 6 alphanumerics.
func IsValidIFSC(s string) bool {
	return ifscRe.MatchString(s)
}

// IsValidBankAccount checks for 9 to 18 digits.
func IsValidBankAccount(s string) bool {
	if len(s) < 9 || len(s) > 18 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidUPI checks localpart@handle with the handle alphabetic past its
// first character, 3 to 65 characters overall.
func IsValidUPI(s string) bool {
	if len(s) < 3 || len(s) > 65 {
		return false
	}
	return strings.Count(s, "@") == 1 && upiRe.MatchString(s)
}

// IsValidLicenseNumber checks length only: 10 to 20 characters inclusive.
func IsValidLicenseNumber(s string) bool {
	return len(s) >= 10 && len(s) <= 20
}

// IsValidImageURL requires an absolute http(s) URL.
func IsValidImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidDateFormat checks the literal YYYY-MM-DD pattern and that it parses
// to a real calendar date.
func IsValidDateFormat(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidRegistrationNumber checks 2 uppercase letters, 1-2 digits, 1-2
// uppercase letters, 1-4 digits.
func IsValidRegistrationNumber(s string) bool {
	return regNoRe.MatchString(s)
}

// IsValidPincode checks 6 digits with a non-zero first digit.
func IsValidPincode(s string) bool {
	return pincodeRe.MatchString(s)
}

// IsValidTimeHHMM checks 24-hour HH:MM.
func IsValidTimeHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

// AgeFromBirthDate returns the whole-year age for a YYYY-MM-DD birth date,
// relative to now. Returns -1 when the date does not parse.
func AgeFromBirthDate(dob string, now time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return -1
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}

// IsValidBirthDate checks format plus the [13,120] age window.
func IsValidBirthDate(dob string, now time.Time) bool {
	if !IsValidDateFormat(dob) {
		return false
	}
	age := AgeFromBirthDate(dob, now)
	return age >= 13 && age <= 120
}
