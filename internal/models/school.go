package models

import "gorm.io/datatypes"

type SchoolType string

const (
	SchoolTypeGovernment    SchoolType = "government"
	SchoolTypePrivate       SchoolType = "private"
	SchoolTypeAided         SchoolType = "aided"
	SchoolTypeInternational SchoolType = "international"
)

func ValidSchoolType(t SchoolType) bool {
	switch t {
	case SchoolTypeGovernment, SchoolTypePrivate, SchoolTypeAided, SchoolTypeInternational:
		return true
	}
	return false
}

type BoardType string

const (
	BoardCBSE  BoardType = "cbse"
	BoardICSE  BoardType = "icse"
	BoardState BoardType = "state"
	BoardIB    BoardType = "ib"
	BoardIGCSE BoardType = "igcse"
)

func ValidBoardType(t BoardType) bool {
	switch t {
	case BoardCBSE, BoardICSE, BoardState, BoardIB, BoardIGCSE:
		return true
	}
	return false
}

// WeekDays is the canonical set of working-day names, in week order.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ValidWorkingDays reports whether days is a non-empty subset of the seven
// weekday names.
func ValidWorkingDays(days []string) bool {
	if len(days) == 0 {
		return false
	}
	valid := make(map[string]bool, len(WeekDays))
	for _, d := range WeekDays {
		valid[d] = true
	}
	for _, d := range days {
		if !valid[d] {
			return false
		}
	}
	return true
}

// School is a standalone entity keyed by a unique, uppercased code.
// WorkingDays and Holidays are JSON-encoded string arrays.
type School struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"uniqueIndex;size:20;not null"`
	Name string `json:"name" gorm:"size:200;not null"`

	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
	Address   string  `json:"address" gorm:"size:500;not null"`
	City      string  `json:"city" gorm:"size:100;not null;index"`
	State     string  `json:"state" gorm:"size:100;not null;index"`
	Pincode   string  `json:"pincode" gorm:"size:6;not null"`

	Phone         *string `json:"phone" gorm:"size:10"`
	Email         *string `json:"email" gorm:"size:255"`
	PrincipalName *string `json:"principalName" gorm:"size:100"`

	SchoolType SchoolType `json:"schoolType" gorm:"size:20;not null;index"`
	BoardType  *BoardType `json:"boardType" gorm:"size:10"`

	StartTime   string         `json:"startTime" gorm:"size:5;not null"` // HH:MM
	EndTime     string         `json:"endTime" gorm:"size:5;not null"`   // HH:MM
	WorkingDays datatypes.JSON `json:"workingDays" gorm:"type:jsonb;not null"`
	Holidays    datatypes.JSON `json:"holidays" gorm:"type:jsonb"` // []string of YYYY-MM-DD

	IsActive bool `json:"isActive" gorm:"default:true;index"`

	CreatedAt string `json:"createdAt" gorm:"size:30;index"`
	UpdatedAt string `json:"updatedAt" gorm:"size:30"`
}

func (School) TableName() string {
	return "schools"
}
