package models

import "gorm.io/datatypes"

type VehicleType string

const (
	VehicleTypeAuto VehicleType = "auto"
	VehicleTypeCar  VehicleType = "car"
	VehicleTypeBike VehicleType = "bike"
	VehicleTypeBus  VehicleType = "bus"
	VehicleTypeVan  VehicleType = "van"
)

func ValidVehicleType(t VehicleType) bool {
	switch t {
	case VehicleTypeAuto, VehicleTypeCar, VehicleTypeBike, VehicleTypeBus, VehicleTypeVan:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

func ValidVerificationStatus(s VerificationStatus) bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}

// CapacityRange holds the allowed seating capacity bounds for a vehicle type.
type CapacityRange struct {
	Min int
	Max int
}

var capacityRanges = map[VehicleType]CapacityRange{
	VehicleTypeBike: {Min: 1, Max: 2},
	VehicleTypeAuto: {Min: 2, Max: 6},
	VehicleTypeCar:  {Min: 4, Max: 8},
	VehicleTypeVan:  {Min: 6, Max: 15},
	VehicleTypeBus:  {Min: 10, Max: 60},
}

// CapacityRangeFor returns the capacity bounds for a vehicle type.
func CapacityRangeFor(t VehicleType) (CapacityRange, bool) {
	r, ok := capacityRanges[t]
	return r, ok
}

// CapacityInRange reports whether capacity is valid for the vehicle type.
func CapacityInRange(t VehicleType, capacity int) bool {
	r, ok := capacityRanges[t]
	if !ok {
		return false
	}
	return capacity >= r.Min && capacity <= r.Max
}

// Vehicle is owned by exactly one driver and removed with it by FK cascade.
// Images is a JSON-encoded array of image URLs.
type Vehicle struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	DriverID uint `json:"driverId" gorm:"not null;index"`

	VehicleType        VehicleType `json:"vehicleType" gorm:"size:10;not null;index"`
	RegistrationNumber string      `json:"registrationNumber" gorm:"uniqueIndex;size:15;not null"`
	Make               string      `json:"make" gorm:"size:50;not null"`
	Model              string      `json:"model" gorm:"size:50;not null"`
	Year               int         `json:"year" gorm:"not null"`
	Color              string      `json:"color" gorm:"size:30;not null"`
	Capacity           int         `json:"capacity" gorm:"not null"`

	RCImage             *string `json:"rcImage" gorm:"size:500"`
	RCExpiryDate        *string `json:"rcExpiryDate" gorm:"size:10"`
	InsuranceImage      *string `json:"insuranceImage" gorm:"size:500"`
	InsuranceExpiryDate *string `json:"insuranceExpiryDate" gorm:"size:10"`
	PUCImage            *string `json:"pucImage" gorm:"size:500"`
	PUCExpiryDate       *string `json:"pucExpiryDate" gorm:"size:10"`
	PermitImage         *string `json:"permitImage" gorm:"size:500"`
	PermitExpiryDate    *string `json:"permitExpiryDate" gorm:"size:10"`

	Images datatypes.JSON `json:"images" gorm:"type:jsonb"` // []string of URLs

	IsActive           bool               `json:"isActive" gorm:"default:true;index"`
	VerificationStatus VerificationStatus `json:"verificationStatus" gorm:"size:10;default:pending;index"`

	CreatedAt string `json:"createdAt" gorm:"size:30;index"`
	UpdatedAt string `json:"updatedAt" gorm:"size:30"`

	Driver *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
