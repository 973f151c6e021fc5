package models

type DriverStatus string

const (
	DriverStatusPending     DriverStatus = "pending"
	DriverStatusUnderReview DriverStatus = "under_review"
	DriverStatusApproved    DriverStatus = "approved"
	DriverStatusRejected    DriverStatus = "rejected"
	DriverStatusSuspended   DriverStatus = "suspended"
	DriverStatusInactive    DriverStatus = "inactive"
)

// ValidDriverStatus reports whether s is one of the six lifecycle states.
// Transitions between states are advisory, not gated; any valid value may be
// written directly via update.
func ValidDriverStatus(s DriverStatus) bool {
	switch s {
	case DriverStatusPending, DriverStatusUnderReview, DriverStatusApproved,
		DriverStatusRejected, DriverStatusSuspended, DriverStatusInactive:
		return true
	}
	return false
}

type BackgroundCheckStatus string

const (
	BackgroundCheckPending    BackgroundCheckStatus = "pending"
	BackgroundCheckInProgress BackgroundCheckStatus = "in_progress"
	BackgroundCheckApproved   BackgroundCheckStatus = "approved"
	BackgroundCheckRejected   BackgroundCheckStatus = "rejected"
)

func ValidBackgroundCheckStatus(s BackgroundCheckStatus) bool {
	switch s {
	case BackgroundCheckPending, BackgroundCheckInProgress,
		BackgroundCheckApproved, BackgroundCheckRejected:
		return true
	}
	return false
}

// Driver is a profile attached 1:1 to a User. License and Aadhar are unique
// across all drivers; PAN is unique when present (NULLs do not conflict).
type Driver struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserUUID string `json:"userUuid" gorm:"uniqueIndex;size:36;not null"`

	LicenseNumber string  `json:"licenseNumber" gorm:"uniqueIndex;size:20;not null"`
	LicenseImage  *string `json:"licenseImage" gorm:"size:500"`
	AadharNumber  string  `json:"aadharNumber" gorm:"uniqueIndex;size:12;not null"`
	AadharImage   *string `json:"aadharImage" gorm:"size:500"`
	PanNumber     *string `json:"panNumber" gorm:"uniqueIndex;size:10"`
	PanImage      *string `json:"panImage" gorm:"size:500"`

	EmergencyContactName  string `json:"emergencyContactName" gorm:"size:100;not null"`
	EmergencyContactPhone string `json:"emergencyContactPhone" gorm:"size:10;not null"`

	BankAccountNumber *string `json:"bankAccountNumber" gorm:"size:20"`
	BankIFSC          *string `json:"bankIfsc" gorm:"size:11"`
	UPIID             *string `json:"upiId" gorm:"size:65"`

	BackgroundCheckStatus BackgroundCheckStatus `json:"backgroundCheckStatus" gorm:"size:20;default:pending"`
	Status                DriverStatus          `json:"status" gorm:"size:20;default:pending;index"`
	ApprovedAt            *string               `json:"approvedAt" gorm:"size:30"`
	RejectedAt            *string               `json:"rejectedAt" gorm:"size:30"`
	RejectionReason       *string               `json:"rejectionReason" gorm:"size:500"`

	Rating        float64 `json:"rating" gorm:"default:0"`
	TotalRides    int     `json:"totalRides" gorm:"default:0"`
	TotalEarnings float64 `json:"totalEarnings" gorm:"default:0"`

	IsActive     bool    `json:"isActive" gorm:"default:true;index"`
	IsOnline     bool    `json:"isOnline" gorm:"default:false"`
	LastOnlineAt *string `json:"lastOnlineAt" gorm:"size:30"`

	CreatedAt string `json:"createdAt" gorm:"size:30;index"`
	UpdatedAt string `json:"updatedAt" gorm:"size:30"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserUUID;references:UUID;constraint:OnDelete:CASCADE"`
	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

func (Driver) TableName() string {
	return "drivers"
}
