package models

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeDriver   UserType = "driver"
	UserTypeParent   UserType = "parent"
	UserTypeStudent  UserType = "student"
	UserTypeGuardian UserType = "guardian"
)

// User is the platform identity record. Email and phone number are unique
// across all users; a hard delete cascades to the dependent driver profile.
//
// CreatedAt/UpdatedAt are ISO-8601 UTC strings stamped by the service layer,
// not the database, so date-range filters can compare lexically.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	UUID         string   `json:"uuid" gorm:"uniqueIndex;size:36;not null"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber  string   `json:"phoneNumber" gorm:"uniqueIndex;size:10;not null"`
	FirstName    string   `json:"firstName" gorm:"size:100;not null"`
	LastName     string   `json:"lastName" gorm:"size:100;not null"`
	ProfileImage *string  `json:"profileImage" gorm:"size:500"`
	DateOfBirth  *string  `json:"dateOfBirth" gorm:"size:10"`
	Gender       *string  `json:"gender" gorm:"size:20"`
	UserType     UserType `json:"userType" gorm:"size:20;default:customer;index"`
	IsActive     bool     `json:"isActive" gorm:"default:true;index"`
	IsVerified   bool     `json:"isVerified" gorm:"default:false"`

	CreatedAt string `json:"createdAt" gorm:"size:30;index"`
	UpdatedAt string `json:"updatedAt" gorm:"size:30"`

	Driver *Driver `json:"driver,omitempty" gorm:"foreignKey:UserUUID;references:UUID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
