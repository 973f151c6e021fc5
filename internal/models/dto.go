package models

// Request DTOs for the CRUD surface. Create requests carry required fields;
// update requests carry only pointers so a partial body touches nothing it
// does not mention. Custom validate tags (in_mobile, pan, aadhar, ifsc, upi,
// license_no, image_url, date_ymd, dob, reg_no, pincode, hhmm) are registered
// in internal/validator.

// ===== USERS =====

type UserCreateRequest struct {
	Email        string    `json:"email" validate:"required,email"`
	PhoneNumber  string    `json:"phoneNumber" validate:"required,in_mobile"`
	FirstName    string    `json:"firstName" validate:"required,max=100"`
	LastName     string    `json:"lastName" validate:"required,max=100"`
	ProfileImage *string   `json:"profileImage" validate:"omitempty,image_url"`
	DateOfBirth  *string   `json:"dateOfBirth" validate:"omitempty,dob"`
	Gender       *string   `json:"gender" validate:"omitempty,oneof=male female other"`
	UserType     *UserType `json:"userType" validate:"omitempty,oneof=customer driver parent student guardian"`
	IsVerified   *bool     `json:"isVerified"`
}

type UserUpdateRequest struct {
	Email        *string   `json:"email" validate:"omitempty,email"`
	PhoneNumber  *string   `json:"phoneNumber" validate:"omitempty,in_mobile"`
	FirstName    *string   `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string   `json:"lastName" validate:"omitempty,min=1,max=100"`
	ProfileImage *string   `json:"profileImage" validate:"omitempty,image_url"`
	DateOfBirth  *string   `json:"dateOfBirth" validate:"omitempty,dob"`
	Gender       *string   `json:"gender" validate:"omitempty,oneof=male female other"`
	UserType     *UserType `json:"userType" validate:"omitempty,oneof=customer driver parent student guardian"`
	IsActive     *bool     `json:"isActive"`
	IsVerified   *bool     `json:"isVerified"`
}

// ===== DRIVERS =====

type DriverCreateRequest struct {
	UserUUID              string  `json:"userUuid" validate:"required,uuid"`
	LicenseNumber         string  `json:"licenseNumber" validate:"required,license_no"`
	LicenseImage          *string `json:"licenseImage" validate:"omitempty,image_url"`
	AadharNumber          string  `json:"aadharNumber" validate:"required,aadhar"`
	AadharImage           *string `json:"aadharImage" validate:"omitempty,image_url"`
	PanNumber             *string `json:"panNumber" validate:"omitempty,pan"`
	PanImage              *string `json:"panImage" validate:"omitempty,image_url"`
	EmergencyContactName  string  `json:"emergencyContactName" validate:"required,max=100"`
	EmergencyContactPhone string  `json:"emergencyContactPhone" validate:"required,in_mobile"`
	BankAccountNumber     *string `json:"bankAccountNumber" validate:"omitempty,numeric,min=9,max=18"`
	BankIFSC              *string `json:"bankIfsc" validate:"omitempty,ifsc"`
	UPIID                 *string `json:"upiId" validate:"omitempty,upi"`
}

// DriverUpdateRequest uses Optional for the clearable banking fields and the
// rejection reason: an explicit null erases the stored value, an absent key
// leaves it alone. Optional fields are format-checked in the service since
// struct tags cannot see through the presence wrapper.
type DriverUpdateRequest struct {
	LicenseNumber         *string                `json:"licenseNumber" validate:"omitempty,license_no"`
	LicenseImage          *string                `json:"licenseImage" validate:"omitempty,image_url"`
	AadharNumber          *string                `json:"aadharNumber" validate:"omitempty,aadhar"`
	AadharImage           *string                `json:"aadharImage" validate:"omitempty,image_url"`
	PanNumber             *string                `json:"panNumber" validate:"omitempty,pan"`
	PanImage              *string                `json:"panImage" validate:"omitempty,image_url"`
	EmergencyContactName  *string                `json:"emergencyContactName" validate:"omitempty,min=1,max=100"`
	EmergencyContactPhone *string                `json:"emergencyContactPhone" validate:"omitempty,in_mobile"`
	BankAccountNumber     Optional[string]       `json:"bankAccountNumber" validate:"-"`
	BankIFSC              Optional[string]       `json:"bankIfsc" validate:"-"`
	UPIID                 Optional[string]       `json:"upiId" validate:"-"`
	BackgroundCheckStatus *BackgroundCheckStatus `json:"backgroundCheckStatus" validate:"omitempty,oneof=pending in_progress approved rejected"`
	Status                *DriverStatus          `json:"status" validate:"omitempty,oneof=pending under_review approved rejected suspended inactive"`
	RejectionReason       Optional[string]       `json:"rejectionReason" validate:"-"`
	Rating                *float64               `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalRides            *int                   `json:"totalRides" validate:"omitempty,gte=0"`
	TotalEarnings         *float64               `json:"totalEarnings" validate:"omitempty,gte=0"`
	IsActive              *bool                  `json:"isActive"`
	IsOnline              *bool                  `json:"isOnline"`
}

// ===== VEHICLES =====

type VehicleCreateRequest struct {
	DriverID            uint        `json:"driverId" validate:"required"`
	VehicleType         VehicleType `json:"vehicleType" validate:"required,oneof=auto car bike bus van"`
	RegistrationNumber  string      `json:"registrationNumber" validate:"required,reg_no"`
	Make                string      `json:"make" validate:"required,max=50"`
	Model               string      `json:"model" validate:"required,max=50"`
	Year                int         `json:"year" validate:"required,gte=1990,lte=2100"`
	Color               string      `json:"color" validate:"required,max=30"`
	Capacity            int         `json:"capacity" validate:"required,gte=1"`
	RCImage             *string     `json:"rcImage" validate:"omitempty,image_url"`
	RCExpiryDate        *string     `json:"rcExpiryDate" validate:"omitempty,date_ymd"`
	InsuranceImage      *string     `json:"insuranceImage" validate:"omitempty,image_url"`
	InsuranceExpiryDate *string     `json:"insuranceExpiryDate" validate:"omitempty,date_ymd"`
	PUCImage            *string     `json:"pucImage" validate:"omitempty,image_url"`
	PUCExpiryDate       *string     `json:"pucExpiryDate" validate:"omitempty,date_ymd"`
	PermitImage         *string     `json:"permitImage" validate:"omitempty,image_url"`
	PermitExpiryDate    *string     `json:"permitExpiryDate" validate:"omitempty,date_ymd"`
	Images              []string    `json:"images" validate:"omitempty,max=10,dive,image_url"`
}

type VehicleUpdateRequest struct {
	VehicleType         *VehicleType        `json:"vehicleType" validate:"omitempty,oneof=auto car bike bus van"`
	RegistrationNumber  *string             `json:"registrationNumber" validate:"omitempty,reg_no"`
	Make                *string             `json:"make" validate:"omitempty,min=1,max=50"`
	Model               *string             `json:"model" validate:"omitempty,min=1,max=50"`
	Year                *int                `json:"year" validate:"omitempty,gte=1990,lte=2100"`
	Color               *string             `json:"color" validate:"omitempty,min=1,max=30"`
	Capacity            *int                `json:"capacity" validate:"omitempty,gte=1"`
	RCImage             *string             `json:"rcImage" validate:"omitempty,image_url"`
	RCExpiryDate        *string             `json:"rcExpiryDate" validate:"omitempty,date_ymd"`
	InsuranceImage      *string             `json:"insuranceImage" validate:"omitempty,image_url"`
	InsuranceExpiryDate *string             `json:"insuranceExpiryDate" validate:"omitempty,date_ymd"`
	PUCImage            *string             `json:"pucImage" validate:"omitempty,image_url"`
	PUCExpiryDate       *string             `json:"pucExpiryDate" validate:"omitempty,date_ymd"`
	PermitImage         *string             `json:"permitImage" validate:"omitempty,image_url"`
	PermitExpiryDate    *string             `json:"permitExpiryDate" validate:"omitempty,date_ymd"`
	Images              []string            `json:"images" validate:"omitempty,max=10,dive,image_url"`
	IsActive            *bool               `json:"isActive"`
	VerificationStatus  *VerificationStatus `json:"verificationStatus" validate:"omitempty,oneof=pending approved rejected"`
}

// ===== SCHOOLS =====

type SchoolCreateRequest struct {
	Code          string     `json:"code" validate:"required,min=3,max=20"`
	Name          string     `json:"name" validate:"required,max=200"`
	Latitude      *float64   `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude     *float64   `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address       string     `json:"address" validate:"required,max=500"`
	City          string     `json:"city" validate:"required,max=100"`
	State         string     `json:"state" validate:"required,max=100"`
	Pincode       string     `json:"pincode" validate:"required,pincode"`
	Phone         *string    `json:"phone" validate:"omitempty,in_mobile"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	PrincipalName *string    `json:"principalName" validate:"omitempty,max=100"`
	SchoolType    SchoolType `json:"schoolType" validate:"required,oneof=government private aided international"`
	BoardType     *BoardType `json:"boardType" validate:"omitempty,oneof=cbse icse state ib igcse"`
	StartTime     string     `json:"startTime" validate:"required,hhmm"`
	EndTime       string     `json:"endTime" validate:"required,hhmm"`
	WorkingDays   []string   `json:"workingDays" validate:"required,min=1,max=7"`
	Holidays      []string   `json:"holidays" validate:"omitempty,dive,date_ymd"`
}

type SchoolUpdateRequest struct {
	Name          *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Latitude      *float64    `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64    `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Address       *string     `json:"address" validate:"omitempty,min=1,max=500"`
	City          *string     `json:"city" validate:"omitempty,min=1,max=100"`
	State         *string     `json:"state" validate:"omitempty,min=1,max=100"`
	Pincode       *string     `json:"pincode" validate:"omitempty,pincode"`
	Phone         *string     `json:"phone" validate:"omitempty,in_mobile"`
	Email         *string     `json:"email" validate:"omitempty,email"`
	PrincipalName *string     `json:"principalName" validate:"omitempty,max=100"`
	SchoolType    *SchoolType `json:"schoolType" validate:"omitempty,oneof=government private aided international"`
	BoardType     *BoardType  `json:"boardType" validate:"omitempty,oneof=cbse icse state ib igcse"`
	StartTime     *string     `json:"startTime" validate:"omitempty,hhmm"`
	EndTime       *string     `json:"endTime" validate:"omitempty,hhmm"`
	WorkingDays   []string    `json:"workingDays" validate:"omitempty,min=1,max=7"`
	Holidays      []string    `json:"holidays" validate:"omitempty,dive,date_ymd"`
	IsActive      *bool       `json:"isActive"`
}
