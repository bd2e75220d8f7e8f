package models

// Provider is the identity provider a profile was created with.
type Provider string

const (
	ProviderEmail    Provider = "Email"
	ProviderGoogle   Provider = "Google"
	ProviderFacebook Provider = "Facebook"
)

// Device is the client platform a profile request originated from. It
// controls which verification links the users service sends out.
type Device string

const (
	DeviceWeb     Device = "WEB"
	DeviceIOS     Device = "IOS"
	DeviceAndroid Device = "ANDROID"
)

// Gender as stored by the users service.
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderUndefined Gender = "Undefined"
)

// NewIdentity is the credential part of a profile creation request.
type NewIdentity struct {
	Email    string   `json:"email"`
	Password *string  `json:"password,omitempty"`
	Provider Provider `json:"provider"`
	SagaID   SagaID   `json:"saga_id"`
}

// NewUser is the optional profile part of a profile creation request.
type NewUser struct {
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	Gender     *Gender `json:"gender,omitempty"`
	Birthdate  *string `json:"birthdate,omitempty"`
	SagaID     SagaID  `json:"saga_id"`
}

// SagaCreateProfile is the ingress body of the account creation workflow.
type SagaCreateProfile struct {
	User     *NewUser    `json:"user,omitempty"`
	Identity NewIdentity `json:"identity"`
	Device   *Device     `json:"device,omitempty"`
}

// CreateUser is what the users service receives. The saga id is stamped
// by the coordinator before sending.
type CreateUser struct {
	Identity NewIdentity `json:"identity"`
	User     *NewUser    `json:"user,omitempty"`
	Device   *Device     `json:"device,omitempty"`
}

// User as returned by the users service.
type User struct {
	ID            UserID  `json:"id"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	MiddleName    *string `json:"middle_name,omitempty"`
	Gender        *Gender `json:"gender,omitempty"`
	Birthdate     *string `json:"birthdate,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
	IsActive      bool    `json:"is_active"`
	IsBlocked     bool    `json:"is_blocked"`
	EmailVerified bool    `json:"email_verified"`
	SagaID        SagaID  `json:"saga_id"`
}
