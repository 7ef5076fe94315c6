package models

// ScreenState tells the client which screen the sign-in flow should show next
type ScreenState string

const (
	StateOTPRequired      ScreenState = "OTP_REQUIRED"
	StatePasswordRequired ScreenState = "PASSWORD_REQUIRED"
	StateAuthenticated    ScreenState = "AUTHENTICATED"
)

// Screen messages returned alongside states
const (
	MsgOTPSent         = "OTP sent"
	MsgOTPNotValid     = "OTP is not valid"
	MsgEnterPassword   = "enter your password"
	MsgSetPassword     = "set your password"
	MsgLoginSuccessful = "login successful"
)

// SignInput is the request body shared by the sign-in entry points
type SignInput struct {
	MobileNo string `json:"mobile_no"`
	UserType Role   `json:"user_type"`
	OTP      string `json:"otp,omitempty"`
	Password string `json:"password,omitempty"`
}

// AutoSignInput is the request body for token-based auto sign-in
type AutoSignInput struct {
	UserID      string `json:"user_id"`
	UserType    Role   `json:"user_type"`
	AccessToken string `json:"access_token"`
}

// LoginResponse is the outcome of one sign-in flow step
type LoginResponse struct {
	State        ScreenState `json:"state"`
	Message      string      `json:"message,omitempty"`
	AccessToken  string      `json:"access_token,omitempty"`
	ExpiresAt    int64       `json:"expires_at,omitempty"`
	User         *User       `json:"user,omitempty"`
	Entitlements []string    `json:"entitlements,omitempty"`
}
