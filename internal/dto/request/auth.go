package request

// ContinueRequest starts a flow from the identifier-entry screen.
type ContinueRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
}

type SignInRequest struct {
	FlowID   string `json:"flow_id" validate:"required,uuid"`
	Password string `json:"password" validate:"required"`
}

// OTPLoginRequest asks for a login code instead of a password (phones only).
type OTPLoginRequest struct {
	FlowID string `json:"flow_id" validate:"required,uuid"`
}

type VerifyOTPRequest struct {
	FlowID string `json:"flow_id" validate:"required,uuid"`
	Code   string `json:"code" validate:"required,len=6,numeric"`
}

type ResendOTPRequest struct {
	FlowID string `json:"flow_id" validate:"required,uuid"`
}

type SignUpRequest struct {
	FlowID     string `json:"flow_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	Address    string `json:"address,omitempty" validate:"omitempty,max=255"`
	City       string `json:"city,omitempty" validate:"omitempty,max=100"`
	State      string `json:"state,omitempty" validate:"omitempty,max=100"`
	Country    string `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
}

type ForgotPasswordRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type ResetPasswordRequest struct {
	FlowID          string `json:"flow_id" validate:"required,uuid"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type CancelRequest struct {
	FlowID string `json:"flow_id" validate:"required,uuid"`
}
