package response

import (
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

// Navigation targets the client routes to after each step.
const (
	NextIdentifierEntry = "identifier-entry"
	NextPasswordSignIn  = "password-sign-in"
	NextOTPVerify       = "otp-verify"
	NextSignUp          = "sign-up"
	NextResetPassword   = "reset-password"
	NextAuthenticated   = "authenticated"
	NextEditReturn      = "edit-return"
	NextLogin           = "login"
	NextProfile         = "profile"
)

// Affordances offered on the password-sign-in screen.
const (
	AffordancePassword = "password"
	AffordanceOTP      = "otp"
)

// StepResponse describes where the client goes next and the flow state it
// needs to render that screen.
type StepResponse struct {
	FlowID         string           `json:"flow_id,omitempty"`
	Next           string           `json:"next"`
	Flow           string           `json:"flow,omitempty"`
	Identifier     string           `json:"identifier,omitempty"`
	IdentifierKind string           `json:"identifier_kind,omitempty"`
	Affordances    []string         `json:"affordances,omitempty"`
	ResendIn       int              `json:"resend_in,omitempty"`
	ResendCount    int              `json:"resend_count,omitempty"`
	DevCode        string           `json:"dev_code,omitempty"`
	EditField      string           `json:"edit_field,omitempty"`
	Verified       bool             `json:"verified,omitempty"`
	Session        *SessionResponse `json:"session,omitempty"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Helper converters

func UserToResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Address:    user.Address,
		City:       user.City,
		State:      user.State,
		Country:    user.Country,
		PostalCode: user.PostalCode,
	}
}

func SessionToResponse(session *entity.Session) *SessionResponse {
	if session == nil {
		return nil
	}

	return &SessionResponse{
		AccessToken: session.AccessToken,
		User:        UserToResponse(session.User),
	}
}
