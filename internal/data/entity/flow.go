package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlowName string

const (
	FlowLogin  FlowName = "login"
	FlowSignup FlowName = "signup"
	FlowReset  FlowName = "reset"
	FlowEdit   FlowName = "edit"
)

// OtpPurpose binds an OTP challenge to the backend workflow it unlocks.
type OtpPurpose string

const (
	PurposeRegistration  OtpPurpose = "customer_registration"
	PurposePasswordReset OtpPurpose = "password_reset"
	PurposeLogin         OtpPurpose = "customer_login"
)

type FlowState string

const (
	StatePasswordEntry FlowState = "password_entry"
	StateSignupForm    FlowState = "signup_form"
	StateAwaitingOTP   FlowState = "awaiting_otp"
	StateResetReady    FlowState = "reset_ready"
)

// DraftProfile is the full registration payload captured on the sign-up form.
// It holds the plaintext password until the registration call and must be
// dropped from the flow context immediately after a successful registration.
type DraftProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// PendingAuthContext carries one flow attempt's state between asynchronous
// steps. It is keyed by ID, written by exactly one live screen at a time, and
// destroyed on completion, cancel, or TTL expiry.
type PendingAuthContext struct {
	ID            uuid.UUID     `json:"id"`
	Flow          FlowName      `json:"flow"`
	State         FlowState     `json:"state"`
	Purpose       OtpPurpose    `json:"purpose,omitempty"`
	Identifier    Identifier    `json:"identifier"`
	AccountExists bool          `json:"account_exists"`
	EditField     string        `json:"edit_field,omitempty"`
	Draft         *DraftProfile `json:"draft,omitempty"`
	ResetToken    string        `json:"reset_token,omitempty"`
	ResendCount   int           `json:"resend_count"`
	Verified      bool          `json:"verified"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ChallengeKey identifies the OTP challenge this context is waiting on.
// The resend throttle and the in-flight guard both key on it.
func (c *PendingAuthContext) ChallengeKey() string {
	return string(c.Purpose) + ":" + c.Identifier.Value
}

// IsEdit reports whether this flow re-verifies identity for editing a
// sensitive field instead of establishing a fresh session.
func (c *PendingAuthContext) IsEdit() bool {
	return c.Flow == FlowEdit && c.EditField != ""
}
