package request

// StartEditRequest opens an identity re-verification flow before a sensitive
// profile field may change.
type StartEditRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Field      string `json:"field" validate:"required,oneof=name email phone password"`
}

// UpdateProfileRequest applies the edited field once the flow is verified.
// Only the fields being changed are set.
type UpdateProfileRequest struct {
	FlowID     string `json:"flow_id" validate:"required,uuid"`
	Name       string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty" validate:"omitempty,max=255"`
	City       string `json:"city,omitempty" validate:"omitempty,max=100"`
	State      string `json:"state,omitempty" validate:"omitempty,max=100"`
	Country    string `json:"country,omitempty" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
}

type ChangePasswordRequest struct {
	FlowID          string `json:"flow_id" validate:"required,uuid"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
