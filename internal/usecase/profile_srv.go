package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/repository"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/dto/request"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/dto/response"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/gateway"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

// ProfileService covers the authenticated side of the flow: opening an
// edit-verification flow for a sensitive field, applying the edit once the
// flow is verified, and the sibling change-password action.
type ProfileService interface {
	StartEdit(ctx context.Context, bearer string, req *request.StartEditRequest) (*response.StepResponse, error)
	UpdateProfile(ctx context.Context, bearer string, req *request.UpdateProfileRequest) (*response.StepResponse, error)
	ChangePassword(ctx context.Context, bearer string, req *request.ChangePasswordRequest) (*response.StepResponse, error)
}

type profileService struct {
	repo  *repository.Repository
	creds gateway.CredentialGateway
	log   *zap.Logger
}

func NewProfileService(
	repo *repository.Repository,
	creds gateway.CredentialGateway,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		repo:  repo,
		creds: creds,
		log:   log,
	}
}

// StartEdit mints an edit flow that re-enters the sign-in step carrying the
// field tag. The tag must survive every transition until the edit lands.
func (s *profileService) StartEdit(ctx context.Context, _ string, req *request.StartEditRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	identifier := entity.Classify(req.Identifier)
	if !identifier.Valid() {
		return nil, apperr.Validation("enter a valid email address or mobile number",
			map[string]string{"identifier": "must be an email or a 10-digit mobile number"})
	}

	now := time.Now()
	flow := &entity.PendingAuthContext{
		ID:            uuid.New(),
		Flow:          entity.FlowEdit,
		State:         entity.StatePasswordEntry,
		Identifier:    identifier,
		AccountExists: true,
		EditField:     req.Field,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not start verification, please try again", err)
	}

	s.log.Info("Edit verification started",
		zap.String("flow_id", flow.ID.String()),
		zap.String("edit_field", req.Field),
	)

	affordances := []string{response.AffordancePassword}
	if identifier.IsPhone() {
		affordances = append(affordances, response.AffordanceOTP)
	}

	return &response.StepResponse{
		FlowID:         flow.ID.String(),
		Next:           response.NextPasswordSignIn,
		Flow:           string(flow.Flow),
		Identifier:     identifier.Display(),
		IdentifierKind: string(identifier.Kind),
		Affordances:    affordances,
		EditField:      req.Field,
	}, nil
}

// UpdateProfile applies the edited fields once identity has been re-verified.
func (s *profileService) UpdateProfile(ctx context.Context, bearer string, req *request.UpdateProfileRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	flow, err := s.loadVerifiedEdit(ctx, req.FlowID)
	if err != nil {
		return nil, err
	}
	if flow.EditField == "password" {
		return nil, apperr.Validation("use the change-password action for passwords", nil)
	}

	fields := profileFields(req)
	if _, ok := fields[flow.EditField]; !ok {
		return nil, apperr.Validation("the verified field is missing from the update",
			map[string]string{flow.EditField: "required"})
	}

	if phone, ok := fields["phone"]; ok {
		normalized := entity.Classify(phone)
		if !normalized.IsPhone() {
			return nil, apperr.Validation("enter a valid mobile number",
				map[string]string{"phone": "must be a 10-digit mobile number"})
		}
		fields["phone"] = normalized.Value
	}

	if err := s.creds.UpdateProfile(ctx, bearer, fields); err != nil {
		return nil, err
	}

	if err := s.repo.Flow.Delete(ctx, flow.ID); err != nil {
		s.log.Warn("Failed to delete completed edit flow", zap.Error(err),
			zap.String("flow_id", flow.ID.String()))
	}

	s.log.Info("Profile updated",
		zap.String("flow_id", flow.ID.String()),
		zap.String("edit_field", flow.EditField),
	)

	return &response.StepResponse{
		Next:      response.NextProfile,
		EditField: flow.EditField,
	}, nil
}

// ChangePassword is the authenticated sibling of the reset action: no reset
// token, current session credentials, reached through a password
// re-verification with the password edit tag.
func (s *profileService) ChangePassword(ctx context.Context, bearer string, req *request.ChangePasswordRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}
	if req.NewPassword != req.ConfirmPassword {
		return nil, apperr.Validation("passwords do not match",
			map[string]string{"confirm_password": "must match the new password"})
	}

	flow, err := s.loadVerifiedEdit(ctx, req.FlowID)
	if err != nil {
		return nil, err
	}
	if flow.EditField != "password" {
		return nil, apperr.New(apperr.KindContextMissing, "verification does not cover the password, please start again")
	}

	if err := s.creds.UpdateProfile(ctx, bearer, map[string]string{"password": req.NewPassword}); err != nil {
		return nil, err
	}

	if err := s.repo.Flow.Delete(ctx, flow.ID); err != nil {
		s.log.Warn("Failed to delete completed edit flow", zap.Error(err),
			zap.String("flow_id", flow.ID.String()))
	}

	s.log.Info("Password changed", zap.String("flow_id", flow.ID.String()))

	return &response.StepResponse{Next: response.NextProfile}, nil
}

func (s *profileService) loadVerifiedEdit(ctx context.Context, flowID string) (*entity.PendingAuthContext, error) {
	id, err := uuid.Parse(flowID)
	if err != nil {
		return nil, apperr.New(apperr.KindContextMissing, "this step has expired, please start again")
	}

	flow, err := s.repo.Flow.Find(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}
	if flow == nil || !flow.IsEdit() {
		return nil, apperr.New(apperr.KindContextMissing, "this step has expired, please start again")
	}
	if !flow.Verified {
		return nil, apperr.New(apperr.KindContextMissing, "identity verification required, please verify first")
	}

	return flow, nil
}

func profileFields(req *request.UpdateProfileRequest) map[string]string {
	fields := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	set("name", req.Name)
	set("email", req.Email)
	set("phone", req.Phone)
	set("address", req.Address)
	set("city", req.City)
	set("state", req.State)
	set("country", req.Country)
	set("postalCode", req.PostalCode)

	return fields
}
