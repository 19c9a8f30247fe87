package usecase

import (
	"context"
	"regexp"
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

// AuthFlowService drives the identifier-driven authentication state machine:
// one entry operation per user-visible action, all sharing the pending flow
// context, the OTP challenge protocol, and the resend cooldown.
type AuthFlowService interface {
	Continue(ctx context.Context, req *request.ContinueRequest) (*response.StepResponse, error)
	SignInPassword(ctx context.Context, req *request.SignInRequest) (*response.StepResponse, error)
	RequestOTPLogin(ctx context.Context, req *request.OTPLoginRequest) (*response.StepResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.StepResponse, error)
	ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.StepResponse, error)
	CompleteSignup(ctx context.Context, req *request.SignUpRequest) (*response.StepResponse, error)
	RequestPasswordReset(ctx context.Context, req *request.ForgotPasswordRequest) (*response.StepResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.StepResponse, error)
	Cancel(ctx context.Context, req *request.CancelRequest) error
	Flow(ctx context.Context, flowID string) (*response.StepResponse, error)
}

var otpCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

type authFlowService struct {
	repo     *repository.Repository
	creds    gateway.CredentialGateway
	otp      gateway.OTPGateway
	inflight *inflightGuard
	cooldown time.Duration
	log      *zap.Logger
}

func NewAuthFlowService(
	repo *repository.Repository,
	creds gateway.CredentialGateway,
	otp gateway.OTPGateway,
	guard *inflightGuard,
	config *utils.Config,
	log *zap.Logger,
) AuthFlowService {
	return &authFlowService{
		repo:     repo,
		creds:    creds,
		otp:      otp,
		inflight: guard,
		cooldown: time.Duration(config.OTP.ResendCooldownSeconds) * time.Second,
		log:      log,
	}
}

// Continue routes a submitted identifier: existing accounts go to password
// sign-in, fresh identifiers go to sign-up. No network call happens for an
// identifier that fails classification.
func (s *authFlowService) Continue(ctx context.Context, req *request.ContinueRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	identifier := entity.Classify(req.Identifier)
	if !identifier.Valid() {
		return nil, apperr.Validation("enter a valid email address or mobile number",
			map[string]string{"identifier": "must be an email or a 10-digit mobile number"})
	}

	exists, err := s.creds.ExistenceCheck(ctx, identifier)
	if err != nil {
		s.log.Error("Existence check failed", zap.Error(err),
			zap.String("identifier_kind", string(identifier.Kind)))
		return nil, err
	}

	now := time.Now()
	flow := &entity.PendingAuthContext{
		ID:            uuid.New(),
		Identifier:    identifier,
		AccountExists: exists,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if exists {
		flow.Flow = entity.FlowLogin
		flow.State = entity.StatePasswordEntry
	} else {
		flow.Flow = entity.FlowSignup
		flow.State = entity.StateSignupForm
	}

	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not start sign-in, please try again", err)
	}

	s.log.Info("Identifier routed",
		zap.String("flow_id", flow.ID.String()),
		zap.String("flow", string(flow.Flow)),
		zap.String("identifier_kind", string(identifier.Kind)),
	)

	if exists {
		return s.passwordEntryStep(flow), nil
	}

	return &response.StepResponse{
		FlowID:         flow.ID.String(),
		Next:           response.NextSignUp,
		Flow:           string(flow.Flow),
		Identifier:     identifier.Display(),
		IdentifierKind: string(identifier.Kind),
	}, nil
}

// SignInPassword performs the password path. In an edit-verification flow a
// successful login marks the context verified and returns to the edit screen
// instead of establishing a fresh session.
func (s *authFlowService) SignInPassword(ctx context.Context, req *request.SignInRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	flow, err := s.loadFlow(ctx, req.FlowID, entity.StatePasswordEntry)
	if err != nil {
		return nil, err
	}

	var session *entity.Session
	if flow.Identifier.IsPhone() {
		session, err = s.creds.LoginPhone(ctx, flow.Identifier.Value, req.Password)
	} else {
		session, err = s.creds.LoginEmail(ctx, flow.Identifier.Value, req.Password)
	}
	if err != nil {
		// Stay on the sign-in screen; the upstream message passes through.
		s.log.Warn("Password sign-in failed",
			zap.String("flow_id", flow.ID.String()),
			zap.String("identifier_kind", string(flow.Identifier.Kind)),
		)
		return nil, err
	}

	if flow.IsEdit() {
		return s.finishEditVerification(ctx, flow)
	}

	if err := s.repo.Flow.Delete(ctx, flow.ID); err != nil {
		s.log.Warn("Failed to delete completed flow", zap.Error(err),
			zap.String("flow_id", flow.ID.String()))
	}

	s.log.Info("Customer signed in",
		zap.String("flow_id", flow.ID.String()),
		zap.String("user_id", session.User.ID),
	)

	return &response.StepResponse{
		Next:    response.NextAuthenticated,
		Session: response.SessionToResponse(session),
	}, nil
}

// RequestOTPLogin switches a phone sign-in to the one-time-code path.
func (s *authFlowService) RequestOTPLogin(ctx context.Context, req *request.OTPLoginRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	flow, err := s.loadFlow(ctx, req.FlowID, entity.StatePasswordEntry)
	if err != nil {
		return nil, err
	}

	if !flow.Identifier.IsPhone() {
		return nil, apperr.Validation("one-time code sign-in needs a mobile number",
			map[string]string{"identifier": "not a mobile number"})
	}

	devCode, err := s.issueOTP(ctx, flow.Identifier, entity.PurposeLogin)
	if err != nil {
		// Stay on the sign-in screen.
		return nil, err
	}

	flow.Purpose = entity.PurposeLogin
	flow.State = entity.StateAwaitingOTP
	flow.UpdatedAt = time.Now()

	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}

	return s.awaitingOTPStep(ctx, flow, devCode), nil
}

// VerifyOTP checks the submitted code and branches on the owning flow. A code
// that is not exactly six digits is rejected locally before any network call.
func (s *authFlowService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}
	if !otpCodePattern.MatchString(req.Code) {
		return nil, apperr.Validation("enter the 6-digit code",
			map[string]string{"code": "must be exactly 6 digits"})
	}

	flow, err := s.loadFlow(ctx, req.FlowID, entity.StateAwaitingOTP)
	if err != nil {
		return nil, err
	}

	key := flow.ChallengeKey()
	if !s.inflight.acquire(key) {
		return nil, apperr.New(apperr.KindBusy, "verification already in progress")
	}
	defer s.inflight.release(key)

	// CustomerLogin authenticates in one step; every other purpose verifies
	// first and acts on the returned token.
	if flow.Purpose == entity.PurposeLogin {
		return s.verifyLoginOTP(ctx, flow, req.Code)
	}

	token, err := s.otp.Verify(ctx, flow.Purpose, flow.Identifier, req.Code)
	if err != nil {
		// Stay on the verify screen. Expired codes carry their own kind so
		// the client offers a resend instead of a retype.
		return nil, err
	}

	switch flow.Flow {
	case entity.FlowSignup:
		return s.completeRegistration(ctx, flow, token)

	case entity.FlowReset:
		flow.ResetToken = token
		flow.State = entity.StateResetReady
		flow.UpdatedAt = time.Now()
		if err := s.repo.Flow.Save(ctx, flow); err != nil {
			return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
		}

		return &response.StepResponse{
			FlowID:         flow.ID.String(),
			Next:           response.NextResetPassword,
			Flow:           string(flow.Flow),
			Identifier:     flow.Identifier.Display(),
			IdentifierKind: string(flow.Identifier.Kind),
		}, nil

	default:
		// A login-flow challenge always carries the CustomerLogin purpose,
		// handled above. Anything else here is a stale or tampered context.
		s.log.Warn("OTP verified for unroutable flow",
			zap.String("flow_id", flow.ID.String()),
			zap.String("flow", string(flow.Flow)),
			zap.String("purpose", string(flow.Purpose)),
		)
		return nil, s.missingContext()
	}
}

func (s *authFlowService) verifyLoginOTP(ctx context.Context, flow *entity.PendingAuthContext, code string) (*response.StepResponse, error) {
	session, err := s.creds.LoginWithOTP(ctx, flow.Identifier.Value, code)
	if err != nil {
		return nil, err
	}

	if flow.IsEdit() {
		return s.finishEditVerification(ctx, flow)
	}

	if err := s.repo.Flow.Delete(ctx, flow.ID); err != nil {
		s.log.Warn("Failed to delete completed flow", zap.Error(err),
			zap.String("flow_id", flow.ID.String()))
	}

	s.log.Info("Customer signed in with OTP",
		zap.String("flow_id", flow.ID.String()),
		zap.String("user_id", session.User.ID),
	)

	return &response.StepResponse{
		Next:    response.NextAuthenticated,
		Session: response.SessionToResponse(session),
	}, nil
}

func (s *authFlowService) completeRegistration(ctx context.Context, flow *entity.PendingAuthContext, token string) (*response.StepResponse, error) {
	if flow.Draft == nil {
		s.log.Error("Signup flow reached verification without a draft profile",
			zap.String("flow_id", flow.ID.String()))
		return nil, s.missingContext()
	}

	session, err := s.creds.Register(ctx, token, *flow.Draft)
	if err != nil {
		// The draft is kept and the flow stays in the verify step so the
		// customer can fix the problem and retry without a new code.
		return nil, err
	}

	// The draft holds the plaintext password; drop it the moment the
	// registration call has succeeded.
	flow.Draft = nil
	if err := s.repo.Flow.Delete(ctx, flow.ID); err != nil {
		s.log.Warn("Failed to delete completed flow", zap.Error(err),
			zap.String("flow_id", flow.ID.String()))
	}

	s.log.Info("Registration completed",
		zap.String("flow_id", flow.ID.String()),
		zap.String("user_id", session.User.ID),
	)

	return &response.StepResponse{
		Next:    response.NextAuthenticated,
		Session: response.SessionToResponse(session),
	}, nil
}

// ResendOTP re-requests a code for the same challenge. It is rejected locally
// while the cooldown runs; a failed issue leaves the cooldown untouched so
// the customer may try again immediately.
func (s *authFlowService) ResendOTP(ctx context.Context, req *request.ResendOTPRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	flow, err := s.loadFlow(ctx, req.FlowID, entity.StateAwaitingOTP)
	if err != nil {
		return nil, err
	}

	devCode, err := s.issueOTP(ctx, flow.Identifier, flow.Purpose)
	if err != nil {
		return nil, err
	}

	flow.ResendCount++
	flow.UpdatedAt = time.Now()
	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}

	s.log.Info("OTP resent",
		zap.String("flow_id", flow.ID.String()),
		zap.String("purpose", string(flow.Purpose)),
		zap.Int("resend_count", flow.ResendCount),
	)

	return s.awaitingOTPStep(ctx, flow, devCode), nil
}

// CompleteSignup validates the sign-up form locally, issues a registration
// OTP for the phone, and parks the draft profile in the flow context until
// verification succeeds.
func (s *authFlowService) CompleteSignup(ctx context.Context, req *request.SignUpRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	phone := entity.Classify(req.Phone)
	if !phone.IsPhone() {
		return nil, apperr.Validation("enter a valid mobile number",
			map[string]string{"phone": "must be a 10-digit mobile number"})
	}

	flow, err := s.loadFlow(ctx, req.FlowID, entity.StateSignupForm)
	if err != nil {
		return nil, err
	}

	devCode, err := s.issueOTP(ctx, phone, entity.PurposeRegistration)
	if err != nil {
		return nil, err
	}

	flow.Identifier = phone
	flow.Purpose = entity.PurposeRegistration
	flow.State = entity.StateAwaitingOTP
	flow.Draft = &entity.DraftProfile{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      phone.Value,
		Password:   req.Password,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	flow.UpdatedAt = time.Now()

	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}

	s.log.Info("Signup draft captured",
		zap.String("flow_id", flow.ID.String()),
	)

	return s.awaitingOTPStep(ctx, flow, devCode), nil
}

// RequestPasswordReset is the forgot-password entry point. A number without
// an account is a terminal error here, never a fallthrough to sign-up, and
// no OTP is requested for it.
func (s *authFlowService) RequestPasswordReset(ctx context.Context, req *request.ForgotPasswordRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}

	phone := entity.Classify(req.Phone)
	if !phone.IsPhone() {
		return nil, apperr.Validation("enter a valid mobile number",
			map[string]string{"phone": "must be a 10-digit mobile number"})
	}

	exists, err := s.creds.ExistenceCheck(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.New(apperr.KindNotFound, "no account found for this number, please sign up instead")
	}

	devCode, err := s.issueOTP(ctx, phone, entity.PurposePasswordReset)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	flow := &entity.PendingAuthContext{
		ID:            uuid.New(),
		Flow:          entity.FlowReset,
		State:         entity.StateAwaitingOTP,
		Purpose:       entity.PurposePasswordReset,
		Identifier:    phone,
		AccountExists: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}

	s.log.Info("Password reset requested", zap.String("flow_id", flow.ID.String()))

	return s.awaitingOTPStep(ctx, flow, devCode), nil
}

// ResetPassword submits the new password with the reset token. A rejected
// token destroys the context so the same token is never submitted twice.
func (s *authFlowService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.StepResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("validation failed", errs)
	}
	if req.NewPassword != req.ConfirmPassword {
		return nil, apperr.Validation("passwords do not match",
			map[string]string{"confirm_password": "must match the new password"})
	}

	flow, err := s.loadFlow(ctx, req.FlowID, entity.StateResetReady)
	if err != nil {
		return nil, err
	}
	if flow.ResetToken == "" {
		return nil, s.missingContext()
	}

	if err := s.creds.ResetPassword(ctx, flow.Identifier.Value, req.NewPassword, flow.ResetToken); err != nil {
		if apperr.KindOf(err) == apperr.KindTokenInvalid {
			// The token is burned; the customer must request a fresh reset.
			if delErr := s.repo.Flow.Delete(ctx, flow.ID); delErr != nil {
				s.log.Warn("Failed to delete flow after token rejection",
					zap.Error(delErr), zap.String("flow_id", flow.ID.String()))
			}
		}
		return nil, err
	}

	if err := s.repo.Flow.Delete(ctx, flow.ID); err != nil {
		s.log.Warn("Failed to delete completed flow", zap.Error(err),
			zap.String("flow_id", flow.ID.String()))
	}

	s.log.Info("Password reset completed", zap.String("flow_id", flow.ID.String()))

	return &response.StepResponse{Next: response.NextLogin}, nil
}

// Cancel destroys the pending context for an abandoned flow and releases the
// resend cooldown of its challenge, so a fresh flow is not still throttled by
// one the customer walked away from.
func (s *authFlowService) Cancel(ctx context.Context, req *request.CancelRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation("validation failed", errs)
	}

	id, err := uuid.Parse(req.FlowID)
	if err != nil {
		return apperr.Validation("invalid flow", map[string]string{"flow_id": "must be a valid UUID"})
	}

	flow, err := s.repo.Flow.Find(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}
	if flow == nil {
		return nil
	}

	if flow.Purpose != "" {
		if err := s.repo.Throttle.Clear(ctx, flow.ChallengeKey()); err != nil {
			s.log.Warn("Failed to clear resend cooldown on cancel",
				zap.Error(err), zap.String("flow_id", flow.ID.String()))
		}
	}

	return s.repo.Flow.Delete(ctx, id)
}

// Flow reports the current step for a re-mounted screen. A missing context
// redirects to identifier entry rather than rendering undefined state.
func (s *authFlowService) Flow(ctx context.Context, flowID string) (*response.StepResponse, error) {
	flow, err := s.loadFlow(ctx, flowID)
	if err != nil {
		return nil, err
	}

	switch flow.State {
	case entity.StatePasswordEntry:
		return s.passwordEntryStep(flow), nil
	case entity.StateSignupForm:
		return &response.StepResponse{
			FlowID:         flow.ID.String(),
			Next:           response.NextSignUp,
			Flow:           string(flow.Flow),
			Identifier:     flow.Identifier.Display(),
			IdentifierKind: string(flow.Identifier.Kind),
		}, nil
	case entity.StateAwaitingOTP:
		return s.awaitingOTPStep(ctx, flow, ""), nil
	case entity.StateResetReady:
		return &response.StepResponse{
			FlowID:         flow.ID.String(),
			Next:           response.NextResetPassword,
			Flow:           string(flow.Flow),
			Identifier:     flow.Identifier.Display(),
			IdentifierKind: string(flow.Identifier.Kind),
		}, nil
	default:
		return nil, s.missingContext()
	}
}

// ==================== HELPER METHODS ====================

// loadFlow fetches the pending context and checks it is in one of the states
// the calling operation is legal from. Absent, expired, or out-of-step
// contexts all surface as the redirect-to-start error.
func (s *authFlowService) loadFlow(ctx context.Context, flowID string, states ...entity.FlowState) (*entity.PendingAuthContext, error) {
	id, err := uuid.Parse(flowID)
	if err != nil {
		return nil, s.missingContext()
	}

	flow, err := s.repo.Flow.Find(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}
	if flow == nil {
		return nil, s.missingContext()
	}

	if len(states) == 0 {
		return flow, nil
	}

	for _, state := range states {
		if flow.State == state {
			return flow, nil
		}
	}

	s.log.Warn("Flow entered in wrong state",
		zap.String("flow_id", flow.ID.String()),
		zap.String("state", string(flow.State)),
	)

	return nil, s.missingContext()
}

func (s *authFlowService) missingContext() error {
	return apperr.New(apperr.KindContextMissing, "this step has expired, please start again")
}

// issueOTP runs the cooldown gate and the single-flight guard around one
// issuance. The cooldown restarts only after a successful issue.
func (s *authFlowService) issueOTP(ctx context.Context, identifier entity.Identifier, purpose entity.OtpPurpose) (string, error) {
	key := string(purpose) + ":" + identifier.Value

	remaining, err := s.repo.Throttle.Remaining(ctx, key)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "could not send the code, please try again", err)
	}
	if remaining > 0 {
		return "", apperr.Throttled(remaining)
	}

	if !s.inflight.acquire(key) {
		return "", apperr.New(apperr.KindBusy, "a code is already being sent")
	}
	defer s.inflight.release(key)

	devCode, err := s.otp.Issue(ctx, purpose, identifier)
	if err != nil {
		return "", err
	}

	if err := s.repo.Throttle.Start(ctx, key); err != nil {
		s.log.Warn("Failed to start resend cooldown", zap.Error(err), zap.String("key", key))
	}

	return devCode, nil
}

func (s *authFlowService) passwordEntryStep(flow *entity.PendingAuthContext) *response.StepResponse {
	// Phones get both affordances at once; the customer's last action picks
	// the path.
	affordances := []string{response.AffordancePassword}
	if flow.Identifier.IsPhone() {
		affordances = append(affordances, response.AffordanceOTP)
	}

	return &response.StepResponse{
		FlowID:         flow.ID.String(),
		Next:           response.NextPasswordSignIn,
		Flow:           string(flow.Flow),
		Identifier:     flow.Identifier.Display(),
		IdentifierKind: string(flow.Identifier.Kind),
		Affordances:    affordances,
		EditField:      flow.EditField,
	}
}

func (s *authFlowService) awaitingOTPStep(ctx context.Context, flow *entity.PendingAuthContext, devCode string) *response.StepResponse {
	// Report the live remainder, not the configured window: a re-mounted
	// screen may be partway through the cooldown already.
	resendIn := int(s.cooldown / time.Second)
	if remaining, err := s.repo.Throttle.Remaining(ctx, flow.ChallengeKey()); err == nil {
		resendIn = int((remaining + time.Second - 1) / time.Second)
	}

	return &response.StepResponse{
		FlowID:         flow.ID.String(),
		Next:           response.NextOTPVerify,
		Flow:           string(flow.Flow),
		Identifier:     flow.Identifier.Display(),
		IdentifierKind: string(flow.Identifier.Kind),
		ResendIn:       resendIn,
		ResendCount:    flow.ResendCount,
		DevCode:        devCode,
		EditField:      flow.EditField,
	}
}

// finishEditVerification marks an edit flow verified and hands control back
// to the calling screen. No fresh top-level session is established and the
// edit field rides along untouched.
func (s *authFlowService) finishEditVerification(ctx context.Context, flow *entity.PendingAuthContext) (*response.StepResponse, error) {
	flow.Verified = true
	flow.State = entity.StatePasswordEntry
	flow.UpdatedAt = time.Now()

	if err := s.repo.Flow.Save(ctx, flow); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "could not continue, please try again", err)
	}

	s.log.Info("Edit verification completed",
		zap.String("flow_id", flow.ID.String()),
		zap.String("edit_field", flow.EditField),
	)

	return &response.StepResponse{
		FlowID:    flow.ID.String(),
		Next:      response.NextEditReturn,
		Flow:      string(flow.Flow),
		EditField: flow.EditField,
		Verified:  true,
	}, nil
}
