package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/dto/request"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/usecase"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

type AuthHandler struct {
	service usecase.AuthFlowService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthFlowService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Continue handles POST /api/auth/continue
func (h *AuthHandler) Continue(w http.ResponseWriter, r *http.Request) {
	var req request.ContinueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.Continue(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "continue")
		return
	}

	utils.ResponseSuccess(w, "Continue", step)
}

// SignIn handles POST /api/auth/sign-in
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.SignInPassword(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, "Signed in successfully", step)
}

// RequestOTP handles POST /api/auth/otp/request
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req request.OTPLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.RequestOTPLogin(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "request OTP")
		return
	}

	utils.ResponseSuccess(w, "Code sent", step)
}

// VerifyOTP handles POST /api/auth/otp/verify
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "Code verified", step)
}

// ResendOTP handles POST /api/auth/otp/resend
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.ResendOTP(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "resend OTP")
		return
	}

	utils.ResponseSuccess(w, "Code sent again", step)
}

// SignUp handles POST /api/auth/sign-up
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.CompleteSignup(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "sign up")
		return
	}

	utils.ResponseSuccess(w, "Verify the code sent to your number", step)
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.RequestPasswordReset(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, "Verify the code sent to your number", step)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.ResetPassword(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully, please sign in", step)
}

// Cancel handles POST /api/auth/cancel
func (h *AuthHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req request.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), &req); err != nil {
		respondError(w, h.log, err, "cancel")
		return
	}

	utils.ResponseSuccess(w, "Cancelled", nil)
}

// Flow handles GET /api/auth/flow/{flowID}
func (h *AuthHandler) Flow(w http.ResponseWriter, r *http.Request) {
	flowID := chi.URLParam(r, "flowID")

	step, err := h.service.Flow(r.Context(), flowID)
	if err != nil {
		respondError(w, h.log, err, "flow lookup")
		return
	}

	utils.ResponseSuccess(w, "Flow state", step)
}
