package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/dto/request"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/usecase"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// StartEdit handles POST /api/account/edit
func (h *ProfileHandler) StartEdit(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.StartEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.StartEdit(r.Context(), token, &req)
	if err != nil {
		respondError(w, h.log, err, "start edit")
		return
	}

	utils.ResponseSuccess(w, "Verify your identity to continue", step)
}

// UpdateProfile handles PUT /api/account/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.UpdateProfile(r.Context(), token, &req)
	if err != nil {
		respondError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", step)
}

// ChangePassword handles PUT /api/account/password
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	step, err := h.service.ChangePassword(r.Context(), token, &req)
	if err != nil {
		respondError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password changed", step)
}
