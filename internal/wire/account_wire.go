package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/adaptor"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/middleware"
)

func wireAccount(r chi.Router, profileHandler *adaptor.ProfileHandler) {
	// ==================== PROTECTED ROUTES ====================
	// Editing a sensitive field needs a live session on top of the
	// re-verification flow.
	r.With(middleware.Bearer()).Post("/api/account/edit", profileHandler.StartEdit)
	r.With(middleware.Bearer()).Put("/api/account/profile", profileHandler.UpdateProfile)
	r.With(middleware.Bearer()).Put("/api/account/password", profileHandler.ChangePassword)
}
