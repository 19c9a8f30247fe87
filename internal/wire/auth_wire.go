package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// One route per user-visible action of the auth flow. All are public:
	// the flow context, not a session, is what ties the steps together.
	r.Post("/api/auth/continue", authHandler.Continue)
	r.Post("/api/auth/sign-in", authHandler.SignIn)
	r.Post("/api/auth/otp/request", authHandler.RequestOTP)
	r.Post("/api/auth/otp/verify", authHandler.VerifyOTP)
	r.Post("/api/auth/otp/resend", authHandler.ResendOTP)
	r.Post("/api/auth/sign-up", authHandler.SignUp)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)
	r.Post("/api/auth/cancel", authHandler.Cancel)
	r.Get("/api/auth/flow/{flowID}", authHandler.Flow)
}
