// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/adaptor"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/repository"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/gateway"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/usecase"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/middleware"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes gateways, services and handlers
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	client := gateway.NewClient(
		config.Upstream.BaseURL,
		time.Duration(config.Upstream.TimeoutSeconds)*time.Second,
		logger,
	)
	creds := gateway.NewCredentialGateway(client, logger)
	otp := gateway.NewOTPGateway(client, config.OTP.DevEcho, logger)

	service := usecase.NewService(repo, creds, otp, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireAccount(r, handler.Profile)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
