package adaptor

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/dto/response"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/usecase"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

type Handler struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Profile: NewProfileHandler(service.Profile, log),
	}
}

// respondError maps the closed error taxonomy to HTTP statuses. Anything
// outside the taxonomy is a programming fault and answers 500 generically.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr, ok := apperr.As(err)
	if !ok {
		log.Error("Unclassified error", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		log.Warn(operation+" validation failed", zap.Any("fields", appErr.Fields))
		utils.ResponseBadRequest(w, appErr.Message, fieldsOrNil(appErr.Fields))

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.String("message", appErr.Message))
		utils.ResponseNotFound(w, appErr.Message)

	case apperr.KindOTPInvalid:
		log.Warn(operation + " failed - invalid code")
		utils.ResponseBadRequest(w, appErr.Message, nil)

	case apperr.KindOTPExpired:
		log.Warn(operation + " failed - expired code")
		utils.ResponseGone(w, appErr.Message)

	case apperr.KindCredential:
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, appErr.Message)

	case apperr.KindTokenInvalid:
		log.Warn(operation + " failed - invalid token")
		utils.ResponseGone(w, appErr.Message)

	case apperr.KindThrottled:
		log.Warn(operation+" throttled", zap.Duration("retry_after", appErr.RetryAfter))
		utils.ResponseTooManyRequests(w, appErr.Message, map[string]any{
			"retry_after": int(appErr.RetryAfter / time.Second),
		})

	case apperr.KindContextMissing:
		log.Warn(operation + " failed - missing flow context")
		utils.ResponseConflict(w, appErr.Message, map[string]string{
			"redirect": response.NextIdentifierEntry,
		})

	case apperr.KindBusy:
		log.Warn(operation + " rejected - request in flight")
		utils.ResponseConflict(w, appErr.Message, nil)

	case apperr.KindUpstream:
		log.Error("Failed to "+operation, zap.Error(appErr))
		utils.ResponseBadGateway(w, appErr.Message)

	default:
		log.Error("Unmapped error kind", zap.Error(appErr), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func fieldsOrNil(fields map[string]string) any {
	if len(fields) == 0 {
		return nil
	}
	return fields
}
