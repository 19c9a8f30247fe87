package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

// OTPGateway is the OTP channel: it asks the backend to issue a one-time code
// for a (purpose, identifier) pair and verifies a submitted code against the
// pending challenge. Verify returns the short-lived follow-up token for
// purposes that need a second call (registration, password reset).
type OTPGateway interface {
	Issue(ctx context.Context, purpose entity.OtpPurpose, identifier entity.Identifier) (devCode string, err error)
	Verify(ctx context.Context, purpose entity.OtpPurpose, identifier entity.Identifier, code string) (token string, err error)
}

type otpGateway struct {
	client *Client
	// echoDevCode is the explicit capability flag for environments without
	// SMS delivery. When false the dev code is dropped no matter what the
	// upstream response carries.
	echoDevCode bool
	log         *zap.Logger
}

func NewOTPGateway(client *Client, echoDevCode bool, log *zap.Logger) OTPGateway {
	return &otpGateway{
		client:      client,
		echoDevCode: echoDevCode,
		log:         log.With(zap.String("gateway", "otp")),
	}
}

type otpIssueRequest struct {
	Purpose    string `json:"purpose"`
	Identifier string `json:"identifier"`
}

type otpIssueResponse struct {
	envelope
	DevCode string `json:"devCode,omitempty"`
}

type otpVerifyRequest struct {
	Purpose    string `json:"purpose"`
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

type otpVerifyResponse struct {
	envelope
	Token string `json:"token,omitempty"`
}

func (g *otpGateway) Issue(ctx context.Context, purpose entity.OtpPurpose, identifier entity.Identifier) (string, error) {
	req := otpIssueRequest{
		Purpose:    string(purpose),
		Identifier: identifier.Value,
	}

	var resp otpIssueResponse
	if err := g.client.do(ctx, http.MethodPost, "/otp/issue", "", req, &resp); err != nil {
		return "", g.classifyIssueError(err, purpose)
	}

	g.log.Info("OTP issued",
		zap.String("purpose", string(purpose)),
		zap.String("identifier_kind", string(identifier.Kind)),
	)

	if !g.echoDevCode {
		return "", nil
	}

	return resp.DevCode, nil
}

func (g *otpGateway) Verify(ctx context.Context, purpose entity.OtpPurpose, identifier entity.Identifier, code string) (string, error) {
	req := otpVerifyRequest{
		Purpose:    string(purpose),
		Identifier: identifier.Value,
		Code:       code,
	}

	var resp otpVerifyResponse
	if err := g.client.do(ctx, http.MethodPost, "/otp/verify", "", req, &resp); err != nil {
		return "", classifyVerifyError(err)
	}

	return resp.Token, nil
}

func (g *otpGateway) classifyIssueError(err error, purpose entity.OtpPurpose) error {
	var api *apiError
	if !errors.As(err, &api) {
		return err
	}

	switch {
	case api.status == http.StatusTooManyRequests:
		return apperr.Wrap(apperr.KindThrottled, api.message, api)
	case api.status == http.StatusNotFound:
		return apperr.Wrap(apperr.KindNotFound, api.message, api)
	default:
		g.log.Warn("OTP issue rejected",
			zap.String("purpose", string(purpose)),
			zap.Int("status", api.status),
		)
		return apperr.Wrap(apperr.KindValidation, api.message, api)
	}
}

// classifyVerifyError distinguishes an expired challenge (resend it) from a
// mismatched code (retype it).
func classifyVerifyError(err error) error {
	var api *apiError
	if !errors.As(err, &api) {
		return err
	}

	expired := api.status == http.StatusGone ||
		api.status == http.StatusNotFound ||
		strings.Contains(strings.ToLower(api.message), "expired")
	if expired {
		return apperr.Wrap(apperr.KindOTPExpired, "verification code expired, please request a new one", api)
	}

	return apperr.Wrap(apperr.KindOTPInvalid, "invalid verification code", api)
}
