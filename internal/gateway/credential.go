package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

// CredentialGateway wraps the account store's credential operations. Each
// method returns a session or plain success; failures come back classified
// into the apperr taxonomy with the upstream message preserved where it is
// safe to show (credential and form errors).
type CredentialGateway interface {
	ExistenceCheck(ctx context.Context, identifier entity.Identifier) (bool, error)
	LoginEmail(ctx context.Context, email, password string) (*entity.Session, error)
	LoginPhone(ctx context.Context, phone, password string) (*entity.Session, error)
	LoginWithOTP(ctx context.Context, phone, code string) (*entity.Session, error)
	Register(ctx context.Context, token string, draft entity.DraftProfile) (*entity.Session, error)
	UpdateProfile(ctx context.Context, bearer string, fields map[string]string) error
	ResetPassword(ctx context.Context, phone, newPassword, token string) error
}

type credentialGateway struct {
	client *Client
	log    *zap.Logger
}

func NewCredentialGateway(client *Client, log *zap.Logger) CredentialGateway {
	return &credentialGateway{
		client: client,
		log:    log.With(zap.String("gateway", "credential")),
	}
}

type existenceResponse struct {
	Exists bool `json:"exists"`
}

type sessionResponse struct {
	envelope
	User        entity.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

type registerRequest struct {
	Token      string `json:"token"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type resetPasswordRequest struct {
	Phone       string `json:"phone"`
	NewPassword string `json:"newPassword"`
	Token       string `json:"token"`
}

func (g *credentialGateway) ExistenceCheck(ctx context.Context, identifier entity.Identifier) (bool, error) {
	path := "/existence-check?identifier=" + url.QueryEscape(identifier.Value)

	var resp existenceResponse
	if err := g.client.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		var api *apiError
		if errors.As(err, &api) {
			// The lookup endpoint answers with the exists flag; any rejection
			// here is an upstream fault, not an account state.
			return false, apperr.Wrap(apperr.KindUpstream, upstreamUnavailableMsg, api)
		}
		return false, err
	}

	return resp.Exists, nil
}

func (g *credentialGateway) LoginEmail(ctx context.Context, email, password string) (*entity.Session, error) {
	body := map[string]string{"email": email, "password": password}
	return g.login(ctx, body)
}

func (g *credentialGateway) LoginPhone(ctx context.Context, phone, password string) (*entity.Session, error) {
	body := map[string]string{"phone": phone, "password": password}
	return g.login(ctx, body)
}

func (g *credentialGateway) login(ctx context.Context, body map[string]string) (*entity.Session, error) {
	var resp sessionResponse
	if err := g.client.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		var api *apiError
		if errors.As(err, &api) {
			// Upstream already answers with a non-enumerating message.
			return nil, apperr.Wrap(apperr.KindCredential, api.message, api)
		}
		return nil, err
	}

	return &entity.Session{AccessToken: resp.AccessToken, User: resp.User}, nil
}

func (g *credentialGateway) LoginWithOTP(ctx context.Context, phone, code string) (*entity.Session, error) {
	body := map[string]string{"phone": phone, "code": code}

	var resp sessionResponse
	if err := g.client.do(ctx, http.MethodPost, "/login-with-otp", "", body, &resp); err != nil {
		return nil, classifyVerifyError(err)
	}

	return &entity.Session{AccessToken: resp.AccessToken, User: resp.User}, nil
}

func (g *credentialGateway) Register(ctx context.Context, token string, draft entity.DraftProfile) (*entity.Session, error) {
	body := registerRequest{
		Token:      token,
		Name:       draft.Name,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Password:   draft.Password,
		Address:    draft.Address,
		City:       draft.City,
		State:      draft.State,
		Country:    draft.Country,
		PostalCode: draft.PostalCode,
	}

	var resp sessionResponse
	if err := g.client.do(ctx, http.MethodPost, "/register", "", body, &resp); err != nil {
		var api *apiError
		if errors.As(err, &api) {
			if isTokenRejection(api) {
				return nil, apperr.Wrap(apperr.KindTokenInvalid, "verification no longer valid, please verify again", api)
			}
			return nil, apperr.Wrap(apperr.KindValidation, api.message, api)
		}
		return nil, err
	}

	g.log.Info("Customer registered", zap.String("user_id", resp.User.ID))

	return &entity.Session{AccessToken: resp.AccessToken, User: resp.User}, nil
}

func (g *credentialGateway) UpdateProfile(ctx context.Context, bearer string, fields map[string]string) error {
	if err := g.client.do(ctx, http.MethodPut, "/update-profile", bearer, fields, nil); err != nil {
		var api *apiError
		if errors.As(err, &api) {
			if api.status == http.StatusUnauthorized {
				return apperr.Wrap(apperr.KindTokenInvalid, "session expired, please sign in again", api)
			}
			return apperr.Wrap(apperr.KindValidation, api.message, api)
		}
		return err
	}

	return nil
}

func (g *credentialGateway) ResetPassword(ctx context.Context, phone, newPassword, token string) error {
	body := resetPasswordRequest{Phone: phone, NewPassword: newPassword, Token: token}

	if err := g.client.do(ctx, http.MethodPost, "/reset-password", "", body, nil); err != nil {
		var api *apiError
		if errors.As(err, &api) {
			if isTokenRejection(api) {
				return apperr.Wrap(apperr.KindTokenInvalid, "reset link expired, please request a new one", api)
			}
			return apperr.Wrap(apperr.KindValidation, api.message, api)
		}
		return err
	}

	return nil
}

func isTokenRejection(api *apiError) bool {
	if api.status == http.StatusUnauthorized || api.status == http.StatusGone {
		return true
	}
	msg := strings.ToLower(api.message)
	return strings.Contains(msg, "token")
}
