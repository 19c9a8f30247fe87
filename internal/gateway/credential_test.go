package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

func TestCredentialGateway_ExistenceCheck(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/existence-check", r.URL.Path)
		assert.Equal(t, "9952699123", r.URL.Query().Get("identifier"))

		json.NewEncoder(w).Encode(existenceResponse{Exists: true})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	exists, err := g.ExistenceCheck(context.Background(), entity.Classify("+91 9952699123"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCredentialGateway_ExistenceCheck_RejectionIsUpstream(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(envelope{Message: "bad identifier"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	_, err := g.ExistenceCheck(context.Background(), entity.Classify("a@b.com"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestCredentialGateway_LoginPhone(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		jsonBody(t, r, &body)
		assert.Equal(t, "9952699123", body["phone"])
		assert.Equal(t, "hunter22", body["password"])

		json.NewEncoder(w).Encode(sessionResponse{
			envelope:    envelope{OK: true},
			User:        entity.User{ID: "u1", Name: "Priya"},
			AccessToken: "at-1",
		})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	sess, err := g.LoginPhone(context.Background(), "9952699123", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "at-1", sess.AccessToken)
	assert.Equal(t, "u1", sess.User.ID)
}

func TestCredentialGateway_Login_BadPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(envelope{Message: "invalid credentials"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	_, err := g.LoginEmail(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperr.KindCredential, apperr.KindOf(err))

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid credentials", appErr.Message, "upstream login message passes through")
}

func TestCredentialGateway_LoginWithOTP_Expired(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login-with-otp", r.URL.Path)
		w.WriteHeader(http.StatusGone)
		json.NewEncoder(w).Encode(envelope{Message: "challenge gone"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	_, err := g.LoginWithOTP(context.Background(), "9952699123", "123456")
	require.Error(t, err)
	assert.Equal(t, apperr.KindOTPExpired, apperr.KindOf(err))
}

func TestCredentialGateway_Register(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)

		var body registerRequest
		jsonBody(t, r, &body)
		assert.Equal(t, "tok-1", body.Token)
		assert.Equal(t, "Priya", body.Name)
		assert.Equal(t, "9952699123", body.Phone)

		json.NewEncoder(w).Encode(sessionResponse{
			envelope:    envelope{OK: true},
			User:        entity.User{ID: "u2", Name: "Priya"},
			AccessToken: "at-2",
		})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	sess, err := g.Register(context.Background(), "tok-1", entity.DraftProfile{
		Name:     "Priya",
		Email:    "priya@example.com",
		Phone:    "9952699123",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "at-2", sess.AccessToken)
}

func TestCredentialGateway_Register_TokenRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(envelope{Message: "verification token invalid"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	_, err := g.Register(context.Background(), "stale", entity.DraftProfile{Phone: "9952699123"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindTokenInvalid, apperr.KindOf(err))
}

func TestCredentialGateway_Register_FormRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(envelope{Message: "email already registered"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	_, err := g.Register(context.Background(), "tok-1", entity.DraftProfile{Phone: "9952699123"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	appErr, _ := apperr.As(err)
	assert.Equal(t, "email already registered", appErr.Message)
}

func TestCredentialGateway_UpdateProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/update-profile", r.URL.Path)
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))

		var body map[string]string
		jsonBody(t, r, &body)
		assert.Equal(t, "New Name", body["name"])

		json.NewEncoder(w).Encode(envelope{OK: true})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	err := g.UpdateProfile(context.Background(), "at-1", map[string]string{"name": "New Name"})
	require.NoError(t, err)
}

func TestCredentialGateway_UpdateProfile_SessionExpired(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(envelope{Message: "unauthorized"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	err := g.UpdateProfile(context.Background(), "stale", map[string]string{"name": "x"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindTokenInvalid, apperr.KindOf(err))
}

func TestCredentialGateway_ResetPassword_TokenRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reset-password", r.URL.Path)
		w.WriteHeader(http.StatusGone)
		json.NewEncoder(w).Encode(envelope{Message: "reset token consumed"})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	err := g.ResetPassword(context.Background(), "9952699123", "newpass1", "stale")
	require.Error(t, err)
	assert.Equal(t, apperr.KindTokenInvalid, apperr.KindOf(err))
}

func TestCredentialGateway_ResetPassword(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body resetPasswordRequest
		jsonBody(t, r, &body)
		assert.Equal(t, "9952699123", body.Phone)
		assert.Equal(t, "newpass1", body.NewPassword)
		assert.Equal(t, "tok-9", body.Token)

		json.NewEncoder(w).Encode(envelope{OK: true})
	}))

	g := NewCredentialGateway(client, zap.NewNop())
	err := g.ResetPassword(context.Background(), "9952699123", "newpass1", "tok-9")
	require.NoError(t, err)
}
