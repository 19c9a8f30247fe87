package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func jsonBody(t *testing.T, r *http.Request, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(out))
}

func TestOTPGateway_Issue_DevEchoEnabled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/otp/issue", r.URL.Path)

		var req otpIssueRequest
		jsonBody(t, r, &req)
		assert.Equal(t, "customer_registration", req.Purpose)
		assert.Equal(t, "9876543210", req.Identifier)

		json.NewEncoder(w).Encode(otpIssueResponse{
			envelope: envelope{OK: true},
			DevCode:  "482913",
		})
	}))

	g := NewOTPGateway(client, true, zap.NewNop())
	code, err := g.Issue(context.Background(), entity.PurposeRegistration, entity.Classify("9876543210"))
	require.NoError(t, err)
	assert.Equal(t, "482913", code)
}

func TestOTPGateway_Issue_DevEchoDisabled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(otpIssueResponse{
			envelope: envelope{OK: true},
			DevCode:  "482913",
		})
	}))

	g := NewOTPGateway(client, false, zap.NewNop())
	code, err := g.Issue(context.Background(), entity.PurposeLogin, entity.Classify("9876543210"))
	require.NoError(t, err)
	assert.Empty(t, code, "dev code must never escape when echo is off")
}

func TestOTPGateway_Issue_Throttled(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(envelope{Message: "too many requests"})
	}))

	g := NewOTPGateway(client, false, zap.NewNop())
	_, err := g.Issue(context.Background(), entity.PurposeLogin, entity.Classify("9876543210"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindThrottled, apperr.KindOf(err))
}

func TestOTPGateway_Issue_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	g := NewOTPGateway(client, false, zap.NewNop())
	_, err := g.Issue(context.Background(), entity.PurposeLogin, entity.Classify("9876543210"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestOTPGateway_Verify_ReturnsToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/otp/verify", r.URL.Path)

		var req otpVerifyRequest
		jsonBody(t, r, &req)
		assert.Equal(t, "123456", req.Code)

		json.NewEncoder(w).Encode(otpVerifyResponse{
			envelope: envelope{OK: true},
			Token:    "tok-1",
		})
	}))

	g := NewOTPGateway(client, false, zap.NewNop())
	token, err := g.Verify(context.Background(), entity.PurposePasswordReset, entity.Classify("9876543210"), "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestOTPGateway_Verify_WrongCode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(envelope{Message: "code mismatch"})
	}))

	g := NewOTPGateway(client, false, zap.NewNop())
	_, err := g.Verify(context.Background(), entity.PurposeLogin, entity.Classify("9876543210"), "000000")
	require.Error(t, err)
	assert.Equal(t, apperr.KindOTPInvalid, apperr.KindOf(err))
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid verification code", appErr.Message)
}

func TestOTPGateway_Verify_Expired(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		message string
	}{
		{"gone status", http.StatusGone, "challenge gone"},
		{"not found status", http.StatusNotFound, "no pending challenge"},
		{"expired in message", http.StatusBadRequest, "OTP expired"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(envelope{Message: tc.message})
			}))

			g := NewOTPGateway(client, false, zap.NewNop())
			_, err := g.Verify(context.Background(), entity.PurposeLogin, entity.Classify("9876543210"), "123456")
			require.Error(t, err)
			assert.Equal(t, apperr.KindOTPExpired, apperr.KindOf(err))
		})
	}
}
