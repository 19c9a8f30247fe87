package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/apperr"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.New(apperr.KindValidation, "bad input"), http.StatusBadRequest},
		{"not found", apperr.New(apperr.KindNotFound, "no account"), http.StatusNotFound},
		{"otp invalid", apperr.New(apperr.KindOTPInvalid, "invalid verification code"), http.StatusBadRequest},
		{"otp expired", apperr.New(apperr.KindOTPExpired, "code expired"), http.StatusGone},
		{"credential", apperr.New(apperr.KindCredential, "invalid credentials"), http.StatusUnauthorized},
		{"token invalid", apperr.New(apperr.KindTokenInvalid, "reset link expired"), http.StatusGone},
		{"throttled", apperr.Throttled(10 * time.Second), http.StatusTooManyRequests},
		{"context missing", apperr.New(apperr.KindContextMissing, "start again"), http.StatusConflict},
		{"busy", apperr.New(apperr.KindBusy, "in progress"), http.StatusConflict},
		{"upstream", apperr.New(apperr.KindUpstream, "unavailable"), http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, zap.NewNop(), tc.err, "test")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRespondError_ThrottledCarriesRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), apperr.Throttled(12*time.Second), "resend OTP")

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(12), data["retry_after"])
}

func TestRespondError_ContextMissingCarriesRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), apperr.New(apperr.KindContextMissing, "this step has expired, please start again"), "verify OTP")

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "identifier-entry", data["redirect"])
}

func TestRespondError_ValidationCarriesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), apperr.Validation("validation failed",
		map[string]string{"code": "must be exactly 6 digits"}), "verify OTP")

	body := decodeEnvelope(t, rec)
	fields, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "must be exactly 6 digits", fields["code"])
}

func TestRespondError_UnclassifiedHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), errors.New("pq: connection reset"), "continue")

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "pq:")
}
