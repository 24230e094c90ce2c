package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-api/httpx"
	"record-api/models"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: %q", models.ErrInvalidID, "x"), http.StatusBadRequest},
		{fmt.Errorf("item abc %w", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("insert: %w: %w", models.ErrStorage, errors.New("x")), http.StatusInternalServerError},
		{fmt.Errorf("item abc: %w", models.ErrDecode), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, httpx.StatusFor(tc.err), tc.err.Error())
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.WriteError(rr, fmt.Errorf("item abc %w", models.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "item abc not found", body["error"])
}

func TestMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.Message(rr, "Item deleted successfully")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Item deleted successfully"}`, rr.Body.String())
}

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	cases := []struct {
		name   string
		checks httpx.HealthChecks
		code   int
		body   string
	}{
		{
			name:   "cache disabled",
			checks: httpx.HealthChecks{Database: &stubChecker{}},
			code:   http.StatusOK,
			body:   `{"status":"ok","database":"ok","cache":"disabled"}`,
		},
		{
			name:   "all healthy",
			checks: httpx.HealthChecks{Database: &stubChecker{}, Cache: &stubChecker{}},
			code:   http.StatusOK,
			body:   `{"status":"ok","database":"ok","cache":"ok"}`,
		},
		{
			name:   "database down",
			checks: httpx.HealthChecks{Database: &stubChecker{err: errors.New("conn refused")}},
			code:   http.StatusServiceUnavailable,
			body:   `{"status":"degraded","database":"unreachable","cache":"disabled"}`,
		},
		{
			name:   "cache down",
			checks: httpx.HealthChecks{Database: &stubChecker{}, Cache: &stubChecker{err: errors.New("timeout")}},
			code:   http.StatusServiceUnavailable,
			body:   `{"status":"degraded","database":"ok","cache":"unreachable"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tc.checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
			assert.Equal(t, tc.code, rr.Code)
			assert.JSONEq(t, tc.body, rr.Body.String())
		})
	}
}
