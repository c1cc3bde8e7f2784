package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/hourbill/hourbill/internal/api/v1"
	"github.com/hourbill/hourbill/internal/auth"
	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/pdf"
	"github.com/hourbill/hourbill/internal/service"
	"github.com/hourbill/hourbill/internal/testutil"
	"github.com/hourbill/hourbill/internal/types"
	"github.com/hourbill/hourbill/internal/validator"
)

type routerTestEnv struct {
	router *gin.Engine
	token  string
}

func newRouterTestEnv(t *testing.T) *routerTestEnv {
	gin.SetMode(gin.TestMode)
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	params := service.NewServiceParams(
		log,
		cfg,
		nil,
		pdf.NewGenerator(cfg, log),
		testutil.NewInMemoryTimeEntryStore(),
		testutil.NewInMemoryDownloadStore(),
	)

	handlers := Handlers{
		Health:    v1.NewHealthHandler(log),
		TimeEntry: v1.NewTimeEntryHandler(service.NewTimeEntryService(params), log),
		Export:    v1.NewExportHandler(service.NewExportService(params), log),
		Document:  v1.NewDocumentHandler(service.NewDocumentService(params), log),
		Download:  v1.NewDownloadHandler(service.NewDownloadService(params), log),
	}

	token, err := auth.NewProvider(cfg).GenerateToken(types.DefaultUserID)
	require.NoError(t, err)

	return &routerTestEnv{
		router: NewRouter(handlers, cfg, log),
		token:  token,
	}
}

func (e *routerTestEnv) do(method, target, token string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set(types.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *routerTestEnv) upsert(t *testing.T, date string, hours float64, description string) {
	body, err := json.Marshal(map[string]any{
		"date":        date,
		"hours":       hours,
		"description": description,
	})
	require.NoError(t, err)
	w := e.do(http.MethodPut, "/v1/time-entries", e.token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	env := newRouterTestEnv(t)

	// health is reachable without a token
	w := env.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAuthenticationRequired(t *testing.T) {
	env := newRouterTestEnv(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, "/v1/time-tracking/summary", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	w := env.do(http.MethodGet, "/v1/time-tracking/summary", env.token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	env := newRouterTestEnv(t)

	// pre-flights short-circuit before authentication
	w := env.do(http.MethodOptions, "/v1/time-entries", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestUpsertTimeEntryEndpoint(t *testing.T) {
	env := newRouterTestEnv(t)
	env.upsert(t, "2024-03-04", 8, "Initial setup")

	w := env.do(http.MethodGet, "/v1/time-entries?month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Total        int    `json:"total"`
		BillingMonth string `json:"billing_month"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "2024-03", list.BillingMonth)
}

func TestUpsertTimeEntryValidation(t *testing.T) {
	env := newRouterTestEnv(t)

	body := []byte(`{"date":"03/04/2024","hours":8,"description":"Work"}`)
	w := env.do(http.MethodPut, "/v1/time-entries", env.token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestDeleteTimeEntryNotFound(t *testing.T) {
	env := newRouterTestEnv(t)

	w := env.do(http.MethodDelete, "/v1/time-entries/ent_missing", env.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportCSVEndpoint(t *testing.T) {
	env := newRouterTestEnv(t)
	env.upsert(t, "2024-03-04", 8, "Initial setup")

	w := env.do(http.MethodGet, "/v1/time-tracking/export?month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="time-tracking-2024-03.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Date,Day of Week,Hours,Description,Notes"))
}

func TestExportCSVNoEntries(t *testing.T) {
	env := newRouterTestEnv(t)

	w := env.do(http.MethodGet, "/v1/time-tracking/export?month=2024-03", env.token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentEndpoint(t *testing.T) {
	env := newRouterTestEnv(t)
	env.upsert(t, "2024-03-04", 8, "Initial setup")

	w := env.do(http.MethodGet, "/v1/time-tracking/documents?type=invoice&month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Merging Solutions, LLC March 2024 Invoice.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = env.do(http.MethodGet, "/v1/time-tracking/documents?type=hours-log&month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="PG&E March 2024 Hours Log.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestDocumentEndpointInvalidType(t *testing.T) {
	env := newRouterTestEnv(t)
	env.upsert(t, "2024-03-04", 8, "Initial setup")

	w := env.do(http.MethodGet, "/v1/time-tracking/documents?type=receipt&month=2024-03", env.token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadsEndpoints(t *testing.T) {
	env := newRouterTestEnv(t)

	w := env.do(http.MethodGet, "/v1/time-tracking/downloads/status?month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		Downloaded bool `json:"downloaded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Downloaded)

	w = env.do(http.MethodPost, "/v1/time-tracking/downloads?month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/v1/time-tracking/downloads/status?month=2024-03", env.token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Downloaded)
}
