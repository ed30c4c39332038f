package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"moneyflow/internal/auth"
	"moneyflow/internal/config"
	"moneyflow/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest builds a router over a fresh in-memory database
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.WarnLevel)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// One connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Transaction{}))

	cfg := &config.Config{
		JWTSecret:             "test-secret",
		TokenTTLMinutes:       60,
		LargeExpenseThreshold: decimal.NewFromInt(500),
	}
	authn := auth.New(auth.Config{
		Secret:      cfg.JWTSecret,
		TokenTTL:    time.Hour,
		Memory:      8 * 1024, // low hashing costs keep the suite fast
		Time:        1,
		Parallelism: 1,
	})
	return SetupRouter(gdb, cfg, authn), gdb
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a response body into dest
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), "body: %s", rec.Body.String())
}

// errorMessage extracts the "error" field of a failure response
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["error"]
}

// registerAndLogin creates a user through the API and returns a bearer token
func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	rec := doJSON(t, r, "POST", "/auth/register", gin.H{"username": username, "password": password}, "")
	require.Equal(t, 201, rec.Code, "register: %s", rec.Body.String())

	rec = doJSON(t, r, "POST", "/auth/login", gin.H{"username": username, "password": password}, "")
	require.Equal(t, 200, rec.Code, "login: %s", rec.Body.String())
	var tokenResp TokenResponse
	decodeBody(t, rec, &tokenResp)
	require.NotEmpty(t, tokenResp.AccessToken)
	return tokenResp.AccessToken
}

// createCategory creates a category through the API and returns its id
func createCategory(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()
	rec := doJSON(t, r, "POST", "/api/categories", gin.H{"name": name}, "")
	require.Equal(t, 201, rec.Code, "create category: %s", rec.Body.String())
	var category domain.Category
	decodeBody(t, rec, &category)
	return category.ID
}
