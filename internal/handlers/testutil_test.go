package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dipesh4000/blogvote/internal/router"
	"github.com/dipesh4000/blogvote/pkg/config"
)

// newTestServer wires the real router over an in-memory SQLite database.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  30 * time.Minute,
	}

	e := echo.New()
	router.SetupRoutes(e, db, cfg)
	return e, db
}

// doRequest performs a JSON request against the test server. A non-empty token
// is sent as a bearer Authorization header.
func doRequest(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// signupAndLogin creates a user through the API and returns a bearer token.
func signupAndLogin(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/users", "", echo.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, e, http.MethodPost, "/login", "", echo.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	token, ok := decodeBody(t, rec)["access_token"].(string)
	require.True(t, ok, "login response must contain access_token")
	return token
}

// createPost creates a post through the API and returns its ID.
func createPost(t *testing.T, e *echo.Echo, token, title, content string) uint {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/posts", token, echo.Map{
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	id, ok := decodeBody(t, rec)["id"].(float64)
	require.True(t, ok, "create post response must contain id")
	return uint(id)
}

func postPath(id uint) string {
	return fmt.Sprintf("/posts/%d", id)
}
