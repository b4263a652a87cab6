package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk/staffdesk/internal/apikeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyRouter() *gin.Engine {
	r := gin.New()
	NewKeyHandler(apikeys.NewService(&fakeKeyRepo{})).Register(r.Group("/"))
	return r
}

func TestIndex(t *testing.T) {
	r := newKeyRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["msg"], "/generate_key")
}

func TestGenerateKey(t *testing.T) {
	r := newKeyRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/generate_key", strings.NewReader(`{"name":"svc","days_valid":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, len(body["api_key"]), 32)
	assert.Equal(t, "Save this key now. It will not be shown again.", body["note"])

	created, err := time.Parse(time.RFC3339Nano, body["created_at"])
	require.NoError(t, err)
	expires, err := time.Parse(time.RFC3339Nano, body["expires_at"])
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, expires.Sub(created))
}

func TestGenerateKeyNoBodyUsesDefaults(t *testing.T) {
	r := newKeyRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/generate_key", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["api_key"])

	created, _ := time.Parse(time.RFC3339Nano, body["created_at"])
	expires, _ := time.Parse(time.RFC3339Nano, body["expires_at"])
	assert.Equal(t, 30*24*time.Hour, expires.Sub(created))
}

func TestGeneratedKeysAreUnique(t *testing.T) {
	r := newKeyRouter()
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/generate_key", nil))
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, seen[body["api_key"]], "duplicate key issued")
		seen[body["api_key"]] = true
	}
}
