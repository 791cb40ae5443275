package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessMergesPayloadAtTopLevel(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, gin.H{"order": gin.H{"total": 40.0}})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "order")
	assert.NotContains(t, body, "data")
}

func TestErrorShape(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		BadRequest(c, "Invalid request data", []string{"items is required"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Invalid request data", body["error"])
	assert.Equal(t, []interface{}{"items is required"}, body["details"])
	assert.NotContains(t, body, "success")
}

func TestErrorOmitsNilDetails(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Unauthorized(c, "Unauthorized")
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.NotContains(t, body, "details")
}

func TestInternalServerErrorHidesDetail(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		InternalServerError(c, "Failed to create order", "pq: connection refused")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Failed to create order", body["error"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}
