package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends a success response. The payload fields are merged at the top
// level next to "success": true, matching the storefront client's contract.
func Success(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with the same shape as Success
func Created(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusCreated, body)
}

// Error sends an error response as {"error": message}. A non-nil details
// value is attached under "details" (used for field-level schema errors).
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	body := gin.H{"error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(statusCode, body)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusBadRequest, message, details)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 Conflict response
func Conflict(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusConflict, message, details)
}

// InternalServerError sends a 500 Internal Server Error response. The detail
// is logged server-side only, never surfaced to the caller.
func InternalServerError(c *gin.Context, message string, detail interface{}) {
	if detail != nil {
		LogError("%s: %v", message, detail)
	}
	Error(c, http.StatusInternalServerError, message, nil)
}
