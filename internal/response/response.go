package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelio-cloud/service-booking/internal/domain"
)

// Envelope is the uniform JSON response body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries a stable code alongside the message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes a 200 response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 response with a message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &APIError{Code: domain.CodeValidation, Message: message},
	})
}

// Error maps a service error to an HTTP response. Eligibility failures are
// rejected requests, a failing remote peer is a bad gateway, everything
// unrecognized is an internal error.
func Error(c *gin.Context, err error) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   &APIError{Code: "INTERNAL", Message: "internal server error"},
		})
		return
	}

	status := http.StatusInternalServerError
	switch de.Code {
	case domain.CodeUserIneligible, domain.CodeHotelIneligible:
		status = http.StatusUnprocessableEntity
	case domain.CodeValidation:
		status = http.StatusBadRequest
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeRemoteUnavailable:
		status = http.StatusBadGateway
	}

	c.JSON(status, Envelope{
		Success: false,
		Error:   &APIError{Code: de.Code, Message: de.Message},
	})
}
