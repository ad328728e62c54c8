package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"blogapi/apperrors"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
)

// EventPublisher receives a notification after every successful mutation.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

func parseID(c *gin.Context, param, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("Invalid "+label+" ID", nil)
	}
	return uint(id), nil
}

func callerID(c *gin.Context) (uint, error) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		return 0, apperrors.Unauthenticated("User not authenticated")
	}
	return id, nil
}

// bindError converts a gin binding failure into a client error.
func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
		return apperrors.TooLarge("Request body too large", err)
	}
	return apperrors.Validation(err.Error(), nil)
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}
