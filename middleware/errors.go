package middleware

import (
	"errors"
	"log"
	"net/http"

	"blogapi/apperrors"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code    apperrors.Kind `json:"code"`
	Message string         `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorHandler turns the last error a handler attached with c.Error into the JSON error body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := classify(c.Errors.Last().Err)
		status := apperrors.Status(err)
		if status >= http.StatusInternalServerError {
			log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(status, NewErrorResponse(err))
	}
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:    apperrors.KindOf(err),
		Message: apperrors.PublicMessage(err),
	}}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.Status(err), NewErrorResponse(err))
}

// classify maps framework errors that are really client mistakes onto the error kinds.
func classify(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.TooLarge("Request body too large", err)
	}
	return err
}
