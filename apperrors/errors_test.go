package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("Post not found"), http.StatusNotFound},
		{"forbidden", Forbidden("nope"), http.StatusForbidden},
		{"validation", Validation("bad file", nil), http.StatusBadRequest},
		{"conflict", Conflict("exists", nil), http.StatusConflict},
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"too large", TooLarge("too big", nil), http.StatusRequestEntityTooLarge},
		{"wrapped", fmt.Errorf("loading: %w", NotFound("Comment not found")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	sentinel := NotFound("Post not found")
	wrapped := fmt.Errorf("repo: %w", sentinel)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, errors.Is(wrapped, NotFound("Post not found")))
	assert.False(t, errors.Is(wrapped, NotFound("Comment not found")))
}

func TestPublicMessageHidesInternalDetails(t *testing.T) {
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("pq: connection refused")))
	assert.Equal(t, "Internal server error", PublicMessage(Internal("db exploded", errors.New("x"))))
	assert.Equal(t, "File too large (max 50MB)", PublicMessage(Validation("File too large (max 50MB)", nil)))
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Conflict("User still owns content", errors.New("FOREIGN KEY constraint failed"))
	assert.Equal(t, "User still owns content: FOREIGN KEY constraint failed", err.Error())
	assert.Equal(t, KindConflict, KindOf(err))
}
