package response

import (
	"net/http"
	"testing"

	"event-platform/common/errorx"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"success", errorx.CodeSuccess, http.StatusOK},
		{"invalid params", errorx.CodeInvalidParams, http.StatusBadRequest},
		{"invalid range", errorx.CodeInvalidRange, http.StatusBadRequest},
		{"invalid transition", errorx.CodeInvalidTransition, http.StatusBadRequest},
		{"immutable state", errorx.CodeImmutableState, http.StatusBadRequest},
		{"not published", errorx.CodeNotPublished, http.StatusBadRequest},
		{"capacity exceeded", errorx.CodeCapacityExceeded, http.StatusBadRequest},
		{"capacity violation", errorx.CodeCapacityViolation, http.StatusBadRequest},
		{"already participant", errorx.CodeAlreadyParticipant, http.StatusBadRequest},
		{"organizer cannot join", errorx.CodeOrganizerCannotJoin, http.StatusBadRequest},
		{"not a participant", errorx.CodeNotAParticipant, http.StatusBadRequest},
		{"unauthorized", errorx.CodeUnauthorized, http.StatusUnauthorized},
		{"token invalid", errorx.CodeTokenInvalid, http.StatusUnauthorized},
		{"forbidden", errorx.CodeForbidden, http.StatusForbidden},
		{"event not found", errorx.CodeEventNotFound, http.StatusNotFound},
		{"user not found", errorx.CodeUserNotFound, http.StatusNotFound},
		{"notification not found", errorx.CodeNotificationNotFound, http.StatusNotFound},
		{"concurrency conflict", errorx.CodeConcurrencyConflict, http.StatusConflict},
		{"store unavailable", errorx.CodeStoreUnavailable, http.StatusServiceUnavailable},
		{"db error", errorx.CodeDBError, http.StatusInternalServerError},
		{"unknown code", 99999, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}
