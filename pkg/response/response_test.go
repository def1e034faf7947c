package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"notesapp/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestOKMergesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, "Notes fetched successfully", Payload{"notes": []string{}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":false,"message":"Notes fetched successfully","notes":[]}`, rec.Body.String())
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{apperror.Validation("Title is required"), http.StatusBadRequest, "Title is required"},
		{apperror.New(apperror.KindDuplicateEmail, "User already exists"), http.StatusConflict, "User already exists"},
		{apperror.Unauthenticated("Unauthorized"), http.StatusUnauthorized, "Unauthorized"},
		{apperror.Forbidden("Unauthorized"), http.StatusForbidden, "Unauthorized"},
		{apperror.NotFound("Note not found"), http.StatusNotFound, "Note not found"},
		{apperror.Internal(errors.New("pq: connection refused")), http.StatusInternalServerError, "Internal Server Error"},
		{errors.New("raw"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, `{"error":true,"message":"`+tt.msg+`"}`, rec.Body.String())
		})
	}
}
