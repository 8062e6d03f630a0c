package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"job-board-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	t.Run("errors.Is matches on kind regardless of message", func(t *testing.T) {
		err := apperror.NotFound("Job not found")
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		assert.False(t, errors.Is(err, apperror.ErrForbidden))
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := fmt.Errorf("apply: %w", apperror.DuplicateApplication("already applied", nil))
		assert.True(t, errors.Is(err, apperror.ErrDuplicateApplication))
		assert.Equal(t, apperror.KindDuplicateApplication, apperror.KindOf(err))
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("boom")))
	})

	t.Run("cause is reachable through Unwrap", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := apperror.StoreUnavailable(cause)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusServiceUnavailable, err.Code)
	})
}

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err  *apperror.AppError
		code int
	}{
		{apperror.NotFound("x"), http.StatusNotFound},
		{apperror.Forbidden("x"), http.StatusForbidden},
		{apperror.InvalidStatus("x"), http.StatusBadRequest},
		{apperror.DuplicateApplication("x", nil), http.StatusBadRequest},
		{apperror.WrongRole("x"), http.StatusBadRequest},
		{apperror.SelfDeletionForbidden("x"), http.StatusBadRequest},
		{apperror.Unauthorized("x"), http.StatusUnauthorized},
		{apperror.Internal(nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.err.Kind), func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
		})
	}
}
