package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"job-board-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil, "x"))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		err := translateError(fmt.Errorf("scan: %w", pgx.ErrNoRows), "Job not found")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, "Job not found", err.Error())
	})

	t.Run("connection failures become store unavailable", func(t *testing.T) {
		err := translateError(&pgconn.PgError{Code: "08006"}, "x")
		assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)

		err = translateError(context.DeadlineExceeded, "x")
		assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	})

	t.Run("other errors are internal", func(t *testing.T) {
		err := translateError(errors.New("syntax error"), "x")
		assert.ErrorIs(t, err, apperror.ErrInternal)
	})

	t.Run("app errors pass through", func(t *testing.T) {
		in := apperror.DuplicateApplication("dup", nil)
		assert.Same(t, in, translateError(in, "x"))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: applicationsUniqueConstraint}
	assert.True(t, isUniqueViolation(dup, applicationsUniqueConstraint))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", dup), ""))
	assert.False(t, isUniqueViolation(dup, "users_email_key"))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
}

func TestTranslateApplicationInsertError(t *testing.T) {
	t.Run("unique index becomes duplicate", func(t *testing.T) {
		err := translateApplicationInsertError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: applicationsUniqueConstraint})
		assert.ErrorIs(t, err, apperror.ErrDuplicateApplication)
	})

	t.Run("job removed after lookup becomes not found", func(t *testing.T) {
		err := translateApplicationInsertError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: applicationsJobFK})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, "Job not found or inactive", err.Error())
	})

	t.Run("seeker removed after lookup becomes not found", func(t *testing.T) {
		err := translateApplicationInsertError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "applications_job_seeker_id_fkey"})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("success stays nil", func(t *testing.T) {
		assert.NoError(t, translateApplicationInsertError(nil))
	})
}

func TestTranslateUserInsertError(t *testing.T) {
	err := translateUserInsertError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: usersEmailUniqueConstraint})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Equal(t, "A user with this email already exists", err.Error())

	assert.ErrorIs(t, translateUserInsertError(&pgconn.PgError{Code: "08006"}), apperror.ErrStoreUnavailable)
	assert.NoError(t, translateUserInsertError(nil))
}
