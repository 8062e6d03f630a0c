package postgres

import (
	"errors"
	"net"
	"strings"

	"job-board-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgAdminShutdown       = "57P01"
	pgTooManyConnections  = "53300"
	pgConnectionException = "08" // class prefix
)

// Constraint names as created by schema.sql (Postgres default naming for
// the column-level ones).
const (
	applicationsUniqueConstraint = "applications_job_seeker_job_key"
	applicationsJobFK            = "applications_job_id_fkey"
	usersEmailUniqueConstraint   = "users_email_key"
)

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// translateError maps driver errors onto the apperror taxonomy. Errors that
// are already AppErrors pass through untouched.
func translateError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(notFoundMsg)
	}
	if isUnavailable(err) {
		return apperror.StoreUnavailable(err)
	}
	return apperror.Internal(err)
}

func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgConnectionException) ||
			pgErr.Code == pgAdminShutdown ||
			pgErr.Code == pgTooManyConnections
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// translateApplicationInsertError maps the constraint failures an insert
// into applications can raise. A parent row deleted after the caller's
// lookup surfaces as NotFound rather than a server error.
func translateApplicationInsertError(err error) error {
	if isUniqueViolation(err, applicationsUniqueConstraint) {
		return apperror.DuplicateApplication("You have already applied for this job", err)
	}
	if constraint, ok := isForeignKeyViolation(err); ok {
		if constraint == applicationsJobFK {
			return apperror.NotFound("Job not found or inactive")
		}
		return apperror.NotFound("User not found")
	}
	return translateError(err, "")
}

func translateUserInsertError(err error) error {
	if isUniqueViolation(err, usersEmailUniqueConstraint) {
		return apperror.BadRequest("A user with this email already exists")
	}
	return translateError(err, "")
}
