package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError independently of its message.
type Kind string

const (
	KindBadRequest            Kind = "bad_request"
	KindUnauthorized          Kind = "unauthorized"
	KindForbidden             Kind = "forbidden"
	KindNotFound              Kind = "not_found"
	KindInvalidStatus         Kind = "invalid_status"
	KindDuplicateApplication  Kind = "duplicate_application"
	KindWrongRole             Kind = "wrong_role"
	KindSelfDeletionForbidden Kind = "self_deletion_forbidden"
	KindStoreUnavailable      Kind = "store_unavailable"
	KindInternal              Kind = "internal"
)

// Sentinels for errors.Is. Matching is done on Kind only.
var (
	ErrBadRequest            = &AppError{Kind: KindBadRequest}
	ErrUnauthorized          = &AppError{Kind: KindUnauthorized}
	ErrForbidden             = &AppError{Kind: KindForbidden}
	ErrNotFound              = &AppError{Kind: KindNotFound}
	ErrInvalidStatus         = &AppError{Kind: KindInvalidStatus}
	ErrDuplicateApplication  = &AppError{Kind: KindDuplicateApplication}
	ErrWrongRole             = &AppError{Kind: KindWrongRole}
	ErrSelfDeletionForbidden = &AppError{Kind: KindSelfDeletionForbidden}
	ErrStoreUnavailable      = &AppError{Kind: KindStoreUnavailable}
	ErrInternal              = &AppError{Kind: KindInternal}
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError of the same Kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func InvalidStatus(message string) *AppError {
	return New(http.StatusBadRequest, KindInvalidStatus, message, nil)
}

func DuplicateApplication(message string, err error) *AppError {
	return New(http.StatusBadRequest, KindDuplicateApplication, message, err)
}

func WrongRole(message string) *AppError {
	return New(http.StatusBadRequest, KindWrongRole, message, nil)
}

func SelfDeletionForbidden(message string) *AppError {
	return New(http.StatusBadRequest, KindSelfDeletionForbidden, message, nil)
}

func StoreUnavailable(err error) *AppError {
	return New(http.StatusServiceUnavailable, KindStoreUnavailable, "Service temporarily unavailable", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
