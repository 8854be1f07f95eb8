package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInvalidArgument Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindInactiveAccount
	KindInvalidCredentials
	KindInternalUpload
)

// BusinessError is an expected failure that maps onto a client-facing status.
type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInternalUpload:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// ErrBusiness reports an invalid argument or state.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidArgument, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrInactiveAccount() error {
	return BusinessError{Kind: KindInactiveAccount, Code: "inactive_account"}
}

func ErrInvalidCredentials() error {
	return BusinessError{Kind: KindInvalidCredentials, Code: "invalid_credentials"}
}

// ErrUpload wraps a storage failure; the cause is kept for logging only.
func ErrUpload(cause error) error {
	return uploadError{BusinessError: BusinessError{Kind: KindInternalUpload, Code: "image_upload_failed"}, cause: cause}
}

type uploadError struct {
	BusinessError
	cause error
}

func (e uploadError) Unwrap() []error {
	return []error{e.BusinessError, e.cause}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of a business error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}
