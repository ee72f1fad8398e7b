package infra

import (
	"errors"

	"rental-cart/internal/pkg/errs"
)

type StorageErrorKind string

type StorageError struct {
	Kind StorageErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StorageError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StorageError) Unwrap() error {
	return e.err
}

func (e StorageError) Is(target error) bool {
	return target == errs.ErrStorageOperationFailed
}

// WrapStorageErr defaults to KindBackendFailure when no kind is given.
func WrapStorageErr(msg string, err error, kind ...StorageErrorKind) error {
	k := KindBackendFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StorageError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind StorageErrorKind) bool {
	var e StorageError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindBackendFailure StorageErrorKind = "BACKEND_FAILURE"
	KindUnavailable    StorageErrorKind = "UNAVAILABLE"
	KindSchema         StorageErrorKind = "SCHEMA"
)
