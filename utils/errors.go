package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures inside the service. Only the HTTP layer
// decides how a kind is rendered on the wire.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindStorage
	KindNotConfigured
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindNotConfigured:
		return "not_configured"
	default:
		return "internal"
	}
}

var ErrNotConfigured = &AppError{Kind: KindNotConfigured, Op: "database", Err: errors.New("database is not configured")}

type AppError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *AppError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StorageError wraps a driver error without altering its message.
func StorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{Kind: KindStorage, Op: op, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
