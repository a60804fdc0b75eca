package report

import (
	"errors"
	"io/fs"

	"simreport/internal/sim"
)

// Kind classifies report generation failures. The CLI collapses every kind
// into a single printed message; the kinds exist so callers and tests can
// tell the failure causes apart.
type Kind int

const (
	KindUnknown Kind = iota
	KindInputNotFound
	KindSchemaViolation
	KindValueFormat
	KindWriteFailure
)

// Error wraps a generation failure with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown if err was not
// produced by this package.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// classifyLoadError maps loader failures onto the error taxonomy.
func classifyLoadError(err error) Kind {
	switch {
	case errors.Is(err, sim.ErrMissingColumn):
		return KindSchemaViolation
	case errors.Is(err, sim.ErrBadNumber):
		return KindValueFormat
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return KindInputNotFound
	default:
		return KindUnknown
	}
}
