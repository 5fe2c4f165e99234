// Package errwrap holds the two error helpers used across symcanon: adding
// context to an error and collecting several errors into one.
package errwrap

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Wrapf prefixes err with a formatted message and records a stack trace. The
// original error stays reachable through errors.Is and errors.As. A nil err
// yields nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// Append folds next into acc. Either side may be nil: a single error is
// returned as is, and only two or more errors are combined into a
// *multierror.Error.
func Append(acc, next error) error {
	switch {
	case next == nil:
		return acc
	case acc == nil:
		return next
	}
	return multierror.Append(acc, next)
}
