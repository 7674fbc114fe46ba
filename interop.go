// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "errors"

// ErrNilLeft is returned by ToError for a Left holding a nil error.
var ErrNilLeft = errors.New("either: Left holds a nil error")

// FromError lifts a Go (value, error) pair into an Either.
// A non-nil err becomes Left(err); otherwise v becomes Right(v).
func FromError[B any](v B, err error) Either[error, B] {
	if err != nil {
		return Left[error, B](err)
	}
	return Right[error](v)
}

// ToError lowers an Either back to Go's (value, error) convention.
// A Left yields the zero B and its error. A Left holding a nil error yields
// ErrNilLeft, so a Left is never reported as success.
func ToError[B any](e Either[error, B]) (B, error) {
	if err, ok := e.Left().ToOption(); ok {
		var zero B
		if err == nil {
			return zero, ErrNilLeft
		}
		return zero, err
	}
	return e.Right().Get(), nil
}
