// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "fmt"

// Either represents a value of one of two possible types.
// An Either is either a Left holding an A or a Right holding a B.
//
// By convention Left carries the alternative (failure) outcome and Right
// carries the success outcome; the type itself does not enforce this.
//
// The zero value is a Left holding the zero A. The unpopulated side is
// always zero, so for comparable A and B the == operator agrees with [Equal].
type Either[A, B any] struct {
	isRight bool
	left    box[A]
	right   box[B]
}

// Left creates a Left value.
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{isRight: false, left: boxed(a)}
}

// Right creates a Right value.
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{isRight: true, right: boxed(b)}
}

// Cond returns Right(right()) if test holds, otherwise Left(left()).
// Exactly one of the two functions is called.
func Cond[A, B any](test bool, right func() B, left func() A) Either[A, B] {
	if test {
		return Right[A](right())
	}
	return Left[A, B](left())
}

// Fold applies fa if e is a Left or fb if e is a Right.
//
// Fold is the eliminator for Either: every other operation in this package
// is expressed through it, so exactly one side is ever evaluated.
func Fold[A, B, X any](e Either[A, B], fa func(A) X, fb func(B) X) X {
	if e.isRight {
		return fb(e.right.unbox())
	}
	return fa(e.left.unbox())
}

// IsLeft returns true if this is a Left value.
func (e Either[A, B]) IsLeft() bool {
	return Fold(e, constant[A](true), constant[B](false))
}

// IsRight returns true if this is a Right value.
func (e Either[A, B]) IsRight() bool {
	return Fold(e, constant[A](false), constant[B](true))
}

// Left projects e as a Left.
func (e Either[A, B]) Left() LeftProjection[A, B] {
	return LeftProjection[A, B]{e: e}
}

// Right projects e as a Right.
func (e Either[A, B]) Right() RightProjection[A, B] {
	return RightProjection[A, B]{e: e}
}

// Swap returns the Left value as a Right, or the Right value as a Left.
func (e Either[A, B]) Swap() Either[B, A] {
	return Fold(e, Right[B, A], Left[B, A])
}

// GetOrElse returns the Right value, or the result of or if e is a Left.
// or is not called for a Right.
func (e Either[A, B]) GetOrElse(or func() B) B {
	return e.Right().GetOrElse(or)
}

// OrElse returns e if it is a Right, otherwise the result of or.
func (e Either[A, B]) OrElse(or func() Either[A, B]) Either[A, B] {
	return Fold(e, func(A) Either[A, B] { return or() }, Right[A, B])
}

// OrElseValue returns e if it is a Right, otherwise Right(or()).
func (e Either[A, B]) OrElseValue(or func() B) Either[A, B] {
	return Fold(e, func(A) Either[A, B] { return Right[A](or()) }, Right[A, B])
}

// Recover replaces a Left with a Right computed from the Left value.
func (e Either[A, B]) Recover(f func(A) B) Either[A, B] {
	return Fold(e, func(a A) Either[A, B] { return Right[A](f(a)) }, Right[A, B])
}

// RecoverWith replaces a Left with the Either computed from the Left value.
func (e Either[A, B]) RecoverWith(f func(A) Either[A, B]) Either[A, B] {
	return Fold(e, f, Right[A, B])
}

// String renders e as "Left(<value>)" or "Right(<value>)".
// The format is meant for humans and is not parsed back.
func (e Either[A, B]) String() string {
	return Fold(e,
		func(a A) string { return fmt.Sprintf("Left(%v)", a) },
		func(b B) string { return fmt.Sprintf("Right(%v)", b) },
	)
}

// Map applies f to the Right value. A Left passes through unchanged.
func Map[A, B, X any](e Either[A, B], f func(B) X) Either[A, X] {
	return MapRight(e.Right(), f)
}

// FlatMap sequences two Either computations: f runs only on a Right.
func FlatMap[A, B, X any](e Either[A, B], f func(B) Either[A, X]) Either[A, X] {
	return FlatMapRight(e.Right(), f)
}

// Equal reports whether x and y hold the same side with equal values.
// A Left never equals a Right.
func Equal[A, B comparable](x, y Either[A, B]) bool {
	return EqualFunc(x, y, equal[A], equal[B])
}

// EqualFunc is like Equal but compares the contained values with eqA and eqB,
// for element types that do not support ==.
func EqualFunc[A, B any](x, y Either[A, B], eqA func(A, A) bool, eqB func(B, B) bool) bool {
	return Fold(x,
		func(a A) bool {
			return Fold(y, func(c A) bool { return eqA(a, c) }, constant[B](false))
		},
		func(b B) bool {
			return Fold(y, constant[A](false), func(d B) bool { return eqB(b, d) })
		},
	)
}

func identity[T any](v T) T { return v }

func equal[T comparable](x, y T) bool { return x == y }

func constant[T, R any](r R) func(T) R {
	return func(T) R { return r }
}
