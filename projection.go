// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// LeftProjection projects an Either into its Left side.
// Operations act on the Left value and treat a Right as absent.
type LeftProjection[A, B any] struct {
	e Either[A, B]
}

// Either returns the projected value.
func (p LeftProjection[A, B]) Either() Either[A, B] {
	return p.e
}

// Get returns the Left value.
// Panics if the projected value is a Right: use ToOption, GetOrElse or Fold
// when the side is not already known.
func (p LeftProjection[A, B]) Get() A {
	a, ok := p.ToOption()
	if !ok {
		panic("either: Left().Get() on Right value")
	}
	return a
}

// GetOrElse returns the Left value, or the result of or if this is a Right.
func (p LeftProjection[A, B]) GetOrElse(or func() A) A {
	return Fold(p.e, identity[A], func(B) A { return or() })
}

// Foreach calls f with the Left value. It does nothing for a Right.
func (p LeftProjection[A, B]) Foreach(f func(A)) {
	Fold(p.e, func(a A) struct{} { f(a); return struct{}{} }, constant[B](struct{}{}))
}

// Forall returns true for a Right, or the result of pred on the Left value.
func (p LeftProjection[A, B]) Forall(pred func(A) bool) bool {
	return Fold(p.e, pred, constant[B](true))
}

// Exists returns false for a Right, or the result of pred on the Left value.
func (p LeftProjection[A, B]) Exists(pred func(A) bool) bool {
	return Fold(p.e, pred, constant[B](false))
}

// Filter returns the projected Left and true if pred holds for its value.
// It returns false for a Right or when pred does not hold.
func (p LeftProjection[A, B]) Filter(pred func(A) bool) (Either[A, B], bool) {
	if p.Exists(pred) {
		return p.e, true
	}
	return Either[A, B]{}, false
}

// ToOption returns the Left value and true, or zero and false.
func (p LeftProjection[A, B]) ToOption() (a A, ok bool) {
	p.Foreach(func(v A) { a, ok = v, true })
	return a, ok
}

// RightProjection projects an Either into its Right side.
// Operations act on the Right value and treat a Left as absent.
type RightProjection[A, B any] struct {
	e Either[A, B]
}

// Either returns the projected value.
func (p RightProjection[A, B]) Either() Either[A, B] {
	return p.e
}

// Get returns the Right value.
// Panics if the projected value is a Left.
func (p RightProjection[A, B]) Get() B {
	b, ok := p.ToOption()
	if !ok {
		panic("either: Right().Get() on Left value")
	}
	return b
}

// GetOrElse returns the Right value, or the result of or if this is a Left.
func (p RightProjection[A, B]) GetOrElse(or func() B) B {
	return Fold(p.e, func(A) B { return or() }, identity[B])
}

// Foreach calls f with the Right value. It does nothing for a Left.
func (p RightProjection[A, B]) Foreach(f func(B)) {
	Fold(p.e, constant[A](struct{}{}), func(b B) struct{} { f(b); return struct{}{} })
}

// Forall returns true for a Left, or the result of pred on the Right value.
func (p RightProjection[A, B]) Forall(pred func(B) bool) bool {
	return Fold(p.e, constant[A](true), pred)
}

// Exists returns false for a Left, or the result of pred on the Right value.
func (p RightProjection[A, B]) Exists(pred func(B) bool) bool {
	return Fold(p.e, constant[A](false), pred)
}

// Filter returns the projected Right and true if pred holds for its value.
// It returns false for a Left or when pred does not hold.
func (p RightProjection[A, B]) Filter(pred func(B) bool) (Either[A, B], bool) {
	if p.Exists(pred) {
		return p.e, true
	}
	return Either[A, B]{}, false
}

// ToOption returns the Right value and true, or zero and false.
func (p RightProjection[A, B]) ToOption() (b B, ok bool) {
	p.Foreach(func(v B) { b, ok = v, true })
	return b, ok
}

// MapLeft applies f to the Left value. A Right passes through unchanged.
func MapLeft[A, B, X any](p LeftProjection[A, B], f func(A) X) Either[X, B] {
	return Fold(p.e, func(a A) Either[X, B] { return Left[X, B](f(a)) }, Right[X, B])
}

// FlatMapLeft binds f across the Left value. A Right passes through unchanged.
func FlatMapLeft[A, B, X any](p LeftProjection[A, B], f func(A) Either[X, B]) Either[X, B] {
	return Fold(p.e, f, Right[X, B])
}

// MapRight applies f to the Right value. A Left passes through unchanged.
func MapRight[A, B, X any](p RightProjection[A, B], f func(B) X) Either[A, X] {
	return Fold(p.e, Left[A, X], func(b B) Either[A, X] { return Right[A](f(b)) })
}

// FlatMapRight binds f across the Right value. A Left passes through unchanged.
func FlatMapRight[A, B, X any](p RightProjection[A, B], f func(B) Either[A, X]) Either[A, X] {
	return Fold(p.e, Left[A, X], f)
}
