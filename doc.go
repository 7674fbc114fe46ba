// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides a generic disjoint union of two types and
// one-sided projections for working with either side without matching by
// hand.
//
// The core type [Either] holds exactly one of a Left value of type A or a
// Right value of type B. By convention Left is the alternative (failure)
// channel and Right is the success channel. Values are immutable: every
// operation returns a new value, so an Either may be shared freely between
// goroutines.
//
// # Construction and Inspection
//
//   - [Left], [Right]: Constructors
//   - [Cond]: Right or Left selected by a boolean; only one thunk is called
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.String]: Diagnostic rendering, "Left(v)" or "Right(v)"
//
// # Elimination
//
// [Fold] applies one of two functions depending on the populated side. It is
// the only eliminator: every other operation is defined through it, which
// guarantees that exactly one side is ever evaluated.
//
// # Combinators
//
// Right-biased operations on [Either]:
//
//   - [Map]: Transform the Right value
//   - [FlatMap]: Sequence a computation on the Right value
//   - [Either.Swap]: Exchange sides
//   - [Either.GetOrElse]: Right value or a lazily computed default
//   - [Either.OrElse], [Either.OrElseValue]: Fall back on a Left
//   - [Either.Recover], [Either.RecoverWith]: Compute a replacement from the Left value
//
// Go methods cannot declare type parameters, so operations that change a
// type parameter are package-level functions.
//
// # Projections
//
// [Either.Left] and [Either.Right] return a [LeftProjection] or
// [RightProjection]: views that treat one side as present and the other as
// absent.
//
//   - Get: The projected value (panics on the other side)
//   - GetOrElse: The projected value or a lazily computed default
//   - Foreach: Side effect on the projected value
//   - Forall, Exists: Quantifiers (vacuously true and false on the other side)
//   - Filter: The Either if the predicate holds, comma-ok
//   - ToOption: The projected value, comma-ok
//   - [MapLeft], [FlatMapLeft], [MapRight], [FlatMapRight]: Transformations
//
// Get is an unchecked accessor. Calling it on the wrong side is a
// programming error and panics; code that does not already know the side
// should use ToOption, GetOrElse or [Fold].
//
// # Equality
//
//   - [Equal]: Same side and equal values, for comparable A and B
//   - [EqualFunc]: Same, with caller-supplied comparisons
//
// For comparable A and B the == operator gives the same answer as [Equal].
//
// # Interoperability
//
//   - [FromError], [ToError]: Convert between Either[error, B] and (B, error)
//   - [Either.MarshalZerologObject]: Structured logging with zerolog
//
// # Example
//
//	parse := func(s string) either.Either[error, int] {
//		n, err := strconv.Atoi(s)
//		return either.FromError(n, err)
//	}
//
//	n := either.Map(parse("21"), func(x int) int { return x * 2 }).
//		GetOrElse(func() int { return 0 })
//	// n == 42
package either
