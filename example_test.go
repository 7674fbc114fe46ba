// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either_test

import (
	"fmt"
	"strconv"

	"code.hybscloud.com/either"
)

func parse(s string) either.Either[error, int] {
	n, err := strconv.Atoi(s)
	return either.FromError(n, err)
}

func ExampleFold() {
	describe := func(e either.Either[error, int]) string {
		return either.Fold(e,
			func(err error) string { return "invalid input" },
			func(n int) string { return "got " + strconv.Itoa(n) },
		)
	}
	fmt.Println(describe(parse("7")))
	fmt.Println(describe(parse("seven")))
	// Output:
	// got 7
	// invalid input
}

func ExampleMap() {
	doubled := either.Map(parse("21"), func(n int) int { return n * 2 })
	fmt.Println(doubled.GetOrElse(func() int { return 0 }))
	// Output: 42
}

func ExampleEither_OrElse() {
	e := parse("x").OrElse(func() either.Either[error, int] { return parse("3") })
	fmt.Println(e.Right().Get())
	// Output: 3
}

func ExampleLeftProjection_ToOption() {
	e := either.Left[string, int]("not found")
	if reason, ok := e.Left().ToOption(); ok {
		fmt.Println(reason)
	}
	// Output: not found
}

func ExampleCond() {
	age := 20
	e := either.Cond(age >= 18,
		func() string { return "adult" },
		func() int { return 18 - age },
	)
	fmt.Println(e)
	// Output: Right(adult)
}
