// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// box holds one immutable value inline.
// It is stored by value inside Either, so copying an Either copies the
// payload and no two Either values ever alias the same box.
type box[T any] struct {
	value T
}

func boxed[T any](v T) box[T] {
	return box[T]{value: v}
}

func (b box[T]) unbox() T {
	return b.value
}
