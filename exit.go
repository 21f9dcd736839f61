// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "fmt"

// Exit is the terminal value of interpretation: either Success(a) or
// Failure(cause).
type Exit[E, A any] struct {
	ok    bool
	value A
	cause Cause[E]
}

// Success builds a successful Exit.
func Success[E, A any](a A) Exit[E, A] {
	return Exit[E, A]{ok: true, value: a}
}

// Failure builds a failed Exit from a Cause.
func Failure[E, A any](c Cause[E]) Exit[E, A] {
	return Exit[E, A]{cause: c}
}

// IsSuccess reports whether this Exit is a Success.
func (x Exit[E, A]) IsSuccess() bool { return x.ok }

// IsFailure reports whether this Exit is a Failure.
func (x Exit[E, A]) IsFailure() bool { return !x.ok }

// Value returns the success payload and true, or the zero value and false.
func (x Exit[E, A]) Value() (A, bool) {
	if x.ok {
		return x.value, true
	}
	var zero A
	return zero, false
}

// CauseOf returns the failure Cause and true, or the zero Cause and false.
func (x Exit[E, A]) CauseOf() (Cause[E], bool) {
	if !x.ok {
		return x.cause, true
	}
	return Cause[E]{}, false
}

// MapExit transforms the success value; a Failure passes through unchanged.
func MapExit[E, A, B any](x Exit[E, A], f func(A) B) Exit[E, B] {
	if x.ok {
		return Success[E, B](f(x.value))
	}
	return Failure[E, B](x.cause)
}

// MapErrorExit transforms the Expected payload of a Failure; Success and
// Panic causes pass through unchanged.
func MapErrorExit[E, F, A any](x Exit[E, A], f func(E) F) Exit[F, A] {
	if x.ok {
		return Success[F, A](x.value)
	}
	return Failure[F, A](MapCause(x.cause, f))
}

// GetOrElse projects out the success value, or applies f to the cause.
func (x Exit[E, A]) GetOrElse(f func(Cause[E]) A) A {
	if x.ok {
		return x.value
	}
	return f(x.cause)
}

// GetOrZero projects out the success value and true, or the zero value and
// false. This is the idiomatic Go substitute for a nullable getOrNull: Go has
// no universal null for a value-typed A, so the bool carries the signal that
// a pointer or an interface type would otherwise carry via nil.
func (x Exit[E, A]) GetOrZero() (A, bool) {
	if x.ok {
		return x.value, true
	}
	var zero A
	return zero, false
}

// unhandledFailureError wraps an Expected failure that is not itself an
// error, so GetOrThrow always has something throwable to panic with.
type unhandledFailureError struct {
	cause any
}

func (e *unhandledFailureError) Error() string {
	return fmt.Sprintf("effect: unhandled failure: %v", e.cause)
}

// GetOrThrow projects out the success value. On Failure it panics: with the
// original defect if the cause is a Panic, with the Expected value itself if
// it implements error, or with a wrapping error otherwise.
func (x Exit[E, A]) GetOrThrow() A {
	if x.ok {
		return x.value
	}
	if d, ok := x.cause.Defect(); ok {
		panic(d)
	}
	e, _ := x.cause.Failure()
	if err, ok := any(e).(error); ok {
		panic(err)
	}
	panic(&unhandledFailureError{cause: e})
}

// Fold is the total eliminator over an Exit.
func Fold[E, A, T any](x Exit[E, A], onExpected func(E) T, onDefect func(any) T, onSuccess func(A) T) T {
	if x.ok {
		return onSuccess(x.value)
	}
	if d, ok := x.cause.Defect(); ok {
		return onDefect(d)
	}
	e, _ := x.cause.Failure()
	return onExpected(e)
}
