// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Result is a pure Ok/Err sum type, independent of Effect: a values
// vocabulary for code that wants a success-or-error value without
// describing a deferred computation. Effect values can be built from a
// Result via ToEffect, and a Result can be recovered from an Exit via
// ToResult.
type Result[E, T any] struct {
	ok  bool
	val T
	err E
}

// Ok builds a successful Result.
func Ok[E, T any](v T) Result[E, T] { return Result[E, T]{ok: true, val: v} }

// Err builds a failed Result.
func Err[E, T any](e E) Result[E, T] { return Result[E, T]{err: e} }

// IsOk reports whether r is Ok.
func (r Result[E, T]) IsOk() bool { return r.ok }

// IsErr reports whether r is Err.
func (r Result[E, T]) IsErr() bool { return !r.ok }

// Get returns the Ok value and true, or the zero value and false.
func (r Result[E, T]) Get() (T, bool) {
	if r.ok {
		return r.val, true
	}
	var zero T
	return zero, false
}

// GetErr returns the Err value and true, or the zero value and false.
func (r Result[E, T]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// MapResult transforms the Ok value; Err passes through unchanged.
func MapResult[E, T, U any](r Result[E, T], f func(T) U) Result[E, U] {
	if r.ok {
		return Ok[E, U](f(r.val))
	}
	return Err[E, U](r.err)
}

// AndThenResult sequences r into f.
func AndThenResult[E, T, U any](r Result[E, T], f func(T) Result[E, U]) Result[E, U] {
	if r.ok {
		return f(r.val)
	}
	return Err[E, U](r.err)
}

// MapErrorResult transforms the Err value; Ok passes through unchanged.
func MapErrorResult[E, F, T any](r Result[E, T], f func(E) F) Result[F, T] {
	if r.ok {
		return Ok[F, T](r.val)
	}
	return Err[F, T](f(r.err))
}

// CatchErrorResult substitutes h(e) for an Err; an Ok passes through.
func CatchErrorResult[E, T any](r Result[E, T], h func(E) Result[E, T]) Result[E, T] {
	if r.ok {
		return r
	}
	return h(r.err)
}

// OrElseResult substitutes alt() for an Err; an Ok passes through.
func OrElseResult[E, T any](r Result[E, T], alt func() Result[E, T]) Result[E, T] {
	if r.ok {
		return r
	}
	return alt()
}

// WithDefault returns r's Ok value, or def on Err.
func WithDefault[E, T any](r Result[E, T], def T) T {
	if r.ok {
		return r.val
	}
	return def
}

// ContainsResult reports whether r is Ok(v).
func ContainsResult[E, T comparable](r Result[E, T], v T) bool {
	return r.ok && r.val == v
}

// FoldResult is the total eliminator over a Result.
func FoldResult[E, T, U any](r Result[E, T], onErr func(E) U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

// SequenceResult evaluates xs left to right, short-circuiting on the first
// Err. The success slice mirrors the input order.
func SequenceResult[E, T any](xs []Result[E, T]) Result[E, []T] {
	out := make([]T, 0, len(xs))
	for _, r := range xs {
		v, ok := r.Get()
		if !ok {
			e, _ := r.GetErr()
			return Err[E, []T](e)
		}
		out = append(out, v)
	}
	return Ok[E, []T](out)
}

// PartitionResult splits xs into its Ok values and its Err values, without
// short-circuiting.
func PartitionResult[E, T any](xs []Result[E, T]) ([]T, []E) {
	var oks []T
	var errs []E
	for _, r := range xs {
		if v, ok := r.Get(); ok {
			oks = append(oks, v)
		} else {
			e, _ := r.GetErr()
			errs = append(errs, e)
		}
	}
	return oks, errs
}

// ToEffect lifts a Result into Effect, the obvious adapter a pure values
// vocabulary needs to feed the effect algebra.
func ToEffect[R, E, T any](r Result[E, T]) Effect[R, E, T] {
	if v, ok := r.Get(); ok {
		return Succeed[R, E, T](v)
	}
	e, _ := r.GetErr()
	return Fail[R, E, T](e)
}

// ToResult converts a successful or Expected-failed Exit into a Result. A
// defect has no place in Result's two-variant shape, so ToResult panics with
// it instead of silently downgrading it to an Err.
func ToResult[E, T any](x Exit[E, T]) Result[E, T] {
	return Fold(x,
		func(e E) Result[E, T] { return Err[E, T](e) },
		func(d any) Result[E, T] { panic(d) },
		func(v T) Result[E, T] { return Ok[E, T](v) })
}

// resultSentinel is ResultComprehension's non-local exit token, built the
// same pointer-identity way as the effect Comprehension's scopeExit.
type resultSentinel struct {
	token *sentinel
	err   any
}

// ResultScope is the capability a ResultComprehension body receives.
type ResultScope[E any] struct{ token *sentinel }

// ResultComprehension evaluates body, letting it use ExtractResult to pull
// values out of inner Results and short-circuit on the first Err.
func ResultComprehension[E, A any](body func(ResultScope[E]) Result[E, A]) (result Result[E, A]) {
	sc := ResultScope[E]{token: new(sentinel)}
	defer func() {
		if r := recover(); r != nil {
			rs, ok := r.(*resultSentinel)
			if !ok || rs.token != sc.token {
				panic(r)
			}
			result = Err[E, A](rs.err.(E))
		}
	}()
	return body(sc)
}

// ExtractResult returns r's Ok value, or raises ResultComprehension's
// non-local exit on Err.
func ExtractResult[E, A any](sc ResultScope[E], r Result[E, A]) A {
	if v, ok := r.Get(); ok {
		return v
	}
	e, _ := r.GetErr()
	panic(&resultSentinel{token: sc.token, err: e})
}
