// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "time"

// Map transforms the success value. Does not observe failures: a defect or
// an Expected failure in m passes through f untouched.
func Map[R, E, A, B any](m Effect[R, E, A], f func(A) B) Effect[R, E, B] {
	return FlatMap(m, func(a A) Effect[R, E, B] { return Succeed[R, E, B](f(a)) })
}

// MapError transforms an Expected failure; defects pass through unchanged.
func MapError[R, E, F, A any](m Effect[R, E, A], g func(E) F) Effect[R, F, A] {
	return FoldCauseM(m,
		func(a A) Effect[R, F, A] { return Succeed[R, F, A](a) },
		func(c Cause[E]) Effect[R, F, A] {
			if d, ok := c.Defect(); ok {
				return Halt[R, F, A](Panic[F](d))
			}
			e, _ := c.Failure()
			return Fail[R, F, A](g(e))
		})
}

// AndThen sequences m into k. An alias for FlatMap kept for the callers who
// think of it as "and then".
func AndThen[R, E, A, B any](m Effect[R, E, A], k func(A) Effect[R, E, B]) Effect[R, E, B] {
	return FlatMap(m, k)
}

// FoldM is FoldCauseM that re-raises defects unchanged: only an Expected
// failure reaches onFailure.
func FoldM[R, E, A, B any](m Effect[R, E, A], onFailure func(E) Effect[R, E, B], onSuccess func(A) Effect[R, E, B]) Effect[R, E, B] {
	return FoldCauseM(m, onSuccess, func(c Cause[E]) Effect[R, E, B] {
		if d, ok := c.Defect(); ok {
			return Halt[R, E, B](Panic[E](d))
		}
		e, _ := c.Failure()
		return onFailure(e)
	})
}

// Recover substitutes h(e) for an Expected failure; a defect still surfaces
// as a defect. This is the one canonical name this package offers for the
// combinator some effect libraries also call catchError, or, or orElse.
func Recover[R, E, A any](m Effect[R, E, A], h func(E) Effect[R, E, A]) Effect[R, E, A] {
	return FoldM(m, h, func(a A) Effect[R, E, A] { return Succeed[R, E, A](a) })
}

// Attempt turns m into an effect that always succeeds with a Result,
// capturing the Expected channel. A defect in m still propagates as a
// defect out of the returned effect — Attempt never reclassifies Panic as
// an Err.
func Attempt[R, E, A any](m Effect[R, E, A]) Effect[R, Nothing, Result[E, A]] {
	return FoldCauseM(m,
		func(a A) Effect[R, Nothing, Result[E, A]] { return Succeed[R, Nothing, Result[E, A]](Ok[E, A](a)) },
		func(c Cause[E]) Effect[R, Nothing, Result[E, A]] {
			if d, ok := c.Defect(); ok {
				return Halt[R, Nothing, Result[E, A]](Panic[Nothing](d))
			}
			e, _ := c.Failure()
			return Succeed[R, Nothing, Result[E, A]](Err[E, A](e))
		})
}

// Flip swaps the success and Expected-failure channels: a success a becomes
// a failure Expected(a), an Expected failure e becomes a success e. A defect
// still propagates as a defect — Flip never reclassifies it either way.
func Flip[R, E, A any](m Effect[R, E, A]) Effect[R, A, E] {
	return FoldCauseM(m,
		func(a A) Effect[R, A, E] { return Fail[R, A, E](a) },
		func(c Cause[E]) Effect[R, A, E] {
			if d, ok := c.Defect(); ok {
				return Halt[R, A, E](Panic[A](d))
			}
			e, _ := c.Failure()
			return Succeed[R, A, E](e)
		})
}

// RefineOrDie reclassifies a failure against refine: a match keeps it as
// Expected (under the narrower type E2); anything else is panicked, which
// the interpreter's general defect-reclassification rule turns into a
// Panic cause — "re-thrown" in spec terms, observed here as a defect rather
// than a process-level exception. A defect in m propagates unchanged.
func RefineOrDie[R, E, E2, A any](m Effect[R, E, A], refine func(E) (E2, bool)) Effect[R, E2, A] {
	return FoldCauseM(m,
		func(a A) Effect[R, E2, A] { return Succeed[R, E2, A](a) },
		func(c Cause[E]) Effect[R, E2, A] {
			if d, ok := c.Defect(); ok {
				return Halt[R, E2, A](Panic[E2](d))
			}
			e, _ := c.Failure()
			if e2, ok := refine(e); ok {
				return Fail[R, E2, A](e2)
			}
			panic(e)
		})
}

// OrDie converts every Expected failure into a panic — reclassified by the
// interpreter as a Panic cause — yielding an effect whose declared Expected
// channel is the uninhabited bottom type. A defect in m propagates
// unchanged.
func OrDie[R, E, A any](m Effect[R, E, A]) Effect[R, Nothing, A] {
	return FoldCauseM(m,
		func(a A) Effect[R, Nothing, A] { return Succeed[R, Nothing, A](a) },
		func(c Cause[E]) Effect[R, Nothing, A] {
			if d, ok := c.Defect(); ok {
				return Halt[R, Nothing, A](Panic[Nothing](d))
			}
			e, _ := c.Failure()
			panic(e)
		})
}

// Zip sequences left then right, pairing their results. Fails eagerly on the
// first Expected failure of left, otherwise on a failure of right.
func Zip[R, E, A, B any](left Effect[R, E, A], right Effect[R, E, B]) Effect[R, E, Pair[A, B]] {
	return ZipWith(left, right, func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
}

// ZipWith is Zip with a combining function in place of pairing.
func ZipWith[R, E, A, B, C any](left Effect[R, E, A], right Effect[R, E, B], f func(A, B) C) Effect[R, E, C] {
	return FlatMap(left, func(a A) Effect[R, E, C] {
		return FlatMap(right, func(b B) Effect[R, E, C] {
			return Succeed[R, E, C](f(a, b))
		})
	})
}

// FailOn yields Unit if !pred, otherwise fails with e().
func FailOn[R, E any](pred bool, e func() E) Effect[R, E, Unit] {
	if !pred {
		return Succeed[R, E, Unit](Unit{})
	}
	return Fail[R, E, Unit](e())
}

// FailIf is FailOn under the name the derived-combinator surface uses.
func FailIf[R, E any](pred bool, e func() E) Effect[R, E, Unit] {
	return FailOn[R, E](pred, e)
}

// FailOnNull fails with e() if v is nil, otherwise succeeds with *v.
func FailOnNull[R, E, A any](v *A, e func() E) Effect[R, E, A] {
	if v == nil {
		return Fail[R, E, A](e())
	}
	return Succeed[R, E, A](*v)
}

// OnNullFail is FailOnNull under another name; the historical "require"
// spelling is not exposed.
func OnNullFail[R, E, A any](v *A, e func() E) Effect[R, E, A] {
	return FailOnNull[R, E, A](v, e)
}

// OnNullDefault succeeds with def() if v is nil, otherwise with *v. Unlike
// OnNullFail it never fails.
func OnNullDefault[R, E, A any](v *A, def func() A) Effect[R, E, A] {
	if v == nil {
		return Succeed[R, E, A](def())
	}
	return Succeed[R, E, A](*v)
}

// Guard succeeds with Unit whatever cond is. It takes no effect argument, so
// it does not run another computation or discard its value; cond only
// documents intent at the call site. Guard itself never fails — pair it
// with FailOn when the condition should abort the effect.
func Guard[R, E any](cond bool) Effect[R, E, Unit] {
	_ = cond
	return Succeed[R, E, Unit](Unit{})
}

// Forever repeats m indefinitely on success. A failing m surfaces
// immediately: the interpreter discards the plain continuation that would
// have re-entered Forever while unwinding on failure, so the self-reference
// below is never forced in that case.
func Forever[R, E, A any](m Effect[R, E, A]) Effect[R, E, A] {
	return FlatMap(m, func(A) Effect[R, E, A] { return Forever(m) })
}

// Measured runs m and returns the wall-clock duration it took alongside its
// result.
func Measured[R, E, A any](m Effect[R, E, A]) Effect[R, E, Timed[A]] {
	return Map(Summarized(m, func(start, end time.Time) time.Duration { return end.Sub(start) }),
		func(p Pair[time.Duration, A]) Timed[A] { return Timed[A]{Duration: p.First, Value: p.Second} })
}

// Summarized runs m, recording a wall-clock timestamp immediately before and
// after, and pairs diff(start, end) with m's result.
func Summarized[R, E, A, S any](m Effect[R, E, A], diff func(start, end time.Time) S) Effect[R, E, Pair[S, A]] {
	return FlatMap(EffectTotal[R, E, time.Time](func() time.Time { return time.Now() }),
		func(start time.Time) Effect[R, E, Pair[S, A]] {
			return FlatMap(m, func(a A) Effect[R, E, Pair[S, A]] {
				return Map(EffectTotal[R, E, time.Time](func() time.Time { return time.Now() }),
					func(end time.Time) Pair[S, A] { return Pair[S, A]{First: diff(start, end), Second: a} })
			})
		})
}
