// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Effect is a deferred computation: a contravariant environment R, an
// Expected failure channel E, and a success value A. An Effect value is
// immutable and freely shareable — it describes a computation, it does not
// run one. Evaluation happens only when a Runtime drives it through the
// interpreter.
//
// There are exactly nine primitive constructors: Succeed, Halt, AccessM,
// FlatMap, FoldCauseM, EffectPartial, EffectTotal, Comprehension, and
// Provide. Every other combinator in this package is expressible in terms
// of these nine.
type Effect[R, E, A any] struct{ n node }

// Succeed yields a, unconditionally.
func Succeed[R, E, A any](a A) Effect[R, E, A] {
	return Effect[R, E, A]{n: succNode{value: a}}
}

// Halt yields a failing Exit carrying the given Cause.
func Halt[R, E, A any](c Cause[E]) Effect[R, E, A] {
	return Effect[R, E, A]{n: failNode{cause: causeFromTyped(c)}}
}

// Fail yields an Expected failure. Shorthand for Halt(Expected(e)).
func Fail[R, E, A any](e E) Effect[R, E, A] {
	return Halt[R, E, A](Expected(e))
}

// AccessM is the environment-reading primitive: it applies f to the current
// environment and continues with the effect f produces.
func AccessM[R, E, A any](f func(R) Effect[R, E, A]) Effect[R, E, A] {
	return Effect[R, E, A]{n: accessNode{f: func(env Erased) node {
		return f(env.(R)).n
	}}}
}

// Access is pure-projection sugar over AccessM: it reads the environment and
// lifts a plain value into the effect, never failing on its own.
func Access[R, E, A any](f func(R) A) Effect[R, E, A] {
	return AccessM[R, E, A](func(r R) Effect[R, E, A] {
		return Succeed[R, E, A](f(r))
	})
}

// FlatMap sequences m into k: a plain continuation that only runs on
// success. Also known as andThen / monadic bind.
func FlatMap[R, E, A, B any](m Effect[R, E, A], k func(A) Effect[R, E, B]) Effect[R, E, B] {
	return Effect[R, E, B]{n: flatMapNode{
		inner: m.n,
		k:     func(v Erased) node { return k(v.(A)).n },
	}}
}

// FoldCauseM installs a both-branches continuation over inner. It is the
// only primitive that observes defects in addition to Expected failures;
// the failure-handling combinators (MapError, FoldM, Recover, Attempt, …)
// are built from it, while Map and AndThen are built from FlatMap.
func FoldCauseM[R, E0, E, A, X any](
	inner Effect[R, E0, X],
	onSuccess func(X) Effect[R, E, A],
	onFailure func(Cause[E0]) Effect[R, E, A],
) Effect[R, E, A] {
	return Effect[R, E, A]{n: foldNode{
		inner:     inner.n,
		onSuccess: func(v Erased) node { return onSuccess(v.(X)).n },
		onFailure: func(c erasedCause) node { return onFailure(causeToTyped[E0](c)).n },
	}}
}

// EffectPartial runs thunk, a computation that may panic. A non-fatal panic
// is caught and reclassified as an Expected(error) failure; a FatalError
// panic is re-thrown, aborting the run. The Expected channel of the result
// is fixed to error, matching thunk's only means of signalling failure.
func EffectPartial[R, A any](thunk func() A) Effect[R, error, A] {
	return Effect[R, error, A]{n: partialNode{thunk: func() Erased { return thunk() }}}
}

// EffectTotal runs thunk, a computation assumed never to panic. There is no
// error channel: if thunk panics anyway, the interpreter's general
// defect-reclassification rule turns the panic into a Panic cause.
func EffectTotal[R, E, A any](thunk func() A) Effect[R, E, A] {
	return Effect[R, E, A]{n: totalNode{thunk: func() Erased { return thunk() }}}
}

// Comprehension suspends an imperative-looking block. body receives a Scope
// capability; pass it, together with an inner effect, to Extract to pull out
// that effect's success value or short-circuit the whole comprehension on
// its failure. See scope.go.
func Comprehension[R, E, A any](body func(Scope[R, E]) Effect[R, E, A]) Effect[R, E, A] {
	return Effect[R, E, A]{n: comprehensionNode{body: func(s *scope) node {
		return body(Scope[R, E]{s: s}).n
	}}}
}

// Provide replaces the environment visible to inner for the duration of its
// evaluation, regardless of whether R0 differs from the caller's own R.
func Provide[R, R0, E, A any](inner Effect[R0, E, A], env R0) Effect[R, E, A] {
	return Effect[R, E, A]{n: provideNode{env: env, inner: inner.n}}
}
