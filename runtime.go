// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Runtime binds an immutable environment value for use when invoking the
// interpreter. It carries no other state and is safe to share across
// goroutines; prefer passing it explicitly rather than capturing it in
// process-wide state — no global runtime exists in this package.
type Runtime[R any] struct{ env R }

// NewRuntime captures env by value.
func NewRuntime[R any](env R) Runtime[R] {
	return Runtime[R]{env: env}
}

// UnsafeRunSync drives m to completion under rt's environment and returns
// its Exit.
func UnsafeRunSync[R, E, A any](rt Runtime[R], m Effect[R, E, A]) Exit[E, A] {
	raw := run(m.n, Erased(rt.env))
	if raw.ok {
		return Success[E, A](raw.value.(A))
	}
	return Failure[E, A](causeToTyped[E](raw.cause))
}

// UnsafeRun drives m to completion and returns A directly. On Failure it
// panics: with the original defect if the cause is a Panic, with the
// Expected value itself if it implements error, or with a wrapping error
// carrying the Expected value otherwise.
func UnsafeRun[R, E, A any](rt Runtime[R], m Effect[R, E, A]) A {
	return UnsafeRunSync(rt, m).GetOrThrow()
}
