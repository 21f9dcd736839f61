// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// sentinel is a pointer-identity token. Two sentinels are never equal unless
// they are the same allocation, which is exactly the property a comprehension
// needs: it must catch only its own non-local exit, never an enclosing or
// sibling comprehension's.
type sentinel struct{}

// scopeExit is the panic value Extract raises to short-circuit the
// enclosing comprehension. Only the comprehension whose token matches may
// catch it; every other recover site must re-panic it unchanged.
type scopeExit struct {
	token *sentinel
	cause erasedCause
}

// scope is the untyped state behind a Comprehension invocation: the
// sentinel identifying it, and the environment its Extract calls evaluate
// under.
type scope struct {
	token *sentinel
	env   Erased
}

// Scope is the capability a Comprehension body receives. It carries no
// public state; its only use is as the first argument to Extract. Storing a
// Scope outside the body that received it and using it later is undefined
// behaviour — the spec this package implements explicitly forbids it.
type Scope[R, E any] struct{ s *scope }

// Extract recursively drives the interpreter over m under the comprehension's
// current environment. On success it returns the value directly. On failure
// it raises a non-local exit private to the enclosing comprehension, which
// terminates that comprehension with Failure(cause) — extract never returns
// in that case.
//
// Using Extract outside the comprehension that produced sc, or after that
// comprehension has already returned, is undefined behaviour: the resulting
// panic will not match any enclosing sentinel and will be observed as a
// defect by whatever comprehension (or run) does catch it.
func Extract[R, E, X any](sc Scope[R, E], m Effect[R, E, X]) X {
	exit := run(m.n, sc.s.env)
	if exit.ok {
		return exit.value.(X)
	}
	panic(&scopeExit{token: sc.s.token, cause: exit.cause})
}
