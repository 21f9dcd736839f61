// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// BracketExit acquires a resource, uses it, and always releases it once
// acquire has succeeded — release additionally observes the Exit use ended
// with, so it can tell commit from rollback apart. If acquire fails, the
// whole bracket fails with that cause and release is never invoked.
//
// release's own outcome never surfaces: whatever use's Exit was becomes the
// bracket's result, success or failure alike. This matches the historical
// bracket contract this combinator is modelled on — release failures are
// swallowed, not merged into the result.
func BracketExit[R, E, Res, A any](
	acquire Effect[R, E, Res],
	release func(Res, Exit[E, A]) Effect[R, Nothing, Unit],
	use func(Res) Effect[R, E, A],
) Effect[R, E, A] {
	return FlatMap(acquire, func(res Res) Effect[R, E, A] {
		return FoldCauseM(use(res),
			func(a A) Effect[R, E, A] {
				return FlatMap(swallowExit[R, E](release(res, Success[E, A](a))),
					func(Unit) Effect[R, E, A] { return Succeed[R, E, A](a) })
			},
			func(c Cause[E]) Effect[R, E, A] {
				return FlatMap(swallowExit[R, E](release(res, Failure[E, A](c))),
					func(Unit) Effect[R, E, A] { return Halt[R, E, A](c) })
			})
	})
}

// Bracket is BracketExit with a release that does not need to see use's Exit.
func Bracket[R, E, Res, A any](
	acquire Effect[R, E, Res],
	release func(Res) Effect[R, Nothing, Unit],
	use func(Res) Effect[R, E, A],
) Effect[R, E, A] {
	return BracketExit(acquire, func(res Res, _ Exit[E, A]) Effect[R, Nothing, Unit] { return release(res) }, use)
}

// BracketIgnore is Bracket with a no-op release, for resources that need no
// cleanup of their own.
func BracketIgnore[R, E, Res, A any](acquire Effect[R, E, Res], use func(Res) Effect[R, E, A]) Effect[R, E, A] {
	return Bracket(acquire, func(Res) Effect[R, Nothing, Unit] { return Succeed[R, Nothing, Unit](Unit{}) }, use)
}

// swallowExit runs m for its effect and always succeeds with Unit,
// discarding any Expected failure or defect it produces.
func swallowExit[R, E any](m Effect[R, Nothing, Unit]) Effect[R, E, Unit] {
	return FoldCauseM(m,
		func(u Unit) Effect[R, E, Unit] { return Succeed[R, E, Unit](u) },
		func(Cause[Nothing]) Effect[R, E, Unit] { return Succeed[R, E, Unit](Unit{}) })
}
