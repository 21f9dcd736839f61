// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Sequence evaluates xs left to right, short-circuiting on the first
// Expected failure. The success slice mirrors the input order.
//
// Construction is O(1): each call only builds the FlatMap linking xs[i] to a
// closure over the rest, the recursive call inside that closure is not
// forced until the interpreter actually unwinds that frame. A 100,000
// element slice builds one frame per Sequence call, not 100,000 nested Go
// calls.
func Sequence[R, E, A any](xs []Effect[R, E, A]) Effect[R, E, []A] {
	return sequenceFrom(xs, 0, make([]A, 0, len(xs)))
}

func sequenceFrom[R, E, A any](xs []Effect[R, E, A], i int, acc []A) Effect[R, E, []A] {
	if i >= len(xs) {
		return Succeed[R, E, []A](acc)
	}
	return FlatMap(xs[i], func(a A) Effect[R, E, []A] {
		next := acc
		if i == 0 {
			// The first link runs once per run of the tree, so each run
			// appends into its own backing array rather than a shared one.
			next = make([]A, 0, len(xs))
		}
		return sequenceFrom(xs, i+1, append(next, a))
	})
}

// Traverse satisfies xs.traverse(f) ≡ xs.map(f).sequence(), evaluated
// directly without materialising the intermediate effect slice.
func Traverse[R, E, A, B any](xs []A, f func(A) Effect[R, E, B]) Effect[R, E, []B] {
	return traverseFrom(xs, f, 0, make([]B, 0, len(xs)))
}

func traverseFrom[R, E, A, B any](xs []A, f func(A) Effect[R, E, B], i int, acc []B) Effect[R, E, []B] {
	if i >= len(xs) {
		return Succeed[R, E, []B](acc)
	}
	return FlatMap(f(xs[i]), func(b B) Effect[R, E, []B] {
		next := acc
		if i == 0 {
			next = make([]B, 0, len(xs))
		}
		return traverseFrom(xs, f, i+1, append(next, b))
	})
}
