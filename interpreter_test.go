// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"testing"

	"code.hybscloud.com/effect"
)

// TestDeeplyChainedAndThenIsStackSafe builds a 100,000-level andThen chain.
// The interpreter's explicit continuation stack must absorb this without
// growing the host call stack per level.
func TestDeeplyChainedAndThenIsStackSafe(t *testing.T) {
	const depth = 100_000
	m := effect.Succeed[unit, string, int](0)
	for i := 0; i < depth; i++ {
		m = effect.AndThen(m, func(x int) effect.Effect[unit, string, int] {
			return effect.Succeed[unit, string, int](x + 1)
		})
	}
	x := runIt(t, m)
	v, ok := x.Value()
	if !ok || v != depth {
		t.Fatalf("deep andThen chain = (%d, %v), want (%d, true)", v, ok, depth)
	}
}

// TestFoldFrameTieBreakFirstWins exercises the unwind tie-break rule:
// the first Fold frame reached wins, with no look-ahead past it.
func TestFoldFrameTieBreakFirstWins(t *testing.T) {
	inner := effect.Fail[unit, string, int]("deep")
	innerFolded := effect.FoldCauseM(inner,
		func(v int) effect.Effect[unit, string, int] { return effect.Succeed[unit, string, int](v) },
		func(c effect.Cause[string]) effect.Effect[unit, string, int] {
			e, _ := c.Failure()
			return effect.Succeed[unit, string, int](len(e))
		})
	outerFolded := effect.FoldCauseM(innerFolded,
		func(v int) effect.Effect[unit, string, int] { return effect.Succeed[unit, string, int](v * 100) },
		func(c effect.Cause[string]) effect.Effect[unit, string, int] {
			t.Fatal("outer onFailure must not run: the inner Fold already handled the failure")
			return effect.Succeed[unit, string, int](-1)
		})
	x := runIt(t, outerFolded)
	v, _ := x.Value()
	if v != 400 {
		t.Fatalf("got %d, want 400 (len(\"deep\")=4, *100)", v)
	}
}

// TestUnwindDiscardsPlainFramesBetweenFoldFrames: plain FlatMap frames
// pushed between a failure and the nearest enclosing Fold must be skipped,
// never invoked, while unwinding.
func TestUnwindDiscardsPlainFramesBetweenFoldFrames(t *testing.T) {
	failing := effect.Fail[unit, string, int]("x")
	withPlainFrame := effect.FlatMap(failing, func(v int) effect.Effect[unit, string, int] {
		t.Fatal("plain continuation must be discarded while unwinding a failure")
		return effect.Succeed[unit, string, int](v)
	})
	recovered := effect.Recover(withPlainFrame, func(string) effect.Effect[unit, string, int] {
		return effect.Succeed[unit, string, int](7)
	})
	x := runIt(t, recovered)
	v, _ := x.Value()
	if v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestAccessSeesCurrentEnvironmentAcrossFlatMap(t *testing.T) {
	m := effect.FlatMap(effect.Access[unit, string](func(u unit) int { return 1 }), func(a int) effect.Effect[unit, string, int] {
		return effect.Access[unit, string](func(u unit) int { return a + 1 })
	})
	x := runIt(t, m)
	v, _ := x.Value()
	if v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}
