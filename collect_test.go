// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"testing"

	"code.hybscloud.com/effect"
)

func TestSequencePreservesOrderOnSuccess(t *testing.T) {
	xs := []effect.Effect[unit, string, int]{
		effect.Succeed[unit, string, int](1),
		effect.Succeed[unit, string, int](2),
		effect.Succeed[unit, string, int](3),
	}
	x := runIt(t, effect.Sequence(xs))
	got, ok := x.Value()
	if !ok {
		t.Fatal("Sequence of all-success should succeed")
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSequenceShortCircuitsOnFirstFailure(t *testing.T) {
	var ranThird bool
	xs := []effect.Effect[unit, string, int]{
		effect.Succeed[unit, string, int](1),
		effect.Fail[unit, string, int]("error"),
		effect.FlatMap(effect.Succeed[unit, string, int](0), func(int) effect.Effect[unit, string, int] {
			ranThird = true
			return effect.Succeed[unit, string, int](3)
		}),
	}
	x := runIt(t, effect.Sequence(xs))
	c, ok := x.CauseOf()
	if !ok {
		t.Fatal("Sequence should fail when any element fails")
	}
	e, _ := c.Failure()
	if e != "error" {
		t.Fatalf("cause = %q, want \"error\"", e)
	}
	if ranThird {
		t.Fatal("Sequence must short-circuit: the element after a failure must never run")
	}
}

func TestSequenceOnElevenOks(t *testing.T) {
	xs := make([]effect.Effect[unit, string, int], 11)
	for i := range xs {
		xs[i] = effect.Succeed[unit, string, int](i)
	}
	x := runIt(t, effect.Sequence(xs))
	got, ok := x.Value()
	if !ok || len(got) != 11 {
		t.Fatalf("got %v, ok=%v, want 11 elements", got, ok)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestTraverseSatisfiesMapThenSequenceLaw(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4}
	f := func(x int) effect.Effect[unit, string, int] { return effect.Succeed[unit, string, int](x * x) }

	traversed := effect.Traverse(xs, f)
	mapped := make([]effect.Effect[unit, string, int], len(xs))
	for i, x := range xs {
		mapped[i] = f(x)
	}
	sequenced := effect.Sequence(mapped)

	tv, _ := runIt(t, traversed).Value()
	sv, _ := runIt(t, sequenced).Value()
	if len(tv) != len(sv) {
		t.Fatalf("traverse/sequence length mismatch: %v vs %v", tv, sv)
	}
	for i := range tv {
		if tv[i] != sv[i] {
			t.Fatalf("traverse(f) != map(f).sequence() at index %d: %v vs %v", i, tv, sv)
		}
	}
}

func TestTraverseShortCircuits(t *testing.T) {
	xs := []int{1, 2, 3}
	f := func(x int) effect.Effect[unit, string, int] {
		if x == 2 {
			return effect.Fail[unit, string, int]("two")
		}
		return effect.Succeed[unit, string, int](x)
	}
	x := runIt(t, effect.Traverse(xs, f))
	c, ok := x.CauseOf()
	if !ok {
		t.Fatal("Traverse should fail")
	}
	e, _ := c.Failure()
	if e != "two" {
		t.Fatalf("cause = %q, want \"two\"", e)
	}
}
