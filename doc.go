// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effect provides a typed effect runtime: effectful computations as
// first-class values, evaluated by a trampolined interpreter that never
// grows the host call stack per construct.
//
// # Core type
//
// [Effect] carries three static parameters: a required environment R, an
// Expected failure channel E, and a success value A. There are exactly nine
// primitive constructors — [Succeed], [Halt], [AccessM], [FlatMap],
// [FoldCauseM], [EffectPartial], [EffectTotal], [Comprehension], and
// [Provide] — and every other combinator in this package is expressed in
// terms of them.
//
// # Cause and Exit
//
// [Cause] is the tagged union of an Expected failure and a Panic (an
// untyped defect). [Exit] is the terminal value of evaluation: Success(a)
// or Failure(cause).
//
//	r := effect.UnsafeRunSync(rt, m)
//	msg := effect.Fold(r,
//		func(e MyError) string { ... }, // Expected
//		func(d any) string { ... },     // defect
//		func(a int) string { ... },     // success
//	)
//
// # Running an effect
//
//	rt := effect.NewRuntime(myEnv)
//	exit := effect.UnsafeRunSync(rt, m)
//
// [UnsafeRun] is the A-returning variant: it panics on Failure instead of
// returning an Exit.
//
// # Comprehension
//
// [Comprehension] offers linearised sequencing without nested higher-order
// calls. Its body receives a [Scope]; pass it to [Extract] together with an
// inner effect to pull out that effect's success value, short-circuiting
// the whole comprehension on failure:
//
//	m := effect.Comprehension(func(s effect.Scope[Env, error]) effect.Effect[Env, error, int] {
//		a := effect.Extract(s, x)
//		b := effect.Extract(s, y)
//		return effect.Succeed[Env, error, int](a + b)
//	})
//
// # Transact
//
// [Transact] layers commit-on-success, rollback-on-failure semantics over
// any environment whose [HasConnection] exposes a [Connection].
//
// # Non-goals
//
// No fibers, no parallel combinators, no scheduler beyond the interpreter
// loop, no asynchronous or suspending execution, no tracing of evaluation.
package effect
