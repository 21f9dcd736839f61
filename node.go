// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Erased represents a type-erased value flowing through the interpreter.
// The public Effect[R, E, A] wrapper is type-safe; internally, node and its
// nine variants carry Erased payloads so a single untyped trampoline can
// drive every instantiation of Effect. Concrete types are recovered via type
// assertions at the node/Effect boundary, never inside the interpreter loop.
type Erased = any

// node is the internal, type-erased representation of an Effect value. It is
// a pure marker interface; dispatch in the interpreter uses a type switch,
// not a tag field.
type node interface {
	isNode()
}

// erasedCause is the type-erased counterpart of Cause[E], used so the
// interpreter's unwind path does not need to know E.
type erasedCause struct {
	value    any
	isDefect bool
}

func causeFromTyped[E any](c Cause[E]) erasedCause {
	if d, ok := c.Defect(); ok {
		return erasedCause{value: d, isDefect: true}
	}
	e, _ := c.Failure()
	return erasedCause{value: e}
}

func causeToTyped[E any](c erasedCause) Cause[E] {
	if c.isDefect {
		return Panic[E](c.value)
	}
	return Expected(c.value.(E))
}

// succNode is a completed computation carrying its success value.
type succNode struct{ value Erased }

func (succNode) isNode() {}

// failNode is a completed computation carrying its failure cause.
type failNode struct{ cause erasedCause }

func (failNode) isNode() {}

// accessNode reads the current environment and produces the next node.
type accessNode struct{ f func(env Erased) node }

func (accessNode) isNode() {}

// flatMapNode sequences inner into k, a plain (non-Fold) continuation.
type flatMapNode struct {
	inner node
	k     func(Erased) node
}

func (flatMapNode) isNode() {}

// foldNode installs a both-branches continuation: onSuccess on success,
// onFailure — observing the full Cause, including defects — on failure.
type foldNode struct {
	inner     node
	onSuccess func(Erased) node
	onFailure func(erasedCause) node
}

func (foldNode) isNode() {}

// partialNode runs a thunk whose panics are caught and reclassified as
// Expected failures (unless the panic value is a FatalError).
type partialNode struct{ thunk func() Erased }

func (partialNode) isNode() {}

// totalNode runs a thunk assumed never to panic. If it panics anyway, the
// interpreter's general defect-reclassification rule applies.
type totalNode struct{ thunk func() Erased }

func (totalNode) isNode() {}

// comprehensionNode carries a body that may use its Scope's Extract to pull
// values out of inner effects via a non-local exit.
type comprehensionNode struct{ body func(*scope) node }

func (comprehensionNode) isNode() {}

// provideNode replaces the current environment for the duration of inner.
type provideNode struct {
	env   Erased
	inner node
}

func (provideNode) isNode() {}
