// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "fmt"

// rawExit is the type-erased counterpart of Exit[E, A].
type rawExit struct {
	ok    bool
	value Erased
	cause erasedCause
}

// contFrame is one entry on the interpreter's continuation stack: either a
// plain flat-map continuation (isFold == false, only plain is set) or a Fold
// frame carrying both branches.
type contFrame struct {
	isFold    bool
	plain     func(Erased) node
	onSuccess func(Erased) node
	onFailure func(erasedCause) node
}

// interpreter holds the two stacks the specification calls for: an explicit
// continuation stack and an environment stack. All sequencing is push/pop on
// these slices — there is no host recursion per construct.
type interpreter struct {
	conts []contFrame
	envs  []Erased
}

func (ip *interpreter) push(f contFrame) {
	ip.conts = append(ip.conts, f)
}

func (ip *interpreter) pop() (contFrame, bool) {
	n := len(ip.conts)
	if n == 0 {
		return contFrame{}, false
	}
	f := ip.conts[n-1]
	ip.conts = ip.conts[:n-1]
	return f, true
}

func (ip *interpreter) currentEnv() Erased {
	return ip.envs[len(ip.envs)-1]
}

func (ip *interpreter) pushEnv(e Erased) {
	ip.envs = append(ip.envs, e)
}

func (ip *interpreter) popEnv() {
	ip.envs = ip.envs[:len(ip.envs)-1]
}

// run drives root to an Exit under env, using a freshly acquired interpreter.
// This is the single entry point every other file in the package calls
// through: Runtime.UnsafeRunSync at the top, and Extract recursively for
// each value a Comprehension pulls out of an inner effect.
func run(root node, env Erased) rawExit {
	ip := acquireInterpreter(env)
	defer releaseInterpreter(ip)
	return ip.loop(root)
}

// loop is the trampoline: a tight iterative evaluator over three phases —
// reduce the current node, propagate a success value to the next
// continuation, or unwind on failure until a Fold frame is found. Each phase
// transition runs inside step, which is the boundary where a panic escaping
// anywhere other than EffectPartial's own thunk gets reclassified as a
// Panic cause (unless it is a FatalError, which is re-raised unchanged).
func (ip *interpreter) loop(root node) rawExit {
	mode := 0
	cur := root
	var value Erased
	var cause erasedCause
	var done bool
	var result rawExit

	for !done {
		ip.step(&mode, &cur, &value, &cause, &done, &result)
	}
	return result
}

func (ip *interpreter) step(mode *int, cur *node, value *Erased, cause *erasedCause, done *bool, result *rawExit) {
	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(FatalError); ok {
				panic(fe)
			}
			*cause = erasedCause{value: r, isDefect: true}
			*mode = 2
		}
	}()

	switch *mode {
	case 0:
		ip.reduce(cur, value, cause, mode)
	case 1:
		ip.propagateSuccess(cur, value, mode, done, result)
	case 2:
		ip.unwind(cur, cause, mode, done, result)
	default:
		panic(fmt.Sprintf("effect: unreachable interpreter mode %d", *mode))
	}
}

func (ip *interpreter) reduce(cur *node, value *Erased, cause *erasedCause, mode *int) {
	switch t := (*cur).(type) {
	case succNode:
		*value = t.value
		*mode = 1
	case failNode:
		*cause = t.cause
		*mode = 2
	case accessNode:
		*cur = t.f(ip.currentEnv())
	case flatMapNode:
		ip.push(contFrame{plain: t.k})
		*cur = t.inner
	case foldNode:
		ip.push(contFrame{isFold: true, onSuccess: t.onSuccess, onFailure: t.onFailure})
		*cur = t.inner
	case partialNode:
		v, c, failed := evalPartial(t.thunk)
		if failed {
			*cause = c
			*mode = 2
		} else {
			*value = v
			*mode = 1
		}
	case totalNode:
		*value = t.thunk()
		*mode = 1
	case comprehensionNode:
		ip.runComprehension(t, cur, cause, mode)
	case provideNode:
		ip.pushEnv(t.env)
		ip.push(contFrame{
			isFold: true,
			onSuccess: func(v Erased) node {
				ip.popEnv()
				return succNode{value: v}
			},
			onFailure: func(c erasedCause) node {
				ip.popEnv()
				return failNode{cause: c}
			},
		})
		*cur = t.inner
	default:
		panic(fmt.Sprintf("effect: unknown node type %T", t))
	}
}

func (ip *interpreter) propagateSuccess(cur *node, value *Erased, mode *int, done *bool, result *rawExit) {
	f, ok := ip.pop()
	if !ok {
		*done = true
		*result = rawExit{ok: true, value: *value}
		return
	}
	if f.isFold {
		*cur = f.onSuccess(*value)
	} else {
		*cur = f.plain(*value)
	}
	*mode = 0
}

func (ip *interpreter) unwind(cur *node, cause *erasedCause, mode *int, done *bool, result *rawExit) {
	for {
		f, ok := ip.pop()
		if !ok {
			*done = true
			*result = rawExit{cause: *cause}
			return
		}
		if f.isFold {
			*cur = f.onFailure(*cause)
			*mode = 0
			return
		}
		// Plain frames are discarded while unwinding.
	}
}

func (ip *interpreter) runComprehension(t comprehensionNode, cur *node, cause *erasedCause, mode *int) {
	sc := &scope{token: new(sentinel), env: ip.currentEnv()}
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*scopeExit)
			if !ok || se.token != sc.token {
				panic(r)
			}
			*cause = se.cause
			*mode = 2
		}
	}()
	*cur = t.body(sc)
	*mode = 0
}

// evalPartial runs thunk, catching a non-fatal panic and reclassifying it as
// an Expected(error) failure. A FatalError panic is re-raised unchanged.
func evalPartial(thunk func() Erased) (value Erased, cause erasedCause, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(FatalError); ok {
				panic(fe)
			}
			cause = erasedCause{value: toExpectedError(r)}
			failed = true
		}
	}()
	value = thunk()
	return
}

func toExpectedError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
