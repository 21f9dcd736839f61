// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "sync"

// interpreterPool recycles the interpreter's scratch stacks across runs.
// This is deliberately narrower than pooling node values: an Effect tree is
// immutable and freely shareable (the same tree may be run many times, even
// concurrently from different goroutines), so nothing that is part of a
// node chain is ever pooled or zeroed destructively. Only the per-run
// bookkeeping — the continuation stack and environment stack, which never
// outlive a single run call — is reused.
var interpreterPool = sync.Pool{New: func() any { return new(interpreter) }}

func acquireInterpreter(env Erased) *interpreter {
	ip := interpreterPool.Get().(*interpreter)
	ip.conts = ip.conts[:0]
	ip.envs = append(ip.envs[:0], env)
	return ip
}

func releaseInterpreter(ip *interpreter) {
	for i := range ip.conts {
		ip.conts[i] = contFrame{}
	}
	ip.conts = ip.conts[:0]
	ip.envs = ip.envs[:0]
	interpreterPool.Put(ip)
}
