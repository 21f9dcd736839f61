// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// FatalError marks a defect that the interpreter must never capture as a
// Cause. Panicking with a FatalError unwinds past every Fold frame —
// including foldCauseM — and escapes the run entirely, mirroring a
// host-level failure (stack overflow, out-of-memory) that a real VM would
// not let any handler observe.
type FatalError struct {
	Err error
}

func (f FatalError) Error() string { return f.Err.Error() }

func (f FatalError) Unwrap() error { return f.Err }
