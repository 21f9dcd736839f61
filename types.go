// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import "time"

// Unit is the canonical empty value, used wherever a caller would otherwise
// write struct{} for "no meaningful result".
type Unit struct{}

// Nothing stands in for the uninhabited bottom type. Go has no type with
// zero inhabitants, so combinators whose declared Expected channel can never
// legitimately occur — orDie's result, a bracket release's own effect — are
// typed Effect[R, Nothing, A] by convention. A Nothing value should never be
// constructed; if one is observed as an Expected failure, that is itself a
// defect in the caller.
type Nothing struct{ _ [0]int }

// Pair is a minimal two-element tuple, used by Zip and Summarized.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Timed pairs a measured duration with the value it was measured around.
type Timed[A any] struct {
	Duration time.Duration
	Value    A
}
