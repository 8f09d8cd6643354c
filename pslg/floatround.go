// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pslg

import "math"

const (
	ulpHi             = 1 + 0x1p-52
	ulpLo             = 1 - 0x1p-53
	denormalThreshold = 0x1p-1021
	minPositive       = 0x1p-1074
	maxFinite         = math.MaxFloat64
)

// roundUp returns the smallest representable float64 strictly greater
// than x, for finite x. It is equivalent to math.Nextafter(x, +Inf)
// but implemented directly from the IEEE-754 constants, matching the
// piecewise definition this package is specified against.
func roundUp(x float64) float64 {
	switch {
	case x > 0:
		if x < denormalThreshold {
			return x + minPositive
		}
		// x * ulpHi lands two steps up when x's significand exceeds
		// 1.5; one step back toward zero (x * ulpLo) then corrects it.
		y := x * ulpHi
		if back := y * ulpLo; back > x {
			return back
		}
		return y
	case x < 0:
		if x > -denormalThreshold {
			return x + minPositive
		}
		if math.IsInf(x, -1) {
			return -maxFinite
		}
		return x * ulpLo
	default:
		return minPositive
	}
}

// roundDown returns the largest representable float64 strictly less
// than x, for finite x. Symmetric with roundUp.
func roundDown(x float64) float64 {
	switch {
	case x > 0:
		if x < denormalThreshold {
			return x - minPositive
		}
		if math.IsInf(x, 1) {
			return maxFinite
		}
		return x * ulpLo
	case x < 0:
		if x > -denormalThreshold {
			return x - minPositive
		}
		// Mirror of roundUp's positive branch.
		y := x * ulpHi
		if back := y * ulpLo; back < x {
			return back
		}
		return y
	default:
		return -minPositive
	}
}
