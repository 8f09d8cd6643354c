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

import "math/big"

// intersectRational computes the exact intersection of the (infinite)
// lines through p1-p2 and q1-q2, using exact big.Rat arithmetic
// throughout so the result is a true rational point rather than a
// rounded approximation. ok is false when the lines are parallel or
// coincident, in which case the caller should rely on the collinear
// T-junction path instead.
//
// Ported from the float64/big.Float determinant-based line
// intersection used for robust planar geometry elsewhere in the
// ecosystem, generalized to exact big.Rat so the result can feed
// RatBounds without ever losing precision.
func intersectRational(p1, p2, q1, q2 Point) (pt ratPoint, ok bool) {
	p1x, p1y := new(big.Rat).SetFloat64(p1.X), new(big.Rat).SetFloat64(p1.Y)
	p2x, p2y := new(big.Rat).SetFloat64(p2.X), new(big.Rat).SetFloat64(p2.Y)
	q1x, q1y := new(big.Rat).SetFloat64(q1.X), new(big.Rat).SetFloat64(q1.Y)
	q2x, q2y := new(big.Rat).SetFloat64(q2.X), new(big.Rat).SetFloat64(q2.Y)

	dpx := new(big.Rat).Sub(p2x, p1x)
	dpy := new(big.Rat).Sub(p2y, p1y)
	dqx := new(big.Rat).Sub(q2x, q1x)
	dqy := new(big.Rat).Sub(q2y, q1y)

	denom := new(big.Rat).Sub(
		new(big.Rat).Mul(dpx, dqy),
		new(big.Rat).Mul(dpy, dqx),
	)
	if denom.Sign() == 0 {
		return ratPoint{}, false
	}

	wx := new(big.Rat).Sub(q1x, p1x)
	wy := new(big.Rat).Sub(q1y, p1y)

	numT := new(big.Rat).Sub(
		new(big.Rat).Mul(wx, dqy),
		new(big.Rat).Mul(wy, dqx),
	)
	t := new(big.Rat).Quo(numT, denom)

	x := new(big.Rat).Add(p1x, new(big.Rat).Mul(t, dpx))
	y := new(big.Rat).Add(p1y, new(big.Rat).Mul(t, dpy))

	return ratPoint{x: x, y: y}, true
}
