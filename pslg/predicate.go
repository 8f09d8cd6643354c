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

// orientationSafeEpsilon bounds the relative round-off error of the
// float64 determinant below, in the style of Shewchuk's robust
// predicates: if the computed determinant is not provably larger than
// this bound times the magnitude of its terms, the float64 fast path
// is inconclusive and the exact big.Rat path below is used instead.
const orientationSafeEpsilon = 1e-12

// orientation returns +1 if c is counterclockwise of the directed line
// a->b, -1 if clockwise, and 0 if a, b, c are collinear. It is exact:
// the fast float64 filter below only returns an answer when the sign
// of the determinant cannot have been flipped by rounding error;
// otherwise it falls back to exact big.Rat arithmetic.
func orientation(a, b, c Point) int {
	if sign, ok := orientationFilter(a, b, c); ok {
		return sign
	}
	return orientationExact(a, b, c)
}

func orientationFilter(a, b, c Point) (sign int, ok bool) {
	detleft := (a.X - c.X) * (b.Y - c.Y)
	detright := (a.Y - c.Y) * (b.X - c.X)
	det := detleft - detright

	var detsum float64
	switch {
	case detleft > 0:
		if detright <= 0 {
			return signOf(det), true
		}
		detsum = detleft + detright
	case detleft < 0:
		if detright >= 0 {
			return signOf(det), true
		}
		detsum = -detleft - detright
	default:
		return signOf(det), true
	}

	errBound := orientationSafeEpsilon * detsum
	if det >= errBound || -det >= errBound {
		return signOf(det), true
	}
	return 0, false
}

func orientationExact(a, b, c Point) int {
	ax, ay := new(big.Rat).SetFloat64(a.X), new(big.Rat).SetFloat64(a.Y)
	bx, by := new(big.Rat).SetFloat64(b.X), new(big.Rat).SetFloat64(b.Y)
	cx, cy := new(big.Rat).SetFloat64(c.X), new(big.Rat).SetFloat64(c.Y)

	abx := new(big.Rat).Sub(bx, ax)
	aby := new(big.Rat).Sub(by, ay)
	acx := new(big.Rat).Sub(cx, ax)
	acy := new(big.Rat).Sub(cy, ay)

	left := new(big.Rat).Mul(abx, acy)
	right := new(big.Rat).Mul(aby, acx)
	det := left.Sub(left, right)
	return det.Sign()
}

func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p lies on the closed segment [a, b],
// assuming p, a, b are already known to be collinear.
func onSegment(a, b, p Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// segmentsIntersect reports whether the closed segments [p1, p2] and
// [q1, q2] intersect, exactly in sign: it returns true for proper
// crossings, collinear overlaps, and endpoint-on-interior touches
// alike. Degenerate zero-length segments (p1 == p2) are treated as a
// single point and tested for membership in the other segment.
func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	if o3 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if o4 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	return false
}
