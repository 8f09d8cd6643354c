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

// boundRat returns [lo, hi] such that lo <= r <= hi as reals, with hi
// equal to lo or the float64 immediately above it. r is not mutated.
func boundRat(r *big.Rat) (lo, hi float64) {
	f, _ := new(big.Float).SetRat(r).Float64()
	rf := new(big.Rat).SetFloat64(f)

	switch rf.Cmp(r) {
	case -1:
		return f, roundUp(f)
	case 1:
		return roundDown(f), f
	default:
		return f, f
	}
}
