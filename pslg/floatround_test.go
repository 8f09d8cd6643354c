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

import (
	"math"
	"testing"
)

func TestRoundUpStrictlyGreater(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 1e300, -1e300, 1e-310, -1e-310, math.MaxFloat64, -math.MaxFloat64} {
		got := roundUp(x)
		if !(got > x) {
			t.Errorf("roundUp(%v) = %v, want strictly greater", x, got)
		}
	}
}

func TestRoundDownStrictlyLess(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 1e300, -1e300, 1e-310, -1e-310, math.MaxFloat64, -math.MaxFloat64} {
		got := roundDown(x)
		if !(got < x) {
			t.Errorf("roundDown(%v) = %v, want strictly less", x, got)
		}
	}
}

func TestRoundUpIsNextafter(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.1, -0.1, 1e300, -1e300, 1e-310, -1e-310} {
		want := math.Nextafter(x, math.Inf(1))
		if got := roundUp(x); got != want {
			t.Errorf("roundUp(%v) = %v, want %v (Nextafter)", x, got, want)
		}
	}
}

func TestRoundDownIsNextafter(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.1, -0.1, 1e300, -1e300, 1e-310, -1e-310} {
		want := math.Nextafter(x, math.Inf(-1))
		if got := roundDown(x); got != want {
			t.Errorf("roundDown(%v) = %v, want %v (Nextafter)", x, got, want)
		}
	}
}

func TestRoundUpAtMaxFinite(t *testing.T) {
	if got := roundUp(math.MaxFloat64); !math.IsInf(got, 1) {
		t.Errorf("roundUp(MaxFloat64) = %v, want +Inf", got)
	}
}

func TestRoundDownAtMinFinite(t *testing.T) {
	if got := roundDown(-math.MaxFloat64); !math.IsInf(got, -1) {
		t.Errorf("roundDown(-MaxFloat64) = %v, want -Inf", got)
	}
}
