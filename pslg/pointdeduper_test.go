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
	"math/big"
	"testing"
)

func TestDedupPointsNoCoincidenceReturnsNil(t *testing.T) {
	points := []Point{{0, 0}, {5, 5}, {10, 0}}
	labels := dedupPoints(&points, nil)
	if labels != nil {
		t.Errorf("labels = %v, want nil for no coincident points", labels)
	}
	if len(points) != 3 {
		t.Errorf("points mutated to length %d, want 3 unchanged", len(points))
	}
}

func TestDedupPointsMergesExactDuplicate(t *testing.T) {
	points := []Point{{0, 0}, {0, 0}, {5, 5}}
	labels := dedupPoints(&points, nil)
	if labels == nil {
		t.Fatal("expected a non-nil labels slice")
	}
	if labels[0] != labels[1] {
		t.Errorf("labels[0]=%d labels[1]=%d, want equal for exact duplicates", labels[0], labels[1])
	}
	if labels[2] == labels[0] {
		t.Error("the distinct point should not share a label with the duplicates")
	}
	if len(points) != 2 {
		t.Errorf("got %d compacted points, want 2", len(points))
	}
}

func TestDedupPointsMergesRationalNeighbor(t *testing.T) {
	// A rational point whose nearest double coincides exactly with an
	// existing float point must be merged with it.
	points := []Point{{1, 1}}
	ratPoints := []ratPoint{{x: big.NewRat(1, 1), y: big.NewRat(1, 1)}}

	labels := dedupPoints(&points, ratPoints)
	if labels == nil {
		t.Fatal("expected a non-nil labels slice")
	}
	if labels[0] != labels[1] {
		t.Errorf("labels[0]=%d labels[1]=%d, want equal", labels[0], labels[1])
	}
	if len(points) != 1 {
		t.Errorf("got %d compacted points, want 1", len(points))
	}
}

func TestDedupPointsLabelsAreDense(t *testing.T) {
	points := []Point{{0, 0}, {0, 0}, {1, 1}, {1, 1}, {2, 2}}
	labels := dedupPoints(&points, nil)
	if labels == nil {
		t.Fatal("expected a non-nil labels slice")
	}
	if len(points) != 3 {
		t.Fatalf("got %d compacted points, want 3", len(points))
	}
	for _, l := range labels {
		if l < 0 || l >= len(points) {
			t.Errorf("label %d out of range [0, %d)", l, len(points))
		}
	}
}
