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

import "testing"

func TestCutEdgesSplitsCrossingEdges(t *testing.T) {
	points := []Point{{0, 0}, {2, 2}, {0, 2}, {2, 0}}
	edges := []Edge{{S: 0, T: 1}, {S: 2, T: 3}}
	crossings := []crossing{{i: 0, j: 1}}

	ratPoints := cutEdges(points, &edges, crossings, nil, false)
	if len(ratPoints) != 1 {
		t.Fatalf("got %d rational points, want 1", len(ratPoints))
	}
	if len(edges) != 4 {
		t.Fatalf("got %d edges after cutting, want 4 (two per crossing edge)", len(edges))
	}

	newPointIdx := len(points) // 4, the first new rational point
	for _, e := range edges {
		if e.S != newPointIdx && e.T != newPointIdx {
			t.Errorf("edge %+v does not touch the new intersection point %d", e, newPointIdx)
		}
	}
}

func TestCutEdgesNoJunctionsLeavesEdgesUntouched(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}}
	edges := []Edge{{S: 0, T: 1}}

	ratPoints := cutEdges(points, &edges, nil, nil, false)
	if len(ratPoints) != 0 {
		t.Errorf("got %d rational points, want 0", len(ratPoints))
	}
	if len(edges) != 1 || edges[0] != (Edge{S: 0, T: 1}) {
		t.Errorf("edges = %+v, want untouched", edges)
	}
}

func TestCutEdgesChainsMultipleTJunctionsInOrder(t *testing.T) {
	// Edge 0-3 passes through interior points 1 and 2, out of order in
	// the input array, to exercise the sort-by-position-along-edge step.
	points := []Point{
		{0, 0}, // 0: left endpoint
		{3, 0}, // 1: interior, far
		{1, 0}, // 2: interior, near
		{4, 0}, // 3: right endpoint
	}
	edges := []Edge{{S: 0, T: 3}}
	junctions := []junction{
		{edgeIndex: 0, pointIdx: 1},
		{edgeIndex: 0, pointIdx: 2},
	}

	cutEdges(points, &edges, nil, junctions, false)

	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}
	want := []Edge{{S: 0, T: 2}, {S: 2, T: 1}, {S: 1, T: 3}}
	for i, e := range edges {
		if e != want[i] {
			t.Errorf("edges[%d] = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestCutEdgesPreservesColor(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {2, 0}}
	edges := []Edge{{S: 0, T: 1, Color: 7}}
	junctions := []junction{{edgeIndex: 0, pointIdx: 2}}

	cutEdges(points, &edges, nil, junctions, true)

	for _, e := range edges {
		if e.Color != 7 {
			t.Errorf("edge %+v lost its color", e)
		}
	}
}

func TestCutEdgesLeavesUntouchedEdgesAlone(t *testing.T) {
	points := []Point{{0, 0}, {4, 0}, {2, 0}, {10, 10}, {11, 11}}
	edges := []Edge{{S: 0, T: 1}, {S: 3, T: 4}}
	junctions := []junction{{edgeIndex: 0, pointIdx: 2}}

	cutEdges(points, &edges, nil, junctions, false)

	var sawUntouched bool
	for _, e := range edges {
		if e.S == 3 && e.T == 4 {
			sawUntouched = true
		}
	}
	if !sawUntouched {
		t.Error("edge 3-4 should survive unchanged since it has no junction")
	}
}
