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

// cutEdges constructs exact-rational intersection points for each
// crossing, merges them with the pre-seeded T-junctions, and rewrites
// every affected edge into a lexicographically consistent chain of
// sub-edges. It returns the rational points constructed for
// crossings, in construction order, so PointDeduper can extend the
// float point table and bounds with them.
//
// Edges that are not the edgeIndex of any junction are left untouched
// (appended to the rebuilt slice as-is).
func cutEdges(floatPoints []Point, edges *[]Edge, crossings []crossing, junctions []junction, useColor bool) []ratPoint {
	var ratPoints []ratPoint

	for _, c := range crossings {
		ei, ej := (*edges)[c.i], (*edges)[c.j]
		pt, ok := intersectRational(
			floatPoints[ei.S], floatPoints[ei.T],
			floatPoints[ej.S], floatPoints[ej.T],
		)
		if !ok {
			continue
		}
		ratPoints = append(ratPoints, pt)
		idx := len(floatPoints) + len(ratPoints) - 1
		junctions = append(junctions,
			junction{edgeIndex: c.i, pointIdx: idx},
			junction{edgeIndex: c.j, pointIdx: idx},
		)
	}

	if len(junctions) == 0 {
		return ratPoints
	}

	junctions = sortAndCompact(junctions,
		func(a, b junction) bool { return junctionLess(a, b, floatPoints, ratPoints) },
		func(a, b junction) bool {
			return a.edgeIndex == b.edgeIndex && a.pointIdx == b.pointIdx
		},
	)

	cutByEdge := make(map[int][]int, len(junctions))
	for _, j := range junctions {
		cutByEdge[j.edgeIndex] = append(cutByEdge[j.edgeIndex], j.pointIdx)
	}

	rebuilt := make([]Edge, 0, len(*edges))
	for e, edge := range *edges {
		group, cut := cutByEdge[e]
		if !cut {
			rebuilt = append(rebuilt, edge)
			continue
		}

		s, t := edge.S, edge.T
		if lexLess(floatPoints[t], floatPoints[s]) {
			s, t = t, s
		}

		prev := s
		for _, p := range group {
			ne := Edge{S: prev, T: p}
			if useColor {
				ne.Color = edge.Color
			}
			rebuilt = append(rebuilt, ne)
			prev = p
		}
		last := Edge{S: prev, T: t}
		if useColor {
			last.Color = edge.Color
		}
		rebuilt = append(rebuilt, last)
	}
	*edges = rebuilt

	return ratPoints
}

func lexLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func junctionLess(a, b junction, floatPoints []Point, ratPoints []ratPoint) bool {
	if a.edgeIndex != b.edgeIndex {
		return a.edgeIndex < b.edgeIndex
	}
	ax, ay := ratAt(a.pointIdx, floatPoints, ratPoints)
	bx, by := ratAt(b.pointIdx, floatPoints, ratPoints)
	if cx := ax.Cmp(bx); cx != 0 {
		return cx < 0
	}
	return ay.Cmp(by) < 0
}
