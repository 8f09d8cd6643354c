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

// crossing is an unordered pair of edge indices (i < j) whose closed
// segments intersect and which share no endpoint.
type crossing struct {
	i, j int
}

// findCrossings reports every pair of edges whose segments intersect
// in a way that is not explained by a shared endpoint: proper
// crossings and collinear overlaps between otherwise-disjoint edges.
func findCrossings(points []Point, edges []Edge, edgeBounds []Bounds) []crossing {
	var out []crossing
	reportSelfOverlaps(edgeBounds, func(i, j int) {
		ei, ej := edges[i], edges[j]
		if sharesEndpoint(ei, ej) {
			return
		}
		if segmentsIntersect(points[ei.S], points[ei.T], points[ej.S], points[ej.T]) {
			out = append(out, crossing{i, j})
		}
	})
	return out
}

func sharesEndpoint(a, b Edge) bool {
	return a.S == b.S || a.S == b.T || a.T == b.S || a.T == b.T
}
