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

// findTJunctions reports every (edgeIndex, vertexIndex) pair where
// vertexIndex's point lies on edgeIndex's closed segment but is not
// one of its own two endpoints.
func findTJunctions(points []Point, edges []Edge, edgeBounds, vertexBounds []Bounds) []junction {
	var out []junction
	reportCrossOverlaps(edgeBounds, vertexBounds, func(edgeIdx, vertexIdx int) {
		e := edges[edgeIdx]
		if vertexIdx == e.S || vertexIdx == e.T {
			return
		}
		v := points[vertexIdx]
		if segmentsIntersect(points[e.S], points[e.T], v, v) {
			out = append(out, junction{edgeIndex: edgeIdx, pointIdx: vertexIdx})
		}
	})
	return out
}
