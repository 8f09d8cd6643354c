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

// dedupEdges applies labels (if present) to every edge's endpoints,
// canonicalizes endpoint order (smaller index first), drops
// zero-length edges, sorts lexicographically (extending to color when
// useColor), and removes exact duplicates. It reports whether the
// edge list actually changed.
func dedupEdges(edges *[]Edge, labels []int, useColor bool) bool {
	before := len(*edges)

	relabeled := make([]Edge, 0, before)
	for _, e := range *edges {
		s, t := e.S, e.T
		if labels != nil {
			s, t = labels[s], labels[t]
		}
		if s == t {
			continue
		}
		if s > t {
			s, t = t, s
		}
		relabeled = append(relabeled, Edge{S: s, T: t, Color: e.Color})
	}

	deduped := sortAndCompact(relabeled,
		func(a, b Edge) bool { return edgeLess(a, b, useColor) },
		func(a, b Edge) bool { return edgeEqual(a, b, useColor) },
	)

	changed := len(deduped) != before
	if !changed {
		for i := range deduped {
			if deduped[i] != (*edges)[i] {
				changed = true
				break
			}
		}
	}

	*edges = deduped
	return changed
}

func edgeLess(a, b Edge, useColor bool) bool {
	if a.S != b.S {
		return a.S < b.S
	}
	if a.T != b.T {
		return a.T < b.T
	}
	if useColor {
		return a.Color < b.Color
	}
	return false
}

func edgeEqual(a, b Edge, useColor bool) bool {
	if a.S != b.S || a.T != b.T {
		return false
	}
	return !useColor || a.Color == b.Color
}
