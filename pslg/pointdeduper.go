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

// dedupPoints extends floatPoints with rounded images of ratPoints,
// links points whose conservative rounded boxes overlap via
// union-find, and compacts floatPoints down to one representative per
// equivalence class. It returns nil if no two points were found to
// coincide (the sentinel "none" from spec.md §4.6), and otherwise a
// labels slice mapping every pre-compaction index to its post-compaction
// index.
func dedupPoints(floatPoints *[]Point, ratPoints []ratPoint) []int {
	bounds := make([]Bounds, len(*floatPoints))
	for i, p := range *floatPoints {
		bounds[i] = boundsOfPoint(p)
	}

	for _, rp := range ratPoints {
		xlo, xhi := boundRat(rp.x)
		ylo, yhi := boundRat(rp.y)
		bounds = append(bounds, Bounds{xlo, ylo, xhi, yhi})
		*floatPoints = append(*floatPoints, Point{toFloat(rp.x), toFloat(rp.y)})
	}

	n := len(*floatPoints)
	uf := newUnionFind(n)
	anyLink := false
	reportSelfOverlaps(bounds, func(i, j int) {
		uf.link(i, j)
		anyLink = true
	})
	if !anyLink {
		return nil
	}

	roots := make([]int, n)
	for i := range roots {
		roots[i] = uf.find(i)
	}

	compactID := make(map[int]int)
	for _, r := range distinctAscending(roots) {
		compactID[r] = len(compactID)
	}

	labels := make([]int, n)
	compacted := make([]Point, len(compactID))
	for i := 0; i < n; i++ {
		id := compactID[roots[i]]
		labels[i] = id
		if roots[i] == i {
			compacted[id] = (*floatPoints)[i]
		}
	}
	*floatPoints = compacted

	return labels
}

func toFloat(r *big.Rat) float64 {
	f, _ := new(big.Float).SetRat(r).Float64()
	return f
}

// distinctAscending returns the distinct values in xs, ascending.
func distinctAscending(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return sortAndCompact(out,
		func(a, b int) bool { return a < b },
		func(a, b int) bool { return a == b },
	)
}
