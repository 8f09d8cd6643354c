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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import "github.com/ajroetker/go-highway/hwy"

// buildEdgeBounds computes the axis-aligned bounding box of each edge
// in edges. The two endpoint coordinate streams are processed batched
// (Structure-of-Arrays) through go-highway so the min/max reduction
// vectorizes across edges, the same SoA batching idiom used for
// per-vertex reductions elsewhere in this stack.
func buildEdgeBounds(points []Point, edges []Edge) []Bounds {
	n := len(edges)
	ax := make([]float64, n)
	ay := make([]float64, n)
	bx := make([]float64, n)
	by := make([]float64, n)
	for i, e := range edges {
		ax[i], ay[i] = points[e.S].X, points[e.S].Y
		bx[i], by[i] = points[e.T].X, points[e.T].Y
	}

	xmin := make([]float64, n)
	xmax := make([]float64, n)
	ymin := make([]float64, n)
	ymax := make([]float64, n)
	batchMinMaxPair(ax, bx, xmin, xmax)
	batchMinMaxPair(ay, by, ymin, ymax)

	bounds := make([]Bounds, n)
	for i := range bounds {
		bounds[i] = Bounds{xmin[i], ymin[i], xmax[i], ymax[i]}
	}
	return bounds
}

// buildPointBounds returns one degenerate box per point.
func buildPointBounds(points []Point) []Bounds {
	bounds := make([]Bounds, len(points))
	for i, p := range points {
		bounds[i] = boundsOfPoint(p)
	}
	return bounds
}

// batchMinMaxPair computes, elementwise, lo[i] = min(a[i], b[i]) and
// hi[i] = max(a[i], b[i]) for every i, vectorized via go-highway in
// the same Structure-of-Arrays style as BaseBatchCrossProduct.
func batchMinMaxPair[T hwy.Floats](a, b []T, lo, hi []T) {
	size := min(len(a), len(b), len(lo), len(hi))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			va := hwy.Load(a[offset:])
			vb := hwy.Load(b[offset:])

			hwy.Store(hwy.Min(va, vb), lo[offset:])
			hwy.Store(hwy.Max(va, vb), hi[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			va := hwy.MaskLoad(mask, a[offset:])
			vb := hwy.MaskLoad(mask, b[offset:])

			hwy.MaskStore(mask, hwy.Min(va, vb), lo[offset:])
			hwy.MaskStore(mask, hwy.Max(va, vb), hi[offset:])
		},
	)
}
