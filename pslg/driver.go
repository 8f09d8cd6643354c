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

import "fmt"

// Options controls the snap-rounding fixed-point loop.
type Options struct {
	// MaxIterations caps how many passes the fixed-point loop may run
	// before Clean gives up and returns ErrIterationLimit. Zero means
	// use a default proportional to the size of the input.
	MaxIterations int
}

// Clean snap-rounds the planar straight-line graph described by points
// and edges, in place: it removes crossings and T-junctions, merges
// vertices that coincide after rounding to float64, and removes
// duplicate edges, iterating until no further modification is
// required. If colors is non-nil, its length must equal len(*edges) on
// entry; colors are carried alongside edges as a distinguishing
// attribute during deduplication and are rewritten to match the final
// edge list on return.
//
// Clean reports whether it modified points, edges, or colors.
func Clean(points *[]Point, edges *[]Edge, colors *[]int32, opts Options) (bool, error) {
	if err := validateInput(*points, *edges, colors); err != nil {
		return false, err
	}

	useColor := colors != nil

	working := make([]Edge, len(*edges))
	for i, e := range *edges {
		working[i] = e
		if useColor {
			working[i].Color = (*colors)[i]
		}
	}

	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 8 * (len(*points) + len(*edges) + 16)
	}

	modified := false
	for iter := 0; ; iter++ {
		if iter >= maxIterations {
			return modified, fmt.Errorf("%w: after %d passes", ErrIterationLimit, iter)
		}

		passModified, needsAnother, err := snapRoundPass(points, &working, useColor)
		if err != nil {
			return modified, err
		}
		modified = modified || passModified
		if !needsAnother {
			break
		}
	}

	if !useColor {
		*edges = working
		return modified, nil
	}

	if modified {
		*edges = make([]Edge, len(working))
		*colors = make([]int32, len(working))
		for i, e := range working {
			(*edges)[i] = Edge{S: e.S, T: e.T}
			(*colors)[i] = e.Color
		}
	}
	return modified, nil
}

// snapRoundPass runs one iteration of CrossingFinder, TJunctionFinder,
// EdgeCutter, PointDeduper, and EdgeDeduper. It returns whether
// anything was modified this pass, and whether another pass is
// required for the fixed-point loop to have examined the geometry
// after this pass's modifications.
func snapRoundPass(floatPoints *[]Point, edges *[]Edge, useColor bool) (modified, needsAnother bool, err error) {
	edgeBounds := buildEdgeBounds(*floatPoints, *edges)
	crossings := findCrossings(*floatPoints, *edges, edgeBounds)

	vertexBounds := buildPointBounds(*floatPoints)
	tjunctions := findTJunctions(*floatPoints, *edges, edgeBounds, vertexBounds)

	ratPoints := cutEdges(*floatPoints, edges, crossings, tjunctions, useColor)

	labels := dedupPoints(floatPoints, ratPoints)

	edgeChanged := dedupEdges(edges, labels, useColor)

	needsAnother = labels != nil || len(crossings) > 0 || len(tjunctions) > 0
	modified = needsAnother || edgeChanged
	return modified, needsAnother, nil
}

func validateInput(points []Point, edges []Edge, colors *[]int32) error {
	if colors != nil && len(*colors) != len(edges) {
		return fmt.Errorf("%w: %d colors for %d edges", ErrColorLengthMismatch, len(*colors), len(edges))
	}
	n := len(points)
	for i, e := range edges {
		if e.S < 0 || e.S >= n || e.T < 0 || e.T >= n {
			return fmt.Errorf("%w: edge %d references out-of-range point (%d, %d)", ErrInvalidEdge, i, e.S, e.T)
		}
		if e.S == e.T {
			return fmt.Errorf("%w: edge %d has equal endpoints (%d)", ErrInvalidEdge, i, e.S)
		}
	}
	return nil
}
