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

// Package pslg snap-rounds planar straight-line graphs: given a set of
// points and a set of undirected edges referencing them by index, it
// resolves crossings and T-junctions, merges coincident vertices after
// rounding to float64, and removes duplicate edges, iterating to a
// fixed point.
package pslg

import "math/big"

// Point is a vertex of the graph in double precision.
type Point struct {
	X, Y float64
}

// Edge is an undirected edge between two point indices. Color is the
// internal working representation's color tag; callers drive it
// through Clean's separate colors argument rather than setting it
// directly — Clean ignores any pre-existing Color on input and
// overwrites it with the matching colors[i] when colors is non-nil.
type Edge struct {
	S, T  int
	Color int32
}

// Bounds is an axis-aligned bounding box with Xmin <= Xmax and
// Ymin <= Ymax.
type Bounds struct {
	Xmin, Ymin, Xmax, Ymax float64
}

// overlaps reports whether b and o share any point, inclusive of their
// boundaries.
func (b Bounds) overlaps(o Bounds) bool {
	if b.Xmax < o.Xmin || o.Xmax < b.Xmin {
		return false
	}
	if b.Ymax < o.Ymin || o.Ymax < b.Ymin {
		return false
	}
	return true
}

func boundsOfPoint(p Point) Bounds {
	return Bounds{p.X, p.Y, p.X, p.Y}
}

func boundsOfEdge(a, b Point) Bounds {
	xmin, xmax := a.X, b.X
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	ymin, ymax := a.Y, b.Y
	if ymin > ymax {
		ymin, ymax = ymax, ymin
	}
	return Bounds{xmin, ymin, xmax, ymax}
}

// ratPoint is a point with exact rational coordinates, constructed
// only as the intersection of two input segments.
type ratPoint struct {
	x, y *big.Rat
}

// junction records that pointIdx lies on edgeIndex and the edge must
// be cut there. pointIdx indexes into floatPoints when less than
// len(floatPoints), and otherwise into the parallel rational-point
// table, offset by len(floatPoints).
type junction struct {
	edgeIndex int
	pointIdx  int
}

// ratAt returns the exact rational coordinates of a junction's point,
// given the float point table it was drawn against and the rational
// points constructed by the cutter.
func ratAt(idx int, floatPoints []Point, ratPoints []ratPoint) (x, y *big.Rat) {
	if idx < len(floatPoints) {
		p := floatPoints[idx]
		return new(big.Rat).SetFloat64(p.X), new(big.Rat).SetFloat64(p.Y)
	}
	rp := ratPoints[idx-len(floatPoints)]
	return rp.x, rp.y
}
