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

import "sort"

// reportSelfOverlaps invokes report(i, j), i < j, once for every pair
// of boxes in boxes whose bounds overlap (inclusive of boundaries). It
// sweeps boxes left to right by Xmin, keeping an active set of boxes
// whose Xmax has not yet fallen behind the sweep position, and tests
// only the remaining Y axis against that active set.
func reportSelfOverlaps(boxes []Bounds, report func(i, j int)) {
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return boxes[order[a]].Xmin < boxes[order[b]].Xmin
	})

	var active []int
	for _, i := range order {
		bi := boxes[i]

		kept := active[:0]
		for _, j := range active {
			if boxes[j].Xmax < bi.Xmin {
				continue
			}
			kept = append(kept, j)
		}
		active = kept

		for _, j := range active {
			if yOverlap(boxes[j], bi) {
				if j < i {
					report(j, i)
				} else {
					report(i, j)
				}
			}
		}
		active = append(active, i)
	}
}

// reportCrossOverlaps invokes report(i, j) once for every pair with
// a[i] overlapping b[j]. Unlike reportSelfOverlaps it
// never compares two elements from the same list.
func reportCrossOverlaps(a, b []Bounds, report func(i, j int)) {
	type ev struct {
		x   float64
		set int
		idx int
	}
	events := make([]ev, 0, len(a)+len(b))
	for i, bx := range a {
		events = append(events, ev{x: bx.Xmin, set: 0, idx: i})
	}
	for j, bx := range b {
		events = append(events, ev{x: bx.Xmin, set: 1, idx: j})
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].x < events[j].x
	})

	var activeA, activeB []int
	for _, e := range events {
		var box Bounds
		if e.set == 0 {
			box = a[e.idx]
		} else {
			box = b[e.idx]
		}

		activeA = pruneExpired(activeA, a, box.Xmin)
		activeB = pruneExpired(activeB, b, box.Xmin)

		if e.set == 0 {
			for _, j := range activeB {
				if yOverlap(box, b[j]) {
					report(e.idx, j)
				}
			}
			activeA = append(activeA, e.idx)
		} else {
			for _, i := range activeA {
				if yOverlap(a[i], box) {
					report(i, e.idx)
				}
			}
			activeB = append(activeB, e.idx)
		}
	}
}

func pruneExpired(active []int, boxes []Bounds, sweepX float64) []int {
	kept := active[:0]
	for _, i := range active {
		if boxes[i].Xmax >= sweepX {
			kept = append(kept, i)
		}
	}
	return kept
}

func yOverlap(a, b Bounds) bool {
	return a.Ymax >= b.Ymin && b.Ymax >= a.Ymin
}
