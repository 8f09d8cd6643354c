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

// sortAndCompact sorts items in place with less, then removes adjacent
// elements considered equal by equal, keeping the first of each run.
// It returns the compacted slice, which shares storage with items.
func sortAndCompact[T any](items []T, less, equal func(a, b T) bool) []T {
	sort.Slice(items, func(i, j int) bool {
		return less(items[i], items[j])
	})

	if len(items) == 0 {
		return items
	}

	out := items[:1]
	for i := 1; i < len(items); i++ {
		if equal(items[i], out[len(out)-1]) {
			continue
		}
		out = append(out, items[i])
	}
	return out
}
