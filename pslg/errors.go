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

import "errors"

// Sentinel errors returned by Clean. Use errors.Is to test for them;
// all are returned wrapped with additional context.
var (
	// ErrInvalidEdge is returned when an edge references an
	// out-of-range point index or has equal endpoints.
	ErrInvalidEdge = errors.New("pslg: invalid edge")

	// ErrColorLengthMismatch is returned when a non-nil colors slice
	// does not have the same length as edges.
	ErrColorLengthMismatch = errors.New("pslg: colors length does not match edges length")

	// ErrIterationLimit is returned when the snap-rounding fixed-point
	// loop exceeds its defensive iteration cap. The caller's data may
	// be partially modified when this is returned.
	ErrIterationLimit = errors.New("pslg: exceeded iteration limit")
)
