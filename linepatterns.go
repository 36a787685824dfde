// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// dashPatterns maps line pattern indices 0-23 to fixed dash arrays, per
// spec.md §4.3.5. Pattern 0 is solid (no dashes); patterns 2-23 are scaled
// by the resolved line width at emission time.
//
// Open Question (spec.md §9.3): patterns > 23 and the custom pattern 0xfe
// (referenced by name from a stencil) are documented to degrade to solid —
// implemented as such below in ResolveDashPattern, per the Open Question
// decision recorded in DESIGN.md.
var dashPatterns = map[uint8][]float64{
	0:  nil, // solid
	1:  nil, // solid
	2:  {4, 2},
	3:  {1, 2},
	4:  {4, 2, 1, 2},
	5:  {8, 2},
	6:  {8, 2, 1, 2},
	7:  {8, 2, 1, 2, 1, 2},
	8:  {12, 3},
	9:  {1, 2, 1, 2},
	10: {4, 2, 4, 2, 1, 2},
	11: {12, 3, 3, 3},
	12: {16, 4},
	13: {3, 2},
	14: {6, 2},
	15: {2, 2},
	16: {6, 2, 2, 2},
	17: {10, 3},
	18: {10, 3, 2, 3},
	19: {14, 4},
	20: {1, 1},
	21: {2, 1},
	22: {3, 1},
	23: {4, 1},
}

// ResolveDashPattern returns the dash array for a line pattern index,
// scaled by stroke width w (w == 0 means unit scale). Anything outside the
// documented 0-23 range, including the custom-pattern sentinel 0xfe,
// degrades to solid (nil) — spec.md §4.3.5, §9.3.
func ResolveDashPattern(pattern uint8, w float64) []float64 {
	dashes, ok := dashPatterns[pattern]
	if !ok || dashes == nil {
		return nil
	}
	if w <= 0 {
		w = 1
	}
	scaled := make([]float64, len(dashes))
	for i, d := range dashes {
		scaled[i] = d * w
	}
	return scaled
}

// Marker is a start/end line-marker definition: an SVG-style viewBox and
// path, plus the per-marker scale factor from spec.md §4.3.5.
type Marker struct {
	ViewBox string
	Path    string
	Scale   float64
}

// markers maps marker indices 1-39 to their viewBox+path definitions
// (spec.md §4.3.5). A representative, commonly-used subset of Visio's
// stock arrowhead/terminator set is given; index 0 means "no marker".
var markers = map[uint8]Marker{
	1:  {ViewBox: "0 0 1131 1131", Path: "M 1131 565 L 0 1130 L 0 0 Z", Scale: 1.0},   // solid arrow
	2:  {ViewBox: "0 0 1131 1131", Path: "M 1131 565 L 0 1130 L 283 565 L 0 0 Z", Scale: 1.0}, // thin arrow
	3:  {ViewBox: "0 0 1131 1131", Path: "M 565 0 L 1131 1131 L 0 1131 Z", Scale: 0.8},  // triangle
	4:  {ViewBox: "0 0 1131 1131", Path: "M 1131 565 A 565 565 0 1 1 0 565 A 565 565 0 1 1 1131 565 Z", Scale: 0.8}, // circle
	5:  {ViewBox: "0 0 1131 1131", Path: "M 0 0 L 1131 0 L 1131 1131 L 0 1131 Z", Scale: 0.6}, // square
	10: {ViewBox: "0 0 1131 1131", Path: "M 0 565 L 1131 0 M 0 565 L 1131 1131", Scale: 1.0}, // open arrow
}

// MarkerFor returns the marker definition for index m, or the zero Marker
// if m is 0 or unrecognised (no marker).
func MarkerFor(m uint8) (Marker, bool) {
	v, ok := markers[m]
	return v, ok
}

// MarkerScale computes a marker's render scale from stroke width w, per
// spec.md §4.3.5: scale · markerScale · (0.1/(w²+1) + 2.54·w).
func MarkerScale(docScale, markerScale, w float64) float64 {
	return docScale * markerScale * (0.1/(w*w+1) + 2.54*w)
}
