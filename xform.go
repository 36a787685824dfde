// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import "math"

// ApplyXForm maps a point from the XForm's local coordinate space into its
// parent's, per spec.md §3: subtract pinLoc, apply flips about the local
// origin, rotate by angle, then add pin.
func ApplyXForm(p Point, x XForm) Point {
	px, py := p.X-x.LocPinX, p.Y-x.LocPinY
	if x.FlipX {
		px = -px
	}
	if x.FlipY {
		py = -py
	}
	sin, cos := math.Sincos(x.Angle)
	rx := px*cos - py*sin
	ry := px*sin + py*cos
	return Point{X: rx + x.PinX, Y: ry + x.PinY}
}

// ApplyChain maps a point through a chain of XForms, innermost (the shape's
// own transform) first, outermost (the page root) last — spec.md §4.3.2 and
// the Transform associativity invariant in §8:
//
//	ApplyChain(p, []XForm{G, S}) == ApplyXForm(ApplyXForm(p, S), G)
//
// Callers pass the chain ordered shape-first, ancestor-last; this applies
// shape's xform first, then each ancestor outward, matching the recursive
// composition the invariant describes.
func ApplyChain(p Point, chain []XForm) Point {
	for _, x := range chain {
		p = ApplyXForm(p, x)
	}
	return p
}

// FlipPageY flips a point's y-coordinate against the page height to move it
// from Visio's bottom-left drawing origin into the PaintInterface's
// top-left paint-space origin.
func FlipPageY(p Point, pageHeight float64) Point {
	return Point{X: p.X, Y: pageHeight - p.Y}
}

// ComposedFlip returns the XOR of a shape's own flip flags with every
// ancestor's, per spec.md §4.3.2: "the effective flipX/flipY of a shape is
// the XOR of its own and all ancestors' flips". chain is ordered
// shape-first, ancestor-last, matching ApplyChain.
func ComposedFlip(chain []XForm) (flipX, flipY bool) {
	for _, x := range chain {
		flipX = flipX != x.FlipX
		flipY = flipY != x.FlipY
	}
	return flipX, flipY
}

// ComposedAngle transforms a unit vector along angle 0 through the full
// XForm chain and recovers the resulting angle with atan2, which correctly
// accounts for every flip × rotation interaction along the way (spec.md
// §4.3.2's "Angle composition for text/arc purposes").
func ComposedAngle(chain []XForm) float64 {
	origin := ApplyChain(Point{0, 0}, chain)
	tip := ApplyChain(Point{1, 0}, chain)
	return math.Atan2(tip.Y-origin.Y, tip.X-origin.X)
}
