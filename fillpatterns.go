// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// GradientKind distinguishes the fill-pattern families spec.md §4.3.6
// describes.
type GradientKind int

const (
	GradientNone GradientKind = iota
	GradientSolid
	GradientLinear
	GradientAxial
	GradientRectangular
	GradientRadial
)

// RadialAnchor is one of the five anchor positions radial gradient patterns
// 36-40 are positioned at.
type RadialAnchor int

const (
	AnchorCenter RadialAnchor = iota
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

var radialAnchors = map[uint8]RadialAnchor{
	36: AnchorCenter,
	37: AnchorTopLeft,
	38: AnchorTopRight,
	39: AnchorBottomLeft,
	40: AnchorBottomRight,
}

// ResolveFillPattern classifies a fill pattern index per spec.md §4.3.6:
// 0 = none, 1 = solid, 25-34 = linear gradient (26,29 axial), 35 =
// rectangular (centred), 36-40 = radial at one of five anchors. Everything
// else degrades to solid using the background colour — a documented
// degradation, not undefined behaviour.
func ResolveFillPattern(pattern uint8) (kind GradientKind, anchor RadialAnchor) {
	switch {
	case pattern == 0:
		return GradientNone, AnchorCenter
	case pattern == 1:
		return GradientSolid, AnchorCenter
	case pattern == 26 || pattern == 29:
		return GradientAxial, AnchorCenter
	case pattern >= 25 && pattern <= 34:
		return GradientLinear, AnchorCenter
	case pattern == 35:
		return GradientRectangular, AnchorCenter
	case pattern >= 36 && pattern <= 40:
		return GradientRadial, radialAnchors[pattern]
	default:
		return GradientSolid, AnchorCenter // degrade to solid background fill
	}
}

// gradientAngles gives the pattern-specific angle (radians) for linear
// gradient patterns 25-34, per spec.md §4.3.6.
var gradientAngles = map[uint8]float64{
	25: 0,
	26: 0,
	27: 0.7853981633974483, // pi/4
	28: 1.5707963267948966, // pi/2
	29: 1.5707963267948966,
	30: 2.356194490192345, // 3pi/4
	31: 3.141592653589793, // pi
	32: 3.9269908169872414,
	33: 4.71238898038469,
	34: 5.497787143782138,
}

// GradientAngle returns the fixed angle for a linear/axial gradient
// pattern, or 0 if the pattern has none.
func GradientAngle(pattern uint8) float64 {
	return gradientAngles[pattern]
}

// BuildGradientStops builds the SetStyle gradient property list for a
// resolved fill, mapping {fgColour, bgColour} into the two-stop gradient
// shape ODF-style output sinks expect.
func BuildGradientStops(fill ResolvedFillStyle) []Props {
	kind, _ := ResolveFillPattern(fill.Pattern)
	if kind == GradientNone || kind == GradientSolid {
		return nil
	}
	return []Props{
		{"svg:offset": 0.0, "svg:stop-color": fill.FgColour.Hex()},
		{"svg:offset": 1.0, "svg:stop-color": fill.BgColour.Hex()},
	}
}
