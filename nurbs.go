// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// nurbsSamples is the fixed sampling resolution spec.md §4.3.3 specifies
// for NurbsTo expansion.
const nurbsSamples = 200

// expandNurbsTo samples a NURBS curve as nurbsSamples line segments using
// the Cox-de Boor recurrence, then appends a final LineTo(end) (spec.md
// §4.3.3's NurbsTo row). Percent-type coordinates are multiplied by the
// shape's width/height before the transform chain is applied, per the same
// row.
func expandNurbsTo(start, end Point, n NurbsData, shape *Shape, ctx geomCtx, appendBoth func(PathElement)) {
	_ = start
	pts := sampleNurbs(n)
	for _, p := range pts {
		p = expandAxisPoint(p, n.XType, n.YType, shape)
		tp := ctx.transform(p)
		appendBoth(PathElement{Action: "L", Props: Props{"svg:x": tp.X, "svg:y": tp.Y}})
	}
	tp := ctx.transform(end)
	appendBoth(PathElement{Action: "L", Props: Props{"svg:x": tp.X, "svg:y": tp.Y}})
}

// sampleNurbs evaluates the NURBS curve described by n at nurbsSamples
// evenly spaced parameter values using the Cox-de Boor recurrence,
// returning the sampled points in shape-local, un-transformed coordinates.
//
// NurbsDeterminism (spec.md §8 property 7) requires two runs on identical
// inputs to produce byte-identical output; this function is a pure
// function of n (no global/random state), so that holds trivially.
func sampleNurbs(n NurbsData) []Point {
	if len(n.Points) == 0 {
		return nil
	}
	degree := int(n.Degree)
	knots := n.Knots
	weights := n.Weights
	if len(weights) == 0 {
		weights = make([]float64, len(n.Points))
		for i := range weights {
			weights[i] = 1
		}
	}
	if degree < 1 || len(knots) == 0 {
		// Degenerate input: fall back to the control polygon itself.
		return append([]Point(nil), n.Points...)
	}

	pts := make([]Point, 0, nurbsSamples+1)
	tMin, tMax := knots[degree], knots[len(knots)-degree-1]
	for i := 0; i <= nurbsSamples; i++ {
		t := tMin + (tMax-tMin)*float64(i)/float64(nurbsSamples)
		pts = append(pts, nurbsPointAt(n.Points, knots, weights, degree, t))
	}
	return pts
}

// nurbsPointAt evaluates one point on the NURBS curve at parameter t via
// the Cox-de Boor basis recurrence, weighted by the rational weights.
func nurbsPointAt(ctrl []Point, knots, weights []float64, degree int, t float64) Point {
	var sx, sy, sw float64
	for i := range ctrl {
		basis := coxDeBoor(i, degree, t, knots)
		w := basis * weights[i]
		sx += w * ctrl[i].X
		sy += w * ctrl[i].Y
		sw += w
	}
	if sw == 0 {
		return Point{}
	}
	return Point{X: sx / sw, Y: sy / sw}
}

// coxDeBoor evaluates basis function N_{i,degree}(t) over knots, by the
// standard recursive definition.
func coxDeBoor(i, degree int, t float64, knots []float64) float64 {
	if degree == 0 {
		if knots[i] <= t && t < knots[i+1] {
			return 1
		}
		// Let the last non-empty knot span be closed, so t at the final
		// knot is still covered even when the knot vector ends in repeats.
		if knots[i] < knots[i+1] && t == knots[i+1] && knots[i+1] == knots[len(knots)-1] {
			return 1
		}
		return 0
	}
	var left, right float64
	denomL := knots[i+degree] - knots[i]
	if denomL != 0 {
		left = (t - knots[i]) / denomL * coxDeBoor(i, degree-1, t, knots)
	}
	denomR := knots[i+degree+1] - knots[i+1]
	if denomR != 0 {
		right = (knots[i+degree+1] - t) / denomR * coxDeBoor(i+1, degree-1, t, knots)
	}
	return left + right
}

// splineAccumulator gathers SplineStart + SplineKnot* chunks until the
// enclosing level closes, then synthesises a NURBS with unit weights
// (spec.md §4.3.3's "SplineStart + SplineKnot*" row).
//
// Knot ordering preserved byte-for-byte per spec.md §9 Open Question 4: the
// original inserts [firstKnot, secondKnot, ...] despite the inconsistent
// naming in the source; govisio does not "fix" this.
type splineAccumulator struct {
	firstKnot, secondKnot float64
	degree                uint32
	lastKnot              float64
	xType, yType          uint8
	points                []Point
	knots                 []float64
}

func newSplineAccumulator(firstKnot, secondKnot, lastKnot float64, degree uint32, xType, yType uint8) *splineAccumulator {
	return &splineAccumulator{
		firstKnot: firstKnot, secondKnot: secondKnot, lastKnot: lastKnot,
		degree: degree, xType: xType, yType: yType,
		knots: []float64{firstKnot, secondKnot},
	}
}

func (a *splineAccumulator) addKnot(x, y, knot float64) {
	a.points = append(a.points, Point{X: x, Y: y})
	a.knots = append(a.knots, knot)
}

// finish synthesises the NurbsData this accumulator represents.
func (a *splineAccumulator) finish() NurbsData {
	weights := make([]float64, len(a.points))
	for i := range weights {
		weights[i] = 1
	}
	return NurbsData{
		Degree:   a.degree,
		LastKnot: a.lastKnot,
		XType:    a.xType,
		YType:    a.yType,
		Knots:    a.knots,
		Weights:  weights,
		Points:   a.points,
	}
}
