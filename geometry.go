// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import "math"

// geomCtx carries the per-shape state geometry expansion needs: the
// transform chain (innermost-first) to map shape-local coordinates into
// page space, the page height for the final y-flip, the document scale,
// and the shape's own width/height for percent-type and Rel* coordinates
// (spec.md §4.3.3).
type geomCtx struct {
	chain       []XForm
	pageHeight  float64
	scale       float64
	shapeWidth  float64
	shapeHeight float64
	flipX       bool // composed flip, for arc sweep direction
}

func (g geomCtx) transform(p Point) Point {
	p = ApplyChain(p, g.chain)
	p = FlipPageY(p, g.pageHeight)
	return Point{X: p.X * g.scale, Y: p.Y * g.scale}
}

// expandGeometry turns one GeometryList's primitives into fill and stroke
// path-element accumulators, per spec.md §4.3.3-§4.3.4. Fill and stroke are
// built as separate subpath sequences because they close independently: a
// fill subpath is always closed at flush time; a stroke subpath is closed
// only if it already returns to its start point.
func expandGeometry(list *GeometryList, shape *Shape, ctx geomCtx) (fill, stroke []PathElement) {
	if list.NoShow {
		return nil, nil
	}
	var cur, start Point
	haveStart := false
	emit := func(action string, p Point) PathElement {
		return PathElement{Action: action, Props: Props{"svg:x": p.X, "svg:y": p.Y}}
	}
	appendBoth := func(el PathElement) {
		if !list.NoFill {
			fill = append(fill, el)
		}
		if !list.NoLine {
			stroke = append(stroke, el)
		}
	}
	moveTo := func(p Point) {
		cur, start, haveStart = p, p, true
		appendBoth(emit("M", ctx.transform(p)))
	}
	lineTo := func(p Point) {
		cur = p
		appendBoth(emit("L", ctx.transform(p)))
	}

	for _, el := range list.Elements {
		switch el.Kind {
		case GeomMoveTo:
			moveTo(Point{el.X, el.Y})
		case GeomLineTo:
			lineTo(Point{el.X, el.Y})
		case GeomRelMoveTo:
			moveTo(Point{el.X * shape.XForm.Width, el.Y * shape.XForm.Height})
		case GeomRelLineTo:
			lineTo(Point{el.X * shape.XForm.Width, el.Y * shape.XForm.Height})
		case GeomArcTo:
			expandArcTo(cur, Point{el.X, el.Y}, el.Bow, ctx, appendBoth)
			cur = Point{el.X, el.Y}
		case GeomEllipticalArcTo:
			expandEllipticalArcTo(cur, Point{el.X2, el.Y2}, Point{el.X3, el.Y3}, el.Angle, el.Ecc, ctx, appendBoth)
			cur = Point{el.X3, el.Y3}
		case GeomEllipse:
			expandEllipse(Point{el.X, el.Y}, el.X2, el.Y2, el.X3, el.Y3, ctx, appendBoth)
		case GeomInfiniteLine:
			expandInfiniteLine(Point{el.X, el.Y}, Point{el.X2, el.Y2}, ctx, appendBoth)
		case GeomNurbsTo:
			n, ok := shape.NurbsData[el.DataID]
			if !ok {
				lineTo(Point{el.X, el.Y})
				continue
			}
			expandNurbsTo(cur, Point{el.X, el.Y}, n, shape, ctx, appendBoth)
			cur = Point{el.X, el.Y}
		case GeomPolylineTo:
			pl, ok := shape.PolylineData[el.DataID]
			if !ok {
				lineTo(Point{el.X, el.Y})
				continue
			}
			for _, pt := range pl.Points {
				lineTo(expandAxisPoint(pt, pl.XType, pl.YType, shape))
			}
			lineTo(Point{el.X, el.Y})
		}
	}

	if !haveStart {
		return fill, stroke
	}
	if len(fill) > 0 {
		fill = append(fill, PathElement{Action: "Z"})
	}
	if len(stroke) > 0 && cur == start {
		stroke = append(stroke, PathElement{Action: "Z"})
	}
	return fill, stroke
}

// expandAxisPoint applies percent-of-width/height expansion for an
// xType/yType-tagged coordinate (0 = percent, 1 = absolute), used by
// NURBS/Polyline/Rel* coordinates.
func expandAxisPoint(p Point, xType, yType uint8, shape *Shape) Point {
	x, y := p.X, p.Y
	if xType == 0 {
		x *= shape.XForm.Width
	}
	if yType == 0 {
		y *= shape.XForm.Height
	}
	return Point{X: x, Y: y}
}

// expandArcTo implements spec.md §4.3.3's ArcTo row: a circular arc from cur
// to end with perpendicular sagitta bow.
func expandArcTo(cur, end Point, bow float64, ctx geomCtx, appendBoth func(PathElement)) {
	if bow == 0 {
		// ArcTo degeneracy invariant (spec.md §8 property 6).
		appendBoth(PathElement{Action: "L", Props: Props{"svg:x": ctx.transform(end).X, "svg:y": ctx.transform(end).Y}})
		return
	}
	chord := math.Hypot(end.X-cur.X, end.Y-cur.Y)
	b := math.Abs(bow)
	r := (4*b*b + chord*chord) / (8 * b)
	largeArc := b > r
	sweep := (bow < 0) != ctx.flipX
	tp := ctx.transform(end)
	appendBoth(PathElement{Action: "A", Props: Props{
		"svg:x":              tp.X,
		"svg:y":              tp.Y,
		"svg:rx":             r * ctx.scale,
		"svg:ry":             r * ctx.scale,
		"libwpg:large-arc":   largeArc,
		"libwpg:sweep":       sweep,
		"libwpg:rotate":      0.0,
	}})
}

// expandEllipticalArcTo implements spec.md §4.3.3's EllipticalArcTo row: an
// arc through cur, mid, ending at end, on an ellipse with axis rotation
// angle and eccentricity ecc. The three points are rotated by -angle and
// scaled by 1/ecc in y; colinear points (det < 1e-10) degenerate to a
// LineTo. Otherwise one "A" element to end is emitted carrying the
// rotation, large-arc false and a sweep taken from the sign of det; the
// ellipse's centre and radii are not computed and no svg:rx/svg:ry are set.
func expandEllipticalArcTo(cur, mid, end Point, angle, ecc float64, ctx geomCtx, appendBoth func(PathElement)) {
	sin, cos := math.Sincos(-angle)
	rot := func(p Point) Point {
		return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}
	a, b, c := rot(cur), rot(mid), rot(end)
	// Stretch y by 1/ecc to make the ellipse a circle in this frame.
	if ecc != 0 {
		a.Y /= ecc
		b.Y /= ecc
		c.Y /= ecc
	}
	d1x, d1y := b.X-a.X, b.Y-a.Y
	d2x, d2y := c.X-b.X, c.Y-b.Y
	det := d1x*d2y - d1y*d2x
	if math.Abs(det) < 1e-10 {
		tp := ctx.transform(end)
		appendBoth(PathElement{Action: "L", Props: Props{"svg:x": tp.X, "svg:y": tp.Y}})
		return
	}
	tp := ctx.transform(end)
	appendBoth(PathElement{Action: "A", Props: Props{
		"svg:x":         tp.X,
		"svg:y":         tp.Y,
		"libwpg:rotate": angle,
		"libwpg:large-arc": false,
		"libwpg:sweep":     det > 0,
	}})
}

// expandEllipse implements spec.md §4.3.3's Ellipse row: a full ellipse
// centred at (cx,cy) with semi-axis endpoints (aX,aY) and (bX,bY), emitted
// as two half-arcs.
func expandEllipse(centre Point, aX, aY, bX, bY float64, ctx geomCtx, appendBoth func(PathElement)) {
	p1 := Point{X: aX, Y: aY}
	p2 := Point{X: 2*centre.X - aX, Y: 2*centre.Y - aY}
	tp1, tp2 := ctx.transform(p1), ctx.transform(p2)
	appendBoth(PathElement{Action: "M", Props: Props{"svg:x": tp1.X, "svg:y": tp1.Y}})
	appendBoth(PathElement{Action: "A", Props: Props{"svg:x": tp2.X, "svg:y": tp2.Y, "libwpg:large-arc": false, "libwpg:sweep": true}})
	appendBoth(PathElement{Action: "A", Props: Props{"svg:x": tp1.X, "svg:y": tp1.Y, "libwpg:large-arc": false, "libwpg:sweep": true}})
}

// expandInfiniteLine implements spec.md §4.3.3's InfiniteLine row as a Move
// + Line along the line through p1,p2. The line is not clipped to the page
// rectangle: a vertical line spans y from 0 to ctx.pageHeight, and any other
// line runs between x = -1e9 and x = +1e9.
func expandInfiniteLine(p1, p2 Point, ctx geomCtx, appendBoth func(PathElement)) {
	width := 1e9 // horizontal extent; the page width is not available here
	var a, b Point
	switch {
	case p1.X == p2.X: // vertical line
		a = Point{p1.X, 0}
		b = Point{p1.X, ctx.pageHeight}
	case p1.Y == p2.Y: // horizontal line
		a = Point{-width, p1.Y}
		b = Point{width, p1.Y}
	default:
		slope := (p2.Y - p1.Y) / (p2.X - p1.X)
		yAt := func(x float64) float64 { return p1.Y + slope*(x-p1.X) }
		a = Point{-width, yAt(-width)}
		b = Point{width, yAt(width)}
	}
	ta, tb := ctx.transform(a), ctx.transform(b)
	appendBoth(PathElement{Action: "M", Props: Props{"svg:x": ta.X, "svg:y": ta.Y}})
	appendBoth(PathElement{Action: "L", Props: Props{"svg:x": tb.X, "svg:y": tb.Y}})
}
