// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityCtx() geomCtx {
	return geomCtx{scale: 1}
}

func TestExpandGeometryOpenPathClosesFillOnlyWhenNotReturnedToStart(t *testing.T) {
	shape := NewShape(1)
	list := &GeometryList{Elements: []GeometryElement{
		{Kind: GeomMoveTo, X: 0, Y: 0},
		{Kind: GeomLineTo, X: 10, Y: 0},
		{Kind: GeomLineTo, X: 10, Y: 10},
	}}

	fill, stroke := expandGeometry(list, shape, identityCtx())

	require.Len(t, fill, 4) // M, L, L, Z
	assert.Equal(t, "Z", fill[3].Action)
	require.Len(t, stroke, 3) // M, L, L - not closed, so no Z
	assert.Equal(t, "L", stroke[2].Action)
}

func TestExpandGeometryNoShowSkipsEverything(t *testing.T) {
	shape := NewShape(1)
	list := &GeometryList{NoShow: true, Elements: []GeometryElement{
		{Kind: GeomMoveTo, X: 0, Y: 0},
		{Kind: GeomLineTo, X: 10, Y: 0},
	}}

	fill, stroke := expandGeometry(list, shape, identityCtx())
	assert.Nil(t, fill)
	assert.Nil(t, stroke)
}

// TestExpandArcToZeroBowDegeneratesToLine checks the ArcTo degeneracy
// invariant: a zero-sagitta arc is emitted as a straight line to the end
// point, never as an arc with an undefined radius.
func TestExpandArcToZeroBowDegeneratesToLine(t *testing.T) {
	var got []PathElement
	appendBoth := func(el PathElement) { got = append(got, el) }

	expandArcTo(Point{0, 0}, Point{10, 0}, 0, identityCtx(), appendBoth)

	require.Len(t, got, 1)
	assert.Equal(t, "L", got[0].Action)
	assert.Equal(t, 10.0, got[0].Props["svg:x"])
}

// TestExpandArcToComputesSagittaRadius checks the chord/bow -> radius
// formula against a hand-computed case: chord 10, bow 5 gives radius 5
// (a semicircle), so largeArc is false (bow does not exceed radius).
func TestExpandArcToComputesSagittaRadius(t *testing.T) {
	var got []PathElement
	appendBoth := func(el PathElement) { got = append(got, el) }

	expandArcTo(Point{0, 0}, Point{10, 0}, 5, identityCtx(), appendBoth)

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Action)
	assert.InDelta(t, 5.0, got[0].Props["svg:rx"].(float64), 1e-9)
	assert.Equal(t, false, got[0].Props["libwpg:large-arc"])
}

// TestExpandEllipseEmitsMoveThenTwoArcs checks the half-arc construction:
// the first semi-axis endpoint is the path's start (M), one arc runs to the
// point opposite it across the centre, and a second arc returns to the
// start, closing the full ellipse.
func TestExpandEllipseEmitsMoveThenTwoArcs(t *testing.T) {
	var got []PathElement
	appendBoth := func(el PathElement) { got = append(got, el) }

	expandEllipse(Point{0, 0}, 5, 0, 0, 5, identityCtx(), appendBoth)

	require.Len(t, got, 3)
	assert.Equal(t, "M", got[0].Action)
	assert.Equal(t, 5.0, got[0].Props["svg:x"])
	assert.Equal(t, "A", got[1].Action)
	assert.Equal(t, -5.0, got[1].Props["svg:x"])
	assert.Equal(t, "A", got[2].Action)
	assert.Equal(t, 5.0, got[2].Props["svg:x"])
}
