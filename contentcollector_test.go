// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPainter captures just enough of the PaintInterface call
// sequence to assert on drawing order and style properties.
type recordingPainter struct {
	events     []string
	styleProps []Props
	paths      [][]PathElement
}

func (p *recordingPainter) StartDocument()           {}
func (p *recordingPainter) EndDocument()             {}
func (p *recordingPainter) StartPage(props Props)    { p.events = append(p.events, "StartPage") }
func (p *recordingPainter) EndPage()                 { p.events = append(p.events, "EndPage") }
func (p *recordingPainter) SetStyle(props Props, gradient []Props) {
	p.events = append(p.events, "SetStyle")
	p.styleProps = append(p.styleProps, props)
}
func (p *recordingPainter) DrawPath(elements []PathElement) {
	p.events = append(p.events, "DrawPath")
	p.paths = append(p.paths, elements)
}
func (p *recordingPainter) DrawEllipse(props Props)             {}
func (p *recordingPainter) DrawGraphicObject(props Props, data []byte) {}
func (p *recordingPainter) StartLayer(props Props)  { p.events = append(p.events, "StartLayer") }
func (p *recordingPainter) EndLayer()                { p.events = append(p.events, "EndLayer") }
func (p *recordingPainter) StartTextObject(props Props)          {}
func (p *recordingPainter) EndTextObject()                        {}
func (p *recordingPainter) OpenParagraph(props Props)            {}
func (p *recordingPainter) CloseParagraph()                       {}
func (p *recordingPainter) OpenSpan(props Props)                 {}
func (p *recordingPainter) CloseSpan()                             {}
func (p *recordingPainter) InsertText(text string)               { p.events = append(p.events, "InsertText:"+text) }
func (p *recordingPainter) InsertTab()                            {}
func (p *recordingPainter) InsertSpace()                          {}
func (p *recordingPainter) InsertLineBreak()                      {}
func (p *recordingPainter) InsertField(props Props)              {}

var _ PaintInterface = (*recordingPainter)(nil)

// TestContentCollectorResolvesCascadedLineStyle drives a single shape that
// references a style sheet (width+colour) and also carries a local Line
// chunk, and checks that the locally-set colour wins over the sheet's
// (spec.md §4.3.1).
func TestContentCollectorResolvesCascadedLineStyle(t *testing.T) {
	styles := NewStyles()
	styles.Sheets[9] = StyleSheet{
		ID:         9,
		ParentLine: MinusOne, ParentFill: MinusOne, ParentText: MinusOne,
		Line: LineStyle{Width: Some(5.0), Colour: Some(Colour{R: 0, G: 0, B: 0xff, A: 0xff})},
	}

	painter := &recordingPainter{}
	cc := NewContentCollector(painter, styles, NewStencilRegistry(), nil, 1252)

	cc.CollectPage(1, 0, false)
	cc.CollectShape(10, 1, MinusOne, MinusOne, 9, MinusOne, MinusOne)
	cc.CollectXFormData(10, 1, XForm{Width: 1, Height: 1})
	cc.CollectLine(10, 1, 0, Colour{R: 0xff, A: 0xff}, 0, 0, 0, 0)
	cc.CollectGeomList(0, 2)
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomMoveTo, X: 0, Y: 0})
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomLineTo, X: 1, Y: 0})
	cc.HandleLevelChange(0)
	cc.CollectEndPage()

	require.Len(t, painter.styleProps, 1)
	// The local CollectLine call sets every line attribute, among them
	// Width (0, a real override - Opt wraps it as Set:true) and Colour
	// (red); Width 0 from the local override wins over the sheet's 5, and
	// Colour red wins over the sheet's blue - both are locally set.
	assert.Equal(t, "#ff0000", painter.styleProps[0]["svg:stroke-color"])
	assert.Contains(t, painter.events, "DrawPath")
}

// TestContentCollectorAppliesStencilInheritance checks that a shape
// referencing a stencil master picks up the master's unset fields
// (LineStyleID here) without the Content Collector needing its own
// special-casing - CopyInto does the work (spec.md §3 "Stencil
// inheritance").
func TestContentCollectorAppliesStencilInheritance(t *testing.T) {
	registry := NewStencilRegistry()
	registry.Add(2, &Stencil{
		FirstShapeID: 5,
		Shapes: map[uint32]*StencilShape{
			5: {ID: 5, LineStyleID: 42},
		},
	})

	painter := &recordingPainter{}
	cc := NewContentCollector(painter, NewStyles(), registry, nil, 1252)

	cc.CollectPage(1, 0, false)
	cc.CollectShape(20, 1, 2, 5, MinusOne, MinusOne, MinusOne)
	cc.CollectXFormData(20, 1, XForm{Width: 1, Height: 1})
	cc.HandleLevelChange(0)
	assert.Equal(t, uint32(42), cc.curPage.Shapes[20].LineStyleID)
	cc.CollectEndPage()

	_, ok := cc.shapeOutputs[20]
	require.True(t, ok)
}

// TestContentCollectorPostOrderChildBeforeParent checks the documented
// output ordering: a group's child's graphics are flushed to the painter
// before the group's own.
func TestContentCollectorPostOrderChildBeforeParent(t *testing.T) {
	tables := &PageTables{
		GroupXForms:      map[uint32]XForm{},
		GroupMemberships: map[uint32]uint32{2: 1},
		GroupChildren:    map[uint32][]uint32{1: {2}},
		TopLevel:         []uint32{1},
		ShapeOrder:       []uint32{1, 2},
	}

	painter := &recordingPainter{}
	cc := NewContentCollector(painter, NewStyles(), NewStencilRegistry(), []*PageTables{tables}, 1252)

	cc.CollectPage(1, 0, false)

	cc.CollectShape(1, 1, MinusOne, MinusOne, MinusOne, MinusOne, MinusOne)
	cc.CollectXFormData(1, 1, XForm{Width: 10, Height: 10})
	cc.CollectGeomList(0, 2)
	cc.CollectGeometryElement(1, 2, GeometryElement{Kind: GeomMoveTo, X: 0, Y: 0})
	cc.CollectGeometryElement(1, 2, GeometryElement{Kind: GeomLineTo, X: 1, Y: 1})

	cc.CollectShape(2, 2, MinusOne, MinusOne, MinusOne, MinusOne, MinusOne)
	cc.CollectXFormData(2, 2, XForm{Width: 1, Height: 1})
	cc.CollectGeomList(0, 3)
	cc.CollectGeometryElement(2, 3, GeometryElement{Kind: GeomMoveTo, X: 0, Y: 0})
	cc.CollectGeometryElement(2, 3, GeometryElement{Kind: GeomLineTo, X: 2, Y: 2})

	cc.HandleLevelChange(0)
	cc.CollectEndPage()

	require.Contains(t, painter.events, "EndPage")
	// Each shape emits a fill path and a stroke path (its geometry list
	// sets neither NoFill nor NoLine), so four paths in all.
	require.Len(t, painter.paths, 4)
	// Shape 2 (the child) finalizes first (HandleLevelChange pops
	// innermost-first) and its geometry should appear before shape 1's in
	// the flushed output.
	assert.Equal(t, 2.0, painter.paths[0][1].Props["svg:x"])
	assert.Equal(t, 1.0, painter.paths[2][1].Props["svg:x"])
}

// TestContentCollectorOverlaysMasterDirectStyleOverride checks the
// three-tier cascade: a stencil master with its own direct Line override
// (not a style-sheet reference) must still reach an instance shape that
// has neither a style sheet nor a local override of its own.
func TestContentCollectorOverlaysMasterDirectStyleOverride(t *testing.T) {
	registry := NewStencilRegistry()
	registry.Add(2, &Stencil{
		FirstShapeID: 5,
		Shapes: map[uint32]*StencilShape{
			5: {
				ID:          5,
				LineStyleID: MinusOne,
				Line:        LineStyle{Width: Some(3.0), Colour: Some(Colour{G: 0xff, A: 0xff})},
			},
		},
	})

	painter := &recordingPainter{}
	cc := NewContentCollector(painter, NewStyles(), registry, nil, 1252)

	cc.CollectPage(1, 0, false)
	cc.CollectShape(20, 1, 2, 5, MinusOne, MinusOne, MinusOne)
	cc.CollectXFormData(20, 1, XForm{Width: 1, Height: 1})
	cc.CollectGeomList(0, 2)
	cc.CollectGeometryElement(20, 2, GeometryElement{Kind: GeomMoveTo, X: 0, Y: 0})
	cc.CollectGeometryElement(20, 2, GeometryElement{Kind: GeomLineTo, X: 1, Y: 0})
	cc.HandleLevelChange(0)
	cc.CollectEndPage()

	require.Len(t, painter.styleProps, 1)
	assert.Equal(t, "#00ff00", painter.styleProps[0]["svg:stroke-color"])
}

// TestContentCollectorShapeOwnOverrideWinsOverMasterDirectOverride checks
// that the shape's own local Line chunk still takes precedence over a
// master's direct override, rather than the master clobbering it.
func TestContentCollectorShapeOwnOverrideWinsOverMasterDirectOverride(t *testing.T) {
	registry := NewStencilRegistry()
	registry.Add(2, &Stencil{
		FirstShapeID: 5,
		Shapes: map[uint32]*StencilShape{
			5: {
				ID:          5,
				LineStyleID: MinusOne,
				Line:        LineStyle{Width: Some(3.0), Colour: Some(Colour{G: 0xff, A: 0xff})},
			},
		},
	})

	painter := &recordingPainter{}
	cc := NewContentCollector(painter, NewStyles(), registry, nil, 1252)

	cc.CollectPage(1, 0, false)
	cc.CollectShape(20, 1, 2, 5, MinusOne, MinusOne, MinusOne)
	cc.CollectXFormData(20, 1, XForm{Width: 1, Height: 1})
	cc.CollectLine(20, 1, 0, Colour{R: 0xff, A: 0xff}, 0, 0, 0, 0)
	cc.CollectGeomList(0, 2)
	cc.CollectGeometryElement(20, 2, GeometryElement{Kind: GeomMoveTo, X: 0, Y: 0})
	cc.CollectGeometryElement(20, 2, GeometryElement{Kind: GeomLineTo, X: 1, Y: 0})
	cc.HandleLevelChange(0)
	cc.CollectEndPage()

	require.Len(t, painter.styleProps, 1)
	assert.Equal(t, "#ff0000", painter.styleProps[0]["svg:stroke-color"])
}

// TestContentCollectorEmitsBothPathsUnderLayerWhenFillAndStrokeDiffer
// checks that a shape with one fill-only geometry list and one
// stroke-only geometry list emits two independent DrawPath calls wrapped
// in StartLayer/EndLayer, instead of silently dropping one (spec.md
// §4.3.4).
func TestContentCollectorEmitsBothPathsUnderLayerWhenFillAndStrokeDiffer(t *testing.T) {
	painter := &recordingPainter{}
	cc := NewContentCollector(painter, NewStyles(), NewStencilRegistry(), nil, 1252)

	cc.CollectPage(1, 0, false)
	cc.CollectShape(10, 1, MinusOne, MinusOne, MinusOne, MinusOne, MinusOne)
	cc.CollectXFormData(10, 1, XForm{Width: 1, Height: 1})

	cc.CollectGeomList(0, 2)
	cc.CollectGeometry(10, 2, false, true, false) // noLine: fill-only
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomMoveTo, X: 0, Y: 0})
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomLineTo, X: 1, Y: 0})
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomLineTo, X: 1, Y: 1})

	cc.CollectGeomList(1, 2)
	cc.CollectGeometry(10, 2, true, false, false) // noFill: stroke-only
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomMoveTo, X: 2, Y: 2})
	cc.CollectGeometryElement(10, 2, GeometryElement{Kind: GeomLineTo, X: 3, Y: 3})

	cc.HandleLevelChange(0)
	cc.CollectEndPage()

	require.Len(t, painter.paths, 2)
	drawIdx := 0
	for i, e := range painter.events {
		if e == "DrawPath" {
			drawIdx = i
			break
		}
	}
	assert.Equal(t, "StartLayer", painter.events[drawIdx-1])
	assert.Equal(t, "EndLayer", painter.events[drawIdx+2])
}
