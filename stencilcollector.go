// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// StencilCollector is a third Collector implementation, used only while
// loading a document's master (stencil) pages before any real page is
// parsed (spec.md §3 "Lifecycle", §4.5). It accumulates each master
// shape's raw fields — geometry, transform, text, foreign data — without
// resolving styles or emitting paint calls, since a stencil's job is to
// be copied (via StencilShape.CopyInto) into an instance shape that will
// itself go through the Content Collector's full style/paint pipeline.
type StencilCollector struct {
	registry *StencilRegistry

	masterID   uint32
	shadowX    float64
	shadowY    float64

	stack        []*openShape
	shapes       map[uint32]*Shape
	topLevelOrder []uint32
}

// NewStencilCollector creates a collector that registers every master
// page it sees into registry.
func NewStencilCollector(registry *StencilRegistry) *StencilCollector {
	return &StencilCollector{registry: registry}
}

func (c *StencilCollector) currentShape() *Shape {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1].shape
}

func (c *StencilCollector) HandleLevelChange(level uint16) {
	for len(c.stack) > 0 && c.stack[len(c.stack)-1].level >= level {
		frame := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		c.shapes[frame.shape.ShapeID] = frame.shape
	}
}

func (c *StencilCollector) CollectColours(colours []Colour)                                   {}
func (c *StencilCollector) CollectFont(fontID uint16, textStream []byte, format TextFormat) {}

func (c *StencilCollector) CollectPage(id uint32, level uint16, background bool) {
	c.masterID = id
	c.shadowX, c.shadowY = 0, 0
	c.stack = nil
	c.shapes = make(map[uint32]*Shape)
	c.topLevelOrder = nil
}

func (c *StencilCollector) CollectPageProps(id uint32, level uint16, width, height, shadowX, shadowY float64) {
	c.shadowX, c.shadowY = shadowX, shadowY
}

func (c *StencilCollector) CollectPages() {}

// CollectEndPage converts every shape this master page collected into a
// StencilShape and registers them as one Stencil under masterID.
func (c *StencilCollector) CollectEndPage() {
	stencil := &Stencil{
		Shapes:        make(map[uint32]*StencilShape),
		ShadowOffsetX: c.shadowX,
		ShadowOffsetY: c.shadowY,
	}
	if len(c.topLevelOrder) > 0 {
		stencil.FirstShapeID = c.topLevelOrder[0]
	}
	for id, shape := range c.shapes {
		stencil.Shapes[id] = &StencilShape{
			ID: id, LineStyleID: shape.LineStyleID, FillStyleID: shape.FillStyleID,
			TextStyleID: shape.TextStyleID, XForm: shape.XForm, Geometries: shape.Geometries,
			NurbsData: shape.NurbsData, PolylineData: shape.PolylineData,
			Text: shape.Text, TextFormat: shape.TextFormat, Foreign: shape.Foreign,
			Line: shape.Line, Fill: shape.Fill, TextBlock: shape.TextBlock,
		}
	}
	c.registry.Add(c.masterID, stencil)
}

func (c *StencilCollector) CollectShape(id uint32, level uint16, masterPage, masterShape, lineStyle, fillStyle, textStyle uint32) {
	shape := NewShape(level)
	shape.ShapeID = id
	shape.MasterPage, shape.MasterShape = masterPage, masterShape
	shape.LineStyleID, shape.FillStyleID, shape.TextStyleID = lineStyle, fillStyle, textStyle
	if len(c.stack) == 0 {
		c.topLevelOrder = append(c.topLevelOrder, id)
	}
	c.stack = append(c.stack, &openShape{shape: shape, level: level})
}

func (c *StencilCollector) CollectShapeID(id uint32, level uint16, shapeID uint32) {}
func (c *StencilCollector) CollectShapeList(id uint32, level uint16)             {}
func (c *StencilCollector) CollectForeignDataType(id uint32, level uint16, ft ForeignType, ff ForeignFormat) {
	if shape := c.currentShape(); shape != nil {
		if shape.Foreign == nil {
			shape.Foreign = &ForeignData{}
		}
		shape.Foreign.Type, shape.Foreign.Format = ft, ff
	}
}
func (c *StencilCollector) CollectForeignData(id uint32, level uint16, data []byte) {
	if shape := c.currentShape(); shape != nil {
		if shape.Foreign == nil {
			shape.Foreign = &ForeignData{}
		}
		shape.Foreign.Bytes = data
	}
}

func (c *StencilCollector) CollectXFormData(id uint32, level uint16, xform XForm) {
	if shape := c.currentShape(); shape != nil {
		shape.XForm = xform
	}
}
func (c *StencilCollector) CollectTxtXForm(id uint32, level uint16, xform XForm) {
	if shape := c.currentShape(); shape != nil {
		x := xform
		shape.TxtXForm = &x
	}
}

func (c *StencilCollector) CollectLine(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
	if shape := c.currentShape(); shape != nil {
		shape.Line = LineStyle{
			Width: Some(width), Colour: Some(colour), Pattern: Some(pattern),
			StartMarker: Some(startMarker), EndMarker: Some(endMarker), Cap: Some(cap),
		}
	}
}
func (c *StencilCollector) CollectFillAndShadow(id uint32, level uint16, fs FillStyle) {
	if shape := c.currentShape(); shape != nil {
		shape.Fill = fs
	}
}
func (c *StencilCollector) CollectTextBlock(id uint32, level uint16, tb TextBlockStyle) {
	if shape := c.currentShape(); shape != nil {
		shape.TextBlock = tb
	}
}

func (c *StencilCollector) CollectStyleSheet(id uint32, level uint16, parentLine, parentFill, parentText uint32) {
}
func (c *StencilCollector) CollectLineStyle(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
}
func (c *StencilCollector) CollectFillStyle(id uint32, level uint16, fs FillStyle) {}

func (c *StencilCollector) CollectGeomList(id uint32, level uint16) {
	if frame := c.topFrame(); frame != nil {
		frame.curGeomList = id
		if _, ok := frame.shape.Geometries[id]; !ok {
			frame.shape.Geometries[id] = &GeometryList{}
		}
	}
}

func (c *StencilCollector) topFrame() *openShape {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

func (c *StencilCollector) CollectGeometry(id uint32, level uint16, noFill, noLine, noShow bool) {
	frame := c.topFrame()
	if frame == nil {
		return
	}
	gl := frame.shape.Geometries[frame.curGeomList]
	if gl == nil {
		gl = &GeometryList{}
		frame.shape.Geometries[frame.curGeomList] = gl
	}
	gl.NoFill, gl.NoLine, gl.NoShow = noFill, noLine, noShow
}

func (c *StencilCollector) CollectGeometryElement(id uint32, level uint16, el GeometryElement) {
	frame := c.topFrame()
	if frame == nil {
		return
	}
	gl := frame.shape.Geometries[frame.curGeomList]
	if gl == nil {
		gl = &GeometryList{}
		frame.shape.Geometries[frame.curGeomList] = gl
	}
	gl.Elements = append(gl.Elements, el)
}

func (c *StencilCollector) CollectShapeData(id uint32, level uint16, dataID uint32, nurbs *NurbsData, polyline *PolylineData) {
	shape := c.currentShape()
	if shape == nil {
		return
	}
	if nurbs != nil {
		shape.NurbsData[dataID] = *nurbs
	}
	if polyline != nil {
		shape.PolylineData[dataID] = *polyline
	}
}

func (c *StencilCollector) CollectCharList(id uint32, level uint16)            {}
func (c *StencilCollector) CollectCharIX(id uint32, level uint16, cs CharStyle) {}
func (c *StencilCollector) CollectParaList(id uint32, level uint16)            {}
func (c *StencilCollector) CollectParaIX(id uint32, level uint16, ps ParaStyle) {}

func (c *StencilCollector) CollectText(id uint32, level uint16, text []byte, format TextFormat) {
	if shape := c.currentShape(); shape != nil {
		shape.Text, shape.TextFormat = text, format
	}
}

func (c *StencilCollector) CollectFieldList(id uint32, level uint16)                                {}
func (c *StencilCollector) CollectTextField(id uint32, level uint16, nameID uint32)                 {}
func (c *StencilCollector) CollectNumericField(id uint32, level uint16, formatID uint32, value float64) {
}
func (c *StencilCollector) CollectName(id uint32, level uint16, nameID uint32, bytes []byte, format TextFormat) {
}
func (c *StencilCollector) CollectAnnotation(id uint32, level uint16, text string) {}
func (c *StencilCollector) CollectUnhandledChunk(id uint32, level uint16)          {}

var _ Collector = (*StencilCollector)(nil)
