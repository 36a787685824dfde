// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCollector implements Collector, capturing just the calls these
// tests assert on and discarding the rest.
type recordingCollector struct {
	pages      []uint32
	shapes     []uint32
	shapeLine  map[uint32]uint32
	xforms     map[uint32]XForm
	geomEls    map[uint32][]GeometryElement
	texts      map[uint32]string
	endPages   int
}

func newRecordingCollector() *recordingCollector {
	return &recordingCollector{
		shapeLine: make(map[uint32]uint32),
		xforms:    make(map[uint32]XForm),
		geomEls:   make(map[uint32][]GeometryElement),
		texts:     make(map[uint32]string),
	}
}

func (c *recordingCollector) HandleLevelChange(level uint16) {}
func (c *recordingCollector) CollectColours(colours []Colour) {}
func (c *recordingCollector) CollectFont(fontID uint16, textStream []byte, format TextFormat) {}
func (c *recordingCollector) CollectPage(id uint32, level uint16, background bool) {
	c.pages = append(c.pages, id)
}
func (c *recordingCollector) CollectPageProps(id uint32, level uint16, width, height, shadowX, shadowY float64) {
}
func (c *recordingCollector) CollectPages()  {}
func (c *recordingCollector) CollectEndPage() { c.endPages++ }
func (c *recordingCollector) CollectShape(id uint32, level uint16, masterPage, masterShape, lineStyle, fillStyle, textStyle uint32) {
	c.shapes = append(c.shapes, id)
	c.shapeLine[id] = lineStyle
}
func (c *recordingCollector) CollectShapeID(id uint32, level uint16, shapeID uint32) {}
func (c *recordingCollector) CollectShapeList(id uint32, level uint16)              {}
func (c *recordingCollector) CollectForeignDataType(id uint32, level uint16, ft ForeignType, ff ForeignFormat) {
}
func (c *recordingCollector) CollectForeignData(id uint32, level uint16, data []byte) {}
func (c *recordingCollector) CollectXFormData(id uint32, level uint16, xform XForm) {
	c.xforms[id] = xform
}
func (c *recordingCollector) CollectTxtXForm(id uint32, level uint16, xform XForm) {}
func (c *recordingCollector) CollectLine(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
}
func (c *recordingCollector) CollectFillAndShadow(id uint32, level uint16, fs FillStyle) {}
func (c *recordingCollector) CollectTextBlock(id uint32, level uint16, tb TextBlockStyle) {}
func (c *recordingCollector) CollectStyleSheet(id uint32, level uint16, parentLine, parentFill, parentText uint32) {
}
func (c *recordingCollector) CollectLineStyle(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
}
func (c *recordingCollector) CollectFillStyle(id uint32, level uint16, fs FillStyle) {}
func (c *recordingCollector) CollectGeomList(id uint32, level uint16)                {}
func (c *recordingCollector) CollectGeometry(id uint32, level uint16, noFill, noLine, noShow bool) {
}
func (c *recordingCollector) CollectGeometryElement(id uint32, level uint16, el GeometryElement) {
	c.geomEls[id] = append(c.geomEls[id], el)
}
func (c *recordingCollector) CollectShapeData(id uint32, level uint16, dataID uint32, nurbs *NurbsData, polyline *PolylineData) {
}
func (c *recordingCollector) CollectCharList(id uint32, level uint16)            {}
func (c *recordingCollector) CollectCharIX(id uint32, level uint16, cs CharStyle) {}
func (c *recordingCollector) CollectParaList(id uint32, level uint16)            {}
func (c *recordingCollector) CollectParaIX(id uint32, level uint16, ps ParaStyle) {}
func (c *recordingCollector) CollectText(id uint32, level uint16, text []byte, format TextFormat) {
	c.texts[id] = string(text)
}
func (c *recordingCollector) CollectFieldList(id uint32, level uint16)                                {}
func (c *recordingCollector) CollectTextField(id uint32, level uint16, nameID uint32)                 {}
func (c *recordingCollector) CollectNumericField(id uint32, level uint16, formatID uint32, value float64) {
}
func (c *recordingCollector) CollectName(id uint32, level uint16, nameID uint32, bytes []byte, format TextFormat) {
}
func (c *recordingCollector) CollectAnnotation(id uint32, level uint16, text string) {}
func (c *recordingCollector) CollectUnhandledChunk(id uint32, level uint16)          {}

var _ Collector = (*recordingCollector)(nil)

const sampleVDX = `<VisioDocument>
  <Page ID="1">
    <Shape ID="10" LineStyle="2" FillStyle="3" TextStyle="4">
      <XForm>
        <Cell N="PinX" V="1.5"/>
        <Cell N="PinY" V="2.5"/>
        <Cell N="Width" V="3"/>
        <Cell N="Height" V="4"/>
      </XForm>
      <Geom IX="0">
        <MoveTo>
          <Cell N="X" V="0"/>
          <Cell N="Y" V="0"/>
        </MoveTo>
        <LineTo>
          <Cell N="X" V="5"/>
          <Cell N="Y" V="5"/>
        </LineTo>
      </Geom>
      <Text>hello</Text>
    </Shape>
  </Page>
</VisioDocument>`

func TestXMLDecoderShapeLifecycle(t *testing.T) {
	collector := newRecordingCollector()
	err := ParseVDX(strings.NewReader(sampleVDX), collector)
	require.NoError(t, err)

	assert.Equal(t, []uint32{1}, collector.pages)
	assert.Equal(t, []uint32{10}, collector.shapes)
	assert.Equal(t, uint32(2), collector.shapeLine[10])
	assert.Equal(t, 1, collector.endPages)

	xform := collector.xforms[10]
	assert.Equal(t, 1.5, xform.PinX)
	assert.Equal(t, 2.5, xform.PinY)
	assert.Equal(t, 3.0, xform.Width)
	assert.Equal(t, 4.0, xform.Height)

	els := collector.geomEls[10]
	require.Len(t, els, 2)
	assert.Equal(t, GeomMoveTo, els[0].Kind)
	assert.Equal(t, 0.0, els[0].X)
	assert.Equal(t, GeomLineTo, els[1].Kind)
	assert.Equal(t, 5.0, els[1].X)
	assert.Equal(t, 5.0, els[1].Y)

	assert.Equal(t, "hello", collector.texts[10])
}

func TestParseUnitCode(t *testing.T) {
	assert.Equal(t, CellTypeInches, parseUnitCode("IN"))
	assert.Equal(t, CellTypeCentimeters, parseUnitCode("cm"))
	assert.Equal(t, CellTypeDegrees, parseUnitCode(" DEG "))
	assert.Equal(t, CellTypeNoCast, parseUnitCode("bogus"))
}

func TestParseColourString(t *testing.T) {
	assert.Equal(t, Colour{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, parseColourString("#102030", Colour{}))
	assert.Equal(t, Colour{A: 0xff}, parseColourString("not-a-colour", Colour{A: 0xff}))
}
