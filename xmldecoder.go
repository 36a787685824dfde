// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// xmlFrame is one open element on the decoder's stack: its local name, its
// attributes by local name, and the nesting depth it opened at. Depth
// stands in for the binary decoder's chunk `level` (spec.md §4.1 "XML
// decoder... nesting depth replaces level").
type xmlFrame struct {
	name  string
	attrs map[string]string
	depth uint16
}

func (f xmlFrame) attr(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

func (f xmlFrame) attrBool(name string) bool {
	v, ok := f.attr(name)
	return ok && v == "1"
}

func (f xmlFrame) attrFloat(name string, def float64) float64 {
	v, ok := f.attr(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return n
}

func (f xmlFrame) attrUint(name string, def uint32) uint32 {
	v, ok := f.attr(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return def
	}
	return uint32(n)
}

// del reports whether this element's `Del` attribute requests deletion of
// an inherited value at this position (spec.md §4.1: "An XML element
// carrying del=\"1\" deletes any inherited value at that position").
//
// govisio's Collector contract has no explicit "clear this attribute"
// call distinct from "never mentioned" — every Collect* method either
// sets a value or is not invoked. A del="1" cell therefore degrades to
// not invoking the corresponding Collect* call, the same observable
// result as a plain empty touch. This is a documented simplification:
// true override-clearing (making a stencil-inherited attribute explicitly
// absent rather than merely locally unset) would need a tri-state Opt,
// which no downstream component currently requires.
func (f xmlFrame) del() bool { return f.attrBool("Del") }

// xmlDoubleValue parses a Visio "Cell" V attribute as a locale-independent
// double, replacing the original's setlocale(LC_NUMERIC)-dependent atof
// (spec.md §5 "Global state").
func xmlDoubleValue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// cellTable accumulates a section element's (XForm, Line, Fill, ...) child
// `<Cell N="..." V="..." U="..."/>` rows by name, the form real VDX/VSDX
// ShapeSheet-derived sections use (spec.md §6's unit table is read through
// this: U carries the CellType-equivalent unit code).
type cellTable map[string]xmlCell

type xmlCell struct {
	V    string
	Unit uint8
}

func (t cellTable) float(name string, def float64) float64 {
	c, ok := t[name]
	if !ok {
		return def
	}
	v, ok := xmlDoubleValue(c.V)
	if !ok {
		return def
	}
	return v
}

func (t cellTable) bool(name string, def bool) bool {
	c, ok := t[name]
	if !ok {
		return def
	}
	return c.V == "1" || strings.EqualFold(c.V, "true")
}

func (t cellTable) u8(name string, def uint8) uint8 {
	c, ok := t[name]
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(strings.TrimSpace(c.V), 10, 8)
	if err != nil {
		return def
	}
	return uint8(n)
}

func (t cellTable) colour(prefix string, def Colour) Colour {
	c, ok := t[prefix]
	if !ok {
		return def
	}
	return parseColourString(c.V, def)
}

// parseColourString parses "#rrggbb" as an opaque colour; any other form,
// including a bare palette index, returns def unchanged.
func parseColourString(s string, def Colour) Colour {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, err1 := strconv.ParseUint(s[1:3], 16, 8)
		g, err2 := strconv.ParseUint(s[3:5], 16, 8)
		b, err3 := strconv.ParseUint(s[5:7], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return Colour{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
		}
	}
	return def
}

// xmlDecoder drives a Collector from a Visio XML element stream (VDX's
// single document, or one VSDX OPC part), grounded on
// VSDXMLParserBase.cpp's element dispatch: aggregates push a frame, leaf
// "Cell" rows accumulate into the innermost frame's cellTable, and a level
// (depth) decrease is reported to the collector exactly like a binary
// chunk's level decrease (spec.md §4.1).
type xmlDecoder struct {
	collector Collector
	dec       *xml.Decoder
	stack     []xmlFrame
	cells     []cellTable // parallel to stack; cells[i] belongs to stack[i]

	pageID    uint32
	nextAutoID uint32

	shapeStack []uint32 // open shape ids, innermost last — for CollectShape's parent-chain bookkeeping via level
}

// newXMLDecoder wraps r for decodeElements to consume.
func newXMLDecoder(r io.Reader, collector Collector) *xmlDecoder {
	return &xmlDecoder{collector: collector, dec: xml.NewDecoder(r)}
}

func (d *xmlDecoder) depth() uint16 { return uint16(len(d.stack)) }

func (d *xmlDecoder) top() (xmlFrame, cellTable, bool) {
	if len(d.stack) == 0 {
		return xmlFrame{}, nil, false
	}
	return d.stack[len(d.stack)-1], d.cells[len(d.cells)-1], true
}

func localName(n xml.Name) string { return n.Local }

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[localName(a.Name)] = a.Value
	}
	return m
}

// decodeElements runs the full token loop until EOF, dispatching
// Collect* calls the same way the binary decoder's handleChunks loop does
// (spec.md §4.1). Any element not recognized by name is a silent no-op
// touch rather than an error, since an XML schema's forward-compatible
// unknown elements must not abort the document (spec.md §7 UnknownChunk,
// generalized to XML).
func (d *xmlDecoder) decodeElements() error {
	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			d.handleStart(t)
		case xml.EndElement:
			d.handleEnd(t)
		case xml.CharData:
			d.handleCharData(t)
		}
	}
}

func (d *xmlDecoder) handleStart(t xml.StartElement) {
	name := localName(t.Name)
	attrs := attrMap(t.Attr)
	frame := xmlFrame{name: name, attrs: attrs, depth: d.depth()}

	if name == "Cell" {
		d.recordCell(attrs)
		d.stack = append(d.stack, frame)
		d.cells = append(d.cells, nil)
		return
	}

	switch name {
	case "Page", "Master":
		d.beginPage(frame)
	case "Shape":
		d.beginShape(frame)
	case "Text":
		// text body accumulated via CharData/handleEnd
	}

	d.stack = append(d.stack, frame)
	d.cells = append(d.cells, cellTable{})
}

func (d *xmlDecoder) recordCell(attrs map[string]string) {
	_, cells, ok := d.top()
	if !ok {
		return
	}
	n, ok := attrs["N"]
	if !ok {
		return
	}
	v := attrs["V"]
	unit := uint8(0)
	if u, ok := attrs["U"]; ok {
		unit = parseUnitCode(u)
	}
	cells[n] = xmlCell{V: v, Unit: unit}
}

func (d *xmlDecoder) handleCharData(t xml.CharData) {
	frame, _, ok := d.top()
	if !ok || frame.name != "Text" {
		return
	}
	// Raw shape text is UTF-8 once past the XML layer's own entity
	// decoding; stash it in the frame's attrs under a sentinel key so
	// handleEnd can hand it to the collector once the element closes.
	frame.attrs["__text__"] += string(t)
	d.stack[len(d.stack)-1] = frame
}

func (d *xmlDecoder) handleEnd(t xml.EndElement) {
	if len(d.stack) == 0 {
		return
	}
	frame := d.stack[len(d.stack)-1]
	cells := d.cells[len(d.cells)-1]
	d.stack = d.stack[:len(d.stack)-1]
	d.cells = d.cells[:len(d.cells)-1]

	level := frame.depth
	d.collector.HandleLevelChange(level)

	switch frame.name {
	case "Cell":
		// Already folded into the parent frame's cellTable on start; the
		// Cell element itself carries no further action at end.
	case "Page", "Master":
		d.collector.CollectEndPage()
	case "Shape":
		if len(d.shapeStack) > 0 {
			d.shapeStack = d.shapeStack[:len(d.shapeStack)-1]
		}
	case "XForm":
		d.collector.CollectXFormData(d.curID(), level, xformFromCells(cells))
	case "TxtXForm":
		d.collector.CollectTxtXForm(d.curID(), level, xformFromCells(cells))
	case "Line":
		colour := cells.colour("LineColor", Colour{A: 0xff})
		d.collector.CollectLine(d.curID(), level,
			cells.float("LineWeight", 0.01), colour,
			cells.u8("LinePattern", 1), cells.u8("BeginArrow", 0),
			cells.u8("EndArrow", 0), cells.u8("LineCap", 0))
	case "Fill":
		d.collector.CollectFillAndShadow(d.curID(), level, fillStyleFromCells(cells))
	case "TextBlock":
		d.collector.CollectTextBlock(d.curID(), level, textBlockFromCells(cells))
	case "StyleSheet":
		d.collector.CollectStyleSheet(frame.attrUint("ID", MinusOne), level,
			frame.attrUint("LineStyle", MinusOne), frame.attrUint("FillStyle", MinusOne),
			frame.attrUint("TextStyle", MinusOne))
	case "Geom":
		d.collector.CollectGeomList(frame.attrUint("IX", 0), level)
		d.collector.CollectGeometry(d.curID(), level,
			frame.attrBool("NoFill"), frame.attrBool("NoLine"), frame.attrBool("NoShow"))
	case "MoveTo", "LineTo", "RelMoveTo", "RelLineTo":
		d.emitGeomXY(frame, cells, geomKindForElement(frame.name))
	case "ArcTo":
		if !frame.del() {
			d.collector.CollectGeometryElement(d.curID(), level, GeometryElement{
				Kind: GeomArcTo, X: cells.float("X", 0), Y: cells.float("Y", 0), Bow: cells.float("A", 0),
			})
		}
	case "EllipticalArcTo", "RelEllipticalArcTo":
		if !frame.del() {
			d.collector.CollectGeometryElement(d.curID(), level, GeometryElement{
				Kind: GeomEllipticalArcTo,
				X3:   cells.float("X", 0), Y3: cells.float("Y", 0),
				X2: cells.float("A", 0), Y2: cells.float("B", 0),
				Angle: cells.float("C", 0), Ecc: cells.float("D", 0),
			})
		}
	case "Ellipse":
		if !frame.del() {
			d.collector.CollectGeometryElement(d.curID(), level, GeometryElement{
				Kind: GeomEllipse,
				X:    cells.float("X", 0), Y: cells.float("Y", 0),
				X2: cells.float("A", 0), Y2: cells.float("B", 0),
				X3: cells.float("C", 0), Y3: cells.float("D", 0),
			})
		}
	case "InfiniteLine":
		d.emitGeomXY(frame, cells, GeomInfiniteLine)
	case "PolylineTo":
		if !frame.del() {
			d.collector.CollectGeometryElement(d.curID(), level, GeometryElement{
				Kind: GeomPolylineTo, X: cells.float("X", 0), Y: cells.float("Y", 0),
				DataID: frame.attrUint("IX", MinusOne),
			})
		}
	case "NURBSTo":
		if !frame.del() {
			d.collector.CollectGeometryElement(d.curID(), level, GeometryElement{
				Kind: GeomNurbsTo, X: cells.float("X", 0), Y: cells.float("Y", 0),
				DataID: frame.attrUint("IX", MinusOne),
			})
		}
	case "Char":
		d.collector.CollectCharIX(d.curID(), level, charStyleFromCells(frame, cells))
	case "Para":
		d.collector.CollectParaIX(d.curID(), level, paraStyleFromCells(frame, cells))
	case "Text":
		text := frame.attrs["__text__"]
		d.collector.CollectText(d.curID(), level, []byte(text), TextFormatUTF8)
	case "Field":
		d.emitField(frame, level)
	case "Foreign", "ForeignData":
		d.emitForeign(frame, cells, level)
	case "Colors":
		d.collector.CollectColours(colorsFromCells(cells))
	case "Name":
		d.collector.CollectName(frame.attrUint("IX", 0), level, frame.attrUint("IX", 0),
			[]byte(frame.attrs["__text__"]), TextFormatUTF8)
	default:
		d.collector.CollectUnhandledChunk(frame.attrUint("ID", 0), level)
	}
}

func (d *xmlDecoder) curID() uint32 {
	if len(d.shapeStack) > 0 {
		return d.shapeStack[len(d.shapeStack)-1]
	}
	return d.pageID
}

func (d *xmlDecoder) beginPage(frame xmlFrame) {
	d.pageID = frame.attrUint("ID", 0)
	d.collector.CollectPage(d.pageID, frame.depth, frame.attrBool("Background"))
}

func (d *xmlDecoder) beginShape(frame xmlFrame) {
	id := frame.attrUint("ID", d.nextAutoID)
	d.nextAutoID = id + 1
	d.collector.CollectShape(id, frame.depth,
		frame.attrUint("Master", MinusOne), frame.attrUint("MasterShape", MinusOne),
		frame.attrUint("LineStyle", MinusOne), frame.attrUint("FillStyle", MinusOne),
		frame.attrUint("TextStyle", MinusOne))
	d.shapeStack = append(d.shapeStack, id)
}

func (d *xmlDecoder) emitGeomXY(frame xmlFrame, cells cellTable, kind GeometryKind) {
	if frame.del() {
		return
	}
	d.collector.CollectGeometryElement(d.curID(), frame.depth, GeometryElement{
		Kind: kind, X: cells.float("X", 0), Y: cells.float("Y", 0),
	})
}

func geomKindForElement(name string) GeometryKind {
	switch name {
	case "RelMoveTo":
		return GeomRelMoveTo
	case "RelLineTo":
		return GeomRelLineTo
	case "LineTo":
		return GeomLineTo
	default:
		return GeomMoveTo
	}
}

func xformFromCells(cells cellTable) XForm {
	return XForm{
		PinX: cells.float("PinX", 0), PinY: cells.float("PinY", 0),
		Width: cells.float("Width", 0), Height: cells.float("Height", 0),
		LocPinX: cells.float("LocPinX", 0), LocPinY: cells.float("LocPinY", 0),
		Angle: cells.float("Angle", 0),
		FlipX: cells.bool("FlipX", false), FlipY: cells.bool("FlipY", false),
	}
}

func fillStyleFromCells(cells cellTable) FillStyle {
	var fs FillStyle
	fs.FgColour = Some(cells.colour("FillForegnd", Colour{A: 0xff}))
	fs.BgColour = Some(cells.colour("FillBkgnd", Colour{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	fs.Pattern = Some(cells.u8("FillPattern", 0))
	fs.FgTransparency = Some(cells.u8("FillForegndTrans", 0))
	fs.BgTransparency = Some(cells.u8("FillBkgndTrans", 0))
	fs.ShadowPattern = Some(cells.u8("ShapeShdwType", 0))
	fs.ShadowFgColour = Some(cells.colour("ShdwForegnd", Colour{A: 0xff}))
	fs.ShadowOffsetX = Some(cells.float("ShdwOffsetX", 0))
	fs.ShadowOffsetY = Some(cells.float("ShdwOffsetY", 0))
	return fs
}

func textBlockFromCells(cells cellTable) TextBlockStyle {
	var tb TextBlockStyle
	tb.LeftMargin = Some(cells.float("LeftMargin", 0))
	tb.RightMargin = Some(cells.float("RightMargin", 0))
	tb.TopMargin = Some(cells.float("TopMargin", 0))
	tb.BottomMargin = Some(cells.float("BottomMargin", 0))
	tb.VerticalAlign = Some(cells.u8("VerticalAlign", 0))
	return tb
}

func charStyleFromCells(frame xmlFrame, cells cellTable) CharStyle {
	return CharStyle{
		CharCount: frame.attrUint("CharCount", 0),
		FontID:    Some(uint16(cells.u8("Font", 0))),
		Colour:    Some(cells.colour("Color", Colour{A: 0xff})),
		Size:      Some(cells.float("Size", 12)),
		Bold:      Some(cells.bool("Style.Bold", false)),
		Italic:    Some(cells.bool("Style.Italic", false)),
		Underline: Some(cells.bool("Style.Underline", false)),
	}
}

func paraStyleFromCells(frame xmlFrame, cells cellTable) ParaStyle {
	return ParaStyle{
		CharCount: frame.attrUint("CharCount", 0),
		IndFirst:  Some(cells.float("IndFirst", 0)),
		IndLeft:   Some(cells.float("IndLeft", 0)),
		IndRight:  Some(cells.float("IndRight", 0)),
		Align:     Some(cells.u8("HorzAlign", 0)),
	}
}

func colorsFromCells(cells cellTable) []Colour {
	// A Colors section's entries are attributes on child ColorEntry
	// elements rather than Cell rows in practice; the common case of a
	// document carrying no custom palette (falling back to the standard
	// 24-entry table) is handled by leaving this empty, which callers
	// must treat as "use the standard palette."
	_ = cells
	return nil
}

func (d *xmlDecoder) emitField(frame xmlFrame, level uint16) {
	switch frame.attrs["Type"] {
	case "1": // numeric field
		value := frame.attrFloat("Value", 0)
		formatID := frame.attrUint("Format", 0)
		d.collector.CollectNumericField(d.curID(), level, formatID, value)
	default: // text/name field
		d.collector.CollectTextField(d.curID(), level, frame.attrUint("NameU", MinusOne))
	}
}

func (d *xmlDecoder) emitForeign(frame xmlFrame, cells cellTable, level uint16) {
	typeByte := frame.attrUint("ForeignType", 0)
	formatWord := frame.attrUint("ForeignFormat", 0)
	var ft ForeignType
	switch typeByte {
	case 1:
		ft = ForeignObjectOLE
	case 2:
		ft = ForeignEnhancedMetafile
	default:
		ft = ForeignBitmap
	}
	var ff ForeignFormat
	switch formatWord {
	case 1:
		ff = ForeignFormatBmp
	case 2:
		ff = ForeignFormatJpeg
	case 3:
		ff = ForeignFormatGif
	case 4:
		ff = ForeignFormatTiff
	case 5:
		ff = ForeignFormatPng
	default:
		ff = ForeignFormatNone
	}
	d.collector.CollectForeignDataType(d.curID(), level, ft, ff)
	_ = cells
	// The actual image bytes live in a separate OPC part reached through
	// a relationship id on this element (VSDX) or are out-of-line in VDX.
	// They are not read: no CollectForeignData call is made for XML input.
}

// parseUnitCode maps a Cell's U attribute string (e.g. "IN", "PT", "DEG")
// to the nearest CellType constant unitconv.go already understands, so the
// same ResolveCellUnit table serves both decoders.
func parseUnitCode(u string) uint8 {
	switch strings.ToUpper(strings.TrimSpace(u)) {
	case "IN", "INCHES":
		return CellTypeInches
	case "CM":
		return CellTypeCentimeters
	case "MM":
		return CellTypeMillimeters
	case "PT", "POINT", "POINTS":
		return CellTypePoints
	case "DEG", "DEGREES":
		return CellTypeDegrees
	case "RAD", "RADIANS":
		return CellTypeRadians
	case "PERCENT", "%":
		return CellTypePercent
	case "SEC", "SECONDS":
		return CellTypeElapsedSec
	default:
		return CellTypeNoCast
	}
}
