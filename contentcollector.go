// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// openShape tracks one open shape/group frame during the second pass: the
// shape being built, the level it opened at, and the geometry-list index
// currently being filled.
type openShape struct {
	shape       *Shape
	level       uint16
	curGeomList uint32
}

// ContentCollector is the second pass (spec.md §4.2, §4.3): it resolves
// styles, expands geometry, lays out text, applies stencil inheritance,
// and drives a PaintInterface. It consumes the Style Collector's output
// by immutable borrow (spec.md §5 "Shared resources").
type ContentCollector struct {
	painter   PaintInterface
	styles    *Styles
	stencils  *StencilRegistry
	pageTables []*PageTables

	codePage int

	pageIdx   int
	curTables *PageTables
	curPage   *Page

	stack []*openShape

	shapeOutputs map[uint32]*shapeOutput
	docNames     map[uint32]Name
	fields       FieldList
}

// NewContentCollector creates the second-pass collector. pageTables must
// be the Style Collector's per-page output, in the same page order the
// decoder will replay (spec.md §5: "the first pass's outputs are handed
// to the second pass by value/immutable borrow").
func NewContentCollector(painter PaintInterface, styles *Styles, stencils *StencilRegistry, pageTables []*PageTables, codePage int) *ContentCollector {
	return &ContentCollector{
		painter:      painter,
		styles:       styles,
		stencils:     stencils,
		pageTables:   pageTables,
		codePage:     codePage,
		shapeOutputs: make(map[uint32]*shapeOutput),
		docNames:     make(map[uint32]Name),
		fields:       NewFieldList(),
	}
}

func (cc *ContentCollector) currentShape() *Shape {
	if len(cc.stack) == 0 {
		return nil
	}
	return cc.stack[len(cc.stack)-1].shape
}

// HandleLevelChange finalizes and closes every open shape whose opening
// level is no longer covered (spec.md §4.1 "Level changes").
func (cc *ContentCollector) HandleLevelChange(level uint16) {
	for len(cc.stack) > 0 && cc.stack[len(cc.stack)-1].level >= level {
		frame := cc.stack[len(cc.stack)-1]
		cc.stack = cc.stack[:len(cc.stack)-1]
		cc.finalizeShape(frame.shape)
	}
}

func (cc *ContentCollector) CollectColours(colours []Colour) {}
func (cc *ContentCollector) CollectFont(fontID uint16, textStream []byte, format TextFormat) {}

func (cc *ContentCollector) CollectPage(id uint32, level uint16, background bool) {
	cc.curPage = NewPage()
	cc.curPage.IsBackground = background
	if cc.pageIdx < len(cc.pageTables) {
		cc.curTables = cc.pageTables[cc.pageIdx]
	} else {
		cc.curTables = newPageTables()
	}
	cc.pageIdx++
	cc.stack = nil
	cc.shapeOutputs = make(map[uint32]*shapeOutput)
	cc.painter.StartPage(Props{})
}

func (cc *ContentCollector) CollectPageProps(id uint32, level uint16, width, height, shadowX, shadowY float64) {
	if cc.curPage == nil {
		return
	}
	cc.curPage.Width = width
	cc.curPage.Height = height
	cc.curPage.ShadowOffsetX = shadowX
	cc.curPage.ShadowOffsetY = shadowY
}

func (cc *ContentCollector) CollectPages() {}

// CollectEndPage emits the page's two post-order passes — every shape's
// graphics, child-before-parent, then every shape's text the same way —
// and ends the page (spec.md §4.3.10, §8 scenario 6; see DESIGN.md's
// "Nested-group output ordering" entry).
func (cc *ContentCollector) CollectEndPage() {
	if cc.curPage == nil {
		return
	}
	graphics := &OutputElementList{}
	text := &OutputElementList{}
	if cc.curTables != nil {
		cc.emitPostOrder(cc.curTables.TopLevel, graphics, true)
		cc.emitPostOrder(cc.curTables.TopLevel, text, false)
	}
	graphics.Flush(cc.painter)
	text.Flush(cc.painter)
	cc.painter.EndPage()
	cc.curPage = nil
}

// emitPostOrder walks ids and their GroupChildren depth-first, appending
// each shape's graphics (wantGraphics == true) or text (false) output
// after all of its children's — children before parent, globally, across
// the whole page (not just within one group).
func (cc *ContentCollector) emitPostOrder(ids []uint32, out *OutputElementList, wantGraphics bool) {
	for _, id := range ids {
		if cc.curTables != nil {
			cc.emitPostOrder(cc.curTables.GroupChildren[id], out, wantGraphics)
		}
		so, ok := cc.shapeOutputs[id]
		if !ok {
			continue
		}
		if wantGraphics {
			out.Append(&so.graphics)
		} else {
			out.Append(&so.text)
		}
	}
}

func (cc *ContentCollector) CollectShape(id uint32, level uint16, masterPage, masterShape, lineStyle, fillStyle, textStyle uint32) {
	shape := NewShape(level)
	shape.ShapeID = id
	shape.MasterPage = masterPage
	shape.MasterShape = masterShape
	shape.LineStyleID = lineStyle
	shape.FillStyleID = fillStyle
	shape.TextStyleID = textStyle
	if parent := cc.currentShape(); parent != nil {
		shape.ParentID = parent.ShapeID
	} else {
		shape.ParentID = MinusOne
		// A page with no first-pass table paints its top-level shapes in
		// arrival order.
		if cc.pageIdx > len(cc.pageTables) {
			cc.curTables.TopLevel = append(cc.curTables.TopLevel, id)
		}
	}
	cc.stack = append(cc.stack, &openShape{shape: shape, level: level})
}

func (cc *ContentCollector) CollectShapeID(id uint32, level uint16, shapeID uint32) {}
func (cc *ContentCollector) CollectShapeList(id uint32, level uint16)             {}

func (cc *ContentCollector) CollectForeignDataType(id uint32, level uint16, foreignType ForeignType, format ForeignFormat) {
	shape := cc.currentShape()
	if shape == nil {
		return
	}
	if shape.Foreign == nil {
		shape.Foreign = &ForeignData{}
	}
	shape.Foreign.Type = foreignType
	shape.Foreign.Format = format
}

func (cc *ContentCollector) CollectForeignData(id uint32, level uint16, data []byte) {
	shape := cc.currentShape()
	if shape == nil {
		return
	}
	if shape.Foreign == nil {
		shape.Foreign = &ForeignData{}
	}
	shape.Foreign.Bytes = data
}

func (cc *ContentCollector) CollectXFormData(id uint32, level uint16, xform XForm) {
	if shape := cc.currentShape(); shape != nil {
		shape.XForm = xform
	}
}

func (cc *ContentCollector) CollectTxtXForm(id uint32, level uint16, xform XForm) {
	if shape := cc.currentShape(); shape != nil {
		x := xform
		shape.TxtXForm = &x
	}
}

func (cc *ContentCollector) CollectLine(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
	if shape := cc.currentShape(); shape != nil {
		shape.Line = LineStyle{
			Width: Some(width), Colour: Some(colour), Pattern: Some(pattern),
			StartMarker: Some(startMarker), EndMarker: Some(endMarker), Cap: Some(cap),
		}
	}
}

func (cc *ContentCollector) CollectFillAndShadow(id uint32, level uint16, fs FillStyle) {
	if shape := cc.currentShape(); shape != nil {
		shape.Fill = fs
	}
}

func (cc *ContentCollector) CollectTextBlock(id uint32, level uint16, tb TextBlockStyle) {
	if shape := cc.currentShape(); shape != nil {
		shape.TextBlock = tb
	}
}

func (cc *ContentCollector) CollectStyleSheet(id uint32, level uint16, parentLine, parentFill, parentText uint32) {
}
func (cc *ContentCollector) CollectLineStyle(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
}
func (cc *ContentCollector) CollectFillStyle(id uint32, level uint16, fs FillStyle) {}

func (cc *ContentCollector) CollectGeomList(id uint32, level uint16) {
	if frame := cc.topFrame(); frame != nil {
		frame.curGeomList = id
		if _, ok := frame.shape.Geometries[id]; !ok {
			frame.shape.Geometries[id] = &GeometryList{}
		}
	}
}

func (cc *ContentCollector) topFrame() *openShape {
	if len(cc.stack) == 0 {
		return nil
	}
	return cc.stack[len(cc.stack)-1]
}

func (cc *ContentCollector) CollectGeometry(id uint32, level uint16, noFill, noLine, noShow bool) {
	frame := cc.topFrame()
	if frame == nil {
		return
	}
	gl, ok := frame.shape.Geometries[frame.curGeomList]
	if !ok {
		gl = &GeometryList{}
		frame.shape.Geometries[frame.curGeomList] = gl
	}
	gl.NoFill, gl.NoLine, gl.NoShow = noFill, noLine, noShow
}

func (cc *ContentCollector) CollectGeometryElement(id uint32, level uint16, el GeometryElement) {
	frame := cc.topFrame()
	if frame == nil {
		return
	}
	gl, ok := frame.shape.Geometries[frame.curGeomList]
	if !ok {
		gl = &GeometryList{}
		frame.shape.Geometries[frame.curGeomList] = gl
	}
	gl.Elements = append(gl.Elements, el)
}

func (cc *ContentCollector) CollectShapeData(id uint32, level uint16, dataID uint32, nurbs *NurbsData, polyline *PolylineData) {
	shape := cc.currentShape()
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

func (cc *ContentCollector) CollectCharList(id uint32, level uint16) {}
func (cc *ContentCollector) CollectCharIX(id uint32, level uint16, cs CharStyle) {
	if shape := cc.currentShape(); shape != nil {
		shape.CharRuns = append(shape.CharRuns, cs)
	}
}
func (cc *ContentCollector) CollectParaList(id uint32, level uint16) {}
func (cc *ContentCollector) CollectParaIX(id uint32, level uint16, ps ParaStyle) {
	if shape := cc.currentShape(); shape != nil {
		shape.ParaRuns = append(shape.ParaRuns, ps)
	}
}

func (cc *ContentCollector) CollectText(id uint32, level uint16, text []byte, format TextFormat) {
	if shape := cc.currentShape(); shape != nil {
		shape.Text = text
		shape.TextFormat = format
	}
}

func (cc *ContentCollector) CollectFieldList(id uint32, level uint16) {}

func (cc *ContentCollector) CollectTextField(id uint32, level uint16, nameID uint32) {
	if shape := cc.currentShape(); shape != nil {
		shape.Fields = append(shape.Fields, FieldElement{IsNumeric: false, NameID: nameID})
	}
}

func (cc *ContentCollector) CollectNumericField(id uint32, level uint16, formatID uint32, value float64) {
	if shape := cc.currentShape(); shape != nil {
		shape.Fields = append(shape.Fields, FieldElement{IsNumeric: true, FormatID: formatID, Value: value})
	}
}

func (cc *ContentCollector) CollectName(id uint32, level uint16, nameID uint32, bytes []byte, format TextFormat) {
	n := Name{Bytes: bytes, Format: format}
	cc.docNames[nameID] = n
	if shape := cc.currentShape(); shape != nil {
		shape.Names[nameID] = n
	}
}

func (cc *ContentCollector) CollectAnnotation(id uint32, level uint16, text string) {
	if shape := cc.currentShape(); shape != nil {
		shape.Annotations = append(shape.Annotations, text)
	}
}

func (cc *ContentCollector) CollectUnhandledChunk(id uint32, level uint16) {}

var _ Collector = (*ContentCollector)(nil)

// resolveName decodes a stored Name's raw bytes into a display string,
// used as the nameResolver for text-field lookups.
func (cc *ContentCollector) resolveName(nameID uint32) string {
	n, ok := cc.docNames[nameID]
	if !ok {
		return ""
	}
	s, err := DecodeShapeText(n.Bytes, n.Format, cc.codePage)
	if err != nil {
		return ""
	}
	return s
}

// transformChain builds the shape-first, ancestor-last XForm chain that
// ApplyChain/geomCtx need, walking GroupMemberships up from shape to page
// root (spec.md §4.3.2).
func (cc *ContentCollector) transformChain(shape *Shape) []XForm {
	chain := []XForm{shape.XForm}
	if cc.curTables == nil {
		return chain
	}
	id := shape.ShapeID
	visited := map[uint32]bool{id: true}
	for {
		parent, ok := cc.curTables.GroupMemberships[id]
		if !ok || visited[parent] {
			break
		}
		visited[parent] = true
		if x, ok := cc.curTables.GroupXForms[parent]; ok {
			chain = append(chain, x)
		}
		id = parent
	}
	return chain
}

// finalizeShape applies stencil inheritance, resolves cascading styles,
// expands geometry, lays out text, and records the shape's paint output
// (spec.md §3 "Lifecycle", §4.3).
func (cc *ContentCollector) finalizeShape(shape *Shape) {
	var masterLine LineStyle
	var masterFill FillStyle
	var masterTextBlock TextBlockStyle
	if shape.HasMaster() && cc.stencils != nil {
		if master := cc.stencils.Lookup(shape.MasterPage, shape.MasterShape); master != nil {
			master.CopyInto(shape)
			masterLine, masterFill, masterTextBlock = master.Line, master.Fill, master.TextBlock
		}
	}

	// Three-tier cascade (spec.md §4.3.1): style-sheet cascade (the
	// master's, by id-forwarding, if the shape has none of its own) <
	// the master's own direct override < the shape's own direct
	// override.
	line := overlayLineStyle(overlayLineStyle(cc.styles.ResolveLine(shape.LineStyleID), masterLine), shape.Line)
	fill := overlayFillStyle(overlayFillStyle(cc.styles.ResolveFill(shape.FillStyleID), masterFill), shape.Fill)
	textBlock := overlayTextBlockStyle(overlayTextBlockStyle(cc.styles.ResolveTextBlock(shape.TextStyleID), masterTextBlock), shape.TextBlock)

	resolvedLine := line.Resolve()
	resolvedFill := fill.Resolve()

	chain := cc.transformChain(shape)
	flipX, _ := ComposedFlip(chain)
	pageHeight := 0.0
	if cc.curPage != nil {
		pageHeight = cc.curPage.Height
	}
	ctx := geomCtx{
		chain: chain, pageHeight: pageHeight, scale: 1,
		shapeWidth: shape.XForm.Width, shapeHeight: shape.XForm.Height, flipX: flipX,
	}

	out := &shapeOutput{}

	var fillPath, strokePath []PathElement
	for _, k := range shape.SortedGeometryKeys() {
		f, s := expandGeometry(shape.Geometries[k], shape, ctx)
		fillPath = append(fillPath, f...)
		strokePath = append(strokePath, s...)
	}
	if len(fillPath) > 0 || len(strokePath) > 0 {
		kind, anchor := ResolveFillPattern(resolvedFill.Pattern)
		gradient := BuildGradientStops(resolvedFill)
		fillColour := resolvedFill.FgColour
		if kind == GradientSolid && resolvedFill.Pattern != 1 {
			// Unrecognised patterns degrade to a solid background-colour fill.
			fillColour = resolvedFill.BgColour
		}
		styleProps := Props{
			"svg:stroke-width": resolvedLine.Width,
			"svg:stroke-color": resolvedLine.Colour.Hex(),
			"draw:fill":        fillKindName(kind),
			"draw:fill-color":  fillColour.Hex(),
			"govisio:fill-anchor": int(anchor),
		}
		if dashes := ResolveDashPattern(resolvedLine.Pattern, resolvedLine.Width); dashes != nil {
			styleProps["govisio:dash-array"] = dashes
		}
		out.graphics.SetStyle(styleProps, gradient)
		// Both are emitted under a layer group only when both fill and
		// stroke are non-empty (spec.md §4.3.4); a shape with only one
		// draws it directly, with no layer wrapper.
		both := len(fillPath) > 0 && len(strokePath) > 0
		if both {
			out.graphics.StartLayer(Props{})
		}
		if len(fillPath) > 0 {
			out.graphics.DrawPath(fillPath)
		}
		if len(strokePath) > 0 {
			out.graphics.DrawPath(strokePath)
		}
		if both {
			out.graphics.EndLayer()
		}
	}

	if shape.Foreign != nil && len(shape.Foreign.Bytes) > 0 {
		NormalizeForeignData(shape.Foreign)
		flipX, flipY := ComposedFlip(chain)
		out.graphics.DrawGraphicObject(ForeignPlacementProps(*shape.Foreign, flipX, flipY), shape.Foreign.Bytes)
	}

	if len(shape.Text) > 0 {
		frameProps := Props{
			"fo:margin-left":   textBlock.LeftMargin.Resolved(),
			"fo:margin-right":  textBlock.RightMargin.Resolved(),
			"fo:margin-top":    textBlock.TopMargin.Resolved(),
			"fo:margin-bottom": textBlock.BottomMargin.Resolved(),
		}
		charStyleFn := func(cs CharStyle) Props { return charStyleProps(cs) }
		paraStyleFn := func(ps ParaStyle) Props { return paraStyleProps(ps) }
		fieldResolverFn := func(f FieldElement) string { return cc.fields.Resolve(f, cc.resolveName) }
		_ = LayoutText(shape, charStyleFn, paraStyleFn, frameProps, cc.codePage, fieldResolverFn, &out.text)
	}

	cc.shapeOutputs[shape.ShapeID] = out
	if cc.curPage != nil {
		cc.curPage.Shapes[shape.ShapeID] = shape
	}
}

func fillKindName(kind GradientKind) string {
	if kind == GradientNone {
		return "none"
	}
	return "solid"
}

func charStyleProps(cs CharStyle) Props {
	p := Props{}
	if cs.Colour.Set {
		p["fo:color"] = cs.Colour.Value.Hex()
	}
	if cs.Size.Set {
		p["fo:font-size"] = cs.Size.Value
	}
	if cs.Bold.Set && cs.Bold.Value {
		p["fo:font-weight"] = "bold"
	}
	if cs.Italic.Set && cs.Italic.Value {
		p["fo:font-style"] = "italic"
	}
	if cs.Underline.Set && cs.Underline.Value {
		p["style:text-underline-style"] = "solid"
	}
	return p
}

func paraStyleProps(ps ParaStyle) Props {
	p := Props{}
	if ps.Align.Set {
		switch ps.Align.Value {
		case 1:
			p["fo:text-align"] = "center"
		case 2:
			p["fo:text-align"] = "end"
		default:
			p["fo:text-align"] = "start"
		}
	}
	return p
}
