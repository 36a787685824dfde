// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// PageTables is the per-page output of the Style Collector: group
// transforms, group memberships, and paint order (spec.md §4.2).
type PageTables struct {
	GroupXForms      map[uint32]XForm
	GroupMemberships map[uint32]uint32 // child shape id -> parent shape id
	GroupChildren    map[uint32][]uint32 // group/shape id -> direct children, arrival order
	ShapeOrder       []uint32           // depth-first pre-order flattening
	TopLevel         []uint32           // page-direct shape ids, arrival order
}

func newPageTables() *PageTables {
	return &PageTables{
		GroupXForms:      make(map[uint32]XForm),
		GroupMemberships: make(map[uint32]uint32),
	}
}

type openFrame struct {
	shapeID  uint32
	level    uint16
}

// StyleCollector is the first pass (spec.md §4.2): it accumulates style
// sheets, group transforms, group memberships, and per-page shape
// orderings, and emits no paint calls.
type StyleCollector struct {
	styles *Styles
	pages  []*PageTables

	curPage     *PageTables
	curPageTop  []uint32           // top-level (page-direct) children, in arrival order
	children    map[uint32][]uint32 // group id -> direct children, in arrival order

	stack []openFrame // open shapes/groups, innermost last

	// curStyleSheet accumulates a style-sheet chunk's locally-set
	// attributes until the next level change flushes it.
	curStyleSheet *StyleSheet
}

// NewStyleCollector creates an empty first-pass collector.
func NewStyleCollector() *StyleCollector {
	return &StyleCollector{
		styles:   NewStyles(),
		children: make(map[uint32][]uint32),
	}
}

// Styles returns the accumulated style-sheet table, handed to the Content
// Collector by value/immutable borrow per spec.md §5.
func (c *StyleCollector) Styles() *Styles { return c.styles }

// Pages returns the accumulated per-page tables.
func (c *StyleCollector) Pages() []*PageTables { return c.pages }

func (c *StyleCollector) currentShapeID() (uint32, bool) {
	if len(c.stack) == 0 {
		return 0, false
	}
	return c.stack[len(c.stack)-1].shapeID, true
}

// HandleLevelChange pops any open shape/group whose opening level is no
// longer covered, and flushes a pending style sheet when the level drops
// to 0. Group child lists are spliced into the page's order by
// CollectEndPage, not here (spec.md §4.2 "Shape-order splicing").
func (c *StyleCollector) HandleLevelChange(level uint16) {
	for len(c.stack) > 0 && c.stack[len(c.stack)-1].level >= level {
		c.stack = c.stack[:len(c.stack)-1]
	}
	if c.curStyleSheet != nil && level == 0 {
		c.flushStyleSheet()
	}
}

func (c *StyleCollector) flushStyleSheet() {
	if c.curStyleSheet != nil {
		c.styles.Sheets[c.curStyleSheet.ID] = *c.curStyleSheet
		c.curStyleSheet = nil
	}
}

func (c *StyleCollector) CollectColours(colours []Colour) {}
func (c *StyleCollector) CollectFont(fontID uint16, textStream []byte, format TextFormat) {}

func (c *StyleCollector) CollectPage(id uint32, level uint16, background bool) {
	c.curPage = newPageTables()
	c.curPageTop = nil
	c.children = make(map[uint32][]uint32)
	c.stack = nil
}

func (c *StyleCollector) CollectPageProps(id uint32, level uint16, width, height, shadowX, shadowY float64) {
}

func (c *StyleCollector) CollectPages() {}

// CollectEndPage splices each group's spliced child list into the page's
// top-level order, depth-first pre-order, and appends the finished page.
func (c *StyleCollector) CollectEndPage() {
	if c.curPage == nil {
		return
	}
	var order []uint32
	var splice func(id uint32)
	splice = func(id uint32) {
		order = append(order, id)
		for _, child := range c.children[id] {
			splice(child)
		}
	}
	for _, id := range c.curPageTop {
		splice(id)
	}
	c.curPage.ShapeOrder = order
	c.curPage.TopLevel = c.curPageTop
	c.curPage.GroupChildren = c.children
	c.pages = append(c.pages, c.curPage)
	c.curPage = nil
}

func (c *StyleCollector) CollectShape(id uint32, level uint16, masterPage, masterShape, lineStyle, fillStyle, textStyle uint32) {
	if parent, ok := c.currentShapeID(); ok {
		c.children[parent] = append(c.children[parent], id)
		if c.curPage != nil {
			c.curPage.GroupMemberships[id] = parent
		}
	} else {
		c.curPageTop = append(c.curPageTop, id)
	}
	c.stack = append(c.stack, openFrame{shapeID: id, level: level})
}

func (c *StyleCollector) CollectShapeID(id uint32, level uint16, shapeID uint32) {}
func (c *StyleCollector) CollectShapeList(id uint32, level uint16)             {}
func (c *StyleCollector) CollectForeignDataType(id uint32, level uint16, ft ForeignType, ff ForeignFormat) {
}
func (c *StyleCollector) CollectForeignData(id uint32, level uint16, data []byte) {}

// CollectXFormData records the current shape's transform into the page's
// group-transform table — every shape's transform is recorded, not only
// groups', since a leaf shape's own xform is needed by the Content
// Collector's transform-chain composition too (spec.md §4.3.2).
func (c *StyleCollector) CollectXFormData(id uint32, level uint16, xform XForm) {
	shapeID, ok := c.currentShapeID()
	if !ok || c.curPage == nil {
		return
	}
	c.curPage.GroupXForms[shapeID] = xform
}

func (c *StyleCollector) CollectTxtXForm(id uint32, level uint16, xform XForm) {}

func (c *StyleCollector) CollectLine(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
}
func (c *StyleCollector) CollectFillAndShadow(id uint32, level uint16, fs FillStyle) {}
func (c *StyleCollector) CollectTextBlock(id uint32, level uint16, tb TextBlockStyle) {}

func (c *StyleCollector) CollectStyleSheet(id uint32, level uint16, parentLine, parentFill, parentText uint32) {
	c.flushStyleSheet()
	c.curStyleSheet = &StyleSheet{ID: id, ParentLine: parentLine, ParentFill: parentFill, ParentText: parentText}
}

func (c *StyleCollector) CollectLineStyle(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8) {
	if c.curStyleSheet == nil {
		return
	}
	c.curStyleSheet.Line = LineStyle{
		Width: Some(width), Colour: Some(colour), Pattern: Some(pattern),
		StartMarker: Some(startMarker), EndMarker: Some(endMarker), Cap: Some(cap),
	}
}

func (c *StyleCollector) CollectFillStyle(id uint32, level uint16, fs FillStyle) {
	if c.curStyleSheet == nil {
		return
	}
	c.curStyleSheet.Fill = fs
}

func (c *StyleCollector) CollectGeomList(id uint32, level uint16)                            {}
func (c *StyleCollector) CollectGeometry(id uint32, level uint16, noFill, noLine, noShow bool) {}
func (c *StyleCollector) CollectGeometryElement(id uint32, level uint16, el GeometryElement)  {}
func (c *StyleCollector) CollectShapeData(id uint32, level uint16, dataID uint32, nurbs *NurbsData, polyline *PolylineData) {
}

func (c *StyleCollector) CollectCharList(id uint32, level uint16)            {}
func (c *StyleCollector) CollectCharIX(id uint32, level uint16, cs CharStyle) {}
func (c *StyleCollector) CollectParaList(id uint32, level uint16)            {}
func (c *StyleCollector) CollectParaIX(id uint32, level uint16, ps ParaStyle) {}
func (c *StyleCollector) CollectText(id uint32, level uint16, text []byte, format TextFormat) {}
func (c *StyleCollector) CollectFieldList(id uint32, level uint16)          {}
func (c *StyleCollector) CollectTextField(id uint32, level uint16, nameID uint32) {}
func (c *StyleCollector) CollectNumericField(id uint32, level uint16, formatID uint32, value float64) {
}
func (c *StyleCollector) CollectName(id uint32, level uint16, nameID uint32, bytes []byte, format TextFormat) {
}

func (c *StyleCollector) CollectAnnotation(id uint32, level uint16, text string) {}

func (c *StyleCollector) CollectUnhandledChunk(id uint32, level uint16) {}

var _ Collector = (*StyleCollector)(nil)
