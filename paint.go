// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// Props is a property list whose keys mirror ODF, per spec.md §6: svg:x,
// svg:y, svg:width, svg:height, svg:stroke-width, svg:stroke-color,
// draw:fill, draw:fill-color, libwpg:path-action, libwpg:rotate,
// libwpg:large-arc, libwpg:sweep, fo:font-size, fo:color, style:font-name,
// fo:text-align, and so on. Using a plain map keeps govisio decoupled from
// any one output sink's property-list type, matching spec.md §1's framing
// of output sinks as external collaborators reached only through
// PaintInterface.
type Props map[string]interface{}

// PathElement is one command in a drawPath call, keyed the way
// libwpg:path-action enumerates them.
type PathElement struct {
	Action string // "M", "L", "C", "Q", "A", "Z"
	Props  Props
}

// PaintInterface is the output abstraction every collector drives; see
// spec.md §6. Output sinks (SVG writers, text extractors, ...) implement
// this and are never referenced directly by the collectors.
type PaintInterface interface {
	StartDocument()
	EndDocument()
	StartPage(props Props)
	EndPage()
	SetStyle(props Props, gradient []Props)
	DrawPath(elements []PathElement)
	DrawEllipse(props Props)
	DrawGraphicObject(props Props, data []byte)
	StartLayer(props Props)
	EndLayer()
	StartTextObject(props Props)
	EndTextObject()
	OpenParagraph(props Props)
	CloseParagraph()
	OpenSpan(props Props)
	CloseSpan()
	InsertText(text string)
	InsertTab()
	InsertSpace()
	InsertLineBreak()
	InsertField(props Props)
}
