// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// Collector is the trait both the binary chunk decoder and the XML node
// decoder drive (spec.md §4.1 "Contract"). StyleCollector and
// ContentCollector both implement it; the decoder doesn't know or care
// which pass it's driving.
type Collector interface {
	// HandleLevelChange is invoked at every decoder level decrease — the
	// only signal that a list or shape has ended (spec.md §4.1 "Level
	// changes", §9 "Level-based lifetime tracking").
	HandleLevelChange(level uint16)

	CollectColours(colours []Colour)
	CollectFont(fontID uint16, textStream []byte, format TextFormat)

	CollectPage(id uint32, level uint16, background bool)
	CollectPageProps(id uint32, level uint16, width, height, shadowX, shadowY float64)
	CollectPages()
	CollectEndPage()

	CollectShape(id uint32, level uint16, masterPage, masterShape, lineStyle, fillStyle, textStyle uint32)
	CollectShapeID(id uint32, level uint16, shapeID uint32)
	CollectShapeList(id uint32, level uint16)
	CollectForeignDataType(id uint32, level uint16, foreignType ForeignType, format ForeignFormat)
	CollectForeignData(id uint32, level uint16, data []byte)

	CollectXFormData(id uint32, level uint16, xform XForm)
	CollectTxtXForm(id uint32, level uint16, xform XForm)

	CollectLine(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8)
	CollectFillAndShadow(id uint32, level uint16, fs FillStyle)
	CollectTextBlock(id uint32, level uint16, tb TextBlockStyle)

	CollectStyleSheet(id uint32, level uint16, parentLine, parentFill, parentText uint32)
	CollectLineStyle(id uint32, level uint16, width float64, colour Colour, pattern, startMarker, endMarker, cap uint8)
	CollectFillStyle(id uint32, level uint16, fs FillStyle)

	CollectGeomList(id uint32, level uint16)
	CollectGeometry(id uint32, level uint16, noFill, noLine, noShow bool)
	CollectGeometryElement(id uint32, level uint16, el GeometryElement)
	CollectShapeData(id uint32, level uint16, dataID uint32, nurbs *NurbsData, polyline *PolylineData)

	CollectCharList(id uint32, level uint16)
	CollectCharIX(id uint32, level uint16, cs CharStyle)
	CollectParaList(id uint32, level uint16)
	CollectParaIX(id uint32, level uint16, ps ParaStyle)
	CollectText(id uint32, level uint16, text []byte, format TextFormat)
	CollectFieldList(id uint32, level uint16)
	CollectTextField(id uint32, level uint16, nameID uint32)
	CollectNumericField(id uint32, level uint16, formatID uint32, value float64)
	CollectName(id uint32, level uint16, nameID uint32, bytes []byte, format TextFormat)

	CollectAnnotation(id uint32, level uint16, text string)

	CollectUnhandledChunk(id uint32, level uint16)
}
