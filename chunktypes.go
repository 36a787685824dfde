// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// Chunk type constants for the legacy binary container, transcribed from
// the VSD_* token table (spec.md §6 "Chunk type constants"). A decoder
// unaware of a given id still tracks level changes correctly and reports
// it via collectUnhandledChunk; these constants only name the ids the
// collectors act on.
const (
	ChunkForeignData uint32 = 0x0c
	ChunkOLEList     uint32 = 0x0d
	ChunkText        uint32 = 0x0e

	ChunkTrailerStream uint32 = 0x14
	ChunkPage          uint32 = 0x15
	ChunkColors        uint32 = 0x16
	ChunkFontList      uint32 = 0x18
	ChunkFontIX        uint32 = 0x19
	ChunkStyles        uint32 = 0x1a
	ChunkStencils      uint32 = 0x1d
	ChunkStencilPage   uint32 = 0x1e
	ChunkOLEData       uint32 = 0x1f

	ChunkPages uint32 = 0x27

	ChunkNameList  uint32 = 0x2c
	ChunkName      uint32 = 0x2d
	ChunkNameList2 uint32 = 0x32
	ChunkName2     uint32 = 0x33
	ChunkNameIDX123 uint32 = 0x34

	ChunkPageSheet   uint32 = 0x46
	ChunkShapeGroup  uint32 = 0x47
	ChunkShapeShape  uint32 = 0x48
	ChunkShapeGuide  uint32 = 0x4d
	ChunkShapeForeign uint32 = 0x4e

	ChunkStyleSheet uint32 = 0x4a

	ChunkScratchList     uint32 = 0x64
	ChunkShapeList       uint32 = 0x65
	ChunkFieldList       uint32 = 0x66
	ChunkPropList        uint32 = 0x68
	ChunkCharList        uint32 = 0x69
	ChunkParaList        uint32 = 0x6a
	ChunkTabsDataList    uint32 = 0x6b
	ChunkGeomList        uint32 = 0x6c
	ChunkCustPropsList   uint32 = 0x6d
	ChunkActIDList       uint32 = 0x6e
	ChunkLayerList       uint32 = 0x6f
	ChunkCtrlList        uint32 = 0x70
	ChunkCPntsList       uint32 = 0x71
	ChunkConnectList     uint32 = 0x72
	ChunkHyperLnkList    uint32 = 0x73
	ChunkSmartTagList    uint32 = 0x76

	ChunkShapeID uint32 = 0x83
	ChunkEvent   uint32 = 0x84
	ChunkLine    uint32 = 0x85
	ChunkFillAndShadow uint32 = 0x86
	ChunkTextBlock     uint32 = 0x87
	ChunkTabsData1     uint32 = 0x88
	ChunkGeometry      uint32 = 0x89
	ChunkMoveTo        uint32 = 0x8a
	ChunkLineTo        uint32 = 0x8b
	ChunkArcTo         uint32 = 0x8c
	ChunkInfiniteLine  uint32 = 0x8d

	ChunkEllipse           uint32 = 0x8f
	ChunkEllipticalArcTo   uint32 = 0x90

	ChunkPageProps   uint32 = 0x92
	ChunkStyleProps  uint32 = 0x93
	ChunkCharIX      uint32 = 0x94
	ChunkParaIX      uint32 = 0x95
	ChunkTabsData2   uint32 = 0x96
	ChunkTabsData3   uint32 = 0x97
	ChunkForeignDataType uint32 = 0x98
	ChunkConnectionPoints uint32 = 0x99

	ChunkXFormData uint32 = 0x9b
	ChunkTextXForm uint32 = 0x9c
	ChunkXForm1D   uint32 = 0x9d
	ChunkScratch   uint32 = 0x9e

	ChunkProtection         uint32 = 0xa0
	ChunkTextField          uint32 = 0xa1
	ChunkControlAnotherType uint32 = 0xa2

	ChunkMisc             uint32 = 0xa4
	ChunkSplineStart      uint32 = 0xa5
	ChunkSplineKnot       uint32 = 0xa6
	ChunkLayerMembership  uint32 = 0xa7
	ChunkLayer            uint32 = 0xa8
	ChunkActID            uint32 = 0xa9
	ChunkControl          uint32 = 0xaa

	ChunkUserDefinedCells uint32 = 0xb4
	ChunkTabsData4        uint32 = 0xb5
	ChunkCustomProps      uint32 = 0xb6
	ChunkRulerGrid        uint32 = 0xb7

	ChunkConnectionPointsAnotherType uint32 = 0xba

	ChunkDocProps    uint32 = 0xbc
	ChunkImage       uint32 = 0xbd
	ChunkGroup       uint32 = 0xbe
	ChunkLayout      uint32 = 0xbf
	ChunkPageLayoutIX uint32 = 0xc0

	ChunkPolylineTo uint32 = 0xc1
	ChunkNurbsTo    uint32 = 0xc3
	ChunkHyperlink  uint32 = 0xc4
	ChunkReviewer   uint32 = 0xc5
	ChunkAnnotation uint32 = 0xc6
	ChunkSmartTagDef uint32 = 0xc7
	ChunkPrintProps uint32 = 0xc8
	ChunkNameIDX    uint32 = 0xc9

	ChunkShapeData uint32 = 0xd1
	ChunkFontFace  uint32 = 0xd7
	ChunkFontFaces uint32 = 0xd8
)

// chunkNames gives a human-readable name for debug logging
// (collectUnhandledChunk, per spec.md §7) without a giant switch.
var chunkNames = map[uint32]string{
	ChunkForeignData: "ForeignData", ChunkOLEList: "OLEList", ChunkText: "Text",
	ChunkTrailerStream: "TrailerStream", ChunkPage: "Page", ChunkColors: "Colors",
	ChunkFontList: "FontList", ChunkFontIX: "FontIX", ChunkStyles: "Styles",
	ChunkStencils: "Stencils", ChunkStencilPage: "StencilPage", ChunkOLEData: "OLEData",
	ChunkPages: "Pages", ChunkNameList: "NameList", ChunkName: "Name",
	ChunkNameList2: "NameList2", ChunkName2: "Name2", ChunkNameIDX123: "NameIDX123",
	ChunkPageSheet: "PageSheet", ChunkShapeGroup: "ShapeGroup", ChunkShapeShape: "ShapeShape",
	ChunkShapeGuide: "ShapeGuide", ChunkShapeForeign: "ShapeForeign", ChunkStyleSheet: "StyleSheet",
	ChunkScratchList: "ScratchList", ChunkShapeList: "ShapeList", ChunkFieldList: "FieldList",
	ChunkPropList: "PropList", ChunkCharList: "CharList", ChunkParaList: "ParaList",
	ChunkTabsDataList: "TabsDataList", ChunkGeomList: "GeomList", ChunkCustPropsList: "CustPropsList",
	ChunkActIDList: "ActIDList", ChunkLayerList: "LayerList", ChunkCtrlList: "CtrlList",
	ChunkCPntsList: "CPntsList", ChunkConnectList: "ConnectList", ChunkHyperLnkList: "HyperLnkList",
	ChunkSmartTagList: "SmartTagList", ChunkShapeID: "ShapeID", ChunkEvent: "Event",
	ChunkLine: "Line", ChunkFillAndShadow: "FillAndShadow", ChunkTextBlock: "TextBlock",
	ChunkTabsData1: "TabsData1", ChunkGeometry: "Geometry", ChunkMoveTo: "MoveTo",
	ChunkLineTo: "LineTo", ChunkArcTo: "ArcTo", ChunkInfiniteLine: "InfiniteLine",
	ChunkEllipse: "Ellipse", ChunkEllipticalArcTo: "EllipticalArcTo", ChunkPageProps: "PageProps",
	ChunkStyleProps: "StyleProps", ChunkCharIX: "CharIX", ChunkParaIX: "ParaIX",
	ChunkTabsData2: "TabsData2", ChunkTabsData3: "TabsData3", ChunkForeignDataType: "ForeignDataType",
	ChunkConnectionPoints: "ConnectionPoints", ChunkXFormData: "XFormData", ChunkTextXForm: "TextXForm",
	ChunkXForm1D: "XForm1D", ChunkScratch: "Scratch", ChunkProtection: "Protection",
	ChunkTextField: "TextField", ChunkControlAnotherType: "ControlAnotherType", ChunkMisc: "Misc",
	ChunkSplineStart: "SplineStart", ChunkSplineKnot: "SplineKnot", ChunkLayerMembership: "LayerMembership",
	ChunkLayer: "Layer", ChunkActID: "ActID", ChunkControl: "Control",
	ChunkUserDefinedCells: "UserDefinedCells", ChunkTabsData4: "TabsData4", ChunkCustomProps: "CustomProps",
	ChunkRulerGrid: "RulerGrid", ChunkConnectionPointsAnotherType: "ConnectionPointsAnotherType",
	ChunkDocProps: "DocProps", ChunkImage: "Image", ChunkGroup: "Group", ChunkLayout: "Layout",
	ChunkPageLayoutIX: "PageLayoutIX", ChunkPolylineTo: "PolylineTo", ChunkNurbsTo: "NurbsTo",
	ChunkHyperlink: "Hyperlink", ChunkReviewer: "Reviewer", ChunkAnnotation: "Annotation",
	ChunkSmartTagDef: "SmartTagDef", ChunkPrintProps: "PrintProps", ChunkNameIDX: "NameIDX",
	ChunkShapeData: "ShapeData", ChunkFontFace: "FontFace", ChunkFontFaces: "FontFaces",
}

// ChunkTypeName returns the debug name for a chunk type id, or "Unknown"
// for an id not in the table (spec.md §7 UnknownChunk handling).
func ChunkTypeName(id uint32) string {
	if n, ok := chunkNames[id]; ok {
		return n
	}
	return "Unknown"
}
