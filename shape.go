// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// GeometryElement is one expanded drawing primitive within a geometry
// section, already typed (not yet transformed/scaled — that happens in the
// Content Collector per spec.md §4.3.3).
type GeometryElement struct {
	Kind GeometryKind
	// Coordinates, meaning depends on Kind; see geometry.go.
	X, Y, X2, Y2, X3, Y3 float64
	Bow                  float64
	Angle, Ecc           float64
	DataID               uint32
}

// GeometryKind enumerates the geometry-list primitive types of spec.md §4.3.3.
type GeometryKind int

const (
	GeomMoveTo GeometryKind = iota
	GeomLineTo
	GeomArcTo
	GeomEllipticalArcTo
	GeomEllipse
	GeomInfiniteLine
	GeomNurbsTo
	GeomPolylineTo
	GeomRelMoveTo
	GeomRelLineTo
	GeomRelCubBezTo
	GeomRelQuadBezTo
	GeomRelEllipticalArcTo
	GeomSplineKnot
)

// GeometryList is one geometry section: an ordered list of primitives plus
// the noFill/noLine/noShow flags (spec.md §4.3.4).
type GeometryList struct {
	Elements       []GeometryElement
	NoFill, NoLine, NoShow bool
}

// FieldElement is one resolved field placeholder consumed from the text
// stream in order (spec.md §3's field invariant).
type FieldElement struct {
	IsNumeric  bool
	NameID     uint32 // text field: name-id into Shape.Names
	FormatID   uint32 // numeric field: format-id
	Value      float64
}

// Shape is the central aggregate built during parsing of one shape
// (spec.md §3 "Shape entity"). It is created at shape-begin, mutated by
// every chunk whose level exceeds the shape's opening level, and frozen at
// shape-end.
type Shape struct {
	ShapeID, ParentID          uint32
	MasterPage, MasterShape    uint32
	LineStyleID, FillStyleID, TextStyleID uint32

	XForm    XForm
	TxtXForm *XForm

	Line       LineStyle
	Fill       FillStyle
	TextBlock  TextBlockStyle

	// Geometries are keyed by geometry-section index; iteration must
	// proceed in sorted-key order (spec.md §3 invariant).
	Geometries map[uint32]*GeometryList

	CharRuns []CharStyle
	ParaRuns []ParaStyle

	Text       []byte
	TextFormat TextFormat

	Fields []FieldElement

	Foreign *ForeignData

	NurbsData    map[uint32]NurbsData
	PolylineData map[uint32]PolylineData

	Names map[uint32]Name

	// Annotations holds reviewer/annotation chunk text (VSD_REVIEWER,
	// VSD_ANNOTATION) that doesn't affect paint output but is surfaced
	// rather than silently dropped (SPEC_FULL supplemented feature 4).
	Annotations []string

	// openLevel is the decoder level at which this shape was opened; the
	// shape ends (and is frozen) the first time the decoder level drops
	// below it.
	openLevel uint16
}

// NewShape creates a freshly-opened shape at the given decoder level.
func NewShape(openLevel uint16) *Shape {
	return &Shape{
		Geometries:   make(map[uint32]*GeometryList),
		NurbsData:    make(map[uint32]NurbsData),
		PolylineData: make(map[uint32]PolylineData),
		Names:        make(map[uint32]Name),
		LineStyleID:  MinusOne,
		FillStyleID:  MinusOne,
		TextStyleID:  MinusOne,
		MasterPage:   MinusOne,
		MasterShape:  MinusOne,
		openLevel:    openLevel,
	}
}

// SortedGeometryKeys returns a shape's geometry-section indices in sorted
// order, the iteration order spec.md §3 requires.
func (s *Shape) SortedGeometryKeys() []uint32 {
	keys := make([]uint32, 0, len(s.Geometries))
	for k := range s.Geometries {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// HasMaster reports whether the shape references a stencil master.
func (s *Shape) HasMaster() bool {
	return s.MasterPage != MinusOne || s.MasterShape != MinusOne
}
