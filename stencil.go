// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import "github.com/mohae/deepcopy"

// StencilShape is a read-only master-shape template, as loaded once into
// the StencilRegistry before any page is parsed (spec.md §3 "Lifecycle",
// §4.5). Content collectors must never mutate a StencilShape in place —
// see CopyInto, which is the only sanctioned way data flows from a master
// into an instance shape.
type StencilShape struct {
	ID           uint32
	LineStyleID  uint32
	FillStyleID  uint32
	TextStyleID  uint32
	XForm        XForm
	Geometries   map[uint32]*GeometryList
	NurbsData    map[uint32]NurbsData
	PolylineData map[uint32]PolylineData
	Text         []byte
	TextFormat   TextFormat
	Foreign      *ForeignData

	// Line, Fill, and TextBlock are the master shape's own direct style
	// overrides (its Line/FillAndShadow/TextBlock chunks), distinct from
	// LineStyleID/FillStyleID/TextStyleID's style-sheet references. The
	// Content Collector overlays these beneath the instance's own direct
	// override (spec.md §4.3.1).
	Line      LineStyle
	Fill      FillStyle
	TextBlock TextBlockStyle
}

// CopyInto copies the master's fields that stencil inheritance (spec.md
// §4.3.9) says an instance shape inherits, into shape — provided the
// shape's own corresponding field hasn't already been set locally. Copying
// (rather than aliasing) is required by the "Stencil no-alias" invariant in
// spec.md §8: mutating the instance must never also mutate the master.
//
// deepcopy.Copy is the teacher's own dependency, used here for exactly the
// purpose excelize uses it for internally: producing an independent copy of
// a shared template before a caller is allowed to mutate it.
func (m *StencilShape) CopyInto(shape *Shape) {
	if shape.LineStyleID == MinusOne {
		shape.LineStyleID = m.LineStyleID
	}
	if shape.FillStyleID == MinusOne {
		shape.FillStyleID = m.FillStyleID
	}
	if shape.TextStyleID == MinusOne {
		shape.TextStyleID = m.TextStyleID
	}
	if shape.XForm == (XForm{}) {
		shape.XForm = m.XForm
	}
	if len(shape.Text) == 0 && len(m.Text) > 0 {
		shape.Text = append([]byte(nil), m.Text...)
		shape.TextFormat = m.TextFormat
	}
	if shape.Foreign == nil && m.Foreign != nil {
		fcopy := deepcopy.Copy(*m.Foreign).(ForeignData)
		shape.Foreign = &fcopy
	}
	for k, v := range m.Geometries {
		if _, present := shape.Geometries[k]; present && len(shape.Geometries[k].Elements) > 0 {
			// Invariant (spec.md §3): a local, non-empty list wins
			// over the master's list at the same index.
			continue
		}
		gcopy := deepcopy.Copy(*v).(GeometryList)
		shape.Geometries[k] = &gcopy
	}
	for k, v := range m.NurbsData {
		if _, present := shape.NurbsData[k]; !present {
			shape.NurbsData[k] = deepcopy.Copy(v).(NurbsData)
		}
	}
	for k, v := range m.PolylineData {
		if _, present := shape.PolylineData[k]; !present {
			shape.PolylineData[k] = deepcopy.Copy(v).(PolylineData)
		}
	}
}

// Stencil holds one master page's shapes, plus its page-level shadow
// offsets.
type Stencil struct {
	Shapes        map[uint32]*StencilShape
	FirstShapeID  uint32
	ShadowOffsetX, ShadowOffsetY float64
}

// StencilRegistry is the read-only table of master shapes, populated once
// before any page is parsed (spec.md §3, §4.5).
type StencilRegistry struct {
	stencils map[uint32]*Stencil
}

// NewStencilRegistry creates an empty registry.
func NewStencilRegistry() *StencilRegistry {
	return &StencilRegistry{stencils: make(map[uint32]*Stencil)}
}

// Add registers a stencil page. Called only during the load phase, never
// after any page has begun parsing.
func (r *StencilRegistry) Add(masterPage uint32, s *Stencil) {
	r.stencils[masterPage] = s
}

// Lookup resolves (masterPage, masterShape) to a StencilShape. A nil result
// is non-fatal: the shape is treated as having no master (spec.md §4.5).
func (r *StencilRegistry) Lookup(masterPage, masterShape uint32) *StencilShape {
	stencil, ok := r.stencils[masterPage]
	if !ok {
		return nil
	}
	if masterShape == MinusOne {
		masterShape = stencil.FirstShapeID
	}
	return stencil.Shapes[masterShape]
}

// ShadowOffset returns the page-level shadow offset for a master page, or
// (0,0) if the page has no stencil.
func (r *StencilRegistry) ShadowOffset(masterPage uint32) (x, y float64) {
	stencil, ok := r.stencils[masterPage]
	if !ok {
		return 0, 0
	}
	return stencil.ShadowOffsetX, stencil.ShadowOffsetY
}
