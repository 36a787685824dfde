// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// Page is created at page-begin, receives shapes in decoder order, and is
// drained into the PaintInterface at page-end (spec.md §3 "Lifecycle").
type Page struct {
	Width, Height             float64
	ShadowOffsetX, ShadowOffsetY float64
	IsBackground              bool

	// Shapes holds every finalized shape on this page, keyed by id; the
	// map keeps no order.
	Shapes map[uint32]*Shape

	// ShapeOrder holds a depth-first, pre-order flattening of the page's
	// shapes (spec.md §4.2 "Shape-order splicing"). The Content Collector
	// does not fill it in; it paints from the Style Collector's
	// PageTables, children before parent.
	ShapeOrder []uint32
}

// NewPage creates an empty page.
func NewPage() *Page {
	return &Page{Shapes: make(map[uint32]*Shape)}
}
