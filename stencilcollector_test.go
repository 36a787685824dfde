// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStencilCollectorRegistersMasterShape drives a StencilCollector
// through one master page with a single shape and checks the resulting
// Stencil is registered under the page id with the shape's fields carried
// through into the StencilShape (spec.md §4.5).
func TestStencilCollectorRegistersMasterShape(t *testing.T) {
	registry := NewStencilRegistry()
	c := NewStencilCollector(registry)

	c.CollectPage(3, 0, false)
	c.CollectPageProps(3, 0, 8.5, 11, 0.1, 0.2)
	c.CollectShape(5, 1, MinusOne, MinusOne, 7, 8, 9)
	c.CollectXFormData(5, 1, XForm{Width: 2, Height: 3})
	c.CollectGeomList(0, 2)
	c.CollectGeometryElement(5, 2, GeometryElement{Kind: GeomMoveTo, X: 1, Y: 1})
	c.CollectText(5, 1, []byte("master text"), TextFormatUTF8)
	c.HandleLevelChange(0)
	c.CollectEndPage()

	stencil := registry.Lookup(3, 5)
	require.NotNil(t, stencil)
	assert.Equal(t, uint32(7), stencil.LineStyleID)
	assert.Equal(t, uint32(8), stencil.FillStyleID)
	assert.Equal(t, uint32(9), stencil.TextStyleID)
	assert.Equal(t, "master text", string(stencil.Text))
	require.Len(t, stencil.Geometries[0].Elements, 1)
	assert.Equal(t, 1.0, stencil.Geometries[0].Elements[0].X)

	assert.Equal(t, uint32(5), registry.Lookup(3, MinusOne).ID)
}

func TestStencilCollectorEmptyPageRegistersEmptyStencil(t *testing.T) {
	registry := NewStencilRegistry()
	c := NewStencilCollector(registry)

	c.CollectPage(1, 0, false)
	c.HandleLevelChange(0)
	c.CollectEndPage()

	assert.Nil(t, registry.Lookup(1, MinusOne))
	assert.Nil(t, registry.Lookup(1, 99))
}
