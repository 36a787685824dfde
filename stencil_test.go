// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStencilShapeCopyIntoFillsUnsetFields(t *testing.T) {
	master := &StencilShape{
		ID:          1,
		LineStyleID: 7,
		FillStyleID: 8,
		Geometries: map[uint32]*GeometryList{
			0: {Elements: []GeometryElement{{Kind: GeomMoveTo, X: 1, Y: 1}}},
		},
	}

	instance := NewShape(0)
	master.CopyInto(instance)

	assert.Equal(t, uint32(7), instance.LineStyleID)
	assert.Equal(t, uint32(8), instance.FillStyleID)
	assert.Len(t, instance.Geometries[0].Elements, 1)
}

// TestStencilShapeCopyIntoNoAlias enforces the "Stencil no-alias"
// invariant: mutating the instance's copied geometry must never mutate
// the master's.
func TestStencilShapeCopyIntoNoAlias(t *testing.T) {
	master := &StencilShape{
		Geometries: map[uint32]*GeometryList{
			0: {Elements: []GeometryElement{{Kind: GeomMoveTo, X: 1, Y: 1}}},
		},
	}

	instance := NewShape(0)
	master.CopyInto(instance)

	instance.Geometries[0].Elements[0].X = 999

	assert.Equal(t, 1.0, master.Geometries[0].Elements[0].X)
	assert.Equal(t, 999.0, instance.Geometries[0].Elements[0].X)
}

func TestStencilShapeCopyIntoLocalOverrideWins(t *testing.T) {
	master := &StencilShape{LineStyleID: 7}
	instance := NewShape(0)
	instance.LineStyleID = 3 // already set locally

	master.CopyInto(instance)

	assert.Equal(t, uint32(3), instance.LineStyleID)
}

func TestStencilRegistryLookupDefaultsToFirstShape(t *testing.T) {
	registry := NewStencilRegistry()
	registry.Add(1, &Stencil{
		FirstShapeID: 5,
		Shapes: map[uint32]*StencilShape{
			5: {ID: 5},
		},
	})

	got := registry.Lookup(1, MinusOne)
	if assert.NotNil(t, got) {
		assert.Equal(t, uint32(5), got.ID)
	}

	assert.Nil(t, registry.Lookup(99, MinusOne))
}
