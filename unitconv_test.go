// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInchesLinearConversions(t *testing.T) {
	assert.InDelta(t, 1.0, ToInches(1, CellTypeInches), 1e-9)
	assert.InDelta(t, 12.0, ToInches(1, CellTypeFeet), 1e-9)
	assert.InDelta(t, 1.0, ToInches(2.54, CellTypeCentimeters), 1e-9)
	assert.InDelta(t, 1.0, ToInches(25.4, CellTypeMillimeters), 1e-9)
}

func TestToInchesPassesNonLinearThrough(t *testing.T) {
	assert.Equal(t, 50.0, ToInches(50, CellTypePercent))
	assert.Equal(t, 1.5708, ToInches(1.5708, CellTypeRadians))
}

func TestResolveCellUnitClassification(t *testing.T) {
	kind, factor := ResolveCellUnit(CellTypeDegrees)
	assert.Equal(t, CellUnitAngular, kind)
	assert.Equal(t, 1.0, factor)

	kind, _ = ResolveCellUnit(CellTypeElapsedSec)
	assert.Equal(t, CellUnitElapsed, kind)

	kind, _ = ResolveCellUnit(CellTypeString)
	assert.Equal(t, CellUnitOpaque, kind)

	kind, factor = ResolveCellUnit(CellTypeInches)
	assert.Equal(t, CellUnitLinear, kind)
	assert.Equal(t, 1.0, factor)
}

func TestResolveCellUnitUnknownDefaultsLinearIdentity(t *testing.T) {
	kind, factor := ResolveCellUnit(0)
	assert.Equal(t, CellUnitLinear, kind)
	assert.Equal(t, 1.0, factor)
}
