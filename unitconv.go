// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// Cell type constants, transcribed from the CELL_TYPE_* unit-conversion
// table (SPEC_FULL supplemented feature 3: exposing a cell's original
// unit alongside its internal-inches value, rather than silently
// discarding it after conversion).
const (
	CellTypeNumber             uint8 = 32
	CellTypePercent            uint8 = 33
	CellTypeAcre               uint8 = 36
	CellTypeHectare            uint8 = 37
	CellTypeDate               uint8 = 40
	CellTypeDurationUnits      uint8 = 42
	CellTypeElapsedWeek        uint8 = 43
	CellTypeElapsedDay         uint8 = 44
	CellTypeElapsedHour        uint8 = 45
	CellTypeElapsedMin         uint8 = 46
	CellTypeElapsedSec         uint8 = 47
	CellTypeTypeUnits          uint8 = 48
	CellTypePicasAndPoints     uint8 = 49
	CellTypePoints             uint8 = 50
	CellTypePicas              uint8 = 51
	CellTypeCicerosAndDidots   uint8 = 52
	CellTypeDidots             uint8 = 53
	CellTypeCiceros            uint8 = 54
	CellTypePageUnits          uint8 = 63
	CellTypeDrawingUnits       uint8 = 64
	CellTypeInches             uint8 = 65
	CellTypeFeet               uint8 = 66
	CellTypeFeetAndInches      uint8 = 67
	CellTypeMiles              uint8 = 68
	CellTypeCentimeters        uint8 = 69
	CellTypeMillimeters        uint8 = 70
	CellTypeMeters             uint8 = 71
	CellTypeKilometers         uint8 = 72
	CellTypeInchFractions      uint8 = 73
	CellTypeMileFractions      uint8 = 74
	CellTypeYards              uint8 = 75
	CellTypeNauticalMiles      uint8 = 76
	CellTypeAngleUnits         uint8 = 80
	CellTypeDegrees            uint8 = 81
	CellTypeDegreeMinuteSecond uint8 = 82
	CellTypeRadians            uint8 = 83
	CellTypeMinutes            uint8 = 84
	CellTypeSec                uint8 = 85
	CellTypeGUID               uint8 = 95
	CellTypeCurrency           uint8 = 111
	CellTypeNURBS              uint8 = 138
	CellTypePolyline           uint8 = 139
	CellTypePoint              uint8 = 225
	CellTypeString             uint8 = 231
	CellTypeStringWithoutUnit  uint8 = 232
	CellTypeMultidimensional   uint8 = 233
	CellTypeColor              uint8 = 251
	CellTypeNoCast             uint8 = 252
	CellTypeInvalid            uint8 = 255
)

// inchesPerUnit gives the multiplicative factor to convert a raw cell
// value in its native unit to inches, Visio's internal master unit for
// linear measures (spec.md's XForm fields are all expressed in inches).
// Angular and non-linear cell types are intentionally absent; callers
// must branch on Kind first via ResolveCellUnit.
var inchesPerUnit = map[uint8]float64{
	CellTypeInches:         1,
	CellTypeFeet:           12,
	CellTypeMiles:          63360,
	CellTypeCentimeters:    1 / 2.54,
	CellTypeMillimeters:    1 / 25.4,
	CellTypeMeters:         1 / 0.0254,
	CellTypeKilometers:     1 / 0.0000254,
	CellTypeYards:          36,
	CellTypeNauticalMiles:  72913.4,
	CellTypePoints:         1.0 / 72,
	CellTypePicas:          1.0 / 6,
	CellTypeDidots:         1.0 / 67.567,
	CellTypeCiceros:        1.0 / 5.6306,
}

// CellUnitKind classifies a cell-type code into the measurement family it
// belongs to, so callers can pick the right conversion (linear, angular,
// percentage, elapsed-time, or opaque/no-cast).
type CellUnitKind int

const (
	CellUnitLinear CellUnitKind = iota
	CellUnitAngular
	CellUnitPercent
	CellUnitElapsed
	CellUnitOpaque
)

// ResolveCellUnit classifies a cell-type code and, for linear units,
// returns the inches-per-unit factor (1 for already-linear/no-cast
// types).
func ResolveCellUnit(cellType uint8) (kind CellUnitKind, inchesPer float64) {
	switch {
	case cellType == CellTypePercent:
		return CellUnitPercent, 1
	case cellType == CellTypeAngleUnits || cellType == CellTypeDegrees ||
		cellType == CellTypeDegreeMinuteSecond || cellType == CellTypeRadians ||
		cellType == CellTypeMinutes || cellType == CellTypeSec:
		return CellUnitAngular, 1
	case cellType == CellTypeDurationUnits || cellType == CellTypeElapsedWeek ||
		cellType == CellTypeElapsedDay || cellType == CellTypeElapsedHour ||
		cellType == CellTypeElapsedMin || cellType == CellTypeElapsedSec:
		return CellUnitElapsed, 1
	case cellType == CellTypeNoCast || cellType == CellTypeInvalid ||
		cellType == CellTypeString || cellType == CellTypeStringWithoutUnit ||
		cellType == CellTypeColor || cellType == CellTypeGUID:
		return CellUnitOpaque, 1
	default:
		if f, ok := inchesPerUnit[cellType]; ok {
			return CellUnitLinear, f
		}
		return CellUnitLinear, 1
	}
}

// ToInches converts a raw cell value to inches using its cell-type's
// conversion factor; non-linear kinds pass the value through unchanged.
func ToInches(value float64, cellType uint8) float64 {
	kind, factor := ResolveCellUnit(cellType)
	if kind != CellUnitLinear {
		return value
	}
	return value * factor
}
