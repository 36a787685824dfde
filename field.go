// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"fmt"
	"math"
	"time"
)

// FieldKind distinguishes the broad families of field-format codes listed
// in spec.md §6.
type FieldKind int

const (
	FieldKindDate FieldKind = iota
	FieldKindTime
	FieldKindLocaleDate
	FieldKindLocaleTime
	FieldKindNumber
	FieldKindString
)

// fieldFormats maps the field-format codes from spec.md §6 to their kind
// and a Go time-layout (for date/time kinds). This is the SPEC_FULL
// "full field-format table" supplemented feature, transcribed from
// original_source/src/lib/VSDXFieldList.cpp / libvisio's date/time table.
var fieldFormats = map[uint32]struct {
	Kind   FieldKind
	Layout string
}{
	0x14: {FieldKindDate, "1/2/2006"},
	0x15: {FieldKindDate, "Monday, January 2, 2006"},
	0x16: {FieldKindDate, "January 2, 2006"},
	0x17: {FieldKindDate, "2-Jan-06"},
	0x18: {FieldKindDate, "January 06"},
	0x19: {FieldKindDate, "Jan-06"},
	0x1C: {FieldKindDate, "2006-01-02"},
	0x1D: {FieldKindDate, "06-01-02"},
	0x2C: {FieldKindDate, "01/02"},
	0x2D: {FieldKindDate, "01/02/06"},
	0x2E: {FieldKindTime, "3:04 PM"},
	0x2F: {FieldKindDate, "2006"},
	0x30: {FieldKindDate, "Jan"},
	0x31: {FieldKindDate, "January"},
	0x32: {FieldKindDate, "Mon"},
	0x33: {FieldKindDate, "Monday"},

	0x1E: {FieldKindTime, "3:04:05 PM"},
	0x1F: {FieldKindTime, "15:04"},
	0x20: {FieldKindTime, "15:04:05"},
	0x21: {FieldKindTime, "3:04 PM"},
	0x22: {FieldKindTime, "3:04:05.00 PM"},
	0x23: {FieldKindTime, "15:04:05.00"},
	0x24: {FieldKindTime, "3 PM"},
	0x42: {FieldKindTime, "15:04:05"},
	0x43: {FieldKindTime, "15:04"},
	0x44: {FieldKindTime, "3:04:05 PM"},
	0x45: {FieldKindTime, "3:04 PM"},
	0x46: {FieldKindLocaleDate, "02.01.2006"},
	0x47: {FieldKindLocaleDate, "2006.01.02"},
	0x48: {FieldKindLocaleDate, "02-01-2006"},
	0x49: {FieldKindLocaleDate, "2 January 2006"},
	0x4A: {FieldKindLocaleDate, "January 2 2006"},
	0x4B: {FieldKindLocaleTime, "15.04"},
	0xC8: {FieldKindLocaleDate, "2006/01/02"},
	0xC9: {FieldKindLocaleDate, "02/01/2006"},
	0xCA: {FieldKindLocaleDate, "01.02.2006"},
	0xCB: {FieldKindLocaleDate, "2006-01-02"},
	0xDD: {FieldKindLocaleTime, "15:04:05 MST"},
}

// FieldFormat looks up the kind and layout for a numeric field's
// format-id. Unknown codes fall back to FieldKindNumber with the general
// decimal rendering, matching the degrade-gracefully posture used
// elsewhere for unrecognised enumerations.
func FieldFormat(formatID uint32) (FieldKind, string) {
	if f, ok := fieldFormats[formatID]; ok {
		return f.Kind, f.Layout
	}
	return FieldKindNumber, ""
}

// FieldList resolves a shape's ordered FieldElement slice into display
// strings, consulting nameResolver for text fields (name-id lookups into
// Shape.Names or an external name table) and epoch for the date/time base
// (Visio numeric dates are days since 1899-12-30, the same epoch as
// Excel's serial date system).
type FieldList struct {
	Epoch time.Time
}

// NewFieldList returns a FieldList using Visio's standard 1899-12-30
// epoch.
func NewFieldList() FieldList {
	return FieldList{Epoch: time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)}
}

// Resolve renders one field element to its display string.
func (fl FieldList) Resolve(f FieldElement, nameResolver func(nameID uint32) string) string {
	if !f.IsNumeric {
		if nameResolver != nil {
			return nameResolver(f.NameID)
		}
		return ""
	}
	kind, layout := FieldFormat(f.FormatID)
	switch kind {
	case FieldKindDate, FieldKindLocaleDate, FieldKindTime, FieldKindLocaleTime:
		days := math.Floor(f.Value)
		frac := f.Value - days
		t := fl.Epoch.AddDate(0, 0, int(days)).Add(time.Duration(frac * 24 * float64(time.Hour)))
		return t.Format(layout)
	default:
		return formatNumber(f.Value)
	}
}

// formatNumber mirrors Visio's general numeric field rendering: integral
// values print without a fractional part.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
