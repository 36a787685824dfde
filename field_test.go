// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldFormatKnownAndUnknownCodes(t *testing.T) {
	kind, layout := FieldFormat(0x1C)
	assert.Equal(t, FieldKindDate, kind)
	assert.Equal(t, "2006-01-02", layout)

	kind, layout = FieldFormat(0xffff)
	assert.Equal(t, FieldKindNumber, kind)
	assert.Equal(t, "", layout)
}

// TestFieldListResolveDateUsesVisio1899Epoch checks the Excel-compatible
// 1899-12-30 serial-date epoch: day 1 is 1899-12-31.
func TestFieldListResolveDateUsesVisio1899Epoch(t *testing.T) {
	fl := NewFieldList()

	s := fl.Resolve(FieldElement{IsNumeric: true, FormatID: 0x1C, Value: 1}, nil)
	assert.Equal(t, "1899-12-31", s)

	s = fl.Resolve(FieldElement{IsNumeric: true, FormatID: 0x1C, Value: 0}, nil)
	assert.Equal(t, "1899-12-30", s)
}

func TestFieldListResolveNumberFormatsIntegersWithoutFraction(t *testing.T) {
	fl := NewFieldList()
	assert.Equal(t, "42", fl.Resolve(FieldElement{IsNumeric: true, FormatID: 0xffff, Value: 42}, nil))
	assert.Equal(t, "3.5", fl.Resolve(FieldElement{IsNumeric: true, FormatID: 0xffff, Value: 3.5}, nil))
}

func TestFieldListResolveTextFieldUsesNameResolver(t *testing.T) {
	fl := NewFieldList()
	resolver := func(nameID uint32) string {
		if nameID == 7 {
			return "resolved-name"
		}
		return ""
	}
	assert.Equal(t, "resolved-name", fl.Resolve(FieldElement{IsNumeric: false, NameID: 7}, resolver))
}

func TestFieldListResolveTextFieldNilResolverIsEmpty(t *testing.T) {
	fl := NewFieldList()
	assert.Equal(t, "", fl.Resolve(FieldElement{IsNumeric: false, NameID: 7}, nil))
}
