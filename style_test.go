// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayPrefersOverWhenSet(t *testing.T) {
	base := Some(1.0)
	over := Some(2.0)
	assert.Equal(t, over, Overlay(base, over))

	var unset Opt[float64]
	assert.Equal(t, base, Overlay(base, unset))
}

func TestResolveLineCascadesOutsideIn(t *testing.T) {
	styles := NewStyles()
	styles.Sheets[1] = StyleSheet{
		ID:         1,
		ParentLine: MinusOne,
		Line:       LineStyle{Width: Some(1.0), Colour: Some(Colour{R: 0xff})},
	}
	styles.Sheets[2] = StyleSheet{
		ID:         2,
		ParentLine: 1,
		Line:       LineStyle{Colour: Some(Colour{G: 0xff})}, // overrides colour only
	}

	resolved := styles.ResolveLine(2)
	assert.Equal(t, 1.0, resolved.Width.Resolved())       // inherited from parent
	assert.Equal(t, Colour{G: 0xff}, resolved.Colour.Resolved()) // overridden by child
}

func TestResolveLineStopsOnCycle(t *testing.T) {
	styles := NewStyles()
	styles.Sheets[1] = StyleSheet{ID: 1, ParentLine: 2, Line: LineStyle{Width: Some(5.0)}}
	styles.Sheets[2] = StyleSheet{ID: 2, ParentLine: 1, Line: LineStyle{Width: Some(9.0)}}

	// Must terminate rather than loop forever; result is whichever overlay
	// order the (bounded) walk produces, not an infinite recursion.
	assert.NotPanics(t, func() {
		styles.ResolveLine(1)
	})
}

func TestResolveLineMissingSheetBreaksChain(t *testing.T) {
	styles := NewStyles()
	resolved := styles.ResolveLine(42)
	assert.Equal(t, LineStyle{}, resolved)
}
