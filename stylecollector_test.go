// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStyleCollectorGroupSplicing drives a StyleCollector through a page
// with one group (shape 1) containing a child (shape 2) and a trailing
// top-level sibling (shape 3), and checks the depth-first splice and
// group-membership bookkeeping documented on CollectEndPage.
func TestStyleCollectorGroupSplicing(t *testing.T) {
	c := NewStyleCollector()

	c.CollectPage(100, 0, false)
	c.CollectShape(1, 1, MinusOne, MinusOne, 0, 0, 0)
	c.CollectXFormData(1, 1, XForm{Width: 10, Height: 10})
	c.CollectShape(2, 2, MinusOne, MinusOne, 0, 0, 0)
	c.CollectXFormData(2, 2, XForm{Width: 2, Height: 2})
	c.HandleLevelChange(1)
	c.CollectShape(3, 1, MinusOne, MinusOne, 0, 0, 0)
	c.HandleLevelChange(0)
	c.CollectEndPage()

	require.Len(t, c.Pages(), 1)
	page := c.Pages()[0]

	assert.Equal(t, []uint32{1, 3}, page.TopLevel)
	assert.Equal(t, []uint32{1, 2, 3}, page.ShapeOrder)
	assert.Equal(t, uint32(1), page.GroupMemberships[2])
	assert.Equal(t, []uint32{2}, page.GroupChildren[1])
	assert.Equal(t, 10.0, page.GroupXForms[1].Width)
	assert.Equal(t, 2.0, page.GroupXForms[2].Width)
}

// TestStyleCollectorStyleSheetCascade checks that a style-sheet chunk's
// locally-set line/fill attributes are captured into the Styles table on
// the level-0 flush, with the parent-sheet ids preserved for later
// cascading by ResolveLine/ResolveFill.
func TestStyleCollectorStyleSheetCascade(t *testing.T) {
	c := NewStyleCollector()

	c.CollectStyleSheet(5, 1, MinusOne, MinusOne, MinusOne)
	c.CollectLineStyle(5, 1, 2.0, Colour{R: 0xff, A: 0xff}, 1, 0, 0, 0)
	c.HandleLevelChange(0)

	sheet, ok := c.Styles().Sheets[5]
	require.True(t, ok)
	require.True(t, sheet.Line.Width.Set)
	assert.Equal(t, 2.0, sheet.Line.Width.Value)
	assert.Equal(t, MinusOne, sheet.ParentLine)
}

// TestStyleCollectorEndPageWithoutPageIsNoop guards against a stray
// CollectEndPage (no CollectPage was ever seen) panicking.
func TestStyleCollectorEndPageWithoutPageIsNoop(t *testing.T) {
	c := NewStyleCollector()
	assert.NotPanics(t, func() { c.CollectEndPage() })
	assert.Empty(t, c.Pages())
}
