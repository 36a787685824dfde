// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRunLengthsLastZeroCountConsumesRemainder(t *testing.T) {
	runs := resolveRunLengths([]uint32{2, 0}, 5)
	require.Len(t, runs, 2)
	assert.Equal(t, runeRun{Start: 0, End: 2}, runs[0])
	assert.Equal(t, runeRun{Start: 2, End: 5}, runs[1])
}

func TestResolveRunLengthsEmptyCountsYieldsNoRuns(t *testing.T) {
	assert.Empty(t, resolveRunLengths(nil, 10))
}

func TestSplitParagraphsOnNewlineAndSoftBreak(t *testing.T) {
	paras := splitParagraphs([]rune("Hi\nYou\x0ethere"))
	require.Len(t, paras, 3)
	assert.Equal(t, "Hi", string(paras[0]))
	assert.Equal(t, "You", string(paras[1]))
	assert.Equal(t, "there", string(paras[2]))
}

func TestRebalanceCharRunsSplitsAtParagraphBoundary(t *testing.T) {
	runs := rebalanceCharRuns([]runeRun{{Start: 0, End: 6}}, []int{3})
	require.Len(t, runs, 2)
	assert.Equal(t, runeRun{Start: 0, End: 3}, runs[0])
	assert.Equal(t, runeRun{Start: 3, End: 6}, runs[1])
}

func TestDecodeShapeTextUTF8AndANSI(t *testing.T) {
	s, err := DecodeShapeText([]byte("plain"), TextFormatUTF8, 1252)
	require.NoError(t, err)
	assert.Equal(t, "plain", s)

	s, err = DecodeShapeText([]byte("plain"), TextFormatAnsi, 1252)
	require.NoError(t, err)
	assert.Equal(t, "plain", s)
}

// TestLayoutTextEmitsOneSpanPerParagraph drives LayoutText over a
// two-paragraph shape with a single full-length char run and a single
// full-length paragraph run, and checks paragraphs/spans are emitted in
// order with the run re-balanced across the paragraph break.
func TestLayoutTextEmitsOneSpanPerParagraph(t *testing.T) {
	shape := NewShape(1)
	shape.Text = []byte("Hi\nYou")
	shape.TextFormat = TextFormatUTF8
	shape.CharRuns = []CharStyle{{CharCount: 0}}
	shape.ParaRuns = []ParaStyle{{CharCount: 0}}

	out := &OutputElementList{}
	noStyle := func(CharStyle) Props { return nil }
	noParaStyle := func(ParaStyle) Props { return nil }

	err := LayoutText(shape, noStyle, noParaStyle, Props{}, 1252, nil, out)
	require.NoError(t, err)

	var kinds []PaintCallKind
	var texts []string
	for _, c := range out.calls {
		kinds = append(kinds, c.Kind)
		if c.Kind == CallInsertText {
			texts = append(texts, c.Text)
		}
	}

	assert.Equal(t, []PaintCallKind{
		CallStartTextObject,
		CallOpenParagraph, CallOpenSpan, CallInsertText, CallCloseSpan, CallCloseParagraph,
		CallOpenParagraph, CallOpenSpan, CallInsertText, CallCloseSpan, CallCloseParagraph,
		CallEndTextObject,
	}, kinds)
	assert.Equal(t, []string{"Hi", "You"}, texts)
}
