// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"strings"

	"github.com/beakyn/govisio/internal/codepage"
)

const (
	fieldPlaceholderUTF16 = 0xFFFC
	fieldPlaceholderAnsi  = 0x1E
	paragraphBreak        = 0x0A
	softBreak             = 0x0E
)

// DecodeShapeText converts a shape's raw text bytes to a UTF-8 string, per
// spec.md §4.3.7 step 1. Field placeholders stay in the string as runes;
// their positions are not returned. codePage is only consulted for
// TextFormatAnsi.
func DecodeShapeText(raw []byte, format TextFormat, codePage int) (string, error) {
	switch format {
	case TextFormatUTF16LE:
		return codepage.DecodeUTF16LE(raw)
	case TextFormatUTF8:
		return string(raw), nil
	default:
		return codepage.DecodeANSI(raw, codePage)
	}
}

// runeRun is one resolved char or paragraph run, expressed as a codepoint
// range [Start, End) over the decoded rune slice.
type runeRun struct {
	Start, End int
}

// resolveRunLengths converts a sequence of (charCount) runs into codepoint
// ranges over a text of totalRunes codepoints, per spec.md §4.3.7 step 2
// and the "Run partition" invariant (spec.md §8 property 5): runs with
// charCount > 0 consume that many codepoints; the last run with
// charCount == 0 consumes the remainder. A non-last zero-count run is
// invalid input, tolerated by treating it as "consume 0" (rebalanced by
// the fact that the true last run still absorbs everything left over).
func resolveRunLengths(counts []uint32, totalRunes int) []runeRun {
	runs := make([]runeRun, len(counts))
	pos := 0
	for i, c := range counts {
		isLast := i == len(counts)-1
		n := int(c)
		if c == 0 {
			if isLast {
				n = totalRunes - pos
				if n < 0 {
					n = 0
				}
			} else {
				n = 0
			}
		}
		runs[i] = runeRun{Start: pos, End: pos + n}
		pos += n
	}
	return runs
}

// splitParagraphs splits runes on \n (0x0A) or \x0E (soft break), stripping
// a trailing terminator on the final paragraph (spec.md §4.3.7 step 3).
func splitParagraphs(runes []rune) [][]rune {
	var paras [][]rune
	start := 0
	for i, r := range runes {
		if r == paragraphBreak || r == softBreak {
			paras = append(paras, runes[start:i])
			start = i + 1
		}
	}
	if start < len(runes) {
		paras = append(paras, runes[start:])
	}
	return paras
}

// rebalanceCharRuns clones any char run that straddles a paragraph
// boundary so each resulting run lies fully within one paragraph (spec.md
// §4.3.7 step 5's "Run re-balancing").
func rebalanceCharRuns(charRuns []runeRun, paraBoundaries []int) []runeRun {
	var out []runeRun
	for _, run := range charRuns {
		start := run.Start
		for start < run.End {
			next := run.End
			for _, b := range paraBoundaries {
				if b > start && b < next {
					next = b
				}
			}
			out = append(out, runeRun{Start: start, End: next})
			start = next
		}
	}
	return out
}

// paraBoundaryOffsets returns the cumulative codepoint offset at which each
// paragraph (after the first) begins, for use by rebalanceCharRuns.
func paraBoundaryOffsets(paras [][]rune) []int {
	offsets := make([]int, 0, len(paras))
	pos := 0
	for _, p := range paras {
		pos += len(p) + 1 // +1 for the consumed separator
		offsets = append(offsets, pos)
	}
	return offsets
}

// LayoutText implements spec.md §4.3.7 end to end: decode, resolve char and
// paragraph run lengths, split into paragraphs, resolve field placeholders,
// and emit the PaintInterface calls for one shape's text object into out.
func LayoutText(shape *Shape, charStyle func(CharStyle) Props, paraStyle func(ParaStyle) Props, frameProps Props, codePage int, fieldResolver func(FieldElement) string, out *OutputElementList) error {
	decoded, err := DecodeShapeText(shape.Text, shape.TextFormat, codePage)
	if err != nil {
		return err
	}
	runes := []rune(decoded)

	placeholder := rune(fieldPlaceholderUTF16)
	if shape.TextFormat != TextFormatUTF16LE {
		placeholder = rune(fieldPlaceholderAnsi)
	}

	charCounts := make([]uint32, len(shape.CharRuns))
	for i, r := range shape.CharRuns {
		charCounts[i] = r.CharCount
	}
	paraCounts := make([]uint32, len(shape.ParaRuns))
	for i, r := range shape.ParaRuns {
		paraCounts[i] = r.CharCount
	}
	charRanges := resolveRunLengths(charCounts, len(runes))
	paraRanges := resolveRunLengths(paraCounts, len(runes))

	paras := splitParagraphs(runes)
	boundaries := paraBoundaryOffsets(paras)
	_ = paraRanges // paragraph style selection below walks paraRanges by boundary start

	charRanges = rebalanceCharRuns(charRanges, boundaries)

	out.StartTextObject(frameProps)
	fieldCursor := 0
	pos := 0
	for pIdx, para := range paras {
		paraStyleIdx := 0
		for i, pr := range paraRanges {
			if pr.Start <= pos && pos < pr.End {
				paraStyleIdx = i
			}
		}
		var pp Props
		if paraStyleIdx < len(shape.ParaRuns) {
			pp = paraStyle(shape.ParaRuns[paraStyleIdx])
		}
		out.OpenParagraph(pp)

		paraEnd := pos + len(para)
		for _, cr := range charRanges {
			if cr.End <= pos || cr.Start >= paraEnd {
				continue
			}
			s, e := cr.Start, cr.End
			if s < pos {
				s = pos
			}
			if e > paraEnd {
				e = paraEnd
			}
			charStyleIdx := 0
			for i, full := range charRangesFor(charCounts, len(runes)) {
				if full.Start <= s && s < full.End {
					charStyleIdx = i
				}
			}
			var cp Props
			if charStyleIdx < len(shape.CharRuns) {
				cp = charStyle(shape.CharRuns[charStyleIdx])
			}
			out.OpenSpan(cp)
			emitSpanText(runes[s:e], placeholder, shape, &fieldCursor, fieldResolver, out)
			out.CloseSpan()
		}
		out.CloseParagraph()
		pos = paraEnd + 1
		_ = pIdx
	}
	out.EndTextObject()
	return nil
}

// charRangesFor recomputes the original (pre-rebalance) char-run ranges;
// rebalanceCharRuns's clones still need to map back to the owning style for
// OpenSpan, so the caller looks the owning run up against this, not the
// rebalanced slice.
func charRangesFor(counts []uint32, total int) []runeRun {
	return resolveRunLengths(counts, total)
}

// emitSpanText walks one span's runes, emitting InsertTab for a tab,
// InsertField for a field placeholder — consumed from fieldResolver in
// left-to-right order (spec.md §3's field invariant) — and InsertText for
// every other run of runes, spaces included; InsertSpace and
// InsertLineBreak are never emitted.
func emitSpanText(runes []rune, placeholder rune, shape *Shape, fieldCursor *int, fieldResolver func(FieldElement) string, out *OutputElementList) {
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			out.InsertText(sb.String())
			sb.Reset()
		}
	}
	for _, r := range runes {
		switch {
		case r == placeholder:
			flush()
			if *fieldCursor < len(shape.Fields) {
				f := shape.Fields[*fieldCursor]
				*fieldCursor++
				if fieldResolver != nil {
					out.InsertField(Props{"govisio:field-text": fieldResolver(f)})
				}
			}
		case r == '\t':
			flush()
			out.InsertTab()
		default:
			sb.WriteRune(r)
		}
	}
	flush()
}
