// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// Opt is a tagged-option wrapper used for every overridable style attribute,
// replacing the original's `T *` vs `T` null-pointer convention (spec.md §9
// "Optional overrides"): a nil pointer there becomes a zero-value Opt here,
// and "override" becomes Set == true.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some builds a set option.
func Some[T any](v T) Opt[T] { return Opt[T]{Value: v, Set: true} }

// Overlay returns over's value if it is set, else base's.
func Overlay[T any](base, over Opt[T]) Opt[T] {
	if over.Set {
		return over
	}
	return base
}

// Resolved returns the option's value if set, else the zero value of T.
func (o Opt[T]) Resolved() T { return o.Value }

// LineStyle describes a shape's stroke.
type LineStyle struct {
	Width               Opt[float64]
	Colour              Opt[Colour]
	Pattern             Opt[uint8]
	StartMarker         Opt[uint8]
	EndMarker           Opt[uint8]
	Cap                 Opt[uint8]
}

func overlayLineStyle(base, over LineStyle) LineStyle {
	return LineStyle{
		Width:       Overlay(base.Width, over.Width),
		Colour:      Overlay(base.Colour, over.Colour),
		Pattern:     Overlay(base.Pattern, over.Pattern),
		StartMarker: Overlay(base.StartMarker, over.StartMarker),
		EndMarker:   Overlay(base.EndMarker, over.EndMarker),
		Cap:         Overlay(base.Cap, over.Cap),
	}
}

// ResolvedLineStyle is the fully-resolved (non-optional) line style handed
// to the PaintInterface.
type ResolvedLineStyle struct {
	Width                           float64
	Colour                          Colour
	Pattern, StartMarker, EndMarker, Cap uint8
}

func (s LineStyle) Resolve() ResolvedLineStyle {
	return ResolvedLineStyle{
		Width:       s.Width.Resolved(),
		Colour:      s.Colour.Resolved(),
		Pattern:     s.Pattern.Resolved(),
		StartMarker: s.StartMarker.Resolved(),
		EndMarker:   s.EndMarker.Resolved(),
		Cap:         s.Cap.Resolved(),
	}
}

// FillStyle describes a shape's fill and drop shadow.
type FillStyle struct {
	FgColour, BgColour               Opt[Colour]
	Pattern                          Opt[uint8]
	FgTransparency, BgTransparency   Opt[uint8]
	ShadowPattern                    Opt[uint8]
	ShadowFgColour                   Opt[Colour]
	ShadowOffsetX, ShadowOffsetY     Opt[float64]
}

func overlayFillStyle(base, over FillStyle) FillStyle {
	return FillStyle{
		FgColour:        Overlay(base.FgColour, over.FgColour),
		BgColour:        Overlay(base.BgColour, over.BgColour),
		Pattern:         Overlay(base.Pattern, over.Pattern),
		FgTransparency:  Overlay(base.FgTransparency, over.FgTransparency),
		BgTransparency:  Overlay(base.BgTransparency, over.BgTransparency),
		ShadowPattern:   Overlay(base.ShadowPattern, over.ShadowPattern),
		ShadowFgColour:  Overlay(base.ShadowFgColour, over.ShadowFgColour),
		ShadowOffsetX:   Overlay(base.ShadowOffsetX, over.ShadowOffsetX),
		ShadowOffsetY:   Overlay(base.ShadowOffsetY, over.ShadowOffsetY),
	}
}

// ResolvedFillStyle is the fully-resolved fill style.
type ResolvedFillStyle struct {
	FgColour, BgColour             Colour
	Pattern                        uint8
	FgTransparency, BgTransparency uint8
	ShadowPattern                  uint8
	ShadowFgColour                 Colour
	ShadowOffsetX, ShadowOffsetY   float64
}

func (s FillStyle) Resolve() ResolvedFillStyle {
	return ResolvedFillStyle{
		FgColour:       s.FgColour.Resolved(),
		BgColour:       s.BgColour.Resolved(),
		Pattern:        s.Pattern.Resolved(),
		FgTransparency: s.FgTransparency.Resolved(),
		BgTransparency: s.BgTransparency.Resolved(),
		ShadowPattern:  s.ShadowPattern.Resolved(),
		ShadowFgColour: s.ShadowFgColour.Resolved(),
		ShadowOffsetX:  s.ShadowOffsetX.Resolved(),
		ShadowOffsetY:  s.ShadowOffsetY.Resolved(),
	}
}

// TextBlockStyle describes paragraph-block-level text frame properties.
type TextBlockStyle struct {
	LeftMargin, RightMargin, TopMargin, BottomMargin Opt[float64]
	DefaultTabStop                                    Opt[float64]
	VerticalAlign, TextDirection                      Opt[uint8]
	IsTextBkgndFilled                                 Opt[bool]
	TextBkgndColour                                   Opt[Colour]
}

func overlayTextBlockStyle(base, over TextBlockStyle) TextBlockStyle {
	return TextBlockStyle{
		LeftMargin:         Overlay(base.LeftMargin, over.LeftMargin),
		RightMargin:        Overlay(base.RightMargin, over.RightMargin),
		TopMargin:          Overlay(base.TopMargin, over.TopMargin),
		BottomMargin:       Overlay(base.BottomMargin, over.BottomMargin),
		DefaultTabStop:     Overlay(base.DefaultTabStop, over.DefaultTabStop),
		VerticalAlign:      Overlay(base.VerticalAlign, over.VerticalAlign),
		TextDirection:      Overlay(base.TextDirection, over.TextDirection),
		IsTextBkgndFilled:  Overlay(base.IsTextBkgndFilled, over.IsTextBkgndFilled),
		TextBkgndColour:    Overlay(base.TextBkgndColour, over.TextBkgndColour),
	}
}

// FontRef identifies a font face, resolved against the document's font
// table.
type FontRef struct {
	ID   uint16
	Name string
}

// CharStyle is a run of character formatting, applied charCount codepoints
// at a time (spec.md §3's "charRuns" invariant).
type CharStyle struct {
	CharCount uint32
	FontID    Opt[uint16]
	Colour    Opt[Colour]
	Size      Opt[float64]
	Bold, Italic, Underline, DoubleUnderline   Opt[bool]
	Strikeout, DoubleStrikeout                 Opt[bool]
	AllCaps, InitCaps, SmallCaps               Opt[bool]
	Superscript, Subscript                     Opt[bool]
	FontFace                                   Opt[FontRef]
}

func overlayCharStyle(base, over CharStyle) CharStyle {
	return CharStyle{
		CharCount:         over.CharCount,
		FontID:            Overlay(base.FontID, over.FontID),
		Colour:            Overlay(base.Colour, over.Colour),
		Size:              Overlay(base.Size, over.Size),
		Bold:              Overlay(base.Bold, over.Bold),
		Italic:            Overlay(base.Italic, over.Italic),
		Underline:         Overlay(base.Underline, over.Underline),
		DoubleUnderline:   Overlay(base.DoubleUnderline, over.DoubleUnderline),
		Strikeout:         Overlay(base.Strikeout, over.Strikeout),
		DoubleStrikeout:   Overlay(base.DoubleStrikeout, over.DoubleStrikeout),
		AllCaps:           Overlay(base.AllCaps, over.AllCaps),
		InitCaps:          Overlay(base.InitCaps, over.InitCaps),
		SmallCaps:         Overlay(base.SmallCaps, over.SmallCaps),
		Superscript:       Overlay(base.Superscript, over.Superscript),
		Subscript:         Overlay(base.Subscript, over.Subscript),
		FontFace:          Overlay(base.FontFace, over.FontFace),
	}
}

// ParaStyle is a run of paragraph formatting. SpLine follows the spec's
// sign convention: positive is an absolute point size, negative is a
// percentage of line height (stored as a fraction, e.g. -1.2 = 120%).
type ParaStyle struct {
	CharCount                               uint32
	IndFirst, IndLeft, IndRight              Opt[float64]
	SpLine, SpBefore, SpAfter                Opt[float64]
	Align                                    Opt[uint8]
	Flags                                    Opt[uint32]
}

func overlayParaStyle(base, over ParaStyle) ParaStyle {
	return ParaStyle{
		CharCount: over.CharCount,
		IndFirst:  Overlay(base.IndFirst, over.IndFirst),
		IndLeft:   Overlay(base.IndLeft, over.IndLeft),
		IndRight:  Overlay(base.IndRight, over.IndRight),
		SpLine:    Overlay(base.SpLine, over.SpLine),
		SpBefore:  Overlay(base.SpBefore, over.SpBefore),
		SpAfter:   Overlay(base.SpAfter, over.SpAfter),
		Align:     Overlay(base.Align, over.Align),
		Flags:     Overlay(base.Flags, over.Flags),
	}
}

// StyleSheet is one style-sheet chunk's locally-set attributes plus its
// parent ids, as accumulated by the Style Collector (first pass). Parent
// walks happen later, in the Content Collector.
type StyleSheet struct {
	ID                                     uint32
	ParentLine, ParentFill, ParentText     uint32
	Line                                   LineStyle
	Fill                                   FillStyle
	TextBlock                              TextBlockStyle
}

// Styles is the Style Collector's style-sheet table, keyed by sheet id.
type Styles struct {
	Sheets map[uint32]StyleSheet
}

func NewStyles() *Styles {
	return &Styles{Sheets: make(map[uint32]StyleSheet)}
}

const maxStyleWalkDepth = 16

// ResolveLine walks the parent chain for a line style, starting at id,
// overlaying optional attributes from the outside in (deepest ancestor
// first, leaf last) per spec.md §4.3.1. A sentinel parent id or a repeated
// id (cycle) stops the walk.
func (s *Styles) ResolveLine(id uint32) LineStyle {
	chain := s.lineChain(id)
	var resolved LineStyle
	for i := len(chain) - 1; i >= 0; i-- {
		resolved = overlayLineStyle(resolved, chain[i])
	}
	return resolved
}

func (s *Styles) lineChain(id uint32) []LineStyle {
	var chain []LineStyle
	visited := make(map[uint32]bool)
	for id != MinusOne && !visited[id] && len(chain) < maxStyleWalkDepth {
		visited[id] = true
		sheet, ok := s.Sheets[id]
		if !ok {
			break
		}
		chain = append(chain, sheet.Line)
		id = sheet.ParentLine
	}
	return chain
}

// ResolveFill walks the parent chain for a fill style the same way ResolveLine does.
func (s *Styles) ResolveFill(id uint32) FillStyle {
	var chain []FillStyle
	visited := make(map[uint32]bool)
	for id != MinusOne && !visited[id] && len(chain) < maxStyleWalkDepth {
		visited[id] = true
		sheet, ok := s.Sheets[id]
		if !ok {
			break
		}
		chain = append(chain, sheet.Fill)
		id = sheet.ParentFill
	}
	var resolved FillStyle
	for i := len(chain) - 1; i >= 0; i-- {
		resolved = overlayFillStyle(resolved, chain[i])
	}
	return resolved
}

// ResolveTextBlock walks the parent chain for a text-block style.
func (s *Styles) ResolveTextBlock(id uint32) TextBlockStyle {
	var chain []TextBlockStyle
	visited := make(map[uint32]bool)
	for id != MinusOne && !visited[id] && len(chain) < maxStyleWalkDepth {
		visited[id] = true
		sheet, ok := s.Sheets[id]
		if !ok {
			break
		}
		chain = append(chain, sheet.TextBlock)
		id = sheet.ParentText
	}
	var resolved TextBlockStyle
	for i := len(chain) - 1; i >= 0; i-- {
		resolved = overlayTextBlockStyle(resolved, chain[i])
	}
	return resolved
}
