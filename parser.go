// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"archive/zip"
	"bytes"
	"io"
)

// Options configures a Parse call (spec.md §3, SUPPLEMENTED FEATURE 1).
type Options struct {
	// CodePage is the ANSI code page used to decode narrow (non-UTF16)
	// text streams when the document itself carries no per-stream code
	// page override. Defaults to 1252 (Windows Western) if zero.
	CodePage int

	// ExtractStencils, if true, makes Parse run only far enough to
	// populate a StencilRegistry and return without driving painter at
	// all (VSDParser::extractStencils; SUPPLEMENTED FEATURE 1).
	ExtractStencils bool
}

func (o Options) codePage() int {
	if o.CodePage == 0 {
		return 1252
	}
	return o.CodePage
}

// Document is the result of a completed (non-stencil-only) Parse: the
// resolved style table, the per-page tables the Style Collector produced,
// and the stencil registry used during painting.
type Document struct {
	Styles   *Styles
	Stencils *StencilRegistry
	Pages    []*PageTables
}

// Parse detects whether r holds a legacy OLE binary container or an
// XML/OPC package and dispatches to ParseBinary or ParseXML accordingly
// (spec.md §3). r must support both seeking (for the OLE/ZIP readers)
// and io.ReaderAt (for archive/zip).
func Parse(r io.ReadSeeker, size int64, painter PaintInterface, opts Options) (*Document, error) {
	header := make([]byte, 8)
	if _, err := r.Read(header); err != nil && err != io.EOF {
		return nil, &ParseError{Kind: ErrIO, Err: err}
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &ParseError{Kind: ErrIO, Err: err}
	}

	switch SniffContainer(header) {
	case ContainerOLE:
		return ParseBinary(r, painter, opts)
	case ContainerZip:
		ra, ok := r.(io.ReaderAt)
		if !ok {
			return nil, &ParseError{Kind: ErrIO, Err: errNeedsReaderAt}
		}
		zr, err := zip.NewReader(ra, size)
		if err != nil {
			return nil, &ParseError{Kind: ErrCorruptedStream, Err: err}
		}
		return ParseXML(zr, painter, opts)
	case ContainerXML:
		return parseVDXDocument(r, painter, opts)
	default:
		return nil, &ParseError{Kind: ErrUnsupportedVersion, Err: errUnrecognizedContainer}
	}
}

// ParseBinary decodes a legacy OLE-structured VSD document (spec.md §4.1).
func ParseBinary(r io.ReadSeeker, painter PaintInterface, opts Options) (*Document, error) {
	ole, err := OpenOLEDocument(r)
	if err != nil {
		return nil, err
	}
	root, ok := ole.VisioDocumentStream()
	if !ok {
		return nil, &ParseError{Kind: ErrCorruptedStream, Err: errNoVisioDocumentStream}
	}
	version := detectBinaryVersion(root)

	registry := NewStencilRegistry()
	stencilCollector := NewStencilCollector(registry)
	_ = DecodeBinaryDocument(root, version, stencilCollector)
	if opts.ExtractStencils {
		return &Document{Stencils: registry}, nil
	}

	style := NewStyleCollector()
	if err := DecodeBinaryDocument(root, version, style); err != nil {
		return nil, err
	}

	content := NewContentCollector(painter, style.Styles(), registry, style.Pages(), opts.codePage())
	if err := DecodeBinaryDocument(root, version, content); err != nil {
		return nil, err
	}

	return &Document{Styles: style.Styles(), Stencils: registry, Pages: style.Pages()}, nil
}

// detectBinaryVersion reads the format-generation byte the OLE
// `VisioDocument` stream's header carries at offset 0x1A (spec.md §4.1
// "Containers"; original readers call this the "version" field of the
// global trailer-stream header).
func detectBinaryVersion(root []byte) BinaryVersion {
	const versionOffset = 0x1a
	if len(root) <= versionOffset {
		return Version11
	}
	switch root[versionOffset] {
	case 2:
		return Version2
	case 5:
		return Version5
	case 6:
		return Version6
	default:
		return Version11
	}
}

// ParseXML decodes a VSDX OPC package (spec.md §4.1, §3).
func ParseXML(zr *zip.Reader, painter PaintInterface, opts Options) (*Document, error) {
	registry := NewStencilRegistry()
	stencilCollector := NewStencilCollector(registry)
	_ = ParseVSDXStencils(zr, stencilCollector)
	if opts.ExtractStencils {
		return &Document{Stencils: registry}, nil
	}

	style := NewStyleCollector()
	if err := ParseVSDX(zr, style); err != nil {
		return nil, err
	}

	content := NewContentCollector(painter, style.Styles(), registry, style.Pages(), opts.codePage())
	if err := ParseVSDX(zr, content); err != nil {
		return nil, err
	}

	return &Document{Styles: style.Styles(), Stencils: registry, Pages: style.Pages()}, nil
}

// parseVDXDocument decodes a standalone (unzipped) VDX document, run
// twice — once per collector pass — since a VDX's single XML document
// has to be replayed from the start for the Content Collector the same
// way a VSDX's page parts are (spec.md §4.2/§4.3's two-pass model applies
// identically to both XML variants).
func parseVDXDocument(r io.ReadSeeker, painter PaintInterface, opts Options) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Kind: ErrIO, Err: err}
	}

	registry := NewStencilRegistry()
	stencilCollector := NewStencilCollector(registry)
	_ = ParseVDX(bytes.NewReader(raw), stencilCollector)
	if opts.ExtractStencils {
		return &Document{Stencils: registry}, nil
	}

	style := NewStyleCollector()
	if err := ParseVDX(bytes.NewReader(raw), style); err != nil {
		return nil, err
	}

	content := NewContentCollector(painter, style.Styles(), registry, style.Pages(), opts.codePage())
	if err := ParseVDX(bytes.NewReader(raw), content); err != nil {
		return nil, err
	}

	return &Document{Styles: style.Styles(), Stencils: registry, Pages: style.Pages()}, nil
}

// ExtractStencils runs only far enough to populate a StencilRegistry and
// returns it without driving any PaintInterface call
// (VSDParser::extractStencils; SUPPLEMENTED FEATURE 1).
func ExtractStencils(r io.ReadSeeker, size int64) (*StencilRegistry, error) {
	doc, err := Parse(r, size, noopPainter{}, Options{ExtractStencils: true})
	if err != nil {
		return nil, err
	}
	return doc.Stencils, nil
}

// noopPainter discards every call; used by ExtractStencils, which never
// reaches the Content Collector's painting stage in practice but keeps
// Parse's signature uniform.
type noopPainter struct{}

func (noopPainter) StartDocument()                   {}
func (noopPainter) EndDocument()                     {}
func (noopPainter) SetStyle(Props, []Props)          {}
func (noopPainter) StartLayer(Props)                 {}
func (noopPainter) EndLayer()                        {}
func (noopPainter) DrawPath([]PathElement)            {}
func (noopPainter) DrawEllipse(Props)                {}
func (noopPainter) DrawGraphicObject(Props, []byte)  {}
func (noopPainter) StartPage(Props)                  {}
func (noopPainter) EndPage()                         {}
func (noopPainter) StartTextObject(Props)            {}
func (noopPainter) EndTextObject()                   {}
func (noopPainter) OpenParagraph(Props)              {}
func (noopPainter) CloseParagraph()                  {}
func (noopPainter) OpenSpan(Props)                   {}
func (noopPainter) CloseSpan()                       {}
func (noopPainter) InsertText(string)                {}
func (noopPainter) InsertTab()                       {}
func (noopPainter) InsertSpace()                     {}
func (noopPainter) InsertLineBreak()                 {}
func (noopPainter) InsertField(Props)                {}

var _ PaintInterface = noopPainter{}
