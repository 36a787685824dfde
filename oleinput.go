// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"io"

	"github.com/richardlehane/mscfb"
)

// OLEDocument is a read-only view over a legacy VSD's OLE compound-file
// container, grounded on excelize's own use of `mscfb.New` to walk a
// `.xls` workbook's compound-file streams (the teacher's own dependency,
// reused here for the equivalent VSD container — spec.md §3 "legacy
// binary container... OLE-structured").
type OLEDocument struct {
	streams map[string][]byte
	order   []string
}

// OpenOLEDocument reads every stream out of an OLE compound file eagerly;
// the binary decoder needs the whole `VisioDocument` stream in memory
// anyway to build its pointer table (spec.md §5 "Resource acquisition").
func OpenOLEDocument(r io.ReadSeeker) (*OLEDocument, error) {
	doc, err := mscfb.New(r)
	if err != nil {
		return nil, &ParseError{Kind: ErrIO, Err: err}
	}
	d := &OLEDocument{streams: make(map[string][]byte)}
	for entry, nextErr := doc.Next(); nextErr == nil; entry, nextErr = doc.Next() {
		if entry == nil || entry.IsDir() {
			continue
		}
		buf := make([]byte, entry.Size)
		if entry.Size > 0 {
			if _, readErr := io.ReadFull(doc, buf); readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
				return nil, &ParseError{Kind: ErrIO, SubStream: entry.Name, Err: readErr}
			}
		}
		name := entry.Name
		d.streams[name] = buf
		d.order = append(d.order, name)
	}
	return d, nil
}

// Stream returns a named top-level stream's bytes, or false if the
// container carries no stream by that name.
func (d *OLEDocument) Stream(name string) ([]byte, bool) {
	b, ok := d.streams[name]
	return b, ok
}

// VisioDocumentStream returns the root `VisioDocument` stream every
// legacy VSD container carries, the entry point DecodeBinaryDocument
// walks (spec.md §4.1 "Pointer/stream table").
func (d *OLEDocument) VisioDocumentStream() ([]byte, bool) {
	return d.Stream("VisioDocument")
}

// StreamNames returns every stream name, in the order mscfb enumerated
// them (directory order, not necessarily declaration order).
func (d *OLEDocument) StreamNames() []string {
	return d.order
}
