// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import "io"

// ParseVDX decodes a legacy VDX document — a single flat XML document
// carrying `<Masters>`, `<Colors>`, `<FontFaces>` and `<Pages>` inline,
// rather than split across OPC parts (spec.md §3 "XML package (VDX,
// VSDX)": "For VDX, a single XML document"). It drives collector exactly
// as ParseVSDX does, since both XML variants share the same element
// vocabulary once the container-level packaging is stripped away.
func ParseVDX(r io.Reader, collector Collector) error {
	d := newXMLDecoder(r, collector)
	return d.decodeElements()
}
