// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package codepage decodes the ANSI code pages and UTF-16LE runs the Visio
// binary text stream uses (spec.md §6), backed by golang.org/x/text —
// the teacher's own dependency — instead of a hand-rolled 128-entry table.
package codepage

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// byPage maps the ten Windows code-page numbers spec.md §6 requires to
// their golang.org/x/text/encoding/charmap tables.
var byPage = map[int]encoding.Encoding{
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// Supported reports whether codePage is one of the ten tables govisio
// ships.
func Supported(codePage int) bool {
	_, ok := byPage[codePage]
	return ok
}

// DecodeANSI converts an ANSI-encoded byte run under codePage to UTF-8.
// Unsupported code pages fall back to Windows-1252 (the most common Visio
// default) rather than failing the whole shape's text.
func DecodeANSI(b []byte, codePage int) (string, error) {
	enc, ok := byPage[codePage]
	if !ok {
		enc = charmap.Windows1252
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeANSI is the inverse of DecodeANSI, used by the code-page
// round-trip property test (spec.md §8 property 8).
func EncodeANSI(s string, codePage int) ([]byte, error) {
	enc, ok := byPage[codePage]
	if !ok {
		enc = charmap.Windows1252
	}
	return enc.NewEncoder().Bytes([]byte(s))
}

// DecodeUTF16LE converts a little-endian UTF-16 byte run to UTF-8.
func DecodeUTF16LE(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
