// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import "bytes"

// ContainerKind classifies a Visio file's outer container, the first
// decision Parse must make before any format-specific decoding begins
// (spec.md §3: "legacy binary container... or the modern XML-based
// package").
type ContainerKind int

const (
	ContainerUnknown ContainerKind = iota
	ContainerOLE
	ContainerZip
	ContainerXML
)

var (
	oleSignature = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
	zipSignature = []byte{0x50, 0x4b, 0x03, 0x04}
)

// SniffContainer classifies header, the file's leading bytes, into the
// container kind that decides which of ParseBinary/ParseXML a caller
// (or Parse) should use. Plain XML (an unzipped VDX saved standalone) is
// recognized by its leading "<?xml" or "<" byte, the same way VDX files
// are told apart from VSDX's ZIP wrapper.
func SniffContainer(header []byte) ContainerKind {
	switch {
	case bytes.HasPrefix(header, oleSignature):
		return ContainerOLE
	case bytes.HasPrefix(header, zipSignature):
		return ContainerZip
	case len(header) > 0 && (header[0] == '<' || bytes.HasPrefix(bytes.TrimLeft(header, " \t\r\n"), []byte("<"))):
		return ContainerXML
	default:
		return ContainerUnknown
	}
}
