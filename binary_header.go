// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// BinaryVersion is the legacy container's format generation, read from the
// OLE document's signature byte at offset 0x1A (spec.md §4.1 "Containers").
type BinaryVersion int

const (
	Version2 BinaryVersion = iota
	Version5
	Version6
	Version11
)

// trailerExemptV11 lists the chunk types that never carry a trailer on
// format 11, regardless of every other rule below (VSD11Parser.cpp's
// final override).
var trailerExemptV11 = map[uint32]bool{0x1f: true, 0xc9: true, 0x2d: true, 0xd1: true}

// trailerExemptV6 mirrors trailerExemptV11 for format 6.
//
// Open Question (spec.md §9.1): the original parser hierarchy only states
// this exemption explicitly in the v11 handler; the v6 handler is silent.
// Treated here as identical to v11 per the Open Question decision in
// DESIGN.md, rather than assuming v6 has no exemption at all.
var trailerExemptV6 = trailerExemptV11

// trailerChunks lists chunk types that, outside the exempt set, always
// gain a 4-byte trailer bump if they haven't already reached 12 or 4
// bytes of trailer (VSD11Parser.cpp::getChunkHeader).
var trailerChunks = [...]uint32{0x64, 0x65, 0x66, 0x69, 0x6a, 0x6b, 0x6f, 0x71, 0x92, 0xa9, 0xb4, 0xb6, 0xb9, 0xc7}

// readChunkHeaderV6V11 decodes one chunk header for format 6 or 11, which
// share the same on-disk layout and trailer-size heuristics
// (VSD11Parser.cpp::getChunkHeader).
func readChunkHeaderV6V11(c *cursor, version BinaryVersion) (ChunkHeader, error) {
	if err := c.skipZeroPadding(); err != nil {
		return ChunkHeader{}, err
	}
	var h ChunkHeader
	var err error
	if h.ChunkType, err = c.readU32(); err != nil {
		return h, err
	}
	if h.ID, err = c.readU32(); err != nil {
		return h, err
	}
	if h.List, err = c.readU32(); err != nil {
		return h, err
	}

	h.Trailer = 0
	if h.List != 0 || h.ChunkType == 0x71 || h.ChunkType == 0x70 || h.ChunkType == 0x6b ||
		h.ChunkType == 0x6a || h.ChunkType == 0x69 || h.ChunkType == 0x66 ||
		h.ChunkType == 0x65 || h.ChunkType == 0x2c {
		h.Trailer += 8
	}

	if h.DataLength, err = c.readU32(); err != nil {
		return h, err
	}
	if h.Level, err = c.readU16(); err != nil {
		return h, err
	}
	unk, err := c.readU8()
	if err != nil {
		return h, err
	}
	h.Unknown = unk

	if h.List != 0 || (h.Level == 2 && h.Unknown == 0x55) ||
		(h.Level == 2 && h.Unknown == 0x54 && h.ChunkType == 0xaa) ||
		(h.Level == 3 && h.Unknown != 0x50 && h.Unknown != 0x54) {
		h.Trailer += 4
	}

	for _, ct := range trailerChunks {
		if h.ChunkType == ct && h.Trailer != 12 && h.Trailer != 4 {
			h.Trailer += 4
			break
		}
	}

	exempt := trailerExemptV11
	if version == Version6 {
		exempt = trailerExemptV6
	}
	if exempt[h.ChunkType] {
		h.Trailer = 0
	}
	return h, nil
}

// readChunkHeaderV2V5 decodes one chunk header for format 2 or 5, whose
// layout omits the `unknown` byte and uses a flat 4-byte trailer rule
// (VSD5Parser.cpp / VSD2Parser.cpp's simpler getChunkHeader).
func readChunkHeaderV2V5(c *cursor) (ChunkHeader, error) {
	if err := c.skipZeroPadding(); err != nil {
		return ChunkHeader{}, err
	}
	var h ChunkHeader
	var err error
	if h.ChunkType, err = c.readU32(); err != nil {
		return h, err
	}
	if h.ID, err = c.readU32(); err != nil {
		return h, err
	}
	if h.List, err = c.readU32(); err != nil {
		return h, err
	}
	if h.DataLength, err = c.readU32(); err != nil {
		return h, err
	}
	if h.Level, err = c.readU16(); err != nil {
		return h, err
	}
	if h.List != 0 {
		h.Trailer = 4
	}
	return h, nil
}

// ReadChunkHeader dispatches to the version-appropriate chunk header
// reader (spec.md §4.1).
func ReadChunkHeader(c *cursor, version BinaryVersion) (ChunkHeader, error) {
	switch version {
	case Version2, Version5:
		return readChunkHeaderV2V5(c)
	default:
		return readChunkHeaderV6V11(c, version)
	}
}
