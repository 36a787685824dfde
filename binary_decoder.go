// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"math"

	"github.com/beakyn/govisio/internal/lzwin"
)

// cursor is a small in-memory byte reader with the primitive decodes the
// binary chunk format needs. Sub-streams are decompressed in full before
// decoding begins (spec.md §5 "Resource acquisition": a decompressed
// buffer is owned by its reader), so a flat byte slice plus an int
// position is sufficient — there is no benefit to streaming one chunk at
// a time from the OLE container itself.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor { return &cursor{data: data} }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) need(n int) error {
	if c.remaining() < n {
		return errEndOfStream
	}
	return nil
}

func (c *cursor) seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return errEndOfStream
	}
	c.pos = pos
	return nil
}

func (c *cursor) skip(n int) error { return c.seek(c.pos + n) }

func (c *cursor) readU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) readU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.data[c.pos]) | uint16(c.data[c.pos+1])<<8
	c.pos += 2
	return v, nil
}

func (c *cursor) readU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.data[c.pos]) | uint32(c.data[c.pos+1])<<8 |
		uint32(c.data[c.pos+2])<<16 | uint32(c.data[c.pos+3])<<24
	c.pos += 4
	return v, nil
}

func (c *cursor) readF64() (float64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	bits := uint64(0)
	for i := 0; i < 8; i++ {
		bits |= uint64(c.data[c.pos+i]) << (8 * i)
	}
	c.pos += 8
	return math.Float64frombits(bits), nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// skipZeroPadding consumes NUL bytes until a nonzero byte or end of
// stream, per VSD11Parser.cpp::getChunkHeader's leading `while (!tmpChar)`
// scan. The nonzero byte is left unconsumed, so the chunk type read starts
// on it.
func (c *cursor) skipZeroPadding() error {
	for {
		if c.remaining() == 0 {
			return errEndOfStream
		}
		if c.data[c.pos] != 0 {
			return nil
		}
		c.pos++
	}
}

// binaryDecoder drives a Collector over one legacy-format sub-stream tree
// (spec.md §4.1). It owns no state across calls other than the current
// collector level, mirroring the single-threaded, synchronous model of
// spec.md §5.
type binaryDecoder struct {
	version   BinaryVersion
	collector Collector
	level     uint16
}

// DecodeBinaryDocument walks the root `VisioDocument` stream's pointer
// table recursively, dispatching every chunk it finds to collector
// (VSDParser.cpp::handleStreams/handleStream/handleChunks, spec.md §4.1).
// root must already be the decompressed bytes of the top-level stream (an
// uncompressed top-level format is universal; per-sub-stream compression
// is handled internally via ptr.Format&2).
func DecodeBinaryDocument(root []byte, version BinaryVersion, collector Collector) error {
	d := &binaryDecoder{version: version, collector: collector}
	c := newCursor(root)
	if err := c.seek(0x24); err != nil {
		return err
	}
	return d.handleStreams(c, 4, 0)
}

// handleStreams decodes one sub-stream's pointer table and recurses into
// every pointer it finds, FontFaces first, then declared order, then any
// remainder (VSDParser.cpp::handleStreams).
func (d *binaryDecoder) handleStreams(c *cursor, shift uint32, level uint16) error {
	order, pointers, fontFaces, err := readPointerTable(c, shift)
	if err != nil {
		return nil // EndOfStream here means an empty/truncated pointer table, not fatal
	}
	merged := make(map[uint32]streamPointer, len(pointers)+len(fontFaces))
	for k, v := range fontFaces {
		merged[k] = v
	}
	for k, v := range pointers {
		merged[k] = v
	}
	for _, idx := range orderedStreamIndices(order, pointers, fontFaces) {
		if err := d.handleStream(c, merged[idx], idx, level+1); err != nil {
			return err
		}
	}
	return nil
}

// handleStream decodes one sub-stream: decompress if needed, dispatch its
// contents as either a "blob" (a single aggregate chunk, further nested
// pointer table, or both) or a flat chunk sequence, depending on the high
// nibble of ptr.Format (VSDParser.cpp::handleStream).
func (d *binaryDecoder) handleStream(parent *cursor, ptr streamPointer, idx uint32, level uint16) error {
	d.level = level
	d.collector.HandleLevelChange(level)

	if int(ptr.Offset)+int(ptr.Length) > len(parent.data) || ptr.Length == 0 {
		return nil
	}
	raw := parent.data[ptr.Offset : ptr.Offset+ptr.Length]
	compressed := ptr.Format&2 == 2
	var body []byte
	shift := uint32(0)
	if compressed {
		if len(raw) < 4 {
			return nil
		}
		body = lzwin.Decompress(raw[4:])
		shift = 4
	} else {
		body = raw
	}

	switch ptr.Type {
	case ChunkPage:
		d.collector.CollectPage(idx, level, ptr.Format == 0xd2 || ptr.Format == 0xd6)
	case ChunkStencilPage:
		d.collector.CollectPage(idx, level, false)
	}

	kind := ptr.Format >> 4
	c := newCursor(body)
	var err error
	switch {
	case kind == 0x4 || kind == 0x5 || kind == 0x0:
		if ptr.Length > 4 {
			err = d.handleChunk(c, ptr.Type, idx, level+1)
		}
		if kind == 0x5 && ptr.Type != ChunkColors {
			inner := newCursor(body)
			if e := d.handleStreams(inner, shift, level+1); e != nil {
				err = e
			}
		}
	case kind == 0xd || kind == 0x8:
		err = d.handleChunks(c, level+1)
	}

	switch ptr.Type {
	case ChunkPage, ChunkStencilPage:
		d.collector.HandleLevelChange(0)
		d.collector.CollectEndPage()
	case ChunkStyles:
		d.collector.HandleLevelChange(0)
	}
	return err
}

// handleChunks decodes a flat, level-nested run of chunk headers until the
// cursor runs dry, invoking HandleLevelChange on every decrease
// (VSDParser.cpp::handleChunks, spec.md §4.1 "Level changes").
func (d *binaryDecoder) handleChunks(c *cursor, level uint16) error {
	for {
		header, err := ReadChunkHeader(c, d.version)
		if err != nil {
			return nil
		}
		if header.Level < d.level {
			d.collector.HandleLevelChange(header.Level)
		}
		d.level = header.Level

		bodyStart := c.pos
		if err := d.decodeChunkBody(c, header); err != nil {
			return nil
		}
		next := bodyStart + int(header.DataLength) + int(header.Trailer)
		if err := c.seek(next); err != nil {
			return nil
		}
	}
}

// handleChunk decodes exactly one chunk whose type and id are already
// known from the enclosing pointer (used for top-level aggregate streams
// like VSD_PAGE, which carry one PageSheet-equivalent blob directly).
func (d *binaryDecoder) handleChunk(c *cursor, chunkType, id uint32, level uint16) error {
	h := ChunkHeader{ChunkType: chunkType, ID: id, Level: level, DataLength: uint32(c.remaining())}
	return d.decodeChunkBody(c, h)
}
