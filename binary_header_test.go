// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// v6Header builds the on-disk bytes for one format-6/11 chunk header:
// chunkType, id, list, dataLength (all uint32 LE), level (uint16 LE),
// unknown (uint8).
func v6Header(chunkType, id, list, dataLength uint32, level uint16, unknown uint8) []byte {
	b := make([]byte, 0, 19)
	putU32 := func(v uint32) {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	putU32(chunkType)
	putU32(id)
	putU32(list)
	putU32(dataLength)
	b = append(b, byte(level), byte(level>>8))
	b = append(b, unknown)
	return b
}

func TestReadChunkHeaderV6V11BaselineNoTrailer(t *testing.T) {
	c := newCursor(v6Header(0x10, 1, 0, 5, 1, 0x00))
	h, err := ReadChunkHeader(c, Version11)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x10), h.ChunkType)
	assert.Equal(t, uint32(1), h.ID)
	assert.Equal(t, uint32(0), h.Trailer)
}

// TestReadChunkHeaderV6V11ListBumpsTrailerToTwelve checks that a nonzero
// List field trips both the +8 and +4 trailer rules (the first condition
// of each is `h.List != 0`), landing on 12 regardless of chunk type.
func TestReadChunkHeaderV6V11ListBumpsTrailerToTwelve(t *testing.T) {
	c := newCursor(v6Header(0x10, 1, 99, 5, 1, 0x00))
	h, err := ReadChunkHeader(c, Version11)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), h.Trailer)
}

// TestReadChunkHeaderV6V11ExemptChunkForcesZeroTrailer checks that the
// final override unconditionally zeroes the trailer for the exempt set,
// even when every other rule would have added one.
func TestReadChunkHeaderV6V11ExemptChunkForcesZeroTrailer(t *testing.T) {
	c := newCursor(v6Header(0x1f, 1, 99, 5, 1, 0x00))
	h, err := ReadChunkHeader(c, Version11)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), h.Trailer)
}

// TestReadChunkHeaderV6V11TrailerChunkTypeAddsFour checks the dedicated
// trailerChunks table adds a 4-byte trailer on its own, independent of the
// List/level rules.
func TestReadChunkHeaderV6V11TrailerChunkTypeAddsFour(t *testing.T) {
	c := newCursor(v6Header(0x64, 1, 0, 5, 0, 0x00))
	h, err := ReadChunkHeader(c, Version11)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), h.Trailer)
}

func TestReadChunkHeaderV2V5ListSetsFlatFourByteTrailer(t *testing.T) {
	b := make([]byte, 0, 18)
	putU32 := func(v uint32) {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	putU32(0x10) // chunkType
	putU32(1)    // id
	putU32(1)    // list
	putU32(5)    // dataLength
	b = append(b, 1, 0) // level

	c := newCursor(b)
	h, err := ReadChunkHeader(c, Version5)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), h.Trailer)
}

func TestSkipZeroPaddingConsumesLeadingZerosThenStops(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 0xaa})
	require.NoError(t, c.skipZeroPadding())
	b, err := c.readU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xaa), b)
}
