// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import "sort"

// streamPointer is one entry of the pointer table at the start of every
// sub-stream, naming a further sub-stream by (type, offset, length,
// format) (spec.md §6 "Input formats", VSDParser.cpp::handleStreams).
type streamPointer struct {
	Type   uint32
	Offset uint32
	Length uint32
	Format uint16
}

// readPointerTable decodes the pointer list located via the trailer's own
// 4-byte self-reference at `shift`, returning the declared iteration
// order and an index → pointer map split out so VSD_FONTFACES entries can
// be special-cased by the caller (VSDParser.cpp::handleStreams).
func readPointerTable(c *cursor, shift uint32) (order []uint32, pointers map[uint32]streamPointer, fontFaces map[uint32]streamPointer, err error) {
	pointers = make(map[uint32]streamPointer)
	fontFaces = make(map[uint32]streamPointer)

	if err = c.seek(int(shift)); err != nil {
		return nil, nil, nil, err
	}
	offset, err := c.readU32()
	if err != nil {
		return nil, nil, nil, err
	}
	if err = c.seek(int(offset) + int(shift) - 4); err != nil {
		return nil, nil, nil, err
	}
	listSize, err := c.readU32()
	if err != nil {
		return nil, nil, nil, err
	}
	pointerCount, err := c.readU32()
	if err != nil {
		return nil, nil, nil, err
	}
	if err = c.skip(4); err != nil {
		return nil, nil, nil, err
	}

	for i := uint32(0); i < pointerCount; i++ {
		var p streamPointer
		if p.Type, err = c.readU32(); err != nil {
			break
		}
		if err = c.skip(4); err != nil {
			break
		}
		if p.Offset, err = c.readU32(); err != nil {
			break
		}
		if p.Length, err = c.readU32(); err != nil {
			break
		}
		if p.Format, err = c.readU16(); err != nil {
			break
		}
		if p.Type == ChunkFontFaces {
			fontFaces[i] = p
		} else if p.Type != 0 {
			pointers[i] = p
		}
	}

	for i := uint32(0); i < listSize; i++ {
		v, e := c.readU32()
		if e != nil {
			order = nil
			break
		}
		order = append(order, v)
	}
	return order, pointers, fontFaces, nil
}

// orderedStreamIndices returns the indices of pointers in FontFaces-first,
// declared-order, then-remainder order, matching handleStreams's three
// passes.
func orderedStreamIndices(order []uint32, pointers, fontFaces map[uint32]streamPointer) []uint32 {
	var indices []uint32

	var ffKeys []uint32
	for k := range fontFaces {
		ffKeys = append(ffKeys, k)
	}
	sort.Slice(ffKeys, func(i, j int) bool { return ffKeys[i] < ffKeys[j] })
	indices = append(indices, ffKeys...)

	seen := make(map[uint32]bool)
	for _, idx := range order {
		if _, ok := pointers[idx]; ok && !seen[idx] {
			indices = append(indices, idx)
			seen[idx] = true
		}
	}

	var remaining []uint32
	for k := range pointers {
		if !seen[k] {
			remaining = append(remaining, k)
		}
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	indices = append(indices, remaining...)

	return indices
}
