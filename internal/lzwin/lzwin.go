// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package lzwin implements the 4096-byte sliding-window LZ77 variant the
// legacy Visio binary container uses to compress individual sub-streams
// (spec.md §4.1, §6). It is not DEFLATE/zlib, so compress/flate does not
// apply; this is a small, self-contained port of the exact byte-level
// algorithm (flag byte + 8 tokens per group, distance/length
// back-references with a -4078/+18 offset correction).
package lzwin

const windowSize = 4096

// Decompress expands src, which was compressed with the sliding-window
// codec, returning the decompressed bytes. A truncated or malformed input
// simply stops early and returns what was successfully decoded — matching
// the container-level contract that a corrupt sub-stream aborts without
// taking down the whole document (spec.md §7).
func Decompress(src []byte) []byte {
	var window [windowSize]byte
	out := make([]byte, 0, len(src)*2)
	pos := 0
	offset := 0
	size := len(src)

	for offset < size {
		flag := src[offset]
		offset++

		mask := 1
		for bit := 0; bit < 8 && offset <= size; bit++ {
			if flag&mask != 0 {
				if offset >= size {
					break
				}
				b := src[offset]
				offset++
				window[pos&(windowSize-1)] = b
				out = append(out, b)
				pos++
			} else {
				if offset > size-2 {
					break
				}
				addr1 := src[offset]
				addr2 := src[offset+1]
				offset += 2

				length := int(addr2&0x0f) + 3
				pointer := (int(addr2&0xf0) << 4) | int(addr1)
				if pointer > 4078 {
					pointer -= 4078
				} else {
					pointer += 18
				}

				for j := 0; j < length; j++ {
					b := window[(pointer+j)&(windowSize-1)]
					window[(pos+j)&(windowSize-1)] = b
					out = append(out, b)
				}
				pos += length
			}
			mask <<= 1
		}
	}
	return out
}
