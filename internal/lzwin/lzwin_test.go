// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package lzwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompressAllLiteral(t *testing.T) {
	// flag=0xff: every one of the 8 following bytes is a literal.
	src := []byte{0xff, 'H', 'e', 'l', 'l', 'o', '!', '!', '!'}
	assert.Equal(t, []byte("Hello!!!"), Decompress(src))
}

func TestDecompressBackReference(t *testing.T) {
	// Four literal bytes "ABCD", then a back-reference with length 3
	// pointing at window offset 1 ('B'), extending the output with "BCD".
	src := []byte{0x0f, 'A', 'B', 'C', 'D', 0xef, 0xf0}
	assert.Equal(t, []byte("ABCDBCD"), Decompress(src))
}

func TestDecompressTruncatedInputStopsEarly(t *testing.T) {
	// A flag byte promising 8 literals but only 2 bytes follow must not
	// panic; it returns what it could decode (spec.md §7).
	src := []byte{0xff, 'X', 'Y'}
	assert.Equal(t, []byte("XY"), Decompress(src))
}

func TestDecompressEmptyInput(t *testing.T) {
	assert.Empty(t, Decompress(nil))
}
