// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported(1252))
	assert.True(t, Supported(874))
	assert.False(t, Supported(9999))
}

func TestDecodeANSIASCIIRoundTrip(t *testing.T) {
	s, err := DecodeANSI([]byte("Hello, Visio!"), 1252)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Visio!", s)
}

// TestEncodeDecodeANSIRoundTrip is the code-page round-trip property:
// encoding then decoding a representable string under a supported code
// page must return the original string.
func TestEncodeDecodeANSIRoundTrip(t *testing.T) {
	for _, cp := range []int{1250, 1251, 1252, 1253, 1254, 1257, 1258} {
		encoded, err := EncodeANSI("Plain ASCII text 123", cp)
		require.NoError(t, err)
		decoded, err := DecodeANSI(encoded, cp)
		require.NoError(t, err)
		assert.Equal(t, "Plain ASCII text 123", decoded)
	}
}

func TestDecodeANSIUnsupportedFallsBackTo1252(t *testing.T) {
	s, err := DecodeANSI([]byte("abc"), 31337)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestDecodeUTF16LE(t *testing.T) {
	// "Hi" in little-endian UTF-16.
	s, err := DecodeUTF16LE([]byte{'H', 0, 'i', 0})
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}
