// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffContainer(t *testing.T) {
	cases := []struct {
		name   string
		header []byte
		want   ContainerKind
	}{
		{"ole", []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}, ContainerOLE},
		{"zip", []byte{0x50, 0x4b, 0x03, 0x04, 0x14, 0x00}, ContainerZip},
		{"bare xml", []byte("<?xml version=\"1.0\"?>"), ContainerXML},
		{"leading whitespace xml", []byte("\n  <VisioDocument>"), ContainerXML},
		{"unknown", []byte{0x00, 0x01, 0x02}, ContainerUnknown},
		{"empty", nil, ContainerUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SniffContainer(tc.header))
		})
	}
}
