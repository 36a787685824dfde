// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTestVSDX assembles a minimal in-memory VSDX package exercising the
// OPC relationship chain ParseVSDX walks: root rels -> document part ->
// pages part -> per-page rels -> page content part.
func buildTestVSDX(t *testing.T) *zip.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	files := map[string]string{
		"_rels/.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rIdDoc" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="visio/document.xml"/>
</Relationships>`,
		"visio/document.xml": `<VisioDocument/>`,
		"visio/_rels/document.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rIdPages" Type="http://schemas.microsoft.com/visio/2010/relationships/page" Target="pages/pages.xml"/>
</Relationships>`,
		"visio/pages/pages.xml": `<Pages xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <Page ID="1" r:id="rId1" Name="Page-1"/>
</Pages>`,
		"visio/pages/_rels/pages.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.microsoft.com/visio/2010/relationships/page" Target="page1.xml"/>
</Relationships>`,
		"visio/pages/page1.xml": `<PageContents>
  <Shape ID="5" LineStyle="1" FillStyle="2" TextStyle="3">
    <Text>from vsdx</Text>
  </Shape>
</PageContents>`,
	}

	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestParseVSDXWalksOPCRelationships(t *testing.T) {
	zr := buildTestVSDX(t)
	collector := newRecordingCollector()

	err := ParseVSDX(zr, collector)
	require.NoError(t, err)

	require.Len(t, collector.shapes, 1)
	require.Equal(t, uint32(5), collector.shapes[0])
	require.Equal(t, "from vsdx", collector.texts[5])
}

func TestParseVSDXStencilsNoMastersIsNotAnError(t *testing.T) {
	zr := buildTestVSDX(t)
	collector := newRecordingCollector()

	err := ParseVSDXStencils(zr, collector)
	require.NoError(t, err)
	require.Empty(t, collector.shapes)
}
