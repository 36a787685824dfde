// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"archive/zip"
	"encoding/xml"
	"io"
)

// OPC relationship types VSDX uses to link its parts, named in spec.md §3.
const (
	relTypeDocument       = "http://schemas.microsoft.com/visio/2010/relationships/document"
	relTypePage           = "http://schemas.microsoft.com/visio/2010/relationships/page"
	relTypeMaster         = "http://schemas.microsoft.com/visio/2010/relationships/master"
	relTypeTheme          = "http://schemas.microsoft.com/visio/2010/relationships/theme"
	relTypeCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
)

// pagesManifest mirrors the `<Pages><Page ID=".." rel:id=".."/></Pages>`
// listing VSDX carries at `visio/pages/pages.xml`: the page order and
// relationship id the pages.xml.rels file resolves to a part name.
type pagesManifest struct {
	XMLName xml.Name        `xml:"Pages"`
	Entries []manifestEntry `xml:"Page"`
}

type mastersManifest struct {
	XMLName xml.Name        `xml:"Masters"`
	Entries []manifestEntry `xml:"Master"`
}

type manifestEntry struct {
	ID   string `xml:"ID,attr"`
	RID  string `xml:"id,attr"` // r:id, namespace-stripped by encoding/xml
	Name string `xml:"Name,attr"`
}

// ParseVSDX decodes a VSDX OPC package, in page order, driving collector
// over each page part in turn (spec.md §3 "XML package (VDX, VSDX)" and
// §4.1's shared Collector contract). It resolves the package's
// relationship graph starting at `_rels/.rels`, the same walk excelize
// does for `.xlsx`'s `xl/workbook.xml` (ZipInput.go's opcPackage).
func ParseVSDX(zr *zip.Reader, collector Collector) error {
	pkg := newOPCPackage(zr)

	docPart, ok := pkg.findPartByType("", relTypeOfficeDocument)
	if !ok {
		docPart, ok = pkg.findPartByType("", relTypeDocument)
	}
	if !ok {
		docPart = "visio/document.xml"
	}

	pagesPart, ok := pkg.findPartByType(docPart, relTypePage)
	if !ok {
		pagesPart = "visio/pages/pages.xml"
	}

	manifest, err := readPagesManifest(pkg, pagesPart)
	if err != nil {
		return err
	}
	for _, entry := range manifest.Entries {
		target, ok := pkg.relationshipTarget(pagesPart, entry.RID)
		if !ok {
			continue
		}
		if err := decodeOPCPart(pkg, target, collector); err != nil {
			return err
		}
	}
	return nil
}

// ParseVSDXStencils decodes a VSDX package's master (stencil) parts into
// collector, the same way ParseVSDX decodes page parts — a separate entry
// point because stencils are loaded once, before any page parsing begins
// (spec.md §3 "Lifecycle", §4.5), rather than interleaved with pages.
func ParseVSDXStencils(zr *zip.Reader, collector Collector) error {
	pkg := newOPCPackage(zr)
	docPart, ok := pkg.findPartByType("", relTypeOfficeDocument)
	if !ok {
		docPart = "visio/document.xml"
	}
	mastersPart, ok := pkg.findPartByType(docPart, relTypeMaster)
	if !ok {
		mastersPart = "visio/masters/masters.xml"
	}
	rc, err := pkg.open(mastersPart)
	if err != nil {
		return nil // a document with no stencils is not an error
	}
	var manifest mastersManifest
	decErr := xml.NewDecoder(rc).Decode(&manifest)
	rc.Close()
	if decErr != nil {
		return decErr
	}
	for _, entry := range manifest.Entries {
		target, ok := pkg.relationshipTarget(mastersPart, entry.RID)
		if !ok {
			continue
		}
		if err := decodeOPCPart(pkg, target, collector); err != nil {
			return err
		}
	}
	return nil
}

func readPagesManifest(pkg *opcPackage, pagesPart string) (pagesManifest, error) {
	rc, err := pkg.open(pagesPart)
	if err != nil {
		return pagesManifest{}, nil
	}
	defer rc.Close()
	var manifest pagesManifest
	if err := xml.NewDecoder(rc).Decode(&manifest); err != nil {
		return pagesManifest{}, err
	}
	return manifest, nil
}

func decodeOPCPart(pkg *opcPackage, partName string, collector Collector) error {
	rc, err := pkg.open(partName)
	if err != nil {
		return nil
	}
	defer rc.Close()
	return decodeOPCReader(rc, collector)
}

func decodeOPCReader(r io.Reader, collector Collector) error {
	d := newXMLDecoder(r, collector)
	return d.decodeElements()
}
