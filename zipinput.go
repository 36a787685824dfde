// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"sort"
)

// opcRelationship is one `<Relationship>` row from a `_rels/*.rels` part,
// grounded on the OPC package conventions excelize itself relies on for
// `.xlsx` (spec.md §3: "OPC-style relationships in `_rels/*.rels` map ids
// to part targets").
type opcRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type opcRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []opcRelationship `xml:"Relationship"`
}

// opcPackage is a thin read-only view over a VSDX's ZIP structure,
// resolving OPC part names and relationships the way excelize's own
// `.xlsx` reader resolves worksheet/style/theme parts from `_rels`.
type opcPackage struct {
	zr    *zip.Reader
	files map[string]*zip.File
}

func newOPCPackage(zr *zip.Reader) *opcPackage {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[normalizePartName(f.Name)] = f
	}
	return &opcPackage{zr: zr, files: files}
}

func normalizePartName(name string) string {
	return path.Clean("/" + name)[1:]
}

func (p *opcPackage) open(name string) (io.ReadCloser, error) {
	f, ok := p.files[normalizePartName(name)]
	if !ok {
		return nil, errPartNotFound
	}
	return f.Open()
}

// relsFor reads the `_rels/<basename>.rels` part that sits alongside
// partName and returns its relationships, or an empty set if the part
// carries none (most OPC parts have no matching .rels file).
func (p *opcPackage) relsFor(partName string) ([]opcRelationship, error) {
	dir, base := path.Split(partName)
	relsName := path.Join(dir, "_rels", base+".rels")
	rc, err := p.open(relsName)
	if err != nil {
		return nil, nil
	}
	defer rc.Close()
	var rels opcRelationships
	if err := xml.NewDecoder(rc).Decode(&rels); err != nil {
		return nil, err
	}
	return rels.Relationships, nil
}

// resolveTarget resolves a relationship's Target (which is relative to
// partName's directory) into a normalized, package-absolute part name.
func resolveTarget(partName, target string) string {
	dir := path.Dir(partName)
	return normalizePartName(path.Join(dir, target))
}

// relationshipTarget looks up a single relationship by id among the
// relationships declared alongside partName.
func (p *opcPackage) relationshipTarget(partName, rID string) (string, bool) {
	rels, err := p.relsFor(partName)
	if err != nil {
		return "", false
	}
	for _, r := range rels {
		if r.ID == rID {
			return resolveTarget(partName, r.Target), true
		}
	}
	return "", false
}

// findPartByType walks the root relationships to find the single part of
// the given OPC relationship type (e.g. the document part, reached from
// `_rels/.rels`'s "…/document" relationship).
func (p *opcPackage) findPartByType(fromPart, relType string) (string, bool) {
	rels, err := p.relsFor(fromPart)
	if err != nil {
		return "", false
	}
	for _, r := range rels {
		if r.Type == relType {
			return resolveTarget(fromPart, r.Target), true
		}
	}
	return "", false
}

// orderedParts sorts part names for deterministic traversal when no
// explicit declared order (a pages.xml/masters.xml listing) is available.
func orderedParts(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
