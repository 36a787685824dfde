// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// MinusOne is the sentinel value used throughout the binary and XML formats
// to mean "unset" for an otherwise-unsigned id field (lineStyleId,
// masterShape, ...).
const MinusOne = ^uint32(0)

// Colour is an RGBA colour with byte-resolution channels, as stored in both
// the binary Colors chunk and an XML package's SolidColor element.
type Colour struct {
	R, G, B, A uint8
}

// Opaque reports whether the colour's alpha channel is fully opaque.
func (c Colour) Opaque() bool { return c.A == 0xff }

// Hex renders the colour as a CSS/ODF-style "#RRGGBB" string, the form the
// PaintInterface's fo:color / draw:fill-color property values expect.
func (c Colour) Hex() string {
	const hexDigits = "0123456789abcdef"
	buf := [7]byte{'#'}
	put := func(i int, v uint8) {
		buf[i] = hexDigits[v>>4]
		buf[i+1] = hexDigits[v&0xf]
	}
	put(1, c.R)
	put(3, c.G)
	put(5, c.B)
	return string(buf[:])
}

// XForm is a Visio-native affine transform: translate(-pinLoc), optional
// flip about the local origin, rotate(angle), translate(+pin). See
// spec.md §3 and xform.go for the composition rules.
type XForm struct {
	PinX, PinY       float64
	Width, Height    float64
	LocPinX, LocPinY float64
	Angle            float64
	FlipX, FlipY     bool
}

// ChunkHeader is the binary decoder's per-chunk header, normalized across
// format generations 2/5/6/11 (see binary_header.go for the per-version read
// rules).
type ChunkHeader struct {
	ChunkType  uint32
	ID         uint32
	List       uint32
	DataLength uint32
	Level      uint16
	Unknown    uint8
	Trailer    uint32 // derived trailer size, added to DataLength to find the next chunk
}

// NurbsData is the control-point/knot/weight data referenced from a
// geometry-list NurbsTo element by dataId (see spec.md §3, §4.3.3).
type NurbsData struct {
	Degree        uint32
	LastKnot      float64
	XType, YType  uint8 // 0 = percent-of-width/height, 1 = absolute
	Knots         []float64
	Weights       []float64
	Points        []Point
}

// PolylineData is the point list referenced from a geometry-list
// PolylineTo element by dataId.
type PolylineData struct {
	XType, YType uint8
	Points       []Point
}

// Point is a 2D coordinate in shape-local units.
type Point struct {
	X, Y float64
}

// TextFormat distinguishes the three text-stream encodings a shape's text
// bytes may arrive in.
type TextFormat int

const (
	TextFormatAnsi TextFormat = iota
	TextFormatUTF16LE
	TextFormatUTF8
)

// ForeignType distinguishes the kinds of embedded foreign data a shape may
// carry.
type ForeignType int

const (
	ForeignBitmap ForeignType = iota
	ForeignObjectOLE
	ForeignEnhancedMetafile
)

// ForeignFormat distinguishes the raster encodings a ForeignBitmap may use.
type ForeignFormat int

const (
	ForeignFormatNone ForeignFormat = iota
	ForeignFormatBmp
	ForeignFormatJpeg
	ForeignFormatGif
	ForeignFormatTiff
	ForeignFormatPng
)

// ForeignData is an embedded image or OLE object attached to a shape.
type ForeignData struct {
	Type           ForeignType
	Format         ForeignFormat
	OffsetX, OffsetY float64
	Width, Height  float64
	Bytes          []byte
}

// Name is a named constant referenced by fields (FieldList numeric/text
// entries resolve against this table).
type Name struct {
	Bytes  []byte
	Format TextFormat
}
