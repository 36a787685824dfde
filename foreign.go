// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// emfSignature is the four-byte EMR_HEADER record type (0x00000001,
// little-endian) that appears at offset 0x28 in a well-formed EMF; WMF
// files don't carry it at that offset (spec.md §4.3.8).
var emfSignature = []byte{0x01, 0x00, 0x00, 0x00}

// bmpFileHeaderSize is the length of the BITMAPFILEHEADER Visio omits for
// headerless embedded bitmaps (type=Bitmap, format=0).
const bmpFileHeaderSize = 14

// NormalizeForeignData fills in a synthesised BMP file header for
// headerless bitmaps and classifies EnhancedMetafile blobs as EMF or WMF,
// per spec.md §4.3.8. It mutates fd.Bytes in place when a header must be
// prepended and returns whether the blob is EMF (only meaningful when
// fd.Type == ForeignEnhancedMetafile).
func NormalizeForeignData(fd *ForeignData) (isEMF bool) {
	switch fd.Type {
	case ForeignBitmap:
		if fd.Format == ForeignFormatNone || fd.Format == ForeignFormatBmp {
			if !hasBMPHeader(fd.Bytes) {
				fd.Bytes = prependBMPHeader(fd.Bytes, fd.Width, fd.Height)
			}
			fd.Format = ForeignFormatBmp
		}
		return false
	case ForeignEnhancedMetafile:
		return probeEMF(fd.Bytes)
	default:
		return false
	}
}

func hasBMPHeader(b []byte) bool {
	return len(b) >= 2 && b[0] == 'B' && b[1] == 'M'
}

// prependBMPHeader synthesises a minimal 14-byte BITMAPFILEHEADER ahead of
// a raw DIB (BITMAPINFOHEADER + pixel data) blob that Visio stored without
// one. The pixel-data offset is computed from the DIB header's own size
// fields rather than assumed, since palette size varies by bit depth.
func prependBMPHeader(dib []byte, width, height float64) []byte {
	if len(dib) < 4 {
		return dib
	}
	dibHeaderSize := le32(dib, 0)
	var paletteEntries, bitCount uint32
	if len(dib) >= 16 {
		bitCount = uint32(dib[14]) | uint32(dib[15])<<8
	}
	if bitCount <= 8 {
		if len(dib) >= 36+4 {
			paletteEntries = le32(dib, 32)
		}
		if paletteEntries == 0 {
			paletteEntries = 1 << bitCount
		}
	}
	pixelOffset := bmpFileHeaderSize + int(dibHeaderSize) + int(paletteEntries)*4
	fileSize := bmpFileHeaderSize + len(dib)

	header := make([]byte, bmpFileHeaderSize)
	header[0], header[1] = 'B', 'M'
	putLE32(header[2:], uint32(fileSize))
	putLE32(header[10:], uint32(pixelOffset))

	out := make([]byte, 0, len(header)+len(dib))
	out = append(out, header...)
	out = append(out, dib...)
	return out
}

func le32(b []byte, at int) uint32 {
	return uint32(b[at]) | uint32(b[at+1])<<8 | uint32(b[at+2])<<16 | uint32(b[at+3])<<24
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// probeEMF inspects bytes 0x28..0x2B for the EMR_HEADER record-type
// signature, per spec.md §4.3.8; anything else is treated as WMF.
func probeEMF(b []byte) bool {
	if len(b) < 0x2c {
		return false
	}
	return bytes.Equal(b[0x28:0x2c], emfSignature)
}

// DecodeRasterDimensions decodes just enough of a BMP/JPEG/GIF/PNG/TIFF
// blob to validate it and recover its pixel dimensions, used to cross-
// check the foreign record's declared Width/Height. EMF/WMF blobs are
// vector formats image.DecodeConfig doesn't understand and are skipped.
func DecodeRasterDimensions(fd *ForeignData) (w, h int, err error) {
	if fd.Type != ForeignBitmap {
		return 0, 0, nil
	}
	r := bytes.NewReader(fd.Bytes)
	if fd.Format == ForeignFormatBmp {
		cfg, decErr := bmp.DecodeConfig(r)
		if decErr != nil {
			return 0, 0, decErr
		}
		return cfg.Width, cfg.Height, nil
	}
	cfg, _, decErr := image.DecodeConfig(r)
	if decErr != nil {
		return 0, 0, decErr
	}
	return cfg.Width, cfg.Height, nil
}

// ForeignPlacementProps builds the PaintInterface property list for
// DrawGraphicObject, mapping position/size and the composed flip state
// onto ODF's draw:mirror-* keys (spec.md §4.3.8).
func ForeignPlacementProps(fd ForeignData, flipX, flipY bool) Props {
	p := Props{
		"svg:x":      fd.OffsetX,
		"svg:y":      fd.OffsetY,
		"svg:width":  fd.Width,
		"svg:height": fd.Height,
	}
	switch {
	case flipX && flipY:
		p["draw:mirror-horizontal-vertical"] = true
	case flipX:
		p["draw:mirror-horizontal"] = true
	case flipY:
		p["draw:mirror-vertical"] = true
	}
	return p
}
