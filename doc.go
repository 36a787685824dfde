// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.
//
// Package govisio decodes Microsoft Visio drawing files — the legacy
// OLE-structured binary container (format generations 2, 5, 6 and 11) and
// the modern ZIP/OPC XML package (VDX, VSDX) — into a stream of
// resolution-independent drawing events delivered to a pluggable
// PaintInterface. It does not edit, write or round-trip Visio files, and it
// does not rasterize or substitute fonts; it only decodes.
package govisio
