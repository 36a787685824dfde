// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyXFormIdentity(t *testing.T) {
	x := XForm{PinX: 3, PinY: 4, LocPinX: 3, LocPinY: 4}
	p := ApplyXForm(Point{X: 1, Y: 2}, x)
	assert.InDelta(t, 1, p.X, 1e-9)
	assert.InDelta(t, 2, p.Y, 1e-9)
}

func TestApplyXFormFlipAndRotate(t *testing.T) {
	x := XForm{PinX: 0, PinY: 0, LocPinX: 0, LocPinY: 0, Angle: math.Pi / 2, FlipX: true}
	p := ApplyXForm(Point{X: 1, Y: 0}, x)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, -1, p.Y, 1e-9)
}

// TestApplyChainAssociativity checks the Transform associativity invariant:
// ApplyChain(p, []XForm{G, S}) == ApplyXForm(ApplyXForm(p, S), G).
func TestApplyChainAssociativity(t *testing.T) {
	shape := XForm{PinX: 2, PinY: 1, Width: 1, Height: 1, Angle: 0.3}
	group := XForm{PinX: 5, PinY: -2, Width: 2, Height: 2, Angle: -0.7, FlipY: true}

	p := Point{X: 0.25, Y: 0.75}
	viaChain := ApplyChain(p, []XForm{shape, group})
	viaNested := ApplyXForm(ApplyXForm(p, shape), group)

	assert.InDelta(t, viaNested.X, viaChain.X, 1e-9)
	assert.InDelta(t, viaNested.Y, viaChain.Y, 1e-9)
}

func TestComposedFlipXOR(t *testing.T) {
	chain := []XForm{
		{FlipX: true, FlipY: false},
		{FlipX: true, FlipY: true},
	}
	flipX, flipY := ComposedFlip(chain)
	assert.False(t, flipX)
	assert.True(t, flipY)
}

func TestComposedAngleRightAngleRotation(t *testing.T) {
	chain := []XForm{{Angle: math.Pi / 2}}
	got := ComposedAngle(chain)
	assert.InDelta(t, math.Pi/2, got, 1e-9)
}

func TestFlipPageY(t *testing.T) {
	p := FlipPageY(Point{X: 1, Y: 2}, 10)
	assert.Equal(t, Point{X: 1, Y: 8}, p)
}
