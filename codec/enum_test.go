// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"testing"

	"github.com/gopb/wireproto/codec"
)

type color int32

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

func TestEnumRoundTrip(t *testing.T) {
	c := codec.Enum[color]()
	for _, v := range []color{colorRed, colorGreen, colorBlue} {
		if got := roundTrip(t, c, v); got != v {
			t.Errorf("roundTrip(%v) = %v", v, got)
		}
	}
}

func TestEnumAcceptsUnknownValue(t *testing.T) {
	// An enum value the current Go type doesn't name (e.g. added by a
	// newer peer) must still round-trip rather than being rejected.
	c := codec.Enum[color]()
	if got := roundTrip(t, c, color(99)); got != color(99) {
		t.Errorf("roundTrip(99) = %v, want 99", got)
	}
}
