package raster

import (
	"math"
	"testing"
)

func TestImageResizeZeroDimension(t *testing.T) {
	img := NewImage(0, 0, RGBA32Packed)
	if img.IsCreated() {
		t.Fatal("zero-sized image should not be created")
	}
	img.Resize(4, 4, RGBA32Packed)
	if !img.IsCreated() {
		t.Fatal("resized image should be created")
	}
	if len(img.MappedBytes()) != 4*4*4 {
		t.Fatalf("expected 64 bytes, got %d", len(img.MappedBytes()))
	}
}

func TestImageDestroy(t *testing.T) {
	img := NewImage(4, 4, RGBA32Packed)
	img.Destroy()
	if img.IsCreated() {
		t.Fatal("destroyed image should not be created")
	}
}

func TestImageGetSetColor(t *testing.T) {
	img := NewImage(2, 2, RGBA32Packed)
	c := Vec4{1, 0, 0, 1}
	img.SetColor(1, 1, c)
	got := img.GetColor(1, 1)
	if got[0] < 0.99 || got[3] < 0.99 {
		t.Errorf("GetColor after SetColor = %v, want ~red", got)
	}
}

func TestImageOutOfRangeColor(t *testing.T) {
	img := NewImage(2, 2, RGBA32Packed)
	img.SetColor(-1, 0, Vec4{1, 1, 1, 1}) // no-op
	img.SetColor(5, 5, Vec4{1, 1, 1, 1})  // no-op

	got := img.GetColor(-1, 0)
	if got != (Vec4{}) {
		t.Errorf("out-of-range GetColor = %v, want zero vector", got)
	}
}

func TestImageOutOfRangeDepthIsNaN(t *testing.T) {
	img := NewImage(2, 2, DepthFormat)
	got := img.GetDepth(-1, 0)
	if !math.IsNaN(float64(got)) {
		t.Errorf("out-of-range GetDepth = %v, want NaN", got)
	}
}

func TestImageTexelOffset(t *testing.T) {
	img := NewImage(3, 3, DepthFormat)
	img.SetDepth(2, 1, 0.5)
	if got := img.GetDepth(2, 1); got != 0.5 {
		t.Errorf("GetDepth(2,1) = %v, want 0.5", got)
	}
	if got := img.GetDepth(1, 2); got == 0.5 {
		t.Error("GetDepth(1,2) should not alias GetDepth(2,1)")
	}
}
