package rsvg

import "fmt"

// Size is a logical viewport extent: the document's declared coordinate
// space, independent of the pixel dimensions it is rasterized into.
type Size struct {
	Width  float64
	Height float64
}

// RenderTarget describes a caller-owned pixel buffer to rasterize into.
// The buffer must hold at least Stride*Height bytes and stays owned by the
// caller; it is written for the duration of a Render call only. Pixels are
// 32 bits each, premultiplied alpha, cairo ARGB32 layout.
type RenderTarget struct {
	Pixels []byte
	Width  uint32
	Height uint32
	Stride uint32 // bytes per row
}

// validate checks the bounds Go can express directly; dimensional
// validation belongs to the render pipeline.
func (t RenderTarget) validate() error {
	if len(t.Pixels) == 0 {
		return ErrInvalidParameter
	}
	if need := uint64(t.Stride) * uint64(t.Height); uint64(len(t.Pixels)) < need {
		return fmt.Errorf("rsvg: pixel buffer holds %d bytes, stride %d × height %d needs %d: %w",
			len(t.Pixels), t.Stride, t.Height, need, ErrInvalidParameter)
	}
	return nil
}
