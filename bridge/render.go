package bridge

import (
	"runtime"
	"unsafe"
)

// maxScale bounds the bitmap-to-viewport scale factors. Values outside
// (0, maxScale] produce unusable or numerically unstable transforms.
const maxScale = 1000.0

// render rasterizes a parsed document into the caller's pixel buffer.
//
// Validation happens before any native resource is constructed, so a
// rejected request leaves the buffer unmodified. After a native failure the
// buffer contents are unspecified. Teardown is unconditional and ordered:
// the drawing context is destroyed before the surface, and the FPU state is
// reset on every exit path. The toolkit's transcendental math can leave a
// sticky pending-exception flag that would fault an unrelated thread which
// later unmasks that exception class.
func render(args unsafe.Pointer) Status {
	p := (*RenderParams)(args)

	var surface, cr uintptr
	defer func() {
		if cr != 0 {
			fnCairoDestroy(cr)
		}
		if surface != 0 {
			fnCairoSurfaceDestroy(surface)
		}
		resetFPU()
	}()

	if p.Handle == 0 || p.Pixels == 0 {
		logger().Warn("render rejected", "reason", "nil handle or pixels")
		return StatusInvalidParameter
	}
	if p.SVGWidth <= 0.01 && p.SVGHeight <= 0.01 {
		logger().Warn("render rejected", "reason", "degenerate viewport",
			"svgWidth", p.SVGWidth, "svgHeight", p.SVGHeight)
		return StatusInvalidParameter
	}
	if p.Width == 0 || p.Height == 0 || p.Stride == 0 {
		logger().Warn("render rejected", "reason", "zero bitmap dimension",
			"width", p.Width, "height", p.Height, "stride", p.Stride)
		return StatusInvalidParameter
	}
	if loadRsvg() != nil || loadCairo() != nil {
		return StatusNotSupported
	}

	scaleX := float64(p.Width) / p.SVGWidth
	scaleY := float64(p.Height) / p.SVGHeight
	if scaleX <= 0 || scaleX > maxScale || scaleY <= 0 || scaleY > maxScale {
		logger().Warn("render rejected", "reason", "scale out of range",
			"scaleX", scaleX, "scaleY", scaleY)
		return StatusInvalidParameter
	}

	logger().Debug("rendering document", "handle", p.Handle,
		"width", p.Width, "height", p.Height, "stride", p.Stride,
		"scaleX", scaleX, "scaleY", scaleY)

	// The surface aliases the caller's memory directly; no copy is made.
	surface = fnCairoImageSurfaceCreateForData(p.Pixels, cairoFormatARGB32,
		int32(p.Width), int32(p.Height), int32(p.Stride))
	if surface == 0 {
		logger().Warn("cairo surface creation failed")
		return StatusUnsuccessful
	}

	cr = fnCairoCreate(surface)
	if cr == 0 {
		logger().Warn("cairo context creation failed")
		return StatusUnsuccessful
	}

	fnCairoScale(cr, scaleX, scaleY)

	viewport := rsvgRectangle{width: p.SVGWidth, height: p.SVGHeight}
	fnRsvgRenderDocument(p.Handle, cr, uintptr(unsafe.Pointer(&viewport)), 0)
	runtime.KeepAlive(&viewport)

	return StatusSuccess
}
