package bridge

import (
	"errors"

	"github.com/gogpu/rsvg/internal/fpu"
)

// Entry points of the native toolkit. On platforms with a dynamic loader
// the *_unix.go files bind these on the first successful load; they must
// only be called after the matching loader reported success. Tests
// substitute both the loaders and the bindings.
var (
	// librsvg
	fnRsvgNewFromData    func(data uintptr, size uint64, gerr uintptr) uintptr
	fnRsvgRenderDocument func(handle, cr, viewport, gerr uintptr)
	fnGObjectUnref       func(obj uintptr)
	fnGErrorFree         func(gerr uintptr)

	// cairo
	fnCairoImageSurfaceCreateForData func(data uintptr, format, width, height, stride int32) uintptr
	fnCairoCreate                    func(surface uintptr) uintptr
	fnCairoDestroy                   func(cr uintptr)
	fnCairoSurfaceDestroy            func(surface uintptr)
	fnCairoScale                     func(cr uintptr, sx, sy float64)
)

var errNoLoader = errors.New("bridge: no native call mechanism on this platform")

// loadRsvg and loadCairo ensure the respective library is loaded and its
// entry points are bound. The *_unix.go init points them at the real
// loaders; elsewhere every call reports the bridge as unavailable.
var (
	loadRsvg  = func() error { return errNoLoader }
	loadCairo = func() error { return errNoLoader }
)

// resetFPU clears the floating-point unit's pending-exception state. It is
// swappable so tests can observe that every render path resets it.
var resetFPU = fpu.Reset

// rsvgRectangle mirrors librsvg's RsvgRectangle (cairo_rectangle_t layout).
type rsvgRectangle struct {
	x, y, width, height float64
}

// cairoFormatARGB32 is CAIRO_FORMAT_ARGB32: 32 bits per pixel,
// premultiplied alpha in the most significant byte.
const cairoFormatARGB32 int32 = 0
