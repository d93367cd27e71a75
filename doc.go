// Package rsvg parses and rasterizes SVG documents by delegating to a
// native vector-graphics toolkit.
//
// # Overview
//
// rsvg does not rasterize vector paths itself. It loads librsvg (document
// parsing and rendering) and cairo (the drawing surface) lazily at runtime
// and routes every operation through a fixed-table call bridge; see the
// bridge subpackage. Documents are reference-counted resources tied to an
// opaque parser handle, and rendering writes premultiplied 32-bit pixels
// directly into a caller-owned buffer.
//
// # Quick Start
//
//	import "github.com/gogpu/rsvg"
//
//	factory := rsvg.NewFactory()
//	doc, err := factory.CreateDocument(file, rsvg.Size{Width: 200, Height: 100})
//	if err != nil {
//		return err
//	}
//	defer doc.Release()
//
//	buf := make([]byte, 400*50)
//	err = doc.Render(rsvg.RenderTarget{Pixels: buf, Width: 100, Height: 50, Stride: 400})
//
// # Fallback rendering
//
// When the native toolkit cannot be loaded, Create and Render fail with
// ErrLibraryUnavailable. Processes that must keep working without it can
// register the pure-Go fallback backend via blank import:
//
//	import _ "github.com/gogpu/rsvg/softrender"
//
// # Architecture
//
// The library is organized into:
//   - Public API: Factory, Document, RenderTarget, Size, Backend
//   - bridge: opcode dispatch, native bindings, the render pipeline
//   - internal: dyld (lazy library loading), fpu (x87 state reset)
//   - softrender: optional oksvg/rasterx fallback backend
package rsvg
