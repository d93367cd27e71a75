package rsvg

import "sync/atomic"

// Document is a parsed SVG document: a reference-counted resource wrapping
// an opaque handle owned by the backend that parsed it. A Document starts
// with a reference count of one and is safe for concurrent use; the backing
// handle is released exactly once, when the count reaches zero.
type Document struct {
	refs     atomic.Int64
	backend  Backend
	handle   Handle
	viewport Size
	factory  *Factory
}

// Viewport returns the document's logical size as declared at creation.
func (d *Document) Viewport() Size {
	return d.viewport
}

// Factory returns the factory that created the document. The returned
// factory is kept alive by the document's own reference; callers that need
// it beyond the document's lifetime must AddRef it themselves.
func (d *Document) Factory() *Factory {
	return d.factory
}

// AddRef increments the reference count and returns the new count.
func (d *Document) AddRef() int64 {
	refs := d.refs.Add(1)
	Logger().Debug("document addref", "handle", uint64(d.handle), "refs", refs)
	return refs
}

// Release decrements the reference count and returns the new count. When
// the count reaches zero the backing handle is freed through the document's
// backend, the factory reference is released, and the Document must not be
// used again. Releasing below zero is a caller bug and panics.
func (d *Document) Release() int64 {
	refs := d.refs.Add(-1)
	Logger().Debug("document release", "handle", uint64(d.handle), "refs", refs)

	switch {
	case refs == 0:
		if d.handle != 0 {
			d.backend.Free(d.handle)
			d.handle = 0
		}
		if d.factory != nil {
			d.factory.Release()
		}
	case refs < 0:
		panic("rsvg: Document released below zero")
	}
	return refs
}

// Render rasterizes the document into the caller-owned target, scaling the
// logical viewport to the target's pixel dimensions. The call is
// synchronous and not cancelable; the pixel buffer is used only for its
// duration. On a validation failure the buffer is left unmodified; after a
// backend render failure its contents are unspecified.
func (d *Document) Render(t RenderTarget) error {
	if err := t.validate(); err != nil {
		return err
	}
	return d.backend.Render(d.handle, t, d.viewport)
}
