package rsvg

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/gogpu/rsvg/bridge"
)

// Factory creates Documents and anchors their lifetime: every Document
// holds one reference on its factory until its own final Release.
type Factory struct {
	refs atomic.Int64
	opts factoryOptions
}

// NewFactory creates a factory with a reference count of one.
func NewFactory(opts ...Option) *Factory {
	o := defaultFactoryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Factory{opts: o}
	f.refs.Store(1)
	return f
}

// AddRef increments the factory's reference count and returns the new count.
func (f *Factory) AddRef() int64 {
	return f.refs.Add(1)
}

// Release decrements the factory's reference count and returns the new
// count. The factory owns no native resources of its own; the count exists
// so Documents can keep their factory reachable. Releasing below zero is a
// caller bug and panics.
func (f *Factory) Release() int64 {
	refs := f.refs.Add(-1)
	if refs < 0 {
		panic("rsvg: Factory released below zero")
	}
	return refs
}

// backendFor picks the backend for a new document: a configured override,
// the native bridge when the process has one, otherwise a registered
// fallback. With none of the three, creation fails before any I/O.
func (f *Factory) backendFor() (Backend, error) {
	if f.opts.backend != nil {
		return f.opts.backend, nil
	}
	if bridge.Available() {
		return nativeBackend{}, nil
	}
	if fb := FallbackBackend(); fb != nil {
		return fb, nil
	}
	return nil, ErrBridgeUnavailable
}

// CreateDocument reads a complete SVG document from r and parses it. The
// viewport is the document's logical size; it is independent of any pixel
// buffer later rendered into. A read error is a hard failure: no partial
// document is ever parsed.
func (f *Factory) CreateDocument(r io.Reader, viewport Size) (*Document, error) {
	backend, err := f.backendFor()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	return f.createFromBytes(backend, data, viewport)
}

// CreateDocumentFromBytes parses an in-memory SVG document. Empty input is
// rejected with ErrInvalidParameter before reaching any parser.
func (f *Factory) CreateDocumentFromBytes(data []byte, viewport Size) (*Document, error) {
	backend, err := f.backendFor()
	if err != nil {
		return nil, err
	}
	return f.createFromBytes(backend, data, viewport)
}

// newDocument is a seam for tests covering the unwind path: a handle that
// was already created must be freed when construction cannot complete.
var newDocument = func(backend Backend, h Handle, viewport Size, f *Factory) (*Document, error) {
	d := &Document{
		backend:  backend,
		handle:   h,
		viewport: viewport,
		factory:  f,
	}
	d.refs.Store(1)
	return d, nil
}

func (f *Factory) createFromBytes(backend Backend, data []byte, viewport Size) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("rsvg: empty document: %w", ErrInvalidParameter)
	}

	h, err := backend.Parse(data)
	if err != nil {
		// Toolkit libraries missing in an otherwise capable process: hand
		// the document to a registered fallback backend instead.
		if errors.Is(err, ErrLibraryUnavailable) {
			if fb := FallbackBackend(); fb != nil && fb != backend {
				return f.createFromBytes(fb, data, viewport)
			}
		}
		return nil, err
	}

	doc, err := newDocument(backend, h, viewport, f)
	if err != nil {
		// No leak of the backend-side resource on this path.
		backend.Free(h)
		return nil, err
	}
	f.AddRef()

	Logger().Debug("created document",
		"backend", backend.Name(), "handle", uint64(h),
		"viewportWidth", viewport.Width, "viewportHeight", viewport.Height)
	return doc, nil
}
