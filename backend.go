package rsvg

import (
	"errors"
	"sync"
)

// Handle is an identifier for a parsed document, meaningful only to the
// backend that issued it. Holders must not interpret or dereference it;
// the issuing backend is the only valid releaser.
type Handle uintptr

// Backend parses and renders SVG documents. The default backend routes
// every operation through the call bridge to the native toolkit; the
// softrender subpackage provides a pure-Go implementation for processes
// where the toolkit is absent.
type Backend interface {
	// Name identifies the backend (e.g. "native", "softrender").
	Name() string

	// Parse turns raw SVG bytes into an opaque handle owned by the backend.
	Parse(data []byte) (Handle, error)

	// Free releases a handle returned by Parse. A zero handle is a no-op.
	Free(h Handle)

	// Render rasterizes the document into the caller-owned target, scaling
	// the logical viewport to the target's pixel dimensions.
	Render(h Handle, target RenderTarget, viewport Size) error
}

var (
	fallbackMu sync.RWMutex
	fallback   Backend
)

// RegisterFallback registers a backend used when the native toolkit cannot
// be loaded. Only one fallback can be registered; subsequent calls replace
// the previous one. Typically called from an init function via blank import:
//
//	import _ "github.com/gogpu/rsvg/softrender"
func RegisterFallback(b Backend) error {
	if b == nil {
		return errors.New("rsvg: fallback backend must not be nil")
	}
	fallbackMu.Lock()
	fallback = b
	fallbackMu.Unlock()
	return nil
}

// FallbackBackend returns the registered fallback backend, or nil if none.
func FallbackBackend() Backend {
	fallbackMu.RLock()
	b := fallback
	fallbackMu.RUnlock()
	return b
}
