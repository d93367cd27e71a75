package rsvg

import (
	"errors"

	"github.com/gogpu/rsvg/bridge"
)

// Failure taxonomy. Every error returned by this package wraps exactly one
// of these sentinels; match with errors.Is.
var (
	// ErrBridgeUnavailable indicates the process has no native call
	// mechanism and no fallback backend is registered. Reported before any
	// I/O happens.
	ErrBridgeUnavailable = errors.New("rsvg: native call bridge unavailable")

	// ErrLibraryUnavailable indicates a required native library or entry
	// point failed to resolve. The load is retried on the next call.
	ErrLibraryUnavailable = errors.New("rsvg: native library unavailable")

	// ErrReadSource indicates the source byte stream could not be read.
	ErrReadSource = errors.New("rsvg: reading source stream failed")

	// ErrParseFailed indicates the parser rejected the document bytes.
	ErrParseFailed = errors.New("rsvg: parser rejected document")

	// ErrInvalidParameter indicates caller-supplied geometry, dimensions or
	// buffers failed validation. The operation did not occur.
	ErrInvalidParameter = errors.New("rsvg: invalid parameter")

	// ErrRenderFailed indicates the native render call or its surface and
	// context construction failed. Pixel buffer contents are unspecified.
	ErrRenderFailed = errors.New("rsvg: rendering failed")
)

// statusErr maps a bridge status to the package taxonomy. unsuccessful maps
// to the operation-specific sentinel passed by the caller.
func statusErr(s bridge.Status, unsuccessful error) error {
	switch s {
	case bridge.StatusSuccess:
		return nil
	case bridge.StatusInvalidParameter:
		return ErrInvalidParameter
	case bridge.StatusNotSupported:
		return ErrLibraryUnavailable
	default:
		return unsuccessful
	}
}
