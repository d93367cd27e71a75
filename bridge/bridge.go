package bridge

import (
	"unsafe"

	"github.com/gogpu/rsvg/internal/dyld"
)

// Opcode identifies one operation crossing the call boundary. Opcode values
// are a fixed contract: new operations are appended before opcodeCount and
// existing values are never reordered.
type Opcode uint32

const (
	// OpCreateHandle parses raw SVG bytes into an opaque native handle.
	OpCreateHandle Opcode = iota

	// OpFreeHandle releases a handle returned by OpCreateHandle.
	OpFreeHandle

	// OpRender rasterizes a parsed document into a caller-owned pixel buffer.
	OpRender

	opcodeCount // must stay last
)

// Status is the result of a dispatched call.
type Status uint32

const (
	// StatusSuccess indicates the operation completed.
	StatusSuccess Status = iota

	// StatusInvalidParameter indicates a parameter block failed validation.
	StatusInvalidParameter

	// StatusNotSupported indicates a required native library or entry point
	// could not be loaded.
	StatusNotSupported

	// StatusUnsuccessful indicates the native toolkit rejected the call.
	StatusUnsuccessful
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidParameter:
		return "invalid parameter"
	case StatusNotSupported:
		return "not supported"
	case StatusUnsuccessful:
		return "unsuccessful"
	default:
		return "unknown"
	}
}

// CreateParams is the parameter block for OpCreateHandle.
type CreateParams struct {
	Data   uintptr // in: first byte of the SVG document
	Size   uint64  // in: document length in bytes
	Handle uintptr // out: opaque native handle, zero on failure
}

// FreeParams is the parameter block for OpFreeHandle.
type FreeParams struct {
	Handle uintptr // in: handle to release; zero is a no-op
}

// RenderParams is the parameter block for OpRender. Pixels must stay valid
// for the duration of the call and hold at least Stride*Height bytes.
type RenderParams struct {
	Handle    uintptr // in: opaque native handle
	Pixels    uintptr // in: first byte of the caller-owned pixel buffer
	SVGWidth  float64 // in: logical viewport width
	SVGHeight float64 // in: logical viewport height
	Width     uint32  // in: bitmap width in pixels
	Height    uint32  // in: bitmap height in pixels
	Stride    uint32  // in: bytes per bitmap row
}

type handlerFunc func(args unsafe.Pointer) Status

// handlers ties each opcode to its handler. The indexed literal makes the
// tag-to-handler mapping explicit and checked at build time; adding an
// operation means adding an opcode above and a matching entry here.
var handlers = [opcodeCount]handlerFunc{
	OpCreateHandle: createHandle,
	OpFreeHandle:   freeHandle,
	OpRender:       render,
}

// Call dispatches one operation across the boundary. It is a pure
// indirection layer: beyond the opcode range check it validates nothing,
// and each handler reinterprets args as its own parameter block.
func Call(op Opcode, args unsafe.Pointer) Status {
	if op >= opcodeCount {
		return StatusInvalidParameter
	}
	return handlers[op](args)
}

// Available reports whether this process has a native call mechanism at
// all. When false, no operation can ever succeed and callers should fail
// before doing any I/O.
func Available() bool {
	return dyld.Supported()
}
