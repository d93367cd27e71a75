// Package bridge is the call boundary between the rsvg API and the native
// vector-graphics toolkit (librsvg for parsing, cairo for the drawing
// surface).
//
// Every operation crosses the boundary through Call with an opcode and one
// parameter block; the opcode-to-handler table is a fixed contract and new
// operations are appended, never reordered. The native libraries are opened
// lazily on first use and their entry points resolved all-or-nothing; a
// failed load is retried on the next call.
//
// The bridge performs the render pipeline's validation and teardown itself:
// a cairo surface aliasing the caller's pixel buffer, a drawing context, a
// non-uniform scale, the document render call, then ordered cleanup and an
// unconditional FPU state reset.
package bridge
