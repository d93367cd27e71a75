//go:build amd64

package fpu

// Reset reinitializes the x87 FPU, clearing any pending exception flags and
// restoring the default control word. SSE state (MXCSR) is untouched; the
// toolkit's sticky flags live in the x87 status word.
func Reset() {
	fninit()
}

// fninit executes the FNINIT instruction. Implemented in fpu_amd64.s.
func fninit()
