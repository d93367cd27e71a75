//go:build !amd64

package fpu

// Reset is a no-op on architectures without x87 state.
func Reset() {}
