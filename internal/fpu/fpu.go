// Package fpu resets the floating-point unit's exception and control state.
//
// The native rendering toolkit's transcendental math (x87 fsin and friends)
// can leave a sticky pending-exception flag behind. A thread that later
// unmasks that exception class would take a spurious fault, so the render
// pipeline resets the FPU state after every call into the toolkit.
package fpu
