//go:build !(darwin || freebsd || linux)

package dyld

import "errors"

var errUnsupported = errors.New("dyld: no dynamic loader on this platform")

// Supported reports whether this platform has a dynamic loader the bridge
// can use.
func Supported() bool { return false }

func defaultOpen(string) (uintptr, error)            { return 0, errUnsupported }
func defaultLookup(uintptr, string) (uintptr, error) { return 0, errUnsupported }
func defaultBind(any, uintptr)                       {}
func defaultClose(uintptr) error                     { return nil }
