//go:build darwin || freebsd || linux

package dyld

import "github.com/ebitengine/purego"

// Supported reports whether this platform has a dynamic loader the bridge
// can use.
func Supported() bool { return true }

func defaultOpen(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func defaultLookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func defaultBind(out any, addr uintptr) {
	purego.RegisterFunc(out, addr)
}

func defaultClose(handle uintptr) error {
	return purego.Dlclose(handle)
}
