// Package dyld loads native libraries lazily and binds their entry points.
//
// A Library resolves its required symbols all-or-nothing: either every entry
// point is found and bound, or the library is closed again and nothing is
// kept. A failed attempt leaves the Library unloaded, so the next Ensure
// call retries; first use is serialized by a mutex.
package dyld

import (
	"fmt"
	"sync"
)

// Symbol pairs a native entry point name with the Go function variable it is
// bound to. Out must be a pointer to a function variable whose signature
// matches the native calling convention.
type Symbol struct {
	Name string
	Out  any
}

// Library is a lazily loaded native library. Construct with New; the zero
// value is not usable.
type Library struct {
	mu      sync.Mutex
	names   []string
	symbols []Symbol
	handle  uintptr
	loaded  bool

	// Seams for tests. They default to the platform loader (purego on
	// systems with a dynamic loader, stubs elsewhere).
	open   func(name string) (uintptr, error)
	lookup func(handle uintptr, name string) (uintptr, error)
	bind   func(out any, addr uintptr)
	close  func(handle uintptr) error
}

// New describes a library by its candidate runtime names, tried in order,
// and the set of entry points it must expose.
func New(names []string, symbols []Symbol) *Library {
	return &Library{
		names:   names,
		symbols: symbols,
		open:    defaultOpen,
		lookup:  defaultLookup,
		bind:    defaultBind,
		close:   defaultClose,
	}
}

// Ensure loads the library and binds every required symbol. It returns
// immediately when the library is already loaded. On any failure the
// library handle is released and the Library stays unloaded.
func (l *Library) Ensure() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return nil
	}

	var openErr error
	for _, name := range l.names {
		h, err := l.open(name)
		if err == nil && h != 0 {
			l.handle = h
			break
		}
		if err != nil {
			openErr = err
		}
	}
	if l.handle == 0 {
		return fmt.Errorf("dyld: loading %q: %w", l.names[0], openErr)
	}

	for _, sym := range l.symbols {
		addr, err := l.lookup(l.handle, sym.Name)
		if err != nil || addr == 0 {
			_ = l.close(l.handle)
			l.handle = 0
			return fmt.Errorf("dyld: %q: missing symbol %q", l.names[0], sym.Name)
		}
		l.bind(sym.Out, addr)
	}

	l.loaded = true
	return nil
}

// Loaded reports whether a previous Ensure succeeded.
func (l *Library) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
