package bridge

import (
	"runtime"
	"unsafe"
)

// createHandle parses the document bytes through librsvg. The parser
// library is loaded on demand; the renderer is not needed here.
func createHandle(args unsafe.Pointer) Status {
	p := (*CreateParams)(args)
	p.Handle = 0

	if err := loadRsvg(); err != nil {
		logger().Warn("svg parser library unavailable", "err", err)
		return StatusNotSupported
	}

	gerr := new(uintptr)
	h := fnRsvgNewFromData(p.Data, p.Size, uintptr(unsafe.Pointer(gerr)))
	runtime.KeepAlive(gerr)
	if h == 0 {
		if *gerr != 0 {
			fnGErrorFree(*gerr)
		}
		logger().Warn("native parser rejected document", "size", p.Size)
		return StatusUnsuccessful
	}

	logger().Debug("created native handle", "handle", h, "size", p.Size)
	p.Handle = h
	return StatusSuccess
}

// freeHandle releases a parsed handle. A zero handle, or a handle freed
// after the library binding was never established, is a no-op.
func freeHandle(args unsafe.Pointer) Status {
	p := (*FreeParams)(args)

	if p.Handle != 0 && fnGObjectUnref != nil {
		fnGObjectUnref(p.Handle)
	}
	return StatusSuccess
}
