package rsvg

import (
	"runtime"
	"unsafe"

	"github.com/gogpu/rsvg/bridge"
)

// nativeBackend implements Backend on top of the call bridge. It holds no
// state of its own: handles are owned by the native toolkit and all
// lazy-loading state lives behind the bridge.
type nativeBackend struct{}

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) Parse(data []byte) (Handle, error) {
	if len(data) == 0 {
		return 0, ErrInvalidParameter
	}
	params := bridge.CreateParams{
		Data: uintptr(unsafe.Pointer(&data[0])),
		Size: uint64(len(data)),
	}
	status := bridge.Call(bridge.OpCreateHandle, unsafe.Pointer(&params))
	runtime.KeepAlive(data)
	if status != bridge.StatusSuccess {
		return 0, statusErr(status, ErrParseFailed)
	}
	return Handle(params.Handle), nil
}

func (nativeBackend) Free(h Handle) {
	if h == 0 {
		return
	}
	params := bridge.FreeParams{Handle: uintptr(h)}
	bridge.Call(bridge.OpFreeHandle, unsafe.Pointer(&params))
}

func (nativeBackend) Render(h Handle, t RenderTarget, viewport Size) error {
	var pixels uintptr
	if len(t.Pixels) > 0 {
		pixels = uintptr(unsafe.Pointer(&t.Pixels[0]))
	}
	params := bridge.RenderParams{
		Handle:    uintptr(h),
		Pixels:    pixels,
		SVGWidth:  viewport.Width,
		SVGHeight: viewport.Height,
		Width:     t.Width,
		Height:    t.Height,
		Stride:    t.Stride,
	}
	status := bridge.Call(bridge.OpRender, unsafe.Pointer(&params))
	runtime.KeepAlive(t.Pixels)
	return statusErr(status, ErrRenderFailed)
}
