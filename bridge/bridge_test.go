package bridge

import (
	"errors"
	"testing"
	"unsafe"
)

// fakeToolkit rebinds every native entry point to in-memory fakes and
// records the calls, standing in for the loader's resource accounting.
type fakeToolkit struct {
	// librsvg
	parseResult  uintptr
	parseGErr    uintptr
	parsed       []uint64 // sizes passed to the parser
	unrefs       []uintptr
	gerrFrees    []uintptr
	renders      int
	renderHandle uintptr
	renderCr     uintptr
	renderRect   rsvgRectangle

	// cairo
	surfaceResult   uintptr
	crResult        uintptr
	surfaceArgs     []int32 // format, width, height, stride
	surfacePixels   uintptr
	scaleX, scaleY  float64
	scaled          int
	crDestroys      []uintptr
	surfaceDestroys []uintptr

	// teardown ordering and FPU accounting
	events    []string
	fpuResets int
}

// install replaces the bridge's loaders and bindings for the duration of
// the test, simulating both libraries as present.
func (f *fakeToolkit) install(t *testing.T) {
	t.Helper()
	saveBindings(t)

	loadRsvg = func() error { return nil }
	loadCairo = func() error { return nil }

	fnRsvgNewFromData = func(_ uintptr, size uint64, gerr uintptr) uintptr {
		f.parsed = append(f.parsed, size)
		if f.parseResult == 0 && gerr != 0 {
			*(*uintptr)(unsafe.Pointer(gerr)) = f.parseGErr
		}
		return f.parseResult
	}
	fnRsvgRenderDocument = func(handle, cr, viewport, _ uintptr) {
		f.renders++
		f.renderHandle = handle
		f.renderCr = cr
		f.renderRect = *(*rsvgRectangle)(unsafe.Pointer(viewport))
		f.events = append(f.events, "render")
	}
	fnGObjectUnref = func(obj uintptr) { f.unrefs = append(f.unrefs, obj) }
	fnGErrorFree = func(gerr uintptr) { f.gerrFrees = append(f.gerrFrees, gerr) }

	fnCairoImageSurfaceCreateForData = func(data uintptr, format, width, height, stride int32) uintptr {
		f.surfacePixels = data
		f.surfaceArgs = []int32{format, width, height, stride}
		f.events = append(f.events, "surface create")
		return f.surfaceResult
	}
	fnCairoCreate = func(surface uintptr) uintptr {
		f.events = append(f.events, "context create")
		return f.crResult
	}
	fnCairoDestroy = func(cr uintptr) {
		f.crDestroys = append(f.crDestroys, cr)
		f.events = append(f.events, "context destroy")
	}
	fnCairoSurfaceDestroy = func(surface uintptr) {
		f.surfaceDestroys = append(f.surfaceDestroys, surface)
		f.events = append(f.events, "surface destroy")
	}
	fnCairoScale = func(_ uintptr, sx, sy float64) {
		f.scaled++
		f.scaleX, f.scaleY = sx, sy
		f.events = append(f.events, "scale")
	}

	resetFPU = func() {
		f.fpuResets++
		f.events = append(f.events, "fpu reset")
	}
}

// installAbsent simulates both native libraries failing to load.
func (f *fakeToolkit) installAbsent(t *testing.T) {
	t.Helper()
	saveBindings(t)

	errAbsent := errors.New("simulated absence")
	loadRsvg = func() error { return errAbsent }
	loadCairo = func() error { return errAbsent }

	// Any native call in this state is a test failure.
	fnRsvgNewFromData = func(uintptr, uint64, uintptr) uintptr {
		t.Error("parser invoked while library absent")
		return 0
	}
	fnCairoImageSurfaceCreateForData = func(uintptr, int32, int32, int32, int32) uintptr {
		t.Error("surface created while library absent")
		return 0
	}
	resetFPU = func() { f.fpuResets++ }
}

func saveBindings(t *testing.T) {
	t.Helper()
	savedRsvg, savedCairo := loadRsvg, loadCairo
	s1, s2, s3, s4 := fnRsvgNewFromData, fnRsvgRenderDocument, fnGObjectUnref, fnGErrorFree
	c1, c2, c3, c4, c5 := fnCairoImageSurfaceCreateForData, fnCairoCreate,
		fnCairoDestroy, fnCairoSurfaceDestroy, fnCairoScale
	savedFPU := resetFPU
	t.Cleanup(func() {
		loadRsvg, loadCairo = savedRsvg, savedCairo
		fnRsvgNewFromData, fnRsvgRenderDocument, fnGObjectUnref, fnGErrorFree = s1, s2, s3, s4
		fnCairoImageSurfaceCreateForData, fnCairoCreate = c1, c2
		fnCairoDestroy, fnCairoSurfaceDestroy, fnCairoScale = c3, c4, c5
		resetFPU = savedFPU
	})
}

func TestCallRejectsUnknownOpcode(t *testing.T) {
	if got := Call(opcodeCount, nil); got != StatusInvalidParameter {
		t.Errorf("Call(out-of-range) = %v, want %v", got, StatusInvalidParameter)
	}
	if got := Call(Opcode(999), nil); got != StatusInvalidParameter {
		t.Errorf("Call(999) = %v, want %v", got, StatusInvalidParameter)
	}
}

// TestOpcodeContract pins the opcode values: the table order is shared with
// the other side of the boundary and reordering is a breaking change.
func TestOpcodeContract(t *testing.T) {
	if OpCreateHandle != 0 || OpFreeHandle != 1 || OpRender != 2 {
		t.Fatalf("opcode values changed: create=%d free=%d render=%d",
			OpCreateHandle, OpFreeHandle, OpRender)
	}
	for op := Opcode(0); op < opcodeCount; op++ {
		if handlers[op] == nil {
			t.Errorf("opcode %d has no handler", op)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusSuccess:          "success",
		StatusInvalidParameter: "invalid parameter",
		StatusNotSupported:     "not supported",
		StatusUnsuccessful:     "unsuccessful",
		Status(42):             "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", uint32(s), got, want)
		}
	}
}
