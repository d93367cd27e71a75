//go:build darwin || freebsd || linux

package bridge

import (
	"runtime"

	"github.com/gogpu/rsvg/internal/dyld"
)

// rsvgLib resolves the parser toolkit. All four entry points are required;
// a library missing any of them is unusable and is closed again.
var rsvgLib = dyld.New(rsvgLibNames(), []dyld.Symbol{
	{Name: "rsvg_handle_new_from_data", Out: &fnRsvgNewFromData},
	{Name: "rsvg_handle_render_document", Out: &fnRsvgRenderDocument},
	{Name: "g_object_unref", Out: &fnGObjectUnref},
	{Name: "g_error_free", Out: &fnGErrorFree},
})

func rsvgLibNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"librsvg-2.2.dylib", "librsvg-2.dylib"}
	}
	return []string{"librsvg-2.so.2", "librsvg-2.so"}
}

func init() {
	loadRsvg = rsvgLib.Ensure
}
