//go:build darwin || freebsd || linux

package bridge

import (
	"runtime"

	"github.com/gogpu/rsvg/internal/dyld"
)

// cairoLib resolves the rendering toolkit, independently of rsvgLib. A
// render call needs both; a create call needs only the parser.
var cairoLib = dyld.New(cairoLibNames(), []dyld.Symbol{
	{Name: "cairo_image_surface_create_for_data", Out: &fnCairoImageSurfaceCreateForData},
	{Name: "cairo_create", Out: &fnCairoCreate},
	{Name: "cairo_destroy", Out: &fnCairoDestroy},
	{Name: "cairo_surface_destroy", Out: &fnCairoSurfaceDestroy},
	{Name: "cairo_scale", Out: &fnCairoScale},
})

func cairoLibNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libcairo.2.dylib", "libcairo.dylib"}
	}
	return []string{"libcairo.so.2", "libcairo.so"}
}

func init() {
	loadCairo = cairoLib.Ensure
}
