// Package softrender provides a pure-Go fallback backend for rsvg, built on
// oksvg and rasterx. It is used in processes where the native toolkit
// cannot be loaded.
//
// Register it with a blank import:
//
//	import _ "github.com/gogpu/rsvg/softrender"
//
// The fallback applies the same validation as the native render pipeline
// and writes the same premultiplied BGRA (cairo ARGB32) pixel layout, so
// callers see one format regardless of which backend rendered. Unlike the
// native pipeline it replaces the target rectangle instead of compositing
// over existing content. Feature coverage is whatever oksvg supports.
package softrender

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/gogpu/rsvg"
)

func init() {
	if err := rsvg.RegisterFallback(New()); err != nil {
		panic(err)
	}
}

// maxScale mirrors the render pipeline's scale band.
const maxScale = 1000.0

// Renderer rasterizes SVG documents in-process. Handles it issues are
// synthetic and resolve to parsed icons in its own table.
type Renderer struct {
	mu    sync.Mutex
	next  rsvg.Handle
	icons map[rsvg.Handle]*oksvg.SvgIcon
}

// New creates an empty renderer.
func New() *Renderer {
	return &Renderer{icons: make(map[rsvg.Handle]*oksvg.SvgIcon)}
}

// Name implements rsvg.Backend.
func (r *Renderer) Name() string { return "softrender" }

// Parse implements rsvg.Backend.
func (r *Renderer) Parse(data []byte) (rsvg.Handle, error) {
	if len(data) == 0 {
		return 0, rsvg.ErrInvalidParameter
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", rsvg.ErrParseFailed, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.icons[r.next] = icon
	return r.next, nil
}

// Free implements rsvg.Backend. A zero or unknown handle is a no-op.
func (r *Renderer) Free(h rsvg.Handle) {
	r.mu.Lock()
	delete(r.icons, h)
	r.mu.Unlock()
}

func (r *Renderer) icon(h rsvg.Handle) *oksvg.SvgIcon {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.icons[h]
}

// Render implements rsvg.Backend. Validation mirrors the native pipeline's
// order; a rejected request leaves the buffer unmodified.
func (r *Renderer) Render(h rsvg.Handle, t rsvg.RenderTarget, viewport rsvg.Size) error {
	icon := r.icon(h)
	if icon == nil || len(t.Pixels) == 0 {
		return rsvg.ErrInvalidParameter
	}
	if viewport.Width <= 0.01 && viewport.Height <= 0.01 {
		return rsvg.ErrInvalidParameter
	}
	if t.Width == 0 || t.Height == 0 || t.Stride == 0 {
		return rsvg.ErrInvalidParameter
	}
	scaleX := float64(t.Width) / viewport.Width
	scaleY := float64(t.Height) / viewport.Height
	if scaleX <= 0 || scaleX > maxScale || scaleY <= 0 || scaleY > maxScale {
		return rsvg.ErrInvalidParameter
	}
	// image.RGBA rows are 4 bytes per pixel; a tighter stride cannot alias
	// the caller's buffer. Widened so Width*4 cannot wrap in uint32.
	if uint64(t.Stride) < uint64(t.Width)*4 {
		return rsvg.ErrInvalidParameter
	}
	if need := uint64(t.Stride) * uint64(t.Height); uint64(len(t.Pixels)) < need {
		return rsvg.ErrInvalidParameter
	}

	width, height := int(t.Width), int(t.Height)
	tmp := image.NewRGBA(image.Rect(0, 0, width, height))

	// rasterx panics on some malformed path data; contain it so a bad
	// document reports a render failure the way a native one would.
	if err := rasterize(icon, tmp, width, height); err != nil {
		return err
	}

	dst := &image.RGBA{
		Pix:    t.Pixels,
		Stride: int(t.Stride),
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Copy(dst, image.Point{}, tmp, tmp.Bounds(), draw.Src, nil)
	premultiplyBGRA(dst)
	return nil
}

func rasterize(icon *oksvg.SvgIcon, dst *image.RGBA, width, height int) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", rsvg.ErrRenderFailed, rec)
		}
	}()
	icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return nil
}

// premultiplyBGRA converts the target in place from non-premultiplied RGBA
// to the premultiplied BGRA layout cairo's ARGB32 surfaces produce on
// little-endian machines, so both backends hand callers the same format.
func premultiplyBGRA(img *image.RGBA) {
	b := img.Rect
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			cr := uint32(row[x])
			cg := uint32(row[x+1])
			cb := uint32(row[x+2])
			ca := uint32(row[x+3])
			row[x+0] = uint8(cb * ca / 255)
			row[x+1] = uint8(cg * ca / 255)
			row[x+2] = uint8(cr * ca / 255)
			row[x+3] = uint8(ca)
		}
	}
}
