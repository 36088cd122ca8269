//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Mecca-Research/interactive-kaleidoscope/internal/kaleido"
)

// Stroked triangles sample the middle of a small white image so edge texels
// do not bleed (the trick from ebiten's vector examples).
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

const maskArcSteps = 64

// WedgeRenderer strokes the harmonic curve for a single wedge into an
// offscreen buffer that the compositor stamps around the circle. The buffer
// and its sector mask are reallocated only when the device radius or the
// wedge span changes; the pixels are repainted from scratch every frame.
type WedgeRenderer struct {
	img  *ebiten.Image
	mask *ebiten.Image

	size     int
	halfSpan float64

	vs []ebiten.Vertex
	is []uint16
}

// NewWedgeRenderer constructs an empty renderer; buffers are allocated
// lazily on the first Render call.
func NewWedgeRenderer() *WedgeRenderer { return &WedgeRenderer{} }

// Render paints the wedge and returns the buffer, or nil when there is
// nothing to draw. radius is in device pixels, halfSpan the wedge's angular
// half-width. The wedge apex sits at the buffer center, opening along +x.
func (w *WedgeRenderer) Render(cache *kaleido.Cache, ph kaleido.FramePhases, colors []color.RGBA, radius, halfSpan float64) *ebiten.Image {
	if cache == nil || cache.Len() == 0 || len(colors) == 0 || radius < 1 || halfSpan <= 0 {
		return nil
	}

	w.ensure(int(math.Ceil(radius)), halfSpan)
	w.img.Clear()

	apex := float64(w.size) / 2
	width := float32(math.Max(1.1, radius*0.0035))
	runs := colorRuns(cache.T, len(colors))

	for ci, col := range colors {
		var path vector.Path
		empty := true
		for _, run := range runs {
			if run.color != ci {
				continue
			}
			for j := run.start; j <= run.end; j++ {
				r := cache.Radial(j, ph) * radius
				x := float32(apex + cache.CosAngle[j]*r)
				y := float32(apex + cache.SinAngle[j]*r)
				if j == run.start {
					path.MoveTo(x, y)
				} else {
					path.LineTo(x, y)
				}
			}
			empty = false
		}
		if empty {
			continue
		}

		w.vs, w.is = path.AppendVerticesAndIndicesForStroke(w.vs[:0], w.is[:0], &vector.StrokeOptions{
			Width:    width,
			LineCap:  vector.LineCapRound,
			LineJoin: vector.LineJoinRound,
		})
		cr := float32(col.R) / 0xff
		cg := float32(col.G) / 0xff
		cb := float32(col.B) / 0xff
		ca := float32(col.A) / 0xff
		for i := range w.vs {
			w.vs[i].SrcX = 1
			w.vs[i].SrcY = 1
			w.vs[i].ColorR = cr
			w.vs[i].ColorG = cg
			w.vs[i].ColorB = cb
			w.vs[i].ColorA = ca
		}
		w.img.DrawTriangles(w.vs, w.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}

	// Clip everything outside the sector.
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendDestinationIn
	w.img.DrawImage(w.mask, op)
	return w.img
}

// Size returns the side of the square wedge buffer in device pixels.
func (w *WedgeRenderer) Size() int { return w.size }

func (w *WedgeRenderer) ensure(radius int, halfSpan float64) {
	size := 2 * radius
	if w.img != nil && w.size == size && w.halfSpan == halfSpan {
		return
	}
	w.size = size
	w.halfSpan = halfSpan
	if w.img != nil {
		w.img.Deallocate()
		w.mask.Deallocate()
	}
	w.img = ebiten.NewImage(size, size)
	w.mask = ebiten.NewImage(size, size)
	w.buildMask(halfSpan)
}

// buildMask fills the sector as a white triangle fan; the arc radius runs
// slightly past the buffer edge so the clip never shaves the outermost
// stroke.
func (w *WedgeRenderer) buildMask(halfSpan float64) {
	apex := float32(w.size) / 2
	reach := float64(w.size) * 0.75

	vs := make([]ebiten.Vertex, 0, maskArcSteps+2)
	is := make([]uint16, 0, maskArcSteps*3)
	push := func(x, y float32) {
		vs = append(vs, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}

	push(apex, apex)
	for i := 0; i <= maskArcSteps; i++ {
		ang := -halfSpan + 2*halfSpan*float64(i)/maskArcSteps
		push(apex+float32(math.Cos(ang)*reach), apex+float32(math.Sin(ang)*reach))
	}
	for i := 0; i < maskArcSteps; i++ {
		is = append(is, 0, uint16(i+1), uint16(i+2))
	}

	w.mask.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
