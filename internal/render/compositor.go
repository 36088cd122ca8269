//go:build ebiten

package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Mecca-Research/interactive-kaleidoscope/internal/kaleido"
)

// CompositeFrame stamps the rendered wedge around the circle: each segment
// is the same bitmap rotated into place, with every other segment mirrored
// across its own axis so neighboring edges line up. One curve evaluation
// per frame, segments cheap image copies.
func CompositeFrame(dst, wedge *ebiten.Image, segments int, rotation float64, cx, cy float64) {
	if dst == nil || wedge == nil || segments < 1 {
		return
	}

	span := kaleido.WedgeSpan(segments)
	half := float64(wedge.Bounds().Dx()) / 2

	for i := 0; i < segments; i++ {
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(-half, -half)
		if i%2 == 1 {
			op.GeoM.Scale(1, -1)
		}
		op.GeoM.Rotate(math.Mod(rotation+float64(i)*span, 2*math.Pi))
		op.GeoM.Translate(cx, cy)
		dst.DrawImage(wedge, op)
	}
}
