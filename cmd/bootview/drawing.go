package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/cvboot"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// maxBatchVertices keeps indices within uint16.
const maxBatchVertices = 1<<16 - 1

// PolygonBatcher collects solid triangles and draws them with as few
// DrawTriangles calls as the uint16 index limit allows.
type PolygonBatcher struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *PolygonBatcher) AddPolygon(p cvboot.Polygon) {
	cr := float32(p.Color.R) / 255.0
	cg := float32(p.Color.G) / 255.0
	cb := float32(p.Color.B) / 255.0
	ca := float32(p.Color.A) / 255.0

	base := uint16(len(b.vertices))
	for i := 0; i < 3; i++ {
		b.vertices = append(b.vertices, ebiten.Vertex{
			DstX:   p.X[i],
			DstY:   p.Y[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	b.indices = append(b.indices, base, base+1, base+2)
}

// Draw paints every polygon in the order added.
func (b *PolygonBatcher) Draw(screen *ebiten.Image, polys []cvboot.Polygon) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for _, p := range polys {
		if len(b.vertices)+3 > maxBatchVertices {
			screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
			b.vertices, b.indices = b.vertices[:0], b.indices[:0]
		}
		b.AddPolygon(p)
	}
	if len(b.vertices) > 0 {
		screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	}
	b.vertices, b.indices = b.vertices[:0], b.indices[:0]
}
