package cvboot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
)

var (
	BootColor       = color.RGBA{R: 0x00, G: 0xd4, B: 0xff, A: 0xff}
	BackgroundColor = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
)

const (
	fieldOfView  = 45 // degrees
	nearPlane    = 0.1
	farPlane     = 2000
	ambientLight = 0.6
)

// Polygon is a projected, shaded triangle in screen pixels.
type Polygon struct {
	X, Y  [3]float32
	Depth float64
	Color color.RGBA
}

// Renderer draws a mesh with flat shading and the painter's algorithm.
// Both sides of every triangle are drawn.
type Renderer struct {
	Width, Height int
	Camera        *OrbitCamera
	Spin          float64 // model rotation about Y in radians
	Color         color.RGBA
	Background    color.RGBA
}

func NewRenderer(width, height int, cam *OrbitCamera) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		Camera:     cam,
		Color:      BootColor,
		Background: BackgroundColor,
	}
}

type projected struct {
	screen mgl64.Vec2
	eye    mgl64.Vec3
	behind bool
}

func (r *Renderer) projectVertices(m *Mesh) []projected {
	aspect := float64(r.Width) / float64(r.Height)
	proj := mgl64.Perspective(mgl64.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
	modelView := r.Camera.View().Mul4(mgl64.HomogRotate3DY(r.Spin))

	out := make([]projected, len(m.Vertices))
	for i, v := range m.Vertices {
		eye := modelView.Mul4x1(vec64(v).Vec4(1))
		clip := proj.Mul4x1(eye)
		if clip.W() <= nearPlane {
			out[i].behind = true
			continue
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		out[i] = projected{
			screen: mgl64.Vec2{
				(ndc.X() + 1) / 2 * float64(r.Width),
				(1 - ndc.Y()) / 2 * float64(r.Height),
			},
			eye: eye.Vec3(),
		}
	}
	return out
}

// shade scales the base colour by ambient light plus a headlight term.
func (r *Renderer) shade(a, b, c mgl64.Vec3) color.RGBA {
	n := b.Sub(a).Cross(c.Sub(a))
	centre := a.Add(b).Add(c).Mul(1.0 / 3)

	diffuse := 0.0
	if n.Len() > 0 && centre.Len() > 0 {
		diffuse = math.Abs(n.Normalize().Dot(centre.Normalize()))
	}
	brightness := ambientLight + diffuse*(1-ambientLight)

	return color.RGBA{
		R: uint8(clamp(float64(r.Color.R)*brightness, 0, 255)),
		G: uint8(clamp(float64(r.Color.G)*brightness, 0, 255)),
		B: uint8(clamp(float64(r.Color.B)*brightness, 0, 255)),
		A: 255,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Project returns the visible triangles of m sorted far to near.
func (r *Renderer) Project(m *Mesh) []Polygon {
	verts := r.projectVertices(m)

	polys := make([]Polygon, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		pa, pb, pc := verts[m.Indices[3*i]], verts[m.Indices[3*i+1]], verts[m.Indices[3*i+2]]
		if pa.behind || pb.behind || pc.behind {
			continue
		}
		polys = append(polys, Polygon{
			X:     [3]float32{float32(pa.screen[0]), float32(pb.screen[0]), float32(pc.screen[0])},
			Y:     [3]float32{float32(pa.screen[1]), float32(pb.screen[1]), float32(pc.screen[1])},
			Depth: -(pa.eye.Z() + pb.eye.Z() + pc.eye.Z()) / 3,
			Color: r.shade(pa.eye, pb.eye, pc.eye),
		})
	}

	sort.Slice(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
	return polys
}

// RenderImage rasterises m into a new image.
func (r *Renderer) RenderImage(m *Mesh) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(1, 1)
	for _, p := range r.Project(m) {
		box := polygonBounds(p).Intersect(img.Bounds())
		if box.Empty() {
			continue
		}
		ox, oy := float32(box.Min.X), float32(box.Min.Y)

		z.Reset(box.Dx(), box.Dy())
		z.DrawOp = draw.Over
		z.MoveTo(p.X[0]-ox, p.Y[0]-oy)
		z.LineTo(p.X[1]-ox, p.Y[1]-oy)
		z.LineTo(p.X[2]-ox, p.Y[2]-oy)
		z.ClosePath()
		z.Draw(img, box, image.NewUniform(p.Color), image.Point{})
	}
	return img
}

func polygonBounds(p Polygon) image.Rectangle {
	minX := math.Floor(float64(min(p.X[0], p.X[1], p.X[2])))
	minY := math.Floor(float64(min(p.Y[0], p.Y[1], p.Y[2])))
	maxX := math.Ceil(float64(max(p.X[0], p.X[1], p.X[2])))
	maxY := math.Ceil(float64(max(p.Y[0], p.Y[1], p.Y[2])))
	return image.Rect(int(minX), int(minY), int(maxX)+1, int(maxY)+1)
}

// WritePNG renders m and encodes the result as PNG.
func (r *Renderer) WritePNG(w io.Writer, m *Mesh) error {
	return png.Encode(w, r.RenderImage(m))
}
