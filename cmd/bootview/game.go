package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/cvboot"
)

const (
	autoRotateStep = 0.005 // radians per frame
	wheelStep      = 100   // one wheel notch in zoom units
)

type Game struct {
	params   cvboot.Params
	mesh     *cvboot.Mesh
	renderer *cvboot.Renderer
	batcher  PolygonBatcher

	autoRotate   bool
	dragging     bool
	lastX, lastY int

	reload  <-chan cvboot.Params
	saveTo  string
	message string
}

func NewGame(p cvboot.Params, width, height int, reload <-chan cvboot.Params, saveTo string) *Game {
	slog.Info("building boot mesh")
	g := &Game{
		params:     p,
		mesh:       cvboot.BuildMesh(p),
		renderer:   cvboot.NewRenderer(width, height, cvboot.NewOrbitCamera(p.BootLength)),
		autoRotate: true,
		reload:     reload,
		saveTo:     saveTo,
	}
	return g
}

func (g *Game) setParams(p cvboot.Params) {
	g.params = p
	g.mesh = cvboot.BuildMesh(p)
	g.renderer.Camera.Target[1] = p.BootLength / 2
	g.message = "parameters reloaded"
}

func (g *Game) save() {
	file, err := os.Create(g.saveTo)
	if err != nil {
		g.message = err.Error()
		return
	}
	defer file.Close()
	if err := cvboot.WriteASCII(file, g.mesh, cvboot.DefaultSolidName); err != nil {
		g.message = err.Error()
		return
	}
	g.message = "saved " + g.saveTo
	slog.Info("saved mesh", "path", g.saveTo)
}

func (g *Game) Update() error {
	select {
	case p := <-g.reload:
		g.setParams(p)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.autoRotate = !g.autoRotate
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.renderer.Camera.Drag(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.renderer.Camera.Zoom(-dy * wheelStep)
	}

	if g.autoRotate && !g.dragging {
		g.renderer.Spin += autoRotateStep
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Background)
	g.batcher.Draw(screen, g.renderer.Project(g.mesh))

	state := "OFF"
	if g.autoRotate {
		state = "ON"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Auto-rotate %s (R)  Drag to rotate  Scroll to zoom  S to save\n%d triangles  %s",
		state, g.mesh.TriangleCount(), g.message))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.renderer.Width, g.renderer.Height = outsideWidth, outsideHeight
	}
	return g.renderer.Width, g.renderer.Height
}
