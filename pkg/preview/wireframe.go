package preview

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DrawMesh draws the wireframe of an indexed triangle mesh. Each vertex is
// projected once, then every triangle's three edges are drawn with the line
// color dimmed by depth so nearer geometry reads brighter. Triangles with an
// unprojectable vertex (behind the eye) are skipped.
func DrawMesh(fb *Framebuffer, cam *Camera, positions []mgl32.Vec3, indices []uint32, model mgl32.Mat4, c Color) {
	mvp := cam.ViewProjection().Mul4(model)

	type projected struct {
		x, y  int
		depth float32
		ok    bool
	}
	screen := make([]projected, len(positions))
	for i, p := range positions {
		clip := mvp.Mul4x1(p.Vec4(1))
		x, y, depth, ok := project(clip, fb.Width, fb.Height)
		screen[i] = projected{x: x, y: y, depth: depth, ok: ok}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, d := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(screen) || int(b) >= len(screen) || int(d) >= len(screen) {
			continue
		}
		pa, pb, pd := screen[a], screen[b], screen[d]
		if !pa.ok || !pb.ok || !pd.ok {
			continue
		}

		drawEdge(fb, pa.x, pa.y, pb.x, pb.y, dim(c, (pa.depth+pb.depth)*0.5))
		drawEdge(fb, pb.x, pb.y, pd.x, pd.y, dim(c, (pb.depth+pd.depth)*0.5))
		drawEdge(fb, pd.x, pd.y, pa.x, pa.y, dim(c, (pd.depth+pa.depth)*0.5))
	}
}

// DrawAxes draws the world axes at the origin: X red, Y green, Z blue.
func DrawAxes(fb *Framebuffer, cam *Camera, length float32) {
	axes := []struct {
		dir mgl32.Vec3
		c   Color
	}{
		{mgl32.Vec3{length, 0, 0}, RGB(220, 60, 60)},
		{mgl32.Vec3{0, length, 0}, RGB(60, 220, 60)},
		{mgl32.Vec3{0, 0, length}, RGB(60, 60, 220)},
	}

	vp := cam.ViewProjection()
	ox, oy, _, ook := project(vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1}), fb.Width, fb.Height)
	if !ook {
		return
	}
	for _, axis := range axes {
		x, y, _, ok := project(vp.Mul4x1(axis.dir.Vec4(1)), fb.Width, fb.Height)
		if ok {
			fb.DrawLine(ox, oy, x, y, axis.c)
		}
	}
}

func drawEdge(fb *Framebuffer, x0, y0, x1, y1 int, c Color) {
	fb.DrawLine(x0, y0, x1, y1, c)
}

// dim scales a color by NDC depth: -1 (near plane) keeps full brightness,
// +1 (far plane) drops to roughly a third.
func dim(c Color, depth float32) Color {
	if depth < -1 {
		depth = -1
	}
	if depth > 1 {
		depth = 1
	}
	f := 1 - (depth+1)*0.325
	return Color{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}
