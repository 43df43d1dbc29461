package preview

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective look-at camera used for wireframe projection.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	FOV    float32 // vertical field of view in radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// NewCamera creates a camera looking at the origin from +Z.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 0, 5},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FOV:      mgl32.DegToRad(60),
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      100,
	}
}

// ViewProjection returns the combined projection * view matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Position, c.Target, c.Up)
	return proj.Mul4(view)
}

// project maps a clip-space point to pixel coordinates. ok is false for
// points at or behind the eye plane, which cannot be projected.
func project(clip mgl32.Vec4, width, height int) (x, y int, depth float32, ok bool) {
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	inv := 1 / clip.W()
	ndcX := clip.X() * inv
	ndcY := clip.Y() * inv
	depth = clip.Z() * inv

	x = int((ndcX + 1) * 0.5 * float32(width))
	y = int((1 - ndcY) * 0.5 * float32(height))
	return x, y, depth, true
}
