// pkg/physics/collision.go
package physics

import (
	"github.com/EngoEngine/math"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-asteroids/pkg/random"
)

// BounceInset is how far inside the boundary a bounced body is placed
const BounceInset float32 = 1.0

// Viewport is the visible area in world units, centred on the origin
type Viewport struct {
	Width  float32
	Height float32
}

// Half returns the half extents of the viewport
func (v Viewport) Half() (float32, float32) {
	return v.Width / 2, v.Height / 2
}

// Empty reports whether either dimension is non-positive
func (v Viewport) Empty() bool {
	return !(v.Width > 0) || !(v.Height > 0)
}

// EdgePolicy selects what happens when a body leaves the viewport
type EdgePolicy int

const (
	// EdgeBounce reflects the body back inside the half extents
	EdgeBounce EdgePolicy = iota
	// EdgeDespawn removes the body once it is a full extent past the centre
	EdgeDespawn
)

// String returns the policy name
func (p EdgePolicy) String() string {
	switch p {
	case EdgeBounce:
		return "bounce"
	case EdgeDespawn:
		return "despawn"
	default:
		return "unknown"
	}
}

// BounceResult reports which axes bounced
type BounceResult struct {
	X bool
	Y bool
}

// Any reports whether at least one axis bounced
func (r BounceResult) Any() bool {
	return r.X || r.Y
}

// Bounce keeps b inside the half extents of vp. Each axis is checked on its
// own: the velocity component is negated, the position is clamped to
// sign(p)·(half − BounceInset), and the spin is redrawn from [-2π, 2π).
// Axes with a non-positive extent are ignored.
func Bounce(b *Body, vp Viewport, spin random.Sampler) BounceResult {
	halfW, halfH := vp.Half()
	var res BounceResult

	if halfW > 0 && math.Abs(b.Position[0]) > halfW {
		b.Velocity.X = -b.Velocity.X
		b.Position[0] = Signum(b.Position[0]) * (halfW - BounceInset)
		respin(b, spin)
		res.X = true
	}

	if halfH > 0 && math.Abs(b.Position[1]) > halfH {
		b.Velocity.Y = -b.Velocity.Y
		b.Position[1] = Signum(b.Position[1]) * (halfH - BounceInset)
		respin(b, spin)
		res.Y = true
	}

	return res
}

func respin(b *Body, spin random.Sampler) {
	if r, ok := spin.Uniform(-2*math.Pi, 2*math.Pi); ok {
		b.Velocity.R = r
	}
}

// OutOfBounds reports whether pos lies beyond the full viewport extent on
// either axis. Bodies are allowed a full screen of travel off the visible
// area before they are considered stray. Axes with a non-positive extent are ignored.
func OutOfBounds(pos mgl32.Vec3, vp Viewport) bool {
	return (vp.Width > 0 && math.Abs(pos[0]) > vp.Width) ||
		(vp.Height > 0 && math.Abs(pos[1]) > vp.Height)
}

// WithinBox reports whether every axis of a and b, depth included, differs
// by at most extent. This is a coarse box check rather than a radius test.
func WithinBox(a, b mgl32.Vec3, extent float32) bool {
	d := AbsDiff(a, b)
	return d[0] <= extent && d[1] <= extent && d[2] <= extent
}
