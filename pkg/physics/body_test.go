// pkg/physics/body_test.go
package physics

import (
	"testing"

	"github.com/EngoEngine/math"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_ZeroDeltaIsNoop(t *testing.T) {
	b := Body{
		Position:     mgl32.Vec3{10, -5, 3},
		Rotation:     0.5,
		Velocity:     Motion{X: 20, Y: -30, R: 1},
		Acceleration: Motion{X: 50, Y: 50, R: 1},
	}
	before := b

	Integrate(&b, 0, DefaultDrag())

	assert.Equal(t, before, b)
}

func TestIntegrate_IdleBodyAtRest(t *testing.T) {
	var b Body

	Integrate(&b, 1.0, DefaultDrag())

	assert.Equal(t, Motion{}, b.Velocity)
	assert.Equal(t, Motion{}, b.Acceleration)
	assert.Equal(t, mgl32.Vec3{}, b.Position)
}

func TestIntegrate_AccelerationThenPosition(t *testing.T) {
	b := Body{Acceleration: Motion{X: 10, Y: -20}}

	Integrate(&b, 0.5, Drag{})

	assert.Equal(t, float32(5), b.Velocity.X)
	assert.Equal(t, float32(-10), b.Velocity.Y)
	assert.Equal(t, float32(2.5), b.Position[0])
	assert.Equal(t, float32(-5), b.Position[1])
}

func TestIntegrate_DragBeforePosition(t *testing.T) {
	b := Body{Velocity: Motion{X: 100}}

	Integrate(&b, 1, Drag{Linear: 0.001})

	// 100 - 100*100*0.001 = 90, then x += 90
	assert.InDelta(t, 90, b.Velocity.X, 1e-4)
	assert.InDelta(t, 90, b.Position[0], 1e-4)
}

func TestIntegrate_LeavesDepthAlone(t *testing.T) {
	b := Body{Position: mgl32.Vec3{0, 0, 7}, Velocity: Motion{X: 3, Y: 4}}

	Integrate(&b, 1, DefaultDrag())

	assert.Equal(t, float32(7), b.Position[2])
}

func TestIntegrate_AngularVelocityWrapsAtFullTurn(t *testing.T) {
	b := Body{Velocity: Motion{R: 6}, Acceleration: Motion{R: 1}}

	Integrate(&b, 1, Drag{})

	assert.InDelta(t, 7-2*math.Pi, b.Velocity.R, 1e-5)
}

func TestIntegrate_RotationStaysNormalized(t *testing.T) {
	b := Body{Rotation: 3, Velocity: Motion{R: 1}}

	for i := 0; i < 50; i++ {
		Integrate(&b, 0.1, Drag{})
		require.GreaterOrEqual(t, b.Rotation, float32(-math.Pi))
		require.Less(t, b.Rotation, float32(math.Pi))
	}
}

func TestIntegrate_Deterministic(t *testing.T) {
	run := func() Body {
		b := Body{Velocity: Motion{X: 37, Y: -12, R: 2}, Acceleration: Motion{X: 4, Y: 9, R: 0.3}}
		for _, dt := range []float32{0.016, 0.017, 0.5, 0.001, 0.033} {
			Integrate(&b, dt, DefaultDrag())
		}
		return b
	}

	assert.Equal(t, run(), run())
}

func TestApplyDrag_MonotoneWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		k    float32
		dt   float32
	}{
		{"positive_small_dt", 250, LinearDrag, 0.016},
		{"negative_small_dt", -250, LinearDrag, 0.016},
		{"positive_huge_dt", 250, LinearDrag, 100},
		{"negative_huge_dt", -1e4, LinearDrag, 1},
		{"angular", 6, AngularDrag, 0.5},
		{"angular_negative", -6, AngularDrag, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v
			sign := Signum(v)
			for i := 0; i < 1000; i++ {
				next := dragAxis(v, tt.k, tt.dt)
				require.LessOrEqual(t, math.Abs(next), math.Abs(v))
				if next != 0 {
					require.Equal(t, sign, Signum(next), "drag flipped sign")
				}
				v = next
			}
		})
	}
}

func TestApplyDrag_StrictlyDecreasesNonZero(t *testing.T) {
	v := Motion{X: 100, Y: -50, R: 2}

	ApplyDrag(&v, 0.1, DefaultDrag())

	assert.Less(t, v.X, float32(100))
	assert.Greater(t, v.X, float32(0))
	assert.Greater(t, v.Y, float32(-50))
	assert.Less(t, v.Y, float32(0))
	assert.Less(t, v.R, float32(2))
}

func TestApplyDrag_OvershootLandsOnZero(t *testing.T) {
	v := Motion{X: 5000, Y: -5000, R: 100}

	ApplyDrag(&v, 1, DefaultDrag())

	assert.Equal(t, Motion{}, v)
}

func TestApplyDrag_ZeroStaysZero(t *testing.T) {
	var v Motion

	ApplyDrag(&v, 10, DefaultDrag())

	assert.True(t, v.IsZero())
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"zero", 0, 0},
		{"inside", 1, 1},
		{"pi_maps_to_minus_pi", math.Pi, -math.Pi},
		{"over_full_turn", 2*math.Pi + 0.5, 0.5},
		{"negative", -math.Pi - 0.5, math.Pi - 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WrapAngle(tt.in), 1e-5)
		})
	}
}
