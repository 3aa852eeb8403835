// Package hair simulates secondary hair motion from the head's transform
// history. The result is a small uniform bag the renderer's hair shader
// reads; no geometry is touched.
package hair

import (
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Params tunes the simulation.
type Params struct {
	MaxInertia      float32 // clamp on the inertia vector length
	LinearGain      float32
	CentrifugalGain float32
	SpringRate      float32 // 1/s, inertia damping toward the target
	SpeedRate       float32 // 1/s, slower smoothing of the speed scalar
	MaxLinearSpeed  float32 // m/s above which motion counts as a teleport
	MaxAngularSpeed float32 // rad/s above which a turn counts as a snap
	Gravity         math.Vec3
}

// DefaultParams returns the tuned defaults.
func DefaultParams() Params {
	return Params{
		MaxInertia:      0.35,
		LinearGain:      0.06,
		CentrifugalGain: 0.12,
		SpringRate:      8,
		SpeedRate:       2.5,
		MaxLinearSpeed:  25,
		MaxAngularSpeed: 25,
		Gravity:         math.Vec3{Y: -0.04},
	}
}

// Uniforms is the per-draw parameter bag of the hair solid.
type Uniforms struct {
	Inertia math.Vec3 // head-local
	Gravity math.Vec3 // head-local
	Speed   float32
}

// Sim is the hair simulation state of one avatar.
type Sim struct {
	params Params

	seeded  bool
	prevPos math.Vec3
	prevRot math.Quat
	inertia math.Vec3
	speed   float32
}

// New creates a simulation that seeds on its first update.
func New(params Params) *Sim {
	return &Sim{params: params}
}

// Params returns the simulation parameters.
func (s *Sim) Params() Params {
	return s.params
}

// Reset forgets the transform history. The next update seeds again and
// produces no motion.
func (s *Sim) Reset() {
	s.seeded = false
	s.inertia = math.Zero3
	s.speed = 0
}

// Uniforms returns the current output without advancing.
func (s *Sim) Uniforms() Uniforms {
	return Uniforms{Inertia: s.inertia, Gravity: s.params.Gravity, Speed: s.speed}
}

// Update advances the simulation by dt seconds given the head's world
// transform and the character's root velocity. The two are summed, so
// rootVel must only carry motion the head position does not already show:
// pass zero when the owner moves the avatar root node itself. dt <= 0 leaves
// the state untouched.
func (s *Sim) Update(dt float32, headPos math.Vec3, headRot math.Quat, rootVel math.Vec3) Uniforms {
	if dt <= 0 {
		return s.Uniforms()
	}
	headRot = headRot.Normalize()
	if !s.seeded {
		s.prevPos = headPos
		s.prevRot = headRot
		s.seeded = true
		return s.Uniforms()
	}
	p := s.params

	linear := headPos.Sub(s.prevPos).Scale(1 / dt).Add(rootVel)
	if !linear.IsFinite() || linear.Length() > p.MaxLinearSpeed {
		linear = math.Zero3
	}

	delta := headRot.Mul(s.prevRot.Inverse())
	angular := delta.YawAngle() / dt
	if spin := (math.Vec3{Y: angular}); !spin.IsFinite() || math.Abs(angular) > p.MaxAngularSpeed {
		angular = 0
	}

	s.prevPos = headPos
	s.prevRot = headRot

	// Hair trails the motion and swings outward when the head turns.
	forward := headRot.Rotate(math.UnitZ)
	swing := math.Vec3{Y: angular}.Cross(forward)
	target := linear.Scale(-p.LinearGain).Add(swing.Scale(p.CentrifugalGain))
	target = target.ClampLength(p.MaxInertia)
	target = headRot.Inverse().Rotate(target)

	s.inertia = s.inertia.Add(target.Sub(s.inertia).Scale(math.DampFactor(p.SpringRate, dt)))
	s.inertia = s.inertia.ClampLength(p.MaxInertia)

	motion := linear.Length() + math.Abs(angular)*0.1
	s.speed += (motion - s.speed) * math.DampFactor(p.SpeedRate, dt)

	return s.Uniforms()
}
