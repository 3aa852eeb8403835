package morph

import (
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Hand pose defaults.
const (
	DefaultCurlRate = 12.0 // 1/s
	DefaultFistCurl = 1.35 // radians at the index finger base joint
	DefaultOpenCurl = 0.12
)

// HandPoser smooths every finger joint toward an open or fist pose.
type HandPoser struct {
	Rate     float32
	FistCurl float32
	OpenCurl float32

	fist   [2]bool
	curl   [2][5][2]float32
	target [2][5][2]float32
}

// NewHandPoser creates a poser with relaxed hands.
func NewHandPoser() *HandPoser {
	h := &HandPoser{
		Rate:     DefaultCurlRate,
		FistCurl: DefaultFistCurl,
		OpenCurl: DefaultOpenCurl,
	}
	h.retarget()
	h.curl = h.target
	return h
}

// SetTargets decides which hands should make a fist. The right hand closes
// in combat stance or when holding an item; the left hand closes in combat
// stance or when carrying a shield.
func (h *HandPoser) SetTargets(app appearance.Appearance, combat bool) {
	h.fist[body.Right] = combat || (app.SelectedItem != appearance.NoItem && app.SelectedItem.Known())
	h.fist[body.Left] = combat || app.Equipment.Shield
	h.retarget()
}

func (h *HandPoser) retarget() {
	for side := range h.target {
		for f := range h.target[side] {
			for j := range h.target[side][f] {
				h.target[side][f][j] = h.jointTarget(h.fist[side], f, j)
			}
		}
	}
}

// jointTarget grows with finger index so a fist closes in a slight cascade.
func (h *HandPoser) jointTarget(fist bool, finger, joint int) float32 {
	if !fist {
		return h.OpenCurl * (1 + 0.3*float32(joint))
	}
	if finger == body.Thumb {
		return h.FistCurl * 0.55 * (1 + 0.2*float32(joint))
	}
	return h.FistCurl * (1 + 0.07*float32(finger)) * (1 + 0.2*float32(joint))
}

// Fist reports whether a hand is targeting a fist.
func (h *HandPoser) Fist(s body.Side) bool {
	return h.fist[s]
}

// Curl returns the current curl angle of a joint.
func (h *HandPoser) Curl(s body.Side, finger, joint int) float32 {
	return h.curl[s][finger][joint]
}

// Target returns the curl angle a joint is converging to.
func (h *HandPoser) Target(s body.Side, finger, joint int) float32 {
	return h.target[s][finger][joint]
}

// Step advances every joint toward its target by 1 - e^(-rate*dt) and
// writes the rotations into the registry. p may be nil to only advance.
func (h *HandPoser) Step(p *body.Parts, dt float32) {
	k := math.DampFactor(h.Rate, dt)
	for side := range h.curl {
		for f := range h.curl[side] {
			for j := range h.curl[side][f] {
				c := &h.curl[side][f][j]
				*c += (h.target[side][f][j] - *c) * k
			}
		}
	}
	if p != nil {
		h.apply(p)
	}
}

func (h *HandPoser) apply(p *body.Parts) {
	for _, s := range []body.Side{body.Left, body.Right} {
		fingers := p.Fingers(s)
		for f := range fingers {
			for j, joint := range fingers[f].Joints {
				if joint == nil {
					continue
				}
				c := h.curl[s][f][j]
				// curling folds toward the palm, which faces +Z in hand space
				rot := joint.BaseRotation.Add(math.Vec3{X: -c})
				if f == body.Thumb && j == 0 {
					// the thumb also swings across the palm
					rot = rot.Add(math.Vec3{Y: s.Sign() * c * 0.7, Z: -s.Sign() * c * 0.35})
				}
				joint.Rotation = rot
			}
		}
	}
}
