package morph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
)

// Blink timing in seconds.
const (
	BlinkClose    = 0.07
	BlinkOpen     = 0.12
	BlinkInterval = 4.2
)

// Blinker closes and reopens the eyelids. Closure runs 0 (open) to 1
// (closed) through two eased tweens.
type Blinker struct {
	// Interval triggers a blink automatically every Interval seconds of
	// Step time. Zero disables automatic blinking.
	Interval float32

	closing *gween.Tween
	opening *gween.Tween
	closure float32
	idle    float32
}

// NewBlinker creates a blinker with automatic blinking.
func NewBlinker() *Blinker {
	return &Blinker{Interval: BlinkInterval}
}

// Trigger starts a blink unless one is running.
func (b *Blinker) Trigger() {
	if b.Blinking() {
		return
	}
	b.closing = gween.New(0, 1, BlinkClose, ease.InQuad)
	b.opening = gween.New(1, 0, BlinkOpen, ease.OutQuad)
	b.idle = 0
}

// Blinking reports whether a blink is in progress.
func (b *Blinker) Blinking() bool {
	return b.closing != nil || b.opening != nil
}

// Closure returns the current lid closure in [0,1].
func (b *Blinker) Closure() float32 {
	return b.closure
}

// Step advances the blink and writes eyelid rotations. p may be nil.
func (b *Blinker) Step(p *body.Parts, dt float32) {
	if dt <= 0 {
		return
	}
	if !b.Blinking() && b.Interval > 0 {
		b.idle += dt
		if b.idle >= b.Interval {
			b.Trigger()
		}
	}
	switch {
	case b.closing != nil:
		v, done := b.closing.Update(dt)
		b.closure = v
		if done {
			b.closing = nil
		}
	case b.opening != nil:
		v, done := b.opening.Update(dt)
		b.closure = v
		if done {
			b.opening = nil
			b.closure = 0
		}
	}
	if p != nil {
		b.apply(p)
	}
}

func (b *Blinker) apply(p *body.Parts) {
	for _, s := range []body.Side{body.Left, body.Right} {
		if lid := p.UpperEyelid(s); lid != nil {
			lid.Rotation.X = lid.BaseRotation.X + (body.UpperLidClosed-body.UpperLidOpen)*b.closure
		}
		if lid := p.LowerEyelid(s); lid != nil {
			lid.Rotation.X = lid.BaseRotation.X + (body.LowerLidClosed-body.LowerLidOpen)*b.closure
		}
	}
}
