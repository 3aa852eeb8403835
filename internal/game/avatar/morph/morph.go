// Package morph reshapes the built body by rewriting node transforms.
// Geometry is never regenerated: every value is derived from the appearance
// and the base transforms recorded at build time, so Apply is idempotent.
package morph

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Epsilon guards the inverse compensation: a parent scale product smaller
// than this is treated as 1.
const Epsilon = 1e-6

// Gender holds the multipliers that differ between body types.
type Gender struct {
	TorsoWidth float32
	Shoulders  float32
	Hips       float32
	LegSpacing float32
}

// GenderFactors returns the multipliers for a body type.
func GenderFactors(t appearance.BodyType) Gender {
	if t == appearance.Female {
		return Gender{TorsoWidth: 0.92, Shoulders: 0.9, Hips: 1.12, LegSpacing: 1.1}
	}
	return Gender{TorsoWidth: 1, Shoulders: 1, Hips: 1, LegSpacing: 1}
}

// Compensate returns a child scale that cancels the parent's scale, so the
// child's absolute size is size on every axis. Near-zero parent factors are
// replaced by 1.
func Compensate(size float32, parent math.Vec3) math.Vec3 {
	return math.Vec3{
		X: math.SafeDiv(size, parent.X, Epsilon),
		Y: math.SafeDiv(size, parent.Y, Epsilon),
		Z: math.SafeDiv(size, parent.Z, Epsilon),
	}
}

// TorsoScale is the torso container scale for an appearance.
func TorsoScale(app appearance.Appearance) math.Vec3 {
	w := app.TorsoWidth * GenderFactors(app.BodyType).TorsoWidth
	return math.Vec3{X: w, Y: app.TorsoHeight, Z: w}
}

// Apply re-applies every proportion of app to the registry.
func Apply(p *body.Parts, app appearance.Appearance) {
	g := GenderFactors(app.BodyType)
	female := app.BodyType == appearance.Female

	torso := TorsoScale(app)
	p.TorsoContainer.Scale = torso
	// keep the feet on the ground as the legs scale
	p.TorsoContainer.Position = p.TorsoContainer.BasePosition.Mul(math.Vec3{X: 1, Y: app.LegScale, Z: 1})

	if p.ShoulderCap != nil {
		s := app.ShoulderScale * g.Shoulders
		p.ShoulderCap.Scale = p.ShoulderCap.BaseScale.Mul(math.Vec3{X: s, Y: 1, Z: s})
	}
	if p.Pelvis != nil {
		h := app.HipScale * g.Hips
		p.Pelvis.Scale = math.Vec3{X: h, Y: 1, Z: h}
	}

	applyChest(p, app, female)
	applyLimbs(p, app, g, torso)
	applyHead(p, app, torso)
	applyFace(p, app)
	applyFeet(p, app)
}

func applyChest(p *body.Parts, app appearance.Appearance, female bool) {
	if p.MaleChest != nil {
		p.MaleChest.Visible = !female
		p.MaleChest.Scale = math.Splat(app.ChestScale)
	}
	if p.FemaleChest != nil {
		p.FemaleChest.Visible = female
		p.FemaleChest.Scale = math.Splat(app.ChestScale)
	}
	for _, cheek := range p.ButtockCheeks {
		if cheek.Node == nil {
			continue
		}
		cheek.Node.Visible = female
		if female {
			cheek.Node.Scale = cheek.Node.BaseScale.Scale(app.ButtScale)
		} else {
			cheek.Node.Scale = cheek.Node.BaseScale
		}
	}
	for _, pad := range p.AbPads {
		if pad == nil {
			continue
		}
		pad.Position, pad.Scale = body.AbPlacement(pad, app.AbsDefinition)
	}
}

func applyLimbs(p *body.Parts, app appearance.Appearance, g Gender, torso math.Vec3) {
	arm := Compensate(app.ArmScale, torso)
	leg := Compensate(app.LegScale, torso)
	for _, s := range []body.Side{body.Left, body.Right} {
		if n := p.Arms[s]; n != nil {
			n.Scale = arm
		}
		if n := p.Hands[s]; n != nil {
			n.Scale = math.Splat(app.HandScale)
		}
		if n := p.Thenars[s]; n != nil {
			n.Scale = n.BaseScale.Mul(math.Vec3{X: 1, Y: 1, Z: app.HandScale})
		}
		if n := p.Thighs[s]; n != nil {
			n.Scale = leg
			n.Position = n.BasePosition.Mul(math.Vec3{X: g.LegSpacing * app.HipScale, Y: 1, Z: 1})
		}
	}
}

func applyHead(p *body.Parts, app appearance.Appearance, torso math.Vec3) {
	if p.Neck != nil {
		p.Neck.Scale = math.Vec3{X: app.NeckThickness, Y: app.NeckHeight, Z: app.NeckThickness}
	}
	if p.Head != nil {
		parent := torso.Mul(math.Vec3{X: app.NeckThickness, Y: app.NeckHeight, Z: app.NeckThickness})
		p.Head.Scale = Compensate(app.HeadScale, parent)
	}
	if p.Brain != nil {
		p.Brain.Visible = app.BrainVisible
		p.Brain.Scale = math.Splat(app.BrainSize)
	}
}

// forward converts a unitless forward slider to meters.
const forward = 0.02

func applyFace(p *body.Parts, app appearance.Appearance) {
	set(p.Chin, math.Splat(app.ChinScale), math.Vec3{Z: app.ChinForward * forward})
	set(p.Jaw, math.Vec3{X: 1, Y: app.JawHeight, Z: app.JawLength}, math.Vec3{Z: app.JawForward * forward})
	set(p.Maxilla, math.Splat(app.MaxillaScale), math.Vec3{Z: app.MaxillaForward * forward})
	set(p.Nose, math.Vec3{X: 1, Y: app.NoseHeight, Z: 1}, math.Vec3{Z: app.NoseForward * forward * 0.75})
	setLip(p.UpperLip, app.UpperLip)
	setLip(p.LowerLip, app.LowerLip)

	for s := range p.EyeBalls {
		if ball := p.EyeBalls[s]; ball != nil && ball.Parent != nil {
			ball.Parent.Scale = math.Splat(app.EyeScale)
		}
		if iris := p.Irises[s]; iris != nil {
			iris.Scale = math.Vec3{X: app.IrisScale, Y: app.IrisScale, Z: 1}
		}
		if pupil := p.Pupils[s]; pupil != nil {
			pupil.Scale = math.Vec3{X: app.PupilScale, Y: app.PupilScale, Z: 1}
		}
	}
}

func setLip(n *scenegraph.Node, l appearance.Lip) {
	set(n, math.Vec3{X: l.Width, Y: l.Height, Z: l.Thickness}, math.Vec3{Z: l.Forward * forward * 0.5})
}

// set scales n relative to its base and offsets it from its base position.
// Missing parts are skipped.
func set(n *scenegraph.Node, scale, offset math.Vec3) {
	if n == nil {
		return
	}
	n.Scale = n.BaseScale.Mul(scale)
	n.Position = n.BasePosition.Add(offset)
}

func applyFeet(p *body.Parts, app appearance.Appearance) {
	for s := range p.HeelGroups {
		set(p.HeelGroups[s], math.Splat(app.HeelScale), math.Vec3{Y: app.HeelHeight * forward})
		if fore := p.ForefootGroups[s]; fore != nil {
			set(fore, math.Vec3{X: app.ForefootWidth, Y: 1, Z: app.ForefootLength},
				math.Vec3{Z: (app.ForefootLength - 1) * 0.03})
		}
	}
	for i := range p.ToeUnits {
		toe := &p.ToeUnits[i]
		if toe.Node == nil {
			continue
		}
		toe.Node.Position.X = toe.InitialX * app.ToeSpread
	}
}
