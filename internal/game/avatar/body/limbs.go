package body

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// fingerLengths are the two joint lengths of index, middle, ring and pinky.
var fingerLengths = [4][2]float32{
	{0.027, 0.021},
	{0.030, 0.023},
	{0.028, 0.021},
	{0.022, 0.017},
}

var thumbLengths = [2]float32{0.024, 0.02}

const (
	fingerRadius = 0.0085
	thumbRadius  = 0.0095
)

// FingerLength returns the length of one finger segment.
func FingerLength(finger, joint int) float32 {
	if finger == Thumb {
		return thumbLengths[joint]
	}
	return fingerLengths[finger][joint]
}

// HandMountRotation orients a hand mount so its +Y runs through the fist
// (grip axis) and its +Z faces the knuckles.
func HandMountRotation(s Side) math.Vec3 {
	return math.Vec3{X: math.Pi / 2, Z: -s.Sign() * math.Pi / 2}
}

func (b *builder) buildArm(s Side) {
	p := b.p
	skin := b.mats.Skin
	name := s.String()

	arm := group(p.TorsoContainer, name+"_arm", s.Sign()*ShoulderOffset, ShoulderHeight, 0)
	arm.Rotation.Z = s.Sign() * 0.08
	p.Arms[s] = arm.MarkBase()

	b.solid(arm, "shoulder_joint", model.Sphere(ArmRadius*1.05, 12, 8), skin)
	upper := model.Cylinder(ArmRadius, ArmRadius*0.82, UpperArmLength, 14, 6, true)
	model.Sculpt(upper, model.Bulge(0.006, model.Both(model.Band(model.AxisY, -0.3, 0.5, 0.3), model.Above(model.AxisZ, -0.2, 0.4))))
	place(b.solid(arm, "upper_arm", upper, skin), 0, -UpperArmLength/2, 0)

	forearm := group(arm, name+"_forearm", 0, -UpperArmLength, 0)
	p.Forearms[s] = forearm
	b.solid(forearm, "elbow", model.Sphere(ArmRadius*0.84, 12, 8), skin)
	fore := model.Cylinder(ForearmRadius, ForearmRadius*0.72, ForearmLength, 14, 6, true)
	model.Sculpt(fore, model.Bulge(0.005, model.Band(model.AxisY, 0.1, 0.8, 0.3)), model.Flatten(model.AxisZ, 0.15, nil))
	place(b.solid(forearm, "forearm_solid", fore, skin), 0, -ForearmLength/2, 0)

	if s == Left {
		mount := group(forearm, "shield_mount", ForearmRadius+0.012, -ForearmLength*0.45, 0)
		mount.Rotation.Y = math.Pi / 2
		p.ShieldMount = mount.MarkBase()
	}

	b.buildHand(s, forearm)
}

func (b *builder) buildHand(s Side, forearm *scenegraph.Node) {
	p := b.p
	skin := b.mats.Skin
	thumbSide := s.Sign()

	hand := group(forearm, s.String()+"_hand", 0, -ForearmLength, 0)
	// palms face the body
	hand.Rotation.Y = -s.Sign() * math.Pi / 2
	p.Hands[s] = hand.MarkBase()

	palm := model.Box(0.075, PalmLength, 0.028, 3)
	model.Sculpt(palm,
		model.Spherize(0.35),
		model.Hollow(model.AxisZ, 0.25, 0.12),
		model.Taper(model.AxisY, 0.9, 1),
	)
	p.Palms[s] = place(b.solid(hand, "palm", palm, skin), 0, -PalmLength/2, 0)

	fingers := p.Fingers(s)
	for i, lengths := range fingerLengths {
		x := thumbSide * (0.026 - float32(i)*0.0175)
		fingers[i] = b.buildFinger(hand, x, -PalmLength, 0, lengths, fingerRadius)
	}
	thumb := b.buildFinger(hand, thumbSide*0.036, -0.026, 0.012, thumbLengths, thumbRadius)
	thumb.Joints[0].Rotation.Z = thumbSide * 0.55
	thumb.Joints[0].MarkBase()
	fingers[Thumb] = thumb

	thenar := model.Sphere(0.02, 12, 8)
	model.Sculpt(thenar, model.Flatten(model.AxisZ, 0.45, nil), model.Stretch(model.AxisY, 1.3, nil))
	p.Thenars[s] = place(b.solid(hand, "thenar", thenar, skin), thumbSide*0.022, -0.036, 0.012)

	mount := group(hand, s.String()+"_hand_mount", 0, -PalmLength*0.85, 0.02)
	mount.Rotation = HandMountRotation(s)
	p.HandMounts[s] = mount.MarkBase()
}

func (b *builder) buildFinger(hand *scenegraph.Node, x, y, z float32, lengths [2]float32, radius float32) Finger {
	var f Finger
	parent := hand
	for j, length := range lengths {
		joint := group(parent, "finger_joint", x, y, z)
		seg := model.Capsule(radius*(1-0.1*float32(j)), length, 8, 2)
		model.Sculpt(seg, model.Flatten(model.AxisZ, 0.15, nil))
		place(b.solid(joint, "phalanx", seg, b.mats.Skin), 0, -length/2-radius, 0)
		f.Joints[j] = joint
		parent = joint
		x, y, z = 0, -(length + radius*1.4), 0
	}
	return f
}

func (b *builder) buildLeg(s Side) {
	p := b.p
	skin := b.mats.Skin
	name := s.String()

	thigh := group(p.TorsoContainer, name+"_thigh", s.Sign()*LegSpacing, 0, 0)
	p.Thighs[s] = thigh
	b.solid(thigh, "hip_joint", model.Sphere(ThighRadius, 14, 10), skin)
	upper := model.Cylinder(ThighRadius, ThighRadius*0.7, ThighLength, 16, 6, true)
	model.Sculpt(upper, model.Bulge(0.008, model.Both(model.Band(model.AxisY, -0.2, 0.6, 0.3), model.Above(model.AxisZ, -0.3, 0.4))))
	place(b.solid(thigh, "thigh_solid", upper, skin), 0, -ThighLength/2, 0)

	shin := group(thigh, name+"_shin", 0, -ThighLength, 0)
	p.Shins[s] = shin
	b.solid(shin, "knee", model.Sphere(ShinRadius*1.02, 12, 8), skin)
	lower := model.Cylinder(ShinRadius, ShinRadius*0.62, ShinLength, 14, 6, true)
	// calf
	model.Sculpt(lower, model.Bulge(0.01, model.Both(model.Band(model.AxisY, 0.05, 0.6, 0.3), model.Below(model.AxisZ, 0, 0.4))))
	place(b.solid(shin, "shin_solid", lower, skin), 0, -ShinLength/2, 0)

	ankle := group(shin, name+"_ankle", 0, -ShinLength, 0)
	p.Ankles[s] = ankle

	b.buildBareFoot(s, ankle)
}

func (b *builder) buildBareFoot(s Side, ankle *scenegraph.Node) {
	p := b.p
	skin := b.mats.Skin

	foot := group(ankle, s.String()+"_bare_foot", 0, 0, 0)
	p.BareFeet[s] = foot
	b.solid(foot, "ankle_knob", model.Sphere(ShinRadius*0.7, 10, 8), skin)

	heel := group(foot, "heel", 0, -0.035, -0.02)
	heelMesh := model.Box(0.06, 0.055, 0.075, 2)
	model.Sculpt(heelMesh, model.Spherize(0.55))
	b.solid(heel, "heel_solid", heelMesh, skin)
	p.HeelGroups[s] = heel

	fore := group(foot, "forefoot", 0, -0.047, 0.065)
	foreMesh := model.Box(0.08, 0.04, 0.1, 3)
	model.Sculpt(foreMesh,
		model.Spherize(0.45),
		model.Taper(model.AxisZ, 1, 0.8),
		model.Flatten(model.AxisY, 0.35, model.Above(model.AxisZ, 0.2, 0.5)),
	)
	b.solid(fore, "forefoot_solid", foreMesh, skin)
	p.ForefootGroups[s] = fore

	toes := p.Toes(s)
	for k := range toes {
		// big toe on the medial side
		x := -s.Sign() * (0.026 - float32(k)*0.013)
		radius := float32(0.0095)
		if k > 0 {
			radius = 0.0068 - float32(k)*0.0004
		}
		toe := group(fore, "toe", x, -0.004, 0.05)
		seg := rotated(model.Capsule(radius, 0.01, 8, 2), math.Vec3{X: math.Pi / 2})
		place(b.solid(toe, "toe_solid", seg, skin), 0, 0, 0.012)
		toes[k] = Toe{Node: toe, InitialX: x}
	}
}
