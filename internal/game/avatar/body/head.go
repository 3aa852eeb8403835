package body

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Eyelid rest angles about X. The lids are dome caps whose pole points up
// (upper) or down (lower); rotating toward the closed angle swings them over
// the front of the eyeball.
const (
	UpperLidOpen   = -0.55
	UpperLidClosed = 0.55
	LowerLidOpen   = math.Pi + 0.65
	LowerLidClosed = math.Pi - 0.1
)

func (b *builder) buildHead() {
	p := b.p
	skin := b.mats.Skin

	p.Head = group(p.Neck, "head", 0, HeadLift, 0)

	cranium := model.Sphere(HeadRadius, 28, 18)
	model.Sculpt(cranium,
		model.Stretch(model.AxisY, 1.12, nil),
		model.Flatten(model.AxisX, 0.1, nil),
		// occipital elongation, back of the skull only
		model.Stretch(model.AxisZ, 1.14, model.Below(model.AxisZ, 0, 0.35)),
		// brow ridge in a vertical band at the front
		model.Bulge(0.01, model.Both(model.Band(model.AxisY, 0.12, 0.38, 0.1), model.Above(model.AxisZ, 0.55, 0.2))),
		// temples
		model.Flatten(model.AxisX, 0.06, model.Band(model.AxisY, 0, 0.4, 0.2)),
	)
	p.Cranium = place(b.solid(p.Head, "cranium", cranium, skin), 0, 0.1, 0)

	jaw := model.Box(0.12, 0.06, 0.1, 3)
	model.Sculpt(jaw, model.Spherize(0.5), model.Taper(model.AxisZ, 1, 0.72), model.Flatten(model.AxisY, 0.15, model.Below(model.AxisY, 0, 0.3)))
	p.Jaw = place(b.solid(p.Head, "jaw", jaw, skin), 0, 0.04, 0.03)

	chin := model.Sphere(0.028, 14, 10)
	model.Sculpt(chin, model.Flatten(model.AxisZ, 0.25, nil))
	p.Chin = place(b.solid(p.Jaw, "chin", chin, skin), 0, -0.028, 0.06)

	maxilla := model.Box(0.07, 0.035, 0.04, 2)
	model.Sculpt(maxilla, model.Spherize(0.6), model.Taper(model.AxisZ, 1, 0.8))
	p.Maxilla = place(b.solid(p.Head, "maxilla", maxilla, skin), 0, 0.075, 0.085)

	nose := rotated(model.Cylinder(0.007, 0.019, 0.045, 10, 2, false), math.Vec3{X: -0.35})
	model.Sculpt(nose, model.Flatten(model.AxisX, 0.25, nil), model.Bulge(0.004, model.Below(model.AxisY, -0.4, 0.3)))
	p.Nose = place(b.solid(p.Head, "nose", nose, skin), 0, 0.112, 0.108)

	p.UpperLip = place(b.solid(p.Head, "upper_lip", lip(0.0085), b.mats.Lips), 0, 0.061, 0.101)
	p.LowerLip = place(b.solid(p.Head, "lower_lip", lip(0.0095), b.mats.Lips), 0, 0.049, 0.098)

	brow := rotated(model.Capsule(0.007, 0.075, 10, 3), math.Vec3{Z: math.Pi / 2})
	model.Sculpt(brow, model.Flatten(model.AxisZ, 0.3, nil), model.Shift(math.Vec3{Z: -0.006}, model.Above(model.AxisX, 0.6, 0.4)), model.Shift(math.Vec3{Z: -0.006}, model.Below(model.AxisX, -0.6, 0.4)))
	p.Brow = place(b.solid(p.Head, "brow", brow, skin), 0, 0.152, 0.1)

	for _, s := range []Side{Left, Right} {
		ear := model.Sphere(0.024, 12, 10)
		// cup the outward face
		cup := model.Hollow(model.AxisX, 0.3, 0)
		if s == Right {
			cup = model.Hollow(model.AxisX, 0, -0.3)
		}
		model.Sculpt(ear, model.Flatten(model.AxisX, 0.6, nil), model.Stretch(model.AxisY, 1.3, nil), cup)
		p.Ears[s] = place(b.solid(p.Head, s.String()+"_ear", ear, skin), s.Sign()*0.108, 0.105, -0.005)
	}

	for _, s := range []Side{Left, Right} {
		b.buildEye(s)
	}

	brain := model.Sphere(0.085, 20, 14)
	model.Sculpt(brain,
		model.Stretch(model.AxisZ, 1.15, nil),
		model.Flatten(model.AxisY, 0.12, model.Below(model.AxisY, 0, 0.3)),
		model.Flatten(model.AxisX, 0.08, model.Band(model.AxisX, -0.15, 0.15, 0.15)),
	)
	p.Brain = place(b.solid(p.Head, "brain", brain, b.mats.Lips), 0, 0.12, -0.005)
	p.Brain.Visible = b.app.BrainVisible

	if hair := hairMesh(b.app.HairStyle); hair != nil {
		p.Hair = place(b.solid(p.Head, "hair", hair, b.mats.Hair), 0, 0.1, -0.004)
	}

	p.HeadMount = group(p.Head, "head_mount", 0, 0.1, 0)
	p.FaceMount = group(p.Head, "face_mount", 0, 0.09, 0.11)

	p.HeadSolids = []*scenegraph.Node{p.Cranium, p.Jaw, p.Chin, p.Maxilla, p.Nose, p.UpperLip, p.LowerLip, p.Brow, p.Ears[Left], p.Ears[Right]}
	p.HeadSolids = append(p.HeadSolids, p.Eyelids[:]...)
	if p.Brain != nil {
		p.HeadSolids = append(p.HeadSolids, p.Brain)
	}
}

func lip(radius float32) *model.Mesh {
	m := rotated(model.Capsule(radius, 0.03, 12, 3), math.Vec3{Z: math.Pi / 2})
	model.Sculpt(m, model.Flatten(model.AxisY, 0.2, model.Above(model.AxisX, 0.5, 0.5)), model.Flatten(model.AxisY, 0.2, model.Below(model.AxisX, -0.5, 0.5)))
	return m
}

func (b *builder) buildEye(s Side) {
	p := b.p
	root := group(p.Head, s.String()+"_eye", s.Sign()*0.036, 0.128, 0.084)

	p.EyeBalls[s] = place(b.solid(root, "eyeball", model.Sphere(0.016, 16, 12), b.mats.Sclera), 0, 0, 0)

	iris := rotated(model.Cylinder(0.0085, 0.0085, 0.0015, 16, 1, false), math.Vec3{X: math.Pi / 2})
	p.Irises[s] = place(b.solid(root, "iris", iris, b.mats.Eye), 0, 0, 0.0152)

	pupil := rotated(model.Cylinder(0.0035, 0.0035, 0.001, 12, 1, false), math.Vec3{X: math.Pi / 2})
	p.Pupils[s] = place(b.solid(p.Irises[s], "pupil", pupil, b.mats.Eye), 0, 0, 0.0009)

	upper := model.SphereSection(0.0172, 16, 6, 0, math.Pi*0.46)
	lid := b.solid(root, "upper_eyelid", upper, b.mats.Skin)
	lid.Rotation.X = UpperLidOpen
	p.Eyelids[int(s)*2] = lid.MarkBase()

	lower := model.SphereSection(0.0170, 16, 5, 0, math.Pi*0.4)
	lid = b.solid(root, "lower_eyelid", lower, b.mats.Skin)
	lid.Rotation.X = LowerLidOpen
	p.Eyelids[int(s)*2+1] = lid.MarkBase()
}

// hairMesh returns the hair cap for a style, or nil when bald.
func hairMesh(style appearance.HairStyle) *model.Mesh {
	switch style {
	case appearance.ShortHair:
		m := model.SphereSection(HeadRadius*1.08, 28, 12, 0, math.Pi*0.56)
		model.Sculpt(m,
			model.Stretch(model.AxisY, 1.12, nil),
			model.Stretch(model.AxisZ, 1.14, model.Below(model.AxisZ, 0, 0.35)),
			model.Shift(math.Vec3{Y: 0.012}, model.Above(model.AxisZ, 0.5, 0.3)),
		)
		return m
	case appearance.LongHair:
		m := model.SphereSection(HeadRadius*1.1, 28, 16, 0, math.Pi*0.78)
		model.Sculpt(m,
			model.Stretch(model.AxisY, 1.12, model.Above(model.AxisY, 0, 0.2)),
			// the back falls toward the shoulders
			model.Stretch(model.AxisY, 2.2, model.Both(model.Below(model.AxisY, 0, 0.3), model.Below(model.AxisZ, 0.2, 0.4))),
			model.Stretch(model.AxisZ, 1.14, model.Below(model.AxisZ, 0, 0.35)),
			model.Shift(math.Vec3{Y: 0.03}, model.Above(model.AxisZ, 0.5, 0.3)),
		)
		return m
	default:
		return nil
	}
}
