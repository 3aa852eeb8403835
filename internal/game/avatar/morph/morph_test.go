package morph

import (
	"testing"

	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

const eps = 1e-5

func build(t *testing.T, app appearance.Appearance) *body.Parts {
	t.Helper()
	mats := materials.NewSet(app, materials.Options{EyeSize: 8})
	return body.Build(app, mats, scenegraph.NewArena())
}

func TestArmCompensation(t *testing.T) {
	tests := []struct {
		name   string
		body   appearance.BodyType
		width  float32
		height float32
		arm    float32
		wantXZ float32
		wantY  float32
	}{
		{name: "neutral", body: appearance.Male, width: 1, height: 1, arm: 1, wantXZ: 1, wantY: 1},
		{name: "wide torso", body: appearance.Male, width: 2, height: 1, arm: 1, wantXZ: 0.5, wantY: 1},
		{name: "tall torso long arms", body: appearance.Male, width: 1, height: 1.25, arm: 1.5, wantXZ: 1.5, wantY: 1.2},
		{name: "female width multiplier", body: appearance.Female, width: 1, height: 1, arm: 0.92, wantXZ: 1, wantY: 0.92},
		{name: "zero width", body: appearance.Male, width: 0, height: 1, arm: 0.8, wantXZ: 0.8, wantY: 0.8},
		{name: "zero height", body: appearance.Male, width: 1, height: 0, arm: 1.1, wantXZ: 1.1, wantY: 1.1},
		{name: "near zero height", body: appearance.Male, width: 1, height: 1e-8, arm: 2, wantXZ: 2, wantY: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appearance.Default(tt.body)
			app.TorsoWidth = tt.width
			app.TorsoHeight = tt.height
			app.ArmScale = tt.arm
			p := build(t, app)
			Apply(p, app)

			for _, s := range []body.Side{body.Left, body.Right} {
				got := p.Arms[s].Scale
				want := math.Vec3{X: tt.wantXZ, Y: tt.wantY, Z: tt.wantXZ}
				if !got.ApproxEqual(want, eps) {
					t.Errorf("%s arm scale = %v, want %v", s, got, want)
				}
				if !got.IsFinite() {
					t.Errorf("%s arm scale is not finite: %v", s, got)
				}
			}
		})
	}
}

func TestLimbAbsoluteSize(t *testing.T) {
	for _, width := range []float32{0.6, 1, 1.7} {
		for _, height := range []float32{0.7, 1, 1.4} {
			app := appearance.Default(appearance.Female)
			app.TorsoWidth = width
			app.TorsoHeight = height
			app.ArmScale = 1.2
			app.LegScale = 0.9
			p := build(t, app)
			Apply(p, app)

			torso := p.TorsoContainer.Scale
			arm := p.RightArm().Scale.Mul(torso)
			if !arm.ApproxEqual(math.Splat(1.2), eps) {
				t.Errorf("w=%v h=%v: effective arm scale %v, want 1.2", width, height, arm)
			}
			leg := p.LeftThigh().Scale.Mul(torso)
			if !leg.ApproxEqual(math.Splat(0.9), eps) {
				t.Errorf("w=%v h=%v: effective leg scale %v, want 0.9", width, height, leg)
			}
		}
	}
}

func TestHeadCompensation(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.TorsoWidth = 1.3
	app.TorsoHeight = 0.8
	app.NeckThickness = 1.5
	app.NeckHeight = 1.2
	app.HeadScale = 1.1
	p := build(t, app)
	Apply(p, app)

	effective := p.Head.Scale.Mul(p.Neck.Scale).Mul(p.TorsoContainer.Scale)
	if !effective.ApproxEqual(math.Splat(1.1), eps) {
		t.Errorf("effective head scale = %v, want 1.1 on every axis", effective)
	}
}

func TestTorsoContainerKeepsFeetGrounded(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.LegScale = 1.3
	p := build(t, app)
	Apply(p, app)

	want := float32(body.HipHeight * 1.3)
	if got := p.TorsoContainer.Position.Y; math.Abs(got-want) > eps {
		t.Errorf("torso container y = %v, want %v", got, want)
	}
}

type genderSnapshot struct {
	maleVisible, femaleVisible bool
	cheekVisible               [2]bool
	cheekScale                 [2]math.Vec3
	pelvis                     math.Vec3
	thighX                     float32
}

func snapshot(p *body.Parts) genderSnapshot {
	s := genderSnapshot{
		maleVisible:   p.MaleChest.Visible,
		femaleVisible: p.FemaleChest.Visible,
		pelvis:        p.Pelvis.Scale,
		thighX:        p.LeftThigh().Position.X,
	}
	for i, c := range p.ButtockCheeks {
		s.cheekVisible[i] = c.Node.Visible
		s.cheekScale[i] = c.Node.Scale
	}
	return s
}

func TestGenderRoundTrip(t *testing.T) {
	male := appearance.Default(appearance.Male)
	p := build(t, male)
	Apply(p, male)
	before := snapshot(p)

	if !before.maleVisible || before.femaleVisible {
		t.Fatalf("male chest visibility = %v/%v, want true/false", before.maleVisible, before.femaleVisible)
	}

	female := male
	female.BodyType = appearance.Female
	female.ButtScale = 1.2
	Apply(p, female)
	mid := snapshot(p)
	if mid.maleVisible || !mid.femaleVisible {
		t.Errorf("female chest visibility = %v/%v, want false/true", mid.maleVisible, mid.femaleVisible)
	}
	if !mid.cheekVisible[0] || !mid.cheekVisible[1] {
		t.Error("female buttock cheeks should be visible")
	}
	if mid.thighX <= before.thighX {
		t.Errorf("female leg spacing %v should exceed male %v", mid.thighX, before.thighX)
	}

	Apply(p, male)
	if after := snapshot(p); after != before {
		t.Errorf("male -> female -> male did not restore:\n got %+v\nwant %+v", after, before)
	}
}

func TestApplyIdempotent(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.ChinForward = 0.8
	app.JawForward = -0.4
	app.MaxillaForward = 0.3
	app.NoseForward = 1
	app.UpperLip.Forward = 0.5
	app.AbsDefinition = 1.6
	app.ToeSpread = 1.4
	app.HeelHeight = 0.5
	p := build(t, app)

	Apply(p, app)
	first := map[*scenegraph.Node][2]math.Vec3{}
	p.Root.Walk(func(n *scenegraph.Node) bool {
		first[n] = [2]math.Vec3{n.Position, n.Scale}
		return true
	})
	for range 5 {
		Apply(p, app)
	}
	p.Root.Walk(func(n *scenegraph.Node) bool {
		if got := [2]math.Vec3{n.Position, n.Scale}; got != first[n] {
			t.Errorf("node %q drifted: %v -> %v", n.Name, first[n], got)
		}
		return true
	})
}

func TestFaceOffsetsFromBase(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.ChinForward = 1
	p := build(t, app)
	Apply(p, app)

	want := p.Chin.BasePosition.Z + forward
	if got := p.Chin.Position.Z; math.Abs(got-want) > eps {
		t.Errorf("chin z = %v, want %v", got, want)
	}

	app.ChinForward = 0
	Apply(p, app)
	if p.Chin.Position != p.Chin.BasePosition {
		t.Errorf("chin position %v did not return to base %v", p.Chin.Position, p.Chin.BasePosition)
	}
}

func TestToeSpread(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.ToeSpread = 1.5
	p := build(t, app)
	Apply(p, app)

	for i, toe := range p.ToeUnits {
		if want := toe.InitialX * 1.5; math.Abs(toe.Node.Position.X-want) > eps {
			t.Errorf("toe %d x = %v, want %v", i, toe.Node.Position.X, want)
		}
	}
}

func TestAbPadsFollowDefinition(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.AbsDefinition = 2
	p := build(t, app)
	Apply(p, app)

	for i, pad := range p.AbPads {
		pos, scale := body.AbPlacement(pad, 2)
		if pad.Position != pos || pad.Scale != scale {
			t.Errorf("pad %d placed at %v/%v, want %v/%v", i, pad.Position, pad.Scale, pos, scale)
		}
		if pad.Position.Z <= pad.BasePosition.Z {
			t.Errorf("pad %d should stand out with higher definition", i)
		}
	}
}

func TestMissingOptionalPartsSkipped(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.HairStyle = appearance.Bald
	app.BrainVisible = true
	p := build(t, app)
	p.Brain = nil
	p.Chin = nil
	p.Thenars[body.Left] = nil
	p.ToeUnits[3].Node = nil
	p.AbPads[2] = nil

	Apply(p, app)
}

func TestBrainToggle(t *testing.T) {
	app := appearance.Default(appearance.Male)
	p := build(t, app)
	Apply(p, app)
	if p.Brain.Visible {
		t.Error("brain visible by default")
	}
	app.BrainVisible = true
	app.BrainSize = 0.8
	Apply(p, app)
	if !p.Brain.Visible || p.Brain.Scale != math.Splat(0.8) {
		t.Errorf("brain visible=%v scale=%v", p.Brain.Visible, p.Brain.Scale)
	}
	app.BrainVisible = false
	Apply(p, app)
	if p.Brain.Visible {
		t.Error("brain should be hidden")
	}
}

func TestHandPoserTargets(t *testing.T) {
	tests := []struct {
		name      string
		combat    bool
		item      appearance.HeldItem
		shield    bool
		wantLeft  bool
		wantRight bool
	}{
		{name: "relaxed", wantLeft: false, wantRight: false},
		{name: "combat", combat: true, wantLeft: true, wantRight: true},
		{name: "axe", item: appearance.Axe, wantLeft: false, wantRight: true},
		{name: "shield", shield: true, wantLeft: true, wantRight: false},
		{name: "unknown item", item: appearance.HeldItem("Lute"), wantLeft: false, wantRight: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appearance.Default(appearance.Male)
			app.SelectedItem = tt.item
			app.Equipment.Shield = tt.shield

			h := NewHandPoser()
			h.SetTargets(app, tt.combat)
			if got := h.Fist(body.Left); got != tt.wantLeft {
				t.Errorf("left fist = %v, want %v", got, tt.wantLeft)
			}
			if got := h.Fist(body.Right); got != tt.wantRight {
				t.Errorf("right fist = %v, want %v", got, tt.wantRight)
			}
		})
	}
}

func TestFistTargetCascades(t *testing.T) {
	h := NewHandPoser()
	h.SetTargets(appearance.Default(appearance.Male), true)
	for f := 1; f < body.Thumb; f++ {
		if h.Target(body.Right, f, 0) <= h.Target(body.Right, f-1, 0) {
			t.Errorf("finger %d target %v should exceed finger %d target %v",
				f, h.Target(body.Right, f, 0), f-1, h.Target(body.Right, f-1, 0))
		}
	}
}

func TestCurlConvergesMonotonically(t *testing.T) {
	const (
		dt     = float32(1.0 / 60)
		frames = 90
		tol    = 1e-3
	)
	app := appearance.Default(appearance.Male)
	p := build(t, app)
	h := NewHandPoser()

	for _, phase := range []struct {
		name   string
		combat bool
	}{
		{"fist", true},
		{"release", false},
	} {
		t.Run(phase.name, func(t *testing.T) {
			h.SetTargets(app, phase.combat)
			target := h.Target(body.Right, 1, 1)
			prevDist := math.Abs(target - h.Curl(body.Right, 1, 1))
			for i := range frames {
				h.Step(p, dt)
				dist := math.Abs(target - h.Curl(body.Right, 1, 1))
				if dist > prevDist {
					t.Fatalf("frame %d: distance grew from %v to %v", i, prevDist, dist)
				}
				prevDist = dist
			}
			if prevDist > tol {
				t.Errorf("after %d frames distance to target is %v, want <= %v", frames, prevDist, tol)
			}
		})
	}
}

func TestCurlWritesJointRotation(t *testing.T) {
	app := appearance.Default(appearance.Male)
	p := build(t, app)
	h := NewHandPoser()
	h.SetTargets(app, true)
	for range 120 {
		h.Step(p, 1.0/60)
	}

	joint := p.RightFingers[0].Joints[1]
	want := joint.BaseRotation.X - h.Curl(body.Right, 0, 1)
	if math.Abs(joint.Rotation.X-want) > eps {
		t.Errorf("joint rotation x = %v, want %v", joint.Rotation.X, want)
	}
	thumb := p.RightFingers[body.Thumb].Joints[0]
	if thumb.Rotation.Y == thumb.BaseRotation.Y {
		t.Error("thumb base joint should swing on its secondary axis")
	}
}

func TestCurlIgnoresNonPositiveDt(t *testing.T) {
	h := NewHandPoser()
	h.SetTargets(appearance.Default(appearance.Male), true)
	before := h.Curl(body.Left, 2, 0)
	h.Step(nil, 0)
	h.Step(nil, -1)
	if got := h.Curl(body.Left, 2, 0); got != before {
		t.Errorf("curl moved on non-positive dt: %v -> %v", before, got)
	}
}

func TestBlinkCycle(t *testing.T) {
	app := appearance.Default(appearance.Male)
	p := build(t, app)
	b := NewBlinker()
	b.Interval = 0

	b.Trigger()
	if !b.Blinking() {
		t.Fatal("expected blink in progress")
	}
	var peak float32
	for range 30 {
		b.Step(p, 1.0/60)
		peak = max(peak, b.Closure())
	}
	if peak < 0.99 {
		t.Errorf("peak closure = %v, want ~1", peak)
	}
	if b.Blinking() {
		t.Error("blink should have finished after half a second")
	}
	if b.Closure() != 0 {
		t.Errorf("closure after blink = %v, want 0", b.Closure())
	}
	for _, s := range []body.Side{body.Left, body.Right} {
		lid := p.UpperEyelid(s)
		if lid.Rotation.X != lid.BaseRotation.X {
			t.Errorf("%s upper lid not reopened: %v vs base %v", s, lid.Rotation.X, lid.BaseRotation.X)
		}
	}
}

func TestBlinkClosesLids(t *testing.T) {
	app := appearance.Default(appearance.Male)
	p := build(t, app)
	b := NewBlinker()
	b.Trigger()
	b.Step(p, BlinkClose)

	lid := p.UpperEyelid(body.Left)
	want := lid.BaseRotation.X + body.UpperLidClosed - body.UpperLidOpen
	if math.Abs(lid.Rotation.X-want) > eps {
		t.Errorf("closed upper lid = %v, want %v", lid.Rotation.X, want)
	}
}

func TestAutoBlink(t *testing.T) {
	b := NewBlinker()
	b.Interval = 1
	for range 59 {
		b.Step(nil, 1.0/60)
	}
	if b.Blinking() {
		t.Fatal("blink started before the interval elapsed")
	}
	b.Step(nil, 2.0/60)
	if !b.Blinking() {
		t.Error("blink should start once the interval elapses")
	}
}
