package body

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

type builder struct {
	arena *scenegraph.Arena
	mats  *materials.Set
	app   appearance.Appearance
	p     *Parts
}

// Build synthesizes a fresh node tree and registry. Hair is only built when
// the style has a mesh; everything else, the brain included, always exists so
// morphs can toggle variants by visibility. Each call returns a new registry
// that must be owned by exactly one avatar.
func Build(app appearance.Appearance, mats *materials.Set, arena *scenegraph.Arena) *Parts {
	b := &builder{arena: arena, mats: mats, app: app, p: &Parts{}}
	p := b.p

	p.Root = scenegraph.NewNode("avatar")
	p.TorsoContainer = group(p.Root, "torso_container", 0, HipHeight, 0)

	b.buildTorso()
	b.buildHead()
	for _, s := range []Side{Left, Right} {
		b.buildArm(s)
		b.buildLeg(s)
	}
	return p
}

// solid uploads m and attaches it under parent.
func (b *builder) solid(parent *scenegraph.Node, name string, m *model.Mesh, mat *material.Material) *scenegraph.Node {
	n := scenegraph.NewSolid(name, b.arena.Upload(m), mat)
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

// group creates an empty transform node and records its base transform.
func group(parent *scenegraph.Node, name string, x, y, z float32) *scenegraph.Node {
	n := scenegraph.NewNode(name).At(x, y, z)
	n.MarkBase()
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

// place positions a node and records the base transform.
func place(n *scenegraph.Node, x, y, z float32) *scenegraph.Node {
	n.Position = math.Vec3{X: x, Y: y, Z: z}
	return n.MarkBase()
}

// rotated bakes an Euler rotation into the mesh.
func rotated(m *model.Mesh, euler math.Vec3) *model.Mesh {
	m.Transform(math.QuatFromEuler(euler).ToMat4())
	return m
}

// scaled bakes a non-uniform scale into the mesh.
func scaled(m *model.Mesh, x, y, z float32) *model.Mesh {
	m.Transform(math.Scale(x, y, z))
	return m
}

func (b *builder) buildTorso() {
	p := b.p
	skin := b.mats.Skin

	torso := model.Cylinder(TorsoTopRadius, TorsoBottomRadius, TorsoLength, 20, 8, false)
	model.Sculpt(torso,
		model.Flatten(model.AxisZ, 1-TorsoDepth, nil),
		model.Spherize(0.18),
		model.Bulge(0.012, model.Both(model.Band(model.AxisY, 0.2, 0.7, 0.2), model.Above(model.AxisZ, 0, 0.3))),
	)
	p.Torso = place(b.solid(p.TorsoContainer, "torso", torso, skin), 0, TorsoLength/2, 0)

	shoulders := scaled(model.Sphere(0.17, 20, 10), 1.25, 0.38, 0.72)
	p.ShoulderCap = place(b.solid(p.TorsoContainer, "shoulder_cap", shoulders, skin), 0, ShoulderHeight, 0)

	pelvis := model.Cylinder(PelvisRadius, PelvisRadius*0.86, PelvisLength, 20, 4, false)
	model.Sculpt(pelvis,
		model.Flatten(model.AxisZ, 0.3, nil),
		model.Spherize(0.25),
	)
	p.Pelvis = place(b.solid(p.TorsoContainer, "pelvis", pelvis, skin), 0, 0, 0)

	crotch := model.Sphere(0.075, 16, 10)
	model.Sculpt(crotch,
		model.Flatten(model.AxisY, 0.3, nil),
		model.Stretch(model.AxisX, 1.3, nil),
	)
	p.Crotch = place(b.solid(p.Pelvis, "crotch", crotch, skin), 0, -PelvisLength/2, 0.01)

	for _, s := range []Side{Left, Right} {
		cheekNode := group(p.Pelvis, s.String()+"_buttock", s.Sign()*0.065, -0.035, -0.07)
		skinMesh := model.Sphere(0.075, 16, 10)
		model.Sculpt(skinMesh, model.Flatten(model.AxisZ, 0.2, nil), model.Stretch(model.AxisY, 1.05, model.Below(model.AxisY, 0, 0.3)))
		under := model.SphereSection(0.079, 16, 8, 0, math.Pi*0.62)
		model.Sculpt(under, model.Flatten(model.AxisZ, 0.2, nil))
		p.ButtockCheeks[s] = Cheek{
			Node:      cheekNode,
			Skin:      place(b.solid(cheekNode, "buttock_skin", skinMesh, skin), 0, 0, 0),
			Underwear: place(b.solid(cheekNode, "buttock_underwear", under, b.mats.Underwear), 0, 0, 0),
		}
	}

	p.MaleChest = group(p.TorsoContainer, "male_chest", 0, ChestHeight, 0.07)
	for _, s := range []Side{Left, Right} {
		pec := model.Box(0.12, 0.07, 0.04, 3)
		model.Sculpt(pec, model.Spherize(0.6), model.Taper(model.AxisY, 0.85, 1))
		place(b.solid(p.MaleChest, s.String()+"_pec", pec, skin), s.Sign()*0.06, 0, 0.025)
	}
	for i := range p.AbPads {
		col := float32(1)
		if i%2 == 1 {
			col = -1
		}
		row := float32(i / 2)
		pad := model.Box(0.05, 0.045, 0.02, 2)
		model.Sculpt(pad, model.Spherize(0.7))
		p.AbPads[i] = place(b.solid(p.MaleChest, "ab_pad", pad, skin), col*0.03, -0.11-row*0.055, 0.035)
	}

	p.FemaleChest = group(p.TorsoContainer, "female_chest", 0, ChestHeight, 0.07)
	for _, s := range []Side{Left, Right} {
		breast := model.Sphere(0.066, 16, 12)
		model.Sculpt(breast,
			model.Flatten(model.AxisZ, 0.15, nil),
			model.Stretch(model.AxisY, 1.1, model.Below(model.AxisY, 0, 0.4)),
		)
		place(b.solid(p.FemaleChest, s.String()+"_breast", breast, skin), s.Sign()*0.065, -0.025, 0.03)
	}

	p.Neck = group(p.TorsoContainer, "neck", 0, NeckBase, 0)
	neck := model.Cylinder(NeckRadius, NeckRadius*1.1, NeckLength, 14, 2, true)
	place(b.solid(p.Neck, "neck_solid", neck, skin), 0, NeckLength/2, 0)

	for _, s := range []Side{Left, Right} {
		p.ShoulderMounts[s] = group(p.TorsoContainer, s.String()+"_shoulder_mount", s.Sign()*ShoulderOffset, ShoulderHeight+0.03, 0)
	}
	p.BackMount = group(p.TorsoContainer, "back_mount", 0, 0.38, -0.11)
	p.WaistMount = group(p.TorsoContainer, "waist_mount", 0, 0.04, 0)
}
