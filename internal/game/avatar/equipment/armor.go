package equipment

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

func (m *Manager) solid(parent *scenegraph.Node, name string, mesh *model.Mesh, mat *material.Material) *scenegraph.Node {
	n := scenegraph.NewSolid(name, m.arena.Upload(mesh), mat)
	parent.AddChild(n)
	return n
}

func at(n *scenegraph.Node, x, y, z float32) *scenegraph.Node {
	n.Position = math.Vec3{X: x, Y: y, Z: z}
	return n.MarkBase()
}

func (m *Manager) buildHelm() *scenegraph.Node {
	root := scenegraph.NewNode(SlotHelm).MarkBase()
	dome := model.SphereSection(body.HeadRadius*1.2, 24, 10, 0, math.Pi*0.55)
	model.Sculpt(dome,
		model.Stretch(model.AxisY, 1.08, nil),
		model.Stretch(model.AxisZ, 1.1, model.Below(model.AxisZ, 0, 0.35)),
	)
	m.solid(root, "helm_dome", dome, m.steel)
	rim := model.Cylinder(body.HeadRadius*1.22, body.HeadRadius*1.24, 0.018, 24, 1, true)
	model.Sculpt(rim, model.Stretch(model.AxisZ, 1.06, nil))
	at(m.solid(root, "helm_rim", rim, m.steel), 0, -0.012, -0.004)
	nasal := model.Box(0.014, 0.06, 0.008, 2)
	at(m.solid(root, "helm_nasal", nasal, m.steel), 0, -0.035, body.HeadRadius*1.2)
	return root
}

func (m *Manager) buildHood() *scenegraph.Node {
	root := scenegraph.NewNode(SlotHood).MarkBase()
	cowl := model.SphereSection(body.HeadRadius*1.28, 24, 14, 0, math.Pi*0.72)
	model.Sculpt(cowl,
		// open the face and let the back drape down
		model.Flatten(model.AxisZ, 0.3, model.Above(model.AxisZ, 0.4, 0.3)),
		model.Stretch(model.AxisY, 1.4, model.Both(model.Below(model.AxisY, 0, 0.4), model.Below(model.AxisZ, 0, 0.4))),
	)
	at(m.solid(root, "hood_cowl", cowl, m.fabric), 0, -0.01, -0.012)
	return root
}

func (m *Manager) buildMask() *scenegraph.Node {
	root := scenegraph.NewNode(SlotMask).MarkBase()
	plate := model.Box(0.12, 0.06, 0.012, 4)
	model.Sculpt(plate,
		model.Shift(math.Vec3{Z: -0.03}, model.Above(model.AxisX, 0.4, 0.6)),
		model.Shift(math.Vec3{Z: -0.03}, model.Below(model.AxisX, -0.4, 0.6)),
		model.Bulge(0.008, model.Band(model.AxisX, -0.2, 0.2, 0.3)),
	)
	at(m.solid(root, "mask_plate", plate, m.leather), 0, -0.03, 0.006)
	return root
}

func (m *Manager) buildMageHat() *scenegraph.Node {
	root := scenegraph.NewNode(SlotMageHat).MarkBase()
	brim := model.Cylinder(body.HeadRadius*2.1, body.HeadRadius*2.1, 0.008, 28, 1, false)
	m.solid(root, "hat_brim", brim, m.fabric)
	cone := model.Cylinder(0.004, body.HeadRadius*1.15, 0.3, 20, 6, true)
	// the tip droops backwards
	model.Sculpt(cone, model.Shift(math.Vec3{Z: -0.05}, model.Above(model.AxisY, 0.3, 0.7)))
	at(m.solid(root, "hat_cone", cone, m.fabric), 0, 0.15, 0)
	return root
}

func (m *Manager) buildPauldron(s body.Side) *scenegraph.Node {
	name := SlotLeftPauldron
	if s == body.Right {
		name = SlotRightPauldron
	}
	root := scenegraph.NewNode(name).MarkBase()
	shell := model.SphereSection(0.085, 18, 8, 0, math.Pi*0.5)
	model.Sculpt(shell, model.Stretch(model.AxisX, 1.15, nil), model.Flatten(model.AxisY, 0.25, nil))
	// outer edge tilts down over the arm
	shell.Transform(math.QuatFromEuler(math.Vec3{Z: s.Sign() * -0.35}).ToMat4())
	at(m.solid(root, "pauldron_shell", shell, m.steel), s.Sign()*0.02, -0.01, 0)
	ridge := model.Capsule(0.008, 0.1, 8, 2)
	ridge.Transform(math.QuatFromEuler(math.Vec3{X: math.Pi / 2}).ToMat4())
	at(m.solid(root, "pauldron_ridge", ridge, m.steel), s.Sign()*0.03, 0.05, 0)
	return root
}

func (m *Manager) buildShield() *scenegraph.Node {
	root := scenegraph.NewNode(SlotShield).MarkBase()
	// the mount faces +Z outward from the forearm
	board := model.Cylinder(0.22, 0.22, 0.022, 28, 1, false)
	board.Transform(math.QuatFromEuler(math.Vec3{X: math.Pi / 2}).ToMat4())
	model.Sculpt(board, model.Bulge(0.01, model.Above(model.AxisZ, 0, 0.5)))
	at(m.solid(root, "shield_board", board, m.wood), 0, 0, 0.02)
	rim := model.Cylinder(0.225, 0.225, 0.03, 28, 1, true)
	rim.Transform(math.QuatFromEuler(math.Vec3{X: math.Pi / 2}).ToMat4())
	at(m.solid(root, "shield_rim", rim, m.steel), 0, 0, 0.02)
	boss := model.SphereSection(0.05, 14, 6, 0, math.Pi*0.5)
	boss.Transform(math.QuatFromEuler(math.Vec3{X: math.Pi / 2}).ToMat4())
	at(m.solid(root, "shield_boss", boss, m.steel), 0, 0, 0.032)
	return root
}

func (m *Manager) buildQuiver() *scenegraph.Node {
	root := scenegraph.NewNode(SlotQuiver)
	root.Rotation.Z = 0.35
	root.MarkBase()
	case_ := model.Cylinder(0.045, 0.038, 0.5, 14, 4, false)
	at(m.solid(root, "quiver_case", case_, m.leather), 0, 0, -0.05)
	for i := range 5 {
		x := float32(i-2) * 0.014
		shaft := model.Cylinder(0.003, 0.003, 0.62, 6, 1, false)
		at(m.solid(root, "arrow_shaft", shaft, m.wood), x, 0.08, -0.05+float32(i%2)*0.01)
		fletch := model.Box(0.002, 0.06, 0.016, 1)
		at(m.solid(root, "arrow_fletching", fletch, m.fabric), x, 0.36, -0.05+float32(i%2)*0.01)
	}
	return root
}
