package equipment

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Held items are built in hand-mount space: +Y runs along the handle
// through the fist and +Z points where the knuckles face, so heads and
// blade edges go toward +Z. The grip sits at the origin.

// BuildItem builds a held item. It returns nil for NoItem and unknown names.
func BuildItem(name appearance.HeldItem, arena *scenegraph.Arena, wood, steel *material.Material) *scenegraph.Node {
	b := itemBuilder{arena: arena, root: scenegraph.NewNode(string(name))}
	switch name {
	case appearance.Axe:
		b.axe(wood, steel)
	case appearance.Sword:
		b.sword(wood, steel)
	case appearance.Pickaxe:
		b.pickaxe(wood, steel)
	case appearance.Knife:
		b.knife(wood, steel)
	default:
		return nil
	}
	b.root.MarkBase()
	return b.root
}

type itemBuilder struct {
	arena *scenegraph.Arena
	root  *scenegraph.Node
}

// part bakes a placement into mesh and attaches it to the item root.
func (b itemBuilder) part(name string, mesh *model.Mesh, mat *material.Material, pos, euler math.Vec3) *scenegraph.Node {
	if euler != math.Zero3 {
		mesh.Transform(math.QuatFromEuler(euler).ToMat4())
	}
	mesh.Translate(pos)
	mesh.ComputeBounds()
	n := scenegraph.NewSolid(name, b.arena.Upload(mesh), mat)
	b.root.AddChild(n)
	return n
}

// handle is a wooden shaft along Y from below the fist up to top.
func (b itemBuilder) handle(radius, bottom, top float32, wood *material.Material) {
	h := model.Cylinder(radius*0.9, radius, top-bottom, 10, 4, false)
	model.Sculpt(h, model.Bulge(radius*0.15, model.Below(model.AxisY, -0.8, 0.2)))
	b.part("handle", h, wood, math.Vec3{Y: (top + bottom) / 2}, math.Zero3)
}

func (b itemBuilder) axe(wood, steel *material.Material) {
	const top = 0.48
	b.handle(0.014, -0.12, top, wood)

	blade := model.Box(0.012, 0.1, 0.1, 3)
	// flare toward the cutting edge at +Z
	model.Sculpt(blade,
		model.Stretch(model.AxisY, 1.6, model.Above(model.AxisZ, 0.2, 0.6)),
		model.Flatten(model.AxisX, 0.6, model.Above(model.AxisZ, 0.5, 0.4)),
	)
	b.part("axe_head", blade, steel, math.Vec3{Y: top - 0.05, Z: 0.06}, math.Zero3)
	poll := model.Box(0.024, 0.045, 0.03, 1)
	b.part("axe_poll", poll, steel, math.Vec3{Y: top - 0.05, Z: -0.012}, math.Zero3)
}

func (b itemBuilder) sword(wood, steel *material.Material) {
	grip := model.Cylinder(0.013, 0.013, 0.13, 10, 3, false)
	b.part("grip", grip, wood, math.Vec3{Y: 0.015}, math.Zero3)
	b.part("pommel", model.Sphere(0.02, 10, 6), steel, math.Vec3{Y: -0.065}, math.Zero3)

	// the guard runs across the edge direction
	guard := model.Capsule(0.011, 0.13, 8, 2)
	b.part("guard", guard, steel, math.Vec3{Y: 0.09}, math.Vec3{X: math.Pi / 2})

	blade := model.Box(0.007, 0.72, 0.045, 6)
	model.Sculpt(blade,
		model.Taper(model.AxisY, 1, 0.25),
		model.Flatten(model.AxisX, 0.5, model.Above(model.AxisZ, 0.6, 0.4)),
		model.Flatten(model.AxisX, 0.5, model.Below(model.AxisZ, -0.6, 0.4)),
	)
	b.part("blade", blade, steel, math.Vec3{Y: 0.1 + 0.36}, math.Zero3)
}

func (b itemBuilder) pickaxe(wood, steel *material.Material) {
	const top = 0.5
	b.handle(0.015, -0.12, top, wood)

	// the pick point at +Z is longer than the flat adze behind; both ends
	// curve down toward the hand once rotated
	head := model.Capsule(0.014, 0.26, 8, 3)
	model.Sculpt(head,
		model.Taper(model.AxisY, 0.7, 0.4),
		model.Shift(math.Vec3{Z: 0.03}, model.Above(model.AxisY, 0.5, 0.5)),
		model.Shift(math.Vec3{Z: 0.03}, model.Below(model.AxisY, -0.5, 0.5)),
	)
	b.part("pick_head", head, steel, math.Vec3{Y: top - 0.02, Z: 0.05}, math.Vec3{X: math.Pi / 2})
	b.part("pick_eye", model.Box(0.034, 0.05, 0.034, 1), steel, math.Vec3{Y: top - 0.02}, math.Zero3)
}

func (b itemBuilder) knife(wood, steel *material.Material) {
	grip := model.Cylinder(0.011, 0.012, 0.1, 10, 2, false)
	b.part("grip", grip, wood, math.Vec3{Y: 0.01}, math.Zero3)
	b.part("bolster", model.Box(0.016, 0.012, 0.03, 1), steel, math.Vec3{Y: 0.066}, math.Zero3)

	blade := model.Box(0.004, 0.15, 0.028, 4)
	// straight spine at -Z, the edge curves up to the tip at +Z
	model.Sculpt(blade,
		model.Taper(model.AxisY, 1, 0.2),
		model.Shift(math.Vec3{Z: 0.006}, model.Band(model.AxisY, -0.2, 0.6, 0.3)),
	)
	b.part("blade", blade, steel, math.Vec3{Y: 0.072 + 0.075, Z: 0.004}, math.Zero3)
}
