package clothing

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// uvTile is the world size one painted texture tile covers.
const uvTile = 0.12

// Slot indexes used to seed the texture noise.
const (
	seedShirt = iota + 1
	seedLegs
	seedApron
	seedRobe
	seedCape
	seedBelt
	seedBracers
	seedGloves
	seedShoes
)

// shirtLift keeps shirt overlays clear of the skin pads underneath.
const shirtLift = 0.012

// solid uploads m and attaches it under parent.
func (m *Manager) solid(parent *scenegraph.Node, name string, mesh *model.Mesh, mat *material.Material) *scenegraph.Node {
	n := scenegraph.NewSolid(name, m.arena.Upload(mesh), mat)
	parent.AddChild(n)
	return n
}

// cloth creates the textured material of one garment build.
func (m *Manager) cloth(name string, seed int, p Pattern, c appearance.Color, roughness float32) *material.Material {
	mat := material.New(name, math.One3, roughness)
	mat.SetTexture(m.paintFor(seed, p, c))
	return mat
}

// tube is a tapered open cylinder with UVs fitted to its size.
func tube(top, bottom, height float32, radial int) *model.Mesh {
	t := model.Cylinder(top, bottom, height, radial, 4, true)
	t.FitUV(2*math.Pi*max(top, bottom), height, uvTile)
	return t
}

// joint is a sphere covering a limb joint.
func joint(radius float32) *model.Mesh {
	s := model.Sphere(radius, 12, 8)
	s.FitUV(2*math.Pi*radius, math.Pi*radius, uvTile)
	return s
}

func at(n *scenegraph.Node, x, y, z float32) *scenegraph.Node {
	n.Position = math.Vec3{X: x, Y: y, Z: z}
	return n.MarkBase()
}

var sides = []body.Side{body.Left, body.Right}

func (m *Manager) buildShirt(key shirtKey) []piece {
	m.forgetShirtLayer()
	if !key.On {
		return nil
	}
	p := m.parts
	mat := m.cloth("shirt", seedShirt, outfitPattern(key.Outfit), key.Color, 0.9)

	k := newKit(SlotShirt)
	torso := k.under(p.TorsoContainer)

	shell := tube(body.TorsoTopRadius*1.07, body.TorsoBottomRadius*1.1, body.TorsoLength*0.9, 22)
	model.Sculpt(shell,
		model.Flatten(model.AxisZ, 1-body.TorsoDepth*1.04, nil),
		model.Spherize(0.12),
	)
	at(m.solid(torso, "shirt_body", shell, mat), 0, body.TorsoLength*0.47, 0)
	collar := tube(body.NeckRadius*1.35, body.NeckRadius*1.6, 0.025, 16)
	at(m.solid(torso, "shirt_collar", collar, mat), 0, body.NeckBase-0.005, 0)

	chest := scenegraph.NewNode("shirt_chest")
	torso.AddChild(chest)
	m.shirtChest = chest
	for i := range m.shirtAbs {
		pad := model.Box(0.054, 0.048, 0.02, 2)
		model.Sculpt(pad, model.Spherize(0.7))
		m.shirtAbs[i] = m.solid(chest, "shirt_ab", pad, mat)
	}
	for i, s := range sides {
		cup := model.SphereSection(0.072, 16, 10, 0, math.Pi)
		model.Sculpt(cup, model.Flatten(model.AxisZ, 0.15, nil))
		m.shirtCups[i] = at(m.solid(chest, "shirt_cup", cup, mat), s.Sign()*0.065, -0.025, 0.03)
	}

	long := key.Outfit == appearance.Mage || key.Outfit == appearance.Noble
	for _, s := range sides {
		arm := k.under(p.Arms[s])
		m.solid(arm, "shirt_shoulder", joint(body.ArmRadius*1.18), mat)
		length := float32(body.UpperArmLength * 0.55)
		if long {
			length = body.UpperArmLength
		}
		at(m.solid(arm, "shirt_sleeve", tube(body.ArmRadius*1.15, body.ArmRadius*1.05, length, 14), mat), 0, -length/2, 0)
		if long {
			fore := k.under(p.Forearms[s])
			m.solid(fore, "shirt_elbow", joint(body.ArmRadius*0.95), mat)
			cuff := tube(body.ForearmRadius*1.18, body.ForearmRadius*1.1, body.ForearmLength*0.9, 14)
			at(m.solid(fore, "shirt_forearm", cuff, mat), 0, -body.ForearmLength*0.45, 0)
		}
	}
	return k.pieces
}

func (m *Manager) forgetShirtLayer() {
	m.shirtChest = nil
	m.shirtAbs = [6]*scenegraph.Node{}
	m.shirtCups = [2]*scenegraph.Node{}
}

// placeShirtLayer follows the skin chest: overlays track the skin ab pads
// scaled by the body and shirt ab definition, cups follow the female chest.
func (m *Manager) placeShirtLayer(app appearance.Appearance) {
	if m.shirtChest == nil {
		return
	}
	p := m.parts
	m.shirtChest.Position = p.MaleChest.Position
	m.shirtChest.Scale = p.MaleChest.Scale

	definition := app.AbsDefinition * app.ShirtAbsMultiplier
	showAbs := p.MaleChest.Visible && !app.Equipment.Robe
	for i, overlay := range m.shirtAbs {
		pad := p.AbPads[i]
		if overlay == nil || pad == nil {
			continue
		}
		pos, scale := body.AbPlacement(pad, definition)
		overlay.Position = pos.Add(math.Vec3{Z: shirtLift})
		overlay.Scale = scale
		overlay.Visible = showAbs
	}
	for _, cup := range m.shirtCups {
		if cup != nil {
			cup.Visible = p.FemaleChest.Visible
		}
	}
}

func (m *Manager) buildLegs(key legsKey) []piece {
	if key.Covering == appearance.LegsBare {
		return nil
	}
	p := m.parts
	roughness := float32(0.9)
	if key.Covering == appearance.LegsChainLeggings {
		roughness = 0.35
	}
	mat := m.cloth("legs_"+key.Covering.String(), seedLegs, legPattern(key.Covering, key.Outfit), key.Color, roughness)

	// thicker coverings sit further off the skin
	fit := float32(1.12)
	switch key.Covering {
	case appearance.LegsHideBreeches:
		fit = 1.18
	case appearance.LegsChainLeggings:
		fit = 1.15
	}

	k := newKit(SlotLegs)
	pelvis := k.under(p.Pelvis)
	shell := tube(body.PelvisRadius*1.06, body.PelvisRadius*0.96, body.PelvisLength*1.1, 20)
	model.Sculpt(shell, model.Flatten(model.AxisZ, 0.3, nil), model.Spherize(0.2))
	m.solid(pelvis, "legs_waist", shell, mat)

	// hollowed crotch volume: the top dishes in to sit around the body
	crotch := model.Sphere(0.082, 16, 10)
	model.Sculpt(crotch,
		model.Flatten(model.AxisY, 0.3, nil),
		model.Stretch(model.AxisX, 1.3, nil),
		model.Hollow(model.AxisY, 0.35, 0),
	)
	crotch.FitUV(2*math.Pi*0.082, 0.1, uvTile)
	at(m.solid(pelvis, "legs_crotch", crotch, mat), 0, -body.PelvisLength/2, 0.01)

	for _, s := range sides {
		// butt covers share the skin cheek transform
		cheek := p.ButtockCheeks[s]
		if cheek.Node != nil {
			cover := model.Sphere(0.081, 16, 10)
			model.Sculpt(cover, model.Flatten(model.AxisZ, 0.2, nil))
			cover.FitUV(2*math.Pi*0.081, 0.16, uvTile)
			m.solid(k.under(cheek.Node), "legs_butt", cover, mat)
		}

		thigh := k.under(p.Thighs[s])
		m.solid(thigh, "legs_hip", joint(body.ThighRadius*fit), mat)
		length := float32(body.ThighLength)
		if key.Covering == appearance.LegsShorts {
			length *= 0.45
		}
		upper := tube(body.ThighRadius*fit, body.ThighRadius*0.7*fit, length, 16)
		at(m.solid(thigh, "legs_thigh", upper, mat), 0, -length/2, 0)
		if key.Covering == appearance.LegsShorts {
			continue
		}

		shin := k.under(p.Shins[s])
		m.solid(shin, "legs_knee", joint(body.ShinRadius*1.05*fit), mat)
		lower := tube(body.ShinRadius*fit, body.ShinRadius*0.66*fit, body.ShinLength*0.92, 14)
		at(m.solid(shin, "legs_shin", lower, mat), 0, -body.ShinLength*0.46, 0)
		if key.Covering == appearance.LegsHideBreeches {
			wrap := tube(body.ShinRadius*0.72*fit, body.ShinRadius*0.7*fit, 0.03, 12)
			at(m.solid(shin, "legs_wrap", wrap, m.mats.Boots), 0, -body.ShinLength*0.86, 0)
		}
	}
	return k.pieces
}

func (m *Manager) buildApron(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	mat := m.cloth("apron", seedApron, PatternLinen, key.Color, 0.95)
	k := newKit(SlotApron)
	waist := k.under(m.parts.WaistMount)

	panel := model.Box(0.26, 0.42, 0.012, 4)
	// curve around the belly, widen toward the hem
	model.Sculpt(panel,
		model.Shift(math.Vec3{Z: -0.025}, model.Above(model.AxisX, 0.4, 0.6)),
		model.Shift(math.Vec3{Z: -0.025}, model.Below(model.AxisX, -0.4, 0.6)),
		model.Taper(model.AxisY, 1.15, 0.9),
	)
	panel.FitUV(0.26, 0.42, uvTile)
	at(m.solid(waist, "apron_panel", panel, mat), 0, -0.2, body.TorsoBottomRadius*body.TorsoDepth+0.03)

	tie := tube(body.TorsoBottomRadius*1.04, body.TorsoBottomRadius*1.04, 0.018, 20)
	model.Sculpt(tie, model.Flatten(model.AxisZ, 1-body.TorsoDepth, nil))
	m.solid(waist, "apron_tie", tie, mat)
	return k.pieces
}

func (m *Manager) buildRobe(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	p := m.parts
	mat := m.cloth("robe", seedRobe, PatternTrimmed, key.Color, 0.85)
	k := newKit(SlotRobe)
	torso := k.under(p.TorsoContainer)

	top := float32(body.ChestHeight + 0.1)
	bottom := -float32(body.HipHeight) + 0.12
	height := top - bottom
	skirt := tube(body.TorsoTopRadius*1.12, 0.25, height, 26)
	model.Sculpt(skirt,
		model.Flatten(model.AxisZ, 0.28, nil),
		// fuller over the chest, narrower at the waist
		model.Stretch(model.AxisX, 0.9, model.Band(model.AxisY, 0.3, 0.55, 0.2)),
	)
	at(m.solid(torso, "robe_body", skirt, mat), 0, (top+bottom)/2, 0)
	yoke := tube(body.NeckRadius*1.5, body.TorsoTopRadius*1.14, body.NeckBase-top+0.02, 22)
	model.Sculpt(yoke, model.Flatten(model.AxisZ, 1-body.TorsoDepth, nil))
	at(m.solid(torso, "robe_yoke", yoke, mat), 0, (body.NeckBase+top)/2, 0)

	for _, s := range sides {
		arm := k.under(p.Arms[s])
		length := float32(body.UpperArmLength + body.ForearmLength*0.8)
		sleeve := tube(body.ArmRadius*1.3, body.ArmRadius*2.1, length, 16)
		at(m.solid(arm, "robe_sleeve", sleeve, mat), 0, -length/2, 0)
	}
	return k.pieces
}

func (m *Manager) buildCape(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	mat := m.cloth("cape", seedCape, outfitPattern(key.Outfit), key.Color, 0.9)
	k := newKit(SlotCape)
	back := k.under(m.parts.BackMount)

	cloak := model.Box(0.34, 0.95, 0.01, 6)
	model.Sculpt(cloak,
		// wraps the shoulders and flares toward the hem
		model.Shift(math.Vec3{Z: 0.04}, model.Both(model.Above(model.AxisX, 0.5, 0.5), model.Above(model.AxisY, 0.6, 0.4))),
		model.Shift(math.Vec3{Z: 0.04}, model.Both(model.Below(model.AxisX, -0.5, 0.5), model.Above(model.AxisY, 0.6, 0.4))),
		model.Taper(model.AxisY, 1.4, 1),
		model.Shift(math.Vec3{Z: -0.05}, model.Below(model.AxisY, -0.2, 0.8)),
	)
	cloak.FitUV(0.34, 0.95, uvTile)
	at(m.solid(back, "cape_cloth", cloak, mat), 0, -0.44, -0.02)
	for _, s := range sides {
		clasp := model.Sphere(0.014, 10, 6)
		at(m.solid(back, "cape_clasp", clasp, m.mats.Boots), s.Sign()*0.15, 0.04, 0.03)
	}
	return k.pieces
}

func (m *Manager) buildBelt(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	mat := m.cloth("belt", seedBelt, PatternLeather, key.Color, 0.6)
	k := newKit(SlotBelt)
	waist := k.under(m.parts.WaistMount)

	strap := tube(body.PelvisRadius*1.1, body.PelvisRadius*1.1, 0.035, 24)
	model.Sculpt(strap, model.Flatten(model.AxisZ, 0.3, nil))
	m.solid(waist, "belt_strap", strap, mat)
	buckle := model.Box(0.04, 0.032, 0.01, 1)
	at(m.solid(waist, "belt_buckle", buckle, material.New("buckle", math.Vec3{X: 0.79, Y: 0.64, Z: 0.15}, 0.3)), 0, 0, body.PelvisRadius*0.77+0.01)
	return k.pieces
}

func (m *Manager) buildBracers(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	pattern := PatternLeather
	if key.Outfit == appearance.Warrior {
		pattern = PatternPlated
	}
	mat := m.cloth("bracers", seedBracers, pattern, key.Color, 0.55)
	k := newKit(SlotBracers)
	for _, s := range sides {
		fore := k.under(m.parts.Forearms[s])
		length := float32(body.ForearmLength * 0.55)
		guard := tube(body.ForearmRadius*1.22, body.ForearmRadius*0.98, length, 14)
		model.Sculpt(guard, model.Bulge(0.004, model.Above(model.AxisZ, 0.2, 0.5)))
		at(m.solid(fore, "bracer", guard, mat), 0, -body.ForearmLength*0.64, 0)
	}
	return k.pieces
}

func (m *Manager) buildGloves(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	p := m.parts
	mat := m.cloth("gloves", seedGloves, PatternLeather, key.Color, 0.7)
	k := newKit(SlotGloves)
	for _, s := range sides {
		hand := k.under(p.Hands[s])
		palm := model.Box(0.083, body.PalmLength*1.04, 0.035, 3)
		model.Sculpt(palm, model.Spherize(0.35), model.Hollow(model.AxisZ, 0.2, 0.1), model.Taper(model.AxisY, 0.9, 1))
		palm.FitUV(0.16, body.PalmLength, uvTile)
		at(m.solid(hand, "glove_palm", palm, mat), 0, -body.PalmLength/2, 0)
		cuff := tube(body.ForearmRadius*1.05, body.ForearmRadius*0.85, 0.04, 14)
		at(m.solid(hand, "glove_cuff", cuff, mat), 0, 0.01, 0)

		// finger sleeves ride the finger joints so they curl with the hand
		for f, finger := range p.Fingers(s) {
			for j, jointNode := range finger.Joints {
				if jointNode == nil {
					continue
				}
				length := body.FingerLength(f, j)
				radius := float32(0.0102) * (1 - 0.1*float32(j))
				seg := model.Capsule(radius, length, 8, 2)
				model.Sculpt(seg, model.Flatten(model.AxisZ, 0.15, nil))
				at(m.solid(k.under(jointNode), "glove_finger", seg, mat), 0, -length/2-radius*0.85, 0)
			}
		}
	}
	return k.pieces
}
