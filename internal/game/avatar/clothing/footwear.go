package clothing

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Footwear replaces the whole foot: bare feet carry jointed toes that shoes
// cannot share, so a shoe is built at the ankle and the bare foot subtree is
// detached while it is worn. The bare foot stays in the registry and is
// reattached when the shoes come off.

func (m *Manager) buildShoes(key toggleKey) []piece {
	if !key.On {
		return nil
	}
	p := m.parts
	upperMat := m.cloth("shoe_upper", seedShoes, PatternLeather, key.Color, 0.7)
	sole := material.New("sole", math.Vec3{X: 0.12, Y: 0.09, Z: 0.07}, 0.95)

	shaft := float32(0.06)
	if key.Outfit == appearance.Warrior || key.Outfit == appearance.Mage {
		// boots
		shaft = 0.16
	}

	k := newKit(SlotFootwear)
	for _, s := range sides {
		ankle := k.under(p.Ankles[s])

		cuff := tube(body.ShinRadius*0.86, body.ShinRadius*0.78, shaft, 14)
		at(m.solid(ankle, "shoe_shaft", cuff, upperMat), 0, shaft/2-0.02, -0.004)

		vamp := model.Box(0.084, 0.06, body.FootLength*0.98, 3)
		model.Sculpt(vamp,
			model.Spherize(0.4),
			model.Taper(model.AxisZ, 1, 0.85),
			// lower and round the toe box
			model.Flatten(model.AxisY, 0.3, model.Above(model.AxisZ, 0.3, 0.5)),
			model.Shift(math.Vec3{Y: -0.008}, model.Above(model.AxisZ, 0.5, 0.4)),
		)
		vamp.FitUV(0.2, body.FootLength, uvTile)
		at(m.solid(ankle, "shoe_upper", vamp, upperMat), 0, -0.035, 0.04)

		base := model.Box(0.09, 0.014, body.FootLength+0.012, 2)
		model.Sculpt(base, model.Spherize(0.2), model.Taper(model.AxisZ, 1, 0.88))
		at(m.solid(ankle, "shoe_sole", base, sole), 0, -body.AnkleHeight+0.007, 0.04)
	}
	return k.pieces
}

// swapFeet attaches bare feet when shoes are off and detaches them when on.
func (m *Manager) swapFeet(shoes bool) {
	p := m.parts
	for _, s := range sides {
		foot, ankle := p.BareFeet[s], p.Ankles[s]
		if foot == nil || ankle == nil {
			continue
		}
		switch {
		case shoes && foot.Parent != nil:
			foot.RemoveFromParent()
		case !shoes && foot.Parent == nil:
			ankle.AddChild(foot)
		}
	}
}
