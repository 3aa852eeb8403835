// Package debugview recolors the head sub-solids with flat diagnostic
// colors so each sculpted piece can be told apart.
package debugview

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Palette maps head solid names to their diagnostic color.
var Palette = map[string]math.Vec3{
	"cranium":      {X: 0.85, Y: 0.85, Z: 0.85},
	"jaw":          {X: 0.9, Y: 0.3, Z: 0.2},
	"chin":         {X: 1, Y: 0.6, Z: 0},
	"maxilla":      {X: 0.2, Y: 0.7, Z: 0.3},
	"nose":         {X: 0.2, Y: 0.4, Z: 0.95},
	"upper_lip":    {X: 0.9, Y: 0.1, Z: 0.6},
	"lower_lip":    {X: 0.6, Y: 0.1, Z: 0.9},
	"brow":         {X: 0.95, Y: 0.95, Z: 0.1},
	"left_ear":     {X: 0.1, Y: 0.9, Z: 0.9},
	"right_ear":    {X: 0.1, Y: 0.6, Z: 0.6},
	"upper_eyelid": {X: 0.5, Y: 0.3, Z: 0.1},
	"lower_eyelid": {X: 0.3, Y: 0.2, Z: 0.05},
	"brain":        {X: 1, Y: 0.4, Z: 0.5},
}

// Overlay swaps head materials. The zero value is ready to use.
type Overlay struct {
	flat    map[string]*material.Material
	enabled bool
}

// Enabled reports the last applied state.
func (o *Overlay) Enabled() bool {
	return o.enabled
}

// Apply shows the diagnostic colors when enabled and the regular materials
// otherwise. Calling it repeatedly with the same arguments changes nothing.
func (o *Overlay) Apply(p *body.Parts, enabled bool, mats *materials.Set) {
	o.enabled = enabled
	for _, n := range p.HeadSolids {
		if n == nil || n.Solid == nil {
			continue
		}
		if enabled {
			if m := o.material(n.Name); m != nil {
				n.Solid.Material = m
			}
			continue
		}
		n.Solid.Material = normal(n.Name, mats)
	}
}

func (o *Overlay) material(name string) *material.Material {
	if m, ok := o.flat[name]; ok {
		return m
	}
	c, ok := Palette[name]
	if !ok {
		return nil
	}
	if o.flat == nil {
		o.flat = make(map[string]*material.Material)
	}
	m := material.Flat("debug_"+name, c)
	o.flat[name] = m
	return m
}

// normal returns the material a head solid is built with.
func normal(name string, mats *materials.Set) *material.Material {
	switch name {
	case "upper_lip", "lower_lip", "brain":
		return mats.Lips
	default:
		return mats.Skin
	}
}
