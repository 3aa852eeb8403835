package scenegraph

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// WorldBounds returns the world-space box around every visible solid in the
// subtree. Each mesh box is transformed by its eight corners, so rotated
// solids give a conservative fit. ok is false when nothing is visible.
func (n *Node) WorldBounds() (b model.Bounds, ok bool) {
	b = model.Bounds{Min: math.Splat(float32(1e30)), Max: math.Splat(float32(-1e30))}
	n.Walk(func(c *Node) bool {
		if !c.Visible {
			return false
		}
		if c.Solid == nil || c.Solid.Geometry == nil || c.Solid.Geometry.Mesh == nil {
			return true
		}
		mb := c.Solid.Geometry.Mesh.Bounds
		world := c.WorldMatrix()
		for i := range 8 {
			corner := mb.Min
			if i&1 != 0 {
				corner.X = mb.Max.X
			}
			if i&2 != 0 {
				corner.Y = mb.Max.Y
			}
			if i&4 != 0 {
				corner.Z = mb.Max.Z
			}
			p := world.TransformVec3(corner)
			b.Min = b.Min.Min(p)
			b.Max = b.Max.Max(p)
		}
		ok = true
		return true
	})
	if !ok {
		return model.Bounds{}, false
	}
	return b, true
}
