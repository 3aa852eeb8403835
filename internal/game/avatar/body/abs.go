package body

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// AbDepth is how far a pad moves forward per unit of definition.
const AbDepth = 0.008

// AbPlacement returns the transform of an ab pad for a definition value,
// derived from the pad's stored base so repeated calls do not accumulate.
func AbPlacement(pad *scenegraph.Node, definition float32) (pos, scale math.Vec3) {
	if definition < 0 {
		definition = 0
	}
	pos = pad.BasePosition.Add(math.Vec3{Z: (definition - 1) * AbDepth})
	scale = pad.BaseScale.Mul(math.Vec3{X: 1, Y: 1, Z: definition})
	return pos, scale
}
