package scenegraph

import "github.com/Faultbox/midgard-avatar/pkg/math"

// LocalMatrix composes translation * rotation * scale.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, math.QuatFromEuler(n.Rotation), n.Scale)
}

// WorldMatrix multiplies local matrices from the root down.
func (n *Node) WorldMatrix() math.Mat4 {
	if n.Parent == nil {
		return n.LocalMatrix()
	}
	return n.Parent.WorldMatrix().Mul(n.LocalMatrix())
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.WorldMatrix().Translation()
}

// WorldRotation returns the world orientation with scale removed.
func (n *Node) WorldRotation() math.Quat {
	_, rot, _ := n.WorldMatrix().Decompose()
	return rot
}

// WorldScale returns the absolute scale along the node's own axes.
func (n *Node) WorldScale() math.Vec3 {
	_, _, scale := n.WorldMatrix().Decompose()
	return scale
}
