// Package scenegraph provides the transform tree the avatar is assembled
// from: nodes with local position, Euler rotation and scale, optional solids
// referencing arena-owned geometry, and named attachment slots.
package scenegraph

import (
	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Solid is a renderable volume: a geometry buffer plus a material reference.
type Solid struct {
	Geometry *Geometry
	Material *material.Material

	// Uniforms is a per-draw parameter bag read by the renderer.
	Uniforms any
}

// Node is a point in the transform hierarchy.
type Node struct {
	Name string

	Position math.Vec3
	Rotation math.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    math.Vec3
	Visible  bool

	// Base* hold the transform captured by MarkBase. Morphs derive the
	// current transform from these rather than from the previous value.
	BasePosition math.Vec3
	BaseRotation math.Vec3
	BaseScale    math.Vec3

	Solid  *Solid
	Parent *Node

	children []*Node
	disposed bool
}

// NewNode creates an empty transform node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Scale:     math.One3,
		BaseScale: math.One3,
		Visible:   true,
	}
}

// NewSolid creates a node carrying geometry and a material.
func NewSolid(name string, geom *Geometry, mat *material.Material) *Node {
	n := NewNode(name)
	n.Solid = &Solid{Geometry: geom, Material: mat}
	return n
}

// MarkBase stores the current transform as the base transform.
func (n *Node) MarkBase() *Node {
	n.BasePosition = n.Position
	n.BaseRotation = n.Rotation
	n.BaseScale = n.Scale
	return n
}

// At sets the position and returns the node, for builder chains.
func (n *Node) At(x, y, z float32) *Node {
	n.Position = math.Vec3{X: x, Y: y, Z: z}
	return n
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scenegraph: cannot add nil child")
	}
	if debug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("scenegraph: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if debug {
		debugCheckDisposed(n, "RemoveChild (parent)")
	}
	if child.Parent != n {
		panic("scenegraph: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Dispose detaches the node, releases every geometry buffer in its subtree
// and marks all nodes disposed. Materials are shared and left alone.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	if n.Solid != nil && n.Solid.Geometry != nil {
		n.Solid.Geometry.Release()
	}
	n.children = nil
	n.Parent = nil
	n.Solid = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// CountSolids returns the number of solids in the subtree.
func (n *Node) CountSolids() int {
	count := 0
	n.Walk(func(c *Node) bool {
		if c.Solid != nil {
			count++
		}
		return true
	})
	return count
}

// ShownInTree reports whether this node and all its ancestors are visible.
func (n *Node) ShownInTree() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
