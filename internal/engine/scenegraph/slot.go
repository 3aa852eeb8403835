package scenegraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-avatar/internal/logger"
)

// Slot holds at most one live subtree under a mount node.
type Slot struct {
	Name    string
	mount   *Node
	current *Node
}

// NewSlot creates an empty slot attaching under mount.
func NewSlot(name string, mount *Node) *Slot {
	return &Slot{Name: name, mount: mount}
}

// Mount returns the node the slot attaches to.
func (s *Slot) Mount() *Node { return s.mount }

// Current returns the live subtree, or nil.
func (s *Slot) Current() *Node { return s.current }

// Occupied reports whether the slot holds a live subtree.
func (s *Slot) Occupied() bool {
	return s.current != nil && !s.current.disposed
}

// Attach puts next under the mount. The slot must be empty: attaching over
// a live subtree panics in debug mode and is logged otherwise, after which
// the old subtree is released so it cannot leak.
func (s *Slot) Attach(next *Node) {
	if s.Occupied() {
		msg := fmt.Sprintf("scenegraph: slot %q attach while %q is still live", s.Name, s.current.Name)
		if debug {
			panic(msg)
		}
		logger.Warn(msg, zap.String("slot", s.Name))
		s.current.Dispose()
	}
	s.current = next
	if next != nil {
		s.mount.AddChild(next)
	}
}

// Replace swaps in next atomically: the previous subtree is detached and
// its geometry released before next is attached. next may be nil.
func (s *Slot) Replace(next *Node) {
	s.Clear()
	s.Attach(next)
}

// Clear detaches and releases the current subtree.
func (s *Slot) Clear() {
	if s.current == nil {
		return
	}
	s.current.Dispose()
	s.current = nil
}

// Retarget moves the slot, and its live subtree, under a different mount.
func (s *Slot) Retarget(mount *Node) {
	s.mount = mount
	if s.current != nil {
		mount.AddChild(s.current)
	}
}
