package clothing

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/logger"
)

// piece is one garment subtree and the body node it hangs from.
type piece struct {
	mount *scenegraph.Node
	node  *scenegraph.Node
}

// kit collects the pieces of one garment build, one container per mount.
type kit struct {
	name   string
	roots  map[*scenegraph.Node]*scenegraph.Node
	pieces []piece
}

func newKit(name string) *kit {
	return &kit{name: name, roots: make(map[*scenegraph.Node]*scenegraph.Node)}
}

// under returns the container attached to mount, creating it on first use.
func (k *kit) under(mount *scenegraph.Node) *scenegraph.Node {
	if root, ok := k.roots[mount]; ok {
		return root
	}
	root := scenegraph.NewNode(k.name)
	k.roots[mount] = root
	k.pieces = append(k.pieces, piece{mount: mount, node: root})
	return root
}

// garment is one clothing slot: the subtrees it attached, keyed by mount,
// and the key they were built from.
type garment[K comparable] struct {
	name   string
	key    K
	built  bool
	slots  map[*scenegraph.Node]*scenegraph.Slot
	builds int
}

func newGarment[K comparable](name string) *garment[K] {
	return &garment[K]{name: name, slots: make(map[*scenegraph.Node]*scenegraph.Slot)}
}

// sync rebuilds the garment when key differs from the last build. The new
// pieces are built first, then the old subtrees are released, then the new
// ones attached. It reports whether a rebuild happened.
func (g *garment[K]) sync(key K, build func(K) []piece) bool {
	if g.built && g.key == key {
		return false
	}
	pieces := build(key)
	g.clear()
	for _, pc := range pieces {
		slot, ok := g.slots[pc.mount]
		if !ok {
			slot = scenegraph.NewSlot(g.name, pc.mount)
			g.slots[pc.mount] = slot
		}
		slot.Attach(pc.node)
	}
	g.key = key
	g.built = true
	g.builds++
	logger.Debug("garment rebuilt",
		zap.String("slot", g.name),
		zap.Int("pieces", len(pieces)),
		zap.Int("builds", g.builds))
	return true
}

// clear releases every subtree the garment attached.
func (g *garment[K]) clear() {
	for _, slot := range g.slots {
		slot.Clear()
	}
}

// reset clears the garment and forgets its key.
func (g *garment[K]) reset() {
	g.clear()
	var zero K
	g.key = zero
	g.built = false
}

// present reports whether any subtree is attached.
func (g *garment[K]) present() bool {
	for _, slot := range g.slots {
		if slot.Occupied() {
			return true
		}
	}
	return false
}

// nodes returns the attached subtrees.
func (g *garment[K]) nodes() []*scenegraph.Node {
	var out []*scenegraph.Node
	for _, slot := range g.slots {
		if slot.Occupied() {
			out = append(out, slot.Current())
		}
	}
	return out
}

func (g *garment[K]) solids() int {
	n := 0
	for _, node := range g.nodes() {
		n += node.CountSolids()
	}
	return n
}
