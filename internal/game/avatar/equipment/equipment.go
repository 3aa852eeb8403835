// Package equipment attaches armor, accessories and the held item to fixed
// mounts on the body. Every slot is either absent or present; while present
// its transform is re-applied from the gear sliders on each sync.
package equipment

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/logger"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// Equipment slot names.
const (
	SlotHelm          = "helm"
	SlotHood          = "hood"
	SlotMask          = "mask"
	SlotMageHat       = "mage_hat"
	SlotLeftPauldron  = "left_pauldron"
	SlotRightPauldron = "right_pauldron"
	SlotShield        = "shield"
	SlotQuiver        = "quiver"
	SlotHeld          = "held_item"
)

// item is one attachment slot.
type item struct {
	slot   *scenegraph.Slot
	builds int
}

func newItem(name string, mount *scenegraph.Node) *item {
	return &item{slot: scenegraph.NewSlot(name, mount)}
}

func (it *item) present() bool { return it.slot.Occupied() }

func (it *item) root() *scenegraph.Node {
	if !it.present() {
		return nil
	}
	return it.slot.Current()
}

// set moves the slot to the wanted state, building with build when it
// becomes present. It reports whether the state changed.
func (it *item) set(want bool, build func() *scenegraph.Node) bool {
	switch {
	case want && !it.present():
		n := build()
		if n == nil {
			return false
		}
		it.slot.Attach(n)
		it.builds++
		logger.Debug("equipment attached", zap.String("slot", it.slot.Name), zap.String("root", n.Name))
		return true
	case !want && it.present():
		it.slot.Clear()
		logger.Debug("equipment detached", zap.String("slot", it.slot.Name))
		return true
	}
	return false
}

// Manager owns the equipment of one avatar.
type Manager struct {
	parts *body.Parts
	arena *scenegraph.Arena

	steel   *material.Material
	wood    *material.Material
	leather *material.Material
	fabric  *material.Material

	helm      *item
	hood      *item
	mask      *item
	hat       *item
	pauldrons [2]*item
	shield    *item
	quiver    *item
	held      *item

	heldName appearance.HeldItem
	unknown  map[appearance.HeldItem]bool
}

// NewManager creates a manager with every slot absent.
func NewManager(parts *body.Parts, arena *scenegraph.Arena) *Manager {
	m := &Manager{
		parts:   parts,
		arena:   arena,
		steel:   material.New("steel", math.Vec3{X: 0.66, Y: 0.68, Z: 0.72}, 0.3),
		wood:    material.New("wood", math.Vec3{X: 0.45, Y: 0.3, Z: 0.17}, 0.8),
		leather: material.New("leather", math.Vec3{X: 0.36, Y: 0.23, Z: 0.14}, 0.7),
		fabric:  material.New("fabric", math.One3, 0.9),
		helm:    newItem(SlotHelm, parts.HeadMount),
		hood:    newItem(SlotHood, parts.HeadMount),
		mask:    newItem(SlotMask, parts.FaceMount),
		hat:     newItem(SlotMageHat, parts.HeadMount),
		shield:  newItem(SlotShield, parts.ShieldMount),
		quiver:  newItem(SlotQuiver, parts.BackMount),
		held:    newItem(SlotHeld, parts.HandMounts[body.Right]),
		unknown: make(map[appearance.HeldItem]bool),
	}
	m.pauldrons[body.Left] = newItem(SlotLeftPauldron, parts.ShoulderMounts[body.Left])
	m.pauldrons[body.Right] = newItem(SlotRightPauldron, parts.ShoulderMounts[body.Right])
	return m
}

// Sync attaches and detaches slots to match the appearance, then places
// every present slot from the gear sliders. It returns the number of slots
// whose presence changed.
func (m *Manager) Sync(app appearance.Appearance) int {
	e := app.Equipment
	m.fabric.SetColor(app.Colors.Robe.Float())

	changed := 0
	count := func(c bool) {
		if c {
			changed++
		}
	}
	count(m.helm.set(e.Helm, m.buildHelm))
	count(m.hood.set(e.Hood, m.buildHood))
	count(m.mask.set(e.Mask, m.buildMask))
	count(m.hat.set(e.MageHat, m.buildMageHat))
	for _, s := range []body.Side{body.Left, body.Right} {
		count(m.pauldrons[s].set(e.Pauldrons, func() *scenegraph.Node { return m.buildPauldron(s) }))
	}
	count(m.shield.set(e.Shield, m.buildShield))
	count(m.quiver.set(e.Quiver, m.buildQuiver))
	count(m.syncHeld(app.SelectedItem))

	m.place(app.Gear)
	return changed
}

// syncHeld swaps the held item. A different name always passes through
// the absent state; the same name is a no-op.
func (m *Manager) syncHeld(name appearance.HeldItem) bool {
	if name == m.heldName {
		return false
	}
	changed := m.held.set(false, nil)
	m.heldName = name
	if name == appearance.NoItem {
		return changed
	}
	if !name.Known() {
		if !m.unknown[name] {
			m.unknown[name] = true
			logger.Warn("no builder for held item", zap.String("item", string(name)))
		}
		return changed
	}
	return m.held.set(true, func() *scenegraph.Node { return BuildItem(name, m.arena, m.wood, m.steel) }) || changed
}

// place re-applies slider-driven transforms to present slots.
func (m *Manager) place(g appearance.GearTuning) {
	if n := m.helm.root(); n != nil {
		n.Position = n.BasePosition.Add(math.Vec3{Y: g.HelmLift})
		n.Scale = n.BaseScale.Scale(g.HelmScale)
	}
	if n := m.hood.root(); n != nil {
		n.Scale = n.BaseScale.Scale(g.HoodScale)
	}
	if n := m.mask.root(); n != nil {
		n.Position = n.BasePosition.Add(math.Vec3{Z: g.MaskForward})
	}
	if n := m.hat.root(); n != nil {
		n.Rotation = n.BaseRotation.Add(math.Vec3{X: -g.MageHatTilt})
		n.Scale = n.BaseScale.Mul(math.Vec3{X: 1, Y: g.MageHatHeight, Z: 1})
	}
	stretch := math.Vec3{X: g.PauldronStretch.X, Y: g.PauldronStretch.Y, Z: g.PauldronStretch.Z}
	for _, p := range m.pauldrons {
		if n := p.root(); n != nil {
			n.Scale = n.BaseScale.Mul(stretch).Scale(g.PauldronScale)
		}
	}
	if n := m.shield.root(); n != nil {
		n.Position = n.BasePosition.Add(math.Vec3{X: g.ShieldOffset.X, Y: g.ShieldOffset.Y, Z: g.ShieldOffset.Z})
		n.Scale = n.BaseScale.Scale(g.ShieldScale)
	}
	if n := m.quiver.root(); n != nil {
		n.Rotation = n.BaseRotation.Add(math.Vec3{Z: g.QuiverTilt})
	}
	if n := m.held.root(); n != nil {
		n.Scale = n.BaseScale.Scale(g.HeldItemScale)
	}
}

// Held returns the held item and its root node, or NoItem and nil.
func (m *Manager) Held() (appearance.HeldItem, *scenegraph.Node) {
	n := m.held.root()
	if n == nil {
		return appearance.NoItem, nil
	}
	return m.heldName, n
}

// Present reports whether a slot has an item attached.
func (m *Manager) Present(slot string) bool {
	if it := m.slot(slot); it != nil {
		return it.present()
	}
	return false
}

// Root returns the attached subtree of a slot, or nil.
func (m *Manager) Root(slot string) *scenegraph.Node {
	if it := m.slot(slot); it != nil {
		return it.root()
	}
	return nil
}

func (m *Manager) slot(name string) *item {
	switch name {
	case SlotHelm:
		return m.helm
	case SlotHood:
		return m.hood
	case SlotMask:
		return m.mask
	case SlotMageHat:
		return m.hat
	case SlotLeftPauldron:
		return m.pauldrons[body.Left]
	case SlotRightPauldron:
		return m.pauldrons[body.Right]
	case SlotShield:
		return m.shield
	case SlotQuiver:
		return m.quiver
	case SlotHeld:
		return m.held
	}
	return nil
}

func (m *Manager) all() []*item {
	return []*item{m.helm, m.hood, m.mask, m.hat, m.pauldrons[body.Left], m.pauldrons[body.Right], m.shield, m.quiver, m.held}
}

// Builds returns the number of attachments made per slot.
func (m *Manager) Builds() map[string]int {
	out := make(map[string]int)
	for _, it := range m.all() {
		out[it.slot.Name] = it.builds
	}
	return out
}

// Solids returns the number of live equipment solids.
func (m *Manager) Solids() int {
	n := 0
	for _, it := range m.all() {
		if r := it.root(); r != nil {
			n += r.CountSolids()
		}
	}
	return n
}

// Dispose detaches and releases every slot.
func (m *Manager) Dispose() {
	for _, it := range m.all() {
		it.slot.Clear()
	}
	m.heldName = appearance.NoItem
}
