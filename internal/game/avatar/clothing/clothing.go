// Package clothing owns the swappable garment subtrees of one avatar. Each
// garment is rebuilt only when the appearance fields it depends on change;
// a rebuild releases the previous geometry before attaching the new one.
package clothing

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/internal/logger"
)

// Garment slot names.
const (
	SlotShirt    = "shirt"
	SlotLegs     = "legs"
	SlotApron    = "apron"
	SlotRobe     = "robe"
	SlotCape     = "cape"
	SlotBelt     = "belt"
	SlotBracers  = "bracers"
	SlotGloves   = "gloves"
	SlotFootwear = "footwear"
)

// Slots lists every garment slot in sync order.
var Slots = []string{SlotShirt, SlotLegs, SlotApron, SlotRobe, SlotCape, SlotBelt, SlotBracers, SlotGloves, SlotFootwear}

// Options tunes garment textures.
type Options struct {
	PaintSize int // painted texture edge in pixels
	Upscale   int // nearest-neighbour upscale factor
}

// DefaultOptions returns the default texture settings.
func DefaultOptions() Options {
	return Options{PaintSize: 16, Upscale: 4}
}

// Stats summarizes the manager's work.
type Stats struct {
	Builds      map[string]int // rebuilds per slot
	Solids      int            // live garment solids
	LegCovering appearance.LegCovering
}

// Manager keeps the garments of one avatar in step with its appearance.
type Manager struct {
	parts *body.Parts
	mats  *materials.Set
	arena *scenegraph.Arena
	opts  Options

	shirt    *garment[shirtKey]
	legs     *garment[legsKey]
	apron    *garment[toggleKey]
	robe     *garment[toggleKey]
	cape     *garment[toggleKey]
	belt     *garment[toggleKey]
	bracers  *garment[toggleKey]
	gloves   *garment[toggleKey]
	footwear *garment[toggleKey]

	// shirt layer pieces repositioned on every sync
	shirtChest *scenegraph.Node
	shirtAbs   [6]*scenegraph.Node
	shirtCups  [2]*scenegraph.Node

	legCovering appearance.LegCovering
	warned      map[legFlags]bool
}

// NewManager creates a manager with every slot empty.
func NewManager(parts *body.Parts, mats *materials.Set, arena *scenegraph.Arena, opts Options) *Manager {
	def := DefaultOptions()
	if opts.PaintSize < 4 {
		opts.PaintSize = def.PaintSize
	}
	if opts.Upscale < 1 {
		opts.Upscale = 1
	}
	return &Manager{
		parts:    parts,
		mats:     mats,
		arena:    arena,
		opts:     opts,
		shirt:    newGarment[shirtKey](SlotShirt),
		legs:     newGarment[legsKey](SlotLegs),
		apron:    newGarment[toggleKey](SlotApron),
		robe:     newGarment[toggleKey](SlotRobe),
		cape:     newGarment[toggleKey](SlotCape),
		belt:     newGarment[toggleKey](SlotBelt),
		bracers:  newGarment[toggleKey](SlotBracers),
		gloves:   newGarment[toggleKey](SlotGloves),
		footwear: newGarment[toggleKey](SlotFootwear),
		warned:   make(map[legFlags]bool),
	}
}

// Sync brings every garment up to date and reapplies the per-sync couplings
// with the body: ab overlays, skin pad and underwear visibility. It returns
// the number of garments rebuilt.
func (m *Manager) Sync(app appearance.Appearance) int {
	e := app.Equipment
	m.checkLegFlags(e)

	rebuilt := 0
	count := func(changed bool) {
		if changed {
			rebuilt++
		}
	}
	count(m.shirt.sync(keyShirt(app), m.buildShirt))
	count(m.legs.sync(keyLegs(app), m.buildLegs))
	count(m.apron.sync(toggle(e.Apron, app.Outfit, app.Colors.Apron), m.buildApron))
	count(m.robe.sync(toggle(e.Robe, app.Outfit, app.Colors.Robe), m.buildRobe))
	count(m.cape.sync(toggle(e.Cape, app.Outfit, app.Colors.Cape), m.buildCape))
	count(m.belt.sync(toggle(e.Belt, app.Outfit, app.Colors.Belt), m.buildBelt))
	count(m.bracers.sync(toggle(e.Bracers, app.Outfit, app.Colors.Bracers), m.buildBracers))
	count(m.gloves.sync(toggle(e.Gloves, app.Outfit, app.Colors.Gloves), m.buildGloves))
	count(m.footwear.sync(toggle(e.Shoes, app.Outfit, app.Colors.Shoes), m.buildShoes))
	m.legCovering = app.LegCovering()

	m.swapFeet(e.Shoes)
	m.applyCoverage(app)
	m.placeShirtLayer(app)
	return rebuilt
}

// checkLegFlags logs once per distinct conflicting leg flag combination.
func (m *Manager) checkLegFlags(e appearance.Equipment) {
	names := e.LegFlags()
	if len(names) < 2 {
		return
	}
	f := flagsOf(e)
	if m.warned[f] {
		return
	}
	m.warned[f] = true
	logger.Warn("conflicting leg coverings, building one",
		zap.Strings("flags", names),
		zap.Stringer("using", e.LegCovering()))
}

// applyCoverage hides skin detail under garments.
func (m *Manager) applyCoverage(app appearance.Appearance) {
	p := m.parts
	covered := app.Equipment.TorsoCovered()
	for _, pad := range p.AbPads {
		if pad != nil {
			pad.Visible = !covered
		}
	}
	underwear := app.LegCovering() == appearance.LegsBare && !app.Equipment.Robe
	for _, cheek := range p.ButtockCheeks {
		if cheek.Underwear != nil {
			cheek.Underwear.Visible = underwear
		}
	}
}

// LegCovering returns the leg covering of the last sync.
func (m *Manager) LegCovering() appearance.LegCovering {
	return m.legCovering
}

// Worn reports whether a slot currently has garment geometry attached.
func (m *Manager) Worn(slot string) bool {
	switch slot {
	case SlotShirt:
		return m.shirt.present()
	case SlotLegs:
		return m.legs.present()
	case SlotApron:
		return m.apron.present()
	case SlotRobe:
		return m.robe.present()
	case SlotCape:
		return m.cape.present()
	case SlotBelt:
		return m.belt.present()
	case SlotBracers:
		return m.bracers.present()
	case SlotGloves:
		return m.gloves.present()
	case SlotFootwear:
		return m.footwear.present()
	}
	return false
}

// ShirtOverlays returns the shirt layer ab overlays, nil when no shirt.
func (m *Manager) ShirtOverlays() []*scenegraph.Node {
	if m.shirtChest == nil {
		return nil
	}
	return m.shirtAbs[:]
}

// Stats reports rebuild counts and live solids.
func (m *Manager) Stats() Stats {
	s := Stats{
		Builds: map[string]int{
			SlotShirt:    m.shirt.builds,
			SlotLegs:     m.legs.builds,
			SlotApron:    m.apron.builds,
			SlotRobe:     m.robe.builds,
			SlotCape:     m.cape.builds,
			SlotBelt:     m.belt.builds,
			SlotBracers:  m.bracers.builds,
			SlotGloves:   m.gloves.builds,
			SlotFootwear: m.footwear.builds,
		},
		LegCovering: m.legCovering,
	}
	s.Solids = m.shirt.solids() + m.legs.solids() + m.apron.solids() + m.robe.solids() +
		m.cape.solids() + m.belt.solids() + m.bracers.solids() + m.gloves.solids() + m.footwear.solids()
	return s
}

// Dispose releases every garment and puts the bare feet back.
func (m *Manager) Dispose() {
	m.shirt.reset()
	m.legs.reset()
	m.apron.reset()
	m.robe.reset()
	m.cape.reset()
	m.belt.reset()
	m.bracers.reset()
	m.gloves.reset()
	m.footwear.reset()
	m.forgetShirtLayer()
	m.swapFeet(false)
}
