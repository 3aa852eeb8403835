// Package avatar wires the procedural humanoid together: materials, body
// synthesis, morphs, clothing, equipment and hair. A Model is built once
// from an appearance and then kept consistent with Sync and Update.
package avatar

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/clothing"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/debugview"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/equipment"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/hair"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/morph"
	"github.com/Faultbox/midgard-avatar/internal/logger"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

// MountName names an attachment point on the body.
type MountName string

const (
	MountHead          MountName = "head"
	MountFace          MountName = "face"
	MountLeftShoulder  MountName = "left_shoulder"
	MountRightShoulder MountName = "right_shoulder"
	MountBack          MountName = "back"
	MountLeftHand      MountName = "left_hand"
	MountRightHand     MountName = "right_hand"
	MountShield        MountName = "shield"
	MountWaist         MountName = "waist"
)

type options struct {
	hair     hair.Params
	clothing clothing.Options
	eyeSize  int
	blink    float32
}

// Option configures New.
type Option func(*options)

// WithHairParams overrides the hair simulation tuning.
func WithHairParams(p hair.Params) Option {
	return func(o *options) { o.hair = p }
}

// WithTextures sets the garment paint size and upscale factor.
func WithTextures(paintSize, upscale int) Option {
	return func(o *options) {
		o.clothing.PaintSize = paintSize
		o.clothing.Upscale = upscale
	}
}

// WithEyeSize sets the painted eye texture edge in pixels.
func WithEyeSize(size int) Option {
	return func(o *options) { o.eyeSize = size }
}

// WithBlinkInterval sets the automatic blink interval in seconds. Zero
// disables automatic blinking.
func WithBlinkInterval(seconds float32) Option {
	return func(o *options) { o.blink = seconds }
}

// Model is one avatar instance. It is not safe for concurrent use.
type Model struct {
	arena     *scenegraph.Arena
	mats      *materials.Set
	parts     *body.Parts
	overlay   debugview.Overlay
	clothing  *clothing.Manager
	equipment *equipment.Manager
	hands     *morph.HandPoser
	blinker   *morph.Blinker
	hair      *hair.Sim
	uniforms  hair.Uniforms

	style    appearance.HairStyle
	checked  checkKey
	hasCheck bool
	syncs    int
	disposed bool
}

// checkKey holds the appearance fields Validate looks at.
type checkKey struct {
	legs   [4]bool
	item   appearance.HeldItem
	body   appearance.BodyType
	outfit appearance.Outfit
	hair   appearance.HairStyle
}

func checkKeyOf(app appearance.Appearance) checkKey {
	e := app.Equipment
	return checkKey{
		legs:   [4]bool{e.ChainLeggings, e.HideBreeches, e.Pants, e.Shorts},
		item:   app.SelectedItem,
		body:   app.BodyType,
		outfit: app.Outfit,
		hair:   app.HairStyle,
	}
}

// validate warns about appearance problems once per distinct combination.
func (m *Model) validate(app appearance.Appearance) {
	key := checkKeyOf(app)
	if m.hasCheck && key == m.checked {
		return
	}
	m.checked, m.hasCheck = key, true
	if err := app.Validate(); err != nil {
		logger.Warn("appearance has problems", zap.Error(err))
	}
}

// New builds the avatar and syncs it to app once.
func New(app appearance.Appearance, opts ...Option) *Model {
	o := options{
		hair:     hair.DefaultParams(),
		clothing: clothing.DefaultOptions(),
		eyeSize:  materials.DefaultEyeSize,
		blink:    morph.BlinkInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	arena := scenegraph.NewArena()
	mats := materials.NewSet(app, materials.Options{EyeSize: o.eyeSize})
	parts := body.Build(app, mats, arena)

	m := &Model{
		arena:     arena,
		mats:      mats,
		parts:     parts,
		clothing:  clothing.NewManager(parts, mats, arena, o.clothing),
		equipment: equipment.NewManager(parts, arena),
		hands:     morph.NewHandPoser(),
		blinker:   morph.NewBlinker(),
		hair:      hair.New(o.hair),
		style:     app.HairStyle,
	}
	m.blinker.Interval = o.blink

	logger.Info("avatar built",
		zap.String("body", string(app.BodyType)),
		zap.String("hair", string(app.HairStyle)),
		zap.Int("buffers", arena.Live()))

	m.Sync(app, false)
	return m
}

// Sync brings the node graph in line with app. Stages run in a fixed
// order: materials, debug overlay, body morph, clothing, equipment, hair.
// The hair style is fixed at construction and ignored here.
func (m *Model) Sync(app appearance.Appearance, combat bool) {
	if m.disposed {
		logger.Warn("sync on disposed avatar")
		return
	}
	m.validate(app)

	m.mats.Sync(app)
	m.overlay.Apply(m.parts, app.DebugHead, m.mats)
	morph.Apply(m.parts, app)
	garments := m.clothing.Sync(app)
	gear := m.equipment.Sync(app)
	m.syncHair(app)
	m.hands.SetTargets(app, combat)

	m.syncs++
	if garments > 0 || gear > 0 {
		logger.Debug("avatar rebuilt slots",
			zap.Int("garments", garments),
			zap.Int("equipment", gear),
			zap.Int("buffers", m.arena.Live()))
	}
}

// syncHair updates hair visibility. The color comes from the material set.
func (m *Model) syncHair(app appearance.Appearance) {
	if m.parts.Hair == nil {
		return
	}
	m.parts.Hair.Visible = !app.Equipment.Helm && !app.Equipment.Hood
}

// Update advances per-frame motion: hair inertia, finger curl and blinking.
// dt is in seconds. rootVel is locomotion the node graph does not show, such
// as a character moved by its owner's transform outside Root; pass zero when
// Root itself is moved, or the motion counts twice.
func (m *Model) Update(dt float32, rootVel math.Vec3) {
	if m.disposed || dt <= 0 {
		return
	}
	head := m.parts.Head
	m.uniforms = m.hair.Update(dt, head.WorldPosition(), head.WorldRotation(), rootVel)
	if m.parts.Hair != nil && m.parts.Hair.Solid != nil {
		m.parts.Hair.Solid.Uniforms = m.uniforms
	}
	m.hands.Step(m.parts, dt)
	m.blinker.Step(m.parts, dt)
}

// Root returns the root node of the avatar.
func (m *Model) Root() *scenegraph.Node {
	return m.parts.Root
}

// Parts returns the parts registry.
func (m *Model) Parts() *body.Parts {
	return m.parts
}

// Mount returns a named attachment node, or nil for an unknown name.
func (m *Model) Mount(name MountName) *scenegraph.Node {
	p := m.parts
	switch name {
	case MountHead:
		return p.HeadMount
	case MountFace:
		return p.FaceMount
	case MountLeftShoulder:
		return p.ShoulderMounts[body.Left]
	case MountRightShoulder:
		return p.ShoulderMounts[body.Right]
	case MountBack:
		return p.BackMount
	case MountLeftHand:
		return p.HandMounts[body.Left]
	case MountRightHand:
		return p.HandMounts[body.Right]
	case MountShield:
		return p.ShieldMount
	case MountWaist:
		return p.WaistMount
	}
	return nil
}

// HairUniforms returns the hair output of the last Update.
func (m *Model) HairUniforms() hair.Uniforms {
	return m.uniforms
}

// ResetHair reseeds the hair simulation, e.g. after the character is
// placed somewhere else.
func (m *Model) ResetHair() {
	m.hair.Reset()
	m.uniforms = m.hair.Uniforms()
}

// Blink starts an eyelid blink unless one is running.
func (m *Model) Blink() {
	m.blinker.Trigger()
}

// Hands returns the finger curl state.
func (m *Model) Hands() *morph.HandPoser {
	return m.hands
}

// Clothing returns the clothing manager.
func (m *Model) Clothing() *clothing.Manager {
	return m.clothing
}

// Equipment returns the equipment manager.
func (m *Model) Equipment() *equipment.Manager {
	return m.equipment
}

// Stats summarizes the state of the model.
type Stats struct {
	Syncs           int
	Arena           scenegraph.ArenaStats
	Clothing        clothing.Stats
	EquipmentBuilds map[string]int
	EquipmentSolids int
	EyeRepaints     int
	HairStyle       appearance.HairStyle
	DebugHead       bool
}

// Stats returns counters for inspection tools and tests.
func (m *Model) Stats() Stats {
	return Stats{
		Syncs:           m.syncs,
		Arena:           m.arena.Stats(),
		Clothing:        m.clothing.Stats(),
		EquipmentBuilds: m.equipment.Builds(),
		EquipmentSolids: m.equipment.Solids(),
		EyeRepaints:     m.mats.EyeRepaints(),
		HairStyle:       m.style,
		DebugHead:       m.overlay.Enabled(),
	}
}

// Dispose releases every geometry buffer. The model must not be used
// afterwards; Sync and Update become no-ops.
func (m *Model) Dispose() {
	if m.disposed {
		return
	}
	m.clothing.Dispose()
	m.equipment.Dispose()
	m.parts.Root.Dispose()
	m.arena.ReleaseAll()
	m.disposed = true
	logger.Debug("avatar disposed")
}
