package equipment

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/model"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/internal/logger"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

type fixture struct {
	parts *body.Parts
	arena *scenegraph.Arena
	m     *Manager
	base  int
}

func newFixture(t *testing.T, app appearance.Appearance) *fixture {
	t.Helper()
	scenegraph.SetDebug(true)
	t.Cleanup(func() { scenegraph.SetDebug(false) })

	arena := scenegraph.NewArena()
	mats := materials.NewSet(app, materials.Options{EyeSize: 8})
	parts := body.Build(app, mats, arena)
	return &fixture{parts: parts, arena: arena, m: NewManager(parts, arena), base: arena.Live()}
}

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func armored() appearance.Appearance {
	app := appearance.Default(appearance.Male)
	e := &app.Equipment
	e.Helm, e.Mask, e.Pauldrons, e.Shield, e.Quiver = true, true, true, true, true
	app.SelectedItem = appearance.Sword
	return app
}

func TestSyncMemoized(t *testing.T) {
	app := armored()
	f := newFixture(t, app)

	if got := f.m.Sync(app); got != 7 {
		t.Fatalf("first sync changed %d slots, want 7", got)
	}
	live := f.arena.Live()
	if got := f.m.Sync(app); got != 0 {
		t.Errorf("second sync changed %d slots, want 0", got)
	}
	if got := f.arena.Live(); got != live {
		t.Errorf("live buffers %d after no-op sync, want %d", got, live)
	}
	for slot, n := range f.m.Builds() {
		if n > 1 {
			t.Errorf("slot %s built %d times", slot, n)
		}
	}
}

func TestHeldItemSwap(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.SelectedItem = appearance.Axe
	f := newFixture(t, app)
	f.m.Sync(app)

	_, axe := f.m.Held()
	if axe == nil || axe.Name != "Axe" {
		t.Fatalf("held root = %v, want Axe", axe)
	}

	app.SelectedItem = appearance.Sword
	if got := f.m.Sync(app); got != 1 {
		t.Errorf("swap changed %d slots, want 1", got)
	}

	mount := f.parts.HandMounts[body.Right]
	if got := mount.NumChildren(); got != 1 {
		t.Fatalf("hand mount has %d children, want 1", got)
	}
	if got := mount.Children()[0].Name; got != "Sword" {
		t.Errorf("hand mount child %q, want Sword", got)
	}
	if !axe.IsDisposed() {
		t.Error("previous item was not disposed")
	}
	name, n := f.m.Held()
	if name != appearance.Sword || n != mount.Children()[0] {
		t.Errorf("Held() = %q, %v", name, n)
	}

	app.SelectedItem = appearance.NoItem
	f.m.Sync(app)
	if mount.NumChildren() != 0 {
		t.Error("clearing the item left children on the hand mount")
	}
	if name, n := f.m.Held(); name != appearance.NoItem || n != nil {
		t.Errorf("Held() after clear = %q, %v", name, n)
	}
	if got := f.arena.Live(); got != f.base {
		t.Errorf("live buffers %d after clear, want %d", got, f.base)
	}
}

func TestSameItemIsNoOp(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.SelectedItem = appearance.Pickaxe
	f := newFixture(t, app)
	f.m.Sync(app)
	_, first := f.m.Held()

	app.Gear.HeldItemScale = 1.3
	f.m.Sync(app)
	_, second := f.m.Held()
	if first != second {
		t.Error("same item was rebuilt")
	}
	if got := second.Scale; !got.ApproxEqual(math.Splat(1.3), 1e-6) {
		t.Errorf("held scale = %v, want 1.3", got)
	}
	if got := f.m.Builds()[SlotHeld]; got != 1 {
		t.Errorf("held builds = %d, want 1", got)
	}
}

func TestUnknownItemWarnsOnce(t *testing.T) {
	logs := observeWarnings(t)
	app := appearance.Default(appearance.Male)
	app.SelectedItem = appearance.Knife
	f := newFixture(t, app)
	f.m.Sync(app)

	app.SelectedItem = "Trident"
	f.m.Sync(app)
	f.m.Sync(app)
	app.SelectedItem = appearance.NoItem
	f.m.Sync(app)
	app.SelectedItem = "Trident"
	f.m.Sync(app)

	if f.m.Present(SlotHeld) {
		t.Error("unknown item built something")
	}
	if got := f.parts.HandMounts[body.Right].NumChildren(); got != 0 {
		t.Errorf("hand mount has %d children", got)
	}
	if got := logs.FilterMessage("no builder for held item").Len(); got != 1 {
		t.Errorf("got %d warnings, want 1", got)
	}
}

func TestToggleHelm(t *testing.T) {
	app := appearance.Default(appearance.Male)
	f := newFixture(t, app)
	f.m.Sync(app)

	mount := f.parts.HeadMount
	before := mount.NumChildren()

	app.Equipment.Helm = true
	if got := f.m.Sync(app); got != 1 {
		t.Errorf("helm on changed %d slots, want 1", got)
	}
	if !f.m.Present(SlotHelm) || mount.NumChildren() != before+1 {
		t.Fatal("helm not attached to the head mount")
	}
	if f.m.Solids() == 0 {
		t.Error("helm has no solids")
	}

	app.Equipment.Helm = false
	if got := f.m.Sync(app); got != 1 {
		t.Errorf("helm off changed %d slots, want 1", got)
	}
	if f.m.Present(SlotHelm) || mount.NumChildren() != before {
		t.Error("helm still attached")
	}
	if got := f.arena.Live(); got != f.base {
		t.Errorf("live buffers %d, want %d", got, f.base)
	}
}

func TestSlidersDoNotRebuild(t *testing.T) {
	app := armored()
	app.Equipment.MageHat = true
	app.Equipment.Helm = false
	f := newFixture(t, app)
	f.m.Sync(app)

	app.Equipment.Helm = true
	f.m.Sync(app)
	helm := f.m.Root(SlotHelm)
	pauldron := f.m.Root(SlotLeftPauldron)
	base := pauldron.BaseScale

	tests := []struct {
		name  string
		tweak func(*appearance.GearTuning)
		check func(t *testing.T)
	}{
		{
			name:  "helm scale and lift",
			tweak: func(g *appearance.GearTuning) { g.HelmScale, g.HelmLift = 1.2, 0.01 },
			check: func(t *testing.T) {
				if !helm.Scale.ApproxEqual(helm.BaseScale.Scale(1.2), 1e-6) {
					t.Errorf("helm scale = %v", helm.Scale)
				}
				if got, want := helm.Position.Y, helm.BasePosition.Y+0.01; math.Abs(got-want) > 1e-6 {
					t.Errorf("helm y = %f, want %f", got, want)
				}
			},
		},
		{
			name: "pauldron stretch",
			tweak: func(g *appearance.GearTuning) {
				g.PauldronScale = 1.1
				g.PauldronStretch = appearance.Stretch{X: 1.4, Y: 0.8, Z: 1}
			},
			check: func(t *testing.T) {
				want := base.Mul(math.Vec3{X: 1.4, Y: 0.8, Z: 1}).Scale(1.1)
				if !pauldron.Scale.ApproxEqual(want, 1e-6) {
					t.Errorf("pauldron scale = %v, want %v", pauldron.Scale, want)
				}
			},
		},
		{
			name:  "mage hat",
			tweak: func(g *appearance.GearTuning) { g.MageHatHeight, g.MageHatTilt = 1.5, 0.2 },
			check: func(t *testing.T) {
				hat := f.m.Root(SlotMageHat)
				if got := hat.Scale.Y; math.Abs(got-1.5) > 1e-6 {
					t.Errorf("hat height = %f", got)
				}
				if got := hat.Rotation.X; math.Abs(got-(hat.BaseRotation.X-0.2)) > 1e-6 {
					t.Errorf("hat tilt = %f", got)
				}
			},
		},
		{
			name:  "shield offset",
			tweak: func(g *appearance.GearTuning) { g.ShieldOffset = appearance.Stretch{X: 0.02}; g.ShieldScale = 0.9 },
			check: func(t *testing.T) {
				s := f.m.Root(SlotShield)
				if got := s.Position.X - s.BasePosition.X; math.Abs(got-0.02) > 1e-6 {
					t.Errorf("shield offset = %f", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builds := f.m.Builds()
			tt.tweak(&app.Gear)
			if got := f.m.Sync(app); got != 0 {
				t.Errorf("slider sync changed %d slots", got)
			}
			for slot, n := range f.m.Builds() {
				if n != builds[slot] {
					t.Errorf("slot %s rebuilt", slot)
				}
			}
			tt.check(t)
		})
	}

	// repeated syncs with the same sliders do not accumulate
	scale := helm.Scale
	f.m.Sync(app)
	f.m.Sync(app)
	if helm.Scale != scale {
		t.Errorf("helm scale drifted to %v", helm.Scale)
	}
}

func itemBounds(root *scenegraph.Node) model.Bounds {
	b := model.Bounds{Min: math.Splat(1e9), Max: math.Splat(-1e9)}
	root.Walk(func(n *scenegraph.Node) bool {
		if n.Solid == nil {
			return true
		}
		mb := n.Solid.Geometry.Mesh.ComputeBounds()
		b.Min = b.Min.Min(mb.Min.Add(n.Position))
		b.Max = b.Max.Max(mb.Max.Add(n.Position))
		return true
	})
	return b
}

func TestItemMountConvention(t *testing.T) {
	arena := scenegraph.NewArena()
	wood := material.New("wood", math.Vec3{X: 0.4, Y: 0.3, Z: 0.2}, 0.8)
	steel := material.New("steel", math.Splat(0.7), 0.3)

	for _, name := range appearance.HeldItems {
		t.Run(string(name), func(t *testing.T) {
			root := BuildItem(name, arena, wood, steel)
			if root == nil {
				t.Fatal("no item built")
			}
			if root.Name != string(name) {
				t.Errorf("root name %q", root.Name)
			}
			b := itemBounds(root)
			size := b.Size()
			if size.Y <= size.X || size.Y <= size.Z {
				t.Errorf("handle not along Y: size %v", size)
			}
			if b.Min.Y >= 0 || b.Max.Y <= 0 {
				t.Errorf("grip origin outside item: %v..%v", b.Min.Y, b.Max.Y)
			}
			// the sword is double edged
			if name != appearance.Sword && b.Max.Z <= -b.Min.Z {
				t.Errorf("head does not point to +Z: z %f..%f", b.Min.Z, b.Max.Z)
			}
			root.Dispose()
		})
	}
	if got := arena.Live(); got != 0 {
		t.Errorf("live buffers %d after disposing items", got)
	}
	if BuildItem("Trident", arena, wood, steel) != nil {
		t.Error("unknown item built")
	}
	if BuildItem(appearance.NoItem, arena, wood, steel) != nil {
		t.Error("empty item built")
	}
}

func TestRobeColorsFabric(t *testing.T) {
	app := appearance.Default(appearance.Male)
	app.Equipment.Hood = true
	f := newFixture(t, app)
	f.m.Sync(app)

	app.Colors.Robe = appearance.Hex("#112233")
	f.m.Sync(app)
	hood := f.m.Root(SlotHood).Find("hood_cowl")
	if got, want := hood.Solid.Material.BaseColor, app.Colors.Robe.Float(); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("hood color = %v, want %v", got, want)
	}
	if got := f.m.Builds()[SlotHood]; got != 1 {
		t.Errorf("recolor rebuilt the hood %d times", got)
	}
}

func TestDispose(t *testing.T) {
	app := armored()
	app.Equipment.Hood = true
	f := newFixture(t, app)
	f.m.Sync(app)

	f.m.Dispose()
	if got := f.arena.Live(); got != f.base {
		t.Errorf("live buffers %d after dispose, want %d", got, f.base)
	}
	for _, slot := range []string{SlotHelm, SlotHood, SlotMask, SlotLeftPauldron, SlotRightPauldron, SlotShield, SlotQuiver, SlotHeld} {
		if f.m.Present(slot) {
			t.Errorf("%s still present", slot)
		}
	}
	// a later sync rebuilds from scratch
	if got := f.m.Sync(app); got != 8 {
		t.Errorf("sync after dispose changed %d slots, want 8", got)
	}
}
