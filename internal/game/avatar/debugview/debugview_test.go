package debugview

import (
	"testing"

	"github.com/Faultbox/midgard-avatar/internal/engine/material"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/body"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
)

func setup(t *testing.T) (*body.Parts, *materials.Set) {
	t.Helper()
	app := appearance.Default(appearance.Male)
	app.BrainVisible = true
	mats := materials.NewSet(app, materials.Options{EyeSize: 8})
	return body.Build(app, mats, scenegraph.NewArena()), mats
}

func materialsOf(p *body.Parts) map[*scenegraph.Node]*material.Material {
	out := make(map[*scenegraph.Node]*material.Material)
	for _, n := range p.HeadSolids {
		out[n] = n.Solid.Material
	}
	return out
}

func TestOverlayRoundTrip(t *testing.T) {
	p, mats := setup(t)
	original := materialsOf(p)

	var o Overlay
	o.Apply(p, true, mats)
	for _, n := range p.HeadSolids {
		m := n.Solid.Material
		if !m.Unlit {
			t.Errorf("%s: expected flat material, got %q", n.Name, m.Name)
		}
		if m.BaseColor != Palette[n.Name] {
			t.Errorf("%s: color %v, want %v", n.Name, m.BaseColor, Palette[n.Name])
		}
	}

	o.Apply(p, false, mats)
	for n, want := range original {
		if n.Solid.Material != want {
			t.Errorf("%s: restored %q, want %q", n.Name, n.Solid.Material.Name, want.Name)
		}
	}
}

func TestOverlayIdempotent(t *testing.T) {
	p, mats := setup(t)
	var o Overlay

	o.Apply(p, true, mats)
	first := materialsOf(p)
	o.Apply(p, true, mats)
	if got := materialsOf(p); len(got) != len(first) {
		t.Fatalf("solid count changed")
	} else {
		for n, m := range first {
			if got[n] != m {
				t.Errorf("%s: material changed on repeated apply", n.Name)
			}
		}
	}

	o.Apply(p, false, mats)
	off := materialsOf(p)
	o.Apply(p, false, mats)
	for n, m := range off {
		if n.Solid.Material != m {
			t.Errorf("%s: material changed on repeated disable", n.Name)
		}
	}
}

func TestOverlayLeavesBodyAlone(t *testing.T) {
	p, mats := setup(t)
	var o Overlay
	o.Apply(p, true, mats)

	if p.Torso.Solid.Material != mats.Skin {
		t.Errorf("torso material = %q, want skin", p.Torso.Solid.Material.Name)
	}
	if !o.Enabled() {
		t.Error("overlay should report enabled")
	}
}

func TestPaletteCoversHeadSolids(t *testing.T) {
	p, _ := setup(t)
	for _, n := range p.HeadSolids {
		if _, ok := Palette[n.Name]; !ok {
			t.Errorf("head solid %q has no diagnostic color", n.Name)
		}
	}
}
