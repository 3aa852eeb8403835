package material

import (
	"image"
	"testing"

	"github.com/Faultbox/midgard-avatar/pkg/math"
)

func TestSetColorBumpsVersion(t *testing.T) {
	m := New("skin", math.V3(1, 0.8, 0.7), 0.6)

	if m.SetColor(math.V3(1, 0.8, 0.7)) {
		t.Error("SetColor with same color reported a change")
	}
	if m.Version != 0 {
		t.Errorf("Version = %d, want 0", m.Version)
	}
	if !m.SetColor(math.V3(0.2, 0.2, 0.2)) {
		t.Error("SetColor with new color reported no change")
	}
	if m.Version != 1 {
		t.Errorf("Version = %d, want 1", m.Version)
	}

	m.SetTexture(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if m.Version != 2 {
		t.Errorf("Version after SetTexture = %d, want 2", m.Version)
	}
}

func TestFlat(t *testing.T) {
	m := Flat("debug", math.V3(1, 0, 0))
	if !m.Unlit {
		t.Error("Flat material should be unlit")
	}
	if m.Transparent() {
		t.Error("Flat material should be opaque")
	}
	m.Opacity = 0.5
	if !m.Transparent() {
		t.Error("half opacity should be transparent")
	}
}
