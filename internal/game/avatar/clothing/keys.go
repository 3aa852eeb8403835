package clothing

import (
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
)

// Garment keys hold only the appearance fields a garment's look depends on.
// Equal keys mean the garment is already up to date.

type shirtKey struct {
	On     bool
	Outfit appearance.Outfit
	Color  appearance.Color
}

type legsKey struct {
	Covering appearance.LegCovering
	Outfit   appearance.Outfit
	Color    appearance.Color
}

// toggleKey serves the garments that are either off or one colored build.
type toggleKey struct {
	On     bool
	Outfit appearance.Outfit
	Color  appearance.Color
}

// toggle collapses every off state to the zero key so recoloring a garment
// that is not worn does not rebuild it.
func toggle(on bool, outfit appearance.Outfit, c appearance.Color) toggleKey {
	if !on {
		return toggleKey{}
	}
	return toggleKey{On: true, Outfit: outfit, Color: c}
}

func keyShirt(app appearance.Appearance) shirtKey {
	if !app.Equipment.Shirt {
		return shirtKey{}
	}
	return shirtKey{On: true, Outfit: app.Outfit, Color: app.Colors.Shirt}
}

func keyLegs(app appearance.Appearance) legsKey {
	cov := app.LegCovering()
	if cov == appearance.LegsBare {
		return legsKey{}
	}
	return legsKey{Covering: cov, Outfit: app.Outfit, Color: app.Colors.Pants}
}

// legFlags is the raw leg flag combination, used to warn once per conflict.
type legFlags struct {
	Pants, Shorts, HideBreeches, ChainLeggings bool
}

func flagsOf(e appearance.Equipment) legFlags {
	return legFlags{Pants: e.Pants, Shorts: e.Shorts, HideBreeches: e.HideBreeches, ChainLeggings: e.ChainLeggings}
}
