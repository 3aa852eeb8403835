package appearance

// BodyType selects the male or female body variant.
type BodyType string

const (
	Male   BodyType = "male"
	Female BodyType = "female"
)

// Outfit is a coarse palette and pattern selector for garments.
type Outfit string

const (
	Peasant Outfit = "peasant"
	Warrior Outfit = "warrior"
	Mage    Outfit = "mage"
	Noble   Outfit = "noble"
)

// HairStyle is read once at construction.
type HairStyle string

const (
	Bald      HairStyle = "bald"
	ShortHair HairStyle = "short"
	LongHair  HairStyle = "long"
)

// HeldItem names a tool or weapon in the right hand. Empty means none.
type HeldItem string

const (
	NoItem  HeldItem = ""
	Axe     HeldItem = "Axe"
	Sword   HeldItem = "Sword"
	Pickaxe HeldItem = "Pickaxe"
	Knife   HeldItem = "Knife"
)

// HeldItems lists every known held item.
var HeldItems = []HeldItem{Axe, Sword, Pickaxe, Knife}

// Known reports whether the item has a builder.
func (h HeldItem) Known() bool {
	if h == NoItem {
		return true
	}
	for _, k := range HeldItems {
		if h == k {
			return true
		}
	}
	return false
}

// LegCovering is the single resolved garment on the legs.
type LegCovering int

const (
	LegsBare LegCovering = iota
	LegsShorts
	LegsPants
	LegsHideBreeches
	LegsChainLeggings
)

func (l LegCovering) String() string {
	switch l {
	case LegsShorts:
		return "shorts"
	case LegsPants:
		return "pants"
	case LegsHideBreeches:
		return "hide_breeches"
	case LegsChainLeggings:
		return "chain_leggings"
	default:
		return "bare"
	}
}

// Lip shapes one lip relative to its built base.
type Lip struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	Thickness float32 `yaml:"thickness"`
	Forward   float32 `yaml:"forward"`
}

// Equipment holds one flag per garment, armor piece and accessory. The leg
// flags (Pants, Shorts, HideBreeches, ChainLeggings) are resolved to a single
// covering by LegCovering.
type Equipment struct {
	Shirt         bool `yaml:"shirt"`
	Pants         bool `yaml:"pants"`
	Shorts        bool `yaml:"shorts"`
	HideBreeches  bool `yaml:"hide_breeches"`
	ChainLeggings bool `yaml:"chain_leggings"`
	Apron         bool `yaml:"apron"`
	Robe          bool `yaml:"robe"`
	Cape          bool `yaml:"cape"`
	Belt          bool `yaml:"belt"`
	Bracers       bool `yaml:"bracers"`
	Gloves        bool `yaml:"gloves"`
	Shoes         bool `yaml:"shoes"`
	Helm          bool `yaml:"helm"`
	Hood          bool `yaml:"hood"`
	Mask          bool `yaml:"mask"`
	MageHat       bool `yaml:"mage_hat"`
	Pauldrons     bool `yaml:"pauldrons"`
	Shield        bool `yaml:"shield"`
	Quiver        bool `yaml:"quiver"`
}

// LegCovering resolves the leg flags with precedence
// chain leggings > hide breeches > pants > shorts.
func (e Equipment) LegCovering() LegCovering {
	switch {
	case e.ChainLeggings:
		return LegsChainLeggings
	case e.HideBreeches:
		return LegsHideBreeches
	case e.Pants:
		return LegsPants
	case e.Shorts:
		return LegsShorts
	default:
		return LegsBare
	}
}

// LegFlags returns the names of every set leg flag, in precedence order.
func (e Equipment) LegFlags() []string {
	var names []string
	if e.ChainLeggings {
		names = append(names, "chain_leggings")
	}
	if e.HideBreeches {
		names = append(names, "hide_breeches")
	}
	if e.Pants {
		names = append(names, "pants")
	}
	if e.Shorts {
		names = append(names, "shorts")
	}
	return names
}

// TorsoCovered reports whether a garment hides the bare torso.
func (e Equipment) TorsoCovered() bool {
	return e.Shirt || e.Robe
}

// GearTuning holds live adjustment sliders for equipment placement.
type GearTuning struct {
	HelmScale       float32 `yaml:"helm_scale"`
	HelmLift        float32 `yaml:"helm_lift"`
	HoodScale       float32 `yaml:"hood_scale"`
	MaskForward     float32 `yaml:"mask_forward"`
	MageHatTilt     float32 `yaml:"mage_hat_tilt"`
	MageHatHeight   float32 `yaml:"mage_hat_height"`
	PauldronScale   float32 `yaml:"pauldron_scale"`
	PauldronStretch Stretch `yaml:"pauldron_stretch"`
	ShieldScale     float32 `yaml:"shield_scale"`
	ShieldOffset    Stretch `yaml:"shield_offset"`
	QuiverTilt      float32 `yaml:"quiver_tilt"`
	HeldItemScale   float32 `yaml:"held_item_scale"`
}

// Stretch is a per-axis factor or offset.
type Stretch struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Colors groups every tint in the appearance.
type Colors struct {
	Skin      Color `yaml:"skin"`
	Hair      Color `yaml:"hair"`
	Eyes      Color `yaml:"eyes"`
	Lips      Color `yaml:"lips"`
	Sclera    Color `yaml:"sclera"`
	Underwear Color `yaml:"underwear"`
	Shirt     Color `yaml:"shirt"`
	Pants     Color `yaml:"pants"`
	Shoes     Color `yaml:"shoes"`
	Apron     Color `yaml:"apron"`
	Robe      Color `yaml:"robe"`
	Cape      Color `yaml:"cape"`
	Belt      Color `yaml:"belt"`
	Bracers   Color `yaml:"bracers"`
	Gloves    Color `yaml:"gloves"`
}
