// Package appearance defines the flat, fully typed value that describes one
// avatar: body and face proportions, colors, equipment flags, gear tuning and
// a few enums. The avatar core reads it and never mutates it.
package appearance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrConflictingLegCoverings = errors.New("more than one leg covering selected")
	ErrUnknownHeldItem         = errors.New("unknown held item")
	ErrInvalidColor            = errors.New("invalid color")
	ErrUnknownEnum             = errors.New("unknown value")
)

// Appearance is the complete avatar description.
type Appearance struct {
	BodyType  BodyType  `yaml:"body_type"`
	Outfit    Outfit    `yaml:"outfit"`
	HairStyle HairStyle `yaml:"hair_style"`

	// Body proportions
	TorsoWidth    float32 `yaml:"torso_width"`
	TorsoHeight   float32 `yaml:"torso_height"`
	ArmScale      float32 `yaml:"arm_scale"`
	LegScale      float32 `yaml:"leg_scale"`
	NeckThickness float32 `yaml:"neck_thickness"`
	NeckHeight    float32 `yaml:"neck_height"`
	HeadScale     float32 `yaml:"head_scale"`
	ShoulderScale float32 `yaml:"shoulder_scale"`
	HipScale      float32 `yaml:"hip_scale"`
	ButtScale     float32 `yaml:"butt_scale"`
	ChestScale    float32 `yaml:"chest_scale"`
	AbsDefinition float32 `yaml:"abs_definition"`
	HandScale     float32 `yaml:"hand_scale"`

	// Face
	ChinScale      float32 `yaml:"chin_scale"`
	ChinForward    float32 `yaml:"chin_forward"`
	JawLength      float32 `yaml:"jaw_length"`
	JawHeight      float32 `yaml:"jaw_height"`
	JawForward     float32 `yaml:"jaw_forward"`
	MaxillaScale   float32 `yaml:"maxilla_scale"`
	MaxillaForward float32 `yaml:"maxilla_forward"`
	UpperLip       Lip     `yaml:"upper_lip"`
	LowerLip       Lip     `yaml:"lower_lip"`
	NoseHeight     float32 `yaml:"nose_height"`
	NoseForward    float32 `yaml:"nose_forward"`
	EyeScale       float32 `yaml:"eye_scale"`
	IrisScale      float32 `yaml:"iris_scale"`
	PupilScale     float32 `yaml:"pupil_scale"`
	BrainVisible   bool    `yaml:"brain_visible"`
	BrainSize      float32 `yaml:"brain_size"`

	// Feet
	HeelScale      float32 `yaml:"heel_scale"`
	HeelHeight     float32 `yaml:"heel_height"`
	ForefootWidth  float32 `yaml:"forefoot_width"`
	ForefootLength float32 `yaml:"forefoot_length"`
	ToeSpread      float32 `yaml:"toe_spread"`

	Colors       Colors     `yaml:"colors"`
	Equipment    Equipment  `yaml:"equipment"`
	Gear         GearTuning `yaml:"gear"`
	SelectedItem HeldItem   `yaml:"selected_item"`

	ShirtAbsMultiplier float32 `yaml:"shirt_abs_multiplier"`
	DebugHead          bool    `yaml:"debug_head"`
}

// Default returns a complete appearance for the body type.
func Default(body BodyType) Appearance {
	a := Appearance{
		BodyType:  body,
		Outfit:    Peasant,
		HairStyle: ShortHair,

		TorsoWidth:    1,
		TorsoHeight:   1,
		ArmScale:      1,
		LegScale:      1,
		NeckThickness: 1,
		NeckHeight:    1,
		HeadScale:     1,
		ShoulderScale: 1,
		HipScale:      1,
		ButtScale:     1,
		ChestScale:    1,
		AbsDefinition: 1,
		HandScale:     1,

		ChinScale:    1,
		JawLength:    1,
		JawHeight:    1,
		MaxillaScale: 1,
		UpperLip:     Lip{Width: 1, Height: 1, Thickness: 1},
		LowerLip:     Lip{Width: 1, Height: 1, Thickness: 1},
		NoseHeight:   1,
		EyeScale:     1,
		IrisScale:    1,
		PupilScale:   1,
		BrainSize:    1,

		HeelScale:      1,
		ForefootWidth:  1,
		ForefootLength: 1,
		ToeSpread:      1,

		Colors: Colors{
			Skin:      Hex("#e0ac8a"),
			Hair:      Hex("#4a3020"),
			Eyes:      Hex("#3b6ea5"),
			Lips:      Hex("#b86a60"),
			Sclera:    Hex("#f4f1ea"),
			Underwear: Hex("#d8d2c4"),
			Shirt:     Hex("#8c7a5b"),
			Pants:     Hex("#5a4a3a"),
			Shoes:     Hex("#3a2a1e"),
			Apron:     Hex("#c8b89a"),
			Robe:      Hex("#3c3a78"),
			Cape:      Hex("#7a1e1e"),
			Belt:      Hex("#2e2018"),
			Bracers:   Hex("#6b4a2e"),
			Gloves:    Hex("#5c4030"),
		},
		Gear: GearTuning{
			HelmScale:       1,
			HoodScale:       1,
			MageHatHeight:   1,
			PauldronScale:   1,
			PauldronStretch: Stretch{X: 1, Y: 1, Z: 1},
			ShieldScale:     1,
			HeldItemScale:   1,
		},
		ShirtAbsMultiplier: 0.6,
	}
	if body == Female {
		a.ShoulderScale = 0.92
		a.HipScale = 1.08
		a.ChestScale = 1
		a.HairStyle = LongHair
	}
	return a
}

// LegCovering resolves the active leg garment.
func (a Appearance) LegCovering() LegCovering {
	return a.Equipment.LegCovering()
}

// Validate reports configuration mistakes that the core tolerates by falling
// back to a documented choice. Several leg coverings at once resolve through
// LegCovering precedence; unknown items build nothing.
func (a Appearance) Validate() error {
	var errs []error
	if legs := a.Equipment.LegFlags(); len(legs) > 1 {
		errs = append(errs, fmt.Errorf("%w: %s (using %s)",
			ErrConflictingLegCoverings, strings.Join(legs, ", "), a.LegCovering()))
	}
	if !a.SelectedItem.Known() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownHeldItem, a.SelectedItem))
	}
	switch a.BodyType {
	case Male, Female:
	default:
		errs = append(errs, fmt.Errorf("%w: body_type %q", ErrUnknownEnum, a.BodyType))
	}
	switch a.Outfit {
	case Peasant, Warrior, Mage, Noble:
	default:
		errs = append(errs, fmt.Errorf("%w: outfit %q", ErrUnknownEnum, a.Outfit))
	}
	switch a.HairStyle {
	case Bald, ShortHair, LongHair:
	default:
		errs = append(errs, fmt.Errorf("%w: hair_style %q", ErrUnknownEnum, a.HairStyle))
	}
	return errors.Join(errs...)
}

// Parse decodes YAML over the male defaults, or the female defaults when the
// document sets body_type: female.
func Parse(data []byte) (Appearance, error) {
	var probe struct {
		BodyType BodyType `yaml:"body_type"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return Appearance{}, fmt.Errorf("failed to parse appearance: %w", err)
	}
	body := Male
	if probe.BodyType == Female {
		body = Female
	}
	a := Default(body)
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Appearance{}, fmt.Errorf("failed to parse appearance: %w", err)
	}
	return a, nil
}

// Load reads an appearance file.
func Load(path string) (Appearance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Appearance{}, fmt.Errorf("failed to read appearance: %w", err)
	}
	return Parse(data)
}

// Save writes the appearance as YAML, creating parent directories.
func (a Appearance) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create appearance dir: %w", err)
	}
	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal appearance: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write appearance: %w", err)
	}
	return nil
}
