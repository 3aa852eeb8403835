// Package body synthesizes the avatar's base node tree from sculpted
// primitives and publishes it as a typed parts registry.
package body

import "github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"

// Side indexes paired features. Left is the avatar's own left (+X).
type Side int

const (
	Left Side = iota
	Right
)

// Sign returns +1 for Left and -1 for Right.
func (s Side) Sign() float32 {
	if s == Left {
		return 1
	}
	return -1
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Finger holds the two curl joints of a finger. Index 4 of a hand is the
// thumb.
type Finger struct {
	Joints [2]*scenegraph.Node
}

// Thumb is the finger index of the thumb.
const Thumb = 4

// Toe is one toe joint with the lateral offset it was built at.
type Toe struct {
	Node     *scenegraph.Node
	InitialX float32
}

// Cheek is one buttock: a transform node carrying the skin solid and the
// partial-coverage underwear solid. Butt covers of leg garments are
// parented under Node so they inherit its transform.
type Cheek struct {
	Node      *scenegraph.Node
	Skin      *scenegraph.Node
	Underwear *scenegraph.Node
}

// Parts is the registry of every node later stages read or write. The set
// of fields and the tree topology are fixed once Build returns; pointer
// fields documented as optional are nil when the feature was not built.
type Parts struct {
	Root           *scenegraph.Node
	TorsoContainer *scenegraph.Node
	Torso          *scenegraph.Node
	ShoulderCap    *scenegraph.Node
	Pelvis         *scenegraph.Node
	Crotch         *scenegraph.Node
	MaleChest      *scenegraph.Node
	FemaleChest    *scenegraph.Node
	Neck           *scenegraph.Node
	Head           *scenegraph.Node
	Cranium        *scenegraph.Node
	Jaw            *scenegraph.Node
	Chin           *scenegraph.Node
	Maxilla        *scenegraph.Node
	Nose           *scenegraph.Node
	UpperLip       *scenegraph.Node
	LowerLip       *scenegraph.Node
	Brow           *scenegraph.Node
	Ears           [2]*scenegraph.Node

	Brain *scenegraph.Node // hidden unless BrainVisible
	Hair  *scenegraph.Node // optional

	Arms     [2]*scenegraph.Node
	Forearms [2]*scenegraph.Node
	Hands    [2]*scenegraph.Node
	Palms    [2]*scenegraph.Node
	Thighs   [2]*scenegraph.Node
	Shins    [2]*scenegraph.Node
	Ankles   [2]*scenegraph.Node
	BareFeet [2]*scenegraph.Node

	HeadMount      *scenegraph.Node
	FaceMount      *scenegraph.Node
	ShoulderMounts [2]*scenegraph.Node
	BackMount      *scenegraph.Node
	HandMounts     [2]*scenegraph.Node
	ShieldMount    *scenegraph.Node
	WaistMount     *scenegraph.Node

	ForefootGroups [2]*scenegraph.Node
	HeelGroups     [2]*scenegraph.Node
	ToeUnits       [10]Toe // 0-4 left foot, 5-9 right foot
	EyeBalls       [2]*scenegraph.Node
	Irises         [2]*scenegraph.Node
	Pupils         [2]*scenegraph.Node
	Eyelids        [4]*scenegraph.Node // left upper, left lower, right upper, right lower
	LeftFingers    [5]Finger
	RightFingers   [5]Finger
	ButtockCheeks  [2]Cheek
	Thenars        [2]*scenegraph.Node
	AbPads         [6]*scenegraph.Node

	// HeadSolids lists the head sub-solids the debug overlay recolors.
	HeadSolids []*scenegraph.Node
}

// Fingers returns the finger set of a hand.
func (p *Parts) Fingers(s Side) *[5]Finger {
	if s == Left {
		return &p.LeftFingers
	}
	return &p.RightFingers
}

// Convenience accessors for the paired limb nodes.

func (p *Parts) LeftArm() *scenegraph.Node    { return p.Arms[Left] }
func (p *Parts) RightArm() *scenegraph.Node   { return p.Arms[Right] }
func (p *Parts) LeftHand() *scenegraph.Node   { return p.Hands[Left] }
func (p *Parts) RightHand() *scenegraph.Node  { return p.Hands[Right] }
func (p *Parts) LeftThigh() *scenegraph.Node  { return p.Thighs[Left] }
func (p *Parts) RightThigh() *scenegraph.Node { return p.Thighs[Right] }

// UpperEyelid returns the upper lid of an eye.
func (p *Parts) UpperEyelid(s Side) *scenegraph.Node { return p.Eyelids[int(s)*2] }

// LowerEyelid returns the lower lid of an eye.
func (p *Parts) LowerEyelid(s Side) *scenegraph.Node { return p.Eyelids[int(s)*2+1] }

// Toes returns the five toes of a foot.
func (p *Parts) Toes(s Side) []Toe {
	return p.ToeUnits[int(s)*5 : int(s)*5+5]
}
