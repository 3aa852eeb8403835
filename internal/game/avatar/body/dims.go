package body

// Rest dimensions of the base body in meters. Garment builders size their
// geometry from these so clothing fits the unscaled body; morphs then scale
// garments and skin together through the shared parents.
const (
	HipHeight float32 = ThighLength + ShinLength + AnkleHeight

	TorsoLength       float32 = 0.56
	TorsoTopRadius    float32 = 0.165
	TorsoBottomRadius float32 = 0.135
	TorsoDepth        float32 = 0.62 // Z extent relative to X
	ShoulderHeight    float32 = 0.53
	ShoulderOffset    float32 = 0.2
	ChestHeight       float32 = 0.42

	PelvisRadius float32 = 0.14
	PelvisLength float32 = 0.16

	NeckBase   float32 = 0.58
	NeckLength float32 = 0.11
	NeckRadius float32 = 0.055
	HeadLift   float32 = 0.1
	HeadRadius float32 = 0.11

	UpperArmLength float32 = 0.29
	ForearmLength  float32 = 0.26
	ArmRadius      float32 = 0.045
	ForearmRadius  float32 = 0.037
	PalmLength     float32 = 0.09

	ThighLength float32 = 0.44
	ShinLength  float32 = 0.42
	ThighRadius float32 = 0.07
	ShinRadius  float32 = 0.05
	LegSpacing  float32 = 0.09
	AnkleHeight float32 = 0.07
	FootLength  float32 = 0.21
)
