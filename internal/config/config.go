// Package config handles tool configuration loading and management.
package config

// Config holds all avatar tool settings.
type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	Textures TextureConfig `yaml:"textures"`
	Hair     HairConfig    `yaml:"hair"`
	Debug    DebugConfig   `yaml:"debug"`
	Output   OutputConfig  `yaml:"output"`
	Avatar   AvatarConfig  `yaml:"avatar"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" env:"AVATAR_LOG_LEVEL"`
	LogFile string `yaml:"log_file" env:"AVATAR_LOG_FILE"`
}

// TextureConfig controls procedural texture resolution.
// Garments are painted at PaintSize and upscaled by Upscale with
// nearest-neighbour sampling so the pattern stays crisp.
type TextureConfig struct {
	PaintSize int `yaml:"paint_size" env:"AVATAR_TEXTURE_PAINT_SIZE"`
	Upscale   int `yaml:"upscale" env:"AVATAR_TEXTURE_UPSCALE"`
	EyeSize   int `yaml:"eye_size" env:"AVATAR_TEXTURE_EYE_SIZE"`
}

// HairConfig tunes the hair secondary-motion simulation.
type HairConfig struct {
	MaxInertia      float32    `yaml:"max_inertia"`
	LinearGain      float32    `yaml:"linear_gain"`
	CentrifugalGain float32    `yaml:"centrifugal_gain"`
	SpringRate      float32    `yaml:"spring_rate"`
	SpeedRate       float32    `yaml:"speed_rate"`
	MaxLinearSpeed  float32    `yaml:"max_linear_speed"`
	MaxAngularSpeed float32    `yaml:"max_angular_speed"`
	Gravity         [3]float32 `yaml:"gravity"`
}

// DebugConfig holds development toggles.
type DebugConfig struct {
	HeadOverlay bool `yaml:"head_overlay" env:"AVATAR_DEBUG_HEAD_OVERLAY"`
	Assertions  bool `yaml:"assertions" env:"AVATAR_DEBUG_ASSERTIONS"`
}

// OutputConfig holds export settings for the inspection tool.
type OutputConfig struct {
	Dir string `yaml:"dir" env:"AVATAR_OUTPUT_DIR"`
}

// AvatarConfig points at the appearance file the tool loads.
type AvatarConfig struct {
	AppearanceFile string `yaml:"appearance_file" env:"AVATAR_APPEARANCE_FILE"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Textures: TextureConfig{
			PaintSize: 16,
			Upscale:   4,
			EyeSize:   32,
		},
		Hair: HairConfig{
			MaxInertia:      0.35,
			LinearGain:      0.06,
			CentrifugalGain: 0.12,
			SpringRate:      8,
			SpeedRate:       2.5,
			MaxLinearSpeed:  25,
			MaxAngularSpeed: 25,
			Gravity:         [3]float32{0, -0.04, 0},
		},
		Debug: DebugConfig{
			HeadOverlay: false,
			Assertions:  false,
		},
		Output: OutputConfig{
			Dir: "out",
		},
	}
}
