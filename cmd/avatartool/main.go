// avatartool builds procedural avatars from appearance files and reports on
// them: node counts, slot rebuilds, painted textures and hair motion.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-avatar/internal/config"
	"github.com/Faultbox/midgard-avatar/internal/engine/scenegraph"
	"github.com/Faultbox/midgard-avatar/internal/engine/texture"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/appearance"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/clothing"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/hair"
	"github.com/Faultbox/midgard-avatar/internal/game/avatar/materials"
	"github.com/Faultbox/midgard-avatar/internal/logger"
	"github.com/Faultbox/midgard-avatar/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	if err := config.ParseFlags(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	scenegraph.SetDebug(cfg.Debug.Assertions)

	args := config.Args()
	switch command {
	case "build":
		err = cmdBuild(cfg, args)
	case "sync":
		err = cmdSync(cfg, args)
	case "textures", "tex":
		err = cmdTextures(cfg, args)
	case "hair":
		err = cmdHair(cfg, args)
	case "validate", "check":
		err = cmdValidate(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`avatartool - procedural avatar inspection utility

Usage:
  avatartool <command> [options] [args]

Commands:
  build [appearance.yaml]          Build an avatar and print its statistics
  sync <from.yaml> <to.yaml>       Build from one appearance, sync to another, report rebuilds
  textures [appearance.yaml]       Export eye and garment textures as WebP
  hair [seconds]                   Simulate walking and turning, print hair uniforms
  validate [appearance.yaml]       Report appearance problems

Options:
  -config <path>       Config file (default ./avatar.yaml)
  -appearance <path>   Appearance file used when none is given
  -out <dir>           Texture output directory
  -paint-size <px>     Garment texture paint size
  -head-overlay        Force the head debug overlay on
  -debug               Debug logging and ownership assertions
  -log-file <path>     Also log to a rotated file

Examples:
  avatartool build hero.yaml
  avatartool sync hero.yaml hero-armored.yaml
  avatartool textures -out ./tex hero.yaml
  avatartool hair 5`)
}

// hairParams maps the hair config section onto simulation parameters.
func hairParams(c config.HairConfig) hair.Params {
	return hair.Params{
		MaxInertia:      c.MaxInertia,
		LinearGain:      c.LinearGain,
		CentrifugalGain: c.CentrifugalGain,
		SpringRate:      c.SpringRate,
		SpeedRate:       c.SpeedRate,
		MaxLinearSpeed:  c.MaxLinearSpeed,
		MaxAngularSpeed: c.MaxAngularSpeed,
		Gravity:         math.FromArray(c.Gravity),
	}
}

func modelOptions(cfg *config.Config) []avatar.Option {
	return []avatar.Option{
		avatar.WithHairParams(hairParams(cfg.Hair)),
		avatar.WithTextures(cfg.Textures.PaintSize, cfg.Textures.Upscale),
		avatar.WithEyeSize(cfg.Textures.EyeSize),
	}
}

// loadAppearance reads the first positional argument, the configured
// appearance file, or falls back to the male defaults.
func loadAppearance(cfg *config.Config, args []string) (appearance.Appearance, error) {
	path := cfg.Avatar.AppearanceFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		logger.Info("no appearance file, using defaults")
		return withOverrides(cfg, appearance.Default(appearance.Male)), nil
	}
	app, err := appearance.Load(path)
	if err != nil {
		return appearance.Appearance{}, err
	}
	return withOverrides(cfg, app), nil
}

func withOverrides(cfg *config.Config, app appearance.Appearance) appearance.Appearance {
	if cfg.Debug.HeadOverlay {
		app.DebugHead = true
	}
	return app
}

func cmdBuild(cfg *config.Config, args []string) error {
	app, err := loadAppearance(cfg, args)
	if err != nil {
		return err
	}
	m := avatar.New(app, modelOptions(cfg)...)
	defer m.Dispose()

	nodes, visible := 0, 0
	m.Root().Walk(func(n *scenegraph.Node) bool {
		nodes++
		if n.Solid != nil && n.ShownInTree() {
			visible++
		}
		return true
	})

	s := m.Stats()
	fmt.Printf("Body:       %s (%s outfit, %s hair)\n", app.BodyType, app.Outfit, s.HairStyle)
	fmt.Printf("Nodes:      %d\n", nodes)
	fmt.Printf("Visible:    %d solids\n", visible)
	if b, ok := m.Root().WorldBounds(); ok {
		size := b.Size()
		fmt.Printf("Extent:     %.3f x %.3f x %.3f m (feet at y=%.3f)\n", size.X, size.Y, size.Z, b.Min.Y)
	}
	fmt.Printf("Buffers:    %d live, %.1f KB\n", s.Arena.Live, float64(s.Arena.LiveBytes)/1024)
	fmt.Printf("Legs:       %s\n", s.Clothing.LegCovering)
	fmt.Printf("Garments:   %d solids\n", s.Clothing.Solids)
	fmt.Printf("Equipment:  %d solids\n", s.EquipmentSolids)
	if name, _ := m.Equipment().Held(); name != appearance.NoItem {
		fmt.Printf("Held item:  %s\n", name)
	}
	return nil
}

func cmdSync(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: avatartool sync <from.yaml> <to.yaml>")
	}
	from, err := appearance.Load(args[0])
	if err != nil {
		return err
	}
	to, err := appearance.Load(args[1])
	if err != nil {
		return err
	}

	m := avatar.New(withOverrides(cfg, from), modelOptions(cfg)...)
	defer m.Dispose()
	before := m.Stats()
	m.Sync(withOverrides(cfg, to), false)
	after := m.Stats()

	fmt.Printf("Buffers: %d -> %d live (%d allocated, %d released)\n",
		before.Arena.Live, after.Arena.Live,
		after.Arena.Allocated-before.Arena.Allocated,
		after.Arena.Released-before.Arena.Released)

	rebuilt := diffBuilds(before.Clothing.Builds, after.Clothing.Builds)
	rebuilt = append(rebuilt, diffBuilds(before.EquipmentBuilds, after.EquipmentBuilds)...)
	if len(rebuilt) == 0 {
		fmt.Println("Nothing rebuilt")
		return nil
	}
	fmt.Println("Rebuilt slots:")
	for _, slot := range rebuilt {
		fmt.Printf("  %s\n", slot)
	}
	if after.EyeRepaints != before.EyeRepaints {
		fmt.Println("Eye texture repainted")
	}
	return nil
}

func diffBuilds(before, after map[string]int) []string {
	var out []string
	for slot, n := range after {
		if n != before[slot] {
			out = append(out, slot)
		}
	}
	sort.Strings(out)
	return out
}

func cmdTextures(cfg *config.Config, args []string) error {
	app, err := loadAppearance(cfg, args)
	if err != nil {
		return err
	}
	dir := cfg.Output.Dir

	eye := materials.PaintEye(cfg.Textures.EyeSize, app.Colors.Eyes, app.Colors.Sclera)
	if err := texture.SaveWebP(filepath.Join(dir, "eye.webp"), eye.Image()); err != nil {
		return err
	}

	count := 1
	for p := clothing.PatternPlain; p <= clothing.PatternLeather; p++ {
		c := clothing.Paint(p, app.Colors.Shirt, cfg.Textures.PaintSize, uint64(p)+1)
		path := filepath.Join(dir, "cloth_"+p.String()+".webp")
		if err := texture.SaveWebP(path, c.Upscale(cfg.Textures.Upscale)); err != nil {
			return err
		}
		count++
	}
	logger.Info("textures exported", zap.String("dir", dir), zap.Int("count", count))
	fmt.Printf("Wrote %d textures to %s\n", count, dir)
	return nil
}

func cmdHair(cfg *config.Config, args []string) error {
	seconds := float32(3)
	if len(args) > 0 {
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[0], err)
		}
		seconds = float32(v)
	}

	app := appearance.Default(appearance.Female)
	m := avatar.New(withOverrides(cfg, app), modelOptions(cfg)...)
	defer m.Dispose()

	// walk forward for the first half, then turn in place
	const dt = float32(1.0 / 60)
	frames := int(seconds / dt)
	root := m.Root()
	for i := range frames {
		if i < frames/2 {
			root.Position.Z += 1.5 * dt
		} else {
			root.Rotation.Y += 2 * dt
		}
		m.Update(dt, math.Zero3)
		if i%30 == 0 {
			u := m.HairUniforms()
			fmt.Printf("t=%5.2fs inertia=(% .3f % .3f % .3f) speed=%.3f\n",
				float32(i)*dt, u.Inertia.X, u.Inertia.Y, u.Inertia.Z, u.Speed)
		}
	}
	return nil
}

func cmdValidate(cfg *config.Config, args []string) error {
	app, err := loadAppearance(cfg, args)
	if err != nil {
		return err
	}
	if err := app.Validate(); err != nil {
		fmt.Printf("Problems:\n  %v\n", err)
		fmt.Printf("Resolved legs: %s\n", app.LegCovering())
		return nil
	}
	fmt.Println("OK")
	return nil
}
