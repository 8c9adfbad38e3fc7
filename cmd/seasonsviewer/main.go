// Package main provides an interactive viewer for tuning seasonfall
// particle effects.
//
// Usage:
//
//	go run cmd/seasonsviewer/main.go [flags]
//
// Flags:
//
//	--config <path>    Load effect parameters from a YAML file
//	--profiles <path>  Load season profile overrides from a YAML file
//	--season <name>    Start with a specific season (winter/rainy/fall)
//	--paused           Start paused
//
// Controls:
//
//	1 / 2 / 3          - Switch season (winter / rainy / fall)
//	Left / Right       - Adjust fall angle by 5°
//	Up / Down          - Adjust particle quantity by 25
//	- / =              - Adjust speed multiplier by 0.1
//	R                  - Regenerate population (re-roll all particles)
//	P                  - Toggle pause (冻结动画，观察单帧几何)
//	H                  - Toggle HUD overlay
//	F                  - Toggle fullscreen
//	Q / Escape         - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/seasonfall/pkg/config"
	"github.com/gonewx/seasonfall/pkg/systems"
	"github.com/gonewx/seasonfall/pkg/types"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	configFlag   = flag.String("config", "", "Effect config YAML file")
	profilesFlag = flag.String("profiles", "", "Season profile overrides YAML file")
	seasonFlag   = flag.String("season", "", "Start with specific season (winter/rainy/fall)")
	pausedFlag   = flag.Bool("paused", false, "Start paused")
)

// 每个季节的背景色（与根应用保持一致的深色基调）
var backgrounds = map[types.Season]color.RGBA{
	types.SeasonWinter: {R: 18, G: 26, B: 42, A: 255},
	types.SeasonRainy:  {R: 24, G: 28, B: 34, A: 255},
	types.SeasonFall:   {R: 34, G: 26, B: 24, A: 255},
}

// ViewerGame implements ebiten.Game for the effect viewer
type ViewerGame struct {
	sim      *systems.Simulation
	renderer *systems.RenderSystem
	profiles map[types.Season]config.SeasonProfile

	effect config.EffectConfig

	paused  bool
	showHUD bool

	width, height int
	resizePending bool

	statusMessage string
}

// NewViewerGame creates a new viewer instance from the parsed flags
func NewViewerGame() (*ViewerGame, error) {
	// 季节配置：默认用内置表，--profiles 指定时从文件合并
	profiles := make(map[types.Season]config.SeasonProfile)
	for _, season := range []types.Season{types.SeasonWinter, types.SeasonRainy, types.SeasonFall} {
		p, err := config.ProfileFor(season)
		if err != nil {
			return nil, fmt.Errorf("builtin profile for %v: %w", season, err)
		}
		profiles[season] = p
	}
	if *profilesFlag != "" {
		loaded, err := config.LoadProfileOverridesFile(*profilesFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile overrides: %w", err)
		}
		profiles = loaded
	}

	// 效果参数：--config 文件优先，--season 再覆盖季节
	effect := config.DefaultEffectConfig()
	if *configFlag != "" {
		loaded, err := config.LoadEffectConfigFile(*configFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to load effect config: %w", err)
		}
		effect = loaded
	}
	if *seasonFlag != "" {
		effect.Season = *seasonFlag
	}

	renderer := systems.NewRenderSystem()
	g := &ViewerGame{
		sim:      systems.NewSimulation(renderer),
		renderer: renderer,
		profiles: profiles,
		effect:   *effect,
		paused:   *pausedFlag,
		showHUD:  true,
		width:    screenWidth,
		height:   screenHeight,
	}
	g.applyEffect()
	g.updateStatusMessage()

	log.Printf("[Viewer] Initialized: season=%s quantity=%d", g.effect.Season, g.effect.Quantity)
	return g, nil
}

// applyEffect rebuilds the particle population from the current parameters
func (g *ViewerGame) applyEffect() {
	opts := systems.OptionsFromConfig(&g.effect, float64(g.width), float64(g.height))
	profile := g.profiles[opts.Season]

	if err := g.sim.Reset(profile, opts); err != nil {
		// 参数越界（负数量等）只会来自按键边界缺陷，记录并保持旧粒子群
		log.Printf("[Viewer] Failed to reset simulation: %v", err)
	}
}

func (g *ViewerGame) updateStatusMessage() {
	g.statusMessage = fmt.Sprintf(
		"season: %s   quantity: %d   angle: %.0f°   speed: x%.1f   frame: %d\n[1/2/3] season  [←/→] angle  [↑/↓] quantity  [-/=] speed  [R] re-roll  [P] pause  [H] hud  [Q] quit",
		g.effect.Season, g.effect.Quantity, g.effect.Angle, g.effect.Speed, g.sim.Frame(),
	)
}

// Update handles input and advances the simulation by one tick
func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	changed := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.effect.Season = "winter"
		g.effect.Quantity = 150
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.effect.Season = "rainy"
		g.effect.Quantity = 300
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.effect.Season = "fall"
		g.effect.Quantity = 60
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.effect.Angle -= 5
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.effect.Angle += 5
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.effect.Quantity += 25
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.effect.Quantity -= 25
		if g.effect.Quantity < 0 {
			g.effect.Quantity = 0
		}
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.effect.Speed -= 0.1
		if g.effect.Speed < 0.1 {
			g.effect.Speed = 0.1
		}
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.effect.Speed += 0.1
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if g.resizePending {
		g.resizePending = false
		changed = true
	}
	if changed {
		g.applyEffect()
	}

	if g.paused {
		// 冻结状态下不推进，但仍要为每帧重新产出描述符
		// （渲染器是每帧消费的缓冲，不产出就会黑屏）
		particles := g.sim.Particles()
		for i := range particles {
			desc, err := systems.Describe(&particles[i])
			if err != nil {
				return err
			}
			g.renderer.Draw(desc)
		}
	} else {
		if err := g.sim.Tick(); err != nil {
			return err
		}
	}

	g.updateStatusMessage()
	return nil
}

// Draw renders the background, the particles and the HUD overlay
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	season, _ := types.ParseSeason(g.effect.Season)
	screen.Fill(backgrounds[season])
	g.renderer.Flush(screen)

	if g.showHUD {
		ebitenutil.DebugPrintAt(screen, g.statusMessage, 8, 8)
	}
}

// Layout tracks the outside size so the effect always fills the viewport
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.resizePending = true
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	game, err := NewViewerGame()
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("seasonfall - effect viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
