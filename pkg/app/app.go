// Package app 提供壁纸应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/seasonfall/pkg/config"
	"github.com/gonewx/seasonfall/pkg/embedded"
	"github.com/gonewx/seasonfall/pkg/game"
	"github.com/gonewx/seasonfall/pkg/systems"
	"github.com/gonewx/seasonfall/pkg/types"
)

// 每个季节的背景色（深色夜空基调，让粒子更醒目）
var backgrounds = map[types.Season]color.RGBA{
	types.SeasonWinter: {R: 18, G: 26, B: 42, A: 255},
	types.SeasonRainy:  {R: 24, G: 28, B: 34, A: 255},
	types.SeasonFall:   {R: 34, G: 26, B: 24, A: 255},
}

// 每个季节的推荐粒子数量：雨需要更密，落叶更稀疏
var seasonQuantities = map[types.Season]int{
	types.SeasonWinter: 150,
	types.SeasonRainy:  300,
	types.SeasonFall:   60,
}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Season 覆盖启动季节（如 "rainy"），为空则使用保存的设置
	Season string
}

// App 实现 ebiten.Game，驱动一个环境粒子模拟铺满整个视口
type App struct {
	sim      *systems.Simulation
	renderer *systems.RenderSystem
	settings *game.SettingsManager
	profiles map[types.Season]config.SeasonProfile

	effect config.EffectConfig

	// 当前表面尺寸；Layout 发现变化时置位 resizePending，
	// 重建粒子群的动作推迟到下一次 Update（避免和进行中的一帧互相干扰）
	width, height int
	resizePending bool
}

// NewApp 创建并初始化壁纸应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 嵌入的默认季节配置；解析失败说明打包有问题，属于致命错误
	data, err := embedded.ReadFile("assets/seasons.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded season profiles: %w", err)
	}
	profiles, err := config.LoadProfileOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load season profiles: %w", err)
	}

	// gdata 打不开时降级为纯内存设置（nil manager），不影响运行
	gdataManager, err := gdata.Open(gdata.Config{AppName: "seasonfall"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	renderer := systems.NewRenderSystem()
	a := &App{
		sim:      systems.NewSimulation(renderer),
		renderer: renderer,
		settings: settings,
		profiles: profiles,
		effect:   settings.GetSettings().Effect,
	}

	if cfg.Season != "" {
		season, err := types.ParseSeason(cfg.Season)
		if err != nil {
			log.Printf("[App] Warning: %v (keeping saved season)", err)
		} else {
			a.switchSeason(season)
		}
	}

	return a, nil
}

// Settings 返回设置管理器
// 用于在退出时保存当前设置
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// applyEffect 用当前效果参数重建粒子群
func (a *App) applyEffect() {
	if a.width <= 0 || a.height <= 0 {
		return
	}

	opts := systems.OptionsFromConfig(&a.effect, float64(a.width), float64(a.height))
	profile, ok := a.profiles[opts.Season]
	if !ok {
		// 配置表不完整时回退到内置默认
		var err error
		profile, err = config.ProfileFor(opts.Season)
		if err != nil {
			log.Printf("[App] Warning: %v (using winter profile)", err)
		}
	}

	if err := a.sim.Reset(profile, opts); err != nil {
		log.Printf("[App] Failed to reset simulation: %v", err)
	}
}

// switchSeason 切换季节并保留其余效果参数
func (a *App) switchSeason(season types.Season) {
	a.effect.Season = season.String()
	a.effect.Quantity = seasonQuantities[season]
	a.applyEffect()
}

// Update 每帧推进一次模拟并处理按键
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.settings.SetEffect(a.effect)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		a.switchSeason(types.SeasonWinter)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		a.switchSeason(types.SeasonRainy)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		a.switchSeason(types.SeasonFall)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if a.resizePending {
		a.resizePending = false
		a.applyEffect()
	}

	return a.sim.Tick()
}

// Draw 先铺背景再栅格化本帧缓冲的描述符
func (a *App) Draw(screen *ebiten.Image) {
	season, _ := types.ParseSeason(a.effect.Season)
	screen.Fill(backgrounds[season])
	a.renderer.Flush(screen)
}

// Layout 让逻辑分辨率跟随窗口：环境效果永远铺满视口。
// 尺寸变化触发一次粒子群重建（表面由宿主窗口实时提供）。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		a.resizePending = true
	}
	return outsideWidth, outsideHeight
}
