// seasonfall 环境粒子壁纸：全视口的雪 / 雨 / 落叶效果。
//
// 运行后铺满窗口（默认全屏），按键切换季节：
//
//	1 / 2 / 3 - 冬季雪花 / 雨季 / 秋季落叶
//	F         - 切换全屏
//	Esc / Q   - 退出（退出时保存当前设置）
//
// 交互式调试查看器见 cmd/seasonsviewer。
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/seasonfall/pkg/app"
	"github.com/gonewx/seasonfall/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable diagnostic logging")
	season := flag.String("season", "", "override the starting season (winter, rainy, fall)")
	flag.Parse()

	embedded.Init(assetsFS)

	wallpaper, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Season:  *season,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("seasonfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(wallpaper.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(wallpaper); err != nil {
		log.Fatal(err)
	}
}
