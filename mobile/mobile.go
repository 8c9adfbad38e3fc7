//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 动态壁纸。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要先把 assets/ 复制到本目录（embed 指令无法越过包目录）：
//
//	cp -r assets mobile/ && ebitenmobile bind -target android -tags mobile -javapkg com.gonewx.seasonfall -o build/android/seasonfall.aar -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/seasonfall/pkg/app"
	"github.com/gonewx/seasonfall/pkg/embedded"
)

func init() {
	// 初始化嵌入资源（assetsFS 在 embed.go 中声明）
	embedded.Init(assetsFS)

	wallpaper, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	mobile.SetGame(wallpaper)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
