package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/seasonfall/pkg/components"
)

// 次级扰动的固定低频系数：sin(frame×0.01 + offset)×turbulence
const wobbleFrequency = 0.01

// 雨滴（不摆动、不自旋）只受阻尼后的横风影响
const rainWindDamping = 0.5

// Advance 推进一个粒子一帧：就地更新位置、旋转和摆动相位，
// 然后应用周期边界（水平环绕、垂直顶部重生）。
//
// 每帧每个粒子调用一次，按粒子群顺序；粒子之间互不作用，顺序无语义。
// 本函数没有失败模式：畸形输入（如负尺寸）只会让粒子更频繁地重生，
// 不会出错。
func Advance(p *components.Particle, frameIndex int, surfaceWidth, surfaceHeight float64) {
	// 基础位移：角度到速度的映射是 vx=sin、vy=cos，
	// 角度 0 代表竖直下落，90° 代表纯水平漂移
	dx := math.Sin(p.AngleRadians) * p.Speed
	dy := math.Cos(p.AngleRadians) * p.Speed

	t := float64(frameIndex)
	switch {
	case p.SwayAmount != 0:
		// 摆动粒子（雪花）：主摆动 + 横风 + 低频次级扰动，并持续自旋
		dx += math.Sin(p.SwayOffset+t*p.SwaySpeed)*p.SwayAmount + p.WindX
		dx += math.Sin(t*wobbleFrequency+p.SwayOffset) * p.Turbulence
		p.Rotation += p.RotSpeed
	case p.RotSpeed != 0:
		// 自旋但不摆动的粒子（落叶）：只在基础位移上叠加旋转
		p.Rotation += p.RotSpeed
	default:
		// 弹道粒子（雨滴）：阻尼横风，旋转永不变化
		dx += p.WindX * rainWindDamping
	}

	p.X += dx
	p.Y += dy

	// 边界策略：垂直方向是单向重生（不是镜像），重生时重新随机水平
	// 入场点，让粒子流看起来连续；水平方向以粒子自身尺寸为余量环绕，
	// 大粒子不会在边缘突然消失。
	if p.Y > surfaceHeight+p.Size {
		p.Y = -p.Size
		p.X = rand.Float64() * surfaceWidth
	}
	if p.X < -p.Size {
		p.X = surfaceWidth + p.Size
	} else if p.X > surfaceWidth+p.Size {
		p.X = -p.Size
	}
}
