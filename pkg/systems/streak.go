package systems

import (
	"math"

	"github.com/gonewx/seasonfall/pkg/components"
)

// 雨滴拖尾的三段渐变：原点全不透明 → 30% 处 0.8 → 末端 0.3，
// 模拟动态模糊；小圆点画在 10% 处作为滴头。
const (
	streakMidStop    = 0.3
	streakMidAlpha   = 0.8
	streakEndAlpha   = 0.3
	streakHeadOffset = 0.1
	streakHeadScale  = 0.8
)

// describeStreak 生成一条雨滴的绘制描述：
// 沿下落方向延伸 TrailLength 的渐变线条，加上靠近起点的滴头圆点。
// 颜色在生成阶段已解析为结构化 RGBA（hex 与 rgba 字符串都在边界处
// 被接受，解析失败回退天空蓝），这里不再做任何字符串处理。
func describeStreak(p *components.Particle, opacity float64) *components.ShapeDescriptor {
	dirX := math.Sin(p.AngleRadians)
	dirY := math.Cos(p.AngleRadians)
	trail := p.Streak.TrailLength

	endX := p.X + dirX*trail
	endY := p.Y + dirY*trail

	gradient := &components.Gradient{
		X0: p.X, Y0: p.Y,
		X1: endX, Y1: endY,
		Stops: []components.GradientStop{
			{Offset: 0, Color: p.Color.WithAlpha(p.Color.A)},
			{Offset: streakMidStop, Color: p.Color.WithAlpha(p.Color.A * streakMidAlpha)},
			{Offset: 1, Color: p.Color.WithAlpha(p.Color.A * streakEndAlpha)},
		},
	}

	headX := p.X + dirX*trail*streakHeadOffset
	headY := p.Y + dirY*trail*streakHeadOffset

	return &components.ShapeDescriptor{
		Figures: []components.Figure{
			{
				Segments: []components.Segment{
					{Op: components.OpMove, X: p.X, Y: p.Y},
					{Op: components.OpLine, X: endX, Y: endY},
				},
				Mode:     components.PaintStroke,
				Color:    p.Color,
				Opacity:  opacity,
				Width:    p.Size,
				Gradient: gradient,
			},
			{
				Segments: []components.Segment{
					{
						Op:         components.OpArc,
						X:          headX,
						Y:          headY,
						Radius:     p.Size * streakHeadScale,
						StartAngle: 0,
						EndAngle:   2 * math.Pi,
					},
				},
				Mode:    components.PaintFill,
				Color:   p.Color,
				Opacity: opacity,
			},
		},
	}
}
