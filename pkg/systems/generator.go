package systems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gonewx/seasonfall/internal/colorx"
	"github.com/gonewx/seasonfall/pkg/components"
	"github.com/gonewx/seasonfall/pkg/config"
	"github.com/gonewx/seasonfall/pkg/types"
)

// 摆动参数的采样区间（仅对启用摆动的季节生效）。
// 单位全部是"每帧"：主摆动是 sin(offset + frame×speed)×amount，
// 次级扰动是 sin(frame×0.01 + offset)×turbulence。
const (
	swayAmountMin = 0.5 // 主摆动振幅下限（像素/帧）
	swayAmountMax = 2.5 // 主摆动振幅上限
	swaySpeedMin  = 0.01
	swaySpeedMax  = 0.04
	windXSpread   = 0.4 // 横风取自 [-0.2, 0.2]
	turbulenceMax = 0.3 // 次级扰动振幅上限
)

// 不透明度抖动幅度：生成值 = 基础值 + (U(0,1)-0.5)×0.2。
// 注意生成时不做裁剪——[0.3,1.0] 的裁剪是描述阶段的安全网，
// 生成出暂时越界的值是有意的设计。
const opacityJitter = 0.2

// Generate builds an initial population of count particles from a season
// profile and the simulation options. The returned slice has exactly count
// elements; each particle starts above the visible area (y = -U(0,height))
// so the population streams in from the top regardless of fall angle.
//
// 返回：
//   - []components.Particle: 生成的粒子序列
//   - error: count 为负（ErrInvalidConfiguration）或表面尺寸非正
//     （ErrInvalidSurface）时返回错误，此时不生成任何粒子
func Generate(profile config.SeasonProfile, opts Options, count int) ([]components.Particle, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: particle count %d must not be negative", ErrInvalidConfiguration, count)
	}
	if opts.SurfaceWidth <= 0 || opts.SurfaceHeight <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSurface, opts.SurfaceWidth, opts.SurfaceHeight)
	}

	// 颜色只在这里解析一次；覆盖色优先于季节默认色。
	// 解析失败回退到天空蓝是边界处的健壮性策略。
	colorSource := profile.ColorDefault
	if opts.ColorOverride != "" {
		colorSource = opts.ColorOverride
	}
	resolved := colorx.ParseOrDefault(colorSource)

	// 下落方向角由全局选项推导，同一代粒子共享（不独立随机）
	angle := opts.AngleDegrees * math.Pi / 180.0

	particles := make([]components.Particle, count)
	for i := range particles {
		p := &particles[i]

		p.X = rand.Float64() * opts.SurfaceWidth
		p.Y = -rand.Float64() * opts.SurfaceHeight
		p.AngleRadians = angle

		if opts.SizeOverride != nil {
			// 尺寸覆盖整体替换季节区间（不做插值）
			p.Size = *opts.SizeOverride
		} else {
			p.Size = randRange(profile.SizeMin, profile.SizeMax)
		}

		p.Speed = randRange(profile.SpeedMin, profile.SpeedMax) * opts.SpeedMultiplier
		p.Rotation = rand.Float64() * 2 * math.Pi
		if profile.RotationSpeed != 0 {
			p.RotSpeed = profile.RotationSpeed * (0.5 + rand.Float64())
		}

		if profile.Sway {
			p.SwayAmount = randRange(swayAmountMin, swayAmountMax)
			p.SwaySpeed = randRange(swaySpeedMin, swaySpeedMax)
			p.SwayOffset = rand.Float64() * 2 * math.Pi
			p.WindX = (rand.Float64() - 0.5) * windXSpread
			p.Turbulence = rand.Float64() * turbulenceMax
		}

		p.Color = resolved
		p.Opacity = profile.OpacityBase + (rand.Float64()-0.5)*opacityJitter
		p.Shape = profile.Shape

		switch profile.Shape {
		case types.ShapeDisc:
			p.Flake = rollFlakeGeometry()
		case types.ShapeStreak:
			p.Streak = &components.StreakGeometry{
				TrailLength: p.Size*15 + rand.Float64()*10,
			}
		case types.ShapeFoliage:
			p.Leaf = &components.LeafGeometry{LeafType: rand.Intn(3)}
		}
	}

	return particles, nil
}

// rollFlakeGeometry 为一片雪花掷骰完整的程序化参数集。
// 结果在粒子生命期内固定；只有装饰的位置在描述阶段重新随机。
func rollFlakeGeometry() *components.FlakeGeometry {
	g := &components.FlakeGeometry{
		ArmCount:     6,
		Ornament:     components.CenterOrnament(rand.Intn(4)),
		Arm:          components.ArmStyle(rand.Intn(3)),
		Tip:          components.TipStyle(rand.Intn(4)),
		ArmThickness: randRange(0.7, 1.3),
	}
	if rand.Float64() < 0.3 {
		g.ArmCount = 8
	}

	// 2-3 层分枝，比例位置逐层外推；第三层只有一半雪花拥有
	g.Branches = append(g.Branches,
		rollFlakeBranch(0.2, 0.5),
		rollFlakeBranch(0.5, 0.8),
	)
	if rand.Float64() < 0.5 {
		g.Branches = append(g.Branches, rollFlakeBranch(0.7, 0.9))
	}

	if rand.Float64() < 0.5 {
		g.Dots = true
		g.DotCount = 2 + rand.Intn(3)
	}
	if rand.Float64() < 0.4 {
		g.Spikes = true
		g.SpikeCount = 3 + rand.Intn(4)
	}
	if rand.Float64() < 0.35 {
		g.Chevrons = true
		g.ChevronCount = 2 + rand.Intn(2)
	}

	return g
}

// rollFlakeBranch 掷骰一层分枝：比例位置取自 [posMin, posMax]
func rollFlakeBranch(posMin, posMax float64) components.FlakeBranch {
	return components.FlakeBranch{
		Position: randRange(posMin, posMax),
		Length:   randRange(0.25, 0.45),
		Spread:   randRange(0.4, 1.0),
		Count:    1 + rand.Intn(3),
	}
}

// randRange 返回 [min, max) 上的均匀随机数
func randRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
