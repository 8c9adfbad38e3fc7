package systems

import (
	"math"

	"github.com/gonewx/seasonfall/pkg/components"
)

// 雪花几何常量（全部相对臂长 R = p.Size）
const (
	flakeBranchWidthScale = 0.8  // 分枝线宽相对主臂的比例
	flakeTipLength        = 0.18 // 分叉/三叉端部长度
	flakeCurveBow         = 0.12 // 曲线臂的弯曲量
	flakeOrnamentRadius   = 0.18 // 中心装饰半径
)

// describeSnowflake 生成一片雪花的绘制描述。
//
// 结构：中心装饰一次，然后 armCount 个等角分布的臂，每个臂包含
// 主臂笔画、逐层左右镜像的分枝、端部装饰，以及启用的点/刺/人字纹。
// 装饰的位置每次调用重新随机，但同一次调用内所有臂共享同一组位置，
// 保证六重（或八重）对称不被破坏。
//
// 同一线宽/上色意图的段落合并进同一个 Figure，
// 渲染器可以把整组子路径一次描边。
func describeSnowflake(p *components.Particle, opacity float64) *components.ShapeDescriptor {
	g := p.Flake
	radius := p.Size
	width := p.Size / 12 * g.ArmThickness
	step := 2 * math.Pi / float64(g.ArmCount)

	var (
		armSegs    []components.Segment // 主臂（线宽 width）
		thinSegs   []components.Segment // 锥形臂外段、分枝、端部、刺、人字纹（线宽 width×0.8）
		fillSegs   []components.Segment // 点装饰和尖点端部（填充圆）
		centerSegs []components.Segment
	)

	centerSegs = describeOrnament(g.Ornament, placement{x: p.X, y: p.Y, rot: p.Rotation}, radius)

	// 本次描述的装饰位置（所有臂共享，保持对称）
	dotPos := rollDecorPositions(g.Dots, g.DotCount)
	spikePos := rollDecorPositions(g.Spikes, g.SpikeCount)
	chevronPos := rollDecorPositions(g.Chevrons, g.ChevronCount)
	spikeLens := make([]float64, len(spikePos))
	for i := range spikeLens {
		spikeLens[i] = randRange(0.05, 0.12) * radius
	}

	for i := 0; i < g.ArmCount; i++ {
		// 每个臂用自己的放置变换，在局部坐标里沿 +x 轴构图
		arm := placement{x: p.X, y: p.Y, rot: p.Rotation + step*float64(i)}

		// 主臂笔画
		switch g.Arm {
		case components.ArmTapered:
			armSegs = append(armSegs, arm.move(0, 0), arm.line(radius*0.6, 0))
			thinSegs = append(thinSegs, arm.move(radius*0.6, 0), arm.line(radius, 0))
		case components.ArmCurved:
			armSegs = append(armSegs,
				arm.move(0, 0),
				arm.quad(radius*0.5, radius*flakeCurveBow, radius, 0),
			)
		default: // ArmStraight
			armSegs = append(armSegs, arm.move(0, 0), arm.line(radius, 0))
		}

		// 分枝：每层沿臂轴左右镜像，多重分枝向中心方向依次错开
		for _, b := range g.Branches {
			length := b.Length * radius
			for k := 0; k < b.Count; k++ {
				base := (b.Position - float64(k)*0.07) * radius
				if base < radius*0.05 {
					break
				}
				dx := math.Cos(b.Spread) * length
				dy := math.Sin(b.Spread) * length
				thinSegs = append(thinSegs,
					arm.move(base, 0), arm.line(base+dx, dy),
					arm.move(base, 0), arm.line(base+dx, -dy),
				)
			}
		}

		// 端部装饰
		tipLen := flakeTipLength * radius
		switch g.Tip {
		case components.TipForked:
			dx := math.Cos(0.5) * tipLen
			dy := math.Sin(0.5) * tipLen
			thinSegs = append(thinSegs,
				arm.move(radius, 0), arm.line(radius+dx, dy),
				arm.move(radius, 0), arm.line(radius+dx, -dy),
			)
		case components.TipTriStar:
			for _, a := range []float64{-0.6, 0, 0.6} {
				thinSegs = append(thinSegs,
					arm.move(radius, 0),
					arm.line(radius+math.Cos(a)*tipLen*0.85, math.Sin(a)*tipLen*0.85),
				)
			}
		case components.TipCurved:
			// 横跨臂端的小弧，向外微微鼓起
			thinSegs = append(thinSegs,
				arm.move(radius, -flakeCurveBow*radius),
				arm.quad(radius+0.14*radius, 0, radius, flakeCurveBow*radius),
			)
		default: // TipPoint
			fillSegs = append(fillSegs, arm.circle(radius, 0, width*0.9))
		}

		// 点装饰：臂上的小圆
		for _, t := range dotPos {
			fillSegs = append(fillSegs, arm.circle(t*radius, 0, width*0.8))
		}

		// 刺装饰：垂直于臂轴的细短线
		for j, t := range spikePos {
			spikeLen := spikeLens[j]
			thinSegs = append(thinSegs,
				arm.move(t*radius, -spikeLen), arm.line(t*radius, spikeLen),
			)
		}

		// 人字纹装饰：指向臂端的 V 形
		for _, t := range chevronPos {
			back := 0.08 * radius
			half := 0.06 * radius
			thinSegs = append(thinSegs,
				arm.move(t*radius-back, half), arm.line(t*radius, 0),
				arm.line(t*radius-back, -half),
			)
		}
	}

	desc := &components.ShapeDescriptor{}
	if len(centerSegs) > 0 {
		desc.Figures = append(desc.Figures, components.Figure{
			Segments: centerSegs,
			Mode:     components.PaintStroke,
			Color:    p.Color,
			Opacity:  opacity,
			Width:    width,
			Closed:   true,
		})
	}
	desc.Figures = append(desc.Figures, components.Figure{
		Segments: armSegs,
		Mode:     components.PaintStroke,
		Color:    p.Color,
		Opacity:  opacity,
		Width:    width,
	})
	if len(thinSegs) > 0 {
		desc.Figures = append(desc.Figures, components.Figure{
			Segments: thinSegs,
			Mode:     components.PaintStroke,
			Color:    p.Color,
			Opacity:  opacity,
			Width:    width * flakeBranchWidthScale,
		})
	}
	if len(fillSegs) > 0 {
		desc.Figures = append(desc.Figures, components.Figure{
			Segments: fillSegs,
			Mode:     components.PaintFill,
			Color:    p.Color,
			Opacity:  opacity,
		})
	}
	return desc
}

// describeOrnament 生成中心装饰的段落（OrnamentNone 返回空）
func describeOrnament(kind components.CenterOrnament, pl placement, radius float64) []components.Segment {
	r := flakeOrnamentRadius * radius

	switch kind {
	case components.OrnamentCircle:
		return []components.Segment{pl.circle(0, 0, r)}

	case components.OrnamentHexagon:
		segs := make([]components.Segment, 0, 7)
		for i := 0; i <= 6; i++ {
			a := float64(i) * math.Pi / 3
			x, y := math.Cos(a)*r, math.Sin(a)*r
			if i == 0 {
				segs = append(segs, pl.move(x, y))
			} else {
				segs = append(segs, pl.line(x, y))
			}
		}
		return segs

	case components.OrnamentStar:
		// 六角星：外顶点与内顶点交替
		segs := make([]components.Segment, 0, 13)
		for i := 0; i <= 12; i++ {
			a := float64(i) * math.Pi / 6
			pr := r
			if i%2 == 1 {
				pr = r * 0.45
			}
			x, y := math.Cos(a)*pr, math.Sin(a)*pr
			if i == 0 {
				segs = append(segs, pl.move(x, y))
			} else {
				segs = append(segs, pl.line(x, y))
			}
		}
		return segs

	default: // OrnamentNone
		return nil
	}
}

// rollDecorPositions 为启用的装饰掷骰一组臂上比例位置（[0.3, 0.9]）
func rollDecorPositions(enabled bool, count int) []float64 {
	if !enabled || count <= 0 {
		return nil
	}
	pos := make([]float64, count)
	for i := range pos {
		pos[i] = randRange(0.3, 0.9)
	}
	return pos
}
