package systems

import (
	"github.com/gonewx/seasonfall/internal/colorx"
	"github.com/gonewx/seasonfall/pkg/components"
)

// 叶片轮廓家族（LeafGeometry.LeafType 的取值）
const (
	leafMaple    = 0 // 枫叶：链式二次曲线构成的多裂片轮廓
	leafEllipse  = 1 // 简单椭圆
	leafTeardrop = 2 // 泪滴形
)

// 叶脉的颜色在叶面色基础上压暗
const leafVeinDarken = 0.6

// describeFoliage 生成一片落叶的绘制描述：
// LeafType 选定的轮廓填充叶面色，中心主脉总是绘制，
// 枫叶轮廓额外绘制三对对称的侧脉。整体按粒子当前旋转角摆放。
func describeFoliage(p *components.Particle, opacity float64) *components.ShapeDescriptor {
	pl := placement{x: p.X, y: p.Y, rot: p.Rotation}
	size := p.Size

	vein := colorx.RGBA{
		R: p.Color.R * leafVeinDarken,
		G: p.Color.G * leafVeinDarken,
		B: p.Color.B * leafVeinDarken,
		A: p.Color.A,
	}
	veinWidth := size / 14
	if veinWidth < 0.5 {
		veinWidth = 0.5
	}

	var outline []components.Segment
	var veins []components.Segment

	// 轮廓在局部坐标里构图：叶柄在 (0, size/2)，叶尖在 (0, -size/2)
	half := size / 2
	switch p.Leaf.LeafType {
	case leafMaple:
		// 五裂片轮廓，左右对称的链式二次曲线
		outline = []components.Segment{
			pl.move(0, half),
			pl.quad(half*0.9, half*0.7, half*0.8, half*0.1),
			pl.quad(half*1.1, -half*0.2, half*0.5, -half*0.4),
			pl.quad(half*0.5, -half*0.9, 0, -half),
			pl.quad(-half*0.5, -half*0.9, -half*0.5, -half*0.4),
			pl.quad(-half*1.1, -half*0.2, -half*0.8, half*0.1),
			pl.quad(-half*0.9, half*0.7, 0, half),
		}
		// 三对对称侧脉
		for _, v := range [][4]float64{
			{0, half * 0.3, half * 0.55, 0},
			{0, 0, half * 0.6, -half * 0.3},
			{0, -half * 0.3, half * 0.4, -half * 0.6},
		} {
			veins = append(veins,
				pl.move(v[0], v[1]), pl.line(v[2], v[3]),
				pl.move(-v[0], v[1]), pl.line(-v[2], v[3]),
			)
		}
	case leafEllipse:
		// 四段二次曲线近似的椭圆（短轴 = 0.6×长轴）
		w := half * 0.6
		outline = []components.Segment{
			pl.move(0, half),
			pl.quad(w*1.33, half, w, 0),
			pl.quad(w*1.33, -half, 0, -half),
			pl.quad(-w*1.33, -half, -w, 0),
			pl.quad(-w*1.33, half, 0, half),
		}
	default: // leafTeardrop
		// 底部圆润、顶端收尖
		w := half * 0.7
		outline = []components.Segment{
			pl.move(0, half),
			pl.quad(w*1.4, half*0.4, w*0.5, -half*0.5),
			pl.quad(w*0.2, -half*0.9, 0, -half),
			pl.quad(-w*0.2, -half*0.9, -w*0.5, -half*0.5),
			pl.quad(-w*1.4, half*0.4, 0, half),
		}
	}

	// 中心主脉总是绘制：叶柄到叶尖
	veins = append([]components.Segment{
		pl.move(0, half), pl.line(0, -half),
	}, veins...)

	return &components.ShapeDescriptor{
		Figures: []components.Figure{
			{
				Segments: outline,
				Mode:     components.PaintFill,
				Color:    p.Color,
				Opacity:  opacity,
				Closed:   true,
			},
			{
				Segments: veins,
				Mode:     components.PaintStroke,
				Color:    vein,
				Opacity:  opacity,
				Width:    veinWidth,
			},
		},
	}
}
