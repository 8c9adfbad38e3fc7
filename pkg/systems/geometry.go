package systems

import (
	"fmt"
	"math"

	"github.com/gonewx/seasonfall/pkg/components"
	"github.com/gonewx/seasonfall/pkg/types"
)

// 不透明度在描述阶段裁剪到这个区间。
// 生成阶段允许暂时越界（见 generator.go 的 opacityJitter），
// 这里是绘制前的安全网，不是生成不变量。
const (
	opacityFloor = 0.3
	opacityCeil  = 1.0
)

// Describe derives a renderer-agnostic shape descriptor from the particle's
// current state. Pure function of that state with one documented exception:
// 雪花的点/刺/人字纹装饰在每次调用时重新随机位置，因此装饰开启的
// 粒子两次描述的结果不保证逐段一致——这是接受的设计取舍，不是缺陷；
// 装饰关闭时 Describe 是完全确定的。
//
// 返回：
//   - *components.ShapeDescriptor: 本帧要绘制的图形
//   - error: 形状类别没有对应几何规则时返回 ErrInternalInconsistency。
//     这只能由生成阶段的缺陷造成，对合法季节绝不应出现，属于致命错误。
func Describe(p *components.Particle) (*components.ShapeDescriptor, error) {
	opacity := clampOpacity(p.Opacity)

	switch p.Shape {
	case types.ShapeDisc:
		return describeSnowflake(p, opacity), nil
	case types.ShapeStreak:
		return describeStreak(p, opacity), nil
	case types.ShapeFoliage:
		return describeFoliage(p, opacity), nil
	default:
		return nil, fmt.Errorf("%w: no geometry rule for shape kind %v", ErrInternalInconsistency, p.Shape)
	}
}

func clampOpacity(v float64) float64 {
	if v < opacityFloor {
		return opacityFloor
	}
	if v > opacityCeil {
		return opacityCeil
	}
	return v
}

// placement 将几何生成阶段的局部坐标烘焙为表面坐标：
// 先绕原点旋转 rot，再平移到 (x, y)。
// 描述器在局部坐标里构图，所有输出段落都经过它变换，
// 渲染器因此不需要任何变换栈。
type placement struct {
	x, y float64
	rot  float64
}

func (pl placement) apply(lx, ly float64) (float64, float64) {
	c := math.Cos(pl.rot)
	s := math.Sin(pl.rot)
	return pl.x + lx*c - ly*s, pl.y + lx*s + ly*c
}

// move/line/quad 构造经过放置变换的段落
func (pl placement) move(lx, ly float64) components.Segment {
	x, y := pl.apply(lx, ly)
	return components.Segment{Op: components.OpMove, X: x, Y: y}
}

func (pl placement) line(lx, ly float64) components.Segment {
	x, y := pl.apply(lx, ly)
	return components.Segment{Op: components.OpLine, X: x, Y: y}
}

func (pl placement) quad(cx, cy, lx, ly float64) components.Segment {
	tcx, tcy := pl.apply(cx, cy)
	x, y := pl.apply(lx, ly)
	return components.Segment{Op: components.OpQuad, CtrlX: tcx, CtrlY: tcy, X: x, Y: y}
}

// circle 构造以局部坐标 (lx, ly) 为圆心的整圆弧段。
// 圆对旋转不敏感，只需要变换圆心。
func (pl placement) circle(lx, ly, radius float64) components.Segment {
	x, y := pl.apply(lx, ly)
	return components.Segment{
		Op:         components.OpArc,
		X:          x,
		Y:          y,
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   2 * math.Pi,
	}
}
