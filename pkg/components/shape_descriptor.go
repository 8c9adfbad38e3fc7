package components

import "github.com/gonewx/seasonfall/internal/colorx"

// ShapeDescriptor is a renderer-agnostic description of what to draw for one
// particle in one frame. It is the only thing the simulation hands to the
// renderer: a flat list of figures made of move/line/quadratic-curve/arc
// segments, each tagged with stroke-or-fill intent and a resolved RGBA color.
//
// 坐标全部是表面坐标系的绝对值：粒子的位置和旋转已经在几何生成阶段
// 烘焙进段落坐标里，渲染器不需要任何变换栈。
type ShapeDescriptor struct {
	Figures []Figure
}

// SegmentOp 段落操作类别
type SegmentOp int

const (
	// OpMove 移动画笔到 (X, Y)，开始新的子路径
	OpMove SegmentOp = iota
	// OpLine 从当前点画直线到 (X, Y)
	OpLine
	// OpQuad 从当前点经控制点 (CtrlX, CtrlY) 画二次贝塞尔曲线到 (X, Y)
	OpQuad
	// OpArc 以 (X, Y) 为圆心、Radius 为半径，从 StartAngle 画弧到 EndAngle
	OpArc
)

// Segment 一条原始绘图指令
type Segment struct {
	Op   SegmentOp
	X, Y float64 // 终点坐标（OpArc 时为圆心）

	CtrlX, CtrlY float64 // 二次曲线控制点（仅 OpQuad）

	Radius     float64 // 弧半径（仅 OpArc）
	StartAngle float64 // 弧起始角，弧度（仅 OpArc）
	EndAngle   float64 // 弧结束角，弧度（仅 OpArc）
}

// PaintMode 图形的上色意图
type PaintMode int

const (
	// PaintStroke 描边
	PaintStroke PaintMode = iota
	// PaintFill 填充
	PaintFill
)

// GradientStop 渐变色标
type GradientStop struct {
	Offset float64     // 沿渐变轴的位置（0-1）
	Color  colorx.RGBA // 该位置的颜色（含透明度）
}

// Gradient 线性渐变说明（雨滴拖尾的动态模糊效果使用）
type Gradient struct {
	X0, Y0 float64 // 渐变起点
	X1, Y1 float64 // 渐变终点
	Stops  []GradientStop
}

// Figure 一个完整的可绘制图形：一组段落加上色说明
type Figure struct {
	Segments []Segment
	Mode     PaintMode
	Color    colorx.RGBA // 已解析的颜色；Opacity 单独给出便于渲染器合成
	Opacity  float64     // 最终不透明度，已裁剪到 [0.3, 1.0]
	Width    float64     // 描边线宽（仅 PaintStroke）
	Closed   bool        // 是否闭合子路径（填充轮廓使用）
	Gradient *Gradient   // 非 nil 时描边颜色沿渐变轴插值（覆盖 Color）
}
