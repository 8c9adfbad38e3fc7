package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/seasonfall/internal/colorx"
	"github.com/gonewx/seasonfall/pkg/components"
)

// 三角形填充用的白色源图（ebiten vector 绘制的标准做法：
// 用 3x3 白图的中心 1x1 子图避免边缘采样出血）
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// RenderSystem 把形状描述符变成 Ebitengine 像素。
//
// 它实现 systems.Renderer：Tick 期间（宿主的 Update 阶段）收到的
// 描述符先缓冲起来，宿主在 Draw 阶段调用 Flush 一次性栅格化。
// 这样既满足 Ebitengine 的 Update/Draw 分离，也满足模拟核心
// "上一帧的描述符消费完才开始下一步"的约定。
type RenderSystem struct {
	pending []*components.ShapeDescriptor

	// 顶点/索引缓冲跨帧复用，避免每帧重新分配
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderSystem 创建一个新的渲染系统实例
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw 实现 Renderer：缓冲一个描述符，等待 Flush
func (rs *RenderSystem) Draw(desc *components.ShapeDescriptor) {
	rs.pending = append(rs.pending, desc)
}

// Flush 把本帧缓冲的全部描述符绘制到 screen 上并清空缓冲
func (rs *RenderSystem) Flush(screen *ebiten.Image) {
	for _, desc := range rs.pending {
		for i := range desc.Figures {
			rs.drawFigure(screen, &desc.Figures[i])
		}
	}
	rs.pending = rs.pending[:0]
}

// PendingCount 返回当前缓冲的描述符数量（调试覆盖层使用）
func (rs *RenderSystem) PendingCount() int {
	return len(rs.pending)
}

// drawFigure 栅格化单个图形：先把段落翻译成 vector.Path，
// 再按描边/填充意图生成三角形提交
func (rs *RenderSystem) drawFigure(screen *ebiten.Image, fig *components.Figure) {
	var path vector.Path
	appendSegments(&path, fig.Segments)
	if fig.Closed {
		path.Close()
	}

	rs.vertices = rs.vertices[:0]
	rs.indices = rs.indices[:0]

	if fig.Mode == components.PaintStroke {
		op := &vector.StrokeOptions{
			Width:   float32(fig.Width),
			LineCap: vector.LineCapRound,
		}
		if op.Width <= 0 {
			op.Width = 1
		}
		rs.vertices, rs.indices = path.AppendVerticesAndIndicesForStroke(rs.vertices, rs.indices, op)
	} else {
		rs.vertices, rs.indices = path.AppendVerticesAndIndicesForFilling(rs.vertices, rs.indices)
	}

	if fig.Gradient != nil {
		applyGradient(rs.vertices, fig.Gradient, fig.Opacity)
	} else {
		applyFlatColor(rs.vertices, fig.Color, fig.Opacity)
	}

	top := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	screen.DrawTriangles(rs.vertices, rs.indices, whiteSubImage, top)
}

// appendSegments 把描述符段落逐条翻译成 vector.Path 指令
func appendSegments(path *vector.Path, segs []components.Segment) {
	for _, seg := range segs {
		switch seg.Op {
		case components.OpMove:
			path.MoveTo(float32(seg.X), float32(seg.Y))
		case components.OpLine:
			path.LineTo(float32(seg.X), float32(seg.Y))
		case components.OpQuad:
			path.QuadTo(float32(seg.CtrlX), float32(seg.CtrlY), float32(seg.X), float32(seg.Y))
		case components.OpArc:
			// 每段弧作为独立子路径，先移动到弧起点避免连线
			startX := seg.X + seg.Radius*math.Cos(seg.StartAngle)
			startY := seg.Y + seg.Radius*math.Sin(seg.StartAngle)
			path.MoveTo(float32(startX), float32(startY))
			path.Arc(float32(seg.X), float32(seg.Y), float32(seg.Radius),
				float32(seg.StartAngle), float32(seg.EndAngle), vector.Clockwise)
		}
	}
}

// applyFlatColor 给全部顶点设置同一颜色
func applyFlatColor(vs []ebiten.Vertex, c colorx.RGBA, opacity float64) {
	r, g, b, a := premultiply(c, opacity)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

// applyGradient 按顶点在渐变轴上的投影插值色标。
// 描述符的渐变是线性三段式（雨滴拖尾的动态模糊效果），
// 在顶点粒度上插值已经足够平滑。
func applyGradient(vs []ebiten.Vertex, grad *components.Gradient, opacity float64) {
	axisX := grad.X1 - grad.X0
	axisY := grad.Y1 - grad.Y0
	lenSq := axisX*axisX + axisY*axisY

	for i := range vs {
		t := 0.0
		if lenSq > 0 {
			t = ((float64(vs[i].DstX)-grad.X0)*axisX + (float64(vs[i].DstY)-grad.Y0)*axisY) / lenSq
		}
		c := evalGradient(grad.Stops, t)
		r, g, b, a := premultiply(c, opacity)
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

// evalGradient 在色标序列上求位置 t 的插值颜色（t 裁剪到 [0,1]）
func evalGradient(stops []components.GradientStop, t float64) colorx.RGBA {
	if len(stops) == 0 {
		return colorx.DefaultSky
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			span := stops[i].Offset - stops[i-1].Offset
			frac := 0.0
			if span > 0 {
				frac = (t - stops[i-1].Offset) / span
			}
			return lerpRGBA(stops[i-1].Color, stops[i].Color, frac)
		}
	}
	return last.Color
}

func lerpRGBA(a, b colorx.RGBA, t float64) colorx.RGBA {
	return colorx.RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// premultiply 计算预乘透明度的顶点颜色分量
func premultiply(c colorx.RGBA, opacity float64) (r, g, b, a float32) {
	alpha := c.A * opacity
	return float32(c.R / 255 * alpha),
		float32(c.G / 255 * alpha),
		float32(c.B / 255 * alpha),
		float32(alpha)
}
