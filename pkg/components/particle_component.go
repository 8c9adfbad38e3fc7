package components

import (
	"github.com/gonewx/seasonfall/internal/colorx"
	"github.com/gonewx/seasonfall/pkg/types"
)

// Particle represents a single falling unit (snowflake, raindrop or leaf).
// It stores all the runtime state for an individual particle: position,
// motion, visual properties and the procedural shape parameters rolled once
// at generation time.
//
// Particles are created in a batch by the population generator and owned
// exclusively by one Simulation; nothing outside the simulation mutates them.
// Going off-screen recycles the record in place (reposition, not reallocate).
//
// This is a pure data component - it contains no methods.
type Particle struct {
	// Kinematic state (运动状态)
	X, Y         float64 // Position (像素，表面坐标系，Y 向下为正)
	AngleRadians float64 // Fall direction (弧度)，生成时由全局角度推导，之后固定
	Speed        float64 // Base fall speed (像素/帧)
	Rotation     float64 // Current rotation (弧度)
	RotSpeed     float64 // Rotation speed (弧度/帧)，0 表示不自旋

	// Sway state (摆动状态)
	// 只有季节配置启用摆动时才会填充，否则全部为零——
	// 这组字段是"雪花漂移"与"雨滴直落"的区分开关
	SwayAmount float64 // 主摆动振幅（像素/帧）
	SwaySpeed  float64 // 主摆动频率（弧度/帧）
	SwayOffset float64 // 摆动相位偏移，让每片雪花的节奏互不相同
	WindX      float64 // 恒定横风分量（像素/帧）
	Turbulence float64 // 低频次级扰动振幅（像素/帧）

	// Visual state (视觉状态)
	Size    float64         // 特征尺寸（像素）
	Color   colorx.RGBA     // 生成时解析好的结构化颜色（不在渲染期重复解析字符串）
	Opacity float64         // 生成值可能略超出 [0.3,1]，裁剪发生在描述阶段
	Shape   types.ShapeKind // 形状类别，必须与所属模拟的当前季节一致

	// Shape payloads (形状参数载荷)
	// 生成时恰好填充与 Shape 匹配的那一个，其余为 nil；创建后不可变
	Flake  *FlakeGeometry  // Shape == ShapeDisc
	Streak *StreakGeometry // Shape == ShapeStreak
	Leaf   *LeafGeometry   // Shape == ShapeFoliage
}

// CenterOrnament 雪花中心装饰类别
type CenterOrnament int

const (
	OrnamentNone    CenterOrnament = iota // 无中心装饰
	OrnamentCircle                        // 圆形
	OrnamentHexagon                       // 六边形
	OrnamentStar                          // 六角星
)

// ArmStyle 雪花主臂的描绘风格
type ArmStyle int

const (
	ArmStraight ArmStyle = iota // 直线臂
	ArmTapered                  // 锥形臂（根部粗、端部细）
	ArmCurved                   // 曲线臂
)

// TipStyle 雪花臂端部的装饰风格
type TipStyle int

const (
	TipPoint   TipStyle = iota // 尖点
	TipForked                  // 分叉
	TipTriStar                 // 三叉星
	TipCurved                  // 弧线
)

// FlakeBranch 雪花臂上的一层分枝
// 每层分枝沿臂轴左右对称镜像绘制
type FlakeBranch struct {
	Position float64 // 距中心的比例位置（0-1，沿臂长）
	Length   float64 // 分枝长度（相对臂长的比例）
	Spread   float64 // 分枝与臂轴的夹角（弧度）
	Count    int     // 每侧的子分枝数（1-3）
}

// FlakeGeometry 一片雪花的完整程序化参数集。
// 生成时掷骰一次后固定，保证同一片雪花在所有帧里保持同一结构；
// 只有 Dots/Spikes/Chevrons 装饰的数量和位置在每次描述时重新随机
// （§非确定性契约：装饰抖动是有意的设计取舍，不是缺陷）。
type FlakeGeometry struct {
	ArmCount int           // 臂数，6 或 8（8 的概率 30%）
	Branches []FlakeBranch // 2-3 层分枝，比例位置依次取自 [0.2,0.5]、[0.5,0.8]、[0.7,0.9]

	Ornament CenterOrnament // 中心装饰
	Arm      ArmStyle       // 主臂风格
	Tip      TipStyle       // 端部风格

	// 装饰开关，各自独立掷骰
	Dots     bool // 沿臂的小圆点
	Spikes   bool // 沿臂的细刺
	Chevrons bool // 沿臂的人字纹

	// 装饰的最大数量（位置在每次描述时重新随机）
	DotCount     int
	SpikeCount   int
	ChevronCount int

	ArmThickness float64 // 线宽乘数，实际线宽 = size/12 × ArmThickness
}

// StreakGeometry 一条雨滴拖尾的程序化参数
type StreakGeometry struct {
	TrailLength float64 // 拖尾长度（像素）= size×15 + U(0,10)
}

// LeafGeometry 一片落叶的程序化参数
type LeafGeometry struct {
	LeafType int // 轮廓家族：0=枫叶（多裂片）、1=椭圆、2=泪滴
}
