package types

// ShapeKind 定义粒子的形状类别。
// 形状类别只由季节配置推导，是一个封闭的变体集合：
// 所有按形状分发的代码都必须穷举这三个值，default 分支视为内部不一致。
type ShapeKind int

const (
	// ShapeDisc 雪花（分形臂结构）
	ShapeDisc ShapeKind = iota
	// ShapeStreak 雨滴（带渐变的拖尾线条）
	ShapeStreak
	// ShapeFoliage 落叶（三种轮廓之一加叶脉）
	ShapeFoliage
)

// String 返回形状类别的字符串表示
func (k ShapeKind) String() string {
	switch k {
	case ShapeDisc:
		return "Disc"
	case ShapeStreak:
		return "Streak"
	case ShapeFoliage:
		return "Foliage"
	default:
		return "Unknown"
	}
}
