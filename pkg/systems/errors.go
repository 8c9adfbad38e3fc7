package systems

import "errors"

// 模拟核心的错误分类。
// 前两个是可恢复的输入校验错误，在生成任何粒子之前被拒绝；
// ErrInternalInconsistency 表示代码缺陷（粒子携带了没有对应几何规则的
// 形状类别），对合法季节绝不应出现，属于致命错误。
var (
	// ErrInvalidConfiguration 粒子数量为负数
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidSurface 表面尺寸非正数，调用方必须提供合理的回退值
	ErrInvalidSurface = errors.New("invalid surface dimensions")
	// ErrInternalInconsistency 形状类别与几何规则不匹配（生成阶段的缺陷）
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
