package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/seasonfall/pkg/types"
)

// ErrUnknownSeason 表示季节标识符不在三个已知季节之内。
// 这是一个可恢复错误：调用方应回退到冬季配置并输出诊断日志，绝不中断动画。
var ErrUnknownSeason = errors.New("unknown season")

// SeasonProfile 单个季节的视觉/物理默认值
// 每个季节一份，内容不可变；粒子生成时从这里采样初始属性
type SeasonProfile struct {
	Shape         types.ShapeKind `yaml:"-"`             // 粒子形状类别（由季节决定，不从 YAML 读取）
	ColorDefault  string          `yaml:"color"`         // 默认颜色（hex 或 rgba 字符串）
	SizeMin       float64         `yaml:"sizeMin"`       // 粒子尺寸下限（像素）
	SizeMax       float64         `yaml:"sizeMax"`       // 粒子尺寸上限（像素）
	SpeedMin      float64         `yaml:"speedMin"`      // 基础下落速度下限（像素/帧）
	SpeedMax      float64         `yaml:"speedMax"`      // 基础下落速度上限（像素/帧）
	Sway          bool            `yaml:"sway"`          // 是否启用横向摆动（雪花漂移 vs 雨滴直落）
	RotationSpeed float64         `yaml:"rotationSpeed"` // 自旋速度（弧度/帧），0 表示不旋转
	OpacityBase   float64         `yaml:"opacityBase"`   // 基础不透明度（生成时加 ±0.1 抖动）
}

// 内置季节默认值。
// 数值手工调校：雪花缓慢漂移带自旋，雨滴快速直落，落叶中速翻转。
var builtinProfiles = map[types.Season]SeasonProfile{
	types.SeasonWinter: {
		Shape:         types.ShapeDisc,
		ColorDefault:  "#ffffff",
		SizeMin:       6,
		SizeMax:       18,
		SpeedMin:      0.8,
		SpeedMax:      2.4,
		Sway:          true,
		RotationSpeed: 0.02,
		OpacityBase:   0.85,
	},
	types.SeasonRainy: {
		Shape:         types.ShapeStreak,
		ColorDefault:  "rgba(174, 194, 224, 0.8)",
		SizeMin:       1.0,
		SizeMax:       2.6,
		SpeedMin:      8,
		SpeedMax:      14,
		Sway:          false,
		RotationSpeed: 0,
		OpacityBase:   0.65,
	},
	types.SeasonFall: {
		Shape:         types.ShapeFoliage,
		ColorDefault:  "#d2691e",
		SizeMin:       8,
		SizeMax:       16,
		SpeedMin:      1.2,
		SpeedMax:      3.2,
		Sway:          false,
		RotationSpeed: 0.03,
		OpacityBase:   0.9,
	},
}

// ProfileFor 返回指定季节的配置。
// 纯查表，无副作用。
//
// 返回：
//   - SeasonProfile: 季节配置（未知季节时为冬季配置，供调用方直接回退使用）
//   - error: 季节不在已知范围内时返回 ErrUnknownSeason
func ProfileFor(season types.Season) (SeasonProfile, error) {
	p, ok := builtinProfiles[season]
	if !ok {
		return builtinProfiles[types.SeasonWinter], fmt.Errorf("%w: %v", ErrUnknownSeason, season)
	}
	return p, nil
}

// Validate 校验配置的内部不变量（区间下限 ≤ 上限，透明度在 [0,1]）
func (p *SeasonProfile) Validate() error {
	if p.SizeMin > p.SizeMax {
		return fmt.Errorf("size range invalid: min %.2f > max %.2f", p.SizeMin, p.SizeMax)
	}
	if p.SpeedMin > p.SpeedMax {
		return fmt.Errorf("speed range invalid: min %.2f > max %.2f", p.SpeedMin, p.SpeedMax)
	}
	if p.OpacityBase < 0 || p.OpacityBase > 1 {
		return fmt.Errorf("opacityBase %.2f out of range [0,1]", p.OpacityBase)
	}
	return nil
}
