package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/seasonfall/pkg/config"
	"github.com/gonewx/seasonfall/pkg/types"
)

// Options 一次模拟的全局参数
// 重新配置时整体替换（不是逐字段修改），并触发粒子群的完整重建
type Options struct {
	Season          types.Season // 季节（决定形状类别和默认值）
	Quantity        int          // 粒子数量（≥0）
	AngleDegrees    float64      // 下落方向角（度），同一代粒子共享
	SpeedMultiplier float64      // 基础速度区间的乘数（>0）
	SizeOverride    *float64     // 可选：整体替换季节的尺寸区间
	ColorOverride   string       // 可选：整体替换季节的默认颜色，空表示使用默认
	SurfaceWidth    float64      // 表面宽度（像素，>0）
	SurfaceHeight   float64      // 表面高度（像素，>0）
}

// OptionsFromConfig 将 YAML 效果配置转换为模拟参数。
// 季节标识符无法识别时回退到冬季并输出诊断日志（可恢复，绝不中断）。
func OptionsFromConfig(cfg *config.EffectConfig, surfaceWidth, surfaceHeight float64) Options {
	season, err := types.ParseSeason(cfg.Season)
	if err != nil {
		log.Printf("[Season] Warning: %v (falling back to winter)", err)
		season = types.SeasonWinter
	}

	return Options{
		Season:          season,
		Quantity:        cfg.Quantity,
		AngleDegrees:    cfg.Angle,
		SpeedMultiplier: cfg.Speed,
		SizeOverride:    cfg.Size,
		ColorOverride:   cfg.Color,
		SurfaceWidth:    surfaceWidth,
		SurfaceHeight:   surfaceHeight,
	}
}

// Validate 校验模拟参数；错误用哨兵值包装，便于调用方分类处理
func (o *Options) Validate() error {
	if o.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d must not be negative", ErrInvalidConfiguration, o.Quantity)
	}
	if o.SpeedMultiplier <= 0 {
		return fmt.Errorf("%w: speed multiplier %.2f must be positive", ErrInvalidConfiguration, o.SpeedMultiplier)
	}
	if o.SurfaceWidth <= 0 || o.SurfaceHeight <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSurface, o.SurfaceWidth, o.SurfaceHeight)
	}
	return nil
}
