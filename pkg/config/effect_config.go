package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EffectConfig 效果启动配置
// 对应查看器 / 壁纸应用在 YAML 中可调的全部参数；
// 表面尺寸不在此列——它由窗口实时提供
type EffectConfig struct {
	Season   string   `yaml:"season"`   // 季节标识符："winter", "rainy", "fall"
	Quantity int      `yaml:"quantity"` // 粒子数量（≥0）
	Angle    float64  `yaml:"angle"`    // 下落方向角（度），所有粒子共享
	Speed    float64  `yaml:"speed"`    // 基础速度区间的乘数（>0）
	Size     *float64 `yaml:"size"`     // 可选：整体替换季节的尺寸区间
	Color    string   `yaml:"color"`    // 可选：整体替换季节的默认颜色，空表示不覆盖
}

// DefaultEffectConfig 返回默认效果配置（冬季雪花）
func DefaultEffectConfig() *EffectConfig {
	return &EffectConfig{
		Season:   "winter",
		Quantity: 150,
		Angle:    0,
		Speed:    1.0,
	}
}

// Validate 校验效果配置的取值范围
func (c *EffectConfig) Validate() error {
	if c.Quantity < 0 {
		return fmt.Errorf("quantity %d must not be negative", c.Quantity)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed multiplier %.2f must be positive", c.Speed)
	}
	if c.Size != nil && *c.Size <= 0 {
		return fmt.Errorf("size override %.2f must be positive", *c.Size)
	}
	return nil
}

// LoadEffectConfig 从 YAML 数据解析效果配置。
// 文件中未出现的字段沿用默认值。
func LoadEffectConfig(data []byte) (*EffectConfig, error) {
	cfg := DefaultEffectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("effect config: %w", err)
	}
	return cfg, nil
}

// LoadEffectConfigFile 从 YAML 文件加载效果配置
func LoadEffectConfigFile(path string) (*EffectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config file %s: %w", path, err)
	}
	return LoadEffectConfig(data)
}
