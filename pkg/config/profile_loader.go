package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/seasonfall/pkg/types"
)

// ProfileOverrides YAML 季节配置文件的根结构
// 文件中只需要写想覆盖的季节，未出现的季节沿用内置默认值
type ProfileOverrides struct {
	Seasons map[string]SeasonProfile `yaml:"seasons"`
}

// LoadProfileOverrides 从 YAML 数据解析季节配置覆盖并合并到内置默认值上。
//
// 合并规则：每个出现在文件中的季节整体替换对应的内置配置
// （形状类别除外——Shape 永远由季节决定，配置文件不能改变它）。
//
// 参数：
//
//	data - YAML 文件内容
//
// 返回：
//
//	map[types.Season]SeasonProfile - 合并后的完整季节表
//	error - YAML 解析失败、季节名未知或配置不变量被破坏时返回错误
func LoadProfileOverrides(data []byte) (map[types.Season]SeasonProfile, error) {
	var overrides ProfileOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse season profiles YAML: %w", err)
	}

	merged := make(map[types.Season]SeasonProfile, len(builtinProfiles))
	for season, profile := range builtinProfiles {
		merged[season] = profile
	}

	for name, override := range overrides.Seasons {
		season, err := types.ParseSeason(name)
		if err != nil {
			return nil, fmt.Errorf("season profiles: %w", err)
		}
		// 形状类别不可配置
		override.Shape = merged[season].Shape
		if err := override.Validate(); err != nil {
			return nil, fmt.Errorf("season profile %q: %w", name, err)
		}
		merged[season] = override
	}

	return merged, nil
}

// LoadProfileOverridesFile 从 YAML 文件加载季节配置覆盖
func LoadProfileOverridesFile(path string) (map[types.Season]SeasonProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read season profiles file %s: %w", path, err)
	}
	return LoadProfileOverrides(data)
}
