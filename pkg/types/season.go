// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Season 定义环境粒子效果的季节类型
type Season int

const (
	// SeasonWinter 冬季（雪花）
	SeasonWinter Season = iota
	// SeasonRainy 雨季（雨滴）
	SeasonRainy
	// SeasonFall 秋季（落叶）
	SeasonFall
)

// String 返回季节的字符串表示
func (s Season) String() string {
	switch s {
	case SeasonWinter:
		return "winter"
	case SeasonRainy:
		return "rainy"
	case SeasonFall:
		return "fall"
	default:
		return fmt.Sprintf("Season(%d)", int(s))
	}
}

// ParseSeason 将配置中的季节标识符解析为 Season。
// 无法识别的标识符返回错误，调用方策略是回退到冬季并输出诊断日志。
func ParseSeason(id string) (Season, error) {
	switch id {
	case "winter":
		return SeasonWinter, nil
	case "rainy":
		return SeasonRainy, nil
	case "fall":
		return SeasonFall, nil
	default:
		return SeasonWinter, fmt.Errorf("unknown season %q", id)
	}
}
