// Package colorx provides color string parsing for seasonfall configurations.
//
// 颜色字符串只在配置进入系统的边界处解析一次（粒子生成时），
// 解析结果以结构化 RGBA 值存储在粒子上，渲染时不再做任何字符串处理。
package colorx

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a resolved color with float channels.
// R/G/B are in [0,255], A is in [0,1] (matches the rgba() CSS convention).
type RGBA struct {
	R float64
	G float64
	B float64
	A float64
}

// DefaultSky 是解析失败时的兜底颜色（天空蓝）。
// 这是一个刻意的健壮性策略：外部传入的颜色字符串无法解析时，
// 效果退化为默认色继续运行，而不是中断动画。
var DefaultSky = RGBA{R: 135, G: 206, B: 235, A: 1.0}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Parse parses a color string in hexadecimal ("#fff", "#aabbcc") or
// rgba ("rgba(174, 194, 224, 0.8)" / "rgb(174, 194, 224)") form.
//
// 返回：
//   - RGBA: 解析后的颜色
//   - error: 两种格式都无法解析时返回错误（调用方应回退到 DefaultSky）
func Parse(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("colorx: empty color string")
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb(") {
		return parseRGBA(lower)
	}
	return RGBA{}, fmt.Errorf("colorx: unrecognized color format %q", s)
}

// ParseOrDefault parses s and falls back to DefaultSky when the string does
// not parse. This is the only place the fallback policy lives.
func ParseOrDefault(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		return DefaultSky
	}
	return c
}

// parseHex 解析 "#rgb" 或 "#rrggbb" 形式的十六进制颜色。
func parseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 3:
		// 短格式：每个字符翻倍，如 "#fa0" → "#ffaa00"
		var expanded strings.Builder
		for _, ch := range hex {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		hex = expanded.String()
	case 6:
		// 标准格式
	default:
		return RGBA{}, fmt.Errorf("colorx: invalid hex color length %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("colorx: invalid hex color %q: %w", s, err)
	}

	return RGBA{
		R: float64((v >> 16) & 0xff),
		G: float64((v >> 8) & 0xff),
		B: float64(v & 0xff),
		A: 1.0,
	}, nil
}

// parseRGBA 解析 "rgba(r, g, b, a)" 或 "rgb(r, g, b)" 形式的颜色。
// 输入已转为小写。
func parseRGBA(s string) (RGBA, error) {
	open := strings.Index(s, "(")
	closing := strings.LastIndex(s, ")")
	if open < 0 || closing < open {
		return RGBA{}, fmt.Errorf("colorx: malformed rgba color %q", s)
	}

	parts := strings.Split(s[open+1:closing], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("colorx: rgba color %q has %d components, want 3 or 4", s, len(parts))
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("colorx: invalid rgba component %q: %w", p, err)
		}
		vals[i] = v
	}

	c := RGBA{R: vals[0], G: vals[1], B: vals[2], A: 1.0}
	if len(vals) == 4 {
		c.A = vals[3]
	}
	if c.R < 0 || c.R > 255 || c.G < 0 || c.G > 255 || c.B < 0 || c.B > 255 || c.A < 0 || c.A > 1 {
		return RGBA{}, fmt.Errorf("colorx: rgba component out of range in %q", s)
	}
	return c, nil
}
