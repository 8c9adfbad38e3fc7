package colorx

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestParse 测试各种合法颜色格式的解析
func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
	}{
		{
			name:  "六位十六进制（白色）",
			input: "#ffffff",
			want:  RGBA{R: 255, G: 255, B: 255, A: 1.0},
		},
		{
			name:  "六位十六进制（混合通道）",
			input: "#d2691e",
			want:  RGBA{R: 210, G: 105, B: 30, A: 1.0},
		},
		{
			name:  "三位短格式扩展",
			input: "#fa0",
			want:  RGBA{R: 255, G: 170, B: 0, A: 1.0},
		},
		{
			name:  "rgba 带透明度",
			input: "rgba(174, 194, 224, 0.8)",
			want:  RGBA{R: 174, G: 194, B: 224, A: 0.8},
		},
		{
			name:  "rgb 无透明度默认 1.0",
			input: "rgb(10, 20, 30)",
			want:  RGBA{R: 10, G: 20, B: 30, A: 1.0},
		},
		{
			name:  "大写 RGBA 也接受",
			input: "RGBA(1, 2, 3, 0.5)",
			want:  RGBA{R: 1, G: 2, B: 3, A: 0.5},
		},
		{
			name:  "前后空白被忽略",
			input: "  #000000  ",
			want:  RGBA{R: 0, G: 0, B: 0, A: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !almostEqual(got.R, tt.want.R) || !almostEqual(got.G, tt.want.G) ||
				!almostEqual(got.B, tt.want.B) || !almostEqual(got.A, tt.want.A) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseInvalid 测试非法输入全部返回错误（而不是静默产出怪值）
func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"blue",
		"#gggggg",
		"#ffff",
		"rgba(300, 0, 0, 1)",
		"rgba(1, 2)",
		"rgba(1, 2, 3, 4, 5)",
		"rgba(1, 2, 3, 1.5)",
		"rgb()",
	}

	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", input)
		}
	}
}

// TestParseOrDefault 测试解析失败时回退到天空蓝
// 这是边界处的健壮性策略，必须保留（见形状几何生成器的颜色提取约定）
func TestParseOrDefault(t *testing.T) {
	got := ParseOrDefault("not-a-color")
	if got != DefaultSky {
		t.Errorf("ParseOrDefault fallback = %+v, want DefaultSky %+v", got, DefaultSky)
	}

	// 合法输入不触发回退
	got = ParseOrDefault("#102030")
	want := RGBA{R: 16, G: 32, B: 48, A: 1.0}
	if got != want {
		t.Errorf("ParseOrDefault(#102030) = %+v, want %+v", got, want)
	}
}

// TestWithAlpha 测试透明度替换不影响其他通道
func TestWithAlpha(t *testing.T) {
	base := RGBA{R: 10, G: 20, B: 30, A: 1.0}
	got := base.WithAlpha(0.25)

	if got.A != 0.25 {
		t.Errorf("WithAlpha(0.25).A = %v, want 0.25", got.A)
	}
	if got.R != base.R || got.G != base.G || got.B != base.B {
		t.Errorf("WithAlpha changed color channels: %+v", got)
	}
	if base.A != 1.0 {
		t.Error("WithAlpha mutated the receiver")
	}
}
