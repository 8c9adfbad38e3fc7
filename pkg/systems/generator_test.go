package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/gonewx/seasonfall/internal/colorx"
	"github.com/gonewx/seasonfall/pkg/components"
	"github.com/gonewx/seasonfall/pkg/config"
	"github.com/gonewx/seasonfall/pkg/types"
)

func testOptions(season types.Season) Options {
	return Options{
		Season:          season,
		Quantity:        100,
		AngleDegrees:    0,
		SpeedMultiplier: 1.0,
		SurfaceWidth:    800,
		SurfaceHeight:   600,
	}
}

// TestGenerateCount 测试粒子数量：返回的切片长度恰好等于请求数
func TestGenerateCount(t *testing.T) {
	profile, _ := config.ProfileFor(types.SeasonWinter)

	for _, count := range []int{0, 1, 150} {
		particles, err := Generate(profile, testOptions(types.SeasonWinter), count)
		if err != nil {
			t.Fatalf("Generate(count=%d) error: %v", count, err)
		}
		if len(particles) != count {
			t.Errorf("len(particles) = %d, want %d", len(particles), count)
		}
	}
}

// TestGenerateErrors 测试非法输入的错误分类
func TestGenerateErrors(t *testing.T) {
	profile, _ := config.ProfileFor(types.SeasonWinter)

	tests := []struct {
		name    string
		mutate  func(*Options)
		count   int
		wantErr error
	}{
		{"负数量", func(o *Options) {}, -1, ErrInvalidConfiguration},
		{"零宽度", func(o *Options) { o.SurfaceWidth = 0 }, 10, ErrInvalidSurface},
		{"负高度", func(o *Options) { o.SurfaceHeight = -100 }, 10, ErrInvalidSurface},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(types.SeasonWinter)
			tt.mutate(&opts)
			particles, err := Generate(profile, opts, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
			if particles != nil {
				t.Errorf("particles = %v, want nil on error", particles)
			}
		})
	}
}

// TestGenerateRanges 测试生成属性落在配置约定的区间内
func TestGenerateRanges(t *testing.T) {
	profile, _ := config.ProfileFor(types.SeasonWinter)
	opts := testOptions(types.SeasonWinter)
	opts.SpeedMultiplier = 2.0

	particles, err := Generate(profile, opts, 200)
	if err != nil {
		t.Fatal(err)
	}

	for i, p := range particles {
		// 初始位置：水平在表面内，垂直在可见区上方
		if p.X < 0 || p.X > opts.SurfaceWidth {
			t.Errorf("particle %d: X = %v, want [0, %v]", i, p.X, opts.SurfaceWidth)
		}
		if p.Y > 0 || p.Y < -opts.SurfaceHeight {
			t.Errorf("particle %d: Y = %v, want [-%v, 0]", i, p.Y, opts.SurfaceHeight)
		}
		if p.Size < profile.SizeMin || p.Size > profile.SizeMax {
			t.Errorf("particle %d: Size = %v, want [%v, %v]", i, p.Size, profile.SizeMin, profile.SizeMax)
		}
		// 速度乘数作用在整个基础区间上
		if p.Speed < profile.SpeedMin*2.0 || p.Speed > profile.SpeedMax*2.0 {
			t.Errorf("particle %d: Speed = %v, want [%v, %v]", i, p.Speed, profile.SpeedMin*2, profile.SpeedMax*2)
		}
		if p.Rotation < 0 || p.Rotation >= 2*math.Pi {
			t.Errorf("particle %d: Rotation = %v, want [0, 2π)", i, p.Rotation)
		}
		// 不透明度抖动 ±0.1，生成阶段不裁剪
		if math.Abs(p.Opacity-profile.OpacityBase) > opacityJitter/2 {
			t.Errorf("particle %d: Opacity = %v, want within %v of %v", i, p.Opacity, opacityJitter/2, profile.OpacityBase)
		}
	}
}

// TestGenerateOverrides 测试尺寸/颜色覆盖整体替换季节默认值
func TestGenerateOverrides(t *testing.T) {
	profile, _ := config.ProfileFor(types.SeasonWinter)
	opts := testOptions(types.SeasonWinter)
	size := 42.0
	opts.SizeOverride = &size
	opts.ColorOverride = "#ff0000"

	particles, err := Generate(profile, opts, 20)
	if err != nil {
		t.Fatal(err)
	}

	want := colorx.RGBA{R: 255, G: 0, B: 0, A: 1.0}
	for i, p := range particles {
		if p.Size != 42.0 {
			t.Errorf("particle %d: Size = %v, want 42 (override)", i, p.Size)
		}
		if p.Color != want {
			t.Errorf("particle %d: Color = %+v, want %+v", i, p.Color, want)
		}
	}
}

// TestGenerateColorFallback 测试颜色解析失败时回退到天空蓝
func TestGenerateColorFallback(t *testing.T) {
	profile, _ := config.ProfileFor(types.SeasonWinter)
	opts := testOptions(types.SeasonWinter)
	opts.ColorOverride = "not-a-color"

	particles, err := Generate(profile, opts, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range particles {
		if p.Color != colorx.DefaultSky {
			t.Errorf("particle %d: Color = %+v, want DefaultSky %+v", i, p.Color, colorx.DefaultSky)
		}
	}
}

// TestGenerateSwayFields 测试摆动参数只对启用摆动的季节生效
func TestGenerateSwayFields(t *testing.T) {
	winterProfile, _ := config.ProfileFor(types.SeasonWinter)
	winter, err := Generate(winterProfile, testOptions(types.SeasonWinter), 50)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range winter {
		if p.SwayAmount < swayAmountMin || p.SwayAmount > swayAmountMax {
			t.Errorf("winter particle %d: SwayAmount = %v, want [%v, %v]", i, p.SwayAmount, swayAmountMin, swayAmountMax)
		}
		if p.SwaySpeed < swaySpeedMin || p.SwaySpeed > swaySpeedMax {
			t.Errorf("winter particle %d: SwaySpeed = %v, want [%v, %v]", i, p.SwaySpeed, swaySpeedMin, swaySpeedMax)
		}
		if math.Abs(p.WindX) > windXSpread/2 {
			t.Errorf("winter particle %d: WindX = %v, want [-%v, %v]", i, p.WindX, windXSpread/2, windXSpread/2)
		}
	}

	rainyProfile, _ := config.ProfileFor(types.SeasonRainy)
	rainy, err := Generate(rainyProfile, testOptions(types.SeasonRainy), 50)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range rainy {
		if p.SwayAmount != 0 || p.SwaySpeed != 0 || p.WindX != 0 || p.Turbulence != 0 {
			t.Errorf("rainy particle %d: sway fields not zero: %+v", i, p)
		}
		if p.RotSpeed != 0 {
			t.Errorf("rainy particle %d: RotSpeed = %v, want 0", i, p.RotSpeed)
		}
	}
}

// TestGenerateShapePayloads 测试每个季节挂载正确的形状数据
func TestGenerateShapePayloads(t *testing.T) {
	tests := []struct {
		season types.Season
		check  func(t *testing.T, i int, p *components.Particle)
	}{
		{types.SeasonWinter, func(t *testing.T, i int, p *components.Particle) {
			if p.Flake == nil {
				t.Fatalf("particle %d: Flake = nil, want geometry", i)
			}
			if p.Flake.ArmCount != 6 && p.Flake.ArmCount != 8 {
				t.Errorf("particle %d: ArmCount = %d, want 6 or 8", i, p.Flake.ArmCount)
			}
			if n := len(p.Flake.Branches); n < 2 || n > 3 {
				t.Errorf("particle %d: branch tiers = %d, want 2 or 3", i, n)
			}
			if p.Flake.ArmThickness < 0.7 || p.Flake.ArmThickness > 1.3 {
				t.Errorf("particle %d: ArmThickness = %v, want [0.7, 1.3]", i, p.Flake.ArmThickness)
			}
			for _, b := range p.Flake.Branches {
				if b.Count < 1 || b.Count > 3 {
					t.Errorf("particle %d: branch count = %d, want [1, 3]", i, b.Count)
				}
			}
		}},
		{types.SeasonRainy, func(t *testing.T, i int, p *components.Particle) {
			if p.Streak == nil {
				t.Fatalf("particle %d: Streak = nil, want geometry", i)
			}
			minTrail := p.Size * 15
			if p.Streak.TrailLength < minTrail || p.Streak.TrailLength > minTrail+10 {
				t.Errorf("particle %d: TrailLength = %v, want [%v, %v]", i, p.Streak.TrailLength, minTrail, minTrail+10)
			}
		}},
		{types.SeasonFall, func(t *testing.T, i int, p *components.Particle) {
			if p.Leaf == nil {
				t.Fatalf("particle %d: Leaf = nil, want geometry", i)
			}
			if p.Leaf.LeafType < 0 || p.Leaf.LeafType > 2 {
				t.Errorf("particle %d: LeafType = %d, want [0, 2]", i, p.Leaf.LeafType)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.season.String(), func(t *testing.T) {
			profile, _ := config.ProfileFor(tt.season)
			particles, err := Generate(profile, testOptions(tt.season), 50)
			if err != nil {
				t.Fatal(err)
			}
			for i := range particles {
				p := &particles[i]
				if p.Shape != profile.Shape {
					t.Errorf("particle %d: Shape = %v, want %v", i, p.Shape, profile.Shape)
				}
				tt.check(t, i, p)
			}
		})
	}
}
