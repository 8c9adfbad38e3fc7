package systems

import (
	"fmt"

	"github.com/gonewx/seasonfall/pkg/components"
	"github.com/gonewx/seasonfall/pkg/config"
)

// Renderer 是模拟核心对外的唯一绘制契约。
// 它负责把抽象原语（move/line/curve/arc + 描边或填充 + 已解析的 RGBA）
// 变成实际像素；核心不依赖任何具体渲染 API。
// 每帧每个粒子收到一个描述符，顺序与粒子群一致。
type Renderer interface {
	Draw(desc *components.ShapeDescriptor)
}

// Simulation owns the particle collection and a monotonically increasing
// frame counter. Per tick, in order: integrate every particle, describe every
// particle, hand the descriptors to the renderer, then increment the counter.
//
// 单线程协作式驱动：宿主每帧回调一次 Tick，一次 Tick 内完成整步，
// 不存在可观察的半帧状态。重新配置（Reset）不与进行中的 Tick 互斥——
// 调用方必须先停止驱动再重配，这是文档化的前置条件，不是内部锁。
type Simulation struct {
	profile   config.SeasonProfile
	opts      Options
	particles []components.Particle
	frame     int
	renderer  Renderer
	active    bool
}

// NewSimulation 创建一个尚未填充粒子的模拟实例。
// renderer 可以为 nil（仅推进状态、不产出绘制指令，测试时常用）。
func NewSimulation(renderer Renderer) *Simulation {
	return &Simulation{renderer: renderer}
}

// Reset rebuilds the particle population from the given profile and options
// and resets the frame counter to 0. Used on construction, on option update
// and on surface resize; the previous collection is discarded wholesale.
//
// 返回：
//   - error: 选项校验失败（ErrInvalidConfiguration / ErrInvalidSurface）
//     时返回错误，此时原有粒子群保持不变
func (s *Simulation) Reset(profile config.SeasonProfile, opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("simulation reset: %w", err)
	}

	particles, err := Generate(profile, opts, opts.Quantity)
	if err != nil {
		return fmt.Errorf("simulation reset: %w", err)
	}

	s.profile = profile
	s.opts = opts
	s.particles = particles
	s.frame = 0
	s.active = true
	return nil
}

// Tick 推进一帧：先推进所有粒子，再为每个粒子派生描述符并交给渲染器，
// 最后递增帧计数。粒子数量为 0 时是合法的空转。
//
// 返回：
//   - error: 几何派生遇到内部不一致时返回（致命，不可恢复）
func (s *Simulation) Tick() error {
	if !s.active {
		return nil
	}

	for i := range s.particles {
		Advance(&s.particles[i], s.frame, s.opts.SurfaceWidth, s.opts.SurfaceHeight)
	}

	if s.renderer != nil {
		for i := range s.particles {
			desc, err := Describe(&s.particles[i])
			if err != nil {
				return fmt.Errorf("simulation tick at frame %d: %w", s.frame, err)
			}
			s.renderer.Draw(desc)
		}
	}

	s.frame++
	return nil
}

// IsActive 报告模拟是否已经成功 Reset 过并持有粒子群
func (s *Simulation) IsActive() bool {
	return s.active
}

// Stop 停止模拟；之后的 Tick 是空操作，直到下一次 Reset
func (s *Simulation) Stop() {
	s.active = false
}

// Frame 返回当前帧计数（自上次 Reset 起）
func (s *Simulation) Frame() int {
	return s.frame
}

// Options 返回当前生效的模拟参数
func (s *Simulation) Options() Options {
	return s.opts
}

// Particles 返回粒子群切片。
// 粒子归模拟独占所有；调用方只能读取，不得修改。
func (s *Simulation) Particles() []components.Particle {
	return s.particles
}
