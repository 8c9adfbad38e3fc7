package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建一个隔离的 gdata manager
func newTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "test_seasonfall",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	// 验证默认效果：冬季雪花
	if settings.Effect.Season != "winter" {
		t.Errorf("Effect.Season: got %q, want winter", settings.Effect.Season)
	}
	if settings.Effect.Quantity != 150 {
		t.Errorf("Effect.Quantity: got %d, want 150", settings.Effect.Quantity)
	}
	if settings.Effect.Speed != 1.0 {
		t.Errorf("Effect.Speed: got %v, want 1.0", settings.Effect.Speed)
	}

	// 验证窗口偏好默认值
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.ShowHUD {
		t.Error("ShowHUD: got false, want true")
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	// 无存档时使用默认设置
	if sm.GetSettings().Effect.Season != "winter" {
		t.Errorf("fresh settings season = %q, want winter", sm.GetSettings().Effect.Season)
	}
}

// TestNewSettingsManagerDegraded 测试 nil gdata manager 的降级模式
func TestNewSettingsManagerDegraded(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	// 降级模式：内存设置可用，Save 静默成功
	sm.SetFullscreen(true)
	if !sm.GetSettings().Fullscreen {
		t.Error("SetFullscreen(true) not reflected in memory")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: got %v, want nil", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode: got %v, want nil", err)
	}
}

// TestSettingsSaveLoadRoundTrip 测试设置的保存/加载往返
func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatal(err)
	}

	effect := sm.GetSettings().Effect
	effect.Season = "fall"
	effect.Quantity = 60
	effect.Angle = 12
	sm.SetEffect(effect)
	sm.SetFullscreen(true)
	sm.SetShowHUD(false)

	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新实例从存储加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatal(err)
	}
	loaded := sm2.GetSettings()
	if loaded.Effect.Season != "fall" {
		t.Errorf("loaded Season = %q, want fall", loaded.Effect.Season)
	}
	if loaded.Effect.Quantity != 60 {
		t.Errorf("loaded Quantity = %d, want 60", loaded.Effect.Quantity)
	}
	if loaded.Effect.Angle != 12 {
		t.Errorf("loaded Angle = %v, want 12", loaded.Effect.Angle)
	}
	if !loaded.Fullscreen {
		t.Error("loaded Fullscreen = false, want true")
	}
	if loaded.ShowHUD {
		t.Error("loaded ShowHUD = true, want false")
	}
}

// TestSettingsLoadInvalid 测试非法存档回退到默认设置
func TestSettingsLoadInvalid(t *testing.T) {
	gdataManager := newTestGdataManager(t)

	// 手写一个数值不合法的存档（负粒子数量）
	corrupt := []byte("effect:\n  season: winter\n  quantity: -10\n  speed: 1\n")
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, corrupt); err != nil {
		t.Fatal(err)
	}

	sm := &SettingsManager{gdataManager: gdataManager, settings: DefaultSettings()}
	if err := sm.Load(); err == nil {
		t.Error("Load() with corrupt save: got nil error, want validation error")
	}

	// 回退到默认设置而不是半加载状态
	if sm.GetSettings().Effect.Quantity != 150 {
		t.Errorf("Quantity after corrupt load = %d, want default 150", sm.GetSettings().Effect.Quantity)
	}
}
