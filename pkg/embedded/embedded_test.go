package embedded

import (
	"embed"
	"testing"
)

// 真正的资源嵌入在项目根目录的 embed.go 中；
// 这里用空的 embed.FS 测试接口本身的行为。

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	var emptyFS embed.FS
	Init(emptyFS)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

// TestNotInitialized 测试未初始化时的调用全部报错
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("assets/seasons.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	}
	if _, err := ReadFile("assets/seasons.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}
	if Exists("assets/seasons.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestInvalidPrefix 测试 assets/ 之外的路径前缀被拒绝
func TestInvalidPrefix(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS)
	defer func() { initialized = false }()

	if _, err := Open("invalid/path/seasons.yaml"); err == nil {
		t.Error("Expected error for invalid path prefix in Open()")
	}
	if _, err := ReadFile("invalid/path/seasons.yaml"); err == nil {
		t.Error("Expected error for invalid path prefix in ReadFile()")
	}
}

// TestPathNormalization 测试 "./" 前缀被正确移除
func TestPathNormalization(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS)
	defer func() { initialized = false }()

	// 空 FS 中文件不存在，但错误必须是"文件不存在"而不是前缀错误
	_, err := Open("./assets/seasons.yaml")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if err.Error() == "unknown resource path prefix: ./assets/seasons.yaml (must start with 'assets/')" {
		t.Error("Path normalization should remove './' prefix")
	}
}

// TestExistsMissingFile 测试有效前缀但文件不存在
func TestExistsMissingFile(t *testing.T) {
	var emptyFS embed.FS
	Init(emptyFS)
	defer func() { initialized = false }()

	if Exists("assets/nonexistent.yaml") {
		t.Error("Expected Exists() to return false for non-existent file")
	}
}
