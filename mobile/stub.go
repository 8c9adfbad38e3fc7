//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 壁纸绑定的真正实现在 mobile.go 和 embed.go 中，只在
// -tags mobile 下编译；普通构建走这个空壳，保证包始终可引用。
package mobile

// Dummy 是一个空导出函数，桌面构建下让包保持非空
func Dummy() {}
