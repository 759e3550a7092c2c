package service

import (
	"os/exec"
	"runtime"
)

// Launcher 打开一个本地文件的能力
// 结算与台账逻辑只依赖该接口，测试中以假实现替换
type Launcher interface {
	Open(path string) error
}

// OSPlayer 用系统默认处理程序（或配置指定的播放器）打开文件
type OSPlayer struct {
	// Command 播放器命令，留空时按平台选择默认打开方式
	Command string
}

func NewOSPlayer(command string) *OSPlayer {
	return &OSPlayer{Command: command}
}

func (p *OSPlayer) Open(path string) error {
	if p.Command != "" {
		return exec.Command(p.Command, path).Start()
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/C", "start", "", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
