//go:build windows

package wincmd

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps the child from opening a console window of its own.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
