//go:build !windows

package wincmd

import "os/exec"

// Console window suppression only applies on Windows.
func hideWindow(cmd *exec.Cmd) {}
