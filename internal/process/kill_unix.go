//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Isolate starts cmd in its own process group so that KillGroup also reaches
// helpers spawned by the tool (Ghostscript may fork).
func Isolate(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillGroup sends SIGKILL to the process group led by pid (negative PID).
func KillGroup(pid int) error {
	return syscall.Kill(-pid, syscall.SIGKILL)
}
