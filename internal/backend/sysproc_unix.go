//go:build !windows

package backend

import (
	"os/exec"
	"syscall"
)

// setDetachAttrs moves the backend into its own process group so signals
// aimed at the shell's group (Ctrl-C in a dev terminal) do not reach it.
func setDetachAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
