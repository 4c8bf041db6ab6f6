//go:build windows

package resource

const executableSuffix = ".exe"

func resourceDirFor(exeDir string) string {
	return exeDir
}
