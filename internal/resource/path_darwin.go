//go:build darwin

package resource

import "path/filepath"

const executableSuffix = ""

// App bundles keep resources in Contents/Resources next to Contents/MacOS.
func resourceDirFor(exeDir string) string {
	return filepath.Join(exeDir, "..", "Resources")
}
