//go:build !darwin && !windows

package resource

import "path/filepath"

const executableSuffix = ""

// appDirName is the per-app directory that deb, rpm and AppImage installs
// place under <prefix>/lib. It matches outputfilename in wails.json.
const appDirName = "enron-classifier"

// Packages install the binary into <prefix>/usr/bin (or /usr/local/bin) and
// its resources into the matching lib/<app>. Anything else, such as a
// tarball or a build directory, keeps resources beside the binary.
func resourceDirFor(exeDir string) string {
	exeDir = filepath.Clean(exeDir)
	if filepath.Base(exeDir) != "bin" {
		return exeDir
	}
	prefix := filepath.Dir(exeDir)
	if filepath.Base(prefix) == "usr" || prefix == "/usr/local" {
		return filepath.Join(prefix, "lib", appDirName)
	}
	return exeDir
}
