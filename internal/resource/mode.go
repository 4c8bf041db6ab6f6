package resource

import (
	"fmt"
	"strings"
)

// Mode selects how resource paths are resolved.
type Mode int

const (
	Packaged Mode = iota
	Development
)

func (m Mode) String() string {
	switch m {
	case Packaged:
		return "packaged"
	case Development:
		return "development"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names used in config files and on the command line.
// An empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMode, nil
	case "packaged", "production":
		return Packaged, nil
	case "development", "dev":
		return Development, nil
	}
	return 0, fmt.Errorf("unknown resource mode %q", s)
}
