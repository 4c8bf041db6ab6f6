//go:build dev

package resource

// DefaultMode is Development for `wails dev` builds, which set the dev tag.
const DefaultMode = Development
