//go:build !dev

package resource

const DefaultMode = Packaged
