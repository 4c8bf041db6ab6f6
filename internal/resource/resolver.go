// Package resource maps logical resource names such as "bin/flask-backend"
// onto concrete paths for the current deployment mode.
package resource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnresolved is matched by every resolution failure.
var ErrUnresolved = errors.New("resource path unresolved")

// UnresolvedError describes why a logical name could not be resolved.
type UnresolvedError struct {
	Name string
	Base string
	Err  error
}

func (e *UnresolvedError) Error() string {
	if e.Base == "" {
		return fmt.Sprintf("resolve %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("resolve %q under %s: %v", e.Name, e.Base, e.Err)
}

func (e *UnresolvedError) Unwrap() error { return e.Err }

func (e *UnresolvedError) Is(target error) bool { return target == ErrUnresolved }

// Resolver turns a logical resource name into an existing file path.
type Resolver interface {
	Resolve(name string) (string, error)
}

// PackagedResolver resolves against the installed application's resource
// directory.
type PackagedResolver struct {
	BaseDir string
}

// NewPackaged locates the resource directory relative to the running
// executable.
func NewPackaged() (*PackagedResolver, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, &UnresolvedError{Err: fmt.Errorf("locate executable: %w", err)}
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return &PackagedResolver{BaseDir: resourceDirFor(filepath.Dir(exe))}, nil
}

func (p *PackagedResolver) Resolve(name string) (string, error) {
	return resolveUnder(p.BaseDir, name)
}

// DevResolver resolves against the project's resources directory.
type DevResolver struct {
	Root string
}

// NewDevelopment uses <cwd>/resources as the root.
func NewDevelopment() (*DevResolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, &UnresolvedError{Err: fmt.Errorf("get working directory: %w", err)}
	}
	return &DevResolver{Root: filepath.Join(wd, "resources")}, nil
}

func (d *DevResolver) Resolve(name string) (string, error) {
	return resolveUnder(d.Root, name)
}

// Select picks the strategy for mode. A non-empty override replaces the
// mode's default base directory.
func Select(mode Mode, override string) (Resolver, error) {
	switch mode {
	case Packaged:
		if override != "" {
			return &PackagedResolver{BaseDir: override}, nil
		}
		return NewPackaged()
	case Development:
		if override != "" {
			return &DevResolver{Root: override}, nil
		}
		return NewDevelopment()
	default:
		return nil, &UnresolvedError{Err: fmt.Errorf("unknown mode %d", mode)}
	}
}

func resolveUnder(base, name string) (string, error) {
	fail := func(err error) (string, error) {
		return "", &UnresolvedError{Name: name, Base: base, Err: err}
	}

	if base == "" {
		return fail(errors.New("empty base directory"))
	}
	if name == "" {
		return fail(errors.New("empty resource name"))
	}
	if strings.HasPrefix(name, "/") || filepath.IsAbs(name) {
		return fail(errors.New("resource name must be relative"))
	}

	rel := filepath.Join(strings.Split(name, "/")...)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fail(errors.New("resource name escapes base directory"))
	}

	path := filepath.Join(base, rel+executableSuffix)
	info, err := os.Stat(path)
	if err != nil {
		return fail(err)
	}
	if info.IsDir() {
		return fail(fmt.Errorf("%s is a directory", path))
	}
	return path, nil
}
