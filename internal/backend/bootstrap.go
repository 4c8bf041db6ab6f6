// Package backend launches the bundled Flask backend once at startup and
// then forgets about it.
package backend

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"EnronClassifier/internal/resource"

	"github.com/sirupsen/logrus"
)

// DefaultResource is the logical name of the bundled backend executable.
const DefaultResource = "bin/flask-backend"

// State is the launch state of a Bootstrapper.
type State int

const (
	NotStarted State = iota
	Spawned
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Spawned:
		return "spawned"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Bootstrapper resolves and starts the backend exactly once. It keeps no
// handle to the child after a successful start.
type Bootstrapper struct {
	resolver resource.Resolver
	resource string
	logger   *logrus.Logger

	release func(*os.Process) error

	mu    sync.Mutex
	state State
}

type Option func(*Bootstrapper)

// WithResource overrides the logical resource name.
func WithResource(name string) Option {
	return func(b *Bootstrapper) {
		if name != "" {
			b.resource = name
		}
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(b *Bootstrapper) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func New(resolver resource.Resolver, opts ...Option) *Bootstrapper {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	b := &Bootstrapper{
		resolver: resolver,
		resource: DefaultResource,
		logger:   discard,
		release:  (*os.Process).Release,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State reports whether the backend has been spawned.
func (b *Bootstrapper) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Launch resolves the backend path and starts it with stdout and stderr
// discarded. The returned error wraps resource.ErrUnresolved or
// ErrSpawnFailed; callers are expected to treat either as fatal.
func (b *Bootstrapper) Launch() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == Spawned {
		return ErrAlreadyLaunched
	}

	path, err := b.resolver.Resolve(b.resource)
	if err != nil {
		return fmt.Errorf("resolve backend: %w", err)
	}
	b.logger.WithField("path", path).Debug("Resolved backend executable")

	pid, err := b.spawnDetached(path)
	if err != nil {
		return err
	}

	b.state = Spawned
	b.logger.WithFields(logrus.Fields{
		"path": path,
		"pid":  pid,
	}).Info("Backend launched")
	return nil
}

// spawnDetached starts path and releases the process handle. The pid is
// returned for logging only.
func (b *Bootstrapper) spawnDetached(path string) (int, error) {
	cmd, closeSink, err := newCommand(path)
	if err != nil {
		return 0, &SpawnError{Path: path, Err: err}
	}
	defer closeSink()

	if err := cmd.Start(); err != nil {
		return 0, &SpawnError{Path: path, Err: err}
	}

	pid := cmd.Process.Pid
	// Best effort: the child keeps running whether or not the handle is freed.
	if err := b.release(cmd.Process); err != nil {
		b.logger.WithError(err).WithField("pid", pid).Debug("Failed to release backend process handle")
	}
	return pid, nil
}

// newCommand builds the backend command with both output streams wired to
// the null device. closeSink must be called once Start has returned.
func newCommand(path string) (*exec.Cmd, func(), error) {
	sink, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", os.DevNull, err)
	}

	cmd := exec.Command(path)
	cmd.Stdout = sink
	cmd.Stderr = sink
	setDetachAttrs(cmd)

	return cmd, func() { sink.Close() }, nil
}
