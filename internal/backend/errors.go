package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawnFailed is matched when the OS refuses to start the backend.
	ErrSpawnFailed = errors.New("backend spawn failed")
	// ErrAlreadyLaunched is returned by every Launch after the first success.
	ErrAlreadyLaunched = errors.New("backend already launched")
)

// SpawnError carries the resolved path that could not be started.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func (e *SpawnError) Is(target error) bool { return target == ErrSpawnFailed }
