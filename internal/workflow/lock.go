package workflow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrLocked reports another live run holding the directory lock.
var ErrLocked = errors.New("photos directory is locked by another run")

// LockDir is where lock files are created. Tests point it elsewhere.
var LockDir = os.TempDir

// LockPath returns the lock file used for dir. The name is derived from the
// absolute directory path, so every spelling of the same directory shares one
// lock.
func LockPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.Clean(abs)))
	return filepath.Join(LockDir(), "iosrename-"+id.String()+".lock"), nil
}

type dirLock struct {
	path string
	lock *flock.Flock
}

func acquireLock(dir string) (*dirLock, error) {
	path, err := LockPath(dir)
	if err != nil {
		return nil, err
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return &dirLock{path: path, lock: lock}, nil
}

func (l *dirLock) release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
