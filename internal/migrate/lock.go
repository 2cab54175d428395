package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"crate/internal/services"
)

const lockFileName = ".crate-migrate.lock"

// AcquireLock takes the migration lock for a library base directory so
// two migrate runs never rename inside the same tree concurrently. The
// returned release function must be called when the run finishes.
func AcquireLock(base string) (func() error, error) {
	lock := flock.New(filepath.Join(base, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire migration lock: %w", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConflict, "migrate", "lock", fmt.Sprintf("another migration is already running in %s", base), nil)
	}
	return lock.Unlock, nil
}
