package reconcile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"crate/internal/services"
)

// ListFolders enumerates the directories directly under base, sorted by
// name. Hidden entries and plain files are skipped. An absent base
// directory is a fatal input error.
func ListFolders(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "reconcile", "list folders", fmt.Sprintf("base directory %s does not exist", base), nil)
		}
		return nil, fmt.Errorf("read directory %s: %w", base, err)
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		folders = append(folders, name)
	}
	sort.Strings(folders)
	return folders, nil
}
