package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"crate/internal/logging"
	"crate/internal/services"
)

// Migrator applies a plan's renames under one base directory.
type Migrator struct {
	base   string
	dryRun bool
	logger *slog.Logger
}

// New builds a Migrator rooted at base. In dry-run mode Apply reports
// what would happen without touching the filesystem.
func New(base string, dryRun bool, logger *slog.Logger) *Migrator {
	return &Migrator{
		base:   base,
		dryRun: dryRun,
		logger: logging.NewComponentLogger(logger, "migrate"),
	}
}

// Result summarizes one Apply pass.
type Result struct {
	Renamed  int
	Skipped  int
	Failed   int
	Failures []error
}

// Apply executes the plan's pending renames. Items that are already
// correct, missing, or conflicted are skipped. A failed rename is
// recorded and the batch continues with the next item.
func (m *Migrator) Apply(ctx context.Context, plan *Plan) Result {
	var result Result
	for _, item := range plan.Items {
		if err := ctx.Err(); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, err)
			return result
		}

		log := logging.WithContext(services.WithEntityID(ctx, item.EntityID), m.logger)

		switch item.Status {
		case StatusNeedsMigration:
		case StatusConflict:
			log.Warn("rename blocked by existing target",
				logging.String("current", item.Current),
				logging.String("target", item.Target))
			result.Skipped++
			continue
		default:
			result.Skipped++
			continue
		}

		if m.dryRun {
			log.Info("would rename folder",
				logging.String("current", item.Current),
				logging.String("target", item.Target))
			result.Renamed++
			continue
		}

		if err := m.rename(item); err != nil {
			log.Error("rename failed", logging.Error(err))
			result.Failed++
			result.Failures = append(result.Failures, err)
			continue
		}

		log.Info("renamed folder",
			logging.String("current", item.Current),
			logging.String("target", item.Target))
		result.Renamed++
	}
	return result
}

func (m *Migrator) rename(item Item) error {
	source := filepath.Join(m.base, item.Current)
	target := filepath.Join(m.base, item.Target)

	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrTransient, "migrate", "rename", fmt.Sprintf("source folder %s disappeared", item.Current), nil)
		}
		return services.Wrap(services.ErrTransient, "migrate", "rename", "stat source folder", err)
	}

	// Re-check on disk in case something appeared since planning. A
	// rename must never overwrite an existing directory.
	if _, err := os.Stat(target); err == nil {
		return services.Wrap(services.ErrConflict, "migrate", "rename", fmt.Sprintf("target folder %s already exists", item.Target), nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return services.Wrap(services.ErrTransient, "migrate", "rename", "stat target folder", err)
	}

	if err := os.Rename(source, target); err != nil {
		return services.Wrap(services.ErrTransient, "migrate", "rename", fmt.Sprintf("rename %s to %s", item.Current, item.Target), err)
	}
	return nil
}
