package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"crate/internal/config"
	"crate/internal/library"
	"crate/internal/logging"
	"crate/internal/migrate"
	"crate/internal/reconcile"
	"crate/internal/services"
)

type commandContext struct {
	configFlag *string
	runID      string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		runID:      uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureLogDir(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// runContext tags the command context with the run correlation ID and
// the phase name.
func (c *commandContext) runContext(cmd *cobra.Command, phase string) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return services.WithPhase(services.WithRunID(ctx, c.runID), phase)
}

func (c *commandContext) openStore() (*library.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return library.Open(cfg.Paths.Database)
}

// entitySet bundles one entity kind with its base directory and the
// matching inputs derived from the catalog rows.
type entitySet struct {
	kind     string
	base     string
	entities []reconcile.Entity
	requests []migrate.Request
	invalid  []error
}

const (
	kindArtist  = "artist"
	kindRelease = "release"
	kindAll     = "all"
)

func validKind(kind string) error {
	switch kind {
	case kindArtist, kindRelease, kindAll:
		return nil
	default:
		return fmt.Errorf("unknown kind %q (expected artist, release, or all)", kind)
	}
}

// gatherSets loads the requested entity kinds from the catalog. Rows
// that fail validation are carried alongside so commands can surface
// them without aborting the run.
func (c *commandContext) gatherSets(ctx context.Context, store *library.Store, kind string) ([]entitySet, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	var sets []entitySet
	if kind == kindArtist || kind == kindAll {
		artists, err := store.Artists(ctx)
		if err != nil {
			return nil, err
		}
		set := entitySet{kind: kindArtist, base: cfg.ArtistsPath()}
		for _, artist := range artists {
			if err := library.ValidateArtist(artist); err != nil {
				set.invalid = append(set.invalid, err)
				continue
			}
			set.entities = append(set.entities, reconcile.ArtistEntity(artist))
			set.requests = append(set.requests, migrate.ArtistRequest(artist))
		}
		sets = append(sets, set)
	}
	if kind == kindRelease || kind == kindAll {
		releases, err := store.Releases(ctx)
		if err != nil {
			return nil, err
		}
		set := entitySet{kind: kindRelease, base: cfg.ReleasesPath()}
		for _, release := range releases {
			if err := library.ValidateRelease(release); err != nil {
				set.invalid = append(set.invalid, err)
				continue
			}
			set.entities = append(set.entities, reconcile.ReleaseEntity(release))
			set.requests = append(set.requests, migrate.ReleaseRequest(release))
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
