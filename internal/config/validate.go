package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Database) == "" {
		return errors.New("paths.database must be set")
	}
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ArtistsDir) == "" {
		return errors.New("paths.artists_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ReleasesDir) == "" {
		return errors.New("paths.releases_dir must be set")
	}
	if c.ArtistsPath() == c.ReleasesPath() {
		return errors.New("paths.artists_dir and paths.releases_dir must not resolve to the same directory")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.Threshold < 0 || c.Matching.Threshold > 1 {
		return errors.New("matching.threshold must be between 0 and 1")
	}
	if c.Matching.MaxCandidates < 1 {
		return errors.New("matching.max_candidates must be >= 1")
	}
	return nil
}
