package config

const (
	defaultDatabase      = "~/.local/share/crate/collection.db"
	defaultLibraryDir    = "~/.local/share/crate/library"
	defaultArtistsDir    = "artist"
	defaultReleasesDir   = "album"
	defaultLogDir        = "~/.local/share/crate/logs"
	defaultThreshold     = 0.8
	defaultMaxCandidates = 3
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Database:    defaultDatabase,
			LibraryDir:  defaultLibraryDir,
			ArtistsDir:  defaultArtistsDir,
			ReleasesDir: defaultReleasesDir,
			LogDir:      defaultLogDir,
		},
		Matching: Matching{
			Threshold:     defaultThreshold,
			MaxCandidates: defaultMaxCandidates,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
