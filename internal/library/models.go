package library

// Artist is a catalog row describing one artist entity.
type Artist struct {
	ID        int64
	Name      string
	DiscogsID string
}

// Release is a catalog row describing one release entity.
type Release struct {
	ID        int64
	Title     string
	DiscogsID string
}

// Health summarizes catalog connectivity for the health command.
type Health struct {
	Path     string
	Artists  int64
	Releases int64
}
