package migrate

import "fmt"

// Status classifies one entity's folder state.
type Status int

const (
	// StatusCorrect means the canonical folder already exists.
	StatusCorrect Status = iota
	// StatusMissing means no folder matches the entity at all.
	StatusMissing
	// StatusConflict means a legacy folder exists but the canonical
	// name is already taken by something else. Never auto-resolved.
	StatusConflict
	// StatusNeedsMigration means a legacy folder exists and can be
	// renamed to the canonical name.
	StatusNeedsMigration
)

// String returns the operator-facing status label.
func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusMissing:
		return "missing"
	case StatusConflict:
		return "conflict"
	case StatusNeedsMigration:
		return "needs_migration"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
