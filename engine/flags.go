package engine

import "strings"

// UpdateFlags is the bitmask the game shell passes to per-frame updates
type UpdateFlags uint32

const (
	// FlagPaused holds the movement freeze window; rumble keeps running so the motor winds down
	FlagPaused UpdateFlags = 1 << iota
	// FlagEditor marks an editor frame with no game running: housekeeping only, no polling
	FlagEditor
)

// Has reports whether every bit of f is set
func (u UpdateFlags) Has(f UpdateFlags) bool {
	return u&f == f
}

func (u UpdateFlags) String() string {
	if u == 0 {
		return "none"
	}
	var parts []string
	if u.Has(FlagPaused) {
		parts = append(parts, "paused")
	}
	if u.Has(FlagEditor) {
		parts = append(parts, "editor")
	}
	if rest := u &^ (FlagPaused | FlagEditor); rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}
