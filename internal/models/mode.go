package models

// Mode is the per-user plan flag. It gates UI affordances only; no other
// entity depends on it.
type Mode string

const (
	ModeFree    Mode = "free"
	ModePremium Mode = "premium"
)

// ParseMode maps a stored string to a Mode, defaulting to ModeFree for
// anything unrecognized.
func ParseMode(s string) Mode {
	if Mode(s) == ModePremium {
		return ModePremium
	}
	return ModeFree
}
