package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Strict reports whether runtime invariant checks should be enabled.
func (m Mode) Strict() bool {
	return m == ModeDevelopment
}
