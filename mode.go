package ffloat

// Mode is the validation policy the package was compiled with.
type Mode int

const (
	// ModeStrict validates on every construction and operation and panics
	// with an *InvariantError on NaN or Inf. This is the default.
	ModeStrict Mode = iota

	// ModeFast skips validation. Selected with the ffloat_fast build tag.
	ModeFast
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeFast:
		return "fast"
	default:
		return "unknown"
	}
}

// CurrentMode reports the mode selected at build time.
func CurrentMode() Mode {
	if checked {
		return ModeStrict
	}
	return ModeFast
}
