package rtm

import (
	"os"
	"strconv"
)

// Level identifies the hardware capability tier selected for this process.
// Exactly one level is active per build/run; every level must produce
// identical bits for identical inputs.
type Level int

const (
	// LevelScalar indicates no vector acceleration, pure Go arithmetic.
	LevelScalar Level = iota

	// LevelSSE2 indicates baseline 128-bit vector instructions (x86-64).
	LevelSSE2

	// LevelSSE4 indicates 128-bit vectors with the blend/round extensions.
	LevelSSE4

	// LevelFMA indicates 128-bit vectors with fused multiply-add.
	LevelFMA

	// LevelNEON indicates ARM-family 128-bit vector instructions.
	LevelNEON
)

// String returns a human-readable name for the capability level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelSSE4:
		return "sse4"
	case LevelFMA:
		return "fma"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected capability level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// CurrentLevel returns the capability level selected for this process.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level,
// e.g. "sse4", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the RTM_NO_SIMD environment variable is set.
// When set, the scalar level is reported regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("RTM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
