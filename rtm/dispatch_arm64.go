//go:build arm64

package rtm

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available as part of the
	// ARMv8-A base architecture. We still consult the cpu package for
	// consistency with the amd64 path.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
	} else {
		currentLevel = LevelScalar
	}
}
