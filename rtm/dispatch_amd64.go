//go:build amd64

package rtm

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		return
	}

	// SSE2 is part of the x86-64 baseline, so it is always available.
	// SSE4.1 adds the blend/round instructions; FMA3 adds fused
	// multiply-add. Report the highest tier the CPU supports.
	switch {
	case cpu.X86.HasFMA:
		currentLevel = LevelFMA
	case cpu.X86.HasSSE41:
		currentLevel = LevelSSE4
	default:
		currentLevel = LevelSSE2
	}
}
