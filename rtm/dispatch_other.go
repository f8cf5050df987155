//go:build !amd64 && !arm64

package rtm

func init() {
	// Other architectures fall back to scalar arithmetic.
	currentLevel = LevelScalar
}
