package benchmark

import (
	"math/rand"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var rander *rand.Rand

func init() {
	rander = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// fillRandom fills buf with random alphanumeric content, matching the
// payloads the original harness uploads.
func fillRandom(buf []byte) {
	for i := range buf {
		buf[i] = charset[rander.Intn(len(charset))]
	}
}

// randomSize returns a size in [min, max).
func randomSize(min, max int) int {
	if max <= min {
		return min
	}
	return min + rander.Intn(max-min)
}
