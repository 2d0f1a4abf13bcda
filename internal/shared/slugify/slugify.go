// Package slugify builds article slugs from titles.
package slugify

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

const (
	// SuffixLength is the number of base-36 characters appended to every slug.
	SuffixLength = 6

	// suffixSpace is 36^6, the number of distinct suffixes.
	suffixSpace = 36 * 36 * 36 * 36 * 36 * 36
)

// Make returns the lowercase, transliterated form of title followed by a random
// base-36 suffix, e.g. "Hello World" -> "hello-world-k3x9a0".
// The suffix reduces collisions but does not rule them out; the store enforces uniqueness.
func Make(title string) string {
	return withSuffix(slug.Make(title), rand.IntN(suffixSpace))
}

func withSuffix(base string, n int) string {
	suffix := strconv.FormatInt(int64(n), 36)
	if pad := SuffixLength - len(suffix); pad > 0 {
		suffix = strings.Repeat("0", pad) + suffix
	}
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
