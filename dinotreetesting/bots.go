package dinotreetesting

import (
	"math/rand/v2"

	"github.com/forestrie/go-dinotree/axgeom"
)

// Bot is the payload used by tests: an identity, its geometry, and a counter
// tests can bump through mutable visitors.
type Bot[N axgeom.Num] struct {
	ID   int
	Rect axgeom.Rect[N]
	Hits int
}

// BotRect is the aabb function for Bot.
func BotRect[N axgeom.Num](b *Bot[N]) axgeom.Rect[N] {
	return b.Rect
}

// UniformSquares scatters n squares of side size with their lower corner
// uniform over [0, extent) on both axes.
func UniformSquares[N axgeom.Num](rng *rand.Rand, n int, extent, size float64) []Bot[N] {
	bots := make([]Bot[N], n)
	for i := range bots {
		x := rng.Float64() * extent
		y := rng.Float64() * extent
		bots[i] = Bot[N]{ID: i, Rect: axgeom.NewRect(N(x), N(x+size), N(y), N(y+size))}
	}
	return bots
}

// RandomRects scatters n rectangles with lower corners uniform over
// [0, extent) and sides uniform over [0, maxSize].
func RandomRects[N axgeom.Num](rng *rand.Rand, n int, extent, maxSize float64) []Bot[N] {
	bots := make([]Bot[N], n)
	for i := range bots {
		x := rng.Float64() * extent
		y := rng.Float64() * extent
		w := rng.Float64() * maxSize
		h := rng.Float64() * maxSize
		bots[i] = Bot[N]{ID: i, Rect: axgeom.NewRect(N(x), N(x+w), N(y), N(y+h))}
	}
	return bots
}

// IdenticalPoints returns n zero size boxes all at (at, at).
func IdenticalPoints[N axgeom.Num](n int, at N) []Bot[N] {
	bots := make([]Bot[N], n)
	for i := range bots {
		bots[i] = Bot[N]{ID: i, Rect: axgeom.NewRect(at, at, at, at)}
	}
	return bots
}

// Clone copies bots so a test can compare a build against its input.
func Clone[N axgeom.Num](bots []Bot[N]) []Bot[N] {
	return append(bots[:0:0], bots...)
}
