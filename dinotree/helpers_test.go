package dinotree

import (
	"testing"

	"github.com/forestrie/go-dinotree/axgeom"
	"github.com/forestrie/go-dinotree/dinotreetesting"
)

type testBot = dinotreetesting.Bot[float64]

func newTestContext(t *testing.T, seed uint64) dinotreetesting.TestContext {
	return dinotreetesting.NewTestContext(t, dinotreetesting.TestConfig{
		Seed:            seed,
		TestLabelPrefix: "dinotree",
	})
}

func traceOf[N axgeom.Num](bots []dinotreetesting.Bot[N]) []traceBot[N] {
	trace := make([]traceBot[N], len(bots))
	for i := range bots {
		trace[i] = traceBot[N]{rect: bots[i].Rect, index: uint32(i)}
	}
	return trace
}

func buildTestTree(t *testing.T, bots []testBot, opts ...Option) *Tree[float64, testBot, struct{}] {
	tree, err := Build(bots, dinotreetesting.BotRect[float64], struct{}{}, opts...)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return tree
}
