package dinotree

import (
	"fmt"
	"iter"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-dinotree/axgeom"
	"github.com/google/uuid"
)

// Tree is a built dinotree. Bots are stored in tree order: node by node in
// preorder, each node's bots contiguous and sorted by the left edge on the
// axis after the node's own.
//
// A tree is consumed by Restore, IntoOriginal and MapMisc. After that only
// the accessors that do not touch the bots remain usable.
type Tree[N axgeom.Num, T any, M any] struct {
	packed   *packedTree[N, T, M]
	axis     axgeom.Axis
	mover    Mover
	id       uuid.UUID
	stats    Stats
	consumed bool
	log      logger.Logger
}

// Build creates a tree over copies of bots, with aabb giving the geometry of
// each. Every node gets misc as its initial per node value. bots is not
// modified; use Restore or ApplyInto to move payload changes back.
func Build[N axgeom.Num, T any, M any](bots []T, aabb func(*T) axgeom.Rect[N], misc M, opts ...Option) (*Tree[N, T, M], error) {
	if err := CheckNumBots(len(bots)); err != nil {
		return nil, err
	}
	o := newBuildOptions(opts...)
	height, err := o.resolveHeight(len(bots))
	if err != nil {
		return nil, err
	}

	trace := make([]traceBot[N], len(bots))
	for i := range bots {
		trace[i] = traceBot[N]{rect: aabb(&bots[i]), index: uint32(i)}
	}

	start := time.Now()
	ordered := buildOrdered(&o, height, trace)

	storage := make([]BBox[N, T], len(ordered.bots))
	for i, b := range ordered.bots {
		storage[i] = BBox[N, T]{rect: b.rect, Inner: bots[b.index]}
	}
	return newTree(&o, height, ordered, storage, misc, start), nil
}

// BuildInPlace creates a tree without copying: bots is permuted into tree
// order and used as the tree storage. IntoOriginal puts it back.
func BuildInPlace[N axgeom.Num, T any, M any](bots []BBox[N, T], misc M, opts ...Option) (*Tree[N, T, M], error) {
	if err := CheckNumBots(len(bots)); err != nil {
		return nil, err
	}
	o := newBuildOptions(opts...)
	height, err := o.resolveHeight(len(bots))
	if err != nil {
		return nil, err
	}

	trace := make([]traceBot[N], len(bots))
	for i := range bots {
		trace[i] = traceBot[N]{rect: bots[i].rect, index: uint32(i)}
	}

	start := time.Now()
	ordered := buildOrdered(&o, height, trace)
	if err := Permute(bots, ordered.mover); err != nil {
		// The mover comes straight from the builder.
		panic(err)
	}
	return newTree(&o, height, ordered, bots, misc, start), nil
}

// orderedBuild is the builder output before the bots are laid out.
type orderedBuild[N axgeom.Num] struct {
	nodes []buildNode[N]
	bots  []traceBot[N]
	mover Mover
}

func buildOrdered[N axgeom.Num](o *buildOptions, height int, trace []traceBot[N]) orderedBuild[N] {
	nodes := buildTrace(o, height, trace)
	bots := treeOrder(nodes, trace)
	return orderedBuild[N]{nodes: nodes, bots: bots, mover: moverOf(bots)}
}

func newTree[N axgeom.Num, T any, M any](o *buildOptions, height int, ob orderedBuild[N], storage []BBox[N, T], misc M, start time.Time) *Tree[N, T, M] {
	t := &Tree[N, T, M]{
		packed: newPackedTree(ob.nodes, height, storage, misc),
		axis:   o.axis,
		mover:  ob.mover,
		id:     uuid.New(),
		log:    o.log,
	}

	joiner := o.joinerFor(height)
	_, sequential := joiner.(Sequential)
	t.stats = Stats{
		BuildID:      t.id.String(),
		NumBots:      uint64(len(storage)),
		Height:       uint64(height),
		NumNodes:     uint64(t.packed.numNodes()),
		Sequential:   sequential,
		BinStrat:     o.binStrat.String(),
		BoundsMode:   o.boundsMode.String(),
		PackedBytes:  PackedSizeBytes[N, T, M](len(storage), height),
		ElapsedNanos: time.Since(start).Nanoseconds(),
	}
	if p, ok := joiner.(Parallel); ok {
		t.stats.SwitchDepth = uint64(p.SwitchDepth)
	}
	if lt, ok := o.splitter.(*LevelTimer); ok {
		for _, d := range lt.Levels() {
			t.stats.LevelNanos = append(t.stats.LevelNanos, d.Nanoseconds())
		}
	}

	if t.log != nil {
		t.log.Debugf(
			"dinotree build %s: bots=%d height=%d nodes=%d sequential=%v switch=%d elapsed=%v",
			t.stats.BuildID, t.stats.NumBots, height, t.stats.NumNodes,
			sequential, t.stats.SwitchDepth, t.stats.Elapsed())
	}
	return t
}

func (t *Tree[N, T, M]) live() {
	if t.consumed {
		panic(ErrTreeConsumed)
	}
}

// BuildID identifies this build in logs and stats.
func (t *Tree[N, T, M]) BuildID() uuid.UUID { return t.id }

func (t *Tree[N, T, M]) Stats() Stats { return t.stats }

// Axis is the axis the root splits on.
func (t *Tree[N, T, M]) Axis() axgeom.Axis { return t.axis }

func (t *Tree[N, T, M]) Height() int { return int(t.stats.Height) }

func (t *Tree[N, T, M]) NumNodes() int { return int(t.stats.NumNodes) }

func (t *Tree[N, T, M]) NumBots() int { return int(t.stats.NumBots) }

// Consumed reports whether the tree has given up its bots.
func (t *Tree[N, T, M]) Consumed() bool { return t.consumed }

// Mover returns a copy of the mapping from tree position to original index.
func (t *Tree[N, T, M]) Mover() Mover {
	t.live()
	return append(Mover(nil), t.mover...)
}

func (t *Tree[N, T, M]) Vistr() Vistr[N, T, M] {
	t.live()
	return Vistr[N, T, M]{nodeAt[N, T, M]{t: t.packed, axis: t.axis}}
}

func (t *Tree[N, T, M]) VistrMut() VistrMut[N, T, M] {
	t.live()
	return VistrMut[N, T, M]{nodeAt[N, T, M]{t: t.packed, axis: t.axis}}
}

// Iter yields every bot in tree order.
func (t *Tree[N, T, M]) Iter() iter.Seq2[axgeom.Rect[N], T] {
	t.live()
	return BotsView[N, T]{bots: t.packed.bots}.All()
}

// IterMut yields every bot in tree order with its payload writable.
func (t *Tree[N, T, M]) IterMut() iter.Seq2[axgeom.Rect[N], *T] {
	t.live()
	return BotsMut[N, T]{bots: t.packed.bots}.All()
}

// Restore writes each payload to its original index in dst and consumes the
// tree. dst would normally be the slice the tree was built from.
func (t *Tree[N, T, M]) Restore(dst []T) error {
	if t.consumed {
		return ErrTreeConsumed
	}
	if len(dst) != len(t.packed.bots) {
		return fmt.Errorf("%w: tree has %d bots, dst %d", ErrLengthMismatch, len(t.packed.bots), len(dst))
	}
	for i, orig := range t.mover {
		dst[orig] = t.packed.bots[i].Inner
	}
	t.consume()
	return nil
}

// ApplyInto replaces each payload in the tree with the element of src at its
// original index. The tree geometry is unchanged.
func (t *Tree[N, T, M]) ApplyInto(src []T) error {
	if t.consumed {
		return ErrTreeConsumed
	}
	if len(src) != len(t.packed.bots) {
		return fmt.Errorf("%w: tree has %d bots, src %d", ErrLengthMismatch, len(t.packed.bots), len(src))
	}
	for i, orig := range t.mover {
		t.packed.bots[i].Inner = src[orig]
	}
	return nil
}

// IntoOriginal returns the tree storage rearranged into the original order
// and consumes the tree. For a tree from BuildInPlace this is the caller's
// slice.
func (t *Tree[N, T, M]) IntoOriginal() ([]BBox[N, T], error) {
	if t.consumed {
		return nil, ErrTreeConsumed
	}
	bots := t.packed.bots
	if err := Reorder(bots, t.mover); err != nil {
		return nil, err
	}
	t.consume()
	return bots, nil
}

// AssertInvariants reports whether the tree passes CheckInvariants. Failures
// are logged.
func (t *Tree[N, T, M]) AssertInvariants() bool {
	err := CheckInvariants(t.Vistr(), t.axis)
	if err == nil {
		return true
	}
	if t.log != nil {
		t.log.Infof("dinotree build %s: %v", t.stats.BuildID, err)
	}
	return false
}

func (t *Tree[N, T, M]) consume() {
	t.consumed = true
	t.packed = nil
	t.mover = nil
}

// MapMisc consumes t and returns a tree over the same bots whose per node
// values are fn applied to the old ones.
func MapMisc[N axgeom.Num, T any, M any, M2 any](t *Tree[N, T, M], fn func(M) M2) (*Tree[N, T, M2], error) {
	if t.consumed {
		return nil, ErrTreeConsumed
	}
	out := &Tree[N, T, M2]{
		packed: mapPackedMisc(t.packed, fn),
		axis:   t.axis,
		mover:  t.mover,
		id:     t.id,
		stats:  t.stats,
		log:    t.log,
	}
	t.consume()
	return out, nil
}
