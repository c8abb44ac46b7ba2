package dinotree

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-dinotree/axgeom"
)

type buildOptions struct {
	axis            axgeom.Axis
	numPerNode      int
	height          int
	binStrat        BinStrat
	boundsMode      BoundsMode
	heightSwitchSeq int
	sequential      bool
	joiner          Joiner
	splitter        Splitter
	log             logger.Logger
}

// Option configures a build.
type Option func(*buildOptions)

func defaultBuildOptions() buildOptions {
	return buildOptions{
		axis:            axgeom.XAxis,
		numPerNode:      DefaultNumElemPerNode,
		binStrat:        StraddleMiddle,
		boundsMode:      Unchecked,
		heightSwitchSeq: SwitchSequentialDefault,
		splitter:        SplitterEmpty{},
	}
}

func newBuildOptions(opts ...Option) buildOptions {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.splitter == nil {
		o.splitter = SplitterEmpty{}
	}
	return o
}

// resolveHeight returns the explicit height if one was given, otherwise the
// height ComputeHeight picks for numBots.
func (o *buildOptions) resolveHeight(numBots int) (int, error) {
	if o.height != 0 {
		if err := CheckHeight(o.height); err != nil {
			return 0, err
		}
		return o.height, nil
	}
	if o.numPerNode < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNumPerNode, o.numPerNode)
	}
	return ComputeHeight(numBots, o.numPerNode), nil
}

func (o *buildOptions) joinerFor(height int) Joiner {
	if o.joiner != nil {
		return o.joiner
	}
	if o.sequential {
		return Sequential{}
	}
	return NewParallel(o.heightSwitchSeq, height)
}

// WithAxis sets the axis the root divider splits on. The default is X.
func WithAxis(axis axgeom.Axis) Option {
	return func(o *buildOptions) {
		o.axis = axis
	}
}

// WithNumPerNode sets the number of bots per leaf the height heuristic aims
// for. Ignored if WithHeight is also given.
func WithNumPerNode(numPerNode int) Option {
	return func(o *buildOptions) {
		o.numPerNode = numPerNode
	}
}

// WithHeight overrides the height heuristic.
func WithHeight(height int) Option {
	return func(o *buildOptions) {
		o.height = height
	}
}

func WithBinStrat(strat BinStrat) Option {
	return func(o *buildOptions) {
		o.binStrat = strat
	}
}

func WithBoundsMode(mode BoundsMode) Option {
	return func(o *buildOptions) {
		o.boundsMode = mode
	}
}

// WithHeightSwitchSeq sets how many levels above the leaves a parallel build
// stops forking. Ignored by sequential builds.
func WithHeightSwitchSeq(levels int) Option {
	return func(o *buildOptions) {
		o.heightSwitchSeq = levels
	}
}

// WithSequential builds on the calling goroutine only.
func WithSequential() Option {
	return func(o *buildOptions) {
		o.sequential = true
	}
}

// WithJoiner replaces the depth based fork policy. It takes precedence over
// WithSequential and WithHeightSwitchSeq.
func WithJoiner(joiner Joiner) Option {
	return func(o *buildOptions) {
		o.joiner = joiner
	}
}

// WithSplitter instruments the build with splitter.
func WithSplitter(splitter Splitter) Option {
	return func(o *buildOptions) {
		o.splitter = splitter
	}
}

// WithLogger reports build summaries to log at debug level.
func WithLogger(log logger.Logger) Option {
	return func(o *buildOptions) {
		o.log = log
	}
}
