package dinotree

import (
	"fmt"
	"time"
)

// Splitter receives callbacks at well defined events of the recursive build.
// It forms a fold shaped like the recursion: each internal node calls Div
// once before recursing and Add once after both children return.
//
// NodeStart is called at the start of every recursive call. NodeEnd is called
// when a call stops recursing. For the builder that is at the leaves, but
// implementations must not assume NodeEnd only happens at the maximum depth;
// an algorithm may decide there is no need to recurse further.
//
// During a parallel build the accumulator returned by Div is handed to another
// goroutine. The two accumulators are never used concurrently with each other
// until Add joins them.
type Splitter interface {
	// Div splits off the accumulator for the right child.
	Div() Splitter
	// Add folds the right child's finished accumulator back into this one.
	Add(other Splitter)
	NodeStart()
	NodeEnd()
}

// SplitterEmpty does nothing at every event.
type SplitterEmpty struct{}

func (SplitterEmpty) Div() Splitter { return SplitterEmpty{} }
func (SplitterEmpty) Add(Splitter)  {}
func (SplitterEmpty) NodeStart()    {}
func (SplitterEmpty) NodeEnd()      {}

// LevelTimer measures the time spent at each level of a recursive algorithm
// that supports Splitter. Sibling subtrees are summed per level.
//
// The number of levels can be less than the tree height if the algorithm does
// not recurse all the way to the leaves.
type LevelTimer struct {
	levels  []time.Duration
	start   time.Time
	running bool
}

func NewLevelTimer() *LevelTimer {
	return &LevelTimer{}
}

// NewLevelTimerWithHeight preallocates space for height levels.
func NewLevelTimerWithHeight(height int) *LevelTimer {
	return &LevelTimer{levels: make([]time.Duration, 0, height)}
}

// Levels returns the accumulated time per level, root first.
func (l *LevelTimer) Levels() []time.Duration {
	return l.levels
}

func (l *LevelTimer) nodeEndCommon() {
	if !l.running {
		panic("dinotree: LevelTimer node ended without a start")
	}
	l.levels = append(l.levels, time.Since(l.start))
	l.running = false
}

func (l *LevelTimer) Div() Splitter {
	l.nodeEndCommon()
	return &LevelTimer{levels: make([]time.Duration, len(l.levels))}
}

func (l *LevelTimer) Add(other Splitter) {
	o := other.(*LevelTimer)
	n := min(len(l.levels), len(o.levels))
	for i := 0; i < n; i++ {
		l.levels[i] += o.levels[i]
	}
	if len(l.levels) < len(o.levels) {
		l.levels = append(l.levels, o.levels[len(l.levels):]...)
	}
}

func (l *LevelTimer) NodeStart() {
	if l.running {
		panic("dinotree: LevelTimer node started twice")
	}
	l.start = time.Now()
	l.running = true
}

func (l *LevelTimer) NodeEnd() {
	l.nodeEndCommon()
}

// LevelCounter counts the nodes visited at each depth and checks that every
// NodeStart is closed by exactly one Div or NodeEnd before the next NodeStart.
type LevelCounter struct {
	depth int
	stack []int
	open  bool

	levels    []int
	starts    int
	ends      int
	unbalance int
}

func NewLevelCounter() *LevelCounter {
	return &LevelCounter{}
}

// Levels returns the number of nodes started at each depth, root first.
func (c *LevelCounter) Levels() []int {
	return c.levels
}

// Starts returns the number of NodeStart calls.
func (c *LevelCounter) Starts() int { return c.starts }

// Ends returns the number of NodeEnd calls.
func (c *LevelCounter) Ends() int { return c.ends }

// Balanced reports whether every NodeStart was closed before the next one and
// every Div was matched by an Add.
func (c *LevelCounter) Balanced() bool {
	return c.unbalance == 0 && !c.open && len(c.stack) == 0
}

func (c *LevelCounter) String() string {
	return fmt.Sprintf("levels=%v starts=%d ends=%d balanced=%v", c.levels, c.starts, c.ends, c.Balanced())
}

func (c *LevelCounter) close() {
	if !c.open {
		c.unbalance++
	}
	c.open = false
}

func (c *LevelCounter) Div() Splitter {
	c.close()
	c.stack = append(c.stack, c.depth)
	c.depth++
	return &LevelCounter{depth: c.depth}
}

func (c *LevelCounter) Add(other Splitter) {
	o := other.(*LevelCounter)
	if len(c.stack) == 0 {
		c.unbalance++
	} else {
		c.depth = c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
	}
	for len(c.levels) < len(o.levels) {
		c.levels = append(c.levels, 0)
	}
	for i, v := range o.levels {
		c.levels[i] += v
	}
	c.starts += o.starts
	c.ends += o.ends
	c.unbalance += o.unbalance
	if o.open || len(o.stack) != 0 {
		c.unbalance++
	}
}

func (c *LevelCounter) NodeStart() {
	if c.open {
		c.unbalance++
	}
	c.open = true
	for len(c.levels) <= c.depth {
		c.levels = append(c.levels, 0)
	}
	c.levels[c.depth]++
	c.starts++
}

func (c *LevelCounter) NodeEnd() {
	c.close()
	c.ends++
}
