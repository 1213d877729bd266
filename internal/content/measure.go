package content

// MinBlockHeight is the visible height, in rows, of a rich block whose
// measurement has not settled (or failed). Keeps the surrounding layout
// from collapsing to zero.
const MinBlockHeight = 20

// MeasureState tracks one node's progress through the measurement cycle.
type MeasureState int

const (
	StateUnmeasured MeasureState = iota
	StateMeasuring
	StateMeasured
	// StateFailed means the surface never produced a height; the node keeps
	// the fallback height until the next reload re-measures it.
	StateFailed
)

// HeightResult is a completed measurement, keyed by tree generation and
// node identity so late arrivals for a replaced tree can be rejected.
// ParseFailure distinguishes markup that never produced a document (the
// node falls back to plain text) from a surface that failed to measure
// (the node keeps the fallback height).
type HeightResult struct {
	Generation   string
	NodeID       string
	Height       int
	Err          error
	ParseFailure bool
}

// Ledger tracks rich-block measurements for a single tree generation.
// It is owned by the view's update loop and is not safe for concurrent
// use; measurement completions must be marshalled back onto that loop
// before being applied.
type Ledger struct {
	generation string
	states     map[string]MeasureState
	heights    map[string]int
}

// NewLedger creates an empty ledger bound to a tree generation token.
func NewLedger(generation string) *Ledger {
	return &Ledger{
		generation: generation,
		states:     make(map[string]MeasureState),
		heights:    make(map[string]int),
	}
}

// Generation returns the tree generation this ledger serves.
func (l *Ledger) Generation() string {
	return l.generation
}

// Begin marks a node as measuring. It reports false when a measurement is
// already in flight or settled, so callers can issue at most one
// measurement per node per cycle.
func (l *Ledger) Begin(nodeID string) bool {
	if l.states[nodeID] != StateUnmeasured {
		return false
	}
	l.states[nodeID] = StateMeasuring
	return true
}

// Apply records a measurement result. Results from another generation, or
// for nodes this ledger never started, are dropped and Apply reports
// false: a stale completion must never mutate the current tree's state.
func (l *Ledger) Apply(res HeightResult) bool {
	if res.Generation != l.generation {
		return false
	}
	if l.states[res.NodeID] != StateMeasuring {
		return false
	}
	if res.Err != nil {
		l.states[res.NodeID] = StateFailed
		return true
	}
	l.states[res.NodeID] = StateMeasured
	l.heights[res.NodeID] = res.Height
	return true
}

// State returns the node's position in the measurement cycle.
func (l *Ledger) State(nodeID string) MeasureState {
	return l.states[nodeID]
}

// Height returns the measured height for a node, or MinBlockHeight while
// unmeasured, in flight, or failed.
func (l *Ledger) Height(nodeID string) int {
	if l.states[nodeID] == StateMeasured {
		return l.heights[nodeID]
	}
	return MinBlockHeight
}

// Reset returns every node to unmeasured for a re-render cycle (theme or
// layout change). The generation is unchanged: the tree itself did not.
func (l *Ledger) Reset() {
	l.states = make(map[string]MeasureState)
	l.heights = make(map[string]int)
}
