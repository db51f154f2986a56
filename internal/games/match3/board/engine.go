package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// Engine defaults.
const (
	DefaultRows          = 8
	DefaultCols          = 8
	DefaultPointsPerCell = 10
	MinSide              = 3
)

// RevertReason is reported when a swap produced no match.
const RevertReason = "that move didn't create a match"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidOptions is returned by NewGame for unusable options.
	ErrInvalidOptions = errors.New("invalid options")
)

// Phase is the move controller state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSelected
	PhaseResolving
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelected:
		return "selected"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// OutcomeKind classifies the result of SelectCell.
type OutcomeKind uint8

const (
	OutcomeSelected OutcomeKind = iota
	OutcomeCommitted
	OutcomeReverted
	OutcomeRejected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelected:
		return "selected"
	case OutcomeCommitted:
		return "committed"
	case OutcomeReverted:
		return "reverted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome describes what a SelectCell call did.
type Outcome struct {
	Kind OutcomeKind
	// Selection is the armed cell after a Selected outcome.
	Selection Coord
	// From and To are the swapped cells of a Committed or Reverted move.
	From, To Coord
	// Matched holds the cells of the swap's own detection pass.
	Matched  []Coord
	Points   int
	Cascades int
	Steps    []CascadeStep
	Reason   string
}

// Listener receives notifications while a committed move resolves.
// Both methods run after the step's grid mutation is complete.
type Listener interface {
	ScoreChanged(delta, total int)
	MatchFound(size, step int)
}

// Options configures NewGame. Zero values select the defaults; negative
// or out-of-range values are rejected with ErrInvalidOptions.
type Options struct {
	Rows  int // 0 means DefaultRows
	Cols  int // 0 means DefaultCols
	Kinds int // 0 means MaxKinds
	// PointsPerCell is the score per cleared cell. 0 means
	// DefaultPointsPerCell, so a board cannot be configured to score nothing.
	PointsPerCell int
	// Seed feeds a math/rand source when Source is nil.
	Seed   int64
	Source Source
	// Layout, if set, is used as the starting grid instead of a generated
	// one. It must match Rows x Cols and hold no run. Restart always
	// generates.
	Layout   *Grid
	Listener Listener
}

func (o *Options) applyDefaults() {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Kinds == 0 {
		o.Kinds = MaxKinds
	}
	if o.PointsPerCell == 0 {
		o.PointsPerCell = DefaultPointsPerCell
	}
	if o.Source == nil {
		o.Source = rand.New(rand.NewSource(o.Seed))
	}
}

func (o *Options) validate() error {
	if o.Rows < MinSide || o.Cols < MinSide {
		return fmt.Errorf("board: %dx%d grid: %w", o.Rows, o.Cols, ErrInvalidOptions)
	}
	if o.Kinds < MinKinds || o.Kinds > MaxKinds {
		return fmt.Errorf("board: %d block types: %w", o.Kinds, ErrInvalidOptions)
	}
	if o.PointsPerCell < 0 {
		return fmt.Errorf("board: %d points per cell: %w", o.PointsPerCell, ErrInvalidOptions)
	}
	if o.Layout != nil {
		if o.Layout.Rows() != o.Rows || o.Layout.Cols() != o.Cols {
			return fmt.Errorf("board: layout is %dx%d, want %dx%d: %w",
				o.Layout.Rows(), o.Layout.Cols(), o.Rows, o.Cols, ErrInvalidOptions)
		}
		for _, t := range o.Layout.cells {
			if int(t) >= o.Kinds {
				return fmt.Errorf("board: layout uses %s beyond %d types: %w", t, o.Kinds, ErrInvalidOptions)
			}
		}
		if HasMatch(o.Layout) {
			return fmt.Errorf("board: layout already holds a match: %w", ErrInvalidOptions)
		}
	}
	return nil
}

// Stats are per-session counters reset by Restart.
type Stats struct {
	Moves          int
	LongestCascade int
	LargestMatch   int
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Rows        int
	Cols        int
	Cells       [][]BlockType
	Selection   *Coord
	LastMatched []Coord
	Score       int
	Phase       Phase
	Moves       int
}

// Engine owns a board and drives the select, swap and resolve cycle.
// An Engine is not safe for concurrent use.
type Engine struct {
	rows, cols int
	gen        *Generator
	resolver   *Resolver
	listener   Listener

	grid        *Grid
	phase       Phase
	selection   Coord
	score       int
	lastMatched []Coord
	stats       Stats

	// epoch changes on every Restart so a resolution interrupted from a
	// listener stops touching the new session.
	epoch int
}

// NewGame creates an engine with a freshly generated, match-free board.
func NewGame(opts Options) (*Engine, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	gen := NewGenerator(opts.Source, opts.Kinds)
	e := &Engine{
		rows:     opts.Rows,
		cols:     opts.Cols,
		gen:      gen,
		resolver: NewResolver(gen, opts.PointsPerCell),
		listener: opts.Listener,
	}
	if opts.Layout != nil {
		e.grid = opts.Layout.Clone()
	} else {
		e.grid = gen.Generate(e.rows, e.cols)
	}
	return e, nil
}

// SetListener replaces the notification listener. nil disables notifications.
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// Phase returns the current controller state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Stats returns the session counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Selection returns the armed cell, if any.
func (e *Engine) Selection() (Coord, bool) {
	return e.selection, e.phase == PhaseSelected
}

// Hint returns a swap that would score on the current board.
func (e *Engine) Hint() (a, b Coord, ok bool) {
	return FindMove(e.grid)
}

// SelectCell feeds one player selection into the move controller.
func (e *Engine) SelectCell(c Coord) (Outcome, error) {
	if e.phase == PhaseResolving {
		return Outcome{Kind: OutcomeRejected}, nil
	}
	if !e.grid.InBounds(c) {
		return Outcome{}, fmt.Errorf("board: select %v: %w", c, ErrOutOfBounds)
	}

	if e.phase == PhaseIdle || (c != e.selection && !c.Adjacent(e.selection)) {
		e.selection = c
		e.phase = PhaseSelected
		return Outcome{Kind: OutcomeSelected, Selection: c}, nil
	}
	if c == e.selection {
		return Outcome{Kind: OutcomeSelected, Selection: c}, nil
	}

	return e.move(e.selection, c), nil
}

// Deselect drops the armed cell. It does nothing while resolving.
func (e *Engine) Deselect() {
	if e.phase == PhaseSelected {
		e.phase = PhaseIdle
		e.selection = Coord{}
	}
}

func (e *Engine) move(from, to Coord) Outcome {
	e.phase = PhaseResolving
	e.selection = Coord{}

	e.grid.Swap(from, to)
	matched := Detect(e.grid)
	if matched.Empty() {
		e.grid.Swap(from, to)
		e.phase = PhaseIdle
		return Outcome{Kind: OutcomeReverted, From: from, To: to, Reason: RevertReason}
	}

	epoch := e.epoch
	res := e.resolver.Resolve(e.grid, matched, func(step CascadeStep) {
		if e.epoch != epoch {
			return
		}
		e.score += step.Points
		e.lastMatched = step.Matched
		if len(step.Matched) > e.stats.LargestMatch {
			e.stats.LargestMatch = len(step.Matched)
		}
		if e.listener != nil {
			e.listener.ScoreChanged(step.Points, e.score)
			e.listener.MatchFound(len(step.Matched), step.Index)
		}
	})

	out := Outcome{
		Kind:     OutcomeCommitted,
		From:     from,
		To:       to,
		Matched:  res.Steps[0].Matched,
		Points:   res.TotalPoints,
		Cascades: res.Cascades,
		Steps:    res.Steps,
	}
	if e.epoch != epoch {
		// Restarted from a listener; the new session already owns the state.
		return out
	}

	e.stats.Moves++
	if res.Cascades > e.stats.LongestCascade {
		e.stats.LongestCascade = res.Cascades
	}
	e.phase = PhaseIdle
	return out
}

// Restart replaces the board with a new match-free grid and clears score,
// selection and stats. It may be called from any phase.
func (e *Engine) Restart() Snapshot {
	e.epoch++
	e.grid = e.gen.Generate(e.rows, e.cols)
	e.phase = PhaseIdle
	e.selection = Coord{}
	e.score = 0
	e.lastMatched = nil
	e.stats = Stats{}
	return e.Snapshot()
}

// Snapshot returns a deep copy of the externally visible state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Rows:  e.rows,
		Cols:  e.cols,
		Cells: e.grid.Cells(),
		Score: e.score,
		Phase: e.phase,
		Moves: e.stats.Moves,
	}
	if e.phase == PhaseSelected {
		sel := e.selection
		s.Selection = &sel
	}
	if len(e.lastMatched) > 0 {
		s.LastMatched = append([]Coord(nil), e.lastMatched...)
	}
	return s
}
