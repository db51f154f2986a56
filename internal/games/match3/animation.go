package match3

import (
	"fmt"

	"github.com/vovakirdan/happymatch/internal/games/match3/board"
)

// Animation constants
const (
	blinkMS   = 100 // Flash period of matched cells
	maxToasts = 3
)

// frameKind is what a replay frame shows.
type frameKind int

const (
	frameSwap   frameKind = iota // Swapped pair, before detection
	frameFlash                   // Matched cells flashing
	frameSettle                  // Board after collapse and refill
	frameRevert                  // Pair swapped back
)

// frame is one still of a move replay.
type frame struct {
	kind    frameKind
	cells   [][]board.BlockType
	marked  map[board.Coord]bool
	score   int // Score shown while the frame is up
	cascade int // 1-based cascade step, 0 outside flashes
	ticks   int
	toasts  []string
}

type toast struct {
	text  string
	ticks int
}

func markSet(cs ...board.Coord) map[board.Coord]bool {
	m := make(map[board.Coord]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}
	return m
}

// resolveFrames builds the replay of a committed move from the board as
// it was before the swap.
func (g *Game) resolveFrames(before *board.Grid, out board.Outcome) []frame {
	t := g.cfg.Timing
	base := g.engine.Score() - out.Points

	prev := before.Clone()
	prev.Swap(out.From, out.To)
	frames := []frame{{
		kind:   frameSwap,
		cells:  prev.Cells(),
		marked: markSet(out.From, out.To),
		score:  base,
		ticks:  g.rt.TicksFor(t.SwapMS),
	}}

	running := base
	for i, step := range out.Steps {
		flash := frame{
			kind:    frameFlash,
			cells:   prev.Cells(),
			marked:  markSet(step.Matched...),
			score:   running,
			cascade: step.Index,
			ticks:   g.rt.TicksFor(t.ClearMS),
		}
		if len(step.Matched) >= g.cfg.Scoring.GreatMatchSize {
			flash.toasts = append(flash.toasts,
				fmt.Sprintf("%s %d blocks, +%d points", toastGreatMatch, len(step.Matched), step.Points))
		}

		// Totals come from the engine listener; recompute if it was
		// swapped out.
		running += step.Points
		if len(g.stepTotals) == len(out.Steps) {
			running = g.stepTotals[i]
		}

		frames = append(frames, flash, frame{
			kind:  frameSettle,
			cells: step.Grid.Cells(),
			score: running,
			ticks: g.rt.TicksFor(t.SettleMS),
		})
		prev = step.Grid
	}
	return frames
}

// revertFrames builds the replay of a swap that matched nothing.
func (g *Game) revertFrames(before *board.Grid, out board.Outcome) []frame {
	t := g.cfg.Timing
	score := g.engine.Score()

	swapped := before.Clone()
	swapped.Swap(out.From, out.To)
	return []frame{
		{
			kind:   frameSwap,
			cells:  swapped.Cells(),
			marked: markSet(out.From, out.To),
			score:  score,
			ticks:  g.rt.TicksFor(t.SwapMS),
		},
		{
			kind:   frameRevert,
			cells:  before.Cells(),
			marked: markSet(out.From, out.To),
			score:  score,
			ticks:  g.rt.TicksFor(t.SwapMS),
			toasts: []string{toastInvalid},
		},
	}
}

// play queues a replay. Zero-length frames are skipped but still post
// their notifications.
func (g *Game) play(frames []frame) {
	g.frames = g.frames[:0]
	for _, f := range frames {
		if f.ticks <= 0 {
			for _, text := range f.toasts {
				g.addToast(text)
			}
			continue
		}
		g.frames = append(g.frames, f)
	}

	if len(g.frames) == 0 {
		g.frames = nil
		g.settled()
		return
	}
	g.startFrame()
}

func (g *Game) startFrame() {
	f := g.frames[0]
	g.frameTicks = f.ticks
	g.shownScore = f.score
	for _, text := range f.toasts {
		g.addToast(text)
	}
}

// updateAnimation advances the replay.
// Returns true if a frame is still showing.
func (g *Game) updateAnimation() bool {
	if len(g.frames) == 0 {
		return false
	}

	g.frameTicks--
	if g.frameTicks > 0 {
		return true
	}

	g.frames = g.frames[1:]
	if len(g.frames) == 0 {
		g.frames = nil
		g.settled()
		return false
	}
	g.startFrame()
	return true
}

// animating reports whether a replay is in progress.
func (g *Game) animating() bool {
	return len(g.frames) > 0
}

// currentFrame returns the frame being shown, if any.
func (g *Game) currentFrame() (frame, bool) {
	if len(g.frames) == 0 {
		return frame{}, false
	}
	return g.frames[0], true
}

// blinkOn reports the visible half of the flash period.
func (g *Game) blinkOn() bool {
	period := g.rt.TicksFor(blinkMS)
	if period < 1 {
		period = 1
	}
	return (g.frameTicks/period)%2 == 0
}

func (g *Game) addToast(text string) {
	ticks := g.rt.TicksFor(g.cfg.Timing.ToastMS)
	if ticks <= 0 {
		return
	}
	g.toasts = append(g.toasts, toast{text: text, ticks: ticks})
	if len(g.toasts) > maxToasts {
		g.toasts = g.toasts[len(g.toasts)-maxToasts:]
	}
}

// updateToasts expires notifications and the hint highlight.
func (g *Game) updateToasts() {
	kept := g.toasts[:0]
	for _, t := range g.toasts {
		t.ticks--
		if t.ticks > 0 {
			kept = append(kept, t)
		}
	}
	g.toasts = kept

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
}

// Toasts returns the texts of the active notifications, oldest first.
func (g *Game) Toasts() []string {
	texts := make([]string, len(g.toasts))
	for i, t := range g.toasts {
		texts[i] = t.text
	}
	return texts
}
