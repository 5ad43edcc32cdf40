package cubesim

import (
	"fmt"
	"sync"
	"time"
)

// Supported cube side lengths.
const (
	MinSize = 2
	MaxSize = 5
)

// shuffleMovesPerUnit is multiplied by the cube size to get the number of
// random moves a shuffle generates.
const shuffleMovesPerUnit = 10

// Cube is an N x N x N puzzle instance: the cubie store, the recorded move
// sequence, and the lifecycle state machine that gates every operation.
//
// All exported methods are safe for concurrent use. Only one of
// rotate/shuffle/solve/resize may run at a time; a second operation
// started while another is in progress fails with ErrBusy in every mode.
type Cube struct {
	cfg *config

	mu       sync.RWMutex
	size     int
	state    State
	cubies   []*Cubie
	sequence []Move
}

// New builds a fresh solved cube of the given side length.
// Sizes outside [MinSize, MaxSize] are rejected with ErrInvalidSize.
func New(size int, opts ...Option) (*Cube, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (supported sizes are %d-%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Cube{
		cfg:    cfg,
		size:   size,
		state:  StateIdle,
		cubies: buildCubies(size),
	}, nil
}

// Size returns the cube's side length.
func (c *Cube) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// State returns the current lifecycle state.
func (c *Cube) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Moves returns a copy of the recorded move sequence.
func (c *Cube) Moves() []Move {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Move, len(c.sequence))
	copy(result, c.sequence)
	return result
}

// IsSolved reports whether every cubie is back at the coordinate it was
// built at.
func (c *Cube) IsSolved() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cb := range c.cubies {
		if cb.Coord != cb.InitialCoord {
			return false
		}
	}
	return true
}

// begin transitions the state machine from idle into op, or fails with
// ErrBusy if another operation holds the machine.
func (c *Cube) begin(op State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot start %s while %s", ErrBusy, op, c.state)
	}
	c.state = op
	return nil
}

// end returns the state machine to idle if op still holds it.
func (c *Cube) end(op State) {
	c.mu.Lock()
	if c.state == op {
		c.state = StateIdle
	}
	c.mu.Unlock()
}

// holds reports whether op currently owns the state machine.
func (c *Cube) holds(op State) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == op
}

// Rotate applies a single layer-index move. Gated: fails with ErrBusy
// while a shuffle, solve, resize or another rotation is in progress.
// In animated mode the call blocks for the configured turn duration.
func (c *Cube) Rotate(m Move) error {
	if !validDir(m.Dir) {
		return fmt.Errorf("%w: direction %d", ErrInvalidMove, m.Dir)
	}
	if err := c.begin(StateRotating); err != nil {
		return err
	}
	defer c.end(StateRotating)

	c.applyMove(m, false)
	return nil
}

// RotateFace applies a rotation addressed by doubled layer coordinate
// rather than layer index. This is the low-level entry point used by
// renderers that already work in logical coordinates.
func (c *Cube) RotateFace(axis Axis, integerLayer, dir int) error {
	c.mu.RLock()
	size := c.size
	c.mu.RUnlock()

	// Convert the coordinate back to a stable layer index. A coordinate
	// that maps to no layer of this cube selects nothing: that is the
	// empty-selection no-op, not an error.
	index := (integerLayer + size - 1) / 2
	if index < 0 || index >= size || -(size-1)+index*2 != integerLayer {
		c.cfg.logger.Warn("no layer at coordinate",
			"axis", axis.String(), "layer", integerLayer, "size", size)
		return nil
	}
	return c.Rotate(Move{Axis: axis, Layer: index, Dir: dir})
}

// applyMove resolves the move's layer index, rotates every cubie in the
// selected layer and optionally records the move. It bypasses the
// lifecycle gate: callers must already hold an operation state.
func (c *Cube) applyMove(m Move, record bool) {
	c.mu.Lock()
	layer := m.integerLayer(c.size)
	selected := selectLayer(c.cubies, m.Axis, layer)

	if len(selected) == 0 {
		// Every resolvable layer of a well-formed store has cubies, so
		// an empty selection points at broken layer math upstream.
		// Treated as a successful no-op per the error model.
		c.cfg.logger.Warn("empty layer selection",
			"axis", m.Axis.String(), "layer", layer, "size", c.size)
	}

	for _, cb := range selected {
		cb.Coord = rotateCoord(cb.Coord, m.Axis, m.Dir)
	}
	if record {
		c.sequence = append(c.sequence, m)
	}
	onMove := c.cfg.onMove
	c.mu.Unlock()

	if onMove != nil {
		onMove(m)
	}
	if c.cfg.animate {
		time.Sleep(c.cfg.scaled(c.cfg.turnDuration))
	}
}

// Shuffle applies size*10 random moves, recording each one so a later
// Solve can reverse them. Gated: only starts from idle.
//
// In animated mode the call blocks until the whole sequence has played;
// run it on its own goroutine to keep the caller responsive. There is no
// mid-sequence cancellation.
func (c *Cube) Shuffle() error {
	if err := c.begin(StateShuffling); err != nil {
		return err
	}
	defer c.end(StateShuffling)

	count := c.Size() * shuffleMovesPerUnit
	for i := 0; i < count; i++ {
		if !c.holds(StateShuffling) {
			c.cfg.logger.Warn("shuffle interrupted", "applied", i, "total", count)
			return fmt.Errorf("%w: shuffle halted after %d of %d moves", ErrInterrupted, i, count)
		}

		c.applyMove(c.randomMove(), true)

		if c.cfg.animate && i < count-1 {
			time.Sleep(c.cfg.scaled(c.cfg.moveDelay))
		}
	}

	return nil
}

// randomMove draws a uniformly random quarter-turn move for the current size.
func (c *Cube) randomMove() Move {
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := CW
	if c.cfg.rng.Intn(2) == 0 {
		dir = CCW
	}
	return Move{
		Axis:  Axis(c.cfg.rng.Intn(3)),
		Layer: c.cfg.rng.Intn(c.size),
		Dir:   dir,
	}
}

// Solve replays the recorded sequence in reverse order with inverted
// directions, restoring every cubie to its pre-shuffle coordinate.
// Calling Solve with an empty sequence is a no-op. On a full traversal
// the sequence is cleared; if the sequence is interrupted it is left
// intact and ErrInterrupted is returned.
func (c *Cube) Solve() error {
	if err := c.begin(StateSolving); err != nil {
		return err
	}
	defer c.end(StateSolving)

	c.mu.RLock()
	seq := make([]Move, len(c.sequence))
	copy(seq, c.sequence)
	c.mu.RUnlock()

	if len(seq) == 0 {
		return nil
	}

	for i := len(seq) - 1; i >= 0; i-- {
		if !c.holds(StateSolving) {
			applied := len(seq) - 1 - i
			c.cfg.logger.Warn("solve interrupted", "applied", applied, "total", len(seq))
			return fmt.Errorf("%w: solve halted after %d of %d moves", ErrInterrupted, applied, len(seq))
		}

		c.applyMove(seq[i].Inverse(), false)

		if c.cfg.animate && i > 0 {
			time.Sleep(c.cfg.scaled(c.cfg.moveDelay))
		}
	}

	c.mu.Lock()
	c.sequence = c.sequence[:0]
	c.mu.Unlock()

	return nil
}

// Resize discards all cubies and the move sequence and rebuilds a solved
// cube of the new size. Resizing to the current size is a no-op. Like
// every other operation, Resize only starts from idle.
func (c *Cube) Resize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (supported sizes are %d-%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}

	if err := c.begin(StateResizing); err != nil {
		return err
	}
	defer c.end(StateResizing)

	c.mu.Lock()
	defer c.mu.Unlock()
	if size == c.size {
		return nil
	}

	c.size = size
	c.cubies = buildCubies(size)
	c.sequence = nil
	return nil
}

// CubieState is a read-only view of one cubie.
type CubieState struct {
	ID              string
	InitialPosition Vec3
	Position        Vec3
	Coord           Vec3i
}

// Snapshot is a read-only view of the whole cube, taken atomically.
type Snapshot struct {
	Size   int
	State  State
	Cubies []CubieState
	Moves  []Move
}

// Snapshot returns a consistent copy of the cube's observable state for
// rendering, verification and testing.
func (c *Cube) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Size:   c.size,
		State:  c.state,
		Cubies: make([]CubieState, len(c.cubies)),
		Moves:  make([]Move, len(c.sequence)),
	}
	for i, cb := range c.cubies {
		snap.Cubies[i] = CubieState{
			ID:              cb.ID,
			InitialPosition: cb.InitialPosition(),
			Position:        cb.Position(),
			Coord:           cb.Coord,
		}
	}
	copy(snap.Moves, c.sequence)
	return snap
}
