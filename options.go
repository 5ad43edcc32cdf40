package cubesim

import (
	"log/slog"
	"math/rand"
	"time"
)

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	animate      bool
	turnDuration time.Duration
	moveDelay    time.Duration
	speed        float64
	rng          *rand.Rand
	logger       *slog.Logger
	onMove       func(Move)
}

func defaultConfig() *config {
	return &config{
		animate:      false,
		turnDuration: 200 * time.Millisecond,
		moveDelay:    50 * time.Millisecond,
		speed:        1.0,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:       newNopLogger(),
	}
}

// scaled returns d divided by the speed multiplier.
func (c *config) scaled(d time.Duration) time.Duration {
	if c.speed <= 0 {
		return d
	}
	return time.Duration(float64(d) / c.speed)
}

// WithAnimation enables animated mode: every rotation blocks for the
// given duration before completing, and shuffle/solve wait for each move
// before issuing the next. The default is synchronous mode, where every
// move resolves immediately.
func WithAnimation(turnDuration time.Duration) Option {
	return func(c *config) {
		c.animate = true
		if turnDuration > 0 {
			c.turnDuration = turnDuration
		}
	}
}

// WithMoveDelay sets the pause between consecutive moves of a shuffle or
// solve in animated mode. Ignored in synchronous mode.
func WithMoveDelay(d time.Duration) Option {
	return func(c *config) {
		c.moveDelay = d
	}
}

// WithSpeed sets a speed multiplier applied to the turn duration and move
// delay in animated mode. 2.0 runs twice as fast. Values <= 0 are ignored.
func WithSpeed(multiplier float64) Option {
	return func(c *config) {
		if multiplier > 0 {
			c.speed = multiplier
		}
	}
}

// WithRand sets the random source used by Shuffle. Pass a seeded source
// for reproducible shuffles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithLogger sets the logger for diagnostics (empty layer selections,
// interrupted sequences). By default the cube produces no log output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMoveCallback sets a callback that fires after every applied move,
// including the moves issued internally by Shuffle and Solve.
func WithMoveCallback(cb func(Move)) Option {
	return func(c *config) {
		c.onMove = cb
	}
}
