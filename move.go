package cubesim

import "strings"

// Turn direction values for Move.Dir. The sign follows the right-handed
// convention of rotateCoord: a +1 turn is clockwise as seen from the
// negative end of the axis.
const (
	CW     = 1  // Positive quarter turn
	CCW    = -1 // Negative quarter turn
	Double = 2  // Half turn (180 degrees)
)

// Move is a single layer rotation. Layer is a stable, size-independent
// index (0 = one face, size-1 = the opposite face) resolved to a doubled
// coordinate at application time, so a recorded sequence stays meaningful
// independent of the raw coordinates of the cube it was recorded on.
type Move struct {
	Axis  Axis // Rotation axis
	Layer int  // Layer index in [0, size)
	Dir   int  // Signed quarter turns: +-1 quarter, +-2 half
}

// integerLayer resolves the layer index to the doubled coordinate of that
// layer on a cube of the given size.
func (m Move) integerLayer(size int) int {
	return -(size - 1) + m.Layer*2
}

// Inverse returns the move that undoes this one.
// A quarter turn flips sign; a half turn is its own inverse.
func (m Move) Inverse() Move {
	inv := m
	inv.Dir = -m.Dir
	return inv
}

// Notation returns the notation string for this move: the axis letter,
// the layer index, and an optional turn suffix.
// Examples: x0 (quarter), x0' (counter quarter), y22 (half turn of y layer 2).
func (m Move) Notation() string {
	suffix := ""
	switch m.Dir {
	case CCW:
		suffix = "'"
	case Double, -Double:
		suffix = "2"
	}
	return m.Axis.String() + string(rune('0'+m.Layer)) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// validDir reports whether d encodes a quarter or half turn.
func validDir(d int) bool {
	return d == CW || d == CCW || d == Double || d == -Double
}

// ParseMove parses a notation string into a Move.
// Examples: x0, x0', y2, y22, z1'
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, ErrInvalidNotation
	}

	axis, err := ParseAxis(s[:1])
	if err != nil {
		return Move{}, err
	}

	layerChar := s[1]
	if layerChar < '0' || layerChar > '9' {
		return Move{}, ErrInvalidNotation
	}
	layer := int(layerChar - '0')

	dir := CW
	if len(s) > 2 {
		switch s[2:] {
		case "'", "`":
			dir = CCW
		case "2":
			dir = Double
		case "2'", "2`":
			dir = -Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Axis: axis, Layer: layer, Dir: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "x0 y2' z12"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
