package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubekit/cubesim"
)

var playSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI driving a cube in animated mode.

Keyboard shortcuts:
  s         - Shuffle
  o         - Solve (reverse the recorded shuffle)
  r l u d f b - Rotate a face (uppercase for the counter turn)
  + / -     - Grow / shrink the cube
  q/Esc     - Quit

Moves are displayed in real time as they are applied.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playSize, "size", 3, "Cube side length (2-5)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type moveAppliedMsg cubesim.Move
type opDoneMsg struct {
	op  string
	err error
}

// Model
type playModel struct {
	cube     *cubesim.Cube
	moveChan chan cubesim.Move

	status string
	moves  []cubesim.Move
	err    error

	width    int
	height   int
	quitting bool
}

func newPlayModel(size int) (*playModel, error) {
	m := &playModel{
		moveChan: make(chan cubesim.Move, 100),
		status:   "ready",
	}

	cube, err := cubesim.New(size,
		cubesim.WithAnimation(150*time.Millisecond),
		cubesim.WithMoveDelay(40*time.Millisecond),
		cubesim.WithMoveCallback(func(mv cubesim.Move) {
			select {
			case m.moveChan <- mv:
			default:
				// Channel full, drop the update; the cube state is
				// authoritative anyway.
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	m.cube = cube
	return m, nil
}

func (m *playModel) Init() tea.Cmd {
	return m.listenForMoves()
}

func (m *playModel) listenForMoves() tea.Cmd {
	return func() tea.Msg {
		return moveAppliedMsg(<-m.moveChan)
	}
}

// startOp runs a cube operation off the UI goroutine and reports back
// when it finishes.
func (m *playModel) startOp(name string, fn func() error) tea.Cmd {
	m.status = name
	m.err = nil
	return func() tea.Msg {
		return opDoneMsg{op: name, err: fn()}
	}
}

// faceMove maps a face key to the outermost layer move on the current size.
func (m *playModel) faceMove(key string) (cubesim.Move, bool) {
	size := m.cube.Size()
	outer := size - 1

	moves := map[string]cubesim.Move{
		"r": {Axis: cubesim.AxisX, Layer: outer, Dir: cubesim.CCW},
		"l": {Axis: cubesim.AxisX, Layer: 0, Dir: cubesim.CW},
		"u": {Axis: cubesim.AxisY, Layer: outer, Dir: cubesim.CCW},
		"d": {Axis: cubesim.AxisY, Layer: 0, Dir: cubesim.CW},
		"f": {Axis: cubesim.AxisZ, Layer: outer, Dir: cubesim.CCW},
		"b": {Axis: cubesim.AxisZ, Layer: 0, Dir: cubesim.CW},
	}

	lower := strings.ToLower(key)
	mv, ok := moves[lower]
	if !ok {
		return cubesim.Move{}, false
	}
	if key != lower {
		mv = mv.Inverse()
	}
	return mv, true
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			return m, m.startOp("shuffling", m.cube.Shuffle)

		case "o":
			return m, m.startOp("solving", m.cube.Solve)

		case "+", "=":
			size := m.cube.Size() + 1
			return m, m.startOp("resizing", func() error { return m.cube.Resize(size) })

		case "-":
			size := m.cube.Size() - 1
			return m, m.startOp("resizing", func() error { return m.cube.Resize(size) })

		default:
			if mv, ok := m.faceMove(key); ok {
				return m, m.startOp("rotating", func() error { return m.cube.Rotate(mv) })
			}
		}

	case moveAppliedMsg:
		m.moves = append(m.moves, cubesim.Move(msg))
		if len(m.moves) > 40 {
			m.moves = m.moves[len(m.moves)-40:]
		}
		return m, m.listenForMoves()

	case opDoneMsg:
		m.status = "ready"
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, cubesim.ErrBusy):
				m.err = fmt.Errorf("%s rejected: cube is busy", msg.op)
			case errors.Is(msg.err, cubesim.ErrInvalidSize):
				m.err = fmt.Errorf("size out of range (%d-%d)", cubesim.MinSize, cubesim.MaxSize)
			default:
				m.err = msg.err
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.cube.Snapshot()

	displaced := 0
	for _, cb := range snap.Cubies {
		if cb.Position != cb.InitialPosition {
			displaced++
		}
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")

	solvedText := fmt.Sprintf("%d/%d pieces displaced", displaced, len(snap.Cubies))
	if displaced == 0 {
		solvedText = solvedStyle.Render("SOLVED")
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("size %dx%dx%d  |  state %s  |  ",
		snap.Size, snap.Size, snap.Size, snap.State)))
	b.WriteString(solvedText)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("recorded sequence: %d moves", len(snap.Moves))))
	b.WriteString("\n\n")

	if len(m.moves) > 0 {
		b.WriteString(moveStyle.Render(cubesim.FormatMoves(m.moves)))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("s shuffle · o solve · r/l/u/d/f/b faces (shift = counter) · +/- size · q quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	model, err := newPlayModel(playSize)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
