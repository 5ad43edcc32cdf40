package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubesim"
	"github.com/cubekit/cubesim/internal/storage"
)

var solveLast bool

var solveCmd = &cobra.Command{
	Use:   "solve [session-id]",
	Short: "Replay a recorded shuffle and solve it by reversal",
	Long: `Rebuild the cube of a recorded shuffle session, replay the stored move
sequence, then undo it by applying the sequence in reverse with inverted
directions. Verifies that every piece returns to its starting position.

Use --last to solve the most recent shuffle session.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "Solve the most recent shuffle session")
}

func runSolve(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)

	var sessionID string
	if solveLast {
		list, err := sessions.List(20)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		for _, s := range list {
			if s.Kind == storage.KindShuffle {
				sessionID = s.SessionID
				break
			}
		}
		if sessionID == "" {
			return fmt.Errorf("no shuffle sessions recorded yet")
		}
	} else if len(args) > 0 {
		sessionID = args[0]
	} else {
		return fmt.Errorf("please provide a session ID or use --last")
	}

	session, err := sessions.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	if session.Kind != storage.KindShuffle {
		return fmt.Errorf("session %s is a %s session, not a shuffle", sessionID, session.Kind)
	}

	records, err := storage.NewMoveRepository(db).GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	cube, err := cubesim.New(session.CubeSize, cubesim.WithLogger(engineLogger()))
	if err != nil {
		return err
	}

	// Replay the recorded shuffle onto the fresh cube.
	for _, rec := range records {
		m, err := rec.Move()
		if err != nil {
			return err
		}
		if err := cube.Rotate(m); err != nil {
			return fmt.Errorf("replay failed at move %d (%s): %w", rec.MoveIndex, rec.Notation, err)
		}
	}

	fmt.Printf("Replayed %d moves onto a %dx%dx%d cube\n",
		len(records), session.CubeSize, session.CubeSize, session.CubeSize)
	fmt.Printf("Solved before reversal: %v\n", cube.IsSolved())

	// The replayed moves are our own rotations, not a recorded sequence,
	// so reverse them explicitly.
	for i := len(records) - 1; i >= 0; i-- {
		m, err := records[i].Move()
		if err != nil {
			return err
		}
		if err := cube.Rotate(m.Inverse()); err != nil {
			return fmt.Errorf("reversal failed at move %d: %w", i, err)
		}
	}

	solved := cube.IsSolved()
	fmt.Printf("Solved after reversal:  %v\n", solved)

	solveID, err := sessions.Create(session.CubeSize, storage.KindSolve, "reversal of "+sessionID)
	if err != nil {
		return fmt.Errorf("failed to create solve session: %w", err)
	}
	if err := sessions.End(solveID, solved); err != nil {
		return fmt.Errorf("failed to end solve session: %w", err)
	}

	if !solved {
		return fmt.Errorf("cube did not return to its starting state")
	}

	return nil
}
