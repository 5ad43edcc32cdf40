package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubesim"
	"github.com/cubekit/cubesim/internal/storage"
)

var (
	shuffleSize  int
	shuffleSeed  int64
	shuffleNotes string
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a cube and record the session",
	Long: `Build a fresh cube, apply a random shuffle, and store the generated move
sequence in the database so it can be replayed or solved later.

Pass --seed for a reproducible shuffle.`,
	RunE: runShuffle,
}

func init() {
	rootCmd.AddCommand(shuffleCmd)

	shuffleCmd.Flags().IntVar(&shuffleSize, "size", 3, "Cube side length (2-5)")
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "Random seed (0 = time-based)")
	shuffleCmd.Flags().StringVar(&shuffleNotes, "notes", "", "Notes for this session")
}

func runShuffle(cmd *cobra.Command, args []string) error {
	opts := []cubesim.Option{cubesim.WithLogger(engineLogger())}
	if shuffleSeed != 0 {
		opts = append(opts, cubesim.WithRand(rand.New(rand.NewSource(shuffleSeed))))
	}

	cube, err := cubesim.New(shuffleSize, opts...)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	sessionID, err := sessions.Create(shuffleSize, storage.KindShuffle, shuffleNotes)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err := cube.Shuffle(); err != nil {
		return fmt.Errorf("shuffle failed: %w", err)
	}

	moves := cube.Moves()
	if err := storage.NewMoveRepository(db).CreateBatch(sessionID, moves); err != nil {
		return fmt.Errorf("failed to store moves: %w", err)
	}
	if err := sessions.End(sessionID, cube.IsSolved()); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	fmt.Printf("Shuffled %dx%dx%d cube: %d moves\n", shuffleSize, shuffleSize, shuffleSize, len(moves))
	fmt.Println()
	printMoveLines(moves)
	fmt.Println()
	fmt.Printf("Session: %s\n", sessionID)
	fmt.Printf("Solve it back with: cubesim solve %s\n", sessionID)

	return nil
}

// printMoveLines prints moves in notation, wrapped at roughly 60 columns.
func printMoveLines(moves []cubesim.Move) {
	var line string
	for i, m := range moves {
		n := m.Notation()
		if len(line)+len(n)+1 > 60 {
			fmt.Printf("  %s\n", line)
			line = n
		} else if line == "" {
			line = n
		} else {
			line += " " + n
		}

		if i == len(moves)-1 && line != "" {
			fmt.Printf("  %s\n", line)
		}
	}
}
