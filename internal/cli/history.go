package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubekit/cubesim"
	"github.com/cubekit/cubesim/internal/storage"
)

var (
	historyLimit int
	showLastFlag bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent shuffle and solve sessions",
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show details of a session",
	Long: `Display a session's metadata and its full move sequence.

Use --last to show the most recent session.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to display")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLastFlag, "last", false, "Show the most recent session")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	list, err := sessions.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No sessions recorded yet")
		fmt.Println("Start with: cubesim shuffle")
		return nil
	}

	fmt.Printf("Recent sessions (showing %d):\n", len(list))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-8s  %-5s  %-10s  %-6s  %s\n",
		"ID", "Started", "Kind", "Size", "Duration", "Moves", "Notes")
	fmt.Println("------------------------------------  --------------------  --------  -----  ----------  ------  -----")

	for _, s := range list {
		duration := "-"
		if s.DurationMs != nil {
			duration = formatDuration(time.Duration(*s.DurationMs) * time.Millisecond)
		}

		moves := "-"
		if count, err := sessions.GetMoveCount(s.SessionID); err == nil && count > 0 {
			moves = fmt.Sprintf("%d", count)
		}

		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		status := ""
		if s.EndedAt == nil {
			status = " (active)"
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-5d  %-10s  %-6s  %s%s\n",
			s.SessionID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.Kind,
			s.CubeSize,
			duration,
			moves,
			notes,
			status,
		)
	}

	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)

	var sessionID string
	if showLastFlag {
		list, err := sessions.List(1)
		if err != nil {
			return fmt.Errorf("failed to get latest session: %w", err)
		}
		if len(list) == 0 {
			return fmt.Errorf("no sessions found")
		}
		sessionID = list[0].SessionID
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

	records, err := storage.NewMoveRepository(db).GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get moves: %w", err)
	}

	fmt.Println("Session Details")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("ID:      %s\n", session.SessionID)
	fmt.Printf("Kind:    %s\n", session.Kind)
	fmt.Printf("Size:    %dx%dx%d\n", session.CubeSize, session.CubeSize, session.CubeSize)
	fmt.Printf("Started: %s\n", session.StartedAt.Format("2006-01-02 15:04:05"))
	if session.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", session.EndedAt.Format("2006-01-02 15:04:05"))
	}
	if session.DurationMs != nil {
		fmt.Printf("Duration: %s\n", formatDuration(time.Duration(*session.DurationMs)*time.Millisecond))
	}
	if session.Notes != nil && *session.Notes != "" {
		fmt.Printf("Notes:   %s\n", *session.Notes)
	}
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No moves recorded")
		return nil
	}

	fmt.Printf("Moves (%d)\n", len(records))
	fmt.Println("-----")
	moves := make([]cubesim.Move, 0, len(records))
	for _, rec := range records {
		m, err := rec.Move()
		if err != nil {
			return err
		}
		moves = append(moves, m)
	}
	printMoveLines(moves)

	return nil
}
