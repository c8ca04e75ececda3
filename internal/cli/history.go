package cli

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sessions and solution lengths",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	moves := storage.NewMoveRepository(db)

	fmt.Println(titleStyle.Render("Sessions"))
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet")
	}
	for _, s := range sessions {
		count, err := moves.Count(s.SessionID)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s  %-8s  %s  %4d moves",
			s.SessionID[:8], s.Source, s.StartedAt.Local().Format(time.DateTime), count)
		if s.DurationMs != nil {
			line += fmt.Sprintf("  %s", (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second))
		}
		if s.DeviceName != nil {
			line += "  " + *s.DeviceName
		}
		fmt.Println(line)
	}

	lengths, err := storage.NewSolveRepository(db).RecentLengths(historyLimit * 5)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("Solution lengths"))
	fmt.Println(lengthGraph(lengths))
	return nil
}

// lengthGraph plots solution lengths, oldest first.
func lengthGraph(lengths []float64) string {
	switch len(lengths) {
	case 0:
		return "No solutions recorded yet"
	case 1:
		return fmt.Sprintf("%d moves", int(lengths[0]))
	}
	return asciigraph.Plot(lengths,
		asciigraph.Height(8),
		asciigraph.Caption("moves per solution"),
	)
}
