package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished matches",
	Long: `Display the most recent finished matches and overall win counts.

The history is an archive only; every new match starts at 0-0.

Examples:
  pong history
  pong history --plain --limit 5
  pong history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
}

func runHistory(cmd *cobra.Command, _ []string) {
	cfg, _ := mustLoadConfig(cmd)

	logger, closer, err := logging.New(cfg.Log, "pong", io.Discard)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	defer closer.Close()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		exitf("Error opening match history: %v\n", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			exitf("Error: %v\n", err)
		}
		logger.Info("history cleared")
		fmt.Println("Match history cleared.")
		return
	}

	if !flagPlain {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			exitf("Error: %v\n", err)
		}
		return
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		exitf("Error retrieving matches: %v\n", err)
	}
	summary, err := store.Summary()
	if err != nil {
		exitf("Error retrieving summary: %v\n", err)
	}
	printHistory(os.Stdout, matches, summary)
}

// printHistory writes the matches as an aligned text table.
func printHistory(w io.Writer, matches []storage.MatchRecord, summary storage.Summary) {
	fmt.Fprintln(w, "Match History")
	fmt.Fprintln(w)

	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'pong play' and finish a game to record one.")
		return
	}

	rows := make([][]string, 0, len(matches)+2)
	rows = append(rows, tui.HistoryColumns)
	dashes := make([]string, len(tui.HistoryColumns))
	for i, title := range tui.HistoryColumns {
		dashes[i] = strings.Repeat("-", len(title))
	}
	rows = append(rows, dashes)
	for _, m := range matches {
		rows = append(rows, tui.MatchRow(m))
	}

	// Calculate column widths
	widths := make([]int, len(tui.HistoryColumns))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	for _, row := range rows {
		var line strings.Builder
		line.WriteString(" ")
		for i, cell := range row {
			fmt.Fprintf(&line, " %-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.SummaryLine(summary))
}
