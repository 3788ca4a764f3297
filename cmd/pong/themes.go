package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes",
	Long:  `Shows the color themes available to --theme and display.theme.`,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		marker := ""
		if t.ID == registry.DefaultTheme {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, t.ID, t.Title, marker)
	}

	fmt.Println()
	fmt.Println("Use 'pong play --theme <id>' to pick one.")
}
