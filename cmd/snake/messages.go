package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-ultra/internal/platform/tui"
	"github.com/vovakirdan/snake-ultra/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Browse the cached milestone texts",
	Long: `Shows the milestone texts fetched from the flavor service and kept in
the cache database, with how often each was served.

Examples:
  snake messages
  snake messages --plain
  snake messages --clear`,
	RunE: runMessages,
}

func init() {
	messagesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every cached text")
	messagesCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the viewer")
}

func runMessages(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()

	switch {
	case flagClear:
		n, err := store.ClearMessages(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d cached texts.\n", n)
		return nil

	case flagPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		entries, err := store.Messages(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No milestone texts cached yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%3d  %-40s  %s  hits=%d\n", e.Level, e.Text, e.FetchedAt.Local().Format("Jan 02 15:04"), e.Hits)
		}
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	_, err = tui.RunMessages(store, width, height)
	return err
}
