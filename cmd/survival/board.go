package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-survival/internal/ledger"
	"github.com/vovakirdan/space-survival/internal/platform/tui"
	"github.com/vovakirdan/space-survival/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Interactive highscore table",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening highscore database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(ledger.New(store, nil), width, height)
}
