package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lwaidler/tourneyclock/internal/config"
	"github.com/lwaidler/tourneyclock/internal/database"
	"github.com/lwaidler/tourneyclock/internal/settings"
	"github.com/lwaidler/tourneyclock/internal/tui"
	"github.com/lwaidler/tourneyclock/internal/util"
)

func main() {
	ctx := context.Background()

	dataDir := util.DataDir(config.AppName)
	util.MustSucceed("create data directory", os.MkdirAll(dataDir, 0o755))

	db, err := database.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		fmt.Printf("Cannot open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	store := settings.Load(ctx, db)

	p := tea.NewProgram(tui.NewDisplayModel(ctx, db, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	// Flush any debounced settings write before the database closes.
	store.Flush(ctx)
}
