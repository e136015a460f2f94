package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/szymonw/studylog/internal/app"
	"github.com/szymonw/studylog/internal/catalog"
	"github.com/szymonw/studylog/internal/session"
	"github.com/szymonw/studylog/internal/sheets"
	"github.com/szymonw/studylog/internal/store"
	"github.com/szymonw/studylog/internal/submit"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	writer, err := resolveWriter(st)
	if err != nil {
		return err
	}

	opts := app.Options{
		Tracker:     session.NewTracker(session.Hooks{}),
		Coordinator: submit.NewCoordinator(writer),
		Catalog:     catalog.Load(cfg),
		Store:       st,
		Locations:   cfg.Locations,
	}
	return app.Run(opts)
}

// openStore opens the SQLite ledger at the configured path, falling
// back to the XDG data directory.
func openStore() (*store.Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create DB directory: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// resolveWriter picks the submission target: the remote sheet when an
// endpoint is configured, otherwise the local ledger.
func resolveWriter(st *store.Store) (store.Writer, error) {
	if cfg.Remote.Endpoint != "" {
		return sheets.NewClient(cfg.Remote.Endpoint, cfg.Remote.Token), nil
	}
	slog.Info("no remote endpoint configured, submitting to the local ledger only")
	ledger, err := st.Ledger()
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	return ledger, nil
}
