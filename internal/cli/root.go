// Package cli defines the cobra command tree for the hmr console.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/config"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/db"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/draft"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/editor"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/upload"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hmr",
		Short:         "Manage tokenized property listings",
		Long:          "Operator console for the tokenized real-estate platform. Create and edit property records, upload assets, and submit listings to the backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.hmr/console.db)")

	root.AddCommand(
		newNewCmd(),
		newOpenCmd(),
		newResumeCmd(),
		newDraftsCmd(),
		newSetCmd(),
		newFillCmd(),
		newShowCmd(),
		newCheckCmd(),
		newSubmitCmd(),
		newCancelCmd(),
		newOrgsCmd(),
		newUploadImageCmd(),
		newUploadDocCmd(),
		newStatusCmd(),
		newDeleteCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag, the environment, or
// the default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		cfg, err := config.Load()
		if err == nil && cfg.DBPath != "" {
			path = cfg.DBPath
		}
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAPIClient creates a client for the persistence API.
func newAPIClient() *api.Client {
	return api.New(getServerURL(), getAPIKey())
}

// withEditor opens the database, builds an editor over the configured
// clients, and resumes the current draft if one is selected.
func withEditor(resume bool, fn func(*editor.Editor) error) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	drafts := draft.NewRepository(database)
	uploads := upload.New(cfg.UploadBaseURL, getAPIKey())
	ed := editor.New(newAPIClient(), uploads, drafts, slog.Default())

	if resume {
		current := getCurrentDraft()
		if current == "" {
			return fmt.Errorf("no record is being edited; run 'hmr new' or 'hmr open <id>' first")
		}
		if _, err := ed.Resume(current); err != nil {
			return err
		}
	}

	return fn(ed)
}

// draftRepository builds the draft repository over an open database.
func draftRepository(database *sql.DB) *draft.Repository {
	return draft.NewRepository(database)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
