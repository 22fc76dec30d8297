package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/editor"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new property record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(false, func(ed *editor.Editor) error {
				id := ed.NewDraft()
				if err := setCurrentDraft(id); err != nil {
					return err
				}
				if isJSON() {
					return printJSON(map[string]string{"draft": id})
				}
				fmt.Printf("Started draft %s\n", id)
				return nil
			})
		},
	}
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open an existing property for editing",
		Long:  "Fetch a property and the organization directory from the backend, normalize the record, and start an edit session. If the fetch fails the session falls back to a local draft or a stub.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(false, func(ed *editor.Editor) error {
				rec, err := ed.Open(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := setCurrentDraft(args[0]); err != nil {
					return err
				}
				if isJSON() {
					return printJSON(rec)
				}
				fmt.Printf("Editing property %s\n", args[0])
				printRecord(rec)
				return nil
			})
		},
	}
}

func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <draft-id>",
		Short: "Resume a stored draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(false, func(ed *editor.Editor) error {
				rec, err := ed.Resume(args[0])
				if err != nil {
					return err
				}
				if err := setCurrentDraft(args[0]); err != nil {
					return err
				}
				if isJSON() {
					return printJSON(rec)
				}
				fmt.Printf("Resumed draft %s\n", args[0])
				printRecord(rec)
				return nil
			})
		},
	}
}

func newDraftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List stored drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(database)

			entries, err := draftRepository(database).List()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(entries)
			}
			if len(entries) == 0 {
				fmt.Println("No drafts.")
				return nil
			}
			for _, e := range entries {
				title := e.Record.Title
				if title == "" {
					title = "(untitled)"
				}
				fmt.Printf("%s  %s  %s\n", e.ID, e.UpdatedAt.Format("2006-01-02 15:04"), title)
			}
			return nil
		},
	}
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the current edit session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(true, func(ed *editor.Editor) error {
				if err := ed.Cancel(); err != nil {
					return err
				}
				if err := setCurrentDraft(""); err != nil {
					return err
				}
				fmt.Println("Draft discarded.")
				return nil
			})
		},
	}
}
