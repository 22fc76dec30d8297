package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/api"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/editor"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Submit the current record to the backend",
		Long:  "Validate the record and create or update the property. Submission is all-or-nothing: any validation issue blocks it, and a failed call leaves the draft intact for retry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(true, func(ed *editor.Editor) error {
				persisted, err := ed.Submit(cmd.Context())

				var valErr *property.ValidationError
				if errors.As(err, &valErr) {
					printViolations(valErr.Violations)
					return fmt.Errorf("submission blocked by %d validation issues", len(valErr.Violations))
				}

				var perErr *api.PersistenceError
				if errors.As(err, &perErr) {
					if perErr.Unreachable() {
						fmt.Println("The backend could not be reached; your draft is unchanged. Retry with 'hmr submit'.")
					} else if perErr.Rejected() {
						fmt.Println("The backend rejected the submission; your draft is unchanged.")
					}
					return err
				}
				if err != nil {
					return err
				}

				if err := setCurrentDraft(""); err != nil {
					return err
				}
				if isJSON() {
					return printJSON(persisted)
				}
				fmt.Printf("✓ Property submitted (id %s).\n", persisted.ID)
				return nil
			})
		},
	}
}
