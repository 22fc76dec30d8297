package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/editor"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/property"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a field on the current record",
		Long:  "Set one field and run its derivation cascade. Dependent fields (mirrors, token price, expected ROI, unit breakdowns) update automatically.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := property.Field(args[0])
			value := strings.Join(args[1:], " ")
			return withEditor(true, func(ed *editor.Editor) error {
				changed, err := ed.Set(field, value)
				if err != nil {
					return err
				}
				if isJSON() {
					return printJSON(map[string]interface{}{"changed": changed})
				}
				names := make([]string, len(changed))
				for i, f := range changed {
					names[i] = string(f)
				}
				fmt.Printf("Updated: %s\n", strings.Join(names, ", "))
				return nil
			})
		},
	}
}

func newFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill empty fields with sample data",
		Long:  "Generate plausible values for fields that are still empty or hold their form defaults. Images, documents, organization, and status are never touched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(true, func(ed *editor.Editor) error {
				changed := ed.Fill()
				if isJSON() {
					return printJSON(map[string]interface{}{"changed": changed})
				}
				fmt.Printf("Filled %d fields.\n", len(changed))
				printRecord(ed.Record())
				return nil
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(true, func(ed *editor.Editor) error {
				rec := ed.Record()
				if isJSON() {
					return printJSON(rec)
				}
				printRecord(rec)
				return nil
			})
		},
	}
}

func newCheckCmd() *cobra.Command {
	var submission bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the current record",
		Long:  "Run the step-advance checks, or the full submission checks with --submission.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(true, func(ed *editor.Editor) error {
				var violations []string
				if submission {
					violations = ed.CheckSubmission()
				} else {
					violations = ed.CheckBasicInfo()
				}
				if isJSON() {
					return printJSON(map[string]interface{}{"violations": violations})
				}
				if len(violations) == 0 {
					fmt.Println("✓ All checks passed.")
					return nil
				}
				printViolations(violations)
				return fmt.Errorf("%d validation issues", len(violations))
			})
		},
	}

	cmd.Flags().BoolVar(&submission, "submission", false, "run the full submission checks")
	return cmd
}
