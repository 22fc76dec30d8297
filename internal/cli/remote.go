package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrgsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "orgs",
		Short: "List organizations from the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orgs, err := newAPIClient().ListOrganizations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(orgs)
			}
			for _, org := range orgs {
				fmt.Printf("%-36s  %-10s  %s\n", org.ID, org.DisplayCode, org.Name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum entries to fetch")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a property's workflow status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newAPIClient().UpdatePropertyStatus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Property %s is now %s.\n", args[0], args[1])
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			if err := newAPIClient().DeleteProperty(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Property %s deleted.\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
