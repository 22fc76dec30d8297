package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/editor"
)

func newUploadImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-image <file>",
		Short: "Upload an image and attach it to the current record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEditor(true, func(ed *editor.Editor) error {
				f, info, err := openAsset(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				url, err := ed.AddImage(cmd.Context(), info.Name(), info.Size(), f)
				if err != nil {
					return err
				}
				fmt.Printf("Image attached: %s\n", url)
				return nil
			})
		},
	}
}

func newUploadDocCmd() *cobra.Command {
	var slot string

	cmd := &cobra.Command{
		Use:   "upload-doc <file>",
		Short: "Upload a document and attach it to the current record",
		Long:  "Upload a document into the brochure, floorplan, or compliance slot of the current record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docSlot := editor.DocumentSlot(slot)
			switch docSlot {
			case editor.SlotBrochure, editor.SlotFloorPlan, editor.SlotCompliance:
			default:
				return fmt.Errorf("unknown document slot %q (brochure|floorplan|compliance)", slot)
			}
			return withEditor(true, func(ed *editor.Editor) error {
				f, info, err := openAsset(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				url, err := ed.AddDocument(cmd.Context(), docSlot, info.Name(), info.Size(), f)
				if err != nil {
					return err
				}
				fmt.Printf("Document attached to %s: %s\n", slot, url)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "compliance", "document slot (brochure|floorplan|compliance)")
	return cmd
}

func openAsset(path string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return f, info, nil
}
