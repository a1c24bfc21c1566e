package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teamboard/internal/app"
	"teamboard/internal/usecase"
)

// newSnapshotCommand creates the snapshot command and its subcommands.
func newSnapshotCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Exchange the task collection with an external store",
		Long: `Export the in-memory task collection as a YAML snapshot, or load
one produced by a previous export. Persistence itself is the external
store's job; teamboard only produces and consumes the snapshots.`,
	}

	cmd.AddCommand(
		newSnapshotExportCommand(c),
		newSnapshotImportCommand(c),
	)

	return cmd
}

// newSnapshotExportCommand creates the snapshot export subcommand.
func newSnapshotExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as a YAML snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportSnapshotUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportSnapshotInput{})
			if err != nil {
				return err
			}

			if output == "" {
				_, _ = cmd.OutOrStdout().Write(out.Content)
				return nil
			}
			if err := os.WriteFile(output, out.Content, 0o600); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", out.Count, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write snapshot to file (default: stdout)")

	return cmd
}

// newSnapshotImportCommand creates the snapshot import subcommand.
func newSnapshotImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load tasks from a YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			uc := c.ImportSnapshotUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportSnapshotInput{Content: content})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s)\n", out.Count)
			return nil
		},
	}
}
