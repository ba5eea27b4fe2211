package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// export: write stored receipts to an XLSX workbook.
func exportCmd() *cobra.Command {
	var (
		out     string
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored receipts to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var from, to *time.Time
			if fromStr != "" {
				t, err := time.Parse("2006-01-02", fromStr)
				if err != nil {
					return fmt.Errorf("invalid --from date, use YYYY-MM-DD: %w", err)
				}
				from = &t
			}
			if toStr != "" {
				t, err := time.Parse("2006-01-02", toStr)
				if err != nil {
					return fmt.Errorf("invalid --to date, use YYYY-MM-DD: %w", err)
				}
				to = &t
			}

			xlsx, err := appCtx.exporter.ExportReceiptsXLSX(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, xlsx, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "receipts.xlsx", "output file path")
	cmd.Flags().StringVar(&fromStr, "from", "", "from date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "to date YYYY-MM-DD (inclusive)")
	return cmd
}
