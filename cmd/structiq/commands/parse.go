package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// parse [path]: extract a structured receipt from a file, or from
// stdin when no path is given.
func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [path]",
		Short: "Extract a structured receipt from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				rec any
				err error
			)
			if len(args) == 1 {
				rec, _, err = appCtx.processor.ProcessFile(ctx, args[0])
			} else {
				text, readErr := io.ReadAll(cmd.InOrStdin())
				if readErr != nil {
					return readErr
				}
				rec, _, err = appCtx.processor.ProcessText(ctx, "stdin", string(text))
			}
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
