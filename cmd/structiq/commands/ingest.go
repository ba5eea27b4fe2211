package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/async"
)

// ingest <dir>: walk a directory and process every supported receipt
// file through the worker queue.
func ingestCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "ingest <dir>",
		Short: "Process every supported receipt file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			queue := async.NewProcessorQueue(appCtx.processor, appCtx.logger,
				async.WithWorkers(workers),
			)

			queued, err := async.EnqueueDir(cmd.Context(), queue, dir)
			if err != nil {
				queue.Shutdown(context.Background())
				return err
			}

			queue.Shutdown(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d files\n", queued)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "number of parallel workers")
	return cmd
}
