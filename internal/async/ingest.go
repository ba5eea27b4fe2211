package async

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/OnteruYallaiah21/StrcuctIq/constants"
)

// EnqueueDir walks dir and enqueues every supported receipt file,
// returning how many were queued. Unsupported extensions are skipped
// silently.
func EnqueueDir(ctx context.Context, q Queue, dir string) (int, error) {
	queued := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := constants.FormatForExt(filepath.Ext(path)); !ok {
			return nil
		}
		queued++
		return q.Enqueue(ctx, Job{Path: path, SubmittedAt: time.Now()})
	})
	return queued, err
}
