package async

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

type recordingQueue struct {
	jobs []Job
}

func (r *recordingQueue) Enqueue(_ context.Context, job Job) error {
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *recordingQueue) Shutdown(context.Context) {}

func TestEnqueueDir_QueuesSupportedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "scans")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.txt", "b.pdf", "notes.docx", filepath.Join("scans", "c.jpg")} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	q := &recordingQueue{}
	queued, err := EnqueueDir(context.Background(), q, dir)
	if err != nil {
		t.Fatalf("EnqueueDir: %v", err)
	}
	if queued != 3 || len(q.jobs) != 3 {
		t.Fatalf("queued = %d (%d jobs), want 3", queued, len(q.jobs))
	}

	var names []string
	for _, j := range q.jobs {
		names = append(names, filepath.Base(j.Path))
	}
	sort.Strings(names)
	want := []string{"a.txt", "b.pdf", "c.jpg"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("queued files = %v, want %v", names, want)
			break
		}
	}
}

func TestEnqueueDir_MissingDirectory(t *testing.T) {
	q := &recordingQueue{}
	if _, err := EnqueueDir(context.Background(), q, filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if len(q.jobs) != 0 {
		t.Errorf("no jobs should be queued, got %d", len(q.jobs))
	}
}
