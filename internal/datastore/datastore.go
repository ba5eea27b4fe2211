package datastore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/common"
	"github.com/OnteruYallaiah21/StrcuctIq/internal/entity"
)

const (
	rawDir     = "raw"
	curatedDir = "curated"
)

// Store mirrors each processed receipt onto disk: the raw structured
// record as the parser produced it, and the curated normalized receipt.
// The database stays the source of truth, these files exist for ad-hoc
// inspection and reprocessing.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	for _, sub := range []string{rawDir, curatedDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, common.WrapError(err, "create data directory")
		}
	}
	return &Store{dir: dir, logger: logger}, nil
}

// SaveRaw writes the parser output for a job before normalization.
func (s *Store) SaveRaw(jobID uuid.UUID, record any) error {
	return s.write(filepath.Join(rawDir, jobID.String()+".json"), record)
}

// SaveCurated writes the normalized receipt keyed by receipt ID.
func (s *Store) SaveCurated(rec *entity.Receipt) error {
	return s.write(filepath.Join(curatedDir, rec.ID.String()+".json"), rec)
}

// LoadCurated reads back a curated snapshot.
func (s *Store) LoadCurated(id uuid.UUID) (*entity.Receipt, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, curatedDir, id.String()+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewAppError("SNAPSHOT_NOT_FOUND", "no curated snapshot", common.ErrNotFound)
		}
		return nil, common.WrapError(err, "read curated snapshot")
	}
	var rec entity.Receipt
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, common.WrapError(err, "decode curated snapshot")
	}
	return &rec, nil
}

// ListCurated returns the receipt ids with a curated snapshot on disk.
func (s *Store) ListCurated() ([]uuid.UUID, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, curatedDir))
	if err != nil {
		return nil, common.WrapError(err, "list curated snapshots")
	}
	var ids []uuid.UUID
	for _, e := range entries {
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		id, err := uuid.Parse(name[:len(name)-len(".json")])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Stats summarizes what the store holds.
type Stats struct {
	RawCount     int   `json:"raw_count"`
	CuratedCount int   `json:"curated_count"`
	Bytes        int64 `json:"bytes"`
}

func (s *Store) Stats() (Stats, error) {
	var st Stats
	for _, sub := range []string{rawDir, curatedDir} {
		entries, err := os.ReadDir(filepath.Join(s.dir, sub))
		if err != nil {
			return Stats{}, common.WrapError(err, "stat data directory")
		}
		for _, e := range entries {
			info, err := e.Info()
			if err != nil {
				continue
			}
			st.Bytes += info.Size()
			if sub == rawDir {
				st.RawCount++
			} else {
				st.CuratedCount++
			}
		}
	}
	return st, nil
}

func (s *Store) write(rel string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return common.WrapError(err, "encode snapshot")
	}
	path := filepath.Join(s.dir, rel)
	tmp := fmt.Sprintf("%s.tmp", path)
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return common.WrapError(err, "write snapshot")
	}
	if err := os.Rename(tmp, path); err != nil {
		return common.WrapError(err, "finalize snapshot")
	}
	s.logger.Debug("snapshot written", "path", path, "bytes", len(b))
	return nil
}
