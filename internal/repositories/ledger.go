package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/akosachev/panelshop/internal/logger"
	"github.com/akosachev/panelshop/internal/models"
)

// LedgerRepository is the durable store for users, offers and reconciliation
// records. The whole state is one JSON document; every mutation rewrites it
// atomically.
//
// A single mutex spans the entire read-modify-write of Update, so concurrent
// business operations (credit, debit, purchase bookkeeping) serialize at the
// logical level, not merely at the file write. Persistence goes through a
// temp file + fsync + rename, which means readers of the file never observe
// a partial document and a crash mid-write leaves the previous snapshot
// intact.
type LedgerRepository struct {
	path string

	mu   sync.Mutex
	snap models.Snapshot
}

// NewLedgerRepository opens the store at path. A missing file yields an empty
// snapshot; an unreadable or corrupt file is an error, never silently treated
// as empty.
func NewLedgerRepository(path string) (*LedgerRepository, error) {
	r := &LedgerRepository{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("ledger: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &r.snap); err != nil {
		return nil, fmt.Errorf("ledger: corrupt snapshot %s: %w", path, err)
	}
	return r, nil
}

// Read returns a deep copy of the current snapshot.
func (r *LedgerRepository) Read(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap.Clone(), nil
}

// Update applies mutate to a copy of the snapshot and persists the result.
// The mutex is held for the whole cycle. If mutate returns an error, nothing
// changes and the error is passed through; if persistence fails, the
// in-memory snapshot is also left unchanged, so memory and disk never
// diverge. On success the new snapshot is returned (as a copy).
func (r *LedgerRepository) Update(ctx context.Context, mutate func(*models.Snapshot) error) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snap.Clone()
	if err := mutate(&next); err != nil {
		return models.Snapshot{}, err
	}

	if err := r.persist(next); err != nil {
		logger.Log.Errorw("failed to persist ledger snapshot", "path", r.path, "error", err)
		return models.Snapshot{}, err
	}

	r.snap = next
	return next.Clone(), nil
}

// persist writes the snapshot to a temp file in the same directory, fsyncs
// it, then renames it over the live file.
func (r *LedgerRepository) persist(snap models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("ledger: marshal snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("ledger: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("ledger: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("ledger: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger: rename snapshot: %w", err)
	}
	return nil
}
