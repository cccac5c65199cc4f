package switrs

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zeebo/xxh3"
)

// manifestTable records one row per loaded record file
const manifestTable = "switrs_loads"

const createManifestStatement = "CREATE TABLE IF NOT EXISTS " + manifestTable +
	" (run_id TEXT, table_name TEXT, file TEXT, xxh3 TEXT, row_count INTEGER, loaded_at TEXT)"

const insertManifestStatement = "INSERT INTO " + manifestTable + " VALUES (?, ?, ?, ?, ?, ?)"

// ManifestEntry describes one loaded record file
type ManifestEntry struct {
	RunID     string
	TableName string
	File      string
	// Hash is the hex xxh3-128 digest of the file as stored on disk
	Hash     string
	Rows     int64
	LoadedAt time.Time
}

// hashFile returns the hex xxh3-128 digest of the file at path
func hashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return "", fmt.Errorf("failed to open %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	sum := h.Sum128().Bytes()
	return hex.EncodeToString(sum[:]), nil
}

// createManifest creates the manifest table if it is missing
func (t *loadTx) createManifest(ctx context.Context) error {
	if _, err := t.tx.ExecContext(ctx, createManifestStatement); err != nil {
		return fmt.Errorf("failed to create %s: %w", manifestTable, err)
	}
	return nil
}

// appendManifest writes one manifest row
func (t *loadTx) appendManifest(ctx context.Context, e ManifestEntry) error {
	_, err := t.tx.ExecContext(ctx, insertManifestStatement,
		e.RunID, e.TableName, e.File, e.Hash, e.Rows, e.LoadedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s entry: %w", manifestTable, err)
	}
	return nil
}

// manifestEntries returns the manifest rows of a run in load order
func (s *store) manifestEntries(ctx context.Context, runID string) ([]ManifestEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, table_name, file, xxh3, row_count, loaded_at FROM "+manifestTable+" WHERE run_id = ? ORDER BY rowid",
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", manifestTable, err)
	}
	defer rows.Close()

	var entries []ManifestEntry
	for rows.Next() {
		var (
			e        ManifestEntry
			loadedAt string
		)
		if err := rows.Scan(&e.RunID, &e.TableName, &e.File, &e.Hash, &e.Rows, &loadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", manifestTable, err)
		}
		if e.LoadedAt, err = time.Parse(time.RFC3339, loadedAt); err != nil {
			return nil, fmt.Errorf("invalid loaded_at %q: %w", loadedAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
