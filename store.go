package switrs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/nao1215/switrs/domain/model"
)

// sqliteDriverName is the database/sql name modernc.org/sqlite registers
const sqliteDriverName = "sqlite"

// store writes parsed records into a SQLite database file
type store struct {
	db *sql.DB
}

// openStore opens (creating if needed) the SQLite file at path
func openStore(ctx context.Context, path string) (*store, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// SQLite has a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = NORMAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database %s: %w", path, err)
	}
	return &store{db: db}, nil
}

// Close closes the database
func (s *store) Close() error {
	return s.db.Close()
}

// begin starts the transaction that holds every write of a load run
func (s *store) begin(ctx context.Context) (*loadTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &loadTx{tx: tx}, nil
}

// loadTx is the transaction of one load run. Nothing it writes is visible
// in the output file until commit; a failed run leaves the file unchanged.
type loadTx struct {
	tx *sql.Tx
}

// commit makes the run's tables and rows permanent
func (t *loadTx) commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	return nil
}

// rollback discards the run. A transaction already ended by a cancelled
// context is not an error.
func (t *loadTx) rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to roll back load: %w", err)
	}
	return nil
}

// tableExists reports whether the database already holds the table
func (t *loadTx) tableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`,
		name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table existence: %w", err)
	}
	return count > 0, nil
}

// createTable executes the schema's CREATE TABLE statement.
// It fails with ErrTableExists when the table is already present.
func (t *loadTx) createTable(ctx context.Context, schema *model.RecordSchema) error {
	exists, err := t.tableExists(ctx, schema.TableName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrTableExists, schema.TableName)
	}
	if _, err := t.tx.ExecContext(ctx, schema.CreateTableStatement()); err != nil {
		return fmt.Errorf("failed to create table %s: %w", schema.TableName, err)
	}
	return nil
}

// prepareInsert prepares the INSERT statement of a table
func (t *loadTx) prepareInsert(ctx context.Context, query string) (*sql.Stmt, error) {
	stmt, err := t.tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	return stmt, nil
}

// insertChunk executes stmt once per row and returns the number of rows written
func (t *loadTx) insertChunk(ctx context.Context, stmt *sql.Stmt, rows [][]any) (int64, error) {
	var n int64
	for _, values := range rows {
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return n, fmt.Errorf("failed to insert record: %w", err)
		}
		n++
	}
	return n, nil
}
