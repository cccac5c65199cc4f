package switrs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nao1215/switrs/domain/model"
	"github.com/nao1215/switrs/domain/record"
)

// parsedChunk is a chunk of rows ready for insertion
type parsedChunk struct {
	values [][]any
}

// Loader loads SWITRS record files into a SQLite database.
// Create one with Builder.Build.
type Loader struct {
	outputFile string
	inputs     map[record.Kind][]*inputFile
	chunkSize  int
	mode       ParseErrorMode
	logger     logrus.FieldLogger
	metrics    *Metrics
	manifest   bool
	runID      string
}

// RunID returns the identifier written to log lines and manifest rows
func (l *Loader) RunID() string {
	return l.runID
}

// TableSummary reports what was loaded into one table
type TableSummary struct {
	Table        string
	Files        int
	SkippedFiles int
	Rows         int64
}

// Summary reports the outcome of Loader.Run
type Summary struct {
	RunID      string
	OutputFile string
	Tables     []TableSummary
	// Manifest holds the switrs_loads rows of this run when the manifest is enabled
	Manifest []ManifestEntry
	Duration time.Duration
}

// Rows returns the number of rows loaded into table
func (s *Summary) Rows(table string) int64 {
	for _, t := range s.Tables {
		if t.Table == table {
			return t.Rows
		}
	}
	return 0
}

// Run loads collisions, then parties, then victims. For every record type with
// input files it creates the table once and appends each file's rows in
// chunks. The whole run is one transaction: when any file fails, no table or
// row of the run is left in the output file.
func (l *Loader) Run(ctx context.Context) (summary *Summary, err error) {
	start := time.Now()
	log := l.logger.WithField("run_id", l.runID)

	st, err := openStore(ctx, l.outputFile)
	if err != nil {
		return nil, NewErrorContext("open", l.outputFile).Error(err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close database: %w", closeErr))
		}
	}()

	tx, err := st.begin(ctx)
	if err != nil {
		return nil, NewErrorContext("begin", l.outputFile).Error(err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.rollback())
		}
	}()

	if l.manifest {
		if err := tx.createManifest(ctx); err != nil {
			return nil, err
		}
	}

	summary = &Summary{RunID: l.runID, OutputFile: l.outputFile}
	for _, kind := range record.Kinds() {
		files := l.inputs[kind]
		if len(files) == 0 {
			continue
		}

		schema := kind.Schema()
		if err := tx.createTable(ctx, schema); err != nil {
			return nil, NewErrorContext("create table", l.outputFile).WithTable(schema.TableName).Error(err)
		}

		ts := TableSummary{Table: schema.TableName}
		for _, f := range files {
			rows, err := l.loadFile(ctx, tx, schema, f)
			if errors.Is(err, ErrEmptyData) {
				log.WithFields(logrus.Fields{"table": schema.TableName, "file": f.path}).
					Warn("skipping record file without a header row")
				ts.SkippedFiles++
				continue
			}
			if err != nil {
				return nil, err
			}
			ts.Files++
			ts.Rows += rows
		}
		summary.Tables = append(summary.Tables, ts)
		log.WithFields(logrus.Fields{"table": ts.Table, "files": ts.Files, "rows": ts.Rows}).Info("table loaded")
	}

	if err := tx.commit(); err != nil {
		return nil, NewErrorContext("commit", l.outputFile).Error(err)
	}

	if l.manifest {
		if summary.Manifest, err = st.manifestEntries(ctx, l.runID); err != nil {
			return nil, NewErrorContext("manifest", l.outputFile).Error(err)
		}
	}

	summary.Duration = time.Since(start)
	if err := l.metrics.Push(ctx); err != nil {
		log.WithError(err).Warn("failed to push metrics")
	}
	return summary, nil
}

// loadFile streams one record file into its table. One goroutine reads and
// parses chunks while another inserts them.
func (l *Loader) loadFile(ctx context.Context, tx *loadTx, schema *model.RecordSchema, f *inputFile) (int64, error) {
	log := l.logger.WithFields(logrus.Fields{
		"run_id": l.runID,
		"table":  schema.TableName,
		"file":   f.path,
	})
	fields := logrus.Fields{"format": f.fileType}
	if f.isCompressed() {
		fields["compression"] = f.compression
	}
	log.WithFields(fields).Debug("loading record file")

	reader, err := f.open()
	if err != nil {
		return 0, NewErrorContext("open", f.path).WithTable(schema.TableName).Error(err)
	}
	defer func() {
		_ = reader.Close() // read-only handle
	}()

	stmt, err := tx.prepareInsert(ctx, schema.InsertStatement())
	if err != nil {
		return 0, NewErrorContext("load", f.path).WithTable(schema.TableName).Error(err)
	}
	defer stmt.Close()

	parser := model.NewParser(schema)
	sp := newStreamingParser(f.fileType, l.chunkSize, l.mode)

	g, gctx := errgroup.WithContext(ctx)
	chunks := make(chan parsedChunk, 2)
	// failedLine is written by the reader goroutine and read after Wait
	var failedLine int

	g.Go(func() error {
		defer close(chunks)
		return sp.ProcessInChunks(gctx, reader,
			func(header model.Header) error {
				_, err := parser.Resolve(header)
				return err
			},
			func(chunk *rowChunk) error {
				values := make([][]any, 0, len(chunk.rows))
				for i, row := range chunk.rows {
					parsed, err := parser.ParseRow(row)
					if err != nil {
						failedLine = chunk.lines[i]
						return err
					}
					values = append(values, parsed)
				}
				l.metrics.addParsed(schema.TableName, len(values))

				select {
				case chunks <- parsedChunk{values: values}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
	})

	var (
		total int64
		// failedChunk is the 1-based chunk whose insert failed, 0 if none did
		failedChunk int
	)
	g.Go(func() error {
		seq := 0
		for chunk := range chunks {
			seq++
			n, err := tx.insertChunk(gctx, stmt, chunk.values)
			total += n
			if err != nil {
				failedChunk = seq
				return err
			}
			l.metrics.addInserted(schema.TableName, n)
			log.WithField("rows", total).Debug("chunk inserted")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrEmptyData) {
			return 0, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ErrContextCancelled) {
			err = fmt.Errorf("%w: %w", ErrContextCancelled, ctxErr)
		}
		ec := NewErrorContext("load", f.path).WithTable(schema.TableName).WithLine(failedLine)
		if failedChunk > 0 {
			ec.WithDetails(fmt.Sprintf("insert of chunk %d", failedChunk))
		}
		return total, ec.Error(err)
	}

	if l.manifest {
		if err := l.recordManifest(ctx, tx, schema.TableName, f.path, total); err != nil {
			return total, err
		}
	}
	l.metrics.fileLoaded(schema.TableName)
	log.WithField("rows", total).Info("record file loaded")
	return total, nil
}

// recordManifest appends the manifest row of a loaded file
func (l *Loader) recordManifest(ctx context.Context, tx *loadTx, table, path string, rows int64) error {
	hash, err := hashFile(path)
	if err != nil {
		return NewErrorContext("manifest", path).WithTable(table).Error(err)
	}
	return tx.appendManifest(ctx, ManifestEntry{
		RunID:     l.runID,
		TableName: table,
		File:      path,
		Hash:      hash,
		Rows:      rows,
		LoadedAt:  time.Now(),
	})
}
