package switrs

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nao1215/switrs/domain/record"
)

// Builder configures a Loader.
// Use NewBuilder to create a new instance, then chain method calls to configure it.
//
// The typical usage pattern is:
//
//	loader, err := switrs.NewBuilder().
//		AddCollisionPath("CollisionRecords.txt.gz").
//		AddPartyPath("PartyRecords.txt.gz").
//		AddVictimPath("VictimRecords.txt.gz").
//		SetOutputFile("switrs.sqlite3").
//		Build(ctx)
//	if err != nil {
//		return err
//	}
//	summary, err := loader.Run(ctx)
type Builder struct {
	// paths holds the record files of each kind in the order they were added
	paths      map[record.Kind][]string
	outputFile string
	chunkSize  int
	mode       ParseErrorMode
	logger     logrus.FieldLogger
	metrics    *Metrics
	manifest   bool
}

// NewBuilder creates a Builder that writes to DefaultOutputFile in chunks of
// DefaultChunkSize rows, fails on invalid UTF-8 and logs nothing.
func NewBuilder() *Builder {
	return &Builder{
		paths:      make(map[record.Kind][]string),
		outputFile: DefaultOutputFile,
		chunkSize:  DefaultChunkSize,
		mode:       ParseErrorStrict,
		logger:     discardLogger(),
	}
}

// AddPath adds a record file of the given kind. Files of one kind are loaded
// into the same table in the order they were added.
//
// Supported file extensions: .txt, .csv, .tsv, .xlsx, .parquet
// Supported compression: .gz, .bz2, .xz, .zst
//
// Returns the builder for method chaining.
func (b *Builder) AddPath(kind record.Kind, path string) *Builder {
	b.paths[kind] = append(b.paths[kind], path)
	return b
}

// AddCollisionPath adds a CollisionRecords file.
func (b *Builder) AddCollisionPath(path string) *Builder {
	return b.AddPath(record.KindCollision, path)
}

// AddPartyPath adds a PartyRecords file.
func (b *Builder) AddPartyPath(path string) *Builder {
	return b.AddPath(record.KindParty, path)
}

// AddVictimPath adds a VictimRecords file.
func (b *Builder) AddVictimPath(path string) *Builder {
	return b.AddPath(record.KindVictim, path)
}

// SetOutputFile sets the SQLite database file to write.
func (b *Builder) SetOutputFile(path string) *Builder {
	b.outputFile = path
	return b
}

// SetChunkSize sets how many rows are inserted per transaction.
func (b *Builder) SetChunkSize(size int) *Builder {
	b.chunkSize = size
	return b
}

// SetParseErrorMode sets how invalid UTF-8 in text record files is handled.
func (b *Builder) SetParseErrorMode(mode ParseErrorMode) *Builder {
	b.mode = mode
	return b
}

// SetLogger sets the logger for progress and warnings. nil restores the silent default.
func (b *Builder) SetLogger(logger logrus.FieldLogger) *Builder {
	if logger == nil {
		logger = discardLogger()
	}
	b.logger = logger
	return b
}

// SetMetrics sets the counters updated during the load.
func (b *Builder) SetMetrics(m *Metrics) *Builder {
	b.metrics = m
	return b
}

// EnableManifest makes the loader record every loaded file in the
// switrs_loads table together with its xxh3 digest.
func (b *Builder) EnableManifest() *Builder {
	b.manifest = true
	return b
}

// Build validates the configuration and returns a Loader. Every input must
// exist and have a supported extension.
func (b *Builder) Build(ctx context.Context) (*Loader, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContextCancelled, err)
	}

	v := newValidator()
	if err := v.validateChunkSize(b.chunkSize); err != nil {
		return nil, err
	}
	if err := v.validateParseErrorMode(b.mode); err != nil {
		return nil, err
	}
	if err := v.validateOutputFile(b.outputFile); err != nil {
		return nil, err
	}

	inputs := make(map[record.Kind][]*inputFile)
	count := 0
	for _, kind := range record.Kinds() {
		for _, path := range b.paths[kind] {
			if err := v.validatePath(path); err != nil {
				return nil, NewErrorContext("build", path).WithTable(kind.Schema().TableName).Error(err)
			}
			inputs[kind] = append(inputs[kind], newInputFile(path, kind))
			count++
		}
	}
	if err := v.validateInputsAvailable(count); err != nil {
		return nil, err
	}

	return &Loader{
		outputFile: b.outputFile,
		inputs:     inputs,
		chunkSize:  b.chunkSize,
		mode:       b.mode,
		logger:     b.logger,
		metrics:    b.metrics,
		manifest:   b.manifest,
		runID:      uuid.New().String(),
	}, nil
}

// discardLogger returns a logger that writes nothing
func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
