package switrs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/switrs/domain/record"
)

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	builder := NewBuilder()
	require.NotNil(t, builder, "NewBuilder() should not return nil")
	assert.Empty(t, builder.paths, "NewBuilder() should have no paths")
	assert.Equal(t, DefaultOutputFile, builder.outputFile)
	assert.Equal(t, DefaultChunkSize, builder.chunkSize)
	assert.Equal(t, ParseErrorStrict, builder.mode)
	assert.NotNil(t, builder.logger, "default logger should discard, not be nil")
	assert.False(t, builder.manifest)
}

func TestBuilder_AddPath(t *testing.T) {
	t.Parallel()

	t.Run("kind specific helpers", func(t *testing.T) {
		t.Parallel()

		builder := NewBuilder().
			AddCollisionPath("CollisionRecords.txt").
			AddPartyPath("PartyRecords.txt").
			AddVictimPath("VictimRecords.txt")
		assert.Equal(t, []string{"CollisionRecords.txt"}, builder.paths[record.KindCollision])
		assert.Equal(t, []string{"PartyRecords.txt"}, builder.paths[record.KindParty])
		assert.Equal(t, []string{"VictimRecords.txt"}, builder.paths[record.KindVictim])
	})

	t.Run("files of one kind keep their order", func(t *testing.T) {
		t.Parallel()

		builder := NewBuilder().
			AddPartyPath("2019.txt").
			AddPath(record.KindParty, "2020.txt.gz")
		assert.Equal(t, []string{"2019.txt", "2020.txt.gz"}, builder.paths[record.KindParty])
	})
}

func TestBuilder_SetLogger(t *testing.T) {
	t.Parallel()

	logger := logrus.New()
	builder := NewBuilder().SetLogger(logger)
	assert.Same(t, logger, builder.logger)

	builder.SetLogger(nil)
	assert.NotNil(t, builder.logger, "nil should restore the discarding logger")
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("valid inputs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		out := filepath.Join(dir, "out.sqlite3")
		loader, err := NewBuilder().
			AddCollisionPath(fixture(t, dir, "CollisionRecords.txt", "CollisionRecords.txt.gz")).
			AddVictimPath(fixture(t, dir, "VictimRecords.txt", "VictimRecords.txt")).
			SetOutputFile(out).
			SetChunkSize(10).
			SetParseErrorMode(ParseErrorIgnore).
			EnableManifest().
			Build(context.Background())
		require.NoError(t, err)

		assert.Equal(t, out, loader.outputFile)
		assert.Equal(t, 10, loader.chunkSize)
		assert.Equal(t, ParseErrorIgnore, loader.mode)
		assert.True(t, loader.manifest)
		assert.NotEmpty(t, loader.RunID())
		require.Len(t, loader.inputs[record.KindCollision], 1)
		assert.Equal(t, CompressionGZ, loader.inputs[record.KindCollision][0].compression)
		assert.Equal(t, FileTypeText, loader.inputs[record.KindCollision][0].fileType)
		assert.Empty(t, loader.inputs[record.KindParty])
	})

	t.Run("every loader gets its own run id", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		builder := NewBuilder().
			AddVictimPath(fixture(t, dir, "VictimRecords.txt", "VictimRecords.txt")).
			SetOutputFile(filepath.Join(dir, "out.sqlite3"))
		first, err := builder.Build(context.Background())
		require.NoError(t, err)
		second, err := builder.Build(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, first.RunID(), second.RunID())
	})
}

func TestBuilder_BuildErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	victims := fixture(t, dir, "VictimRecords.txt", "VictimRecords.txt")
	out := filepath.Join(dir, "out.sqlite3")

	tests := []struct {
		name    string
		builder *Builder
		wantErr error
		wantMsg string
	}{
		{
			name:    "no inputs",
			builder: NewBuilder().SetOutputFile(out),
			wantErr: ErrNoInput,
		},
		{
			name:    "unsupported extension",
			builder: NewBuilder().AddVictimPath(filepath.Join(dir, "victims.json")).SetOutputFile(out),
			wantErr: ErrUnsupportedFormat,
			wantMsg: "table: victims",
		},
		{
			name:    "missing file",
			builder: NewBuilder().AddPartyPath(filepath.Join(dir, "missing.txt")).SetOutputFile(out),
			wantErr: ErrFileNotFound,
			wantMsg: "table: parties",
		},
		{
			name:    "zero chunk size",
			builder: NewBuilder().AddVictimPath(victims).SetOutputFile(out).SetChunkSize(0),
			wantErr: ErrInvalidChunkSize,
		},
		{
			name:    "undeclared parse error mode",
			builder: NewBuilder().AddVictimPath(victims).SetOutputFile(out).SetParseErrorMode(ParseErrorMode(42)),
			wantErr: ErrInvalidParseErrorMode,
		},
		{
			name:    "missing output directory",
			builder: NewBuilder().AddVictimPath(victims).SetOutputFile(filepath.Join(dir, "nope", "out.sqlite3")),
			wantMsg: "output directory does not exist",
		},
		{
			name:    "output is a directory",
			builder: NewBuilder().AddVictimPath(victims).SetOutputFile(dir),
			wantMsg: "is a directory",
		},
		{
			name:    "empty path",
			builder: NewBuilder().AddVictimPath("  ").SetOutputFile(out),
			wantMsg: "path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := tt.builder.Build(context.Background())
			require.Error(t, err)
			assert.Nil(t, loader)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestBuilder_BuildCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder().AddVictimPath("VictimRecords.txt").Build(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContextCancelled)
	assert.True(t, errors.Is(err, context.Canceled))
}
