package switrs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/switrs/domain/model"
)

// streamResult is everything a streamingParser handed to its callbacks
type streamResult struct {
	header model.Header
	rows   []model.Record
	lines  []int
	chunks int
}

func streamAll(t *testing.T, ctx context.Context, p *streamingParser, r io.Reader) (*streamResult, error) {
	t.Helper()

	res := &streamResult{}
	err := p.ProcessInChunks(ctx, r,
		func(h model.Header) error {
			res.header = h
			return nil
		},
		func(chunk *rowChunk) error {
			res.chunks++
			res.rows = append(res.rows, chunk.rows...)
			res.lines = append(res.lines, chunk.lines...)
			return nil
		})
	return res, err
}

func TestStreamingParser_Delimited(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fileType  FileType
		input     string
		chunkSize int
		header    model.Header
		rows      []model.Record
		lines     []int
		chunks    int
	}{
		{
			name:      "text export",
			fileType:  FileTypeText,
			input:     "CASE_ID,PARTY_NUMBER\n097293,1\n965874,2\n0000003,6\n",
			chunkSize: 2,
			header:    model.Header{"CASE_ID", "PARTY_NUMBER"},
			rows:      []model.Record{{"097293", "1"}, {"965874", "2"}, {"0000003", "6"}},
			lines:     []int{2, 3, 4},
			chunks:    2,
		},
		{
			name:      "byte order mark and short rows",
			fileType:  FileTypeCSV,
			input:     "\uFEFFCASE_ID,PARTY_NUMBER,VICTIM_AGE\n097293\n965874,2,998,extra\n",
			chunkSize: 10,
			header:    model.Header{"CASE_ID", "PARTY_NUMBER", "VICTIM_AGE"},
			rows:      []model.Record{{"097293"}, {"965874", "2", "998", "extra"}},
			lines:     []int{2, 3},
			chunks:    1,
		},
		{
			name:      "tab separated",
			fileType:  FileTypeTSV,
			input:     "CASE_ID\tPARTY_NUMBER\n097293\t1\n",
			chunkSize: 10,
			header:    model.Header{"CASE_ID", "PARTY_NUMBER"},
			rows:      []model.Record{{"097293", "1"}},
			lines:     []int{2},
			chunks:    1,
		},
		{
			name:      "header only",
			fileType:  FileTypeText,
			input:     "CASE_ID,PARTY_NUMBER\n",
			chunkSize: 10,
			header:    model.Header{"CASE_ID", "PARTY_NUMBER"},
			chunks:    0,
		},
		{
			name:      "lazy quotes",
			fileType:  FileTypeText,
			input:     "CASE_ID,PRIMARY_RD\n1,5TH \"A\" ST\n",
			chunkSize: 10,
			header:    model.Header{"CASE_ID", "PRIMARY_RD"},
			rows:      []model.Record{{"1", "5TH \"A\" ST"}},
			lines:     []int{2},
			chunks:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newStreamingParser(tt.fileType, tt.chunkSize, ParseErrorStrict)
			res, err := streamAll(t, context.Background(), p, strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.header, res.header)
			assert.Equal(t, tt.rows, res.rows)
			assert.Equal(t, tt.lines, res.lines)
			assert.Equal(t, tt.chunks, res.chunks)
		})
	}
}

func TestStreamingParser_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\uFEFF", "\n\n"} {
		p := newStreamingParser(FileTypeText, 10, ParseErrorStrict)
		_, err := streamAll(t, context.Background(), p, strings.NewReader(input))
		assert.ErrorIs(t, err, ErrEmptyData, "input %q", input)
	}
}

func TestStreamingParser_InvalidUTF8(t *testing.T) {
	t.Parallel()

	const input = "CASE_ID,PRIMARY_RD\n1,MAIN ST\n2,CAF\xe9 ST\n"

	t.Run("strict", func(t *testing.T) {
		t.Parallel()

		p := newStreamingParser(FileTypeText, 10, ParseErrorStrict)
		_, err := streamAll(t, context.Background(), p, strings.NewReader(input))
		require.ErrorIs(t, err, ErrInvalidUTF8)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("ignore", func(t *testing.T) {
		t.Parallel()

		p := newStreamingParser(FileTypeText, 10, ParseErrorIgnore)
		res, err := streamAll(t, context.Background(), p, strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, model.Record{"2", "CAF ST"}, res.rows[1])
	})

	t.Run("replace", func(t *testing.T) {
		t.Parallel()

		p := newStreamingParser(FileTypeText, 10, ParseErrorReplace)
		res, err := streamAll(t, context.Background(), p, strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, model.Record{"2", "CAF\uFFFD ST"}, res.rows[1])
	})
}

func TestStreamingParser_HeaderCallbackError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("bad header")
	p := newStreamingParser(FileTypeText, 10, ParseErrorStrict)
	called := false
	err := p.ProcessInChunks(context.Background(), strings.NewReader("A\n1\n"),
		func(model.Header) error { return wantErr },
		func(*rowChunk) error {
			called = true
			return nil
		})
	require.ErrorIs(t, err, wantErr)
	assert.False(t, called)
}

func TestStreamingParser_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newStreamingParser(FileTypeText, 1, ParseErrorStrict)
	_, err := streamAll(t, ctx, p, strings.NewReader("A\n1\n2\n"))
	require.ErrorIs(t, err, ErrContextCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamingParser_XLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"CASE_ID", "PARTY_NUMBER", "VICTIM_AGE"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"097293", "1", "20"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"965874", "2"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	p := newStreamingParser(FileTypeXLSX, 1, ParseErrorStrict)
	res, err := streamAll(t, context.Background(), p, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, model.Header{"CASE_ID", "PARTY_NUMBER", "VICTIM_AGE"}, res.header)
	assert.Equal(t, []model.Record{{"097293", "1", "20"}, {"965874", "2"}}, res.rows)
	assert.Equal(t, 2, res.chunks)
}

func TestStreamingParser_XLSXEmptySheet(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	p := newStreamingParser(FileTypeXLSX, 10, ParseErrorStrict)
	_, err = streamAll(t, context.Background(), p, bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrEmptyData)
}

// parquetFixture encodes a three row table with string, integer, real and boolean columns
func parquetFixture(t *testing.T) []byte {
	t.Helper()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "CASE_ID", Type: arrow.BinaryTypes.String},
		{Name: "PARTY_COUNT", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
		{Name: "LATITUDE", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "TOW_AWAY", Type: arrow.FixedWidthTypes.Boolean, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.StringBuilder).AppendValues([]string{"1", "2", "3"}, nil)
	b.Field(1).(*array.Int64Builder).AppendValues([]int64{2, 0, 7}, []bool{true, false, true})
	b.Field(2).(*array.Float64Builder).AppendValues([]float64{37.7749, 34.05, 0}, []bool{true, true, false})
	b.Field(3).(*array.BooleanBuilder).AppendValues([]bool{true, false, false}, []bool{true, true, false})

	rec := b.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, pqarrow.WriteTable(tbl, &buf, 1024, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()))
	return buf.Bytes()
}

func TestStreamingParser_Parquet(t *testing.T) {
	t.Parallel()

	p := newStreamingParser(FileTypeParquet, 2, ParseErrorStrict)
	res, err := streamAll(t, context.Background(), p, bytes.NewReader(parquetFixture(t)))
	require.NoError(t, err)

	assert.Equal(t, model.Header{"CASE_ID", "PARTY_COUNT", "LATITUDE", "TOW_AWAY"}, res.header)
	assert.Equal(t, []model.Record{
		{"1", "2", "37.7749", "Y"},
		{"2", "", "34.05", "N"},
		{"3", "7", "", ""},
	}, res.rows)
	assert.Equal(t, []int{2, 3, 4}, res.lines)
	assert.Equal(t, 2, res.chunks)
}

func TestStreamingParser_ParquetEmpty(t *testing.T) {
	t.Parallel()

	p := newStreamingParser(FileTypeParquet, 2, ParseErrorStrict)
	_, err := streamAll(t, context.Background(), p, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = streamAll(t, context.Background(), p, strings.NewReader("not parquet"))
	assert.Error(t, err)
}

func TestExtractValueFromArrowArray(t *testing.T) {
	t.Parallel()

	pool := memory.NewGoAllocator()

	ib := array.NewInt32Builder(pool)
	defer ib.Release()
	ib.Append(-12)
	ints := ib.NewInt32Array()
	defer ints.Release()
	assert.Equal(t, "-12", extractValueFromArrowArray(ints, 0))

	ub := array.NewUint16Builder(pool)
	defer ub.Release()
	ub.Append(998)
	uints := ub.NewUint16Array()
	defer uints.Release()
	assert.Equal(t, "998", extractValueFromArrowArray(uints, 0))

	fb := array.NewFloat32Builder(pool)
	defer fb.Release()
	fb.Append(1.5)
	floats := fb.NewFloat32Array()
	defer floats.Release()
	assert.Equal(t, "1.5", extractValueFromArrowArray(floats, 0))
}
