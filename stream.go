package switrs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/switrs/domain/model"
)

// rowChunk is a batch of raw data rows read from one record file
type rowChunk struct {
	rows []model.Record
	// lines holds the 1-based source line of each row, the header being line 1
	lines []int
}

// headerProcessor receives the header row before any data row is read
type headerProcessor func(header model.Header) error

// chunkProcessor is a function type for processing row chunks
type chunkProcessor func(chunk *rowChunk) error

// streamingParser reads a decompressed record file in chunks of rows
type streamingParser struct {
	fileType  FileType
	chunkSize ChunkSize
	mode      ParseErrorMode
}

// newStreamingParser creates a new streaming parser
func newStreamingParser(fileType FileType, chunkSize int, mode ParseErrorMode) *streamingParser {
	return &streamingParser{
		fileType:  fileType,
		chunkSize: NewChunkSize(chunkSize),
		mode:      mode,
	}
}

// ProcessInChunks reads the header row, hands it to onHeader and then hands
// the data rows to processor in chunks. It returns ErrEmptyData when the
// input has no header row. ctx is checked before every chunk.
func (p *streamingParser) ProcessInChunks(ctx context.Context, reader io.Reader, onHeader headerProcessor, processor chunkProcessor) error {
	switch {
	case p.fileType.isDelimited():
		return p.processDelimitedInChunks(ctx, reader, onHeader, processor)
	case p.fileType == FileTypeParquet:
		return p.processParquetInChunks(ctx, reader, onHeader, processor)
	case p.fileType == FileTypeXLSX:
		return p.processXLSXInChunks(ctx, reader, onHeader, processor)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, p.fileType)
	}
}

// processDelimitedInChunks processes .txt, CSV or TSV data in chunks
func (p *streamingParser) processDelimitedInChunks(ctx context.Context, reader io.Reader, onHeader headerProcessor, processor chunkProcessor) error {
	br := bufio.NewReader(reader)
	if err := skipBOM(br); err != nil {
		return fmt.Errorf("failed to read %s header: %w", p.fileType, err)
	}

	csvReader := csv.NewReader(newTextReader(br, p.mode))
	csvReader.Comma = p.fileType.delimiter()
	// Short rows are padded by the row parser
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	headerRecord, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyData
		}
		return fmt.Errorf("failed to read %s header: %w", p.fileType, err)
	}
	if err := p.checkEncoding(csvReader, headerRecord); err != nil {
		return err
	}
	if isBlankHeader(headerRecord) {
		return ErrEmptyData
	}
	if err := onHeader(model.NewHeader(headerRecord)); err != nil {
		return err
	}

	buf := newChunkBuffer(ctx, p.chunkSize.Int(), processor)
	for {
		rec, err := csvReader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("failed to read %s record: %w", p.fileType, err)
		}
		if err := p.checkEncoding(csvReader, rec); err != nil {
			return err
		}
		line, _ := csvReader.FieldPos(0)
		if err := buf.add(model.NewRecord(rec), line); err != nil {
			return err
		}
	}
	return buf.flush()
}

// checkEncoding rejects invalid UTF-8 in strict mode
func (p *streamingParser) checkEncoding(csvReader *csv.Reader, fields []string) error {
	if p.mode != ParseErrorStrict {
		return nil
	}
	idx := checkUTF8(fields)
	if idx < 0 {
		return nil
	}
	line, column := csvReader.FieldPos(idx)
	return fmt.Errorf("%w: line %d, column %d", ErrInvalidUTF8, line, column)
}

// processParquetInChunks processes Parquet data in chunks. Every value is
// rendered to the string form the SWITRS text export would carry.
func (p *streamingParser) processParquetInChunks(ctx context.Context, reader io.Reader, onHeader headerProcessor, processor chunkProcessor) error {
	// Parquet requires random access
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create parquet reader from bytes: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return fmt.Errorf("failed to create arrow reader: %w", err)
	}

	table, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}
	defer table.Release()

	schema := table.Schema()
	headerRow := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		headerRow[i] = field.Name
	}
	if isBlankHeader(headerRow) {
		return ErrEmptyData
	}
	if err := onHeader(model.NewHeader(headerRow)); err != nil {
		return err
	}

	tableReader := array.NewTableReader(table, int64(p.chunkSize.Int()))
	defer tableReader.Release()

	buf := newChunkBuffer(ctx, p.chunkSize.Int(), processor)
	line := 1
	for tableReader.Next() {
		batch := tableReader.Record()
		for i := range int(batch.NumRows()) {
			row := make(model.Record, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = extractValueFromArrowArray(col, i)
			}
			line++
			if err := buf.add(row, line); err != nil {
				return err
			}
		}
	}
	if err := tableReader.Err(); err != nil {
		return fmt.Errorf("error reading table records: %w", err)
	}
	return buf.flush()
}

// extractValueFromArrowArray renders one Arrow cell as record text.
// Nulls become "" and booleans become the Y/N flags of the text export.
func extractValueFromArrowArray(col arrow.Array, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch arr := col.(type) {
	case *array.String:
		return arr.Value(i)
	case *array.LargeString:
		return arr.Value(i)
	case *array.Boolean:
		if arr.Value(i) {
			return "Y"
		}
		return "N"
	case *array.Int8:
		return strconv.FormatInt(int64(arr.Value(i)), 10)
	case *array.Int16:
		return strconv.FormatInt(int64(arr.Value(i)), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(arr.Value(i)), 10)
	case *array.Int64:
		return strconv.FormatInt(arr.Value(i), 10)
	case *array.Uint8:
		return strconv.FormatUint(uint64(arr.Value(i)), 10)
	case *array.Uint16:
		return strconv.FormatUint(uint64(arr.Value(i)), 10)
	case *array.Uint32:
		return strconv.FormatUint(uint64(arr.Value(i)), 10)
	case *array.Uint64:
		return strconv.FormatUint(arr.Value(i), 10)
	case *array.Float32:
		return strconv.FormatFloat(float64(arr.Value(i)), 'f', -1, 32)
	case *array.Float64:
		return strconv.FormatFloat(arr.Value(i), 'f', -1, 64)
	default:
		return col.ValueStr(i)
	}
}

// processXLSXInChunks processes the first sheet of an XLSX workbook in chunks.
// Leading empty rows are skipped; the first non-empty row is the header.
func (p *streamingParser) processXLSXInChunks(ctx context.Context, reader io.Reader, onHeader headerProcessor, processor chunkProcessor) error {
	xlsxFile, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return ErrEmptyData
	}

	sheetName := sheetNames[0]
	iter, err := xlsxFile.Rows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to open rows iterator for sheet %s: %w", sheetName, err)
	}
	defer iter.Close()

	var (
		buf    = newChunkBuffer(ctx, p.chunkSize.Int(), processor)
		first  = true
		rowNum int
	)
	for iter.Next() {
		rowNum++
		row, err := iter.Columns()
		if err != nil {
			return fmt.Errorf("failed to read row %d in sheet %s: %w", rowNum, sheetName, err)
		}

		if first {
			if isBlankHeader(row) {
				continue
			}
			if err := onHeader(model.NewHeader(row)); err != nil {
				return err
			}
			first = false
			continue
		}
		if err := buf.add(model.NewRecord(row), rowNum); err != nil {
			return err
		}
	}
	if err := iter.Error(); err != nil {
		return fmt.Errorf("failed to iterate sheet %s: %w", sheetName, err)
	}
	if first {
		return ErrEmptyData
	}
	return buf.flush()
}

// chunkBuffer collects rows and hands them to a chunkProcessor once full
type chunkBuffer struct {
	ctx       context.Context
	size      int
	processor chunkProcessor
	rows      []model.Record
	lines     []int
}

func newChunkBuffer(ctx context.Context, size int, processor chunkProcessor) *chunkBuffer {
	return &chunkBuffer{
		ctx:       ctx,
		size:      size,
		processor: processor,
		rows:      make([]model.Record, 0, size),
		lines:     make([]int, 0, size),
	}
}

// add appends a row and flushes when the chunk is full
func (b *chunkBuffer) add(row model.Record, line int) error {
	b.rows = append(b.rows, row)
	b.lines = append(b.lines, line)
	if len(b.rows) >= b.size {
		return b.flush()
	}
	return nil
}

// flush hands buffered rows to the processor
func (b *chunkBuffer) flush() error {
	if len(b.rows) == 0 {
		return nil
	}
	if err := b.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrContextCancelled, err)
	}

	chunk := &rowChunk{rows: b.rows, lines: b.lines}
	b.rows = make([]model.Record, 0, b.size)
	b.lines = make([]int, 0, b.size)
	return b.processor(chunk)
}
