package switrs

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors, matched with errors.Is
var (
	// ErrEmptyData indicates that a record file has no header row
	ErrEmptyData = errors.New("switrs: empty data source")

	// ErrUnsupportedFormat indicates an unsupported file format
	ErrUnsupportedFormat = errors.New("switrs: unsupported file format")

	// ErrNoInput indicates that no record file was added to the builder
	ErrNoInput = errors.New("switrs: no input files")

	// ErrFileNotFound indicates file not found
	ErrFileNotFound = errors.New("switrs: file not found")

	// ErrInvalidParseErrorMode indicates an unknown parse error mode name
	ErrInvalidParseErrorMode = errors.New("switrs: invalid parse error mode")

	// ErrInvalidUTF8 indicates invalid UTF-8 in a text record file read in strict mode
	ErrInvalidUTF8 = errors.New("switrs: invalid UTF-8")

	// ErrInvalidChunkSize indicates a chunk size below MinChunkSize
	ErrInvalidChunkSize = errors.New("switrs: invalid chunk size")

	// ErrTableExists indicates that the output database already holds a record table
	ErrTableExists = errors.New("switrs: table already exists")

	// ErrContextCancelled indicates context was cancelled
	ErrContextCancelled = errors.New("switrs: context cancelled")
)

// ErrorContext locates a failure: the load step, the record file, the
// destination table and the line of the file.
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	// Line is the 1-based line (or row) of the record file, 0 when unknown
	Line    int
	Details string
}

// NewErrorContext starts an ErrorContext for operation on filePath
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{Operation: operation, FilePath: filePath}
}

// WithTable sets the destination table
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithLine sets the record file line
func (ec *ErrorContext) WithLine(line int) *ErrorContext {
	ec.Line = line
	return ec
}

// WithDetails sets free-form details
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error wraps cause in a *LoadError carrying a copy of the context.
func (ec *ErrorContext) Error(cause error) error {
	return &LoadError{Context: *ec, Err: cause}
}

// LoadError is returned by Builder.Build and Loader.Run for failures tied to
// a record file or table. Use errors.As to read the line of a bad row.
type LoadError struct {
	Context ErrorContext
	Err     error
}

// Error renders "switrs: <op> failed, file: ..., table: ..., line: N, details: ...: <cause>"
func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("switrs: ")
	b.WriteString(e.Context.Operation)
	b.WriteString(" failed")

	field := func(name, value string) {
		if value != "" {
			b.WriteString(", ")
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(value)
		}
	}
	field("file", e.Context.FilePath)
	field("table", e.Context.TableName)
	if e.Context.Line > 0 {
		field("line", strconv.Itoa(e.Context.Line))
	}
	field("details", e.Context.Details)

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the cause
func (e *LoadError) Unwrap() error {
	return e.Err
}
