package switrs

import (
	"io"

	"github.com/nao1215/switrs/domain/record"
)

// FileType represents the format of a record file, ignoring compression
type FileType int

const (
	// FileTypeText is the comma-delimited .txt export of the SWITRS portal
	FileTypeText FileType = iota
	// FileTypeCSV is a comma-separated file
	FileTypeCSV
	// FileTypeTSV is a tab-separated file
	FileTypeTSV
	// FileTypeParquet is an Apache Parquet file with one column per header
	FileTypeParquet
	// FileTypeXLSX is an Excel workbook; only the first sheet is read
	FileTypeXLSX
	// FileTypeUnsupported is any other extension
	FileTypeUnsupported
)

// Record file extensions, matched case-insensitively
const (
	extTXT     = ".txt"
	extCSV     = ".csv"
	extTSV     = ".tsv"
	extParquet = ".parquet"
	extXLSX    = ".xlsx"

	extGZ   = ".gz"
	extBZ2  = ".bz2"
	extXZ   = ".xz"
	extZSTD = ".zst"
)

// String returns the format name used in log fields.
func (ft FileType) String() string {
	switch ft {
	case FileTypeText:
		return "text"
	case FileTypeCSV:
		return "csv"
	case FileTypeTSV:
		return "tsv"
	case FileTypeParquet:
		return "parquet"
	case FileTypeXLSX:
		return "xlsx"
	default:
		return "unsupported"
	}
}

// isDelimited reports whether the format is read with encoding/csv.
func (ft FileType) isDelimited() bool {
	return ft == FileTypeText || ft == FileTypeCSV || ft == FileTypeTSV
}

// delimiter returns the field separator of a delimited format.
func (ft FileType) delimiter() rune {
	if ft == FileTypeTSV {
		return tsvDelimiter
	}
	return csvDelimiter
}

// inputFile is one record file queued for loading
type inputFile struct {
	path        string
	kind        record.Kind
	fileType    FileType
	compression CompressionType
}

// newInputFile creates an inputFile, detecting format and compression from the path
func newInputFile(path string, kind record.Kind) *inputFile {
	return &inputFile{
		path:        path,
		kind:        kind,
		fileType:    baseFileType(path),
		compression: detectCompression(path),
	}
}

// isCompressed reports whether the file needs a decoder
func (f *inputFile) isCompressed() bool {
	return f.compression != CompressionNone
}

// open returns the decompressed contents of the file
func (f *inputFile) open() (io.ReadCloser, error) {
	return openDecoded(f.path)
}

// supportedFileExtPatterns returns every accepted extension, compressed variants included
func supportedFileExtPatterns() []string {
	bases := []string{extTXT, extCSV, extTSV, extParquet, extXLSX}
	compressions := []string{"", extGZ, extBZ2, extXZ, extZSTD}

	patterns := make([]string, 0, len(bases)*len(compressions))
	for _, base := range bases {
		for _, comp := range compressions {
			patterns = append(patterns, base+comp)
		}
	}
	return patterns
}

// isSupportedFile reports whether the path has a supported extension
func isSupportedFile(path string) bool {
	return baseFileType(path) != FileTypeUnsupported
}
