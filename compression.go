package switrs

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// CompressionType is the compression applied to a record file.
type CompressionType int

const (
	// CompressionNone means the file is read as is
	CompressionNone CompressionType = iota
	// CompressionGZ is gzip, the format the SWITRS portal ships
	CompressionGZ
	// CompressionBZ2 is bzip2
	CompressionBZ2
	// CompressionXZ is xz
	CompressionXZ
	// CompressionZSTD is zstandard
	CompressionZSTD
)

// decoder wraps a compressed stream. Close releases the decoder, not src.
type decoder func(src io.Reader) (io.ReadCloser, error)

// codec describes one supported compression
type codec struct {
	name   string
	ext    string
	decode decoder
}

// codecs is indexed by CompressionType
var codecs = map[CompressionType]codec{
	CompressionNone: {name: "none", decode: func(src io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(src), nil
	}},
	CompressionGZ: {name: "gzip", ext: extGZ, decode: func(src io.Reader) (io.ReadCloser, error) {
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	}},
	CompressionBZ2: {name: "bzip2", ext: extBZ2, decode: func(src io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(bzip2.NewReader(src)), nil
	}},
	CompressionXZ: {name: "xz", ext: extXZ, decode: func(src io.Reader) (io.ReadCloser, error) {
		r, err := xz.NewReader(src)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	}},
	CompressionZSTD: {name: "zstd", ext: extZSTD, decode: func(src io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}},
}

// compressedExts lists the extensions detectCompression looks for, in match order
var compressedExts = []CompressionType{CompressionGZ, CompressionBZ2, CompressionXZ, CompressionZSTD}

// Extension returns the file extension for the compression type, or "" for none.
func (c CompressionType) Extension() string {
	return codecs[c].ext
}

// String returns the compression name.
func (c CompressionType) String() string {
	if cd, ok := codecs[c]; ok {
		return cd.name
	}
	return fmt.Sprintf("compression(%d)", int(c))
}

// NewReader returns a decompressing reader over src. Closing it releases the
// decoder only.
func (c CompressionType) NewReader(src io.Reader) (io.ReadCloser, error) {
	cd, ok := codecs[c]
	if !ok {
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupportedFormat, int(c))
	}
	r, err := cd.decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s reader: %w", cd.name, err)
	}
	return r, nil
}

// detectCompression returns the compression named by the path's last extension
func detectCompression(path string) CompressionType {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range compressedExts {
		if ext == codecs[c].ext {
			return c
		}
	}
	return CompressionNone
}

// trimCompressionExt strips a trailing compression extension
func trimCompressionExt(path string) string {
	if detectCompression(path) == CompressionNone {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// baseFileType returns the record file format hidden behind any compression extension
func baseFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(trimCompressionExt(path))) {
	case extTXT:
		return FileTypeText
	case extCSV:
		return FileTypeCSV
	case extTSV:
		return FileTypeTSV
	case extParquet:
		return FileTypeParquet
	case extXLSX:
		return FileTypeXLSX
	default:
		return FileTypeUnsupported
	}
}

// decodedFile is an open record file behind its decoder
type decodedFile struct {
	io.ReadCloser
	file *os.File
}

// Close releases the decoder and then the file
func (d *decodedFile) Close() error {
	return errors.Join(d.ReadCloser.Close(), d.file.Close())
}

// openDecoded opens path and decompresses it according to its extension.
func openDecoded(path string) (io.ReadCloser, error) {
	file, err := os.Open(path) //nolint:gosec // record files are user-provided
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r, err := detectCompression(path).NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &decodedFile{ReadCloser: r, file: file}, nil
}
