package switrs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// utf8BOM is the byte-order mark some exports put before the header row
const utf8BOM = "\uFEFF"

// ParseErrorMode selects how invalid UTF-8 in text record files is handled
type ParseErrorMode int

const (
	// ParseErrorStrict fails the load with ErrInvalidUTF8
	ParseErrorStrict ParseErrorMode = iota
	// ParseErrorIgnore drops invalid bytes
	ParseErrorIgnore
	// ParseErrorReplace substitutes U+FFFD for invalid bytes
	ParseErrorReplace
)

// ParseErrorModes lists the accepted mode names
func ParseErrorModes() []string {
	return []string{"strict", "ignore", "replace"}
}

// String returns the mode name
func (m ParseErrorMode) String() string {
	switch m {
	case ParseErrorIgnore:
		return "ignore"
	case ParseErrorReplace:
		return "replace"
	default:
		return "strict"
	}
}

// ParseParseErrorMode parses a mode name. The empty string selects strict.
func ParseParseErrorMode(s string) (ParseErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ParseErrorStrict, nil
	case "ignore":
		return ParseErrorIgnore, nil
	case "replace":
		return ParseErrorReplace, nil
	default:
		return ParseErrorStrict, fmt.Errorf("%w: %q (want one of %s)",
			ErrInvalidParseErrorMode, s, strings.Join(ParseErrorModes(), ", "))
	}
}

// isValid reports whether m is one of the declared modes
func (m ParseErrorMode) isValid() bool {
	return m >= ParseErrorStrict && m <= ParseErrorReplace
}

// newTextReader applies the mode's transformation to a text record stream.
// Strict mode returns r unchanged; invalid input is reported by checkUTF8.
func newTextReader(r io.Reader, mode ParseErrorMode) io.Reader {
	switch mode {
	case ParseErrorIgnore:
		return transform.NewReader(r, runes.Remove(runes.Predicate(func(c rune) bool {
			return c == utf8.RuneError
		})))
	case ParseErrorReplace:
		return transform.NewReader(r, runes.ReplaceIllFormed())
	default:
		return r
	}
}

// checkUTF8 returns the index of the first field holding invalid UTF-8, or -1
func checkUTF8(fields []string) int {
	for i, field := range fields {
		if !utf8.ValidString(field) {
			return i
		}
	}
	return -1
}

// skipBOM discards a UTF-8 BOM at the start of br if present
func skipBOM(br *bufio.Reader) error {
	prefix, err := br.Peek(len(utf8BOM))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return err
	}
	if string(prefix) == utf8BOM {
		_, err = br.Discard(len(utf8BOM))
		return err
	}
	return nil
}

// isBlankHeader reports whether a header row carries no column names
func isBlankHeader(header []string) bool {
	return len(header) == 0 || (len(header) == 1 && header[0] == "")
}
