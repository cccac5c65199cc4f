package switrs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validator handles validation logic for Builder
type validator struct{}

// newValidator creates a new validator instance
func newValidator() *validator {
	return &validator{}
}

// validatePath validates a single record file path
func (v *validator) validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("path cannot be empty")
	}

	if !isSupportedFile(path) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, path,
			strings.Join(supportedFileExtPatterns(), ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to stat path %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}
	return nil
}

// validateOutputFile checks that the database file can be created
func (v *validator) validateOutputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("output file cannot be empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output file %s is a directory", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to stat output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}
	return nil
}

// validateChunkSize rejects chunk sizes below MinChunkSize
func (v *validator) validateChunkSize(size int) error {
	if !ChunkSize(size).IsValid() {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidChunkSize, size, MinChunkSize)
	}
	return nil
}

// validateParseErrorMode rejects undeclared modes
func (v *validator) validateParseErrorMode(mode ParseErrorMode) error {
	if !mode.isValid() {
		return fmt.Errorf("%w: %d", ErrInvalidParseErrorMode, int(mode))
	}
	return nil
}

// validateInputsAvailable ensures at least one record file was added
func (v *validator) validateInputsAvailable(count int) error {
	if count == 0 {
		return ErrNoInput
	}
	return nil
}
