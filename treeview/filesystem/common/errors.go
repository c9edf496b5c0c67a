package common

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Common error types used across filesystem packages
var (
	ErrPathEmpty        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long (max 4096 characters)")
	ErrPathInvalid      = errors.New("path contains invalid characters")
	ErrRootNotExist     = errors.New("root path does not exist")
	ErrRootNotDirectory = errors.New("root path is not a directory")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationUtils provides common validation utilities used across packages
type ValidationUtils struct {
	fs afero.Fs
}

// NewValidationUtils creates a new ValidationUtils instance backed by fs
func NewValidationUtils(fs afero.Fs) *ValidationUtils {
	return &ValidationUtils{fs: fs}
}

// ValidatePathLength validates that a path is not too long
func (vu *ValidationUtils) ValidatePathLength(path string) error {
	if len(path) > 4096 {
		return ErrPathTooLong
	}
	return nil
}

// ValidatePathCharacters validates that a path doesn't contain invalid characters
func (vu *ValidationUtils) ValidatePathCharacters(path string) error {
	if strings.Contains(path, "\x00") {
		return ErrPathInvalid
	}
	return nil
}

// ValidateDirectoryExists validates that path names an existing directory
func (vu *ValidationUtils) ValidateDirectoryExists(path string) error {
	info, err := vu.fs.Stat(path)
	if err != nil {
		return ClassifyRootError(path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, path)
	}
	return nil
}

// ClassifyRootError maps a filesystem error on the root path onto the
// sentinel errors above, keeping the original error in the chain.
func ClassifyRootError(path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrRootNotExist, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("failed to access %s: %w", path, err)
	}
}
