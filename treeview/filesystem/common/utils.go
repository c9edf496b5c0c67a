package common

import (
	"fmt"
	"path/filepath"
)

// PathUtils provides path manipulation utilities used across filesystem packages
type PathUtils struct {
	validation *ValidationUtils
}

// NewPathUtils creates a new PathUtils instance sharing validation
func NewPathUtils(validation *ValidationUtils) *PathUtils {
	return &PathUtils{validation: validation}
}

// ResolvePath returns the absolute, cleaned form of path
func (pu *PathUtils) ResolvePath(path string) (string, error) {
	if err := pu.ValidatePath(path); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// ValidatePath validates that a path is non-empty and well formed
func (pu *PathUtils) ValidatePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	if err := pu.validation.ValidatePathCharacters(path); err != nil {
		return err
	}
	return pu.validation.ValidatePathLength(path)
}
