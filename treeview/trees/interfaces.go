package trees

import (
	"time"

	"github.com/hashicorp/go-multierror"
)

// Connector and indentation glyphs. Every unit is four columns wide.
const (
	ConnectorMiddle = "├── "
	ConnectorLast   = "└── "
	IndentOpen      = "│   "
	IndentClosed    = "    "
)

// DirectoryLister lists the immediate children of a directory and
// classifies each as directory or non-directory. Order is unspecified.
type DirectoryLister interface {
	List(dirPath string) ([]Entry, error)
}

// Result holds statistical information about one rendered tree
type Result struct {
	Directories int
	Files       int
	MaxDepth    int
	Duration    time.Duration

	// Skipped collects subdirectories that were printed but could not be listed
	Skipped *multierror.Error
}

// SkippedErr returns the aggregated listing errors, or nil when every
// directory was read.
func (r *Result) SkippedErr() error {
	return r.Skipped.ErrorOrNil()
}

// SkippedCount returns the number of subdirectories that could not be listed
func (r *Result) SkippedCount() int {
	if r.Skipped == nil {
		return 0
	}
	return len(r.Skipped.Errors)
}
