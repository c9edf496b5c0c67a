package filesystem

import (
	"context"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/treeview/treeview/filesystem/common"
	"github.com/ZanzyTHEbar/treeview/treeview/trees"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// HeaderFormat is the line printed above every tree, followed by a blank line
const HeaderFormat = "Directory tree for: %s\n\n"

// FileSystem prints directory trees read from an afero filesystem.
type FileSystem struct {
	lister   *Lister
	renderer *trees.Renderer

	// Utilities
	pathUtils  *common.PathUtils
	validation *common.ValidationUtils

	logger zerolog.Logger
}

// Option allows for customization of FileSystem
type Option func(*FileSystem)

// WithLogger sets a custom logger, shared with the renderer
func WithLogger(logger zerolog.Logger) Option {
	return func(dfs *FileSystem) {
		dfs.logger = logger
	}
}

// New creates a FileSystem over fs. Production code passes afero.NewOsFs().
func New(fs afero.Fs, opts ...Option) *FileSystem {
	validation := common.NewValidationUtils(fs)
	dfs := &FileSystem{
		lister:     NewLister(fs),
		pathUtils:  common.NewPathUtils(validation),
		validation: validation,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(dfs)
	}

	dfs.renderer = trees.NewRenderer(dfs.lister, trees.WithLogger(dfs.logger))

	return dfs
}

// PrintTree resolves startPath to an absolute path, writes the header and
// then the tree of its contents to w. When the root cannot be read an
// error is returned and nothing is written.
func (dfs *FileSystem) PrintTree(ctx context.Context, w io.Writer, startPath string) (*trees.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := dfs.pathUtils.ResolvePath(startPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", startPath, err)
	}

	if err := dfs.validation.ValidateDirectoryExists(root); err != nil {
		return nil, err
	}

	entries, err := dfs.lister.List(root)
	if err != nil {
		return nil, common.ClassifyRootError(root, err)
	}

	dfs.logger.Debug().Str("root", root).Int("entries", len(entries)).Msg("starting tree render")

	if _, err := fmt.Fprintf(w, HeaderFormat, root); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return dfs.renderer.RenderEntries(ctx, w, root, "", entries)
}
