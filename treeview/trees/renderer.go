package trees

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Renderer prints the contents of a directory as a tree, one line per
// entry, recursing depth-first into subdirectories.
type Renderer struct {
	lister DirectoryLister
	logger zerolog.Logger
}

// RendererOption allows for customization of Renderer
type RendererOption func(*Renderer)

// WithLogger sets a custom logger
func WithLogger(logger zerolog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

func NewRenderer(lister DirectoryLister, opts ...RendererOption) *Renderer {
	r := &Renderer{
		lister: lister,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render lists dirPath and writes its tree to w, every line starting with
// prefix. Failing to list dirPath itself is returned before anything is
// written; subdirectories that cannot be listed are printed without
// children and reported in Result.Skipped.
func (r *Renderer) Render(ctx context.Context, w io.Writer, dirPath, prefix string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := r.lister.List(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dirPath, err)
	}

	return r.RenderEntries(ctx, w, dirPath, prefix, entries)
}

// RenderEntries writes the tree for a directory whose entries were
// already listed by the caller.
func (r *Renderer) RenderEntries(ctx context.Context, w io.Writer, dirPath, prefix string, entries []Entry) (*Result, error) {
	start := time.Now()
	result := &Result{}

	if err := r.renderLevel(ctx, w, result, dirPath, prefix, entries, 0); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	r.logger.Debug().
		Str("root", dirPath).
		Int("directories", result.Directories).
		Int("files", result.Files).
		Int("max_depth", result.MaxDepth).
		Int("skipped", result.SkippedCount()).
		Dur("duration", result.Duration).
		Msg("tree rendered")

	return result, nil
}

func (r *Renderer) renderLevel(ctx context.Context, w io.Writer, result *Result, dirPath, prefix string, entries []Entry, depth int) error {
	sorted := SortEntries(entries)

	for i, entry := range sorted {
		last := i == len(sorted)-1

		connector := ConnectorMiddle
		if last {
			connector = ConnectorLast
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, entry.Name); err != nil {
			return fmt.Errorf("failed to write tree line: %w", err)
		}

		if !entry.IsDir {
			result.Files++
			continue
		}
		result.Directories++

		childPrefix := prefix + IndentOpen
		if last {
			childPrefix = prefix + IndentClosed
		}
		if err := r.descend(ctx, w, result, filepath.Join(dirPath, entry.Name), childPrefix, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) descend(ctx context.Context, w io.Writer, result *Result, dirPath, prefix string, depth int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	children, err := r.lister.List(dirPath)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", dirPath).Msg("skipping unreadable directory")
		result.Skipped = multierror.Append(result.Skipped, fmt.Errorf("%s: %w", dirPath, err))
		return nil
	}

	r.logger.Debug().Str("path", dirPath).Int("entries", len(children)).Msg("directory listed")
	result.MaxDepth = max(result.MaxDepth, depth)

	return r.renderLevel(ctx, w, result, dirPath, prefix, children, depth)
}
