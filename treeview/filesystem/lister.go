package filesystem

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/treeview/treeview/trees"

	"github.com/spf13/afero"
)

// Lister reads directory listings from an afero filesystem
type Lister struct {
	fs afero.Fs
}

// NewLister creates a Lister backed by fs
func NewLister(fs afero.Fs) *Lister {
	return &Lister{fs: fs}
}

// List returns the immediate children of dirPath. Symbolic links are
// classified by their target: a link to a directory is a directory, a
// broken link is not.
func (l *Lister) List(dirPath string) ([]trees.Entry, error) {
	infos, err := afero.ReadDir(l.fs, dirPath)
	if err != nil {
		return nil, err
	}

	entries := make([]trees.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, trees.Entry{
			Name:  info.Name(),
			IsDir: l.isDir(filepath.Join(dirPath, info.Name()), info),
		})
	}

	return entries, nil
}

func (l *Lister) isDir(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.IsDir()
	}

	target, err := l.fs.Stat(path)
	if err != nil {
		return false
	}
	return target.IsDir()
}
