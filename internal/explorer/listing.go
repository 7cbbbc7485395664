package explorer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Item is one directory entry.
type Item struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// DisplayName prefixes the name with a folder or document glyph.
func (i Item) DisplayName() string {
	if i.IsDir {
		return "📁 " + i.Name
	}
	return "📄 " + i.Name
}

// FormattedSize renders the size in whole B, KB or MB. Directories show "--".
func (i Item) FormattedSize() string {
	switch {
	case i.IsDir:
		return "--"
	case i.Size < 1024:
		return fmt.Sprintf("%dB", i.Size)
	case i.Size < 1024*1024:
		return fmt.Sprintf("%dKB", i.Size/1024)
	default:
		return fmt.Sprintf("%dMB", i.Size/(1024*1024))
	}
}

// FormattedDate renders the modification time as a short local date and time.
func (i Item) FormattedDate() string {
	if i.ModTime.IsZero() {
		return "--"
	}
	return i.ModTime.Local().Format("01/02/06 15:04")
}

// ReadDir lists dir with directories first, then files, each sorted by name.
// Dot files are skipped unless showHidden is set. Entries that vanish or
// cannot be stat'ed while listing are skipped.
func ReadDir(ctx context.Context, dir string, showHidden bool) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			// Dangling symlinks still list, as files.
			if info, err = entry.Info(); err != nil {
				continue
			}
		}
		items = append(items, Item{
			Name:    name,
			Path:    path,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		if items[a].IsDir != items[b].IsDir {
			return items[a].IsDir
		}
		return items[a].Name < items[b].Name
	})
	return items, nil
}

// Parent returns the directory above dir, and false at the filesystem root.
func Parent(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return dir, false
	}
	return parent, true
}
