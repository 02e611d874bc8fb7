package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// FileEntry is an immutable snapshot of one regular file found under a
// scan root. NameLower is the base name lowercased once so downstream
// token matching never re-cases it.
type FileEntry struct {
	Path      string
	NameLower string
	Size      int64
}

// DirEntry is a snapshot of one subdirectory found under a scan root.
type DirEntry struct {
	Path      string
	NameLower string
}

// Walk lists regular files under root down to maxDepth directory
// levels (files directly in root are level 0). Anything unreadable
// (permission errors, broken links) is skipped rather than failing
// the whole scan. Callers must not rely on order beyond it being
// stable for a fixed filesystem snapshot.
func Walk(root string, maxDepth int) []FileEntry {
	var out []FileEntry
	walkFiles(root, 0, maxDepth, &out)
	return out
}

func walkFiles(dir string, depth, maxDepth int, out *[]FileEntry) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// best effort: treat an unreadable subtree as empty
		return
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if depth < maxDepth {
				walkFiles(p, depth+1, maxDepth, out)
			}
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		*out = append(*out, FileEntry{
			Path:      p,
			NameLower: strings.ToLower(e.Name()),
			Size:      info.Size(),
		})
	}
}

// Subdirs lists subdirectories under root down to maxDepth levels
// (direct children are level 0), with the same best-effort error
// handling as Walk.
func Subdirs(root string, maxDepth int) []DirEntry {
	var out []DirEntry
	walkDirs(root, 0, maxDepth, &out)
	return out
}

func walkDirs(dir string, depth, maxDepth int, out *[]DirEntry) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		*out = append(*out, DirEntry{Path: p, NameLower: strings.ToLower(e.Name())})
		if depth < maxDepth {
			walkDirs(p, depth+1, maxDepth, out)
		}
	}
}
