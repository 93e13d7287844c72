package source

import (
	"os"
	"path/filepath"
	"strings"
)

// File represents a piece of source text with its display metadata.
type File struct {
	Name    string // Display name (e.g., "script.ts", "<string>", "<stdin>")
	Path    string // Full file path (empty for in-memory input)
	Content string // The source code content
	lines   []string
}

// New creates a source file with an explicit display name.
func New(name, path, content string) *File {
	return &File{Name: name, Path: path, Content: content}
}

// FromString creates a source file for in-memory input, e.g. the parse entry points.
func FromString(content string) *File {
	return &File{Name: "<string>", Content: content}
}

// FromFile creates a source file from a file path and its content.
func FromFile(path, content string) *File {
	return &File{Name: filepath.Base(path), Path: path, Content: content}
}

// Load reads a source file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromFile(path, string(data)), nil
}

// Lines returns the source split into lines (cached).
func (f *File) Lines() []string {
	if f.lines == nil {
		f.lines = strings.Split(f.Content, "\n")
	}
	return f.lines
}

// DisplayPath returns the best path for display (prefers Path, falls back to Name).
func (f *File) DisplayPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// IsFile reports whether this represents an actual file on disk.
func (f *File) IsFile() bool {
	return f.Path != ""
}
