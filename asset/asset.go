// Package asset looks up the optional drug image shown in the page header.
// A missing image is a normal outcome, reported as Image.Present == false.
package asset

import (
	"os"
	"path/filepath"
)

// Image is the result of an optional asset lookup
type Image struct {
	Name    string `json:"name"`
	Path    string `json:"path,omitempty"`
	Present bool   `json:"present"`
}

// Locator searches a fixed list of directories for one file
type Locator struct {
	Name string
	Dirs []string
}

// NewLocator checks baseDir first, then its parent directory
func NewLocator(name, baseDir string) *Locator {
	dirs := []string{baseDir}
	if parent := filepath.Dir(baseDir); parent != baseDir {
		dirs = append(dirs, parent)
	}
	return &Locator{Name: name, Dirs: dirs}
}

// DefaultBaseDir returns the directory holding the running executable,
// or the working directory when that cannot be resolved
func DefaultBaseDir() string {
	if ex, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(ex); err == nil {
			ex = resolved
		}
		return filepath.Dir(ex)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Candidates returns the paths checked by Lookup, in order
func (l *Locator) Candidates() []string {
	paths := make([]string, 0, len(l.Dirs))
	for _, dir := range l.Dirs {
		paths = append(paths, filepath.Join(dir, l.Name))
	}
	return paths
}

// Lookup returns the first candidate that exists as a regular file
func (l *Locator) Lookup() Image {
	img := Image{Name: l.Name}
	for _, path := range l.Candidates() {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		img.Path = path
		img.Present = true
		return img
	}
	return img
}
