package skel

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FileJob represents a file to be processed.
type FileJob struct {
	AbsPath     string
	DisplayPath string
}

// DefaultIgnoreDirs returns the default list of directories to ignore.
func DefaultIgnoreDirs() map[string]struct{} {
	return map[string]struct{}{
		".git":         {},
		".hg":          {},
		".svn":         {},
		".jj":          {},
		"node_modules": {},
		"vendor":       {},
		"dist":         {},
		"build":        {},
		"target":       {},
		".cache":       {},
	}
}

// scannerConfig holds scanner configuration.
type scannerConfig struct {
	root       string
	language   Language
	ignoreDirs map[string]struct{}
	maxBytes   int64
}

// scanner discovers files for processing.
type scanner struct {
	cfg scannerConfig
}

// newScanner creates a new scanner with the given configuration.
func newScanner(cfg scannerConfig) *scanner {
	if cfg.ignoreDirs == nil {
		cfg.ignoreDirs = DefaultIgnoreDirs()
	}
	return &scanner{cfg: cfg}
}

// collect finds all matching files in lexical walk order. Entries that
// cannot be read are skipped rather than failing the walk.
func (s *scanner) collect() ([]FileJob, error) {
	absRoot, err := filepath.Abs(s.cfg.root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	var jobs []FileJob
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission errors, broken symlinks: skip and keep walking.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == absRoot {
				return nil
			}
			if s.shouldIgnoreDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.isSupportedFile(d.Name()) {
			return nil
		}

		if s.cfg.maxBytes > 0 {
			info, err := d.Info()
			if err != nil {
				// Skip files we can't stat
				return nil
			}
			if info.Size() > s.cfg.maxBytes {
				return nil
			}
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = path
		}

		jobs = append(jobs, FileJob{
			AbsPath:     path,
			DisplayPath: filepath.ToSlash(rel),
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return jobs, nil
}

func (s *scanner) shouldIgnoreDir(name string) bool {
	_, ok := s.cfg.ignoreDirs[name]
	return ok
}

func (s *scanner) isSupportedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range s.cfg.language.Extensions() {
		if ext == e {
			return true
		}
	}
	return false
}
