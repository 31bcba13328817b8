package skel

import (
	"fmt"
	"io"
)

// Run scans opts.Root, parses every matching source file, and writes each
// file's skeleton to w in discovery order. The first unreadable or
// unparsable file aborts the whole run; output already written for earlier
// files is left in place.
func Run(opts Options, w io.Writer) error {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Language == "" {
		opts.Language = "rust"
	}

	language := Get(opts.Language)
	if language == nil {
		return fmt.Errorf("%s language not registered", opts.Language)
	}

	sc := newScanner(scannerConfig{
		root:     opts.Root,
		language: language,
		maxBytes: opts.MaxBytes,
	})
	files, err := sc.collect()
	if err != nil {
		return err
	}

	p := newParser(language)
	for _, job := range files {
		tree, source, err := p.parseFile(job.AbsPath)
		if err != nil {
			return fmt.Errorf("%s: %w", job.DisplayPath, err)
		}

		fmt.Fprintf(w, "%s %s\n", fileHeaderMarker, job.DisplayPath)
		renderDeclarations(w, extract(tree, source))
	}

	return nil
}
