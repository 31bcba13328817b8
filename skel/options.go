package skel

// Options configures the Run function.
type Options struct {
	// Root is the directory to scan for source files.
	// If empty, current directory is used.
	Root string

	// Language specifies which language to use.
	// Defaults to "rust".
	Language string

	// MaxBytes skips files larger than this size.
	// If 0, no size limit is enforced.
	MaxBytes int64
}
