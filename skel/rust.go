package skel

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
)

// Rust implements the Language interface for Rust source code.
type Rust struct{}

func init() {
	Register(&Rust{})
}

func (r *Rust) Name() string {
	return "rust"
}

func (r *Rust) Extensions() []string {
	return []string{".rs"}
}

func (r *Rust) TreeSitterLang() *sitter.Language {
	return rust.GetLanguage()
}
