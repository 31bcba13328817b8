package skel

import (
	"errors"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrSyntax reports that a file is not valid source for its language.
var ErrSyntax = errors.New("syntax error")

// parser wraps a tree-sitter parser for a specific language.
type parser struct {
	parser *sitter.Parser
	lang   Language
}

// newParser creates a new parser for the given language.
func newParser(language Language) *parser {
	p := sitter.NewParser()
	p.SetLanguage(language.TreeSitterLang())
	return &parser{
		parser: p,
		lang:   language,
	}
}

// parse parses source code and returns the syntax tree. Tree-sitter itself
// never fails; a tree containing error nodes is reported as ErrSyntax.
func (p *parser) parse(source []byte) (*sitter.Tree, error) {
	tree := p.parser.Parse(nil, source)
	if tree.RootNode().HasError() {
		return nil, ErrSyntax
	}
	return tree, nil
}

// parseFile reads and parses a file.
func (p *parser) parseFile(path string) (*sitter.Tree, []byte, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	tree, err := p.parse(source)
	if err != nil {
		return nil, nil, fmt.Errorf("parse file: %w", err)
	}
	return tree, source, nil
}
