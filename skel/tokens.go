package skel

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Token spacing is whitespace-normalized, not byte-for-byte faithful to the
// source: single spaces between tokens, none inside paren/bracket delimiters
// or after a lifetime quote.
var (
	noSpaceAfter  = map[string]bool{"(": true, "[": true, "'": true}
	noSpaceBefore = map[string]bool{")": true, "]": true}
)

// collectTokens appends the leaf tokens of n depth-first, skipping comments.
func collectTokens(n *sitter.Node, src []byte, out *[]string) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "line_comment", "block_comment":
		return
	}
	count := int(n.ChildCount())
	if count == 0 {
		*out = append(*out, n.Content(src))
		return
	}
	for i := 0; i < count; i++ {
		collectTokens(n.Child(i), src, out)
	}
}

// joinTokens renders a token sequence per the spacing rules above.
func joinTokens(toks []string) string {
	var b strings.Builder
	prev := ""
	for _, t := range toks {
		if t == "" {
			continue
		}
		if b.Len() > 0 && !noSpaceAfter[prev] && !noSpaceBefore[t] {
			b.WriteByte(' ')
		}
		b.WriteString(t)
		prev = t
	}
	return b.String()
}

// renderNode re-serializes an entire subtree.
func renderNode(n *sitter.Node, src []byte) string {
	var toks []string
	collectTokens(n, src, &toks)
	return joinTokens(toks)
}
