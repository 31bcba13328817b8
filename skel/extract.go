package skel

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// headerSkip lists item children that never contribute to a header: the
// visibility modifier (rendered separately), nested bodies, field lists,
// and where-clauses (placed by kind-specific rules).
var headerSkip = map[string]bool{
	"visibility_modifier":            true,
	"block":                          true,
	"field_declaration_list":         true,
	"ordered_field_declaration_list": true,
	"enum_variant_list":              true,
	"declaration_list":               true,
	"where_clause":                   true,
	";":                              true,
}

// extract builds the skeleton model for one parsed file, in source order.
func extract(tree *sitter.Tree, src []byte) []Declaration {
	root := tree.RootNode()
	docs := newDocCollector(src)

	var decls []Declaration
	count := int(root.ChildCount())
	for i := 0; i < count; i++ {
		child := root.Child(i)
		if docs.absorb(child) {
			continue
		}
		d := extractItem(child, src)
		d.Docs = docs.take(child)
		decls = append(decls, d)
	}
	return decls
}

func extractItem(n *sitter.Node, src []byte) Declaration {
	switch n.Type() {
	case "function_item":
		return extractFunction(n, src)
	case "struct_item":
		return extractStruct(n, src)
	case "enum_item":
		return extractEnum(n, src)
	case "trait_item":
		return extractTrait(n, src)
	case "impl_item":
		return extractImpl(n, src)
	default:
		// Type aliases, consts, mods, macros: not part of the skeleton.
		return Declaration{Kind: KindOther}
	}
}

func extractFunction(n *sitter.Node, src []byte) Declaration {
	header := headerTokens(n, src)
	// The where-clause is part of a function signature.
	if w := whereText(n, src); w != "" {
		header += " " + w
	}
	return Declaration{
		Kind:       KindFunction,
		Name:       itemName(n, src),
		Visibility: visibility(n, src),
		Header:     header,
	}
}

func extractStruct(n *sitter.Node, src []byte) Declaration {
	d := Declaration{
		Kind:       KindStruct,
		Name:       itemName(n, src),
		Visibility: visibility(n, src),
		Header:     headerTokens(n, src),
		Where:      whereText(n, src),
	}
	if body := childOfType(n, "field_declaration_list", "ordered_field_declaration_list"); body != nil {
		d.FieldBlock = renderNode(body, src)
	}
	return d
}

func extractEnum(n *sitter.Node, src []byte) Declaration {
	d := Declaration{
		Kind:       KindEnum,
		Name:       itemName(n, src),
		Visibility: visibility(n, src),
		Header:     headerTokens(n, src),
		Where:      whereText(n, src),
	}

	body := childOfType(n, "enum_variant_list")
	if body == nil {
		return d
	}

	docs := newDocCollector(src)
	count := int(body.ChildCount())
	for i := 0; i < count; i++ {
		child := body.Child(i)
		if docs.absorb(child) {
			continue
		}
		if child.Type() != "enum_variant" {
			continue
		}
		d.Members = append(d.Members, Member{
			Docs: docs.take(child),
			Text: renderNode(child, src),
		})
	}
	return d
}

func extractTrait(n *sitter.Node, src []byte) Declaration {
	// Supertrait bounds are ordinary header tokens, so they come along
	// without special handling.
	return Declaration{
		Kind:       KindTrait,
		Name:       itemName(n, src),
		Visibility: visibility(n, src),
		Header:     headerTokens(n, src),
		Where:      whereText(n, src),
		Members:    methodMembers(childOfType(n, "declaration_list"), src),
	}
}

func extractImpl(n *sitter.Node, src []byte) Declaration {
	d := Declaration{
		Kind:   KindImpl,
		Header: headerTokens(n, src),
		Where:  whereText(n, src),
	}
	if t := n.ChildByFieldName("type"); t != nil {
		d.Name = renderNode(t, src)
	}
	d.Members = methodMembers(childOfType(n, "declaration_list"), src)
	return d
}

// methodMembers extracts method signatures from a trait or impl body.
// Associated consts and types are skipped.
func methodMembers(body *sitter.Node, src []byte) []Member {
	if body == nil {
		return nil
	}

	var members []Member
	docs := newDocCollector(src)
	count := int(body.ChildCount())
	for i := 0; i < count; i++ {
		child := body.Child(i)
		if docs.absorb(child) {
			continue
		}
		switch child.Type() {
		case "function_item", "function_signature_item":
			members = append(members, Member{
				Docs: docs.take(child),
				Text: methodSignature(child, src),
			})
		default:
			docs.take(child)
		}
	}
	return members
}

// methodSignature renders a method without its body or trailing semicolon.
// Per-method visibility is dropped from the skeleton.
func methodSignature(n *sitter.Node, src []byte) string {
	sig := headerTokens(n, src)
	if w := whereText(n, src); w != "" {
		sig += " " + w
	}
	return sig
}

// headerTokens re-serializes every child of an item except those in headerSkip.
func headerTokens(n *sitter.Node, src []byte) string {
	var toks []string
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if headerSkip[child.Type()] {
			continue
		}
		collectTokens(child, src, &toks)
	}
	return joinTokens(toks)
}

// visibility returns the verbatim visibility modifier of an item, or "".
func visibility(n *sitter.Node, src []byte) string {
	if v := childOfType(n, "visibility_modifier"); v != nil {
		return renderNode(v, src)
	}
	return ""
}

func whereText(n *sitter.Node, src []byte) string {
	if w := childOfType(n, "where_clause"); w != nil {
		return renderNode(w, src)
	}
	return ""
}

func itemName(n *sitter.Node, src []byte) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	return ""
}

func childOfType(n *sitter.Node, types ...string) *sitter.Node {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

// docCollector accumulates /// comments so they can be attached to the item
// immediately below them. Attribute items keep a run alive without
// contributing lines; a gap in line numbers breaks it.
type docCollector struct {
	src      []byte
	lines    []string
	lastLine int // last source row of the pending run; -1 when empty
}

func newDocCollector(src []byte) *docCollector {
	return &docCollector{src: src, lastLine: -1}
}

// absorb consumes comment and attribute nodes, reporting whether the node
// was consumed.
func (c *docCollector) absorb(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment":
		// Only /// comments carry the marker; plain //, //// and //!
		// comments break the run. A line comment's content may include the
		// trailing newline, so track its own row, not the end point.
		if childOfType(n, "outer_doc_comment_marker") == nil {
			c.reset()
			return true
		}
		start := int(n.StartPoint().Row)
		c.continueRun(start)
		text := strings.TrimSuffix(n.Content(c.src), "\n")
		text = strings.TrimSuffix(text, "\r")
		c.lines = append(c.lines, strings.TrimPrefix(text, "///"))
		c.lastLine = start
		return true
	case "block_comment":
		// /** ... */ is a doc comment; /* ... */ and /*! ... */ are not.
		if childOfType(n, "outer_doc_comment_marker") == nil {
			c.reset()
			return true
		}
		c.continueRun(int(n.StartPoint().Row))
		inner := strings.TrimPrefix(n.Content(c.src), "/**")
		inner = strings.TrimSuffix(inner, "*/")
		for _, line := range strings.Split(inner, "\n") {
			c.lines = append(c.lines, strings.TrimRight(line, " \t"))
		}
		c.lastLine = int(n.EndPoint().Row)
		return true
	case "attribute_item", "inner_attribute_item":
		c.continueRun(int(n.StartPoint().Row))
		if n.Type() == "attribute_item" {
			if doc, ok := docAttributeValue(n, c.src); ok {
				c.lines = append(c.lines, doc)
			}
		}
		c.lastLine = int(n.EndPoint().Row)
		return true
	}
	return false
}

// continueRun clears the pending run when the node at start is not on the
// line directly below it.
func (c *docCollector) continueRun(start int) {
	if c.lastLine >= 0 && start != c.lastLine+1 {
		c.reset()
	}
}

// docAttributeValue extracts the doc text from a #[doc = "..."] attribute.
func docAttributeValue(n *sitter.Node, src []byte) (string, bool) {
	attr := childOfType(n, "attribute")
	if attr == nil {
		return "", false
	}
	path := attr.Child(0)
	if path == nil || path.Content(src) != "doc" {
		return "", false
	}
	lit := childOfType(attr, "string_literal")
	if lit == nil {
		return "", false
	}
	text := strings.TrimPrefix(lit.Content(src), `"`)
	return strings.TrimSuffix(text, `"`), true
}

// take returns the pending run if it sits immediately above n, and clears
// the collector either way.
func (c *docCollector) take(n *sitter.Node) []string {
	lines := c.lines
	adjacent := c.lastLine >= 0 && int(n.StartPoint().Row) == c.lastLine+1
	c.reset()
	if !adjacent {
		return nil
	}
	return lines
}

func (c *docCollector) reset() {
	c.lines = nil
	c.lastLine = -1
}
