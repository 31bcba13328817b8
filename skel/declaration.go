package skel

// DeclKind classifies top-level declarations.
type DeclKind int

const (
	KindOther DeclKind = iota
	KindFunction
	KindStruct
	KindEnum
	KindTrait
	KindImpl
)

// String returns a short label for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case KindFunction:
		return "fn"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindTrait:
		return "trait"
	case KindImpl:
		return "impl"
	default:
		return "other"
	}
}

// Member is a nested item rendered one level below its parent: an enum
// variant or a trait/impl method signature.
type Member struct {
	Docs []string
	Text string
}

// Declaration is one top-level item of a source file, stripped to its
// skeleton. Built once per file and never mutated.
type Declaration struct {
	Kind       DeclKind
	Name       string
	Visibility string   // verbatim modifier ("pub", "pub (crate)"); empty for private
	Docs       []string // text after the /// marker, in source order
	Header     string   // re-serialized signature or block header tokens
	FieldBlock string   // struct field list; empty for unit structs
	Where      string   // where-clause, kept separate for placement rules
	Members    []Member // enum variants or method signatures, in source order
}
