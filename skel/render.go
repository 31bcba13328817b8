package skel

import (
	"fmt"
	"io"
	"strings"
)

// indentUnit is one nesting level: top-level declarations sit at level 0,
// their members at level 1.
const indentUnit = "    "

// fileHeaderMarker precedes each file's skeleton block. Downstream tooling
// greps for it; keep it stable.
const fileHeaderMarker = "// *************"

func indent(level int) string {
	return strings.Repeat(indentUnit, level)
}

// renderDeclarations writes the skeleton of decls to w in order. It never
// fails; unrecognized declaration kinds produce no output.
func renderDeclarations(w io.Writer, decls []Declaration) {
	for i := range decls {
		renderDeclaration(w, &decls[i], 0)
	}
}

func renderDeclaration(w io.Writer, d *Declaration, level int) {
	if d.Kind == KindOther {
		return
	}

	renderDocs(w, d.Docs, level)
	ind := indent(level)
	vis := d.Visibility
	if vis != "" {
		vis += " "
	}

	switch d.Kind {
	case KindFunction:
		fmt.Fprintf(w, "%s%s%s ;\n", ind, vis, d.Header)

	case KindStruct:
		line := ind + vis + d.Header
		if d.FieldBlock == "" {
			// Unit struct
			line += " ;"
		} else {
			line += " " + d.FieldBlock
		}
		if d.Where != "" {
			line += " " + d.Where
		}
		fmt.Fprintln(w, line)

	case KindEnum, KindTrait, KindImpl:
		header := ind + vis + d.Header
		if d.Where != "" {
			header += " " + d.Where
		}
		fmt.Fprintln(w, header+" {")

		terminator := ""
		if d.Kind != KindEnum {
			terminator = " ;"
		}
		for _, m := range d.Members {
			renderDocs(w, m.Docs, level+1)
			fmt.Fprintf(w, "%s%s%s\n", indent(level+1), m.Text, terminator)
		}
		fmt.Fprintln(w, ind+"}")
	}
}

func renderDocs(w io.Writer, docs []string, level int) {
	ind := indent(level)
	for _, doc := range docs {
		fmt.Fprintf(w, "%s///%s\n", ind, doc)
	}
}
