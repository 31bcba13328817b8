package skel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// renderSource parses src and renders its skeleton.
func renderSource(t *testing.T, src string) string {
	t.Helper()

	var b strings.Builder
	renderDeclarations(&b, parseDecls(t, src))
	return b.String()
}

func TestRenderFunction(t *testing.T) {
	out := renderSource(t, `pub fn add(a: i32, b: i32) -> i32 {
    a + b
}
`)
	require.Equal(t, "pub fn add (a : i32 , b : i32) -> i32 ;\n", out)
	require.NotContains(t, out, "a + b")
}

func TestRenderUnitStruct(t *testing.T) {
	out := renderSource(t, `struct Marker;`)
	require.Equal(t, "struct Marker ;\n", out)
}

func TestRenderEnumWithVariantDocs(t *testing.T) {
	out := renderSource(t, `enum Shape {
    /// A unit circle.
    Circle(f64),
    Square,
}
`)
	want := `enum Shape {
    /// A unit circle.
    Circle (f64)
    Square
}
`
	require.Equal(t, want, out)
}

func TestRenderTraitAndImpl(t *testing.T) {
	out := renderSource(t, `pub trait Greeter: Clone {
    fn hello(&self) -> String;
}

impl Greeter for Marker {
    fn hello(&self) -> String {
        String::new()
    }
}
`)
	want := `pub trait Greeter : Clone {
    fn hello (& self) -> String ;
}
impl Greeter for Marker {
    fn hello (& self) -> String ;
}
`
	require.Equal(t, want, out)
}

func TestRenderStructWherePlacement(t *testing.T) {
	tests := []struct {
		name string
		decl Declaration
		want string
	}{
		{
			"tuple_fields",
			Declaration{
				Kind:       KindStruct,
				Name:       "Pair",
				Header:     "struct Pair < T >",
				FieldBlock: "(T , T)",
				Where:      "where T : Clone",
			},
			"struct Pair < T > (T , T) where T : Clone\n",
		},
		{
			"unit",
			Declaration{
				Kind:   KindStruct,
				Name:   "Marker",
				Header: "struct Marker < T >",
				Where:  "where T : Clone",
			},
			"struct Marker < T > ; where T : Clone\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b strings.Builder
			renderDeclaration(&b, &tc.decl, 0)
			require.Equal(t, tc.want, b.String())
		})
	}
}

func TestRenderSkipsUnrecognizedKinds(t *testing.T) {
	out := renderSource(t, `type Alias = i32;

const N: usize = 1;

mod inner {}

fn keep() {}
`)
	require.Equal(t, "fn keep () ;\n", out)
}

func TestRenderMemberIndentation(t *testing.T) {
	out := renderSource(t, `trait T1 {
    fn a();
    fn b();
}
`)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "trait T1 {", lines[0])
	require.Equal(t, "}", lines[len(lines)-1])
	for _, line := range lines[1 : len(lines)-1] {
		require.True(t, strings.HasPrefix(line, "    "))
		require.False(t, strings.HasPrefix(line, "        "))
	}
}

func TestRenderDeterministic(t *testing.T) {
	src := `pub struct Point { pub x: i32, y: i32 }

pub fn origin() -> Point { Point { x: 0, y: 0 } }
`
	require.Equal(t, renderSource(t, src), renderSource(t, src))
}
