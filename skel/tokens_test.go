package skel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinTokens(t *testing.T) {
	tests := []struct {
		name string
		toks []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"fn"}, "fn"},
		{
			"params",
			[]string{"fn", "add", "(", "a", ":", "i32", ",", "b", ":", "i32", ")", "->", "i32"},
			"fn add (a : i32 , b : i32) -> i32",
		},
		{"empty_parens", []string{"fn", "main", "(", ")"}, "fn main ()"},
		{"generics", []string{"struct", "Point", "<", "T", ">"}, "struct Point < T >"},
		{"lifetime", []string{"&", "'", "a", "str"}, "& 'a str"},
		{"brackets", []string{"&", "[", "T", "]"}, "& [T]"},
		{"braces_spaced", []string{"{", "x", ":", "T", "}"}, "{ x : T }"},
		{"skips_empty_tokens", []string{"", "fn", "", "main"}, "fn main"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, joinTokens(tc.toks))
		})
	}
}
