package filter

import (
	"strings"
	"testing"

	"modemap/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		query     string
		ok        bool
		order     int
		highlight []int
	}{
		{"contiguous", "readme.md", "read", true, 3, []int{0, 1, 2, 3}},
		{"gaps", "src/main.go", "smg", true, 9, []int{0, 4, 9}},
		{"single rune", "a/b", "b", true, 0, []int{2}},
		{"repeated rune", "aaa", "aa", true, 1, []int{0, 1}},
		{"out of order", "abc", "ca", false, 0, nil},
		{"missing rune", "abc", "abd", false, 0, nil},
		{"empty query", "abc", "", true, 0, []int{}},
		{"unicode", "docs/über.md", "üm", true, 5, []int{5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := FuzzyMatch(tt.path, tt.query)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.order, m.Order)
			assert.Equal(t, tt.highlight, m.Highlight)
		})
	}
}

func nodes(paths ...string) []types.Node {
	out := make([]types.Node, 0, len(paths))
	for _, p := range paths {
		typ := types.FileNode
		if strings.HasSuffix(p, "/") {
			typ = types.DirNode
			p = strings.TrimSuffix(p, "/")
		}
		out = append(out, types.Node{Path: p, Type: typ})
	}
	return out
}

func TestFilter(t *testing.T) {
	tree := nodes("docs/", "docs/index.rst", "README.md", "setup.py", "src/modes/resolver.go", "src/readme.txt")

	t.Run("ordered by tightness then path", func(t *testing.T) {
		res := Filter(tree, "read", 0)
		require.Len(t, res.Matches, 2)
		assert.Equal(t, "README.md", res.Matches[0].Path, "original case kept")
		assert.Equal(t, "src/readme.txt", res.Matches[1].Path)
		assert.Equal(t, 3, res.Matches[0].Order)
		assert.Equal(t, 0, res.Truncated)
	})

	t.Run("query is case insensitive", func(t *testing.T) {
		res := Filter(tree, "SETUP", 10)
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "setup.py", res.Matches[0].Path)
		assert.Equal(t, types.FileNode, res.Matches[0].Type)
	})

	t.Run("directories match too", func(t *testing.T) {
		res := Filter(tree, "docs", 10)
		require.Len(t, res.Matches, 2)
		assert.Equal(t, "docs", res.Matches[0].Path)
		assert.Equal(t, types.DirNode, res.Matches[0].Type)
	})

	t.Run("truncation", func(t *testing.T) {
		res := Filter(tree, "s", 2)
		assert.Len(t, res.Matches, 2)
		assert.Equal(t, 3, res.Truncated)
	})

	t.Run("default limit", func(t *testing.T) {
		var many []types.Node
		for i := 0; i < 25; i++ {
			many = append(many, types.Node{Path: strings.Repeat("x", i+1), Type: types.FileNode})
		}
		res := Filter(many, "x", 0)
		assert.Len(t, res.Matches, DefaultLimit)
		assert.Equal(t, 5, res.Truncated)
	})

	t.Run("empty query", func(t *testing.T) {
		res := Filter(tree, "", 10)
		assert.Empty(t, res.Matches)
		assert.Equal(t, 0, res.Truncated)
	})

	t.Run("no match", func(t *testing.T) {
		res := Filter(tree, "zzz", 10)
		assert.Empty(t, res.Matches)
	})
}

func TestHighlight(t *testing.T) {
	wrap := func(s string) string { return "<em>" + s + "</em>" }
	assert.Equal(t, "<em>R</em><em>E</em>ADME.md", Highlight("README.md", []int{0, 1}, wrap))
	assert.Equal(t, "über", Highlight("über", nil, wrap))
	assert.Equal(t, "<em>ü</em>ber", Highlight("über", []int{0}, wrap))
}
