// Package filter implements the fuzzy path filter of the repository file
// browser.
package filter

import (
	"sort"
	"strings"

	"modemap/pkg/types"
)

// DefaultLimit is the number of results shown when no limit is configured
const DefaultLimit = 20

// Match is a node accepted by a query. Highlight holds the rune positions
// of the matched query characters in Path; Order is the sum of distances
// between consecutive matched positions, lower meaning tighter.
type Match struct {
	Path      string         `json:"path"`
	Type      types.NodeType `json:"type"`
	Order     int            `json:"order"`
	Highlight []int          `json:"highlight"`
}

// Result is a filtered, ordered and truncated set of matches
type Result struct {
	Matches   []Match `json:"matches"`
	Truncated int     `json:"truncated"`
}

// FuzzyMatch reports whether every rune of query occurs in path in order.
// Each rune is searched for after the previous hit.
func FuzzyMatch(path, query string) (Match, bool) {
	remaining := []rune(path)
	highlight := make([]int, 0, len(query))
	offset := 0
	order := 0

	for _, q := range query {
		pos := indexRune(remaining, q)
		if pos < 0 {
			return Match{}, false
		}

		current := offset + pos
		if n := len(highlight); n > 0 {
			order += current - highlight[n-1]
		}
		highlight = append(highlight, current)

		remaining = remaining[pos+1:]
		offset = current + 1
	}

	return Match{Path: path, Order: order, Highlight: highlight}, true
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

// Filter matches nodes against query case-insensitively, orders the
// matches by Order and then path, and keeps at most limit of them.
// An empty query matches nothing.
func Filter(nodes []types.Node, query string, limit int) Result {
	query = strings.ToLower(query)
	if query == "" {
		return Result{Matches: []Match{}}
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	matches := []Match{}
	for _, n := range nodes {
		m, ok := FuzzyMatch(strings.ToLower(n.Path), query)
		if !ok {
			continue
		}
		m.Path = n.Path
		m.Type = n.Type
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Order != matches[j].Order {
			return matches[i].Order < matches[j].Order
		}
		return matches[i].Path < matches[j].Path
	})

	res := Result{Matches: matches}
	if len(matches) > limit {
		res.Matches = matches[:limit]
		res.Truncated = len(matches) - limit
	}
	return res
}

// Highlight rewrites path with every highlighted rune passed through wrap
func Highlight(path string, positions []int, wrap func(string) string) string {
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var sb strings.Builder
	for i, r := range []rune(path) {
		if marked[i] {
			sb.WriteString(wrap(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
