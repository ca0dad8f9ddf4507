package modes

import (
	"slices"
	"sort"
	"strings"

	"modemap/internal/errors"

	"github.com/gobwas/glob"
)

// Entry is one registered MIME type. Patterns are glob-like filename
// patterns ("*.py", "Makefile"); the first one is the preferred extension.
// An empty Mode means no specific mode.
type Entry struct {
	MimeType string   `json:"mime_type" yaml:"mime_type"`
	Patterns []string `json:"patterns" yaml:"patterns"`
	Mode     string   `json:"mode" yaml:"mode"`
}

type compiledPattern struct {
	mimeType string
	pattern  string
	matcher  glob.Glob
}

// registry is the immutable lookup structure built from the tables.
// Nothing mutates it after newRegistry returns.
type registry struct {
	entries   map[string]Entry
	folded    map[string]string
	keys      []string
	byExt     map[string][]string
	patterns  []compiledPattern
	overrides map[string]string
	modes     []string
}

func newRegistry(entries []Entry, overrides map[string]string) (*registry, error) {
	reg := &registry{
		entries:   make(map[string]Entry, len(entries)),
		folded:    make(map[string]string, len(entries)),
		byExt:     make(map[string][]string),
		overrides: make(map[string]string, len(overrides)),
	}

	for _, e := range entries {
		if _, dup := reg.entries[e.MimeType]; dup {
			return nil, errors.NewLookupError("duplicate mime type", e.MimeType, errors.InvalidInputData, nil)
		}
		reg.entries[e.MimeType] = Entry{
			MimeType: e.MimeType,
			Patterns: slices.Clone(e.Patterns),
			Mode:     e.Mode,
		}
		reg.keys = append(reg.keys, e.MimeType)
	}
	sort.Strings(reg.keys)

	modeSet := make(map[string]bool)
	for _, key := range reg.keys {
		e := reg.entries[key]
		if _, taken := reg.folded[strings.ToLower(key)]; !taken {
			reg.folded[strings.ToLower(key)] = key
		}
		if e.Mode != "" {
			modeSet[e.Mode] = true
		}

		for _, p := range e.Patterns {
			if ext, ok := strings.CutPrefix(p, "*."); ok {
				if !slices.Contains(reg.byExt[ext], key) {
					reg.byExt[ext] = append(reg.byExt[ext], key)
				}
			}

			matcher, err := glob.Compile(p)
			if err != nil {
				return nil, errors.NewLookupError("invalid pattern", p, errors.InvalidPattern, err)
			}
			reg.patterns = append(reg.patterns, compiledPattern{mimeType: key, pattern: p, matcher: matcher})
		}
	}

	for ext, mode := range overrides {
		reg.overrides[strings.ToLower(ext)] = mode
		modeSet[mode] = true
	}

	for mode := range modeSet {
		reg.modes = append(reg.modes, mode)
	}
	sort.Strings(reg.modes)

	return reg, nil
}

func mustRegistry(entries []Entry, overrides map[string]string) *registry {
	reg, err := newRegistry(entries, overrides)
	if err != nil {
		panic(err)
	}
	return reg
}

// normalizeMimeType drops parameters such as "; charset=utf-8".
func normalizeMimeType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.TrimSpace(mimeType)
}

// lookup matches the registered key exactly, then case-insensitively.
func (reg *registry) lookup(mimeType string) (Entry, bool) {
	key := normalizeMimeType(mimeType)
	if e, ok := reg.entries[key]; ok {
		return e, true
	}
	if k, ok := reg.folded[strings.ToLower(key)]; ok {
		return reg.entries[k], true
	}
	return Entry{}, false
}

func (reg *registry) mimeTypesForExtension(ext string) []string {
	return reg.byExt[strings.TrimPrefix(ext, ".")]
}
