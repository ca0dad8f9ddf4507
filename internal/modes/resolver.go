// Package modes resolves editor syntax modes and default file extensions
// from filenames and MIME types.
//
// The MIME table and the extension override table are built once when the
// package is loaded and are never modified, so a Resolver is safe for
// concurrent use without locking. Every query is total: a missing answer is
// reported through the boolean result or an empty slice, never an error.
package modes

import (
	"slices"
	"strings"

	"modemap/internal/config"
)

const (
	// DefaultExtension is proposed when a MIME type has no usable pattern
	DefaultExtension = ".txt"
	// DefaultFilename is the base name proposed when there is none to keep
	DefaultFilename = "filename1"
)

// DefaultPreviewModes are the modes that can be rendered as a preview
var DefaultPreviewModes = []string{"markdown", "rst", "gfm"}

var builtin = mustRegistry(builtinEntries, extensionOverrides)

var std = New()

// Detection is the outcome of resolving a filename typed by the user
type Detection struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Mode     string `json:"mode"`
}

// Resolver answers mode and extension queries over the builtin tables
type Resolver struct {
	reg         *registry
	defaultName string
	preview     map[string]bool
}

// Option configures a Resolver
type Option func(*Resolver)

// WithDefaultFilename sets the base name used by ProposeFilename when the
// current filename has none.
func WithDefaultFilename(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.defaultName = name
		}
	}
}

// WithPreviewModes replaces the set of preview capable modes
func WithPreviewModes(modes ...string) Option {
	return func(r *Resolver) {
		r.preview = make(map[string]bool, len(modes))
		for _, m := range modes {
			r.preview[m] = true
		}
	}
}

// New creates a Resolver over the builtin tables
func New(opts ...Option) *Resolver {
	r := &Resolver{reg: builtin, defaultName: DefaultFilename}
	WithPreviewModes(DefaultPreviewModes...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewWithConfig creates a Resolver using the editor settings of cfg
func NewWithConfig(cfg *config.Config) *Resolver {
	if cfg == nil {
		return New()
	}
	opts := []Option{WithDefaultFilename(cfg.Editor.DefaultFilename)}
	if cfg.Editor.PreviewModes != nil {
		opts = append(opts, WithPreviewModes(cfg.Editor.PreviewModes...))
	}
	return New(opts...)
}

// Default returns the package-level resolver
func Default() *Resolver {
	return std
}

// ExtensionForMimeType returns the preferred extension of mimeType, with a
// leading "*" removed. Unknown types, types without patterns and types whose
// first pattern is a bare filename all yield DefaultExtension, so the result
// always starts with ".".
func (r *Resolver) ExtensionForMimeType(mimeType string) string {
	e, ok := r.reg.lookup(mimeType)
	if !ok || len(e.Patterns) == 0 {
		return DefaultExtension
	}

	ext := e.Patterns[0]
	if strings.HasPrefix(ext, "*") {
		ext = ext[1:]
	}
	if len(ext) < 2 || ext[0] != '.' {
		return DefaultExtension
	}
	return ext
}

// MimeTypesForExtension returns every MIME type registering the pattern
// "*.<ext>", in lexicographic order. ext is matched case-sensitively.
func (r *Resolver) MimeTypesForExtension(ext string) []string {
	found := r.reg.mimeTypesForExtension(ext)
	if found == nil {
		return []string{}
	}
	return slices.Clone(found)
}

// MimeTypeForExtension returns the first MIME type for ext
func (r *Resolver) MimeTypeForExtension(ext string) (string, bool) {
	found := r.reg.mimeTypesForExtension(ext)
	if len(found) == 0 {
		return "", false
	}
	return found[0], true
}

// DetectModeFromFilename resolves a mode from the extension of filename.
// The extension is lowercased before any lookup. Overrides always win; the
// MIME table is only consulted when allowMimeFallback is set, and then the
// mode may legitimately be empty.
func (r *Resolver) DetectModeFromFilename(filename string, allowMimeFallback bool) (string, bool) {
	ext, ok := lowerExt(filename)
	if !ok {
		return "", false
	}

	if mode, ok := r.reg.overrides[ext]; ok {
		return mode, true
	}

	if allowMimeFallback {
		if mimeType, ok := r.MimeTypeForExtension(ext); ok {
			return r.reg.entries[mimeType].Mode, true
		}
	}
	return "", false
}

// DetectMode prefers the filename, then the mode registered for mimeType.
func (r *Resolver) DetectMode(filename, mimeType string, allowMimeFallback bool) (string, bool) {
	if mode, _ := r.DetectModeFromFilename(filename, allowMimeFallback); mode != "" {
		return mode, true
	}

	if mimeType != "" {
		if e, ok := r.reg.lookup(mimeType); ok && e.Mode != "" {
			return e.Mode, true
		}
	}
	return "", false
}

// ProposeFilename keeps the base name of current and swaps in the preferred
// extension of mimeType.
func (r *Resolver) ProposeFilename(current, mimeType string) string {
	base, _, _ := SplitFilename(current)
	if base == "" {
		base = r.defaultName
	}
	return base + r.ExtensionForMimeType(mimeType)
}

// DetectFromInput resolves a filename typed by the user. Every MIME type
// registered for its extension is tried: the mode comes from the first one
// yielding a mode, the MIME type from the first one accepted by offered
// (nil accepts all). Both must be found.
func (r *Resolver) DetectFromInput(filename string, offered func(mimeType string) bool) (Detection, bool) {
	base, ext, ok := SplitFilename(filename)
	if !ok {
		return Detection{}, false
	}

	var d Detection
	for _, mt := range r.reg.mimeTypesForExtension(strings.ToLower(ext)) {
		if d.Mode == "" {
			d.Mode, _ = r.DetectMode(filename, mt, false)
		}
		if d.MimeType == "" && (offered == nil || offered(mt)) {
			d.MimeType = mt
		}
	}
	if d.Mode == "" || d.MimeType == "" {
		return Detection{}, false
	}

	d.Filename = base + "." + ext
	return d, true
}

// PreviewSupported reports whether files in mode can be rendered as a preview
func (r *Resolver) PreviewSupported(mode string) bool {
	return r.preview[mode]
}

// MatchFilename matches the last segment of name against every registered
// pattern as a glob, including bare filenames such as "Makefile".
func (r *Resolver) MatchFilename(name string) []string {
	name = baseName(name)
	matched := []string{}
	for _, p := range r.reg.patterns {
		if len(matched) > 0 && matched[len(matched)-1] == p.mimeType {
			continue
		}
		if p.matcher.Match(name) {
			matched = append(matched, p.mimeType)
		}
	}
	return matched
}

// Lookup returns a copy of the entry registered for mimeType
func (r *Resolver) Lookup(mimeType string) (Entry, bool) {
	e, ok := r.reg.lookup(mimeType)
	if !ok {
		return Entry{}, false
	}
	e.Patterns = slices.Clone(e.Patterns)
	return e, true
}

// MimeTypes returns every registered MIME type in lexicographic order
func (r *Resolver) MimeTypes() []string {
	return slices.Clone(r.reg.keys)
}

// Modes returns every distinct non-empty mode the tables can produce
func (r *Resolver) Modes() []string {
	return slices.Clone(r.reg.modes)
}

func ExtensionForMimeType(mimeType string) string {
	return std.ExtensionForMimeType(mimeType)
}

func MimeTypesForExtension(ext string) []string {
	return std.MimeTypesForExtension(ext)
}

func MimeTypeForExtension(ext string) (string, bool) {
	return std.MimeTypeForExtension(ext)
}

func DetectModeFromFilename(filename string, allowMimeFallback bool) (string, bool) {
	return std.DetectModeFromFilename(filename, allowMimeFallback)
}

func DetectMode(filename, mimeType string, allowMimeFallback bool) (string, bool) {
	return std.DetectMode(filename, mimeType, allowMimeFallback)
}
