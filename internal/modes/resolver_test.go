package modes

import (
	"sort"
	"strings"
	"testing"

	"modemap/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionForMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"text/x-python", ".py"},
		{"application/json", ".json"},
		{"text/x-c++hdr", ".cpp"},
		{"text/plain", ".txt"},
		{"jinja2", ".jinja2"},
		{"text/x-apacheconf", ".htaccess"},
		{"application/x-troff", ".[1234567]"},
		// no patterns
		{"message/http", ".txt"},
		{"application/x-sparql-query", ".txt"},
		// first pattern is a bare filename
		{"text/x-kconfig", ".txt"},
		{"text/x-squidconf", ".txt"},
		// unregistered
		{"application/x-does-not-exist", ".txt"},
		{"", ".txt"},
		// normalised input
		{"text/x-python; charset=utf-8", ".py"},
		{"  text/x-go ", ".go"},
		{"TEXT/X-PYTHON", ".py"},
		{"text/s-plus", ".S"},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionForMimeType(tt.mimeType))
		})
	}
}

func TestExtensionForMimeTypeProperties(t *testing.T) {
	r := Default()
	for _, mt := range r.MimeTypes() {
		ext := r.ExtensionForMimeType(mt)
		require.NotEmpty(t, ext, mt)
		assert.True(t, strings.HasPrefix(ext, "."), "%s: %q", mt, ext)

		e, ok := r.Lookup(mt)
		require.True(t, ok)
		if len(e.Patterns) == 0 {
			assert.Equal(t, DefaultExtension, ext, mt)
			continue
		}
		first := strings.TrimPrefix(e.Patterns[0], "*")
		if strings.HasPrefix(first, ".") {
			assert.Equal(t, first, ext, mt)
		}
	}
}

func TestMimeTypesForExtension(t *testing.T) {
	t.Run("ambiguous extension", func(t *testing.T) {
		got := MimeTypesForExtension("m")
		assert.Equal(t, []string{"application/x-mason", "text/matlab", "text/octave", "text/x-objective-c"}, got)
	})

	t.Run("single match", func(t *testing.T) {
		mt, ok := MimeTypeForExtension("py")
		require.True(t, ok)
		assert.Equal(t, "text/x-python", mt)
		assert.Equal(t, []string{"text/x-python"}, MimeTypesForExtension("py"))
	})

	t.Run("first match is lexicographic", func(t *testing.T) {
		mt, ok := MimeTypeForExtension("md")
		require.True(t, ok)
		assert.Equal(t, "text/x-gfm", mt)
		assert.Equal(t, []string{"text/x-gfm", "text/x-markdown", "text/x-minidsrc"}, MimeTypesForExtension("md"))
	})

	t.Run("unknown extension", func(t *testing.T) {
		mt, ok := MimeTypeForExtension("nonexistent-ext-xyz")
		assert.False(t, ok)
		assert.Empty(t, mt)

		all := MimeTypesForExtension("nonexistent-ext-xyz")
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.Equal(t, []string{"text/S-plus", "text/x-gas"}, MimeTypesForExtension("S"))
		assert.Equal(t, []string{"text/x-gas"}, MimeTypesForExtension("s"))
	})

	t.Run("bare filenames never match", func(t *testing.T) {
		assert.Empty(t, MimeTypesForExtension("Makefile"))
		assert.Empty(t, MimeTypesForExtension("htaccess"))
		assert.Empty(t, MimeTypesForExtension(""))
	})

	t.Run("multi dot pattern", func(t *testing.T) {
		assert.Equal(t, []string{"text/x-cmake"}, MimeTypesForExtension("cmake.in"))
	})

	t.Run("leading dot tolerated", func(t *testing.T) {
		assert.Equal(t, MimeTypesForExtension("py"), MimeTypesForExtension(".py"))
	})

	t.Run("result is a copy", func(t *testing.T) {
		got := MimeTypesForExtension("m")
		got[0] = "mutated"
		assert.Equal(t, "application/x-mason", MimeTypesForExtension("m")[0])
	})
}

func TestEveryStarPatternIsFound(t *testing.T) {
	r := Default()
	for _, mt := range r.MimeTypes() {
		e, _ := r.Lookup(mt)
		for _, p := range e.Patterns {
			ext, ok := strings.CutPrefix(p, "*.")
			if !ok {
				continue
			}
			assert.Contains(t, r.MimeTypesForExtension(ext), mt, "pattern %s", p)
		}
	}
}

func TestSplitFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		base     string
		ext      string
		ok       bool
	}{
		{"simple", "main.go", "main", "go", true},
		{"multi dot joins without dots", "archive.tar.gz", "archivetar", "gz", true},
		{"three segments", "a.b.c", "ab", "c", true},
		{"no dot", "Makefile", "", "", false},
		{"empty", "", "", "", false},
		{"dotfile", ".bashrc", "", "bashrc", true},
		{"trailing dot", "notes.", "notes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext, ok := SplitFilename(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestDetectModeFromFilename(t *testing.T) {
	t.Run("override wins regardless of fallback", func(t *testing.T) {
		for _, fallback := range []bool{false, true} {
			mode, ok := DetectModeFromFilename("README.md", fallback)
			assert.True(t, ok)
			assert.Equal(t, "markdown", mode)
		}
	})

	t.Run("override is case insensitive", func(t *testing.T) {
		mode, ok := DetectModeFromFilename("CHANGES.MD", false)
		assert.True(t, ok)
		assert.Equal(t, "markdown", mode)
	})

	t.Run("fallback suppressed", func(t *testing.T) {
		mode, ok := DetectModeFromFilename("foo.qml", false)
		assert.False(t, ok)
		assert.Empty(t, mode)
	})

	t.Run("fallback with empty mode", func(t *testing.T) {
		mode, ok := DetectModeFromFilename("foo.qml", true)
		assert.True(t, ok)
		assert.Equal(t, "", mode)
	})

	t.Run("fallback with mode", func(t *testing.T) {
		mode, ok := DetectModeFromFilename("setup.py", true)
		assert.True(t, ok)
		assert.Equal(t, "python", mode)
	})

	t.Run("extension lowercased before lookup", func(t *testing.T) {
		mode, ok := DetectModeFromFilename("MAIN.GO", true)
		assert.True(t, ok)
		assert.Equal(t, "go", mode)
	})

	t.Run("path prefix ignored", func(t *testing.T) {
		mode, ok := DetectModeFromFilename("docs.v2/README.markdown", false)
		assert.True(t, ok)
		assert.Equal(t, "markdown", mode)

		_, ok = DetectModeFromFilename("release.d/Makefile", true)
		assert.False(t, ok)
	})

	t.Run("no extension", func(t *testing.T) {
		_, ok := DetectModeFromFilename("Makefile", true)
		assert.False(t, ok)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, ok := DetectModeFromFilename("data.zzzz", true)
		assert.False(t, ok)
	})
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mimeType string
		fallback bool
		want     string
		ok       bool
	}{
		{"filename beats mime", "notes.markdown", "text/plain", true, "markdown", true},
		{"override beats mime without fallback", "README.md", "text/x-rst", false, "markdown", true},
		{"mime when filename silent", "script", "text/x-python", false, "python", true},
		{"mime when fallback disabled", "foo.qml", "text/x-sh", false, "shell", true},
		{"empty filename mode falls to mime", "foo.qml", "text/javascript", true, "javascript", true},
		{"mime without mode", "foo", "text/x-abap", true, "", false},
		{"fallback mode", "lib.rs", "", true, "rust", true},
		{"nothing", "foo", "", true, "", false},
		{"unknown mime", "foo", "application/x-unknown", true, "", false},
		{"sniffed parameters", "LICENSE", "text/plain; charset=utf-8", false, "null", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, ok := DetectMode(tt.filename, tt.mimeType, tt.fallback)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{"README.md", "a.m", "foo.qml", "Makefile", "x.tar.gz"}
	for _, in := range inputs {
		m1, ok1 := DetectMode(in, "text/plain", true)
		m2, ok2 := DetectMode(in, "text/plain", true)
		assert.Equal(t, m1, m2)
		assert.Equal(t, ok1, ok2)

		b1, e1, s1 := SplitFilename(in)
		b2, e2, s2 := SplitFilename(in)
		assert.Equal(t, []interface{}{b1, e1, s1}, []interface{}{b2, e2, s2})
	}
	assert.Equal(t, MimeTypesForExtension("m"), MimeTypesForExtension("m"))
	assert.Equal(t, ExtensionForMimeType("text/x-sh"), ExtensionForMimeType("text/x-sh"))
}

func TestProposeFilename(t *testing.T) {
	r := New()
	assert.Equal(t, "main.py", r.ProposeFilename("main.go", "text/x-python"))
	assert.Equal(t, "archivetar.go", r.ProposeFilename("archive.tar.gz", "text/x-go"))
	assert.Equal(t, "filename1.sh", r.ProposeFilename("", "text/x-sh"))
	assert.Equal(t, "filename1.txt", r.ProposeFilename("Makefile", "message/http"))
	assert.Equal(t, "filename1.css", r.ProposeFilename(".bashrc", "text/css"))

	custom := New(WithDefaultFilename("snippet"))
	assert.Equal(t, "snippet.rs", custom.ProposeFilename("", "text/x-rustsrc"))
}

func TestDetectFromInput(t *testing.T) {
	r := New()

	t.Run("all offered", func(t *testing.T) {
		d, ok := r.DetectFromInput("tool.py", nil)
		require.True(t, ok)
		assert.Equal(t, Detection{Filename: "tool.py", MimeType: "text/x-python", Mode: "python"}, d)
	})

	t.Run("mode from a later mime type", func(t *testing.T) {
		// x-mason, matlab and octave have no mode
		d, ok := r.DetectFromInput("solver.m", nil)
		assert.False(t, ok, "%+v", d)

		d, ok = r.DetectFromInput("main.go", func(mt string) bool { return mt == "text/x-gosrc" })
		require.True(t, ok)
		assert.Equal(t, "go", d.Mode)
		assert.Equal(t, "text/x-gosrc", d.MimeType)
	})

	t.Run("override mode", func(t *testing.T) {
		d, ok := r.DetectFromInput("README.md", func(mt string) bool { return mt == "text/x-markdown" })
		require.True(t, ok)
		assert.Equal(t, "markdown", d.Mode)
		assert.Equal(t, "text/x-markdown", d.MimeType)
	})

	t.Run("nothing offered", func(t *testing.T) {
		_, ok := r.DetectFromInput("tool.py", func(string) bool { return false })
		assert.False(t, ok)
	})

	t.Run("no extension", func(t *testing.T) {
		_, ok := r.DetectFromInput("Makefile", nil)
		assert.False(t, ok)
	})

	t.Run("rebuilt filename", func(t *testing.T) {
		d, ok := r.DetectFromInput("my.app.JS", nil)
		require.True(t, ok)
		assert.Equal(t, "myapp.JS", d.Filename)
		assert.Equal(t, "javascript", d.Mode)
	})
}

func TestPreviewSupported(t *testing.T) {
	r := New()
	for _, mode := range []string{"markdown", "rst", "gfm"} {
		assert.True(t, r.PreviewSupported(mode), mode)
	}
	assert.False(t, r.PreviewSupported("python"))
	assert.False(t, r.PreviewSupported(""))

	custom := New(WithPreviewModes("asciidoc"))
	assert.True(t, custom.PreviewSupported("asciidoc"))
	assert.False(t, custom.PreviewSupported("markdown"))
}

func TestNewWithConfig(t *testing.T) {
	cfg := config.New()
	cfg.Editor.DefaultFilename = "untitled"
	cfg.Editor.PreviewModes = []string{"rst"}

	r := NewWithConfig(cfg)
	assert.Equal(t, "untitled.py", r.ProposeFilename("", "text/x-python"))
	assert.True(t, r.PreviewSupported("rst"))
	assert.False(t, r.PreviewSupported("gfm"))

	assert.NotNil(t, NewWithConfig(nil))
}

func TestMatchFilename(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"text/x-makefile"}, r.MatchFilename("Makefile"))
	assert.Equal(t, []string{"text/x-makefile"}, r.MatchFilename("src/Makefile.am"))
	assert.Equal(t, []string{"text/plain", "text/x-cmake", "text/x-robotframework"}, r.MatchFilename("CMakeLists.txt"))
	assert.Contains(t, r.MatchFilename("SConstruct"), "text/x-python")
	assert.Contains(t, r.MatchFilename(".bash_profile"), "text/x-sh")
	assert.Contains(t, r.MatchFilename("intro.lasso9"), "text/x-lasso")
	assert.Contains(t, r.MatchFilename("ls.1"), "application/x-troff")
	assert.Empty(t, r.MatchFilename("no-such-thing"))
}

func TestListing(t *testing.T) {
	r := Default()

	keys := r.MimeTypes()
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Len(t, keys, len(builtinEntries))

	keys[0] = "mutated"
	assert.NotEqual(t, "mutated", r.MimeTypes()[0])

	e, ok := r.Lookup("text/x-python")
	require.True(t, ok)
	e.Patterns[0] = "*.mutated"
	assert.Equal(t, ".py", r.ExtensionForMimeType("text/x-python"))

	_, ok = r.Lookup("nope/nope")
	assert.False(t, ok)

	modes := r.Modes()
	assert.True(t, sort.StringsAreSorted(modes))
	assert.Contains(t, modes, "markdown")
	assert.Contains(t, modes, "python")
	assert.NotContains(t, modes, "")
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	_, err := newRegistry([]Entry{{MimeType: "a/b"}, {MimeType: "a/b"}}, nil)
	assert.Error(t, err)

	_, err = newRegistry([]Entry{{MimeType: "a/b", Patterns: []string{"*.[ab"}}}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestMimeKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range builtinEntries {
		assert.False(t, seen[e.MimeType], e.MimeType)
		seen[e.MimeType] = true
	}
}
