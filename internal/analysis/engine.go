package analysis

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"modemap/internal/config"
	serr "modemap/internal/errors"
	log "modemap/internal/log"
	"modemap/internal/modes"
	"modemap/pkg/types"

	"github.com/gabriel-vasile/mimetype"
)

// Engine sniffs file contents and resolves editor modes for files
type Engine struct {
	config   *config.Config
	resolver *modes.Resolver
}

// New creates an Engine with the default configuration
func New() *Engine {
	return NewWithConfig(config.New())
}

// NewWithConfig creates an Engine using cfg
func NewWithConfig(cfg *config.Config) *Engine {
	e := &Engine{}
	e.SetConfig(cfg)
	return e
}

// SetConfig replaces the engine configuration and the resolver built from it
func (e *Engine) SetConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.New()
	}
	e.config = cfg
	e.resolver = modes.NewWithConfig(cfg)
	if cfg.Scan.SniffLimit > 0 {
		mimetype.SetLimit(cfg.Scan.SniffLimit)
	}
}

// Resolver returns the resolver the engine uses
func (e *Engine) Resolver() *modes.Resolver {
	return e.resolver
}

// Scan sniffs the content type of the file at path and resolves its mode.
// The mode comes from the extension first, then from the MIME types whose
// patterns match the whole name, and only then from the sniffed type.
func (e *Engine) Scan(path string) (*types.FileInfo, error) {
	logger := log.LogWithFields(log.F("path", path))

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to stat file", path, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to stat file", path, serr.FileAccessDenied, err)
	}
	if info.IsDir() {
		return nil, serr.NewFileError("not a regular file", path, serr.InvalidPath, nil)
	}

	sniffed, err := mimetype.DetectFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, serr.NewFileError("failed to open file", path, serr.FileAccessDenied, err)
		}
		return nil, serr.NewFileError("failed to sniff file", path, serr.FileOperationFailed, err)
	}

	contentType, _, _ := strings.Cut(sniffed.String(), ";")
	result := &types.FileInfo{
		Path:        path,
		ContentType: contentType,
		MimeTypes:   e.resolver.MatchFilename(path),
		Size:        info.Size(),
		Binary:      !isText(sniffed),
	}

	mode, _ := e.resolver.DetectModeFromFilename(path, e.config.Editor.MimeFallback)
	if mode == "" {
		mode = e.modeFromCandidates(result.MimeTypes)
	}
	if mode == "" {
		mode, _ = e.resolver.DetectMode(path, contentType, false)
	}
	result.Mode = mode

	if result.Binary {
		result.Tags = append(result.Tags, "binary")
	} else {
		result.Tags = append(result.Tags, "text")
	}
	if e.resolver.PreviewSupported(mode) {
		result.Tags = append(result.Tags, "preview")
	}

	logger.With(log.F("type", contentType), log.F("mode", result.DisplayMode())).Debug("File scanned")
	return result, nil
}

func (e *Engine) modeFromCandidates(candidates []string) string {
	for _, mt := range candidates {
		if entry, ok := e.resolver.Lookup(mt); ok && entry.Mode != "" {
			return entry.Mode
		}
	}
	return ""
}

// isText walks the sniffed type's ancestry looking for text/plain
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// ScanTree scans every file and directory below root. Paths are relative to
// root with forward slashes, in lexical order. Configured skip directories
// are not descended into and files that cannot be scanned are logged and
// left out.
func (e *Engine) ScanTree(root string) ([]*types.FileInfo, error) {
	logger := log.LogWithFields(log.F("directory", root))

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to read directory", root, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to read directory", root, serr.FileAccessDenied, err)
	}
	if !info.IsDir() {
		return nil, serr.NewFileError("not a directory", root, serr.InvalidPath, nil)
	}

	results := []*types.FileInfo{}
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.With(log.F("entry", path), log.F("error", err.Error())).Warn("Skipping unreadable entry")
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if e.config.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			results = append(results, &types.FileInfo{
				Path:        rel,
				ContentType: types.DirectoryType,
				Tags:        []string{"directory"},
			})
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fileInfo, scanErr := e.Scan(path)
		if scanErr != nil {
			log.LogWithError(scanErr).Warn("Error scanning file")
			return nil
		}
		fileInfo.Path = rel
		results = append(results, fileInfo)
		return nil
	})
	if walkErr != nil {
		return nil, serr.NewFileError("failed to walk directory", root, serr.FileOperationFailed, walkErr)
	}

	logger.With(log.F("entries", len(results))).Info("Directory scanned")
	return results, nil
}

// Nodes converts scan results to node filter input
func Nodes(infos []*types.FileInfo) []types.Node {
	nodes := make([]types.Node, 0, len(infos))
	for _, info := range infos {
		typ := types.FileNode
		if info.IsDir() {
			typ = types.DirNode
		}
		nodes = append(nodes, types.Node{Path: info.Path, Type: typ})
	}
	return nodes
}
