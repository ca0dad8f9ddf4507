package types

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// PlainMode is shown when no syntax mode could be resolved for a file
const PlainMode = "plain"

// DirectoryType is the content type reported for directories
const DirectoryType = "inode/directory"

// IsDir reports whether the entry is a directory
func (f *FileInfo) IsDir() bool {
	return f.ContentType == DirectoryType
}

// FileInfo represents an analyzed file: its sniffed content type, the
// MIME types its name is registered under and the editor mode resolved
// for it.
type FileInfo struct {
	Path        string   `json:"path"`
	ContentType string   `json:"type"`
	Mode        string   `json:"mode"`
	MimeTypes   []string `json:"mime_types,omitempty"`
	Size        int64    `json:"size"`
	Binary      bool     `json:"binary"`
	Tags        []string `json:"tags,omitempty"`
}

// Name returns the base name of the file
func (f *FileInfo) Name() string {
	return filepath.Base(f.Path)
}

// DisplayMode returns the resolved mode, or PlainMode when there is none
func (f *FileInfo) DisplayMode() string {
	if f.Mode == "" {
		return PlainMode
	}
	return f.Mode
}

// ToJSON converts FileInfo to JSON string
func (f *FileInfo) ToJSON() string {
	jsonBytes, _ := json.Marshal(f)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (f *FileInfo) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", f.Path))
	sb.WriteString(fmt.Sprintf("Type: %s\n", f.ContentType))
	sb.WriteString(fmt.Sprintf("Mode: %s\n", f.DisplayMode()))
	if len(f.MimeTypes) > 0 {
		sb.WriteString(fmt.Sprintf("Candidates: %s\n", strings.Join(f.MimeTypes, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Size: %s\n", humanize.Bytes(uint64(f.Size))))
	if len(f.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(f.Tags, ", ")))
	}
	return sb.String()
}
