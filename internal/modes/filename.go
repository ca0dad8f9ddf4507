package modes

import "strings"

// SplitFilename splits filename on its dots. The extension is the last
// segment and the base name is every preceding segment joined without the
// dots, so "archive.tar.gz" gives ("archivetar", "gz"). A name without a dot
// has neither and ok is false.
func SplitFilename(filename string) (base, ext string, ok bool) {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return "", "", false
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], ""), parts[last], true
}

func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

func lowerExt(filename string) (string, bool) {
	_, ext, ok := SplitFilename(baseName(filename))
	if !ok {
		return "", false
	}
	return strings.ToLower(ext), true
}
