package types

// NodeType distinguishes files from directories in the repository browser
type NodeType string

const (
	FileNode NodeType = "file"
	DirNode  NodeType = "dir"
)

// Node is a repository path offered to the node filter
type Node struct {
	Path string   `json:"path"`
	Type NodeType `json:"type"`
}
