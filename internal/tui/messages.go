package tui

import "modemap/pkg/types"

// ScanDoneMsg carries the result of scanning the browsed directory
type ScanDoneMsg struct {
	Infos []*types.FileInfo
	Err   error
}
