package domain

import "time"

// ScanRecord summarises one size scan of a source directory.
type ScanRecord struct {
	SrcDir          string    `json:"src_dir"`
	TotalBytes      int64     `json:"total_bytes"`
	IncludedFiles   int       `json:"included_files"`
	ExcludedEntries int       `json:"excluded_entries"`
	Fingerprint     string    `json:"exclusion_fingerprint"`
	ScannedAt       time.Time `json:"scanned_at"`
}
