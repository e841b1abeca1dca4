package domain

// TransferRequest is everything the transfer engine needs for one sync.
type TransferRequest struct {
	Source   string
	Bucket   string
	KeyID    string
	Key      string
	DryRun   bool
	Settings TransferConfig

	// ExcludeFiles holds patterns of excluded files.
	ExcludeFiles []string
	// ExcludeDirs holds patterns of excluded directories.
	ExcludeDirs []string
}
