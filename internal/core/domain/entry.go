package domain

// Reason names the rule layer that excluded an entry.
type Reason string

const (
	// ReasonNone marks an included entry.
	ReasonNone Reason = ""
	// ReasonInaccessible marks an entry that could not be stat'ed or listed.
	ReasonInaccessible Reason = "inaccessible"
	// ReasonGlobal marks an entry matched by a global ignore pattern.
	ReasonGlobal Reason = "global"
	// ReasonSize marks a file matched by a size rule.
	ReasonSize Reason = "size"
	// ReasonIgnoreFile marks an entry matched by an inherited ignore file.
	ReasonIgnoreFile Reason = "ignore-file"
)

// Entry is one filesystem object visited during a traversal.
type Entry struct {
	// Path is the absolute path of the entry.
	Path string
	// IsDir reports whether the entry is a directory.
	IsDir bool
	// Size is the stat size in bytes. It is zero for inaccessible entries.
	Size int64
	// Excluded reports whether the entry must not be transferred.
	// Excluding a directory excludes its whole subtree.
	Excluded bool
	// Reason is the first rule layer that excluded the entry.
	Reason Reason
}

// Exclusion pairs an excluded entry with its transfer-engine pattern.
type Exclusion struct {
	Entry   Entry
	Pattern string
}

// SizeBucket groups the paths that share one exact file size.
type SizeBucket struct {
	Size  int64
	Paths []string
}
