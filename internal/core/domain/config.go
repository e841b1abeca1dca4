package domain

// IgnoreEngine selects the ignore-file matcher implementation.
type IgnoreEngine string

const (
	// IgnoreEnginePattern translates each ignore line into a path regex.
	IgnoreEnginePattern IgnoreEngine = "pattern"
	// IgnoreEngineGit evaluates ignore lines with directory awareness.
	IgnoreEngineGit IgnoreEngine = "git"
)

// Defaults applied by the configuration loaders.
const (
	DefaultIgnoreFile       = ".gitignore"
	DefaultStateFile        = "backsync_state.json"
	DefaultTransferCommand  = "b2"
	DefaultTransferThreads  = 10
	DefaultCompareThreshold = 10

	// StateFileDisabled turns the scan history off.
	StateFileDisabled = "-"
)

// Config is the validated runtime configuration.
type Config struct {
	// SrcDir is the absolute path of the tree to back up.
	SrcDir        string
	DstBucketName string
	AppKeyID      string
	AppKey        string

	// GlobalIgnores are regexes matched against every absolute path.
	GlobalIgnores []string
	// SizeLimits maps a path regex to a threshold spec such as ">5".
	SizeLimits map[string]string

	IgnoreFile   string
	IgnoreEngine IgnoreEngine
	StateFile    string

	Transfer TransferConfig
}

// TransferConfig configures the external transfer engine.
type TransferConfig struct {
	Command          string
	Threads          int
	CompareThreshold int
	ExtraArgs        []string
}

// HistoryEnabled reports whether scan records should be persisted.
func (c *Config) HistoryEnabled() bool {
	return c.StateFile != "" && c.StateFile != StateFileDisabled
}
