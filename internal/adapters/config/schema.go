package config

// Backfile represents the structure of the backsync configuration file.
type Backfile struct {
	SrcDir        string            `yaml:"src_dir"`
	DstBucketName string            `yaml:"dst_bucket_name"`
	AppKeyID      string            `yaml:"app_key_id"`
	AppKey        string            `yaml:"app_key"`
	GlobalIgnores []string          `yaml:"global_ignores"`
	SizeLimits    map[string]string `yaml:"size_limits"`
	IgnoreFile    string            `yaml:"ignore_file"`
	IgnoreEngine  string            `yaml:"ignore_engine"`
	StateFile     string            `yaml:"state_file"`
	Transfer      TransferDTO       `yaml:"transfer"`
}

// TransferDTO represents the transfer engine settings in the configuration.
type TransferDTO struct {
	Command          string   `yaml:"command"`
	Threads          int      `yaml:"threads"`
	CompareThreshold int      `yaml:"compare_threshold"`
	ExtraArgs        []string `yaml:"extra_args"`
}
