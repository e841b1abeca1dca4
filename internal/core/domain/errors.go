package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = zerr.New("no config file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingConfigKey is returned when a required configuration key is absent.
	ErrMissingConfigKey = zerr.New("required config key is missing")

	// ErrSourceNotFound is returned when the configured source directory does not exist.
	ErrSourceNotFound = zerr.New("source directory does not exist")

	// ErrSourceNotDirectory is returned when the configured source is not a directory.
	ErrSourceNotDirectory = zerr.New("source path is not a directory")

	// ErrInvalidPattern is returned when a configured regex does not compile.
	ErrInvalidPattern = zerr.New("invalid path pattern")

	// ErrUnknownIgnoreEngine is returned for an unsupported ignore_engine value.
	ErrUnknownIgnoreEngine = zerr.New("unknown ignore engine, expected 'pattern' or 'git'")

	// ErrIgnoreCompileFailed is returned when an ignore file cannot be compiled.
	ErrIgnoreCompileFailed = zerr.New("failed to compile ignore file")

	// ErrTransferFailed is returned when the transfer engine exits unsuccessfully.
	ErrTransferFailed = zerr.New("transfer command failed")

	// ErrStoreReadFailed is returned when the scan history cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read scan history")

	// ErrStoreWriteFailed is returned when the scan history cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write scan history")

	// ErrExportFailed is returned when the CSV export cannot be written.
	ErrExportFailed = zerr.New("failed to write csv export")
)
