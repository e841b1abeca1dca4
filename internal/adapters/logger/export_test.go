package logger

// Exported for white-box testing.
var (
	CollectChain = collectChain
	FormatChain  = formatChain
	CollectAttrs = collectAttrs
)
