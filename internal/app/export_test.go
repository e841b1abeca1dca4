package app

// Exported for white-box testing.
var (
	RenderReport = renderReport
	RenderDelta  = renderDelta
)
