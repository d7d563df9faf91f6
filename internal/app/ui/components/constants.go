package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate driving animations
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from UITickInterval
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsInterval is how often the footer resource usage is refreshed
	StatsInterval = 2 * time.Second
)

// Layout constants
const (
	PanelBorderWidth  = 2
	FilterBarHeight   = 3
	FooterHeight      = 2
	DropdownMaxHeight = 12
	MinContentHeight  = 3
	MinPanelWidth     = 20
	TimestampWidth    = 24
	SeverityWidth     = 5
)

// UI indicators
const (
	IndicatorEmpty    = "  "
	IndicatorSelected = "▸ "
	Ellipsis          = "…"
)

// Box drawing characters for panel borders
const (
	BorderTopLeft     = "╭"
	BorderTopRight    = "╮"
	BorderBottomLeft  = "╰"
	BorderBottomRight = "╯"
	BorderHorizontal  = "─"
	BorderVertical    = "│"
)
