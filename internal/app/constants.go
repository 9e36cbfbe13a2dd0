package app

import "time"

// Layout constants define the fixed dimensions of the workspace chrome.
const (
	// DividerThickness is the number of cells the divider occupies across
	// its axis.
	DividerThickness = 1

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Pointer constants control how terminal mouse events become divider gestures.
const (
	// DoubleClickInterval is the longest gap between two divider clicks that
	// still counts as a double click.
	DoubleClickInterval = 400 * time.Millisecond
)

// Rendering constants control render timing and optimization
const (
	// RenderDebounce is the delay between the last edit (or a resize) and
	// the preview re-render.
	RenderDebounce = 250 * time.Millisecond

	// RenderWidthBucket is the granularity for width-based render caching
	// Widths are rounded down to a multiple of this value
	RenderWidthBucket = 10
)

// File system permissions
const (
	// DirPermission is the permission mode for newly created directories
	DirPermission = 0o755

	// FilePermission is the permission mode for newly created files
	FilePermission = 0o644
)

// Watcher constants
const (
	// DefaultFileWatchInterval is the poll interval for external changes to
	// the edited file.
	DefaultFileWatchInterval = 2 * time.Second
)

// Pane chrome
const (
	// paneHeaderRows is the title row drawn inside each pane border.
	paneHeaderRows = 1
)
