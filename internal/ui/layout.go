package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which cover links are hidden
	// from the results list.
	LayoutCompactWidth = 100

	// OverlayMaxWidth caps the width of the detail, help, and log overlays.
	OverlayMaxWidth = 100
)

// Log overlay limits.
const (
	// LogOverlayLines is how many trailing log lines the overlay loads.
	LogOverlayLines = 200
)

// Fixed rows around the results list: header, input box (3), footer.
const chromeRows = 5

// Input limits.
const (
	QueryCharLimit = 200
)
