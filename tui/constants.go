package tui

import "time"

const (
	// referenceLineRows is the tracker's activation line, in rows below the
	// top of the page body.
	referenceLineRows = 3
	// navHeight is the nav bar above the page body; footerHeight the key help below it.
	navHeight    = 1
	footerHeight = 1

	wheelStep     = 3
	pageMargin    = 2
	maxCardWidth  = 64
	wideNavWidth  = 72
	menuWidth     = 14
	freshTrailAge = 300 * time.Millisecond
	fadeTrailAge  = 700 * time.Millisecond
)
