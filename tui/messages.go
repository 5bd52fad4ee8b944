package tui

// taskDueMsg carries an expired scheduler task back into the update loop.
type taskDueMsg struct{ id uint64 }
