package config

// Viewer layout configuration
const (
	// Cell size in pixels when rendering a level
	ViewerCellSize = 6

	// Window dimensions in pixels (derived from level dimensions)
	WindowWidth  = LevelWidth * ViewerCellSize
	WindowHeight = LevelHeight * ViewerCellSize
)

// GetWindowSize returns the recommended viewer window size.
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
