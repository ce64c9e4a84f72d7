package config

// Map and viewer layout configuration
const (
	// Default grid size for every generated level
	MapWidth  = 80
	MapHeight = 50

	// Flow map exploration horizon; anything farther counts as unreachable
	MaxFlowDistance = 1024.0

	// Tile size in pixels for the map viewer
	TileSize = 12

	// Status bar height in pixels under the map
	StatusBarHeight = 36
)

// GetScreenDimensions returns the viewer dimensions in pixels for a map of the given size
func GetScreenDimensions(mapWidth, mapHeight int) (width, height int) {
	return mapWidth * TileSize, mapHeight*TileSize + StatusBarHeight
}
