package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidGeneration is returned by Validate for unusable tunables
var ErrInvalidGeneration = errors.New("invalid generation config")

// Generation holds every tunable used while building a level
type Generation struct {
	Width           int     `json:"width"`             // Grid width in tiles
	Height          int     `json:"height"`            // Grid height in tiles
	MaxFlowDistance float64 `json:"max_flow_distance"` // Flow map exploration horizon

	// Cellular automata
	AutomataPasses        int `json:"automata_passes"`         // Smoothing passes over the noise map
	AutomataWallThreshold int `json:"automata_wall_threshold"` // Noise roll (0-99) at or below which a tile starts as wall

	// Drunkard's walk
	StaggerDistance   int     `json:"stagger_distance"`    // Step budget per walk
	DesiredFloorRatio float64 `json:"desired_floor_ratio"` // Fraction of tiles that must end up floor
	MaxDrunkardWalks  int     `json:"max_drunkard_walks"`  // Hard cap on walks per level

	// Rooms and corridors
	NumRooms        int `json:"num_rooms"`         // Target number of rooms
	MaxRoomAttempts int `json:"max_room_attempts"` // Rectangle samples before settling for fewer rooms

	// Monster spawns
	NumMonsters      int     `json:"num_monsters"`       // Spawn points drawn per level
	MinSpawnDistance float64 `json:"min_spawn_distance"` // Minimum Euclidean distance from the player start

	// Prefab overlay
	PrefabAttempts    int     `json:"prefab_attempts"`     // Placement retries before skipping the prefab
	PrefabMinDistance float64 `json:"prefab_min_distance"` // Some cell must be farther than this from the player

	// Levels
	FinalLevel int `json:"final_level"` // Depth at which the amulet replaces the exit
}

// DefaultGeneration returns the standard tuning
func DefaultGeneration() Generation {
	return Generation{
		Width:                 MapWidth,
		Height:                MapHeight,
		MaxFlowDistance:       MaxFlowDistance,
		AutomataPasses:        10,
		AutomataWallThreshold: 55,
		StaggerDistance:       400,
		DesiredFloorRatio:     1.0 / 3.0,
		MaxDrunkardWalks:      20000,
		NumRooms:              20,
		MaxRoomAttempts:       2000,
		NumMonsters:           50,
		MinSpawnDistance:      10.0,
		PrefabAttempts:        10,
		PrefabMinDistance:     20.0,
		FinalLevel:            2,
	}
}

// LoadGeneration reads a JSON config file; fields missing from the file keep their defaults
func LoadGeneration(filePath string) (Generation, error) {
	cfg := DefaultGeneration()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read generation config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse generation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that the tunables can drive every architect
func (g Generation) Validate() error {
	switch {
	case g.Width < 12 || g.Height < 12:
		// Rooms sample positions in [1, size-10)
		return fmt.Errorf("%w: map %dx%d smaller than 12x12", ErrInvalidGeneration, g.Width, g.Height)
	case g.MaxFlowDistance <= 0:
		return fmt.Errorf("%w: max_flow_distance must be positive", ErrInvalidGeneration)
	case g.AutomataPasses < 0:
		return fmt.Errorf("%w: automata_passes must not be negative", ErrInvalidGeneration)
	case g.AutomataWallThreshold < 0 || g.AutomataWallThreshold > 99:
		return fmt.Errorf("%w: automata_wall_threshold must be within 0-99", ErrInvalidGeneration)
	case g.StaggerDistance <= 0 || g.MaxDrunkardWalks <= 0:
		return fmt.Errorf("%w: drunkard budgets must be positive", ErrInvalidGeneration)
	case g.DesiredFloorRatio <= 0 || g.DesiredFloorRatio > 1:
		return fmt.Errorf("%w: desired_floor_ratio must be within (0, 1]", ErrInvalidGeneration)
	case g.NumRooms <= 0 || g.MaxRoomAttempts <= 0:
		return fmt.Errorf("%w: room counts must be positive", ErrInvalidGeneration)
	case g.NumMonsters < 0 || g.MinSpawnDistance < 0:
		return fmt.Errorf("%w: spawn settings must not be negative", ErrInvalidGeneration)
	case g.PrefabAttempts < 0 || g.PrefabMinDistance < 0:
		return fmt.Errorf("%w: prefab settings must not be negative", ErrInvalidGeneration)
	case g.FinalLevel < 0:
		return fmt.Errorf("%w: final_level must not be negative", ErrInvalidGeneration)
	}
	return nil
}
