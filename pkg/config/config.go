// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// SimConfig contains the static configuration for one simulation run: the
// teams present, the tick length reload timers decrement by (TTLs count
// whole ticks), and the game rules.
type SimConfig struct {
	ScenarioID uuid.UUID    `json:"scenarioId"`
	WorldSize  float64      `json:"worldSize"`
	TickLength float64      `json:"tickLength"`
	Teams      []TeamConfig `json:"teams"`
	GameRules  GameRules    `json:"gameRules"`
}

// TeamConfig names one side of the simulation.
type TeamConfig struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// GameRules holds a run-length limit and an orders payload size limit. The
// simulation does not read either field: runs are not stopped at MaxTicks,
// and spawn and missile-launch orders are not checked against MaxOrdersBytes.
type GameRules struct {
	MaxTicks       int `json:"maxTicks"`
	MaxOrdersBytes int `json:"maxOrdersBytes"`
}

// LoadConfig loads a SimConfig from a JSON file.
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg SimConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes a SimConfig to a JSON file.
func SaveConfig(cfg *SimConfig, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a SimConfig for a two-team skirmish.
func DefaultConfig() *SimConfig {
	return &SimConfig{
		ScenarioID: uuid.New(),
		WorldSize:  20000,
		TickLength: 1.0 / 60.0,
		Teams: []TeamConfig{
			{Name: "Alpha", Color: "#2050FF"},
			{Name: "Bravo", Color: "#FF5020"},
		},
		GameRules: GameRules{
			MaxTicks:       0,
			MaxOrdersBytes: MaxOrdersSize,
		},
	}
}
