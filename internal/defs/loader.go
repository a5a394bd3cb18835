// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// LoadEnemyDefinitions переопределяет EnemyLibrary из JSON-файла.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition)
	order := make([]string, 0, len(enemyDefs))
	for _, def := range enemyDefs {
		lib[def.ID] = def
		order = append(order, def.ID)
	}
	EnemyLibrary = lib
	EnemyVariants = order

	log.Info("loaded enemy definitions", "count", len(lib), "path", path)
	return nil
}

// LoadPowerUpDefinitions переопределяет PowerUpLibrary из JSON-файла.
func LoadPowerUpDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read powerup definitions file: %w", err)
	}

	var powerDefs []PowerUpDefinition
	if err := json.Unmarshal(file, &powerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal powerup definitions: %w", err)
	}

	lib := make(map[PowerUpType]PowerUpDefinition)
	order := make([]PowerUpType, 0, len(powerDefs))
	for _, def := range powerDefs {
		lib[def.ID] = def
		order = append(order, def.ID)
	}
	PowerUpLibrary = lib
	PowerUpOrder = order

	log.Info("loaded powerup definitions", "count", len(lib), "path", path)
	return nil
}
