// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadEnemyDefinitions reads the enemy configuration file and replaces the EnemyLibrary.
// Порядок появления берётся из порядка записей в файле.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	enemyDefs, err := ParseEnemyDefinitions(file)
	if err != nil {
		return err
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	order := make([]string, 0, len(enemyDefs))
	for _, def := range enemyDefs {
		if _, dup := library[def.ID]; !dup {
			order = append(order, def.ID)
		}
		library[def.ID] = def
	}
	EnemyLibrary = library
	EnemySpawnOrder = order

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// ParseEnemyDefinitions декодирует и проверяет список врагов.
func ParseEnemyDefinitions(data []byte) ([]EnemyDefinition, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	bosses := 0
	for i, def := range enemyDefs {
		switch {
		case def.ID == "":
			return nil, fmt.Errorf("enemy definition %d has no id", i)
		case def.Health <= 0:
			return nil, fmt.Errorf("enemy %s: health must be positive", def.ID)
		case def.SpawnRate <= 0:
			return nil, fmt.Errorf("enemy %s: spawn_rate must be positive", def.ID)
		case def.Visuals.Width <= 0 || def.Visuals.Height <= 0:
			return nil, fmt.Errorf("enemy %s: visuals width and height must be positive", def.ID)
		case def.SpawnMaxX < def.SpawnMinX:
			return nil, fmt.Errorf("enemy %s: spawn_max_x < spawn_min_x", def.ID)
		}
		if def.IsBoss {
			bosses++
		}
	}
	if bosses > 1 {
		return nil, fmt.Errorf("expected at most one boss definition, got %d", bosses)
	}
	return enemyDefs, nil
}
