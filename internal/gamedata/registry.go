package gamedata

import (
	"errors"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: TotalWeight(enemies),
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	registry := NewEnemyRegistry(enemies)
	if registry.totalWeight <= 0 {
		return nil, errors.New("enemies.json has no positive spawn weight")
	}
	return registry, nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	i, ok := PickWeightedIndex(rng, r.enemies)
	if !ok {
		return nil
	}
	return &r.enemies[i]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
