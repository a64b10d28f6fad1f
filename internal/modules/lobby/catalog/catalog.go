// Package catalog ships the default reference table: the immutable mapping
// from set key to locations and their role lists. The core only ever reads
// it through the domain.Catalog type.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
)

//go:embed game_data.json
var gameData []byte

// Load parses the embedded table. Called once at startup; the result is
// never mutated afterwards.
func Load() (domain.Catalog, error) {
	var c domain.Catalog
	if err := json.Unmarshal(gameData, &c); err != nil {
		return nil, fmt.Errorf("failed to parse embedded game data: %w", err)
	}

	if len(c[domain.DefaultPoolKey]) == 0 {
		return nil, fmt.Errorf("embedded game data is missing the '%s' set", domain.DefaultPoolKey)
	}

	for key, cards := range c {
		for _, card := range cards {
			if card.Location == "" || len(card.Roles) == 0 {
				return nil, fmt.Errorf("set '%s' contains an invalid location entry", key)
			}
		}
	}

	return c, nil
}
