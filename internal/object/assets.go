package object

import (
	"fmt"

	"github.com/tomz197/invaders/internal/sprite"
)

// Assets resolves the sprites every entity needs once, so a missing key fails at startup.
type Assets struct {
	Player      *sprite.Sprite
	PlayerLaser *sprite.Sprite
	Ships       map[Color]*sprite.Sprite
	Lasers      map[Color]*sprite.Sprite

	maxDimension int
}

// LoadAssets looks up every sprite the game uses in sheet.
func LoadAssets(sheet *sprite.Sheet) (*Assets, error) {
	a := &Assets{
		Ships:        make(map[Color]*sprite.Sprite, len(Colors)),
		Lasers:       make(map[Color]*sprite.Sprite, len(Colors)),
		maxDimension: sheet.MaxDimension(),
	}

	var err error
	if a.Player, err = sheet.Get("player"); err != nil {
		return nil, fmt.Errorf("failed to load player assets: %w", err)
	}
	if a.PlayerLaser, err = sheet.Get("player_laser"); err != nil {
		return nil, fmt.Errorf("failed to load player assets: %w", err)
	}

	for _, c := range Colors {
		ship, err := sheet.Get(c.String() + "_ship")
		if err != nil {
			return nil, fmt.Errorf("failed to load %s enemy assets: %w", c, err)
		}
		laser, err := sheet.Get(c.String() + "_laser")
		if err != nil {
			return nil, fmt.Errorf("failed to load %s enemy assets: %w", c, err)
		}
		a.Ships[c] = ship
		a.Lasers[c] = laser
	}
	return a, nil
}

// MaxDimension returns the largest sprite edge in the sheet the assets came from.
func (a *Assets) MaxDimension() int {
	return a.maxDimension
}
