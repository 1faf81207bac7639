package models

// PoolItem is one candidate in a roulette pool, image already resolved.
// Items without a usable image never become PoolItems.
type PoolItem struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	TierName string `json:"tierName,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// RouletteWeapon is a weapon whose skins are pre-filtered to roulette-eligible
// tiers, sorted for display
type RouletteWeapon struct {
	UUID        string     `json:"uuid"`
	DisplayName string     `json:"displayName"`
	DisplayIcon string     `json:"displayIcon"`
	Category    string     `json:"category"`
	Skins       []PoolItem `json:"skins"`
}

// RouletteMode selects the candidate source for a spin pool
type RouletteMode string

const (
	// ModeAll draws from every eligible item
	ModeAll RouletteMode = "all"
	// ModeSelection restricts the draw to the profile's selection set
	ModeSelection RouletteMode = "selection"
)

// Valid reports whether the mode is one of the two known values
func (m RouletteMode) Valid() bool {
	return m == ModeAll || m == ModeSelection
}
