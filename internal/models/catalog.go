package models

import (
	"regexp"
	"time"
)

// AgentRole is an agent's class (Duelist, Initiator, Sentinel, Controller)
type AgentRole struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	DisplayIcon string `json:"displayIcon"`
}

// AgentAbility is one of an agent's four ability slots
type AgentAbility struct {
	Slot        string `json:"slot"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	DisplayIcon string `json:"displayIcon"`
}

// Agent is a playable character from the upstream catalog
type Agent struct {
	UUID                     string         `json:"uuid"`
	DisplayName              string         `json:"displayName"`
	Description              string         `json:"description"`
	DisplayIcon              string         `json:"displayIcon"`
	FullPortrait             string         `json:"fullPortrait"`
	Background               string         `json:"background"`
	BackgroundGradientColors []string       `json:"backgroundGradientColors"`
	IsPlayableCharacter      bool           `json:"isPlayableCharacter"`
	Role                     *AgentRole     `json:"role"`
	Abilities                []AgentAbility `json:"abilities"`
}

// SkinChroma is a color variant of a weapon skin
type SkinChroma struct {
	UUID        string `json:"uuid"`
	DisplayIcon string `json:"displayIcon"`
	FullRender  string `json:"fullRender"`
	Swatch      string `json:"swatch"`
}

// SkinLevel is an upgrade stage of a weapon skin
type SkinLevel struct {
	UUID        string `json:"uuid"`
	DisplayIcon string `json:"displayIcon"`
}

// WeaponSkin is a cosmetic skin belonging to one weapon
type WeaponSkin struct {
	UUID            string       `json:"uuid"`
	DisplayName     string       `json:"displayName"`
	ThemeUUID       string       `json:"themeUuid"`
	ContentTierUUID string       `json:"contentTierUuid"`
	DisplayIcon     string       `json:"displayIcon"`
	Wallpaper       string       `json:"wallpaper"`
	Chromas         []SkinChroma `json:"chromas"`
	Levels          []SkinLevel  `json:"levels"`
}

// Weapon is a weapon with its full skin list
type Weapon struct {
	UUID        string       `json:"uuid"`
	DisplayName string       `json:"displayName"`
	Category    string       `json:"category"`
	DisplayIcon string       `json:"displayIcon"`
	Skins       []WeaponSkin `json:"skins"`
}

// ContentTier ranks a skin line; DevName classifies it, Rank orders display
type ContentTier struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	DevName     string `json:"devName"`
	Rank        int    `json:"rank"`
	DisplayIcon string `json:"displayIcon"`
}

// Theme groups skins into a named line; joined to bundles by display name
type Theme struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	DisplayIcon string `json:"displayIcon"`
}

// Bundle is a purchasable skin collection from the upstream catalog
type Bundle struct {
	UUID               string `json:"uuid"`
	DisplayName        string `json:"displayName"`
	DisplayNameSubText string `json:"displayNameSubText"`
	Description        string `json:"description"`
	DisplayIcon        string `json:"displayIcon"`
	DisplayIcon2       string `json:"displayIcon2"`
	VerticalPromoImage string `json:"verticalPromoImage"`
}

// SkinWithWeapon is a skin flattened with its owning weapon's identity
type SkinWithWeapon struct {
	WeaponSkin
	WeaponName string `json:"weaponName"`
	WeaponUUID string `json:"weaponUuid"`
}

var levelNamePattern = regexp.MustCompile(`Level \d+`)

// IsLevelVariant reports whether a skin display name is an upgrade-animation
// stage rather than a distinct cosmetic. Those never appear in user-facing
// lists.
func IsLevelVariant(displayName string) bool {
	return levelNamePattern.MatchString(displayName)
}

// DisplayImage walks the fixed image preference order and returns the first
// usable reference, or "" when the skin has nothing to render.
func (s *WeaponSkin) DisplayImage() string {
	if len(s.Chromas) > 0 && s.Chromas[0].FullRender != "" {
		return s.Chromas[0].FullRender
	}
	if s.DisplayIcon != "" {
		return s.DisplayIcon
	}
	if len(s.Levels) > 0 && s.Levels[0].DisplayIcon != "" {
		return s.Levels[0].DisplayIcon
	}
	return ""
}

// CardImage is the preference order used by browse grids (icon first)
func (s *WeaponSkin) CardImage() string {
	if s.DisplayIcon != "" {
		return s.DisplayIcon
	}
	if len(s.Chromas) > 0 && s.Chromas[0].DisplayIcon != "" {
		return s.Chromas[0].DisplayIcon
	}
	if len(s.Levels) > 0 && s.Levels[0].DisplayIcon != "" {
		return s.Levels[0].DisplayIcon
	}
	return ""
}

// SkinFilterParams narrows and orders the flattened skin list
type SkinFilterParams struct {
	Weapon   string
	TierUUID string
	Query    string
	Sort     string
	Limit    int
	Offset   int
}

// SkinsResponse is the paginated browse result
type SkinsResponse struct {
	Skins      []SkinWithWeapon `json:"skins"`
	TotalCount int              `json:"totalCount"`
	FetchedAt  time.Time        `json:"fetchedAt"`
}

// BundleWithSkins joins a bundle to its skins via theme name equality
type BundleWithSkins struct {
	Bundle
	Skins []SkinWithWeapon `json:"skins"`
}
