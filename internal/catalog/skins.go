package catalog

import (
	"sort"
	"strings"

	"github.com/mohaak7/valorant-hub/internal/models"
	"github.com/mohaak7/valorant-hub/internal/pricing"
)

// weaponCategoryOrder sorts the roulette weapon grid: rifles and heavies
// first, sidearms and melee last
var weaponCategoryOrder = map[string]int{
	"EEquippableCategory::Rifle":   0,
	"EEquippableCategory::Heavy":   1,
	"EEquippableCategory::SMG":     2,
	"EEquippableCategory::Shotgun": 3,
	"EEquippableCategory::Sidearm": 4,
	"EEquippableCategory::Melee":   5,
}

// AllSkins flattens every weapon's skin list, excluding "Level N" upgrade
// stages, each annotated with its owning weapon
func (s *Service) AllSkins() []models.SkinWithWeapon {
	snap := s.snapshot()
	skins := make([]models.SkinWithWeapon, 0)
	for _, w := range snap.Weapons {
		for _, sk := range w.Skins {
			if models.IsLevelVariant(sk.DisplayName) {
				continue
			}
			skins = append(skins, models.SkinWithWeapon{
				WeaponSkin: sk,
				WeaponName: w.DisplayName,
				WeaponUUID: w.UUID,
			})
		}
	}
	return skins
}

// SkinByUUID looks up one flattened skin
func (s *Service) SkinByUUID(uuid string) (models.SkinWithWeapon, bool) {
	for _, sk := range s.AllSkins() {
		if sk.UUID == uuid {
			return sk, true
		}
	}
	return models.SkinWithWeapon{}, false
}

// FilterSkins narrows, orders, and paginates the flattened skin list
func (s *Service) FilterSkins(params models.SkinFilterParams) models.SkinsResponse {
	snap := s.snapshot()
	skins := s.AllSkins()

	if params.Weapon != "" {
		filtered := make([]models.SkinWithWeapon, 0, len(skins))
		for _, sk := range skins {
			if strings.EqualFold(sk.WeaponName, params.Weapon) {
				filtered = append(filtered, sk)
			}
		}
		skins = filtered
	}

	if params.TierUUID != "" {
		filtered := make([]models.SkinWithWeapon, 0, len(skins))
		for _, sk := range skins {
			if sk.ContentTierUUID == params.TierUUID {
				filtered = append(filtered, sk)
			}
		}
		skins = filtered
	}

	if q := models.NormalizeSearchTerm(params.Query); q != "" {
		filtered := make([]models.SkinWithWeapon, 0, len(skins))
		for _, sk := range skins {
			name := models.NormalizeSearchTerm(sk.DisplayName)
			weapon := models.NormalizeSearchTerm(sk.WeaponName)
			if strings.Contains(name, q) || strings.Contains(weapon, q) {
				filtered = append(filtered, sk)
			}
		}
		skins = filtered
	}

	s.sortSkins(skins, params.Sort, snap.Tiers)

	total := len(skins)
	if params.Limit > 0 {
		offset := params.Offset
		if offset >= len(skins) {
			skins = []models.SkinWithWeapon{}
		} else {
			end := offset + params.Limit
			if end > len(skins) {
				end = len(skins)
			}
			skins = skins[offset:end]
		}
	}

	return models.SkinsResponse{
		Skins:      skins,
		TotalCount: total,
		FetchedAt:  snap.FetchedAt,
	}
}

func (s *Service) sortSkins(skins []models.SkinWithWeapon, sortBy string, tiers []models.ContentTier) {
	rankByUUID := make(map[string]int, len(tiers))
	for _, t := range tiers {
		rankByUUID[t.UUID] = t.Rank
	}

	priceOf := func(sk models.SkinWithWeapon) int {
		vp, ok := pricing.PriceForTierUUID(sk.ContentTierUUID)
		if !ok {
			// Unknown and variable-priced tiers sort after fixed prices
			return 1 << 20
		}
		return vp
	}

	switch sortBy {
	case "name":
		sort.SliceStable(skins, func(i, j int) bool {
			return skins[i].DisplayName < skins[j].DisplayName
		})
	case "tier":
		sort.SliceStable(skins, func(i, j int) bool {
			return rankByUUID[skins[i].ContentTierUUID] > rankByUUID[skins[j].ContentTierUUID]
		})
	case "price-low":
		sort.SliceStable(skins, func(i, j int) bool {
			return priceOf(skins[i]) < priceOf(skins[j])
		})
	case "price-high":
		sort.SliceStable(skins, func(i, j int) bool {
			pi, pj := priceOf(skins[i]), priceOf(skins[j])
			if pi == pj {
				return false
			}
			if pi == 1<<20 {
				return false
			}
			if pj == 1<<20 {
				return true
			}
			return pi > pj
		})
	default:
		// catalog order
	}
}

// WeaponOptions returns distinct weapon names that have at least one skin,
// sorted for the filter dropdown
func (s *Service) WeaponOptions() []string {
	snap := s.snapshot()
	names := make([]string, 0, len(snap.Weapons))
	for _, w := range snap.Weapons {
		if len(w.Skins) == 0 {
			continue
		}
		names = append(names, w.DisplayName)
	}
	sort.Strings(names)
	return names
}

// WeaponsForRoulette returns weapons whose skins are restricted to the
// roulette-eligible tiers, each skin carrying a resolved display image.
// Imageless skins are dropped; weapons left with zero eligible skins are
// dropped; the result is sorted by category order then name.
func (s *Service) WeaponsForRoulette() []models.RouletteWeapon {
	snap := s.snapshot()

	allowedTierUUIDs := make(map[string]bool)
	tierNameByUUID := make(map[string]string, len(snap.Tiers))
	for _, t := range snap.Tiers {
		tierNameByUUID[t.UUID] = t.DisplayName
		if pricing.IsRouletteDevName(t.DevName) {
			allowedTierUUIDs[t.UUID] = true
		}
	}

	result := make([]models.RouletteWeapon, 0, len(snap.Weapons))
	for _, w := range snap.Weapons {
		items := make([]models.PoolItem, 0, len(w.Skins))
		for _, sk := range w.Skins {
			if models.IsLevelVariant(sk.DisplayName) {
				continue
			}
			if !allowedTierUUIDs[sk.ContentTierUUID] {
				continue
			}
			image := sk.DisplayImage()
			if image == "" {
				continue
			}
			items = append(items, models.PoolItem{
				UUID:     sk.UUID,
				Name:     sk.DisplayName,
				ImageURL: image,
				TierName: tierNameByUUID[sk.ContentTierUUID],
				Subtitle: w.DisplayName,
			})
		}
		if len(items) == 0 {
			continue
		}
		result = append(result, models.RouletteWeapon{
			UUID:        w.UUID,
			DisplayName: w.DisplayName,
			DisplayIcon: w.DisplayIcon,
			Category:    w.Category,
			Skins:       items,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		oi, oj := categoryOrder(result[i].Category), categoryOrder(result[j].Category)
		if oi != oj {
			return oi < oj
		}
		return result[i].DisplayName < result[j].DisplayName
	})

	return result
}

// RouletteWeaponByUUID looks up one roulette weapon
func (s *Service) RouletteWeaponByUUID(uuid string) (models.RouletteWeapon, bool) {
	for _, w := range s.WeaponsForRoulette() {
		if w.UUID == uuid {
			return w, true
		}
	}
	return models.RouletteWeapon{}, false
}

// AgentPool converts agents with a given role filter into roulette pool
// items. Agents without a portrait are excluded; the display layer cannot
// render them.
func (s *Service) AgentPool(role string) []models.PoolItem {
	agents := s.AgentsByRole(role)
	items := make([]models.PoolItem, 0, len(agents))
	for _, a := range agents {
		image := a.FullPortrait
		if image == "" {
			image = a.DisplayIcon
		}
		if image == "" {
			continue
		}
		roleName := ""
		if a.Role != nil {
			roleName = a.Role.DisplayName
		}
		items = append(items, models.PoolItem{
			UUID:     a.UUID,
			Name:     a.DisplayName,
			ImageURL: image,
			Subtitle: roleName,
		})
	}
	return items
}

func categoryOrder(category string) int {
	if order, ok := weaponCategoryOrder[category]; ok {
		return order
	}
	return 99
}
