package catalog

import (
	"strings"

	"github.com/mohaak7/valorant-hub/internal/models"
)

// Bundles returns all bundles in catalog order
func (s *Service) Bundles() []models.Bundle {
	return s.snapshot().Bundles
}

// BundleByUUID looks up one bundle
func (s *Service) BundleByUUID(uuid string) (models.Bundle, bool) {
	for _, b := range s.snapshot().Bundles {
		if b.UUID == uuid {
			return b, true
		}
	}
	return models.Bundle{}, false
}

// SkinsInBundle reconstructs a bundle's skin list. The upstream API carries
// no bundle→skin foreign key; themes whose display name equals the bundle's
// display name (case-insensitively) identify the skin line.
func (s *Service) SkinsInBundle(bundleDisplayName string) []models.SkinWithWeapon {
	snap := s.snapshot()

	themeUUIDs := make(map[string]bool)
	for _, t := range snap.Themes {
		if strings.EqualFold(t.DisplayName, bundleDisplayName) {
			themeUUIDs[t.UUID] = true
		}
	}
	if len(themeUUIDs) == 0 {
		return []models.SkinWithWeapon{}
	}

	skins := make([]models.SkinWithWeapon, 0)
	for _, sk := range s.AllSkins() {
		if themeUUIDs[sk.ThemeUUID] {
			skins = append(skins, sk)
		}
	}
	return skins
}

// BundleWithSkins joins one bundle to its reconstructed skin list
func (s *Service) BundleWithSkins(uuid string) (models.BundleWithSkins, bool) {
	bundle, ok := s.BundleByUUID(uuid)
	if !ok {
		return models.BundleWithSkins{}, false
	}
	return models.BundleWithSkins{
		Bundle: bundle,
		Skins:  s.SkinsInBundle(bundle.DisplayName),
	}, true
}
