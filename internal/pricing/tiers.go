package pricing

import (
	"strconv"

	"github.com/mohaak7/valorant-hub/internal/models"
)

// Tier dev names eligible for the skin roulette. "Standard" and battle-pass
// tiers are excluded.
var RouletteTierDevNames = []string{"Select", "Deluxe", "Premium", "Ultra", "Exclusive"}

// tierPrice is one row of the authoritative tier pricing table
type tierPrice struct {
	devName string
	vp      int  // 0 when the tier has no fixed price
	varies  bool // Exclusive pricing depends on the skin line
}

// tierPrices is the single authoritative tier → VP table, keyed by the
// upstream tier UUID. The UUIDs must track the catalog's content tier
// identifiers; a mismatch here is a defect, not a second source of truth.
var tierPrices = map[string]tierPrice{
	"12683d76-48d7-2604-28fa-6e836fa18abc": {devName: "Select", vp: 875},
	"0cebb8be-46d7-c12a-d306-e9907bfc5a25": {devName: "Deluxe", vp: 1275},
	"60bca009-4182-7998-dee7-b8a2558dc369": {devName: "Premium", vp: 1775},
	"411e4a55-4e59-7757-41f0-86a53f101bb5": {devName: "Ultra", vp: 2475},
	"e046854e-406c-37f4-6607-19a9ba8426fc": {devName: "Exclusive", varies: true},
}

// devNameIndex maps tier dev names back to their table rows so callers
// holding only a ContentTier can resolve prices without the UUID.
var devNameIndex = func() map[string]tierPrice {
	idx := make(map[string]tierPrice, len(tierPrices))
	for _, p := range tierPrices {
		idx[p.devName] = p
	}
	return idx
}()

// PriceForTierUUID returns the VP cost for a tier UUID. ok is false for
// unknown tiers and for tiers without a fixed price.
func PriceForTierUUID(tierUUID string) (vp int, ok bool) {
	p, found := tierPrices[tierUUID]
	if !found || p.varies {
		return 0, false
	}
	return p.vp, true
}

// LabelForTierUUID returns the display price label for a tier UUID
// ("875 VP", "Varies", or "N/A" for unknown/empty tiers)
func LabelForTierUUID(tierUUID string) string {
	if tierUUID == "" {
		return "N/A"
	}
	p, found := tierPrices[tierUUID]
	if !found {
		return "N/A"
	}
	if p.varies {
		return "Varies"
	}
	return formatVP(p.vp)
}

// LabelForTier resolves a price label from a full ContentTier, preferring the
// UUID and falling back to the dev name for tiers the table predates
func LabelForTier(tier *models.ContentTier) string {
	if tier == nil {
		return "N/A"
	}
	if _, found := tierPrices[tier.UUID]; found {
		return LabelForTierUUID(tier.UUID)
	}
	p, found := devNameIndex[tier.DevName]
	if !found {
		return "N/A"
	}
	if p.varies {
		return "Varies"
	}
	return formatVP(p.vp)
}

// IsRouletteTierUUID reports whether a tier UUID is in the randomizer set
func IsRouletteTierUUID(tierUUID string) bool {
	_, found := tierPrices[tierUUID]
	return found
}

// IsRouletteDevName reports whether a tier dev name is in the randomizer set
func IsRouletteDevName(devName string) bool {
	_, found := devNameIndex[devName]
	return found
}

// TierPriceRow is the wire shape of one pricing table row
type TierPriceRow struct {
	TierUUID string `json:"tierUuid"`
	DevName  string `json:"devName"`
	VP       int    `json:"vp,omitempty"`
	Label    string `json:"label"`
}

// Table returns the full pricing table for display
func Table() []TierPriceRow {
	rows := make([]TierPriceRow, 0, len(tierPrices))
	for uuid, p := range tierPrices {
		rows = append(rows, TierPriceRow{
			TierUUID: uuid,
			DevName:  p.devName,
			VP:       p.vp,
			Label:    LabelForTierUUID(uuid),
		})
	}
	return rows
}

func formatVP(vp int) string {
	return strconv.Itoa(vp) + " VP"
}
