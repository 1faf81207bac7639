// Package i18n holds the interface translations served to the web client.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Lang is a supported interface language.
type Lang string

const (
	LangEnglish Lang = "en"
	LangSpanish Lang = "es"
)

// Supported returns the languages the catalog UI ships with.
func Supported() []Lang {
	return []Lang{LangEnglish, LangSpanish}
}

// Bundle is the full set of interface strings for one language.
type Bundle struct {
	Lang      Lang                 `json:"lang"`
	Nav       NavStrings           `json:"nav"`
	Hero      HeroStrings          `json:"hero"`
	Common    CommonStrings        `json:"common"`
	Roulette  RouletteStrings      `json:"roulette"`
	Crosshair CrosshairPageStrings `json:"crosshairs"`
	Filters   FilterStrings        `json:"filters"`
	Buttons   ButtonStrings        `json:"buttons"`
	Headers   HeaderStrings        `json:"headers"`
}

type NavStrings struct {
	Home          string `json:"home"`
	Agents        string `json:"agents"`
	Skins         string `json:"skins"`
	Bundles       string `json:"bundles"`
	Crosshairs    string `json:"crosshairs"`
	AgentRoulette string `json:"agentRoulette"`
	SkinRoulette  string `json:"skinRoulette"`
}

type HeroStrings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type CommonStrings struct {
	Search      string `json:"search"`
	Loading     string `json:"loading"`
	Submit      string `json:"submit"`
	CopyCode    string `json:"copyCode"`
	MyInventory string `json:"myInventory"`
}

type RouletteStrings struct {
	Heading      string `json:"heading"`
	Step1        string `json:"step1"`
	Step2        string `json:"step2"`
	Step3        string `json:"step3"`
	Spin         string `json:"spin"`
	AllSkins     string `json:"allSkins"`
	MySelection  string `json:"mySelection"`
	SelectAll    string `json:"selectAll"`
	Clear        string `json:"clear"`
	SelectPrompt string `json:"selectPrompt"`
	// NoSkinsForWeapon carries one %s verb for the weapon name.
	NoSkinsForWeapon string `json:"noSkinsForWeapon"`
}

type CrosshairPageStrings struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	SubmitCta string `json:"submitCta"`
}

type FilterStrings struct {
	Search     string `json:"search"`
	Sort       string `json:"sort"`
	Newest     string `json:"newest"`
	Oldest     string `json:"oldest"`
	PriceLow   string `json:"priceLow"`
	PriceHigh  string `json:"priceHigh"`
	AllWeapons string `json:"allWeapons"`
}

type ButtonStrings struct {
	LoadMore  string `json:"loadMore"`
	Spin      string `json:"spin"`
	SpinOwned string `json:"spinOwned"`
	Copy      string `json:"copy"`
	Submit    string `json:"submit"`
}

type HeaderStrings struct {
	Skins      string `json:"skins"`
	Agents     string `json:"agents"`
	Crosshairs string `json:"crosshairs"`
}

// NoSkinsForWeapon renders the per-weapon empty-pool message.
func (b Bundle) NoSkinsForWeapon(weapon string) string {
	return fmt.Sprintf(b.Roulette.NoSkinsForWeapon, weapon)
}

var bundles = map[Lang]Bundle{
	LangEnglish: {
		Lang: LangEnglish,
		Nav: NavStrings{
			Home:          "Home",
			Agents:        "Agents",
			Skins:         "Skins",
			Bundles:       "Bundles",
			Crosshairs:    "Crosshairs",
			AgentRoulette: "Agent Roulette",
			SkinRoulette:  "Skin Roulette",
		},
		Hero: HeroStrings{
			Title:    "VALORANT SKINS, AGENTS & CROSSHAIRS",
			Subtitle: "The ultimate toolkit: Database, Price Tracker, Crosshairs & Randomizers.",
		},
		Common: CommonStrings{
			Search:      "Search",
			Loading:     "Loading…",
			Submit:      "Submit",
			CopyCode:    "Copy Code",
			MyInventory: "My Inventory",
		},
		Roulette: RouletteStrings{
			Heading:          "Skin Roulette",
			Step1:            "Step 1: Select weapon",
			Step2:            "Step 2: Roulette",
			Step3:            "Step 3: Choose skins for pool",
			Spin:             "Spin",
			AllSkins:         "All Skins",
			MySelection:      "My Selection",
			SelectAll:        "Select all",
			Clear:            "Clear",
			SelectPrompt:     "Select some skins to start spinning!",
			NoSkinsForWeapon: "No skins in Select+ tiers for %s. Pick another weapon.",
		},
		Crosshair: CrosshairPageStrings{
			Title:     "Pro & Community Crosshairs",
			Subtitle:  "Copy pro codes in one click, or submit your own setup.",
			SubmitCta: "Submit Your Crosshair",
		},
		Filters: FilterStrings{
			Search:     "Search skins...",
			Sort:       "Sort By",
			Newest:     "Newest",
			Oldest:     "Oldest",
			PriceLow:   "Price: Low to High",
			PriceHigh:  "Price: High to Low",
			AllWeapons: "All Weapons",
		},
		Buttons: ButtonStrings{
			LoadMore:  "Load More",
			Spin:      "SPIN",
			SpinOwned: "Spin Owned Only",
			Copy:      "Copy Code",
			Submit:    "Submit Crosshair",
		},
		Headers: HeaderStrings{
			Skins:      "Skins Database",
			Agents:     "Agent Picker",
			Crosshairs: "Pro Crosshairs",
		},
	},
	LangSpanish: {
		Lang: LangSpanish,
		Nav: NavStrings{
			Home:          "Inicio",
			Agents:        "Agentes",
			Skins:         "Skins",
			Bundles:       "Lotes",
			Crosshairs:    "Miras",
			AgentRoulette: "Ruleta de Agentes",
			SkinRoulette:  "Ruleta de Skins",
		},
		Hero: HeroStrings{
			Title:    "SKINS, AGENTES Y RULETA DE VALORANT",
			Subtitle: "La herramienta definitiva: Base de datos, Precios, Miras y Ruleta.",
		},
		Common: CommonStrings{
			Search:      "Buscar",
			Loading:     "Cargando…",
			Submit:      "Enviar",
			CopyCode:    "Copiar código",
			MyInventory: "Mi inventario",
		},
		Roulette: RouletteStrings{
			Heading:          "Ruleta de Skins",
			Step1:            "Paso 1: Elige arma",
			Step2:            "Paso 2: Ruleta",
			Step3:            "Paso 3: Elige skins para el pool",
			Spin:             "Girar",
			AllSkins:         "Todas las skins",
			MySelection:      "Mi selección",
			SelectAll:        "Seleccionar todo",
			Clear:            "Limpiar",
			SelectPrompt:     "Selecciona al menos una skin para empezar a girar.",
			NoSkinsForWeapon: "No hay skins Select+ para %s. Prueba con otra arma.",
		},
		Crosshair: CrosshairPageStrings{
			Title:     "Miras Pro y de la Comunidad",
			Subtitle:  "Copia miras de pros en un clic o envía tu propia configuración.",
			SubmitCta: "Enviar mi mira",
		},
		Filters: FilterStrings{
			Search:     "Buscar skins...",
			Sort:       "Ordenar por",
			Newest:     "Más Nuevos",
			Oldest:     "Más Antiguos",
			PriceLow:   "Precio: Bajo a Alto",
			PriceHigh:  "Precio: Alto a Bajo",
			AllWeapons: "Todas las Armas",
		},
		Buttons: ButtonStrings{
			LoadMore:  "Cargar Más",
			Spin:      "GIRAR",
			SpinOwned: "Girar Solo Mis Skins",
			Copy:      "Copiar Código",
			Submit:    "Enviar Tu Mira",
		},
		Headers: HeaderStrings{
			Skins:      "Base de Datos de Skins",
			Agents:     "Selector de Agentes",
			Crosshairs: "Miras de Pros",
		},
	},
}

// For returns the bundle for a language, falling back to English.
func For(lang Lang) Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[LangEnglish]
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
})

// Detect picks the language to serve. An explicit preference wins when it
// names a supported language; otherwise the Accept-Language header is
// matched, and English is the default.
func Detect(pref, acceptLanguage string) Lang {
	switch Lang(pref) {
	case LangEnglish:
		return LangEnglish
	case LangSpanish:
		return LangSpanish
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, index, _ := matcher.Match(tags...)
			if index == 1 {
				return LangSpanish
			}
		}
	}
	return LangEnglish
}
