// Package crosshair serves curated pro crosshair codes and validates
// submitted ones.
package crosshair

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mohaak7/valorant-hub/internal/models"
)

// ErrInvalidCode marks a crosshair code that does not follow the in-game
// profile grammar.
var ErrInvalidCode = errors.New("invalid crosshair code")

var presets = []models.CrosshairPreset{
	{
		ID:      "tenz",
		Player:  "TenZ",
		Team:    "Sentinels",
		Code:    "0;s;1;P;c;5;h;0;m;1;0l;4;0o;2;0a;1;0f;0;1b;0;S;c;5;o;1",
		Preview: models.CrosshairPreview{Dot: true, LineLength: 6, Thickness: 2, Gap: 2},
	},
	{
		ID:      "yay",
		Player:  "yay",
		Team:    "Bleed",
		Code:    "0;P;c;1;o;0;d;1;z;3;0b;0;1b;0",
		Preview: models.CrosshairPreview{Dot: true, LineLength: 0, Thickness: 2, Gap: 0},
	},
	{
		ID:      "aspas",
		Player:  "aspas",
		Team:    "Leviatán",
		Code:    "0;P;c;5;o;0.5;d;1;z;3;0b;0;1b;0",
		Preview: models.CrosshairPreview{Dot: true, LineLength: 5, Thickness: 1, Gap: 3},
	},
	{
		ID:      "demon1",
		Player:  "Demon1",
		Team:    "NRG",
		Code:    "0;P;h;0;f;0;0l;4;0o;2;0a;1;0f;0;1b;0",
		Preview: models.CrosshairPreview{Dot: true, LineLength: 8, Thickness: 2, Gap: 1},
	},
	{
		ID:      "cned",
		Player:  "cNed",
		Team:    "NAVI",
		Code:    "0;P;c;4;o;0;d;1;z;2;0b;0;1b;0",
		Preview: models.CrosshairPreview{Dot: true, LineLength: 5, Thickness: 1, Gap: 2},
	},
	{
		ID:      "chronicle",
		Player:  "Chronicle",
		Team:    "Fnatic",
		Code:    "0;P;c;5;o;0;d;1;z;2;0b;0;1b;0",
		Preview: models.CrosshairPreview{Dot: true, LineLength: 7, Thickness: 1, Gap: 2},
	},
}

// Presets returns the curated list.
func Presets() []models.CrosshairPreset {
	return append([]models.CrosshairPreset(nil), presets...)
}

// PresetByID returns a preset by its id.
func PresetByID(id string) (models.CrosshairPreset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return models.CrosshairPreset{}, false
}

// Section is one settings group of a parsed code. The leading section, before
// any marker, has an empty name; P, A and S open the primary, ADS and sniper
// groups.
type Section struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

// ParsedCode is a crosshair profile code split into its settings groups.
type ParsedCode struct {
	Sections []Section `json:"sections"`
}

var (
	keyPattern   = regexp.MustCompile(`^[0-9]?[a-z]{1,2}$`)
	valuePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

func isSectionMarker(tok string) bool {
	return tok == "P" || tok == "A" || tok == "S"
}

// ParseCode validates a crosshair profile code and splits it into sections.
// The grammar is a "0" profile prefix followed by semicolon-separated
// key;value pairs, with bare P, A and S tokens opening new sections.
func ParseCode(code string) (ParsedCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ParsedCode{}, fmt.Errorf("%w: empty", ErrInvalidCode)
	}

	tokens := strings.Split(code, ";")
	if tokens[0] != "0" {
		return ParsedCode{}, fmt.Errorf("%w: unknown profile prefix %q", ErrInvalidCode, tokens[0])
	}

	parsed := ParsedCode{}
	current := Section{Params: map[string]string{}}

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		if isSectionMarker(tok) {
			if len(current.Params) > 0 || current.Name != "" {
				parsed.Sections = append(parsed.Sections, current)
			}
			current = Section{Name: tok, Params: map[string]string{}}
			i++
			continue
		}

		if !keyPattern.MatchString(tok) {
			return ParsedCode{}, fmt.Errorf("%w: bad key %q", ErrInvalidCode, tok)
		}
		if i+1 >= len(tokens) {
			return ParsedCode{}, fmt.Errorf("%w: key %q has no value", ErrInvalidCode, tok)
		}
		val := tokens[i+1]
		if !valuePattern.MatchString(val) {
			return ParsedCode{}, fmt.Errorf("%w: bad value %q for key %q", ErrInvalidCode, val, tok)
		}
		current.Params[tok] = val
		i += 2
	}

	if len(current.Params) > 0 || current.Name != "" {
		parsed.Sections = append(parsed.Sections, current)
	}
	if len(parsed.Sections) == 0 {
		return ParsedCode{}, fmt.Errorf("%w: no settings", ErrInvalidCode)
	}
	return parsed, nil
}

// Validate reports whether the code parses.
func Validate(code string) error {
	_, err := ParseCode(code)
	return err
}
