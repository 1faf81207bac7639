package crosshair

import (
	"errors"
	"testing"
)

func TestPresetsAllValid(t *testing.T) {
	list := Presets()
	if len(list) == 0 {
		t.Fatal("no presets")
	}
	seen := map[string]bool{}
	for _, p := range list {
		if seen[p.ID] {
			t.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
		if err := Validate(p.Code); err != nil {
			t.Errorf("preset %q has invalid code: %v", p.ID, err)
		}
	}
}

func TestPresetByID(t *testing.T) {
	p, ok := PresetByID("tenz")
	if !ok {
		t.Fatal("tenz preset missing")
	}
	if p.Player != "TenZ" || p.Team != "Sentinels" {
		t.Errorf("preset = %+v", p)
	}
	if _, ok := PresetByID("nobody"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestParseCodeSections(t *testing.T) {
	parsed, err := ParseCode("0;s;1;P;c;5;h;0;S;c;5;o;1")
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	if len(parsed.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(parsed.Sections))
	}
	if parsed.Sections[0].Name != "" || parsed.Sections[0].Params["s"] != "1" {
		t.Errorf("leading section = %+v", parsed.Sections[0])
	}
	if parsed.Sections[1].Name != "P" || parsed.Sections[1].Params["c"] != "5" {
		t.Errorf("primary section = %+v", parsed.Sections[1])
	}
	if parsed.Sections[2].Name != "S" || parsed.Sections[2].Params["o"] != "1" {
		t.Errorf("sniper section = %+v", parsed.Sections[2])
	}
}

func TestParseCodeRejectsJunk(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"wrong prefix", "1;P;c;5"},
		{"missing prefix", "P;c;5"},
		{"key without value", "0;P;c"},
		{"bad key", "0;P;color;5"},
		{"bad value", "0;P;c;red"},
		{"negative value", "0;P;o;-1"},
		{"prefix only", "0"},
		{"html", "<script>alert(1)</script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCode(tt.code); !errors.Is(err, ErrInvalidCode) {
				t.Errorf("ParseCode(%q) err = %v, want ErrInvalidCode", tt.code, err)
			}
		})
	}
}

func TestParseCodeDecimalValues(t *testing.T) {
	parsed, err := ParseCode("0;P;c;5;o;0.5")
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	if parsed.Sections[0].Params["o"] != "0.5" {
		t.Errorf("params = %+v", parsed.Sections[0].Params)
	}
}
