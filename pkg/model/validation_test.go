package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-lncgen/pkg/model"
)

func TestValidFlag(t *testing.T) {
	cases := map[string]bool{
		"LNC25{abc}":           true,
		"LNC25{}":              true,
		"LNC25{a}b}":           true,
		"LNC25{with spaces!}":  true,
		"":                     false,
		"LNC25{":               false,
		"LNC25}":               false,
		"lnc25{abc}":           false,
		"xLNC25{abc}":          false,
		"LNC25{abc}x":          false,
		"LNC24{abc}":           false,
		"LNC25{multi\nline}":   false,
		" LNC25{leading}":      false,
		"LNC25{trailing} ":     false,
	}
	for flag, want := range cases {
		if got := model.ValidFlag(flag); got != want {
			t.Errorf("ValidFlag(%q) = %v, want %v", flag, got, want)
		}
	}
}

func TestPortError(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"", true},
		{"1", true},
		{"80", true},
		{"8080", true},
		{"65535", true},
		{"0080", true},
		{"0", false},
		{"65536", false},
		{"-1", false},
		{"+80", false},
		{"80.0", false},
		{" 80", false},
		{"abc", false},
		{"99999999999999999999999", false},
	}
	for _, tc := range cases {
		got := model.PortError(tc.raw)
		if tc.valid && got != "" {
			t.Errorf("PortError(%q) = %q, want no error", tc.raw, got)
		}
		if !tc.valid && got != model.PortErrorMessage {
			t.Errorf("PortError(%q) = %q, want %q", tc.raw, got, model.PortErrorMessage)
		}
	}
}

func TestParsePort(t *testing.T) {
	n, ok := model.ParsePort("1337")
	if !ok || n != 1337 {
		t.Fatalf("ParsePort(1337) = %d, %v", n, ok)
	}
	if _, ok := model.ParsePort(""); ok {
		t.Fatalf("expected empty port to be rejected by ParsePort")
	}
}

func TestParseHintCost(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"50", 50, true},
		{" 10 ", 10, true},
		{"", 0, false},
		{"-1", 0, false},
		{"ten", 0, false},
		{"1.5", 0, false},
	}
	for _, tc := range cases {
		got, ok := model.ParseHintCost(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseHintCost(%q) = (%d, %v), want (%d, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := model.NewConfig()
	if cfg.Category != model.CategoryMisc {
		t.Fatalf("category = %q, want misc", cfg.Category)
	}
	if cfg.Difficulty != model.DifficultyEasy {
		t.Fatalf("difficulty = %q, want easy", cfg.Difficulty)
	}
	if cfg.Hints != nil || cfg.Requirements != nil {
		t.Fatalf("expected empty lists, got %+v", cfg)
	}
}

func TestParseEnums(t *testing.T) {
	for _, c := range model.Categories() {
		got, err := model.ParseCategory(string(c))
		if err != nil || got != c {
			t.Fatalf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := model.ParseCategory("stego"); err == nil {
		t.Fatalf("expected unknown category to fail")
	}
	if _, err := model.ParseDifficulty("trivial"); err == nil {
		t.Fatalf("expected unknown difficulty to fail")
	}
}

func TestFormFieldsOrder(t *testing.T) {
	var names []model.FieldName
	for _, f := range model.FormFields() {
		names = append(names, f.Name)
	}
	want := []model.FieldName{
		model.FieldNameName,
		model.FieldNameAuthor,
		model.FieldNameCategory,
		model.FieldNameDifficulty,
		model.FieldNameDescription,
		model.FieldNameDiscord,
		model.FieldNameFlag,
		model.FieldNamePort,
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("form field order mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigCloneDetachesSlices(t *testing.T) {
	cfg := model.NewConfig()
	cfg.Hints = []model.Hint{{Description: "a", Cost: 1}}
	clone := cfg.Clone()
	clone.Hints[0].Cost = 99
	if cfg.Hints[0].Cost != 1 {
		t.Fatalf("clone shares hint storage")
	}
}
