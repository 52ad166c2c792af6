package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\nyaml: %+v\ngo:   %+v", cfg, DefaultFlappyConfig())
	}
}

func TestProfileForTier(t *testing.T) {
	cfg := DefaultFlappyConfig()

	tests := []struct {
		tier     Tier
		expected Profile
	}{
		{TierEasy, Profile{Gap: 190, Spacing: 320, BaseSpeed: 2.2, SecondsPerSpeedup: 12 * time.Second, SpeedupDelta: 0.15}},
		{TierNormal, Profile{Gap: 160, Spacing: 280, BaseSpeed: 2.5, SecondsPerSpeedup: 10 * time.Second, SpeedupDelta: 0.2}},
		{TierHard, Profile{Gap: 140, Spacing: 260, BaseSpeed: 3.2, SecondsPerSpeedup: 8 * time.Second, SpeedupDelta: 0.25}},
		{Tier(0), NormalProfile()},
		{Tier(9), NormalProfile()},
	}

	for _, tc := range tests {
		t.Run(tc.tier.String(), func(t *testing.T) {
			if got := cfg.Profile(tc.tier); got != tc.expected {
				t.Errorf("Profile(%v) = %+v, expected %+v", tc.tier, got, tc.expected)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in       string
		expected Tier
		wantErr  bool
	}{
		{"easy", TierEasy, false},
		{"HARD", TierHard, false},
		{"2", TierNormal, false},
		{"", TierNormal, false},
		{"nightmare", TierNormal, true},
	}

	for _, tc := range tests {
		got, err := ParseTier(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTier(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseTier(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	doc := []byte(`
physics:
  jump_power: -9
tiers:
  hard:
    seconds_per_speedup: 5s
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.JumpPower != -9 {
		t.Errorf("jump_power = %v, expected -9", cfg.Physics.JumpPower)
	}
	if cfg.Physics.FallGravity != 0.8 {
		t.Errorf("unspecified keys should keep defaults, fall_gravity = %v", cfg.Physics.FallGravity)
	}
	if cfg.Tiers.Hard.SecondsPerSpeedup != 5*time.Second {
		t.Errorf("hard seconds_per_speedup = %v, expected 5s", cfg.Tiers.Hard.SecondsPerSpeedup)
	}
	if cfg.Tiers.Hard.Gap != 140 {
		t.Errorf("hard gap = %v, expected default 140", cfg.Tiers.Hard.Gap)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"drag above one", "physics:\n  drag: 1.5\n", "drag"},
		{"velocity bounds inverted", "physics:\n  min_velocity: 9\n", "min_velocity"},
		{"zero gap", "tiers:\n  easy:\n    gap: 0\n", "tiers.easy"},
		{"malformed yaml", "physics: [\n", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 1024\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("world width = %d, expected 1024", cfg.World.Width)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Error("Marshal/Parse should preserve the configuration")
	}
}

func TestMarshalProfileForDumpedTier(t *testing.T) {
	tier, err := ParseTier("hard")
	if err != nil {
		t.Fatal(err)
	}

	data, err := MarshalProfile(DefaultFlappyConfig().Profile(tier))
	if err != nil {
		t.Fatalf("MarshalProfile() error = %v", err)
	}
	if !strings.Contains(string(data), "gap: 140") {
		t.Errorf("hard profile dump should carry its gap, got:\n%s", data)
	}

	var back Profile
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("dumped profile does not parse: %v", err)
	}
	if back != HardProfile() {
		t.Errorf("dumped profile = %+v, expected %+v", back, HardProfile())
	}
}
