package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"inverter/core"
	"inverter/host/sim"
)

func TestDefault(t *testing.T) {
	want := &Config{
		CycleHz:     19300,
		LowHz:       50,
		HighHz:      60,
		TableLength: 386,
		SkipReload:  5,
		Mode:        ModeHigh,
		Cycles:      386 * 6,
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("Default mismatch (-want +got):\n%s", diff)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default does not validate: %v", err)
	}
}

func TestLoadConfigDerives(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"cycle_hz": 20000,
		"mode": "low",
		"switches": [{"cycle": 100, "low": false}, {"cycle": 200, "low": true}]
	}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.TableLength != 400 || cfg.SkipReload != 5 || cfg.Cycles != 2400 {
		t.Errorf("Unexpected derived values: %+v", cfg)
	}

	sc, err := cfg.SimConfig()
	if err != nil {
		t.Fatalf("SimConfig failed: %v", err)
	}
	if sc.Table.Len() != 400 || !sc.InitialLow || sc.Reload != 5 {
		t.Errorf("Unexpected sim config: len=%d low=%v reload=%d", sc.Table.Len(), sc.InitialLow, sc.Reload)
	}
	want := []sim.Change{{Cycle: 100, Low: false}, {Cycle: 200, Low: true}}
	if diff := cmp.Diff(want, sc.Switches); diff != "" {
		t.Errorf("Switch schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigUsesReferenceTable(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := cfg.Table()
	if err != nil {
		t.Fatal(err)
	}
	if &tbl[0] != &core.Reference[0] {
		t.Error("Expected the precomputed reference table for length 386")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		{"bad json", `{"cycle_hz": "fast"}`},
		{"bad mode", `{"mode": "medium"}`},
		{"inverted frequencies", `{"low_hz": 60, "high_hz": 50}`},
		{"unordered switches", `{"switches": [{"cycle": 5}, {"cycle": 5}]}`},
		{"reload out of range", `{"skip_reload": 300}`},
		{"underivable table", `{"cycle_hz": 100}`},
		{"negative cycles", `{"cycles": -1}`},
		{"odd table", `{"table_length": 385}`},
	}

	for _, tc := range testCases {
		if _, err := LoadConfig([]byte(tc.json)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inverter.json")
	if err := os.WriteFile(path, []byte(`{"mode": "low", "cycles": 10}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Mode != ModeLow || cfg.Cycles != 10 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
