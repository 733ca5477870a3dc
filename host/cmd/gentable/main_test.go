package main

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"inverter/core"
)

func TestRenderMatchesCheckedInTable(t *testing.T) {
	checkedIn, err := os.ReadFile("../../../core/sinetable.go")
	if err != nil {
		t.Fatalf("Failed to read generated table: %v", err)
	}

	table, err := core.Sine(core.ReferenceLength)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(string(checkedIn), string(render(table, 16))); diff != "" {
		t.Errorf("core/sinetable.go is stale, run go generate ./core (-file +render):\n%s", diff)
	}
}
