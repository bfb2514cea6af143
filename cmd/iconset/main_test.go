package main

import (
	"strings"
	"testing"
)

func TestMain_ShouldParseSizeList(t *testing.T) {
	sizes, err := parseSizes("16, 32,48")
	if err != nil {
		t.Fatalf("could not parse the size list: %v", err)
	}

	want := []int{16, 32, 48}
	if len(sizes) != len(want) {
		t.Fatalf("expected %d sizes. Got %d", len(want), len(sizes))
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("size %d expected to be %d. Got %d", i, want[i], sizes[i])
		}
	}
}

func TestMain_ShouldKeepDefaultsOnEmptySizeList(t *testing.T) {
	sizes, err := parseSizes("  ")
	if err != nil {
		t.Fatalf("an empty size list should select the defaults: %v", err)
	}
	if sizes != nil {
		t.Errorf("an empty size list expected to yield no explicit sizes. Got %v", sizes)
	}
}

func TestMain_ShouldRejectMalformedSizeList(t *testing.T) {
	for _, list := range []string{"16,big,48", "16;32", ","} {
		if _, err := parseSizes(list); err == nil {
			t.Errorf("size list %q expected to be rejected", list)
		}
	}
}

func TestMain_ShouldResolveDefaultOutputDir(t *testing.T) {
	dir, err := defaultOutputDir()
	if err != nil {
		t.Fatalf("could not resolve the default output directory: %v", err)
	}

	if !strings.HasSuffix(strings.ReplaceAll(dir, "\\", "/"), "src/assets/icons") {
		t.Errorf("default output directory expected to end with src/assets/icons. Got %v", dir)
	}
}
