package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nathanieltooley/pokefactory/golurk/data"
)

func TestBundledCatalogIsValid(t *testing.T) {
	if problems := validateCatalog(); len(problems) != 0 {
		t.Fatalf("catalog problems: %v", problems)
	}
}

func TestPrintCatalogListsEverySet(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != data.GlobalData.FrontierMonCount() {
		t.Fatalf("expected %d lines, got %d", data.GlobalData.FrontierMonCount(), len(lines))
	}
	if !strings.Contains(lines[1], "Charmander") || !strings.Contains(lines[1], "Flamethrower") {
		t.Errorf("unexpected line for set 1: %s", lines[1])
	}
}

func TestDumpAi(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpAi(&buf); err != nil {
		t.Fatalf("dumping: %s", err)
	}

	out := buf.String()
	for _, want := range []string{"check_bad_move:", "try_to_faint:", "check_viability:", "setup_first_turn:"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}
