package global

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseConfigFillsDefaults(t *testing.T) {
	config, err := ParseConfig([]byte("seed: 7\nopen_level: true\nworkers: 3\n"))
	if err != nil {
		t.Fatalf("parsing: %s", err)
	}

	if config.Seed != 7 || config.Workers != 3 || !config.OpenLevel {
		t.Errorf("explicit values were lost: %+v", config)
	}
	if config.Level != 100 {
		t.Errorf("open level should default to level 100, got %d", config.Level)
	}
	if config.Battles != DEFAULT_BATTLES || config.MaxTurns != DEFAULT_MAX_TURNS {
		t.Errorf("expected default battles and turns, got %+v", config)
	}
}

func TestParseConfigRejectsBadYaml(t *testing.T) {
	if _, err := ParseConfig([]byte("seed: [1, 2")); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("a missing file should not be an error: %s", err)
	}

	if config != populateConfig(Config{}) {
		t.Fatalf("expected defaults, got %+v", config)
	}
	if config.Level != 50 {
		t.Fatalf("expected level 50, got %d", config.Level)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	config := populateConfig(Config{Seed: 99, Battles: 12, Challenge: 4, Debug: true})

	if err := SaveConfig(path, config); err != nil {
		t.Fatalf("saving: %s", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("loading: %s", err)
	}
	if loaded != config {
		t.Fatalf("expected %+v, got %+v", config, loaded)
	}
}

func TestRollingWriterRotates(t *testing.T) {
	dir := t.TempDir()
	w := NewRollingFileWriter(dir, "rollout")
	w.MaxSize = 10
	w.MaxLogs = 3

	for _, line := range []string{"first line\n", "second line\n", "third line\n", "fourth line\n"} {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("writing: %s", err)
		}
	}

	expected := map[string]string{
		"rollout.log":   "fourth line\n",
		"rollout-1.log": "third line\n",
		"rollout-2.log": "second line\n",
	}
	for name, content := range expected {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %s", name, err)
		}
		if string(b) != content {
			t.Errorf("%s: expected %q, got %q", name, content, string(b))
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "rollout-3.log")); !os.IsNotExist(err) {
		t.Errorf("logs past the limit should be removed")
	}
}

func TestLogIndex(t *testing.T) {
	cases := []struct {
		path  string
		index int64
		ok    bool
	}{
		{"/tmp/logs/rollout-3.log", 3, true},
		{"rollout-12.log", 12, true},
		{"rollout.log", 0, false},
		{"rollout-x.log", 0, false},
		{"other-1.log", 0, false},
	}

	for _, c := range cases {
		index, ok := getLogIndex("rollout", c.path)
		if ok != c.ok || (ok && index != c.index) {
			t.Errorf("%s: expected (%d, %t), got (%d, %t)", c.path, c.index, c.ok, index, ok)
		}
	}
}

func TestStopAndContinueLogging(t *testing.T) {
	if _, err := GlobalInit("", true); err != nil {
		t.Fatal(err)
	}

	StopLogging()
	ContinueLogging()
}

func TestUpdateLogLevel(t *testing.T) {
	if _, err := GlobalInit("", true); err != nil {
		t.Fatal(err)
	}

	UpdateLogLevel(zerolog.WarnLevel)
	if log.Logger.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", log.Logger.GetLevel())
	}
}
